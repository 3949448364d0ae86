package model

import "time"

// Column names keep the original schema's labels (ten_lop, ma_tham_gia,
// giao_vien_id) so existing databases stay readable.
type ClassModel struct {
	ClassID          int     `gorm:"primaryKey;autoIncrement;column:class_id" json:"class_id"`
	ClassName        string  `gorm:"type:varchar(120);not null;column:ten_lop" json:"ten_lop"`
	ClassDescription *string `gorm:"type:text;column:mo_ta" json:"mo_ta,omitempty"`
	ClassJoinCode    string  `gorm:"type:varchar(16);uniqueIndex:uq_classes_join_code;column:ma_tham_gia" json:"ma_tham_gia"`
	ClassTeacherID   int     `gorm:"not null;index;column:giao_vien_id" json:"giao_vien_id"`
}

func (ClassModel) TableName() string { return "classes" }

// ClassStudentModel links one student to one class; the composite unique
// index enforces the one-enrollment-per-pair invariant at the storage layer.
type ClassStudentModel struct {
	ClassStudentID         int       `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ClassStudentClassID    int       `gorm:"not null;uniqueIndex:uq_class_students_pair;column:class_id" json:"class_id"`
	ClassStudentStudentID  int       `gorm:"not null;uniqueIndex:uq_class_students_pair;column:student_id" json:"student_id"`
	ClassStudentEnrolledAt time.Time `gorm:"not null;column:enrolled_at" json:"enrolled_at"`
}

func (ClassStudentModel) TableName() string { return "class_students" }
