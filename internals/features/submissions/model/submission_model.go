package model

import "time"

type SubmissionStatus string

const (
	SubmissionStatusPending SubmissionStatus = "Pending"
	SubmissionStatusGraded  SubmissionStatus = "Graded"
	SubmissionStatusLate    SubmissionStatus = "Late"
)

// ten_bai_tap is a free-text assignment name, not a foreign key to the
// assignments table. The composite unique index hardens the one-submission
// per (student, class, assignment-name) rule; the service-level check stays
// the source of the client-facing conflict message.
type SubmissionModel struct {
	SubmissionID             int              `gorm:"primaryKey;autoIncrement;column:submission_id" json:"submission_id"`
	SubmissionStudentID      int              `gorm:"not null;uniqueIndex:uq_submissions_triple;column:student_id" json:"student_id"`
	SubmissionClassID        int              `gorm:"not null;uniqueIndex:uq_submissions_triple;column:class_id" json:"class_id"`
	SubmissionAssignmentName *string          `gorm:"type:varchar(200);uniqueIndex:uq_submissions_triple;column:ten_bai_tap" json:"ten_bai_tap,omitempty"`
	SubmissionFilePath       *string          `gorm:"type:varchar(255);column:file_path" json:"file_path,omitempty"`
	SubmissionScore          *float64         `gorm:"type:numeric(3,1);column:diem" json:"diem,omitempty"`
	SubmissionFeedback       *string          `gorm:"type:text;column:nhan_xet" json:"nhan_xet,omitempty"`
	SubmissionStatus         SubmissionStatus `gorm:"type:varchar(16);column:trang_thai" json:"trang_thai"`
	SubmissionSubmittedAt    *time.Time       `gorm:"column:submitted_at" json:"submitted_at,omitempty"`
	SubmissionGradedAt       *time.Time       `gorm:"column:graded_at" json:"graded_at,omitempty"`
}

func (SubmissionModel) TableName() string { return "submissions" }
