package model

import "time"

type AssignmentType string

const (
	AssignmentTypeAssignment AssignmentType = "ASSIGNMENT"
	AssignmentTypeMaterial   AssignmentType = "MATERIAL"
)

type AssignmentModel struct {
	AssignmentID          int            `gorm:"primaryKey;autoIncrement;column:assignment_id" json:"assignment_id"`
	AssignmentClassID     int            `gorm:"not null;index;column:class_id" json:"class_id"`
	AssignmentTitle       string         `gorm:"type:varchar(200);not null;column:title" json:"title"`
	AssignmentDescription *string        `gorm:"type:text;column:description" json:"description,omitempty"`
	AssignmentType        AssignmentType `gorm:"type:varchar(16);not null;column:type" json:"type"`
	AssignmentFilePath    *string        `gorm:"type:varchar(255);column:file_path" json:"file_path,omitempty"`
	AssignmentDueDate     *time.Time     `gorm:"type:date;column:due_date" json:"due_date,omitempty"`
	AssignmentMaxScore    *int           `gorm:"column:max_score" json:"max_score,omitempty"`
	AssignmentCreatedAt   time.Time      `gorm:"not null;column:created_at" json:"created_at"`
	AssignmentUpdatedAt   time.Time      `gorm:"not null;column:updated_at" json:"updated_at"`
}

func (AssignmentModel) TableName() string { return "assignments" }
