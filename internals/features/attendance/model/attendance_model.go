package model

import (
	"time"

	"gorm.io/datatypes"
)

// One row per (class, date); the records blob holds the per-student marks
// and is replaced wholesale on every save.
type AttendanceModel struct {
	AttendanceID      int            `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	AttendanceClassID int            `gorm:"not null;uniqueIndex:uq_attendance_class_date;column:class_id" json:"class_id"`
	AttendanceDate    time.Time      `gorm:"type:date;not null;uniqueIndex:uq_attendance_class_date;column:date" json:"date"`
	AttendanceRecords datatypes.JSON `gorm:"type:jsonb;column:records" json:"records"`
}

func (AttendanceModel) TableName() string { return "attendance" }
