package model

import "time"

type NotificationModel struct {
	NotificationID          int       `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	NotificationUserID      int       `gorm:"not null;index;column:user_id" json:"user_id"`
	NotificationTitle       string    `gorm:"type:varchar(200);not null;column:title" json:"title"`
	NotificationDescription *string   `gorm:"type:text;column:description" json:"description,omitempty"`
	NotificationRead        bool      `gorm:"not null;default:false;column:read_status" json:"read"`
	NotificationRole        *string   `gorm:"type:varchar(16);column:role" json:"role,omitempty"`
	NotificationCreatedAt   time.Time `gorm:"not null;column:created_at" json:"created_at"`
}

func (NotificationModel) TableName() string { return "notifications" }
