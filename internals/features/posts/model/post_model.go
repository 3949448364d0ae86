package model

import "time"

type PostModel struct {
	PostID        int       `gorm:"primaryKey;autoIncrement;column:post_id" json:"post_id"`
	PostClassID   int       `gorm:"not null;index;column:class_id" json:"class_id"`
	PostAuthorID  int       `gorm:"not null;index;column:author_id" json:"author_id"`
	PostContent   string    `gorm:"type:text;not null;column:content" json:"content"`
	PostFilePath  *string   `gorm:"type:varchar(255);column:file_path" json:"file_path,omitempty"`
	PostCreatedAt time.Time `gorm:"not null;column:created_at" json:"created_at"`
}

func (PostModel) TableName() string { return "posts" }
