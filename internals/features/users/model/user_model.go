package model

// Role: Admin, Teacher, Student
type UserModel struct {
	UserID       int     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserName     string  `gorm:"type:varchar(120);not null;column:name" json:"name"`
	UserEmail    string  `gorm:"type:varchar(160);not null;uniqueIndex:uq_users_email;column:email" json:"email"`
	UserPassword string  `gorm:"type:varchar(120);not null;column:password" json:"-"`
	UserRole     string  `gorm:"type:varchar(16);not null;column:role" json:"role"`
	UserMssv     *string `gorm:"type:varchar(20);uniqueIndex:uq_users_mssv;column:mssv" json:"mssv,omitempty"`
	UserAvatar   *string `gorm:"type:varchar(255);column:avatar" json:"avatar,omitempty"`
}

func (UserModel) TableName() string { return "users" }
