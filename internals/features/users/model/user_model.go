package model

import "time"

type UserModel struct {
	UserID    int    `gorm:"primaryKey;autoIncrement;column:user_id" json:"user_id"`
	UserEmail string `gorm:"size:120;not null;uniqueIndex:uq_users_email;column:user_email" json:"user_email"`
	UserName  string `gorm:"size:120;not null;column:user_name" json:"user_name"`
	UserRole  string `gorm:"size:20;not null;default:STUDENT;column:user_role" json:"user_role"`

	// Atribut grouping untuk analisis kehadiran (nullable)
	UserClass    *string `gorm:"size:60;column:user_class" json:"user_class,omitempty"`
	UserPosition *string `gorm:"size:60;column:user_position" json:"user_position,omitempty"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string { return "users" }
