package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. A user is unique per identity provider and subject.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email     string    `gorm:"type:varchar(255);not null;index"`
	Name      string    `gorm:"type:varchar(100)"`
	AvatarURL string    `gorm:"type:text"`
	Provider  string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_users_identity,priority:1"`
	Subject   string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_identity,priority:2"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// AdminModel mirrors the 'admins' table. Emails are stored lowercased.
type AdminModel struct {
	Email     string `gorm:"type:varchar(255);primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminModel) TableName() string {
	return "admins"
}
