package model

import (
	"time"

	"github.com/google/uuid"
)

// UploadModel mirrors the 'uploads' table holding metadata for objects in the bucket.
type UploadModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind        string    `gorm:"type:varchar(16);not null;index"`
	CourseCode  string    `gorm:"type:varchar(32);not null"`
	FileName    string    `gorm:"type:varchar(255);not null"`
	ObjectKey   string    `gorm:"type:text;not null;unique"`
	ContentType string    `gorm:"type:varchar(100);not null"`
	Size        int64     `gorm:"not null"`
	UploadedBy  uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt   time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (UploadModel) TableName() string {
	return "uploads"
}
