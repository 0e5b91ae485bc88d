package entity

import (
	"time"

	"github.com/google/uuid"
)

// Upload is a PDF an admin placed in object storage through the panel.
type Upload struct {
	ID          uuid.UUID `json:"id"`
	Kind        Kind      `json:"kind"`
	CourseCode  string    `json:"course_code"`
	FileName    string    `json:"file_name"`
	ObjectKey   string    `json:"object_key"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	UploadedBy  uuid.UUID `json:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at"`
}
