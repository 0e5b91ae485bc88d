package usecase

import (
	"context"
	"io"

	"studyhub/internal/domain/entity"

	"github.com/google/uuid"
)

// UploadInput is one file submitted through the admin panel.
type UploadInput struct {
	Kind       entity.Kind
	CourseCode string
	FileName   string
	Size       int64
	Body       io.Reader
	UploadedBy uuid.UUID
}

// UploadUsecase manages admin-uploaded PDFs.
type UploadUsecase interface {
	Upload(ctx context.Context, input UploadInput) (*entity.Upload, error)
	List(ctx context.Context, kind entity.Kind) ([]*entity.Upload, error)
	Open(ctx context.Context, id uuid.UUID) (*entity.Upload, io.ReadCloser, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
