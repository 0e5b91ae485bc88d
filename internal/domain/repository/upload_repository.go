package repository

import (
	"context"

	"studyhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for upload persistence.
var (
	// ErrUploadNotFound is returned when an upload row does not exist.
	ErrUploadNotFound = errors.New("upload not found")
)

// UploadRepository stores metadata of admin-uploaded files.
type UploadRepository interface {
	Create(ctx context.Context, upload *entity.Upload) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Upload, error)
	// List returns uploads newest first. An empty kind lists all kinds.
	List(ctx context.Context, kind entity.Kind) ([]*entity.Upload, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
