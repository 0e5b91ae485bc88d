package repository

import (
	"context"

	"studyhub/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// UpsertByIdentity creates or refreshes the user identified by provider and subject.
	UpsertByIdentity(ctx context.Context, identity *entity.Identity) (*entity.User, error)

	// IsAdmin reports whether the email is listed in the admins table.
	IsAdmin(ctx context.Context, email string) (bool, error)
}
