// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"studyhub/internal/domain/entity"
	"studyhub/internal/domain/repository"
	"studyhub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// UpsertByIdentity inserts the user on first sign-in and refreshes the profile fields afterwards.
// The row is re-read inside the same transaction so ID and CreatedAt reflect the stored values.
func (repo *userRepository) UpsertByIdentity(ctx context.Context, identity *entity.Identity) (*entity.User, error) {
	if identity == nil || identity.Provider == "" || identity.Subject == "" {
		return nil, errors.New("identity requires provider and subject")
	}

	userM := &model.UserModel{
		Email:     identity.Email,
		Name:      identity.Name,
		AvatarURL: identity.AvatarURL,
		Provider:  identity.Provider,
		Subject:   identity.Subject,
	}

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "provider"}, {Name: "subject"}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "name", "avatar_url", "updated_at"}),
		}).Create(userM).Error; err != nil {
			return errors.Wrap(err, "failed to upsert user")
		}

		return tx.Where("provider = ? AND subject = ?", identity.Provider, identity.Subject).
			First(userM).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, err
	}

	return toUserDomain(userM), nil
}

// IsAdmin reports whether the email is listed in the admins table, ignoring case.
func (repo *userRepository) IsAdmin(ctx context.Context, email string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false, nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.AdminModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check admin membership")
	}

	return count > 0, nil
}

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:        data.ID,
		Email:     data.Email,
		Name:      data.Name,
		AvatarURL: data.AvatarURL,
		Provider:  data.Provider,
		Subject:   data.Subject,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
