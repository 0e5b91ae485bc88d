package postgres

import (
	"context"

	"studyhub/internal/domain/entity"
	"studyhub/internal/domain/repository"
	"studyhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type uploadRepository struct {
	db *gorm.DB
}

// NewUploadRepository is the constructor for uploadRepository.
func NewUploadRepository(db *gorm.DB) repository.UploadRepository {
	return &uploadRepository{db: db}
}

// Create persists upload metadata. The object must already be in the bucket.
func (repo *uploadRepository) Create(ctx context.Context, upload *entity.Upload) error {
	uploadM := fromUploadDomain(upload)

	if err := repo.db.WithContext(ctx).Create(uploadM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrapf(err, "object key %q already recorded", upload.ObjectKey)
		}

		return errors.Wrap(err, "failed to create upload")
	}

	upload.CreatedAt = uploadM.CreatedAt

	return nil
}

// FindByID retrieves upload metadata by ID.
func (repo *uploadRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Upload, error) {
	var uploadM model.UploadModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&uploadM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUploadNotFound
		}

		return nil, errors.Wrap(err, "failed to find upload by id")
	}

	return toUploadDomain(&uploadM), nil
}

// List returns uploads newest first, optionally restricted to one kind.
func (repo *uploadRepository) List(ctx context.Context, kind entity.Kind) ([]*entity.Upload, error) {
	db := repo.db.WithContext(ctx)
	if kind != "" {
		db = db.Where("kind = ?", kind.String())
	}

	var rows []model.UploadModel
	if err := db.Order("created_at DESC").Order("id DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list uploads")
	}

	out := make([]*entity.Upload, len(rows))
	for i := range rows {
		out[i] = toUploadDomain(&rows[i])
	}

	return out, nil
}

// Delete removes upload metadata. Deleting a missing row is an error so callers notice stale IDs.
func (repo *uploadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.UploadModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete upload")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUploadNotFound
	}

	return nil
}

func toUploadDomain(data *model.UploadModel) *entity.Upload {
	return &entity.Upload{
		ID:          data.ID,
		Kind:        entity.Kind(data.Kind),
		CourseCode:  data.CourseCode,
		FileName:    data.FileName,
		ObjectKey:   data.ObjectKey,
		ContentType: data.ContentType,
		Size:        data.Size,
		UploadedBy:  data.UploadedBy,
		CreatedAt:   data.CreatedAt,
	}
}

func fromUploadDomain(data *entity.Upload) *model.UploadModel {
	return &model.UploadModel{
		ID:          data.ID,
		Kind:        data.Kind.String(),
		CourseCode:  data.CourseCode,
		FileName:    data.FileName,
		ObjectKey:   data.ObjectKey,
		ContentType: data.ContentType,
		Size:        data.Size,
		UploadedBy:  data.UploadedBy,
		CreatedAt:   data.CreatedAt,
	}
}
