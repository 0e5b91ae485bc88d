package postgres

import (
	"context"

	"studyhub/internal/domain/entity"
	"studyhub/internal/domain/repository"
	"studyhub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository is the constructor for departmentRepository.
func NewDepartmentRepository(db *gorm.DB) repository.DepartmentRepository {
	return &departmentRepository{db: db}
}

// List returns every stored department ordered by ID.
func (repo *departmentRepository) List(ctx context.Context) ([]entity.Department, error) {
	var rows []model.DepartmentModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		if isUndefinedTable(err) {
			return nil, repository.ErrDepartmentTableMissing
		}

		return nil, errors.Wrap(err, "failed to list departments")
	}

	out := make([]entity.Department, len(rows))
	for i, row := range rows {
		out[i] = entity.Department{ID: row.ID, ShortName: row.ShortName, Name: row.Name}
	}

	return out, nil
}
