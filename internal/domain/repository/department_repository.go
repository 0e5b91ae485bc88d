package repository

import (
	"context"

	"studyhub/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrDepartmentTableMissing is returned when the store has no departments table at all.
var ErrDepartmentTableMissing = errors.New("departments table missing")

// DepartmentRepository reads the department rows used to detect drift from the known table.
type DepartmentRepository interface {
	List(ctx context.Context) ([]entity.Department, error)
}
