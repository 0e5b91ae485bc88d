package impl

import (
	"context"
	"log/slog"

	"studyhub/internal/domain/entity"
	"studyhub/internal/domain/lifecycle"
	"studyhub/internal/domain/repository"
	"studyhub/internal/errors"

	"go.uber.org/fx"
)

// DepartmentCheckParams holds dependencies for the startup drift check, injected by Fx.
type DepartmentCheckParams struct {
	fx.In
	fx.Lifecycle

	Repo   repository.DepartmentRepository
	Logger *slog.Logger
}

// RegisterDepartmentCheck compares the department table with the store on start.
// Drift is reported, never fatal.
func RegisterDepartmentCheck(params DepartmentCheckParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			checkCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			CheckDepartments(checkCtx, params.Repo, params.Logger)

			return nil
		},
	})
}

// CheckDepartments logs every difference between entity.Departments and the stored rows.
// It reports whether the two agree.
func CheckDepartments(ctx context.Context, repo repository.DepartmentRepository, logger *slog.Logger) bool {
	stored, err := repo.List(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrDepartmentTableMissing) {
			logger.WarnContext(ctx, "Departments table not found; skipping drift check")
		} else {
			logger.WarnContext(ctx, "Failed to load departments for drift check", slog.Any("error", err))
		}

		return false
	}

	drift := entity.CompareDepartments(stored)
	if drift.Empty() {
		return true
	}

	for _, id := range drift.MissingInStore {
		logger.WarnContext(ctx, "Department missing in store", slog.String("department_id", id))
	}
	for _, d := range drift.UnknownInStore {
		logger.WarnContext(ctx, "Unknown department in store",
			slog.String("department_id", d.ID),
			slog.String("name", d.Name),
		)
	}
	for _, d := range drift.Renamed {
		known, _ := entity.LookupDepartment(d.ID)
		logger.WarnContext(ctx, "Department renamed in store",
			slog.String("department_id", d.ID),
			slog.String("known_name", known.Name),
			slog.String("stored_name", d.Name),
		)
	}

	return false
}
