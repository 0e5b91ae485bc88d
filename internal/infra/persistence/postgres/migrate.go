package postgres

import (
	"context"
	"log/slog"

	"studyhub/config"
	"studyhub/internal/domain/constants"
	"studyhub/internal/domain/entity"
	"studyhub/internal/domain/lifecycle"
	"studyhub/internal/errors"
	"studyhub/internal/infra/persistence/model"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MigrateParams defines the required parameters for schema migration.
type MigrateParams struct {
	fx.In
	fx.Lifecycle

	DB     *gorm.DB
	Config *config.Config
	Logger *slog.Logger
}

// RegisterMigrations auto-migrates the schema and seeds departments on start in the develop
// environment. Production schemas are owned by the hosted store and left untouched.
func RegisterMigrations(params MigrateParams) {
	if params.Config.Env.Env != constants.EnvDevelop {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := Migrate(ctx, params.DB); err != nil {
				return err
			}
			params.Logger.InfoContext(ctx, "Postgres schema migrated")

			return nil
		},
	})
}

// Migrate creates or updates every table and inserts any known department that is missing.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return errors.Wrap(err, "failed to enable pgcrypto")
	}
	if err := db.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to auto-migrate schema")
	}

	departments := entity.Departments()
	rows := make([]model.DepartmentModel, len(departments))
	for i, d := range departments {
		rows[i] = model.DepartmentModel{ID: d.ID, ShortName: d.ShortName, Name: d.Name}
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
		return errors.Wrap(err, "failed to seed departments")
	}

	return nil
}
