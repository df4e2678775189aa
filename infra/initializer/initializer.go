// Package initializer builds the application dependencies at startup:
// logger, database connection, schema migration and the unit of work.
package initializer

import (
	"github.com/Nweder/fuel-friends-azure/infra"
	"github.com/Nweder/fuel-friends-azure/pkg/app"
	"github.com/Nweder/fuel-friends-azure/pkg/config"
)

// InitializeDependencies initializes all the application dependencies.
func InitializeDependencies(cfg *config.App) (
	deps *app.Deps,
	err error,
) {
	deps = &app.Deps{}
	logger := setupLogger(cfg.Log)
	deps.Logger = logger

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, err
	}

	if err = infra.Migrate(db, logger); err != nil {
		logger.Error("Failed to migrate database", "error", err)
		return nil, err
	}

	deps.Uow = infra.NewUoW(db)
	return deps, nil
}
