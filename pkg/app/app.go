// Package app wires the application services together from their
// infrastructure dependencies.
package app

import (
	"log/slog"

	"github.com/Nweder/fuel-friends-azure/pkg/config"
	"github.com/Nweder/fuel-friends-azure/pkg/repository"
	"github.com/Nweder/fuel-friends-azure/pkg/service/auth"
	"github.com/Nweder/fuel-friends-azure/pkg/service/ledger"
)

// Deps contains the infrastructure dependencies the services are built from.
type Deps struct {
	Uow    repository.UnitOfWork
	Logger *slog.Logger
}

// App bundles the configured services behind one handle.
type App struct {
	Deps          *Deps
	Config        *config.App
	AuthService   *auth.Service
	LedgerService *ledger.Service
}

// New builds the application services from deps and cfg.
func New(deps *Deps, cfg *config.App) *App {
	return &App{
		Deps:          deps,
		Config:        cfg,
		AuthService:   auth.New(cfg, deps.Logger),
		LedgerService: ledger.New(deps.Uow, deps.Logger),
	}
}
