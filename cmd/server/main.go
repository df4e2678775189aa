package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Nweder/fuel-friends-azure/infra/initializer"
	"github.com/Nweder/fuel-friends-azure/pkg/app"
	"github.com/Nweder/fuel-friends-azure/pkg/config"
	"github.com/Nweder/fuel-friends-azure/webapi"
	log "github.com/charmbracelet/log"
)

// @title Fuel Friends API
// @version 1.0.0
// @description Shared fuel ledger for a group of friends splitting gas money.
// @host localhost:8000
// @BasePath /
//
// @securityDefinitions.apikey AppPassword
// @in header
// @name X-App-Password
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	// Initialize all dependencies
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	logger := deps.Logger

	// Create the application and mount the routes
	app := app.New(deps, cfg)
	fiberApp := webapi.SetupApp(app)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(
		"starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- fiberApp.Listen(addr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down server", "signal", sig.String())
		if err := fiberApp.ShutdownWithTimeout(10 * time.Second); err != nil {
			return fmt.Errorf("forced shutdown: %w", err)
		}
	}

	logger.Info("server stopped")
	return nil
}
