// Package webapi provides HTTP handlers and API endpoints for the fuel ledger.
// It is organized into sub-packages for different concerns:
// - auth: Login endpoint for the shared app password
// - friend: Friend accounts, balance mutations and transaction history
// - middleware: Shared password protection for the API routes
// - common: Response envelopes, problem details and request binding
package webapi

import (
	"errors"
	"os"
	"strings"

	"github.com/Nweder/fuel-friends-azure/pkg/app"
	authweb "github.com/Nweder/fuel-friends-azure/webapi/auth"
	"github.com/Nweder/fuel-friends-azure/webapi/common"
	friendweb "github.com/Nweder/fuel-friends-azure/webapi/friend"
	"github.com/Nweder/fuel-friends-azure/webapi/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(app *app.App) *fiber.App {
	ledgerSvc := app.LedgerService
	authSvc := app.AuthService
	cfg := app.Config

	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				return common.ProblemDetailsJSON(c, fiberErr.Message, err, fiberErr.Code)
			}
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})

	// Configure rate limiting middleware
	// Uses X-Forwarded-For header when behind a proxy
	// Falls back to X-Real-IP or direct IP if needed
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit.MaxRequests,
		Expiration: cfg.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				// Take the first IP in the chain
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				fiber.StatusTooManyRequests,
			)
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	// Browsers talking to the API from another origin need CORS. The list
	// comes from CORS_ORIGINS and stays off when unset.
	if len(cfg.CorsOrigins) > 0 {
		fiberApp.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Join(cfg.CorsOrigins, ","),
			AllowHeaders:     "Origin, Content-Type, Accept, " + middleware.PasswordHeader,
			AllowCredentials: true,
		}))
	}

	// Health check endpoint
	fiberApp.Get("/healthz", func(c *fiber.Ctx) error {
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Fuel Friends API is running", nil)
	})

	// Route listing, only exposed during local development
	if cfg.Env == "development" {
		fiberApp.Get("/debug/routes", func(c *fiber.Ctx) error {
			routes := fiberApp.GetRoutes()
			routeList := make([]fiber.Map, 0, len(routes))
			for _, route := range routes {
				if route.Path != "" {
					routeList = append(routeList, fiber.Map{
						"method": route.Method,
						"path":   route.Path,
					})
				}
			}
			return c.JSON(routeList)
		})
	}

	authweb.Routes(fiberApp, authSvc)
	friendweb.Routes(fiberApp, ledgerSvc, authSvc)

	// The built frontend is served from the root path. Mounted after the API
	// routes so /api keeps precedence, skipped when the directory is absent.
	if st, err := os.Stat(cfg.Static.Dir); err == nil && st.IsDir() {
		fiberApp.Static("/", cfg.Static.Dir)
	} else {
		log.Warnf("Static dir %q not found, skipping frontend mount", cfg.Static.Dir)
	}

	return fiberApp
}
