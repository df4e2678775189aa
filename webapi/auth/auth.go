// Package auth exposes the login endpoint the frontend uses to check the
// shared password before it starts calling the ledger API.
package auth

import (
	"errors"
	"strings"

	"github.com/Nweder/fuel-friends-azure/pkg/domain"
	authsvc "github.com/Nweder/fuel-friends-azure/pkg/service/auth"
	"github.com/Nweder/fuel-friends-azure/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the authentication endpoints.
func Routes(app *fiber.App, authSvc *authsvc.Service) {
	app.Post("/api/login", Login(authSvc))
}

// Login checks a password sent in the body against the shared secret.
// It exists so the frontend can validate the password once up front
// instead of discovering a typo on the first real API call.
// @Summary Check the shared app password
// @Description Verifies the password in the request body against the configured shared secret. Surrounding whitespace is ignored.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "App password"
// @Success 200 {object} map[string]bool "Password accepted"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 401 {object} common.ProblemDetails "Wrong password"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Password not configured"
// @Router /api/login [post]
func Login(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, _ := common.BindAndValidate[LoginRequest](c)
		if input == nil {
			return nil // error response already written
		}
		password := strings.TrimSpace(input.Password)
		if err := authSvc.Verify(password); err != nil {
			if errors.Is(err, domain.ErrPasswordNotConfigured) {
				return common.ProblemDetailsJSON(c, "Server misconfigured", err)
			}
			return common.ProblemDetailsJSON(c, "Unauthorized", err, "Wrong password")
		}
		return c.JSON(fiber.Map{"ok": true})
	}
}
