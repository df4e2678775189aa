// Package middleware provides the Fiber middleware protecting the API.
package middleware

import (
	"errors"

	"github.com/Nweder/fuel-friends-azure/pkg/domain"
	authsvc "github.com/Nweder/fuel-friends-azure/pkg/service/auth"
	"github.com/Nweder/fuel-friends-azure/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// PasswordHeader is the request header carrying the shared app password.
const PasswordHeader = "X-App-Password"

// PasswordProtected returns a middleware that rejects requests whose
// password header does not match the configured shared secret. Rejection
// happens before any handler touches the store.
func PasswordProtected(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := authSvc.Verify(c.Get(PasswordHeader)); err != nil {
			if errors.Is(err, domain.ErrPasswordNotConfigured) {
				return common.ProblemDetailsJSON(c, "Server misconfigured", err)
			}
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		return c.Next()
	}
}
