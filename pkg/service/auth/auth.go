// Package auth implements the shared-password gate in front of the API.
package auth

import (
	"crypto/subtle"
	"log/slog"

	"github.com/Nweder/fuel-friends-azure/pkg/config"
	"github.com/Nweder/fuel-friends-azure/pkg/domain"
)

// Service checks presented passwords against the configured shared secret.
// There is no per-user identity: everyone who knows the secret is "the
// friends" and gets full access.
type Service struct {
	cfg    *config.App
	logger *slog.Logger
}

// New creates a new Service from the application config.
func New(cfg *config.App, logger *slog.Logger) *Service {
	return &Service{cfg: cfg, logger: logger}
}

// Verify checks a presented password against the configured shared secret.
// Returns domain.ErrPasswordNotConfigured when the server has no secret at
// all and domain.ErrUnauthorized when the password does not match. The
// comparison is constant time so the secret cannot be probed byte by byte.
func (s *Service) Verify(password string) error {
	if s.cfg.AppPassword == "" {
		s.logger.Error("APP_PASSWORD is not configured, rejecting request")
		return domain.ErrPasswordNotConfigured
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AppPassword)) != 1 {
		return domain.ErrUnauthorized
	}
	return nil
}
