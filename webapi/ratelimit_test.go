package webapi_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/Nweder/fuel-friends-azure/infra"
	"github.com/Nweder/fuel-friends-azure/pkg/app"
	"github.com/Nweder/fuel-friends-azure/pkg/config"
	"github.com/Nweder/fuel-friends-azure/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/stretchr/testify/suite"
)

type RateLimitTestSuite struct {
	suite.Suite
	app *fiber.App
}

func (s *RateLimitTestSuite) SetupSuite() {
	log.SetOutput(io.Discard)
}

func (s *RateLimitTestSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.App{
		Env:         "test",
		AppPassword: "secret",
		Server:      &config.Server{},
		Log:         &config.Log{},
		DB:          &config.DB{Path: filepath.Join(s.T().TempDir(), "fuel_test.db")},
		RateLimit:   &config.RateLimit{MaxRequests: 5, Window: time.Second},
		Static:      &config.Static{Dir: filepath.Join("testdata", "no-static")},
	}
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	s.Require().NoError(err)
	s.Require().NoError(infra.Migrate(db, logger))

	deps := &app.Deps{Uow: infra.NewUoW(db), Logger: logger}
	s.app = webapi.SetupApp(app.New(deps, cfg))
}

func (s *RateLimitTestSuite) request(forwardedFor string) *http.Response {
	req := httptest.NewRequest(fiber.MethodGet, "/healthz", nil)
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)
	return resp
}

func (s *RateLimitTestSuite) TestRateLimit() {
	// Send requests until the limit is hit.
	for i := range [6]int{} {
		resp := s.request("")
		defer resp.Body.Close() //nolint: errcheck

		if i < 5 {
			s.Equal(fiber.StatusOK, resp.StatusCode, "request %d", i+1)
		} else {
			s.Equal(fiber.StatusTooManyRequests, resp.StatusCode, "request %d", i+1)
		}
	}

	// Wait for the window to reset.
	time.Sleep(1100 * time.Millisecond)

	resp := s.request("")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode, "after window reset")
}

func (s *RateLimitTestSuite) TestRateLimit_KeyedByForwardedFor() {
	for i := 0; i < 5; i++ {
		resp := s.request("1.2.3.4")
		resp.Body.Close() //nolint: errcheck
		s.Equal(fiber.StatusOK, resp.StatusCode, "request %d", i+1)
	}

	// The first hop in the chain is the key, so this counts against 1.2.3.4.
	resp := s.request("1.2.3.4, 10.0.0.1")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusTooManyRequests, resp.StatusCode)

	// A different client address gets its own bucket.
	other := s.request("5.6.7.8")
	defer other.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusOK, other.StatusCode)
}

func TestRateLimitTestSuite(t *testing.T) {
	suite.Run(t, new(RateLimitTestSuite))
}
