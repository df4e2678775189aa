// Package testutils provides a shared HTTP test suite that runs the full
// Fiber app over a throwaway sqlite database, one fresh database per test.
package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"time"

	"github.com/Nweder/fuel-friends-azure/infra"
	"github.com/Nweder/fuel-friends-azure/pkg/app"
	"github.com/Nweder/fuel-friends-azure/pkg/config"
	"github.com/Nweder/fuel-friends-azure/webapi"
	"github.com/Nweder/fuel-friends-azure/webapi/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TestPassword is the shared app password the suite configures and sends.
const TestPassword = "pump-secret"

// FriendView mirrors the wire shape of a friend response.
type FriendView struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	TotalLiters  float64 `json:"totalLiters"`
	TotalSek     float64 `json:"totalSek"`
	PaidSek      float64 `json:"paidSek"`
	RemainingSek float64 `json:"remainingSek"`
}

// TransactionView mirrors the wire shape of a history entry.
type TransactionView struct {
	ID          uint      `json:"id"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// E2ETestSuite runs the full Fiber app over a fresh sqlite database per test.
type E2ETestSuite struct {
	suite.Suite
	db  *gorm.DB
	app *fiber.App
	cfg *config.App
}

// SetupSuite silences handler logging for the whole run.
func (s *E2ETestSuite) SetupSuite() {
	log.SetOutput(io.Discard)
}

// SetupTest builds the app over a brand new database file.
func (s *E2ETestSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := testConfig(filepath.Join(s.T().TempDir(), "fuel_test.db"))

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	s.Require().NoError(err)
	s.Require().NoError(infra.Migrate(db, logger))

	deps := &app.Deps{
		Uow:    infra.NewUoW(db),
		Logger: logger,
	}
	s.db = db
	s.cfg = cfg
	s.app = webapi.SetupApp(app.New(deps, cfg))
}

// Cfg returns the suite's configuration for tests that tweak it.
func (s *E2ETestSuite) Cfg() *config.App { return s.cfg }

// DB returns the suite's database handle for direct row checks.
func (s *E2ETestSuite) DB() *gorm.DB { return s.db }

func testConfig(dbPath string) *config.App {
	return &config.App{
		Env:         "test",
		AppPassword: TestPassword,
		Server:      &config.Server{Scheme: "http", Host: "127.0.0.1", Port: 0},
		Log:         &config.Log{Format: "text"},
		DB:          &config.DB{Path: dbPath},
		RateLimit:   &config.RateLimit{MaxRequests: 10000, Window: time.Minute},
		Static:      &config.Static{Dir: filepath.Join("testdata", "no-static")},
	}
}

// MakeRequest is a helper for making HTTP requests in tests. An empty
// password leaves the header off entirely.
func (s *E2ETestSuite) MakeRequest(method, path, body, password string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if password != "" {
		req.Header.Set(middleware.PasswordHeader, password)
	}
	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)
	return resp
}

// CreateTestFriend creates a friend with a unique name via the API.
func (s *E2ETestSuite) CreateTestFriend() FriendView {
	name := fmt.Sprintf("friend_%s", uuid.New().String()[:8])
	resp := s.MakeRequest("POST", "/api/friends", fmt.Sprintf(`{"name":%q}`, name), TestPassword)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	return s.DecodeFriend(resp)
}

// DecodeFriend decodes a friend payload and closes the body.
func (s *E2ETestSuite) DecodeFriend(resp *http.Response) FriendView {
	defer resp.Body.Close() //nolint: errcheck
	var f FriendView
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&f))
	return f
}

// DecodeFriends decodes a friend list payload and closes the body.
func (s *E2ETestSuite) DecodeFriends(resp *http.Response) []FriendView {
	defer resp.Body.Close() //nolint: errcheck
	var friends []FriendView
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&friends))
	return friends
}

// DecodeTransactions decodes a history payload and closes the body.
func (s *E2ETestSuite) DecodeTransactions(resp *http.Response) []TransactionView {
	defer resp.Body.Close() //nolint: errcheck
	var entries []TransactionView
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&entries))
	return entries
}
