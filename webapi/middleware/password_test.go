package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Nweder/fuel-friends-azure/pkg/config"
	authsvc "github.com/Nweder/fuel-friends-azure/pkg/service/auth"
	"github.com/gofiber/fiber/v2"
)

func testApp(password string) *fiber.App {
	cfg := &config.App{AppPassword: password}
	svc := authsvc.New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	app := fiber.New()
	app.Get("/", PasswordProtected(svc), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestPasswordProtected_MissingHeader(t *testing.T) {
	app := testApp("secret")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, _ := app.Test(req)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("expected %d, got %d", fiber.StatusUnauthorized, resp.StatusCode)
	}
}

func TestPasswordProtected_WrongPassword(t *testing.T) {
	app := testApp("secret")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(PasswordHeader, "nope")
	resp, _ := app.Test(req)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("expected %d, got %d", fiber.StatusUnauthorized, resp.StatusCode)
	}
}

func TestPasswordProtected_CorrectPassword(t *testing.T) {
	app := testApp("secret")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(PasswordHeader, "secret")
	resp, _ := app.Test(req)
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("expected %d, got %d", fiber.StatusOK, resp.StatusCode)
	}
}

func TestPasswordProtected_NotConfigured(t *testing.T) {
	app := testApp("")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(PasswordHeader, "anything")
	resp, _ := app.Test(req)
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Errorf("expected %d, got %d", fiber.StatusInternalServerError, resp.StatusCode)
	}
}
