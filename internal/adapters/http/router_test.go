package http_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	httpadapter "github.com/kdeguzman/negosyoplan/internal/adapters/http"
)

func TestWebSocketRefusedWithoutBroker(t *testing.T) {
	app := fiber.New()
	httpadapter.SetupRoutes(app, &httpadapter.Dependencies{})

	req := httptest.NewRequest("GET", "/ws", nil)
	req.Header.Set("Connection", "Upgrade")
	req.Header.Set("Upgrade", "websocket")
	req.Header.Set("Sec-WebSocket-Version", "13")
	req.Header.Set("Sec-WebSocket-Key", "dGhlIHNhbXBsZSBub25jZQ==")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 503 {
		t.Errorf("upgrade without a broker must be refused with 503, got %d", resp.StatusCode)
	}
}

func TestWebSocketPlainGetWithoutBroker(t *testing.T) {
	app := fiber.New()
	httpadapter.SetupRoutes(app, &httpadapter.Dependencies{})

	resp, err := app.Test(httptest.NewRequest("GET", "/ws", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 503 {
		t.Errorf("expected 503 without a broker, got %d", resp.StatusCode)
	}
}
