package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/sistema-tickets/helpdesk-service/internal/persistence"
)

func newHealthApp() *fiber.App {
	app := fiber.New()
	h := NewHealthHandler("helpdesk-service", "dev", &persistence.Postgres{}, &persistence.Redis{})
	app.Get("/health/live", h.Live)
	app.Get("/health/ready", h.Ready)
	return app
}

func TestHealthHandler_Live(t *testing.T) {
	t.Parallel()

	app := newHealthApp()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health/live", nil))
	if err != nil {
		t.Fatalf("Test() error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if body["status"] != "alive" {
		t.Errorf("status = %v, want alive", body["status"])
	}
	if body["service"] != "helpdesk-service" {
		t.Errorf("service = %v, want helpdesk-service", body["service"])
	}
	if _, ok := body["uptime"]; !ok {
		t.Error("response missing uptime")
	}
}

func TestHealthHandler_Ready_DependenciesDown(t *testing.T) {
	t.Parallel()

	// Unconfigured stores: both pings fail, the probe must name each
	// dependency as down instead of answering with a bare 503.
	app := newHealthApp()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	if err != nil {
		t.Fatalf("Test() error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", resp.StatusCode)
	}
	var body struct {
		Error struct {
			Code    string                    `json:"code"`
			Details map[string]map[string]any `json:"details"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if body.Error.Code != "DEPENDENCY_UNAVAILABLE" {
		t.Errorf("code = %s, want DEPENDENCY_UNAVAILABLE", body.Error.Code)
	}
	for _, dep := range []string{"postgres", "redis"} {
		check, ok := body.Error.Details[dep]
		if !ok {
			t.Errorf("details missing %s", dep)
			continue
		}
		if check["status"] != "down" {
			t.Errorf("%s status = %v, want down", dep, check["status"])
		}
		if _, ok := check["latency"]; !ok {
			t.Errorf("%s check missing latency", dep)
		}
	}
}
