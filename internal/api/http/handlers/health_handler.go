package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sistema-tickets/helpdesk-service/internal/persistence"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	startedAt   time.Time
	postgres    *persistence.Postgres
	redis       *persistence.Redis
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, postgres *persistence.Postgres, redis *persistence.Redis) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		startedAt:   time.Now(),
		postgres:    postgres,
		redis:       redis,
	}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
		"uptime":  time.Since(h.startedAt).Round(time.Second).String(),
	})
}

// Ready reports service readiness. Both stores are pinged; the response
// carries per-dependency status and latency so a failing probe names the
// culprit.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	checks := fiber.Map{}
	ready := true

	pgCheck, pgOK := checkDependency(ctx, h.postgres.Ping)
	checks["postgres"] = pgCheck
	ready = ready && pgOK

	redisCheck, redisOK := checkDependency(ctx, h.redis.Ping)
	checks["redis"] = redisCheck
	ready = ready && redisOK

	if ready {
		return c.JSON(fiber.Map{
			"status":       "ready",
			"dependencies": checks,
		})
	}

	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    "DEPENDENCY_UNAVAILABLE",
			"message": "one or more dependencies unavailable",
			"details": checks,
		},
	})
}

func checkDependency(ctx context.Context, ping func(context.Context) error) (fiber.Map, bool) {
	start := time.Now()
	if err := ping(ctx); err != nil {
		return fiber.Map{
			"status":  "down",
			"error":   err.Error(),
			"latency": time.Since(start).String(),
		}, false
	}
	return fiber.Map{
		"status":  "ok",
		"latency": time.Since(start).String(),
	}, true
}
