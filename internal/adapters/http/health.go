package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler returns a basic liveness check.
func HealthHandler(deps *Dependencies) fiber.Handler {
	startedAt := time.Now()

	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"uptime":  time.Since(startedAt).String(),
			"version": "dev",
		})
	}
}

// ReadyHandler reports per-dependency status. Only the cache and broker
// degrade readiness when they were configured but are unreachable; the
// database is optional because the siting pipeline runs without the
// business directory, and a missing DB just means those endpoints 503.
func ReadyHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		checks := make(map[string]string)
		ready := true

		if deps.DB != nil {
			if err := deps.DB.Pool.Ping(ctx); err != nil {
				checks["directory"] = "error: " + err.Error()
			} else {
				checks["directory"] = "ok"
			}
		} else {
			checks["directory"] = "disabled"
		}

		if deps.NATS != nil {
			if deps.NATS.IsConnected() {
				checks["events"] = "ok"
			} else {
				checks["events"] = "disconnected"
				ready = false
			}
		} else {
			checks["events"] = "disabled"
		}

		if deps.Cache != nil {
			if err := deps.Cache.Ping(ctx); err != nil {
				checks["cache"] = "error: " + err.Error()
				ready = false
			} else {
				checks["cache"] = "ok"
			}
		} else {
			checks["cache"] = "disabled"
		}

		status := "ready"
		code := 200
		if !ready {
			status = "not ready"
			code = 503
		}

		return c.Status(code).JSON(fiber.Map{
			"status": status,
			"checks": checks,
		})
	}
}
