package http

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
)

// slowRequestThreshold flags requests that outlive the interactive
// budget. Analyses legitimately take seconds (one upstream completion
// call), everything else should be well under this.
const slowRequestThreshold = 5 * time.Second

// AccessLogMiddleware logs HTTP requests with structured slog output.
// Probe and scrape endpoints are skipped to keep the log signal clean.
func AccessLogMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		if path == "/v1/health" || path == "/v1/ready" || path == "/metrics" {
			return c.Next()
		}

		start := time.Now()
		method := c.Method()
		requestID := c.Get(fiber.HeaderXRequestID, "unknown")

		err := c.Next()

		status := c.Response().StatusCode()
		latency := time.Since(start)

		attrs := []slog.Attr{
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", status),
			slog.String("latency", latency.String()),
			slog.Int("bytes_out", len(c.Response().Body())),
			slog.String("request_id", requestID),
		}

		level := slog.LevelInfo
		switch {
		case err != nil:
			attrs = append(attrs, slog.String("error", err.Error()))
			level = slog.LevelError
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		case latency > slowRequestThreshold:
			attrs = append(attrs, slog.Bool("slow", true))
			level = slog.LevelWarn
		}

		slog.LogAttrs(c.Context(), level, fmt.Sprintf("%s %s", method, path), attrs...)

		return err
	}
}
