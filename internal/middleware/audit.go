package middleware

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/volcano-atlas/volcano_api/internal/auth"
)

// Audit emits one structured log line per request once the handler chain returns.
func Audit(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		var fe *fiber.Error
		switch {
		case errors.As(err, &fe):
			status = fe.Code
		case err != nil:
			status = fiber.StatusInternalServerError
		}
		requestID := RequestIDFrom(c)

		attrs := []any{
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
		}
		if requestID != "" {
			attrs = append(attrs, slog.String("request_id", requestID))
		}
		if id := auth.IdentityFrom(c); id.Authenticated() {
			attrs = append(attrs, slog.String("caller", id.TokenEmail))
		}
		switch {
		case err == nil:
			logger.Info("request completed", attrs...)
		case status >= fiber.StatusInternalServerError:
			logger.Error("request failed", append(attrs, slog.Any("error", err))...)
		default:
			logger.Info("request rejected", append(attrs, slog.Any("error", err))...)
		}
		return err
	}
}
