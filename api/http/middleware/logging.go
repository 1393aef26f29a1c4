package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/userhub/pkg/security/jwt"
)

// NewLoggingMiddleware logs one structured line per request: method, path,
// status, duration_ms, request_id, ip and the caller email when
// authenticated.
func NewLoggingMiddleware(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		resolve(c, c.Next())

		status := c.Response().StatusCode()
		durationMs := float64(time.Since(start).Nanoseconds()) / float64(time.Millisecond)

		args := []any{
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", status),
			slog.Float64("duration_ms", durationMs),
			slog.String("request_id", c.GetRespHeader(fiber.HeaderXRequestID)),
			slog.String("ip", c.IP()),
		}
		if email, ok := c.Locals(jwt.LocalEmail).(string); ok && email != "" {
			args = append(args, slog.String("user_email", email))
		}

		level := slog.LevelInfo
		if status >= fiber.StatusInternalServerError {
			level = slog.LevelError
		} else if status >= fiber.StatusBadRequest {
			level = slog.LevelWarn
		}
		logger.Log(c.UserContext(), level, "http_request", args...)
		return nil
	}
}
