package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// RequestRecorder receives one observation per served request.
type RequestRecorder interface {
	RecordRequest(method, route string, status int, d time.Duration)
}

// NewMetricsMiddleware records method, status, latency and the matched route
// template. Unmatched paths are labeled with the deepest middleware prefix
// they passed, so labels stay bounded by the registered routes.
func NewMetricsMiddleware(rec RequestRecorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		resolve(c, c.Next())

		rec.RecordRequest(c.Method(), c.Route().Path, c.Response().StatusCode(), time.Since(start))
		return nil
	}
}
