package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/userhub/api/http/presenter"
)

// ErrorReporter receives server-side failures, e.g. the Sentry reporter.
type ErrorReporter interface {
	CaptureException(err error, tags map[string]string)
}

// NewErrorHandler returns the app-level Fiber error handler. 5xx causes are
// logged and reported; the client only sees the status text.
func NewErrorHandler(log *slog.Logger, reporter ErrorReporter) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := presenter.StatusOf(err)
		if status >= nethttp.StatusInternalServerError {
			log.Error("request failed",
				slog.String("method", c.Method()),
				slog.String("path", c.Path()),
				slog.String("request_id", c.GetRespHeader(fiber.HeaderXRequestID)),
				slog.String("error", err.Error()),
			)
			if reporter != nil {
				reporter.CaptureException(err, map[string]string{
					"method": c.Method(),
					"route":  c.Route().Path,
				})
			}
		}
		return presenter.FromError(c, err)
	}
}
