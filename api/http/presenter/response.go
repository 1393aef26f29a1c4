package presenter

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/userhub/pkg/apperr"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

// StatusOf maps an error kind to its HTTP status. Unknown errors are 500.
func StatusOf(err error) int {
	var fe *fiber.Error
	switch {
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrConflict):
		return http.StatusConflict
	case errors.As(err, &fe):
		return fe.Code
	default:
		return http.StatusInternalServerError
	}
}

// FromError writes the error body for err. Server-side failures get a generic
// message; the cause is left to the app error handler for logging.
func FromError(c *fiber.Ctx, err error) error {
	status := StatusOf(err)
	if status >= http.StatusInternalServerError {
		return Error(c, status, http.StatusText(status))
	}
	return Error(c, status, err.Error())
}
