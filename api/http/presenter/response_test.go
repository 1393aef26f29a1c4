package presenter

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/userhub/pkg/apperr"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{apperr.Validation("bad"), http.StatusBadRequest},
		{apperr.New(apperr.ErrUnauthenticated, "no"), http.StatusUnauthorized},
		{apperr.New(apperr.ErrNotFound, "gone"), http.StatusNotFound},
		{apperr.New(apperr.ErrConflict, "dup"), http.StatusConflict},
		{apperr.Store("op", errors.New("db down")), http.StatusInternalServerError},
		{fiber.ErrRequestEntityTooLarge, http.StatusRequestEntityTooLarge},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusOf(tt.err), tt.err.Error())
	}
}

func serve(t *testing.T, err error) (int, ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error { return FromError(c, err) })

	resp, e := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, e)
	defer resp.Body.Close()

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestFromError_ClientErrorsCarryMessage(t *testing.T) {
	status, body := serve(t, apperr.New(apperr.ErrConflict, "email already exists"))

	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "email already exists", body.Message)
}

func TestFromError_ServerErrorsHideCause(t *testing.T) {
	status, body := serve(t, apperr.Store("list users", errors.New("password=secret host=db")))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Internal Server Error", body.Message)
}
