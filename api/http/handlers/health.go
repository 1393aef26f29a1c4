package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/userhub/api/http/presenter"
	"github.com/artem13815/userhub/pkg/health"
)

const readyTimeout = 2 * time.Second

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct{ svc health.ReadinessUseCase }

func NewHealthHandler(svc health.ReadinessUseCase) *HealthHandler { return &HealthHandler{svc: svc} }

// StatusResponse is the probe body. Details lists failing checks.
type StatusResponse struct {
	Status  string `json:"status"`
	Details string `json:"details,omitempty"`
}

// Health reports the process is up.
// @Summary Liveness probe
// @Tags    health
// @Produce json
// @Success 200 {object} StatusResponse
// @Router  /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, StatusResponse{Status: "ok"})
}

// Ready pings the store.
// @Summary Readiness probe
// @Tags    health
// @Produce json
// @Success 200 {object} StatusResponse
// @Failure 503 {object} StatusResponse
// @Router  /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), readyTimeout)
	defer cancel()
	if err := h.svc.Ready(ctx); err != nil {
		return presenter.JSON(c, http.StatusServiceUnavailable, StatusResponse{
			Status:  "not_ready",
			Details: err.Error(),
		})
	}
	return presenter.JSON(c, http.StatusOK, StatusResponse{Status: "ready"})
}
