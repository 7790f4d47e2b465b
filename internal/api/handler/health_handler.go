package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type HealthHandler struct {
	sessionID string
}

// NewHealthHandler reports id as the instance id in every response.
func NewHealthHandler(id string) *HealthHandler {
	return &HealthHandler{sessionID: id}
}

// Liveness handles GET /health.
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":      "ok",
		"instance_id": h.sessionID,
	})
}
