package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/alexanderramin/slotboard/internal/api/metrics"
	"github.com/alexanderramin/slotboard/internal/domain"
	"github.com/alexanderramin/slotboard/internal/route"
	"github.com/alexanderramin/slotboard/internal/selection"
	"github.com/alexanderramin/slotboard/internal/service"
)

type ScreenHandler struct {
	screens service.ScreenService
	metrics *metrics.Metrics
}

func NewScreenHandler(screens service.ScreenService, m *metrics.Metrics) *ScreenHandler {
	return &ScreenHandler{screens: screens, metrics: m}
}

type screenQuery struct {
	Path     string `query:"path" validate:"required"`
	Role     string `query:"role"`
	Business string `query:"business"`
	Load     string `query:"load" validate:"omitempty,oneof=soft hard"`
}

// Get handles GET /api/screen?path=&role=&business=&load=. It returns the
// composed screen exactly as the TUI would render it for that role.
func (h *ScreenHandler) Get(c echo.Context) error {
	var q screenQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	load, err := route.ParseLoad(q.Load)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	scr, err := h.screens.Screen(c.Request().Context(), service.ScreenRequest{
		Path:       q.Path,
		Role:       domain.Role(q.Role),
		BusinessID: q.Business,
		Load:       load,
	})
	if err != nil {
		return err
	}

	h.metrics.ScreensRendered.WithLabelValues(string(scr.Kind)).Inc()
	if denied(scr) {
		h.metrics.AccessDenied.WithLabelValues(string(scr.Role)).Inc()
	}
	return c.JSON(http.StatusOK, scr)
}

func denied(scr selection.Screen) bool {
	switch {
	case scr.Domain != nil:
		return scr.Domain.Denied != nil
	case scr.Project != nil:
		return scr.Project.Denied != nil
	}
	return false
}
