package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/alexanderramin/slotboard/internal/api/metrics"
	"github.com/alexanderramin/slotboard/internal/domain"
	"github.com/alexanderramin/slotboard/internal/route"
	"github.com/alexanderramin/slotboard/internal/service"
)

// PhotoHandler serves the shared photo catalog. Renames made here are seen
// by every later request and every open session on the same store.
type PhotoHandler struct {
	photos  service.PhotoService
	metrics *metrics.Metrics
}

func NewPhotoHandler(photos service.PhotoService, m *metrics.Metrics) *PhotoHandler {
	return &PhotoHandler{photos: photos, metrics: m}
}

type photoResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Color string `json:"color"`
	Path  string `json:"path"`
}

func toPhotoResponse(p domain.Photo) photoResponse {
	return photoResponse{ID: p.ID, Title: p.Title, Color: p.ColorToken, Path: route.PhotoPath(p.ID)}
}

type getPhotoResponse struct {
	photoResponse
	RequestedID string `json:"requested_id"`
	FellBack    bool   `json:"fell_back"`
}

type renamePhotoRequest struct {
	Title string `json:"title" validate:"required,max=80"`
}

type renamePhotoResponse struct {
	Photo   photoResponse `json:"photo"`
	Changed bool          `json:"changed"`
}

// List handles GET /api/photos.
func (h *PhotoHandler) List(c echo.Context) error {
	photos := h.photos.List(c.Request().Context())
	out := make([]photoResponse, 0, len(photos))
	for _, p := range photos {
		out = append(out, toPhotoResponse(p))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /api/photos/:id. An unknown id answers with the default
// photo and fell_back set, the same way the photo screen does.
func (h *PhotoHandler) Get(c echo.Context) error {
	id := c.Param("id")
	p, fellBack := h.photos.Get(c.Request().Context(), id)
	return c.JSON(http.StatusOK, getPhotoResponse{
		photoResponse: toPhotoResponse(p),
		RequestedID:   id,
		FellBack:      fellBack,
	})
}

// Rename handles PATCH /api/photos/:id.
func (h *PhotoHandler) Rename(c echo.Context) error {
	var req renamePhotoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p, changed, err := h.photos.Rename(c.Request().Context(), c.Param("id"), req.Title)
	if err != nil {
		h.metrics.PhotoTitleUpdates.WithLabelValues(metrics.ResultError).Inc()
		return err
	}
	result := metrics.ResultUnchanged
	if changed {
		result = metrics.ResultChanged
	}
	h.metrics.PhotoTitleUpdates.WithLabelValues(result).Inc()

	return c.JSON(http.StatusOK, renamePhotoResponse{Photo: toPhotoResponse(p), Changed: changed})
}
