package api

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/alexanderramin/slotboard/internal/api/handler"
	"github.com/alexanderramin/slotboard/internal/api/metrics"
	"github.com/alexanderramin/slotboard/internal/service"
)

// Deps are the services the API serves. The API keeps no session: every
// screen request starts from the default selection.
type Deps struct {
	Screens    service.ScreenService
	Photos     service.PhotoService
	Metrics    *metrics.Metrics
	Logger     zerolog.Logger
	InstanceID string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	if d.Metrics == nil {
		d.Metrics = metrics.New()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Logger, d.Metrics))

	// --- Handlers ---
	health := handler.NewHealthHandler(d.InstanceID)
	access := handler.NewAccessHandler()
	photos := handler.NewPhotoHandler(d.Photos, d.Metrics)
	screens := handler.NewScreenHandler(d.Screens, d.Metrics)

	e.GET("/health", health.Liveness)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(d.Metrics.Registry, promhttp.HandlerOpts{})))

	g := e.Group("/api")
	g.GET("/access", access.List)
	g.GET("/access/:role", access.Get)
	g.GET("/photos", photos.List)
	g.GET("/photos/:id", photos.Get)
	g.PATCH("/photos/:id", photos.Rename)
	g.GET("/screen", screens.Get)

	return e
}

// requestLogger writes one zerolog line per request and records its
// latency.
func requestLogger(log zerolog.Logger, m *metrics.Metrics) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			m.RequestDuration.
				WithLabelValues(c.Path(), strconv.Itoa(v.Status)).
				Observe(v.Latency.Seconds())

			e := log.Info()
			if v.Error != nil {
				e = log.Warn().Err(v.Error)
			}
			e.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency.Round(time.Microsecond)).
				Str("request_id", v.RequestID).
				Msg("http_request")
			return nil
		},
	})
}
