// Package metrics defines the Prometheus metrics of the slotboard API. All
// metrics live on a Registry owned by the caller, so tests can build as many
// as they like.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "slotboard"

// Photo title update results.
const (
	ResultChanged   = "changed"
	ResultUnchanged = "unchanged"
	ResultError     = "error"
)

type Metrics struct {
	Registry *prometheus.Registry

	// ScreensRendered counts composed screens.
	// Label:
	//   - kind: the route kind (e.g. "domain", "photo", "dashboard")
	ScreensRendered *prometheus.CounterVec

	// PhotoTitleUpdates counts rename attempts.
	// Label:
	//   - result: "changed", "unchanged" or "error"
	PhotoTitleUpdates *prometheus.CounterVec

	// AccessDenied counts screens that replaced financial content with an
	// access-denied panel.
	// Label:
	//   - role: the role that asked
	AccessDenied *prometheus.CounterVec

	// RequestDuration measures handler latency.
	// Labels:
	//   - route: the echo route pattern (e.g. "/api/photos/:id")
	//   - code: the response status code
	RequestDuration *prometheus.HistogramVec
}

// New registers every metric on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		ScreensRendered: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "screens_rendered_total",
				Help:      "Total number of screens composed, by route kind.",
			},
			[]string{"kind"},
		),
		PhotoTitleUpdates: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "photo_title_updates_total",
				Help:      "Total number of photo rename requests, by result.",
			},
			[]string{"result"},
		),
		AccessDenied: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "access_denied_total",
				Help:      "Total number of screens that showed an access-denied panel, by role.",
			},
			[]string{"role"},
		),
		RequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of API requests.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "code"},
		),
	}
}
