// Package observability exposes Prometheus instrumentation for the
// resolution pipeline.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the engine's Prometheus collectors.
type Metrics struct {
	Resolutions *prometheus.CounterVec
	Duration    *prometheus.HistogramVec
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter
}

// New creates the collectors and registers them with the given
// registerer (pass prometheus.DefaultRegisterer for the global one).
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lattice_resolutions_total",
				Help: "Total number of page resolutions",
			},
			[]string{"path", "locale", "status"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "lattice_resolution_duration_seconds",
				Help: "Duration of page resolutions",
			},
			[]string{"path", "locale"},
		),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lattice_render_cache_hits_total",
			Help: "Render cache hits",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lattice_render_cache_misses_total",
			Help: "Render cache misses",
		}),
	}
	reg.MustRegister(m.Resolutions, m.Duration, m.CacheHits, m.CacheMisses)
	return m
}

// ObserveResolution records one resolution outcome.
func (m *Metrics) ObserveResolution(path, locale string, started time.Time, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.Resolutions.WithLabelValues(path, locale, status).Inc()
	m.Duration.WithLabelValues(path, locale).Observe(time.Since(started).Seconds())
}

// ObserveCache records a cache lookup outcome.
func (m *Metrics) ObserveCache(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.CacheHits.Inc()
	} else {
		m.CacheMisses.Inc()
	}
}
