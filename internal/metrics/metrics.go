// Package metrics holds the Prometheus collectors of the simulation service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "baccarat_sim"

// Run modes used as the "mode" label.
const (
	ModeBatch    = "batch"
	ModePlayback = "playback"
)

// Metrics groups the collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	RunsTotal        *prometheus.CounterVec
	HandsTotal       *prometheus.CounterVec
	RunDuration      prometheus.Histogram
	ActivePlaybacks  prometheus.Gauge
	ExpiredPlaybacks prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RunsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Completed simulation runs.",
		}, []string{"strategy", "mode"}),
		HandsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hands_total",
			Help:      "Simulated hands by outcome.",
		}, []string{"outcome"}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of batch runs.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
		ActivePlaybacks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_playbacks",
			Help:      "Playback sessions currently held in memory.",
		}),
		ExpiredPlaybacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "expired_playbacks_total",
			Help:      "Playback sessions removed after their TTL.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RunsTotal,
		m.HandsTotal,
		m.RunDuration,
		m.ActivePlaybacks,
		m.ExpiredPlaybacks,
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
