// Package metrics defines the Prometheus instrumentation for the API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portfoliomaker"

// Metrics holds the server's collectors. All are registered on the
// registry passed to New, never on the global default.
type Metrics struct {
	Generations       *prometheus.CounterVec
	InferenceDuration *prometheus.HistogramVec
}

// New registers the collectors. sessionCount feeds the active-sessions
// gauge; it is read at scrape time.
func New(reg prometheus.Registerer, sessionCount func() int) *Metrics {
	factory := promauto.With(reg)

	m := &Metrics{
		Generations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_total",
			Help:      "Content generations by prompt kind and outcome.",
		}, []string{"kind", "outcome"}),
		InferenceDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "inference_duration_seconds",
			Help:      "Wall time of inference calls, including streaming.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}, []string{"kind"}),
	}

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_sessions",
		Help:      "Live sessions held in memory.",
	}, func() float64 { return float64(sessionCount()) })

	return m
}

// ObserveGeneration records one finished generation.
func (m *Metrics) ObserveGeneration(kind, outcome string, seconds float64) {
	m.Generations.WithLabelValues(kind, outcome).Inc()
	m.InferenceDuration.WithLabelValues(kind).Observe(seconds)
}
