// Package metrics exposes Prometheus instruments for the game server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
	"time"
)

const namespace = "lifetune"

// Outcome labels for applied actions.
const (
	OutcomeOK       = "ok"
	OutcomeInvalid  = "invalid"
	OutcomeRejected = "rejected"
)

type Metrics struct {
	registry        *prometheus.Registry
	ActiveTables    prometheus.Gauge
	ActionsTotal    *prometheus.CounterVec
	GamesFinished   prometheus.Counter
	SessionsStored  *prometheus.CounterVec
	PersistDuration prometheus.Histogram
	TablesPruned    prometheus.Counter
}

// New creates instruments registered on their own registry so that several servers can run in one process.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ActiveTables: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_tables",
			Help:      "Number of tables held in memory.",
		}),
		ActionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_total",
			Help:      "Player actions by kind and outcome.",
		}, []string{"kind", "outcome"}),
		GamesFinished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_finished_total",
			Help:      "Games that reached liquidation.",
		}),
		SessionsStored: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_stored_total",
			Help:      "Attempts to persist finished game summaries by result.",
		}, []string{"result"}),
		PersistDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "persist_duration_seconds",
			Help:      "Time spent storing a game summary.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 10), //nolint:mnd // 1ms to ~0.5s
		}),
		TablesPruned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tables_pruned_total",
			Help:      "Idle tables removed by the janitor.",
		}),
	}
	m.registry.MustRegister(
		m.ActiveTables,
		m.ActionsTotal,
		m.GamesFinished,
		m.SessionsStored,
		m.PersistDuration,
		m.TablesPruned,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}), //nolint:exhaustruct // defaults
	)
	return m
}

// Action counts an applied player action.
func (m *Metrics) Action(kind string, outcome string) {
	m.ActionsTotal.WithLabelValues(kind, outcome).Inc()
}

// Stored records a persistence attempt.
func (m *Metrics) Stored(ok bool, took time.Duration) {
	result := "ok"
	if !ok {
		result = "error"
	}
	m.SessionsStored.WithLabelValues(result).Inc()
	m.PersistDuration.Observe(took.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}) //nolint:exhaustruct // defaults
}
