// SPDX-License-Identifier: MIT

package main

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "regina"

// metrics collects run statistics in a private registry, written out as a
// Prometheus text file at exit.
type metrics struct {
	reg *prometheus.Registry

	// runs counts finished runs. Labels: mode, outcome (complete, cancelled, error).
	runs *prometheus.CounterVec
	// solutions counts reported solutions. Labels: mode.
	solutions *prometheus.CounterVec
	// nodes counts visited search tree nodes. Labels: mode.
	nodes *prometheus.CounterVec
	// pivots counts tableau pivots. Labels: mode.
	pivots *prometheus.CounterVec
	// duration measures wall time per run. Labels: mode.
	duration *prometheus.HistogramVec
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &metrics{
		reg: reg,
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "traversal",
			Name:      "runs_total",
			Help:      "Finished traversal runs by mode and outcome",
		}, []string{"mode", "outcome"}),
		solutions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "traversal",
			Name:      "solutions_total",
			Help:      "Solutions reported by mode",
		}, []string{"mode"}),
		nodes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "traversal",
			Name:      "nodes_total",
			Help:      "Search tree nodes visited by mode",
		}, []string{"mode"}),
		pivots: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "tableau",
			Name:      "pivots_total",
			Help:      "Tableau pivots performed by mode",
		}, []string{"mode"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "traversal",
			Name:      "run_duration_seconds",
			Help:      "Wall time of one traversal run",
			Buckets:   []float64{0.001, 0.01, 0.1, 1, 10, 60, 600},
		}, []string{"mode"}),
	}
}

// observe records one run; r is nil when the run failed.
func (m *metrics) observe(mode string, r *result, elapsed time.Duration) {
	m.duration.WithLabelValues(mode).Observe(elapsed.Seconds())
	switch {
	case r == nil:
		m.runs.WithLabelValues(mode, "error").Inc()

		return
	case r.Complete:
		m.runs.WithLabelValues(mode, "complete").Inc()
	default:
		m.runs.WithLabelValues(mode, "cancelled").Inc()
	}
	m.solutions.WithLabelValues(mode).Add(float64(len(r.Solutions)))
	m.nodes.WithLabelValues(mode).Add(float64(r.Nodes))
	m.pivots.WithLabelValues(mode).Add(float64(r.Pivots))
}

// write dumps the registry to path in the text exposition format.
func (m *metrics) write(path string) error {
	return prometheus.WriteToTextfile(path, m.reg)
}
