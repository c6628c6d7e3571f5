// File: metrics.go
// Role: an optional prometheus endpoint for watching convergence live
// without parsing the theta stream (domain-stack expansion, not a
// Non-goal statistical computation — these gauges mirror values already
// written to disk).
package driver

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds one task's prometheus instrumentation. The zero value is
// not usable; construct with NewMetrics.
type Metrics struct {
	reg             *prometheus.Registry
	theta           *prometheus.GaugeVec
	acceptRate      prometheus.Gauge
	dzArc           prometheus.Gauge
	outerIterations prometheus.Counter
}

// NewMetrics registers the task's gauges on a fresh registry (one
// registry per task, never shared across the independent OS processes
// spec §5 describes).
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		reg: reg,
		theta: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "ergmee_theta",
			Help: "Current parameter value per effect.",
		}, []string{"effect"}),
		acceptRate: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ergmee_accept_rate",
			Help: "Most recent sweep's acceptance rate.",
		}),
		dzArc: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ergmee_dzarc",
			Help: "Most recent IFD sweep's signed arc-count delta.",
		}),
		outerIterations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ergmee_outer_iterations_total",
			Help: "Count of completed EE outer iterations.",
		}),
	}
	reg.MustRegister(m.theta, m.acceptRate, m.dzArc, m.outerIterations)

	return m
}

// Observe records one emitted iteration's values against names (the
// registry's effect names, not including the Arc/ifd_aux slot).
func (m *Metrics) Observe(names []string, theta []float64, acceptanceRate float64) {
	for i, name := range names {
		if i < len(theta) {
			m.theta.WithLabelValues(name).Set(theta[i])
		}
	}
	m.acceptRate.Set(acceptanceRate)
}

// ObserveDzArc records an IFD sweep's signed arc-count delta.
func (m *Metrics) ObserveDzArc(v float64) { m.dzArc.Set(v) }

// IncOuterIteration counts one completed EE outer iteration.
func (m *Metrics) IncOuterIteration() { m.outerIterations.Inc() }

// Serve starts the metrics HTTP server on addr (e.g. ":9090") in a new
// goroutine and returns at once; it never blocks the estimation loop (spec
// §11/SPEC_FULL.md §11: read-only observer, own goroutine per task).
func (m *Metrics) Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() { _ = srv.ListenAndServe() }()

	return srv
}
