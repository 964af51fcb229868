// Package metrics exposes load counters and fetch latency to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	reg           *prometheus.Registry
	loads         *prometheus.CounterVec
	fetchDuration prometheus.Histogram
}

// New registers the directory collectors on reg. Pass a fresh registry per
// process or per test.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		reg: reg,
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "directory_loads_total",
			Help: "Directory loads by result.",
		}, []string{"result"}),
		fetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "directory_fetch_duration_seconds",
			Help:    "Time spent fetching users and albums.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.loads, m.fetchDuration)
	return m
}

// ObserveLoad counts one load and records how long its fetch took.
func (m *Metrics) ObserveLoad(ok bool, d time.Duration) {
	result := "ok"
	if !ok {
		result = "failed"
	}
	m.loads.WithLabelValues(result).Inc()
	m.fetchDuration.Observe(d.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

// Loads exposes the counter for tests.
func (m *Metrics) Loads() *prometheus.CounterVec {
	return m.loads
}
