// SPDX-License-Identifier: MIT

package registry

import "github.com/prometheus/client_golang/prometheus"

const (
	metricsNamespace = "matshell"
	metricsSubsystem = "registry"
)

// Metrics holds the Prometheus collectors of one Registry.
type Metrics struct {
	Inserts          prometheus.Counter
	Evictions        prometheus.Counter
	TeardownReleases prometheus.Counter
	Lookups          *prometheus.CounterVec
	Live             prometheus.Gauge
}

func newMetrics() *Metrics {
	return &Metrics{
		Inserts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace, Subsystem: metricsSubsystem,
			Name: "inserts_total",
			Help: "Matrices installed into a slot.",
		}),
		Evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace, Subsystem: metricsSubsystem,
			Name: "evictions_total",
			Help: "Matrices released because their slot was reclaimed by an insert.",
		}),
		TeardownReleases: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace, Subsystem: metricsSubsystem,
			Name: "teardown_releases_total",
			Help: "Matrices released by Teardown.",
		}),
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace, Subsystem: metricsSubsystem,
			Name: "lookups_total",
			Help: "Name lookups by result.",
		}, []string{"result"}),
		Live: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace, Subsystem: metricsSubsystem,
			Name: "live_matrices",
			Help: "Occupied slots.",
		}),
	}
}

func (m *Metrics) register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.Inserts, m.Evictions, m.TeardownReleases, m.Lookups, m.Live} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}

	return nil
}

func (m *Metrics) lookup(hit bool) {
	if hit {
		m.Lookups.WithLabelValues("hit").Inc()
		return
	}
	m.Lookups.WithLabelValues("miss").Inc()
}
