package server

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	registry     *prometheus.Registry
	commands     *prometheus.CounterVec
	sessions     prometheus.Gauge
	catalogFiles prometheus.Gauge
}

// newMetrics uses a private registry so several servers can coexist in one
// process.
func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "maraos_commands_total",
			Help: "Console commands dispatched, by name and whether the name resolved.",
		}, []string{"command", "found"}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "maraos_sessions_active",
			Help: "Open websocket console sessions.",
		}),
		catalogFiles: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "maraos_catalog_files",
			Help: "Entries in the served catalog.",
		}),
	}
	m.registry.MustRegister(m.commands, m.sessions, m.catalogFiles)
	return m
}

// observeCommand is the console OnCommand hook. Unknown names are folded
// into one label so clients can't grow the series set.
func (m *metrics) observeCommand(name string, found bool) {
	if !found {
		name = "unknown"
	}
	m.commands.WithLabelValues(name, strconv.FormatBool(found)).Inc()
}
