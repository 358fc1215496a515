package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CommandMetricsCollector handles mediator command/query execution metrics
type CommandMetricsCollector struct {
	commandDuration  *prometheus.HistogramVec
	commandsTotal    *prometheus.CounterVec
	commandsInFlight prometheus.Gauge
}

// NewCommandMetricsCollector creates a new command metrics collector
func NewCommandMetricsCollector() *CommandMetricsCollector {
	return &CommandMetricsCollector{
		commandDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "command_duration_seconds",
				Help:      "Command execution duration distribution",
				Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
			},
			[]string{"command", "status"},
		),

		commandsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "commands_total",
				Help:      "Total number of commands executed by type and status",
			},
			[]string{"command", "status"},
		),

		commandsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "commands_in_flight",
				Help:      "Commands currently being handled",
			},
		),
	}
}

// Register registers all command metrics with the Prometheus registry
func (c *CommandMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	for _, metric := range []prometheus.Collector{c.commandDuration, c.commandsTotal, c.commandsInFlight} {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}
	return nil
}

// CommandStarted marks a command as in flight
func (c *CommandMetricsCollector) CommandStarted() {
	c.commandsInFlight.Inc()
}

// RecordCommandExecution records a finished command
func (c *CommandMetricsCollector) RecordCommandExecution(commandName string, duration float64, success bool) {
	c.commandsInFlight.Dec()

	status := "success"
	if !success {
		status = "error"
	}

	c.commandDuration.WithLabelValues(commandName, status).Observe(duration)
	c.commandsTotal.WithLabelValues(commandName, status).Inc()
}
