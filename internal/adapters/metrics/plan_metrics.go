package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PlanResult summarises one planning run for metrics purposes
type PlanResult struct {
	Recipe   string
	Success  bool
	Duration float64
	Nodes    int

	// ProducersBySource maps producer kind to total planned producers
	ProducersBySource map[string]int
}

// PlanMetricsCollector handles all production-line planning metrics
type PlanMetricsCollector struct {
	plansTotal       *prometheus.CounterVec
	planDuration     *prometheus.HistogramVec
	plannedProducers *prometheus.GaugeVec
	planNodes        *prometheus.GaugeVec
}

// NewPlanMetricsCollector creates a new plan metrics collector
func NewPlanMetricsCollector() *PlanMetricsCollector {
	return &PlanMetricsCollector{
		plansTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "plans_total",
				Help:      "Total number of production line plans by recipe and status",
			},
			[]string{"recipe", "status"},
		),

		planDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "plan_duration_seconds",
				Help:      "Time spent building and solving a production line",
				Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
			},
			[]string{"recipe"},
		),

		plannedProducers: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "planned_producers",
				Help:      "Producers in the most recent plan for a recipe, by producer kind",
			},
			[]string{"recipe", "source"},
		),

		planNodes: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "plan_nodes",
				Help:      "Dependency tree size of the most recent plan for a recipe",
			},
			[]string{"recipe"},
		),
	}
}

// Register registers all plan metrics with the Prometheus registry
func (c *PlanMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	metrics := []prometheus.Collector{
		c.plansTotal,
		c.planDuration,
		c.plannedProducers,
		c.planNodes,
	}

	for _, metric := range metrics {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}

	return nil
}

// RecordPlan records the outcome of a planning run
func (c *PlanMetricsCollector) RecordPlan(result PlanResult) {
	status := "success"
	if !result.Success {
		status = "error"
	}

	c.plansTotal.WithLabelValues(result.Recipe, status).Inc()
	c.planDuration.WithLabelValues(result.Recipe).Observe(result.Duration)

	if !result.Success {
		return
	}

	c.planNodes.WithLabelValues(result.Recipe).Set(float64(result.Nodes))
	for source, count := range result.ProducersBySource {
		c.plannedProducers.WithLabelValues(result.Recipe, source).Set(float64(count))
	}
}
