package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// Namespace for all metrics
	namespace = "factory_planner"
	// Subsystem for planner metrics
	subsystem = "planner"
)

var (
	// Registry is the global Prometheus registry for all metrics
	Registry *prometheus.Registry

	// globalPlanCollector is the singleton plan metrics collector
	// Set by SetGlobalPlanCollector() when metrics are enabled
	globalPlanCollector PlanMetricsRecorder
)

// PlanMetricsRecorder defines the interface for recording planning events
// This interface is used by application code to record metrics
type PlanMetricsRecorder interface {
	RecordPlan(result PlanResult)
}

// InitRegistry initializes the Prometheus registry
// Should be called once at application startup if metrics are enabled
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// GetRegistry returns the global Prometheus registry
// Returns nil if metrics are not initialized
func GetRegistry() *prometheus.Registry {
	return Registry
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// Reset drops the registry and the global collectors
func Reset() {
	Registry = nil
	globalPlanCollector = nil
}

// SetGlobalPlanCollector sets the global plan metrics collector
func SetGlobalPlanCollector(collector PlanMetricsRecorder) {
	globalPlanCollector = collector
}

// RecordPlan records a finished planning run globally
func RecordPlan(result PlanResult) {
	if globalPlanCollector != nil {
		globalPlanCollector.RecordPlan(result)
	}
}
