package config

// MetricsConfig holds metrics collection configuration
type MetricsConfig struct {
	// Enabled controls whether metrics collection is active
	Enabled bool `mapstructure:"enabled"`

	// Output receives the text exposition after each command: stdout, stderr or none
	Output string `mapstructure:"output" validate:"required,oneof=stdout stderr none"`
}
