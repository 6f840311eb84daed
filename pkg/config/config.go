package config

// Config is the root configuration structure.
type Config struct {
	// Telemetry contains logging and metrics configuration.
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Space contains limits enforced by configuration spaces.
	Space SpaceConfig `yaml:"space"`
}

// TelemetryConfig contains configuration for observability.
type TelemetryConfig struct {
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains metrics collection configuration.
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level to emit.
	// Options: "debug", "info", "warn", "error"
	// Default: "info"
	Level string `yaml:"level"`

	// Format controls the log output format.
	// Options: "json", "text", "console"
	// Default: "json"
	Format string `yaml:"format"`

	// AddSource includes file and line number in log entries.
	// Default: false
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig contains Prometheus metrics configuration.
type MetricsConfig struct {
	// Enabled controls whether metrics are recorded.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// Namespace is the metric name prefix.
	// Default: "configspace"
	Namespace string `yaml:"namespace"`

	// Subsystem is the metric subsystem name.
	// Default: "conditions"
	Subsystem string `yaml:"subsystem"`
}

// SpaceConfig contains limits applied when condition trees are registered.
type SpaceConfig struct {
	// MaxConditionDepth is the deepest condition tree accepted. A single
	// condition has depth 1.
	// Default: 10
	MaxConditionDepth int `yaml:"max_condition_depth"`
}
