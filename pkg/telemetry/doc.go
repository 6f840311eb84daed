// Package telemetry groups the observability helpers for configspace.
//
//   - logging: slog logger construction from configuration
//   - metrics: Prometheus metrics for condition evaluation
package telemetry
