// Package metrics provides Prometheus metrics for configuration spaces.
//
// # Metrics
//
//   - Activation checks: how often each child hyperparameter was tested for
//     activity, split by outcome, and how long the checks took
//   - Space size: registered hyperparameters and condition trees
//   - Rejections: conditions and assignments refused, by reason
//
// # Usage
//
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, prometheus.NewRegistry())
//	sp := space.New(space.Options{Metrics: collector})
//
//	http.Handle("/metrics", collector.Handler())
//
// Every recorder is a no-op when metrics are disabled in the configuration.
//
// # Cardinality
//
// Child names become label values. Past a fixed number of distinct children
// the collector reports further names as "other".
package metrics
