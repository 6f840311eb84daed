package metrics

import (
	"strconv"
	"time"

	"hpolib-hq/configspace/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// ActivationMetrics tracks condition evaluation.
//
// Metrics:
//   - configspace_conditions_activation_checks_total: checks by child and outcome
//   - configspace_conditions_activation_check_duration_seconds: evaluation time
type ActivationMetrics struct {
	checksTotal   *prometheus.CounterVec
	checkDuration prometheus.Histogram
}

// NewActivationMetrics creates and registers activation metrics with the
// provided registry.
func NewActivationMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *ActivationMetrics {
	am := &ActivationMetrics{
		checksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "activation_checks_total",
				Help:      "Total number of hyperparameter activation checks",
			},
			[]string{"child", "active"},
		),

		checkDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "activation_check_duration_seconds",
				Help:      "Duration of condition tree evaluation in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.0000001, 4, 10), // 100ns to ~26ms
			},
		),
	}

	registry.MustRegister(am.checksTotal, am.checkDuration)

	return am
}

// RecordCheck records one evaluation of a child's condition tree.
func (am *ActivationMetrics) RecordCheck(child string, active bool, duration time.Duration) {
	am.checksTotal.WithLabelValues(child, strconv.FormatBool(active)).Inc()
	am.checkDuration.Observe(duration.Seconds())
}
