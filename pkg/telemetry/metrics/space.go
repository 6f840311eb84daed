package metrics

import (
	"hpolib-hq/configspace/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// SpaceMetrics tracks the contents of a configuration space.
type SpaceMetrics struct {
	hyperparameters       prometheus.Gauge
	conditions            prometheus.Gauge
	rejectionsTotal       *prometheus.CounterVec
	assignmentChecksTotal *prometheus.CounterVec
}

// NewSpaceMetrics creates and registers space metrics with the provided
// registry.
func NewSpaceMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *SpaceMetrics {
	sm := &SpaceMetrics{
		hyperparameters: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "hyperparameters_registered",
				Help:      "Number of hyperparameters registered in the space",
			},
		),

		conditions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "conditions_registered",
				Help:      "Number of condition trees registered in the space",
			},
		),

		rejectionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "condition_rejections_total",
				Help:      "Total number of conditions rejected by the space",
			},
			[]string{"reason"},
		),

		assignmentChecksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "assignment_checks_total",
				Help:      "Total number of assignments validated against the space",
			},
			[]string{"result"},
		),
	}

	registry.MustRegister(
		sm.hyperparameters,
		sm.conditions,
		sm.rejectionsTotal,
		sm.assignmentChecksTotal,
	)

	return sm
}
