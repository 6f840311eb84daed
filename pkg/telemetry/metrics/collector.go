package metrics

import (
	"sync"
	"time"

	"hpolib-hq/configspace/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultMaxCardinality bounds the distinct child label values per collector.
const DefaultMaxCardinality = 1000

// otherLabel replaces label values once the cardinality limit is reached.
const otherLabel = "other"

// Collector records metrics for condition evaluation and space bookkeeping.
// A nil *Collector is valid and records nothing.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	activationMetrics *ActivationMetrics
	spaceMetrics      *SpaceMetrics

	cardinalityLimiter *CardinalityLimiter
}

// NewCollector creates a metrics collector with the specified configuration
// and Prometheus registry. If registry is nil, a fresh registry is created.
//
// Example:
//
//	cfg := &config.MetricsConfig{
//		Enabled:   true,
//		Namespace: "configspace",
//		Subsystem: "conditions",
//	}
//	collector := metrics.NewCollector(cfg, nil)
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	if cfg.Namespace == "" {
		cfg.Namespace = config.DefaultMetricsNamespace
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = config.DefaultMetricsSubsystem
	}

	return &Collector{
		config:             cfg,
		registry:           registry,
		activationMetrics:  NewActivationMetrics(cfg, registry),
		spaceMetrics:       NewSpaceMetrics(cfg, registry),
		cardinalityLimiter: NewCardinalityLimiter(DefaultMaxCardinality),
	}
}

func (c *Collector) enabled() bool {
	return c != nil && c.config.Enabled
}

// RecordActivationCheck records one activity test of a child hyperparameter.
//
// Parameters:
//   - child: name of the conditioned hyperparameter
//   - active: outcome of the check
//   - duration: time spent evaluating the condition tree
func (c *Collector) RecordActivationCheck(child string, active bool, duration time.Duration) {
	if !c.enabled() {
		return
	}

	if !c.cardinalityLimiter.Allow(child) {
		child = otherLabel
	}

	c.activationMetrics.RecordCheck(child, active, duration)
}

// SetHyperparametersRegistered sets the number of hyperparameters in a space.
func (c *Collector) SetHyperparametersRegistered(n int) {
	if !c.enabled() {
		return
	}

	c.spaceMetrics.hyperparameters.Set(float64(n))
}

// SetConditionsRegistered sets the number of condition trees in a space.
func (c *Collector) SetConditionsRegistered(n int) {
	if !c.enabled() {
		return
	}

	c.spaceMetrics.conditions.Set(float64(n))
}

// RecordConditionRejection records a condition refused by a space.
//
// Parameters:
//   - reason: short machine-readable cause (e.g., "cycle", "depth", "duplicate")
func (c *Collector) RecordConditionRejection(reason string) {
	if !c.enabled() {
		return
	}

	c.spaceMetrics.rejectionsTotal.WithLabelValues(reason).Inc()
}

// RecordAssignmentCheck records the validation of a full assignment.
//
// Parameters:
//   - valid: true if the assignment had no violations
func (c *Collector) RecordAssignmentCheck(valid bool) {
	if !c.enabled() {
		return
	}

	result := "valid"
	if !valid {
		result = "invalid"
	}
	c.spaceMetrics.assignmentChecksTotal.WithLabelValues(result).Inc()
}

// Registry returns the Prometheus registry used by this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// CardinalityLimiter prevents metric cardinality explosion by limiting
// the number of unique label values.
type CardinalityLimiter struct {
	maxCardinality int
	current        map[string]struct{}
	mu             sync.RWMutex
}

// NewCardinalityLimiter creates a new cardinality limiter with the specified
// maximum cardinality.
func NewCardinalityLimiter(maxCardinality int) *CardinalityLimiter {
	return &CardinalityLimiter{
		maxCardinality: maxCardinality,
		current:        make(map[string]struct{}),
	}
}

// Allow reports whether a label value may be used. Values already seen are
// always allowed; new ones are allowed until the limit is reached.
func (cl *CardinalityLimiter) Allow(label string) bool {
	cl.mu.RLock()
	if _, exists := cl.current[label]; exists {
		cl.mu.RUnlock()
		return true
	}
	cl.mu.RUnlock()

	cl.mu.Lock()
	defer cl.mu.Unlock()

	// Double-check after acquiring write lock
	if _, exists := cl.current[label]; exists {
		return true
	}

	if len(cl.current) >= cl.maxCardinality {
		return false
	}

	cl.current[label] = struct{}{}
	return true
}

// Count returns the current cardinality.
func (cl *CardinalityLimiter) Count() int {
	cl.mu.RLock()
	defer cl.mu.RUnlock()
	return len(cl.current)
}
