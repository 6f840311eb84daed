package metrics

import (
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hpolib-hq/configspace/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func testConfig() *config.MetricsConfig {
	return &config.MetricsConfig{
		Enabled:   true,
		Namespace: "test",
		Subsystem: "conditions",
	}
}

func TestCollector_NewCollector(t *testing.T) {
	cfg := testConfig()
	registry := prometheus.NewRegistry()

	collector := NewCollector(cfg, registry)

	if collector.config != cfg {
		t.Error("Collector config not set correctly")
	}
	if collector.Registry() != registry {
		t.Error("Collector registry not set correctly")
	}
}

func TestCollector_Defaults(t *testing.T) {
	cfg := &config.MetricsConfig{Enabled: true}
	collector := NewCollector(cfg, nil)

	if collector.Registry() == nil {
		t.Fatal("Registry() = nil, want a fresh registry")
	}
	if cfg.Namespace != config.DefaultMetricsNamespace {
		t.Errorf("Namespace = %q, want %q", cfg.Namespace, config.DefaultMetricsNamespace)
	}
	if cfg.Subsystem != config.DefaultMetricsSubsystem {
		t.Errorf("Subsystem = %q, want %q", cfg.Subsystem, config.DefaultMetricsSubsystem)
	}
}

func TestCollector_RecordActivationCheck(t *testing.T) {
	collector := NewCollector(testConfig(), prometheus.NewRegistry())

	collector.RecordActivationCheck("epsilon", true, time.Microsecond)
	collector.RecordActivationCheck("epsilon", true, time.Microsecond)
	collector.RecordActivationCheck("epsilon", false, time.Microsecond)

	if got := testutil.ToFloat64(collector.activationMetrics.checksTotal.WithLabelValues("epsilon", "true")); got != 2 {
		t.Errorf("active checks = %v, want 2", got)
	}
	if got := testutil.ToFloat64(collector.activationMetrics.checksTotal.WithLabelValues("epsilon", "false")); got != 1 {
		t.Errorf("inactive checks = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(collector.activationMetrics.checkDuration); got != 1 {
		t.Errorf("duration histogram series = %d, want 1", got)
	}
}

func TestCollector_SpaceMetrics(t *testing.T) {
	collector := NewCollector(testConfig(), prometheus.NewRegistry())

	collector.SetHyperparametersRegistered(4)
	collector.SetConditionsRegistered(2)
	collector.RecordConditionRejection("cycle")
	collector.RecordConditionRejection("cycle")
	collector.RecordAssignmentCheck(true)
	collector.RecordAssignmentCheck(false)

	if got := testutil.ToFloat64(collector.spaceMetrics.hyperparameters); got != 4 {
		t.Errorf("hyperparameters_registered = %v, want 4", got)
	}
	if got := testutil.ToFloat64(collector.spaceMetrics.conditions); got != 2 {
		t.Errorf("conditions_registered = %v, want 2", got)
	}
	if got := testutil.ToFloat64(collector.spaceMetrics.rejectionsTotal.WithLabelValues("cycle")); got != 2 {
		t.Errorf("condition_rejections_total{reason=cycle} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(collector.spaceMetrics.assignmentChecksTotal.WithLabelValues("invalid")); got != 1 {
		t.Errorf("assignment_checks_total{result=invalid} = %v, want 1", got)
	}
}

func TestCollector_Disabled(t *testing.T) {
	cfg := testConfig()
	cfg.Enabled = false
	collector := NewCollector(cfg, prometheus.NewRegistry())

	collector.RecordActivationCheck("epsilon", true, time.Microsecond)
	collector.SetConditionsRegistered(3)
	collector.RecordConditionRejection("depth")

	if got := testutil.ToFloat64(collector.activationMetrics.checksTotal.WithLabelValues("epsilon", "true")); got != 0 {
		t.Errorf("active checks = %v, want 0 when disabled", got)
	}
	if got := testutil.ToFloat64(collector.spaceMetrics.conditions); got != 0 {
		t.Errorf("conditions_registered = %v, want 0 when disabled", got)
	}
}

func TestCollector_Nil(t *testing.T) {
	var collector *Collector

	// Must not panic.
	collector.RecordActivationCheck("epsilon", true, time.Microsecond)
	collector.SetHyperparametersRegistered(1)
	collector.SetConditionsRegistered(1)
	collector.RecordConditionRejection("cycle")
	collector.RecordAssignmentCheck(true)
}

func TestCollector_CardinalityLimit(t *testing.T) {
	collector := NewCollector(testConfig(), prometheus.NewRegistry())
	collector.cardinalityLimiter = NewCardinalityLimiter(2)

	for i := 0; i < 4; i++ {
		collector.RecordActivationCheck(fmt.Sprintf("child%d", i), true, time.Microsecond)
	}

	if got := testutil.ToFloat64(collector.activationMetrics.checksTotal.WithLabelValues("child1", "true")); got != 1 {
		t.Errorf("child1 checks = %v, want 1", got)
	}
	if got := testutil.ToFloat64(collector.activationMetrics.checksTotal.WithLabelValues(otherLabel, "true")); got != 2 {
		t.Errorf("other checks = %v, want 2", got)
	}
}

func TestCardinalityLimiter(t *testing.T) {
	limiter := NewCardinalityLimiter(2)

	if !limiter.Allow("a") || !limiter.Allow("b") {
		t.Fatal("Allow() rejected a label under the limit")
	}
	if limiter.Allow("c") {
		t.Error("Allow(c) = true, want false past the limit")
	}
	if !limiter.Allow("a") {
		t.Error("Allow(a) = false, want true for a known label")
	}
	if limiter.Count() != 2 {
		t.Errorf("Count() = %d, want 2", limiter.Count())
	}
}

func TestCollector_Handler(t *testing.T) {
	collector := NewCollector(testConfig(), prometheus.NewRegistry())
	collector.SetConditionsRegistered(5)

	rec := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "test_conditions_conditions_registered 5") {
		t.Errorf("metrics output missing conditions gauge:\n%s", body)
	}
}
