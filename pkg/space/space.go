package space

import (
	"log/slog"
	"reflect"
	"sync"

	"hpolib-hq/configspace/pkg/conditions"
	"hpolib-hq/configspace/pkg/config"
	"hpolib-hq/configspace/pkg/hyperparameter"
	"hpolib-hq/configspace/pkg/telemetry/metrics"
)

// Options configures a Space. The zero value is usable.
type Options struct {
	// Logger receives debug records for registrations and activity
	// decisions. Nil means slog.Default().
	Logger *slog.Logger

	// Metrics records activation checks and rejections. Nil disables metrics.
	Metrics *metrics.Collector

	// MaxConditionDepth limits the nesting of condition trees. Zero means
	// config.DefaultMaxConditionDepth.
	MaxConditionDepth int
}

// Space holds hyperparameters and the condition tree of each conditional
// hyperparameter.
type Space struct {
	mu sync.RWMutex

	logger   *slog.Logger
	metrics  *metrics.Collector
	maxDepth int

	hyperparameters map[string]hyperparameter.Hyperparameter
	order           []string

	conditions     map[string]conditions.Component
	conditionOrder []string

	// parents maps a child to its distinct parent names, children the reverse.
	parents  map[string][]string
	children map[string][]string
}

// New creates an empty Space.
func New(opts Options) *Space {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	maxDepth := opts.MaxConditionDepth
	if maxDepth <= 0 {
		maxDepth = config.DefaultMaxConditionDepth
	}

	return &Space{
		logger:          logger,
		metrics:         opts.Metrics,
		maxDepth:        maxDepth,
		hyperparameters: make(map[string]hyperparameter.Hyperparameter),
		conditions:      make(map[string]conditions.Component),
		parents:         make(map[string][]string),
		children:        make(map[string][]string),
	}
}

// NewFromConfig creates an empty Space with the limits from cfg.
func NewFromConfig(cfg config.SpaceConfig, logger *slog.Logger, collector *metrics.Collector) *Space {
	return New(Options{
		Logger:            logger,
		Metrics:           collector,
		MaxConditionDepth: cfg.MaxConditionDepth,
	})
}

// AddHyperparameter registers hp. Names must be unique within the space.
func (s *Space) AddHyperparameter(hp hyperparameter.Hyperparameter) error {
	if hp == nil || isNilPointer(hp) {
		return newError(ErrorKindInvalid, "", "hyperparameter must not be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	name := hp.Name()
	if _, exists := s.hyperparameters[name]; exists {
		return newError(ErrorKindDuplicate, name, "hyperparameter '%s' is already registered", name)
	}

	s.hyperparameters[name] = hp
	s.order = append(s.order, name)
	s.metrics.SetHyperparametersRegistered(len(s.order))

	s.logger.Debug("hyperparameter added", "name", name)
	return nil
}

// AddHyperparameters registers each hyperparameter in turn, stopping at the
// first error.
func (s *Space) AddHyperparameters(hps ...hyperparameter.Hyperparameter) error {
	for _, hp := range hps {
		if err := s.AddHyperparameter(hp); err != nil {
			return err
		}
	}
	return nil
}

// AddCondition registers the condition tree of its child hyperparameter.
func (s *Space) AddCondition(c conditions.Component) error {
	if c == nil || isNilPointer(c) {
		return s.reject(newError(ErrorKindInvalid, "", "condition must not be nil"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	child := c.Children()[0].Name()
	if _, ok := s.hyperparameters[child]; !ok {
		err := newError(ErrorKindUnknown, child,
			"child hyperparameter '%s' of condition %s is not registered", child, c)
		err.Suggestion = suggestName(child, s.order)
		return s.reject(err)
	}
	if existing, ok := s.conditions[child]; ok {
		return s.reject(newError(ErrorKindDuplicate, child,
			"hyperparameter '%s' already has the condition %s", child, existing))
	}

	parents := distinctNames(c.Parents())
	for _, parent := range parents {
		if _, ok := s.hyperparameters[parent]; !ok {
			err := newError(ErrorKindUnknown, parent,
				"parent hyperparameter '%s' of condition %s is not registered", parent, c)
			err.Suggestion = suggestName(parent, s.order)
			return s.reject(err)
		}
	}

	if depth := conditions.Depth(c); depth > s.maxDepth {
		return s.reject(newError(ErrorKindDepth, child,
			"condition %s has depth %d, limit is %d", c, depth, s.maxDepth))
	}

	for _, parent := range parents {
		if s.reachable(child, parent) {
			return s.reject(newError(ErrorKindCycle, child,
				"condition %s creates a cycle: '%s' already depends on '%s'", c, parent, child))
		}
	}

	s.conditions[child] = c
	s.conditionOrder = append(s.conditionOrder, child)
	s.parents[child] = parents
	for _, parent := range parents {
		s.children[parent] = append(s.children[parent], child)
	}
	s.metrics.SetConditionsRegistered(len(s.conditionOrder))

	s.logger.Debug("condition added",
		"child", child,
		"parents", parents,
		"condition", c.String(),
	)
	return nil
}

// AddConditions registers each condition tree in turn, stopping at the
// first error.
func (s *Space) AddConditions(cs ...conditions.Component) error {
	for _, c := range cs {
		if err := s.AddCondition(c); err != nil {
			return err
		}
	}
	return nil
}

func (s *Space) reject(err *Error) error {
	s.metrics.RecordConditionRejection(string(err.Kind))
	s.logger.Debug("condition rejected", "reason", err.Kind, "error", err.Message)
	return err
}

// reachable reports whether to can be reached from from along parent to
// child edges. Callers hold s.mu.
func (s *Space) reachable(from, to string) bool {
	seen := map[string]bool{from: true}
	stack := []string{from}
	for len(stack) > 0 {
		name := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if name == to {
			return true
		}
		for _, next := range s.children[name] {
			if !seen[next] {
				seen[next] = true
				stack = append(stack, next)
			}
		}
	}
	return false
}

// Hyperparameter returns the hyperparameter registered under name.
func (s *Space) Hyperparameter(name string) (hyperparameter.Hyperparameter, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hp, ok := s.hyperparameters[name]
	return hp, ok
}

// Hyperparameters returns all hyperparameters in registration order.
func (s *Space) Hyperparameters() []hyperparameter.Hyperparameter {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]hyperparameter.Hyperparameter, len(s.order))
	for i, name := range s.order {
		out[i] = s.hyperparameters[name]
	}
	return out
}

// Condition returns the condition tree of child, if it has one.
func (s *Space) Condition(child string) (conditions.Component, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.conditions[child]
	return c, ok
}

// Conditions returns all condition trees in registration order.
func (s *Space) Conditions() []conditions.Component {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]conditions.Component, len(s.conditionOrder))
	for i, child := range s.conditionOrder {
		out[i] = s.conditions[child]
	}
	return out
}

// Parents returns the names of the hyperparameters child is conditioned on.
func (s *Space) Parents(child string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]string(nil), s.parents[child]...)
}

// Children returns the names of the hyperparameters conditioned on parent.
func (s *Space) Children(parent string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]string(nil), s.children[parent]...)
}

// TopologicalOrder returns all hyperparameter names with every parent before
// its children. Ties keep registration order.
func (s *Space) TopologicalOrder() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.topologicalOrder()
}

func (s *Space) topologicalOrder() []string {
	pending := make(map[string]int, len(s.order))
	for _, name := range s.order {
		pending[name] = len(s.parents[name])
	}

	out := make([]string, 0, len(s.order))
	done := make(map[string]bool, len(s.order))
	for len(out) < len(s.order) {
		progressed := false
		for _, name := range s.order {
			if done[name] || pending[name] > 0 {
				continue
			}
			done[name] = true
			out = append(out, name)
			for _, child := range s.children[name] {
				pending[child]--
			}
			progressed = true
			break
		}
		if !progressed {
			// Unreachable: AddCondition keeps the graph acyclic.
			break
		}
	}
	return out
}

func distinctNames(hps []conditions.Hyperparameter) []string {
	seen := make(map[string]bool, len(hps))
	var out []string
	for _, hp := range hps {
		if name := hp.Name(); !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
