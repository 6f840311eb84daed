package space

import (
	"slices"
	"time"

	"hpolib-hq/configspace/pkg/conditions"
)

// IsActive reports whether the named hyperparameter is active under the
// assignment. Unknown names are never active.
func (s *Space) IsActive(name string, assignment conditions.Assignment) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.hyperparameters[name]; !ok {
		return false
	}
	return s.activeSet(assignment)[name]
}

// ActiveHyperparameters returns the names of the active hyperparameters in
// topological order.
func (s *Space) ActiveHyperparameters(assignment conditions.Assignment) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := s.activeSet(assignment)
	var out []string
	for _, name := range s.topologicalOrder() {
		if active[name] {
			out = append(out, name)
		}
	}
	return out
}

// CheckAssignment validates a full assignment against the space. It returns
// nil or an *ErrorList describing every unknown name, every value given to
// an inactive hyperparameter, every active hyperparameter without a value,
// and every illegal value.
func (s *Space) CheckAssignment(assignment conditions.Assignment) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	errs := NewErrorList()
	names := make([]string, 0, len(assignment))
	for name := range assignment {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if _, ok := s.hyperparameters[name]; !ok {
			err := newError(ErrorKindUnknown, name, "hyperparameter '%s' is not part of the space", name)
			err.Suggestion = suggestName(name, s.order)
			errs.Add(err)
		}
	}

	active := s.activeSet(assignment)
	for _, name := range s.topologicalOrder() {
		value, assigned := assignment[name]
		switch {
		case active[name] && !assigned:
			errs.AddError(ErrorKindMissingValue, name, "active hyperparameter '%s' has no value", name)
		case !active[name] && assigned:
			errs.AddError(ErrorKindInactiveValue, name,
				"hyperparameter '%s' is inactive but has the value '%v'", name, value)
		case assigned && !s.hyperparameters[name].IsLegal(value):
			errs.AddError(ErrorKindIllegalValue, name,
				"value '%v' is illegal for hyperparameter '%s'", value, name)
		}
	}

	s.metrics.RecordAssignmentCheck(!errs.HasErrors())
	if errs.HasErrors() {
		s.logger.Debug("assignment rejected", "errors", errs.Count())
	}
	return errs.ToError()
}

// activeSet decides activity for every hyperparameter, parents first.
// Callers hold s.mu.
func (s *Space) activeSet(assignment conditions.Assignment) map[string]bool {
	active := make(map[string]bool, len(s.order))
	for _, name := range s.topologicalOrder() {
		tree, conditional := s.conditions[name]
		if !conditional {
			active[name] = true
			continue
		}

		start := time.Now()
		ok := holds(tree, assignment, active)
		s.metrics.RecordActivationCheck(name, ok, time.Since(start))
		s.logger.Debug("activation decided", "child", name, "active", ok)

		active[name] = ok
	}
	return active
}

// holds evaluates a condition tree where a leaf only holds when its parent is
// active and assigned.
func holds(c conditions.Component, assignment conditions.Assignment, active map[string]bool) bool {
	switch node := c.(type) {
	case *conditions.Condition:
		parent := node.Parent().Name()
		if !active[parent] {
			return false
		}
		if _, ok := assignment[parent]; !ok {
			return false
		}
		return node.Evaluate(assignment)
	case *conditions.Conjunction:
		if node.Operator() == conditions.OperatorAnd {
			for _, sub := range node.Components() {
				if !holds(sub, assignment, active) {
					return false
				}
			}
			return true
		}
		for _, sub := range node.Components() {
			if holds(sub, assignment, active) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
