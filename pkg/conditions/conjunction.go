package conditions

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Operator is the boolean connective of a Conjunction. Its value is the infix
// token used when rendering.
type Operator string

const (
	OperatorAnd Operator = "&&"
	OperatorOr  Operator = "||"
)

// Conjunction combines two or more components that all constrain the same
// child hyperparameter. Conjunctions are immutable and may be nested.
type Conjunction struct {
	operator   Operator
	components []Component
	leaves     []*Condition
}

// NewAndConjunction holds when every component holds.
func NewAndConjunction(components ...Component) (*Conjunction, error) {
	return newConjunction(OperatorAnd, components)
}

// NewOrConjunction holds when at least one component holds.
func NewOrConjunction(components ...Component) (*Conjunction, error) {
	return newConjunction(OperatorOr, components)
}

// MustAndConjunction is like NewAndConjunction but panics on error.
func MustAndConjunction(components ...Component) *Conjunction {
	return must(NewAndConjunction(components...))
}

// MustOrConjunction is like NewOrConjunction but panics on error.
func MustOrConjunction(components ...Component) *Conjunction {
	return must(NewOrConjunction(components...))
}

func newConjunction(op Operator, components []Component) (*Conjunction, error) {
	for i, c := range components {
		if isNil(c) {
			return nil, typeConstraintError(fmt.Sprintf("component %d", i), "condition or conjunction")
		}
	}
	if len(components) < 2 {
		return nil, &Error{
			Kind:    ErrorKindArity,
			Message: fmt.Sprintf("a conjunction needs at least two components, got %d", len(components)),
		}
	}

	leaves := collectLeaves(components)
	child := leaves[0].child.Name()
	for _, leaf := range leaves[1:] {
		if leaf.child.Name() != child {
			return nil, &Error{
				Kind:    ErrorKindStructural,
				Message: "all conjunctions and conditions must have the same child",
				Child:   leaf.child.Name(),
				Parent:  leaf.parent.Name(),
			}
		}
	}

	return &Conjunction{
		operator:   op,
		components: append([]Component(nil), components...),
		leaves:     leaves,
	}, nil
}

// collectLeaves flattens components to their distinct leaf conditions.
func collectLeaves(components []Component) []*Condition {
	seen := make(map[uint64][]*Condition)
	var leaves []*Condition
	for _, c := range components {
		for _, leaf := range c.DescendantLiteralConditions() {
			h := leaf.Hash()
			dup := false
			for _, s := range seen[h] {
				if s.Equal(leaf) {
					dup = true
					break
				}
			}
			if dup {
				continue
			}
			seen[h] = append(seen[h], leaf)
			leaves = append(leaves, leaf)
		}
	}
	return leaves
}

// Operator returns the connective of the conjunction.
func (c *Conjunction) Operator() Operator { return c.operator }

// Components returns a copy of the direct components in construction order.
func (c *Conjunction) Components() []Component {
	return append([]Component(nil), c.components...)
}

// Child returns the hyperparameter shared by every leaf.
func (c *Conjunction) Child() Hyperparameter { return c.leaves[0].child }

// Evaluate combines the components left to right, short-circuiting.
func (c *Conjunction) Evaluate(assignment Assignment) bool {
	switch c.operator {
	case OperatorAnd:
		for _, component := range c.components {
			if !component.Evaluate(assignment) {
				return false
			}
		}
		return true
	case OperatorOr:
		for _, component := range c.components {
			if component.Evaluate(assignment) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// String renders the components joined by the operator inside parentheses.
// Nested conjunctions render themselves; same-operator nesting is not flattened.
func (c *Conjunction) String() string {
	parts := make([]string, len(c.components))
	for i, component := range c.components {
		parts[i] = component.String()
	}
	return "(" + strings.Join(parts, " "+string(c.operator)+" ") + ")"
}

// Equal reports whether other is a conjunction with the same operator and
// pairwise equal components in the same order.
func (c *Conjunction) Equal(other any) bool {
	o, ok := other.(*Conjunction)
	if !ok || c == nil || o == nil {
		return ok && c == o
	}
	if c.operator != o.operator || len(c.components) != len(o.components) {
		return false
	}
	for i := range c.components {
		if !c.components[i].Equal(o.components[i]) {
			return false
		}
	}
	return true
}

// Hash returns a structural hash; equal conjunctions hash equal.
func (c *Conjunction) Hash() uint64 {
	return xxhash.Sum64String(c.key())
}

func (c *Conjunction) key() string {
	var sb strings.Builder
	sb.WriteString("conj(")
	sb.WriteString(string(c.operator))
	for _, component := range c.components {
		sb.WriteString(",")
		sb.WriteString(componentKey(component))
	}
	sb.WriteString(")")
	return sb.String()
}

func componentKey(c Component) string {
	switch v := c.(type) {
	case *Condition:
		return v.key()
	case *Conjunction:
		return v.key()
	default:
		return ""
	}
}

// Children returns the child of every leaf, one entry per distinct leaf.
func (c *Conjunction) Children() []Hyperparameter {
	children := make([]Hyperparameter, len(c.leaves))
	for i, leaf := range c.leaves {
		children[i] = leaf.child
	}
	return children
}

// Parents returns the parent of every distinct leaf.
func (c *Conjunction) Parents() []Hyperparameter {
	parents := make([]Hyperparameter, len(c.leaves))
	for i, leaf := range c.leaves {
		parents[i] = leaf.parent
	}
	return parents
}

// DescendantLiteralConditions returns the distinct leaf conditions reachable
// through nested conjunctions.
func (c *Conjunction) DescendantLiteralConditions() []*Condition {
	return append([]*Condition(nil), c.leaves...)
}

func (*Conjunction) component() {}
