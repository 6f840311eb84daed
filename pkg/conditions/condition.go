package conditions

import (
	"reflect"
	"strings"

	"github.com/cespare/xxhash/v2"

	"hpolib-hq/configspace/internal/values"
)

// Kind is the relation a Condition expresses between parent and value.
// Its value is the operator used when rendering.
type Kind string

const (
	KindEquals    Kind = "=="
	KindNotEquals Kind = "!="
	KindIn        Kind = "in"
)

// Condition is a leaf of a condition tree: the child is active only when the
// parent's assigned value satisfies the relation. Conditions are immutable.
type Condition struct {
	kind   Kind
	child  Hyperparameter
	parent Hyperparameter
	values []any
}

// NewEqualsCondition activates child when parent == value.
func NewEqualsCondition(child, parent Hyperparameter, value any) (*Condition, error) {
	return newCondition(KindEquals, child, parent, []any{value})
}

// NewNotEqualsCondition activates child when parent != value.
func NewNotEqualsCondition(child, parent Hyperparameter, value any) (*Condition, error) {
	return newCondition(KindNotEquals, child, parent, []any{value})
}

// NewInCondition activates child when parent takes any of vals.
// The order of vals is kept for rendering and equality.
func NewInCondition(child, parent Hyperparameter, vals []any) (*Condition, error) {
	return newCondition(KindIn, child, parent, vals)
}

// MustEqualsCondition is like NewEqualsCondition but panics on error.
func MustEqualsCondition(child, parent Hyperparameter, value any) *Condition {
	return must(NewEqualsCondition(child, parent, value))
}

// MustNotEqualsCondition is like NewNotEqualsCondition but panics on error.
func MustNotEqualsCondition(child, parent Hyperparameter, value any) *Condition {
	return must(NewNotEqualsCondition(child, parent, value))
}

// MustInCondition is like NewInCondition but panics on error.
func MustInCondition(child, parent Hyperparameter, vals []any) *Condition {
	return must(NewInCondition(child, parent, vals))
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func newCondition(kind Kind, child, parent Hyperparameter, vals []any) (*Condition, error) {
	if isNilHyperparameter(child) {
		return nil, typeConstraintError("child", "hyperparameter")
	}
	if isNilHyperparameter(parent) {
		return nil, typeConstraintError("parent", "hyperparameter")
	}
	if child.Name() == parent.Name() {
		return nil, identityError(child.Name())
	}
	if kind == KindIn && len(vals) == 0 {
		return nil, &Error{
			Kind:    ErrorKindIllegalValue,
			Child:   child.Name(),
			Parent:  parent.Name(),
			Message: "an in-condition needs at least one value",
		}
	}

	for _, v := range vals {
		if !parent.IsLegal(v) {
			return nil, illegalValueError(child.Name(), parent.Name(), v)
		}
	}

	return &Condition{
		kind:   kind,
		child:  child,
		parent: parent,
		values: append([]any(nil), vals...),
	}, nil
}

func isNilHyperparameter(hp Hyperparameter) bool {
	if hp == nil {
		return true
	}
	v := reflect.ValueOf(hp)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}

// Kind returns the relation of the condition.
func (c *Condition) Kind() Kind { return c.kind }

// Child returns the hyperparameter this condition activates.
func (c *Condition) Child() Hyperparameter { return c.child }

// Parent returns the hyperparameter whose value is inspected.
func (c *Condition) Parent() Hyperparameter { return c.parent }

// Value returns the compared value of an equals or not-equals condition.
// For in-conditions it returns the first value; use Values instead.
func (c *Condition) Value() any { return c.values[0] }

// Values returns a copy of the compared values.
func (c *Condition) Values() []any {
	return append([]any(nil), c.values...)
}

// Evaluate reports whether the parent's assigned value satisfies the relation.
func (c *Condition) Evaluate(assignment Assignment) bool {
	actual := assignment[c.parent.Name()]

	switch c.kind {
	case KindEquals:
		return values.Equal(actual, c.values[0])
	case KindNotEquals:
		return !values.Equal(actual, c.values[0])
	case KindIn:
		return values.Contains(c.values, actual)
	default:
		return false
	}
}

// String renders "<child> | <parent> <op> <value>".
func (c *Condition) String() string {
	var sb strings.Builder
	sb.WriteString(c.child.Name())
	sb.WriteString(" | ")
	sb.WriteString(c.parent.Name())
	sb.WriteString(" ")
	sb.WriteString(string(c.kind))
	sb.WriteString(" ")
	if c.kind == KindIn {
		sb.WriteString(values.FormatSet(c.values))
	} else {
		sb.WriteString(values.Format(c.values[0]))
	}
	return sb.String()
}

// Equal reports whether other is a condition of the same kind over the same
// child, parent and values. Argument order matters.
func (c *Condition) Equal(other any) bool {
	o, ok := other.(*Condition)
	if !ok || c == nil || o == nil {
		return ok && c == o
	}
	if c.kind != o.kind ||
		c.child.Name() != o.child.Name() ||
		c.parent.Name() != o.parent.Name() ||
		len(c.values) != len(o.values) {
		return false
	}
	for i := range c.values {
		if !values.Equal(c.values[i], o.values[i]) {
			return false
		}
	}
	return true
}

// Hash returns a structural hash; equal conditions hash equal.
func (c *Condition) Hash() uint64 {
	return xxhash.Sum64String(c.key())
}

func (c *Condition) key() string {
	var sb strings.Builder
	sb.WriteString("cond(")
	sb.WriteString(string(c.kind))
	sb.WriteString(",")
	sb.WriteString(c.child.Name())
	sb.WriteString(",")
	sb.WriteString(c.parent.Name())
	for _, v := range c.values {
		sb.WriteString(",")
		sb.WriteString(values.Key(v))
	}
	sb.WriteString(")")
	return sb.String()
}

// Children returns the single child as a slice.
func (c *Condition) Children() []Hyperparameter { return []Hyperparameter{c.child} }

// Parents returns the single parent as a slice.
func (c *Condition) Parents() []Hyperparameter { return []Hyperparameter{c.parent} }

// DescendantLiteralConditions returns the condition itself.
func (c *Condition) DescendantLiteralConditions() []*Condition { return []*Condition{c} }

func (*Condition) component() {}
