package conditions

// Hyperparameter is the capability a condition needs from a configuration
// parameter. Identity is by name.
type Hyperparameter interface {
	Name() string
	IsLegal(value any) bool
}

// Assignment maps hyperparameter names to concrete values.
type Assignment map[string]any

// Component is a node of a condition tree: either a *Condition leaf or a
// *Conjunction. The set is closed; no other type can implement it.
type Component interface {
	// Evaluate reports whether the subtree holds for the assignment.
	Evaluate(assignment Assignment) bool

	// String renders the subtree in its canonical debugging form.
	String() string

	// Equal reports structural equality. Unrelated types are never equal.
	Equal(other any) bool

	// Hash returns a structural hash consistent with Equal.
	Hash() uint64

	// Children returns the child hyperparameter of every leaf.
	Children() []Hyperparameter

	// Parents returns the parent hyperparameter of every leaf.
	Parents() []Hyperparameter

	// DescendantLiteralConditions returns the distinct leaf conditions,
	// in first-seen order.
	DescendantLiteralConditions() []*Condition

	component()
}

// isNil reports whether c is nil, including typed nil pointers.
func isNil(c Component) bool {
	switch v := c.(type) {
	case nil:
		return true
	case *Condition:
		return v == nil
	case *Conjunction:
		return v == nil
	default:
		return false
	}
}
