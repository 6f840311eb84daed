package conditions

// Visitor is called for each node during Walk. Returning an error stops the
// traversal and Walk returns that error.
type Visitor interface {
	VisitCondition(*Condition) error
	VisitConjunction(*Conjunction) error
}

// VisitorFuncs adapts plain functions to Visitor. Nil fields are skipped.
type VisitorFuncs struct {
	Condition   func(*Condition) error
	Conjunction func(*Conjunction) error
}

// VisitCondition implements Visitor.
func (f VisitorFuncs) VisitCondition(c *Condition) error {
	if f.Condition == nil {
		return nil
	}
	return f.Condition(c)
}

// VisitConjunction implements Visitor.
func (f VisitorFuncs) VisitConjunction(c *Conjunction) error {
	if f.Conjunction == nil {
		return nil
	}
	return f.Conjunction(c)
}

// Walk traverses the tree rooted at root depth-first, visiting each
// conjunction before its components.
func Walk(root Component, visitor Visitor) error {
	switch node := root.(type) {
	case *Condition:
		return visitor.VisitCondition(node)
	case *Conjunction:
		if err := visitor.VisitConjunction(node); err != nil {
			return err
		}
		for _, component := range node.components {
			if err := Walk(component, visitor); err != nil {
				return err
			}
		}
	}
	return nil
}

// Depth returns the nesting depth of the tree. A lone condition has depth 1.
func Depth(root Component) int {
	conj, ok := root.(*Conjunction)
	if !ok {
		return 1
	}
	deepest := 0
	for _, component := range conj.components {
		if d := Depth(component); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}
