// Package conditions models when a hyperparameter is active inside a
// configuration space.
//
// A child hyperparameter is only meaningful when its parents hold particular
// values. These prerequisites form a small expression tree:
//
// Condition: a leaf relating one child to one parent (==, !=, in)
//
// Conjunction: an AND (&&) or OR (||) of two or more components, all of which
// constrain the same child
//
// Trees are validated completely when they are built and are immutable
// afterwards, so they can be shared between goroutines without locking.
//
// # Basic Usage
//
//	loss, _ := hyperparameter.NewCategorical("loss", []any{"hinge", "log", "modified_huber"}, nil)
//	epsilon, _ := hyperparameter.NewUniformFloat("epsilon", 1e-5, 1e-1,
//	    hyperparameter.NumericOptions{Log: true})
//
//	cond, err := conditions.NewEqualsCondition(epsilon, loss, "modified_huber")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cond.Evaluate(conditions.Assignment{"loss": "log"}) // false
//	fmt.Println(cond)                                    // epsilon | loss == modified_huber
//
// # Rendering
//
// String output is a debugging format, not a serialization:
//
//	child | parent == 0
//	child | parent in {0, 1, 2}
//	(c | a == 1 && c | b == 1)
//
// Nested conjunctions are rendered as built; an AND inside an AND keeps its own
// parentheses.
//
// # Errors
//
// Constructors return *Error. Use errors.Is with ErrTypeConstraint,
// ErrIdentity, ErrIllegalValue, ErrArity or ErrStructural to tell them apart.
package conditions
