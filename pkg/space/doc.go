// Package space aggregates hyperparameters and their condition trees into a
// configuration space.
//
// A Space owns at most one condition tree per child hyperparameter. Trees are
// checked against the rest of the space when they are added:
//
//   - the child and every parent must already be registered
//   - the child must not already have a tree
//   - the tree must not be nested deeper than the configured limit
//   - the parent to child graph must stay acyclic
//
// # Activity
//
// A hyperparameter without a condition is always active. A conditional one is
// active when its tree holds, where a leaf only holds if its parent is itself
// active and assigned. Inactive parents therefore switch off whole subtrees:
//
//	sp := space.New(space.Options{})
//	_ = sp.AddHyperparameter(loss)
//	_ = sp.AddHyperparameter(epsilon)
//	_ = sp.AddCondition(conditions.MustEqualsCondition(epsilon, loss, "modified_huber"))
//
//	sp.IsActive("epsilon", conditions.Assignment{"loss": "hinge"}) // false
//
// CheckAssignment reports every problem with an assignment at once as an
// *ErrorList.
//
// A Space is safe for concurrent use.
package space
