// Package hyperparameter provides the hyperparameter kinds that condition
// trees are built over.
//
// Each kind knows its name, whether a value lies in its domain, and its default
// value. Sampling is not provided.
//
// # Kinds
//
// Constant: a single fixed value
//
// Categorical: an ordered set of choices
//
// UniformFloat / UniformInteger: a bounded range, optionally on a log scale
//
// NormalFloat / NormalInteger: an unbounded range described by mu and sigma
//
// # Basic Usage
//
//	loss, err := hyperparameter.NewCategorical("loss", []any{"hinge", "log"}, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	loss.IsLegal("log")   // true
//	loss.IsLegal("huber") // false
//
//	epsilon, err := hyperparameter.NewUniformFloat("epsilon", 1e-5, 1e-1,
//	    hyperparameter.NumericOptions{Log: true, Default: 1e-4})
//
// All kinds are immutable after construction.
package hyperparameter
