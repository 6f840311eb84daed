package hyperparameter

import (
	"fmt"
	"math"

	"hpolib-hq/configspace/internal/values"
)

// UniformFloat is a real-valued hyperparameter bounded by [lower, upper].
type UniformFloat struct {
	name         string
	lower, upper float64
	log          bool
	defaultValue float64
}

// NewUniformFloat creates a bounded float hyperparameter. Without an explicit
// default the midpoint of the range is used (geometric midpoint on log scale).
func NewUniformFloat(name string, lower, upper float64, opts NumericOptions) (*UniformFloat, error) {
	if err := checkRange(name, lower, upper, opts.Log); err != nil {
		return nil, err
	}
	hp := &UniformFloat{name: name, lower: lower, upper: upper, log: opts.Log}

	if opts.Default == nil {
		hp.defaultValue = midpoint(lower, upper, opts.Log)
		return hp, nil
	}
	d, ok := values.ToFloat64(opts.Default)
	if !ok || !hp.IsLegal(d) {
		return nil, newError(name, "default %s outside [%v, %v]", values.Format(opts.Default), lower, upper)
	}
	hp.defaultValue = d
	return hp, nil
}

// Name implements Hyperparameter.
func (u *UniformFloat) Name() string { return u.name }

// IsLegal reports whether value is a number inside the bounds.
func (u *UniformFloat) IsLegal(value any) bool {
	f, ok := values.ToFloat64(value)
	return ok && f >= u.lower && f <= u.upper
}

// Default returns the default value.
func (u *UniformFloat) Default() any { return u.defaultValue }

// Bounds returns the lower and upper bound.
func (u *UniformFloat) Bounds() (float64, float64) { return u.lower, u.upper }

// Log reports whether the range is on a log scale.
func (u *UniformFloat) Log() bool { return u.log }

// String implements fmt.Stringer.
func (u *UniformFloat) String() string {
	return fmt.Sprintf("%s, Type: UniformFloat, Range: [%v, %v], Default: %v%s",
		u.name, u.lower, u.upper, u.defaultValue, logSuffix(u.log))
}

// UniformInteger is an integer hyperparameter bounded by [lower, upper].
type UniformInteger struct {
	name         string
	lower, upper int64
	log          bool
	defaultValue int64
}

// NewUniformInteger creates a bounded integer hyperparameter. Without an
// explicit default the rounded midpoint of the range is used.
func NewUniformInteger(name string, lower, upper int64, opts NumericOptions) (*UniformInteger, error) {
	if err := checkRange(name, float64(lower), float64(upper), opts.Log); err != nil {
		return nil, err
	}
	hp := &UniformInteger{name: name, lower: lower, upper: upper, log: opts.Log}

	if opts.Default == nil {
		hp.defaultValue = int64(math.Round(midpoint(float64(lower), float64(upper), opts.Log)))
		return hp, nil
	}
	d, ok := toInteger(opts.Default)
	if !ok || !hp.IsLegal(d) {
		return nil, newError(name, "default %s outside [%d, %d]", values.Format(opts.Default), lower, upper)
	}
	hp.defaultValue = d
	return hp, nil
}

// Name implements Hyperparameter.
func (u *UniformInteger) Name() string { return u.name }

// IsLegal reports whether value is an integral number inside the bounds.
func (u *UniformInteger) IsLegal(value any) bool {
	i, ok := toInteger(value)
	return ok && i >= u.lower && i <= u.upper
}

// Default returns the default value.
func (u *UniformInteger) Default() any { return u.defaultValue }

// Bounds returns the lower and upper bound.
func (u *UniformInteger) Bounds() (int64, int64) { return u.lower, u.upper }

// Log reports whether the range is on a log scale.
func (u *UniformInteger) Log() bool { return u.log }

// String implements fmt.Stringer.
func (u *UniformInteger) String() string {
	return fmt.Sprintf("%s, Type: UniformInteger, Range: [%d, %d], Default: %d%s",
		u.name, u.lower, u.upper, u.defaultValue, logSuffix(u.log))
}

// NormalFloat is an unbounded real-valued hyperparameter with mean mu.
type NormalFloat struct {
	name      string
	mu, sigma float64
}

// NewNormalFloat creates a normally distributed float hyperparameter.
// Every real number is legal; the default is mu.
func NewNormalFloat(name string, mu, sigma float64) (*NormalFloat, error) {
	if err := checkNormal(name, sigma); err != nil {
		return nil, err
	}
	return &NormalFloat{name: name, mu: mu, sigma: sigma}, nil
}

// Name implements Hyperparameter.
func (n *NormalFloat) Name() string { return n.name }

// IsLegal reports whether value is a finite number.
func (n *NormalFloat) IsLegal(value any) bool {
	f, ok := values.ToFloat64(value)
	return ok && !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Default returns mu.
func (n *NormalFloat) Default() any { return n.mu }

// String implements fmt.Stringer.
func (n *NormalFloat) String() string {
	return fmt.Sprintf("%s, Type: NormalFloat, Mu: %v Sigma: %v, Default: %v", n.name, n.mu, n.sigma, n.mu)
}

// NormalInteger is an unbounded integer hyperparameter with mean mu.
type NormalInteger struct {
	name  string
	mu    int64
	sigma float64
}

// NewNormalInteger creates a normally distributed integer hyperparameter.
// Every integer is legal; the default is mu.
func NewNormalInteger(name string, mu int64, sigma float64) (*NormalInteger, error) {
	if err := checkNormal(name, sigma); err != nil {
		return nil, err
	}
	return &NormalInteger{name: name, mu: mu, sigma: sigma}, nil
}

// Name implements Hyperparameter.
func (n *NormalInteger) Name() string { return n.name }

// IsLegal reports whether value is an integral number.
func (n *NormalInteger) IsLegal(value any) bool {
	_, ok := toInteger(value)
	return ok
}

// Default returns mu.
func (n *NormalInteger) Default() any { return n.mu }

// String implements fmt.Stringer.
func (n *NormalInteger) String() string {
	return fmt.Sprintf("%s, Type: NormalInteger, Mu: %d Sigma: %v, Default: %d", n.name, n.mu, n.sigma, n.mu)
}

func checkRange(name string, lower, upper float64, log bool) error {
	if err := checkName(name); err != nil {
		return err
	}
	if math.IsNaN(lower) || math.IsNaN(upper) || lower >= upper {
		return newError(name, "lower bound %v must be smaller than upper bound %v", lower, upper)
	}
	if log && lower <= 0 {
		return newError(name, "log scale needs a positive lower bound, got %v", lower)
	}
	return nil
}

func checkNormal(name string, sigma float64) error {
	if err := checkName(name); err != nil {
		return err
	}
	if !(sigma > 0) {
		return newError(name, "sigma must be positive, got %v", sigma)
	}
	return nil
}

func midpoint(lower, upper float64, log bool) float64 {
	if log {
		return math.Exp((math.Log(lower) + math.Log(upper)) / 2)
	}
	return (lower + upper) / 2
}

// toInteger accepts integer kinds and floats without a fractional part that
// fit in int64.
func toInteger(value any) (int64, bool) {
	return values.ToInt64(value)
}

func logSuffix(log bool) string {
	if log {
		return ", on log-scale"
	}
	return ""
}
