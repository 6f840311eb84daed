package hyperparameter

import (
	"errors"
	"fmt"
)

// ErrInvalidHyperparameter is matched by errors.Is for every *Error.
var ErrInvalidHyperparameter = errors.New("invalid hyperparameter")

// Error describes why a hyperparameter could not be constructed.
type Error struct {
	Name    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("hyperparameter %q: %s", e.Name, e.Message)
}

// Is reports whether target is ErrInvalidHyperparameter.
func (e *Error) Is(target error) bool {
	return target == ErrInvalidHyperparameter
}

func newError(name, format string, args ...any) *Error {
	return &Error{Name: name, Message: fmt.Sprintf(format, args...)}
}

// Hyperparameter is implemented by every kind in this package.
type Hyperparameter interface {
	// Name returns the unique name within a configuration space.
	Name() string

	// IsLegal reports whether value lies in the domain.
	IsLegal(value any) bool

	// Default returns the default value.
	Default() any

	fmt.Stringer
}

// NumericOptions configures the range-based kinds.
type NumericOptions struct {
	// Log places the range on a log scale. Requires a positive lower bound.
	Log bool

	// Default overrides the derived default value. Nil means derived.
	Default any
}

func checkName(name string) error {
	if name == "" {
		return newError(name, "name must not be empty")
	}
	return nil
}
