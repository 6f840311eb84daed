package hyperparameter

import (
	"fmt"

	"hpolib-hq/configspace/internal/values"
)

// Constant is a hyperparameter with exactly one legal value.
type Constant struct {
	name  string
	value any
}

// NewConstant creates a constant hyperparameter.
func NewConstant(name string, value any) (*Constant, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	if value == nil {
		return nil, newError(name, "constant value must not be nil")
	}
	return &Constant{name: name, value: value}, nil
}

// Name implements Hyperparameter.
func (c *Constant) Name() string { return c.name }

// IsLegal reports whether value equals the constant.
func (c *Constant) IsLegal(value any) bool { return values.Equal(value, c.value) }

// Default returns the constant value.
func (c *Constant) Default() any { return c.value }

// String implements fmt.Stringer.
func (c *Constant) String() string {
	return fmt.Sprintf("%s, Type: Constant, Value: %s", c.name, values.Format(c.value))
}
