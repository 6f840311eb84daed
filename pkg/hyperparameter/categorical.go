package hyperparameter

import (
	"fmt"

	"hpolib-hq/configspace/internal/values"
)

// Categorical is a hyperparameter whose domain is an ordered set of choices.
type Categorical struct {
	name         string
	choices      []any
	defaultValue any
}

// NewCategorical creates a categorical hyperparameter. A nil defaultValue
// selects the first choice.
func NewCategorical(name string, choices []any, defaultValue any) (*Categorical, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	if len(choices) == 0 {
		return nil, newError(name, "needs at least one choice")
	}
	for i, choice := range choices {
		if values.Contains(choices[:i], choice) {
			return nil, newError(name, "duplicate choice %s", values.Format(choice))
		}
	}
	if defaultValue == nil {
		defaultValue = choices[0]
	} else if !values.Contains(choices, defaultValue) {
		return nil, newError(name, "default %s is not one of the choices", values.Format(defaultValue))
	}

	return &Categorical{
		name:         name,
		choices:      append([]any(nil), choices...),
		defaultValue: defaultValue,
	}, nil
}

// Name implements Hyperparameter.
func (c *Categorical) Name() string { return c.name }

// IsLegal reports whether value is one of the choices.
func (c *Categorical) IsLegal(value any) bool { return values.Contains(c.choices, value) }

// Default returns the default choice.
func (c *Categorical) Default() any { return c.defaultValue }

// Choices returns a copy of the choices in declaration order.
func (c *Categorical) Choices() []any { return append([]any(nil), c.choices...) }

// String implements fmt.Stringer.
func (c *Categorical) String() string {
	return fmt.Sprintf("%s, Type: Categorical, Choices: %s, Default: %s",
		c.name, values.FormatSet(c.choices), values.Format(c.defaultValue))
}
