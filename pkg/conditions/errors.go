package conditions

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes why a condition or conjunction could not be constructed.
type ErrorKind string

const (
	ErrorKindTypeConstraint ErrorKind = "type_constraint" // argument is not a hyperparameter / component
	ErrorKindIdentity       ErrorKind = "identity"        // child and parent are the same hyperparameter
	ErrorKindIllegalValue   ErrorKind = "illegal_value"   // value outside the parent's domain
	ErrorKindArity          ErrorKind = "arity"           // conjunction with fewer than two components
	ErrorKindStructural     ErrorKind = "structural"      // leaves of a conjunction disagree on the child
)

// Sentinel errors matched by errors.Is against an *Error of the same kind.
var (
	ErrTypeConstraint = errors.New("type constraint violated")
	ErrIdentity       = errors.New("child and parent are identical")
	ErrIllegalValue   = errors.New("illegal condition value")
	ErrArity          = errors.New("too few conjunction components")
	ErrStructural     = errors.New("conjunction components have different children")
)

// Error is returned by every constructor in this package. Child, Parent and
// Value identify the offending arguments where they are known.
type Error struct {
	Kind    ErrorKind
	Message string
	Child   string
	Parent  string
	Value   any
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Is reports whether target is the sentinel for this error's kind.
func (e *Error) Is(target error) bool {
	return target == e.sentinel()
}

func (e *Error) sentinel() error {
	switch e.Kind {
	case ErrorKindTypeConstraint:
		return ErrTypeConstraint
	case ErrorKindIdentity:
		return ErrIdentity
	case ErrorKindIllegalValue:
		return ErrIllegalValue
	case ErrorKindArity:
		return ErrArity
	case ErrorKindStructural:
		return ErrStructural
	default:
		return nil
	}
}

func typeConstraintError(argument, want string) *Error {
	return &Error{
		Kind:    ErrorKindTypeConstraint,
		Message: fmt.Sprintf("argument '%s' is not a %s", argument, want),
	}
}

func identityError(name string) *Error {
	return &Error{
		Kind:    ErrorKindIdentity,
		Message: "the child and parent hyperparameter must be different hyperparameters",
		Child:   name,
		Parent:  name,
	}
}

func illegalValueError(child, parent string, value any) *Error {
	return &Error{
		Kind: ErrorKindIllegalValue,
		Message: fmt.Sprintf("hyperparameter '%s' is conditional on the illegal value '%v' of its parent hyperparameter '%s'",
			child, value, parent),
		Child:  child,
		Parent: parent,
		Value:  value,
	}
}
