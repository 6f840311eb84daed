package space

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind categorizes problems found by a Space.
type ErrorKind string

const (
	ErrorKindInvalid       ErrorKind = "invalid"        // nil hyperparameter or condition
	ErrorKindDuplicate     ErrorKind = "duplicate"      // name or child already registered
	ErrorKindUnknown       ErrorKind = "unknown"        // name not registered
	ErrorKindDepth         ErrorKind = "depth"          // condition tree nested too deeply
	ErrorKindCycle         ErrorKind = "cycle"          // condition would make the graph cyclic
	ErrorKindInactiveValue ErrorKind = "inactive_value" // value assigned to an inactive hyperparameter
	ErrorKindMissingValue  ErrorKind = "missing_value"  // active hyperparameter without a value
	ErrorKindIllegalValue  ErrorKind = "illegal_value"  // value outside the hyperparameter's domain
)

var (
	ErrInvalid       = errors.New("invalid argument")
	ErrDuplicate     = errors.New("already registered")
	ErrUnknown       = errors.New("unknown hyperparameter")
	ErrDepth         = errors.New("condition tree too deep")
	ErrCycle         = errors.New("conditions form a cycle")
	ErrInactiveValue = errors.New("value for inactive hyperparameter")
	ErrMissingValue  = errors.New("missing value for active hyperparameter")
	ErrIllegalValue  = errors.New("illegal hyperparameter value")
)

// Error is a single problem found by a Space. Name is the hyperparameter the
// problem is about. Suggestion, when set, is a registered name close to an
// unknown one.
type Error struct {
	Kind       ErrorKind
	Name       string
	Message    string
	Suggestion string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("[%s] %s (did you mean '%s'?)", e.Kind, e.Message, e.Suggestion)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Is reports whether target is the sentinel for this error's kind.
func (e *Error) Is(target error) bool {
	return target == e.sentinel()
}

func (e *Error) sentinel() error {
	switch e.Kind {
	case ErrorKindInvalid:
		return ErrInvalid
	case ErrorKindDuplicate:
		return ErrDuplicate
	case ErrorKindUnknown:
		return ErrUnknown
	case ErrorKindDepth:
		return ErrDepth
	case ErrorKindCycle:
		return ErrCycle
	case ErrorKindInactiveValue:
		return ErrInactiveValue
	case ErrorKindMissingValue:
		return ErrMissingValue
	case ErrorKindIllegalValue:
		return ErrIllegalValue
	default:
		return nil
	}
}

func newError(kind ErrorKind, name, format string, args ...any) *Error {
	return &Error{Kind: kind, Name: name, Message: fmt.Sprintf(format, args...)}
}

// ErrorList collects multiple errors found while checking an assignment.
type ErrorList struct {
	Errors []*Error
}

// NewErrorList creates a new empty error list.
func NewErrorList() *ErrorList {
	return &ErrorList{
		Errors: make([]*Error, 0),
	}
}

// Add appends an error to the list.
func (el *ErrorList) Add(err *Error) {
	el.Errors = append(el.Errors, err)
}

// AddError creates and adds a new error.
func (el *ErrorList) AddError(kind ErrorKind, name, format string, args ...any) {
	el.Add(newError(kind, name, format, args...))
}

// HasErrors returns true if the error list contains any errors.
func (el *ErrorList) HasErrors() bool {
	return len(el.Errors) > 0
}

// Count returns the number of errors in the list.
func (el *ErrorList) Count() int {
	return len(el.Errors)
}

// Error implements the error interface.
func (el *ErrorList) Error() string {
	if !el.HasErrors() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("found %d error(s):", el.Count()))
	for _, err := range el.Errors {
		sb.WriteString("\n  ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (el *ErrorList) Unwrap() []error {
	errs := make([]error, len(el.Errors))
	for i, err := range el.Errors {
		errs[i] = err
	}
	return errs
}

// ToError returns nil if the error list is empty, otherwise returns the error list itself.
func (el *ErrorList) ToError() error {
	if !el.HasErrors() {
		return nil
	}
	return el
}

// ByKind returns all errors of the given kind.
func (el *ErrorList) ByKind(kind ErrorKind) []*Error {
	var result []*Error
	for _, err := range el.Errors {
		if err.Kind == kind {
			result = append(result, err)
		}
	}
	return result
}

// HasErrorKind returns true if the list contains at least one error of the given kind.
func (el *ErrorList) HasErrorKind(kind ErrorKind) bool {
	for _, err := range el.Errors {
		if err.Kind == kind {
			return true
		}
	}
	return false
}
