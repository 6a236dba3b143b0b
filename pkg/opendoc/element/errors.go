package element

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a ModelError.
type ErrorKind int

const (
	// KindTypeMismatch is returned when a value cannot be turned into a
	// property bag or a property value.
	KindTypeMismatch ErrorKind = iota + 1
	// KindComposition is returned when a child cannot be added to an element.
	KindComposition
)

func (k ErrorKind) String() string {
	switch k {
	case KindTypeMismatch:
		return "type mismatch"
	case KindComposition:
		return "composition"
	default:
		return "unknown"
	}
}

// ModelError is raised while building the document model
type ModelError struct {
	Kind    ErrorKind
	Op      string
	Message string
	Cause   error
}

func (e *ModelError) Error() string {
	msg := fmt.Sprintf("model error (%s) in %s: %s", e.Kind, e.Op, e.Message)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ModelError) Unwrap() error {
	return e.Cause
}

func typeMismatch(op string, v any) error {
	return &ModelError{
		Kind:    KindTypeMismatch,
		Op:      op,
		Message: fmt.Sprintf("unsupported value of type %T", v),
	}
}

func composition(op, format string, args ...any) error {
	return &ModelError{
		Kind:    KindComposition,
		Op:      op,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsModelError reports whether err is a ModelError, optionally of the given kinds.
func IsModelError(err error, kinds ...ErrorKind) bool {
	var me *ModelError
	if !errors.As(err, &me) {
		return false
	}
	if len(kinds) == 0 {
		return true
	}
	for _, k := range kinds {
		if me.Kind == k {
			return true
		}
	}
	return false
}
