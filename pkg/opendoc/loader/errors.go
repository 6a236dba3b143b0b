package loader

import (
	"errors"
	"fmt"
)

// LoadError reports a document description that could not be turned into
// a model. Line and Column are 1-based and zero when unknown.
type LoadError struct {
	Message string
	Line    int
	Column  int
	Cause   error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("load error at line %d, column %d: %s", e.Line, e.Column, msg)
	} else if e.Line > 0 {
		return fmt.Sprintf("load error at line %d: %s", e.Line, msg)
	}
	return fmt.Sprintf("load error: %s", msg)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// IsLoadError reports whether err is, or wraps, a LoadError.
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}
