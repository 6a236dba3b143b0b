package render

import (
	"errors"
	"fmt"
)

// RenderError reports an element the renderer could not place.
type RenderError struct {
	Section    string
	Capability string
	Message    string
}

func (e *RenderError) Error() string {
	if e.Section != "" {
		return fmt.Sprintf("render error in section '%s' at %s: %s", e.Section, e.Capability, e.Message)
	}
	return fmt.Sprintf("render error at %s: %s", e.Capability, e.Message)
}

// IsRenderError checks if an error is a render error
func IsRenderError(err error) bool {
	var re *RenderError
	return errors.As(err, &re)
}
