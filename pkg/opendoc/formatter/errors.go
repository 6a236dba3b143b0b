package formatter

import (
	"errors"
	"fmt"
)

// ContractViolation reports a broken encoder table: an encoder that is
// missing or registered under an empty tag. It is raised with panic and
// must not be recovered by library code.
type ContractViolation struct {
	Dialect string
	Tag     string
	Message string
}

func (e *ContractViolation) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("formatter %s: encoder %q: %s", e.Dialect, e.Tag, e.Message)
	}
	return fmt.Sprintf("formatter %s: %s", e.Dialect, e.Message)
}

// IsContractViolation reports whether err is a ContractViolation.
func IsContractViolation(err error) bool {
	var cv *ContractViolation
	return errors.As(err, &cv)
}
