package pkg

import (
	"fmt"

	"github.com/pkg/errors"
)

// ValidationError is a user-facing rejection: bad argument, below minimum, insufficient balance.
// The message is shown to the user as-is
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		Message: message,
	}
}

func ValidationErrorf(format string, args ...interface{}) *ValidationError {
	return NewValidationError(fmt.Sprintf(format, args...))
}

// AsValidationError returns the ValidationError wrapped in err, if any
func AsValidationError(err error) (*ValidationError, bool) {
	var v *ValidationError
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}

var ErrAlreadyMutated = errors.New("balance already changed during this invocation")
