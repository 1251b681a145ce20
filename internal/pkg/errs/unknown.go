package errs

import (
	"errors"
	"fmt"
)

// ErrUnknown is the sentinel for unclassified infrastructure faults.
var ErrUnknown = errors.New("unknown failure")

// UnknownError wraps any store or infrastructure fault the repositories could
// not specifically classify. It is opaque to callers beyond "something went
// wrong"; the cause is preserved for logging and never silently swallowed.
type UnknownError struct {
	Cause error
}

// NewUnknownError wraps the given cause as an UnknownError.
func NewUnknownError(cause error) *UnknownError {
	return &UnknownError{Cause: cause}
}

func (e *UnknownError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s (cause: %s)", ErrUnknown, e.Cause))
	}
	return ErrUnknown.Error()
}

func (e *UnknownError) Unwrap() error {
	return ErrUnknown
}
