package errs

import (
	"errors"
	"fmt"
)

// ErrEmailAlreadyExists is the sentinel for email uniqueness violations.
var ErrEmailAlreadyExists = errors.New("email already exists")

// EmailAlreadyExistsError indicates that a create was rejected because the
// email is already taken. The pre-existing record is untouched; the caller
// may recover by picking a different email.
type EmailAlreadyExistsError struct {
	Email string
	Cause error
}

// NewEmailAlreadyExistsError creates an EmailAlreadyExistsError for the given email.
func NewEmailAlreadyExistsError(email string) *EmailAlreadyExistsError {
	return &EmailAlreadyExistsError{Email: email}
}

// NewEmailAlreadyExistsErrorWithCause creates an EmailAlreadyExistsError
// carrying the store-level constraint violation that triggered it.
func NewEmailAlreadyExistsErrorWithCause(email string, cause error) *EmailAlreadyExistsError {
	return &EmailAlreadyExistsError{Email: email, Cause: cause}
}

func (e *EmailAlreadyExistsError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrEmailAlreadyExists, e.Email, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrEmailAlreadyExists, e.Email))
}

func (e *EmailAlreadyExistsError) Unwrap() error {
	return ErrEmailAlreadyExists
}
