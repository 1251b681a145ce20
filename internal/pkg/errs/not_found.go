package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrObjectNotFound is the sentinel for lookups that matched nothing.
	ErrObjectNotFound = errors.New("object not found")

	// ErrCustomerNotFound is the sentinel for order creation against a
	// customer that does not exist. Kept separate from ErrObjectNotFound
	// because it is raised mid-orchestration by the order service, not by
	// the lookup the caller asked for.
	ErrCustomerNotFound = errors.New("customer not found")
)

// ObjectNotFoundError indicates that a lookup by identifier matched no record.
// At the repository layer absence is reported as a plain "not present" result;
// this error is raised by services when the caller asked for a specific record.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError carrying an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// CustomerNotFoundError indicates that order creation referenced a customer
// that was not present at the time of the existence check. The order write is
// never attempted when this error is raised.
type CustomerNotFoundError struct {
	CustomerID string
}

// NewCustomerNotFoundError creates a CustomerNotFoundError for the given customer identifier.
func NewCustomerNotFoundError(customerID string) *CustomerNotFoundError {
	return &CustomerNotFoundError{CustomerID: customerID}
}

func (e *CustomerNotFoundError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrCustomerNotFound, e.CustomerID))
}

func (e *CustomerNotFoundError) Unwrap() error {
	return ErrCustomerNotFound
}
