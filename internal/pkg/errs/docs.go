// Package errs provides the typed error taxonomy for the order-management
// application. Every fallible operation in the core returns one of a closed
// set of error values instead of leaking store- or transport-specific errors.
//
// The package covers the failure classes of the core:
//   - ValueIsRequiredError / ValueIsInvalidError: input and construction guards
//   - ObjectNotFoundError: a lookup by identifier matched nothing
//   - EmailAlreadyExistsError: a uniqueness constraint on email was violated
//   - CustomerNotFoundError: an order referenced a customer that does not exist
//   - UnknownError: any unclassified infrastructure fault, always carrying its cause
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// Layering policy: repositories classify only the failures they can
// specifically recognize (uniqueness violations); services add orchestration
// errors (not found, customer not found) and wrap everything else in
// UnknownError. The transport layer is the only place these errors become
// user-visible messages.
package errs
