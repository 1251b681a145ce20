// Package ports defines the capability interfaces required by the service
// layer. These interfaces establish contracts between the core and the
// infrastructure adapters, enabling dependency inversion: services declare
// what they need here, and the composition root supplies concrete
// implementations (production-backed or test doubles) without the services
// ever referencing them.
package ports

import (
	"context"

	"github.com/riosgabriel/taq-u-app/internal/core/domain/model/customer"
	"github.com/riosgabriel/taq-u-app/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer entities.
type CustomerRepository interface {
	// Add persists a new customer.
	// A uniqueness-constraint violation on email is translated into
	// errs.EmailAlreadyExistsError; any other store failure is wrapped as an
	// opaque errs.UnknownError carrying the underlying cause. The pre-existing
	// record is never touched by a rejected write.
	Add(ctx context.Context, customer *customer.Customer) error

	// GetAll retrieves all customers.
	GetAll(ctx context.Context) ([]*customer.Customer, error)

	// GetByID retrieves a customer by its unique identifier.
	// The boolean reports presence: absence is a valid, expected outcome at
	// this layer, distinguished from failure; it is not an error.
	GetByID(ctx context.Context, id kernel.UUID) (*customer.Customer, bool, error)
}
