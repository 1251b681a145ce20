package ports

import (
	"context"

	"github.com/riosgabriel/taq-u-app/internal/core/domain/model/driver"
	"github.com/riosgabriel/taq-u-app/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver entities.
// Same shape as CustomerRepository, with driver-specific uniqueness on email.
type DriverRepository interface {
	// Add persists a new driver, translating an email uniqueness violation
	// into errs.EmailAlreadyExistsError.
	Add(ctx context.Context, driver *driver.Driver) error

	// GetAll retrieves all drivers.
	GetAll(ctx context.Context) ([]*driver.Driver, error)

	// GetByID retrieves a driver by its unique identifier.
	// The boolean reports presence; absence is not an error at this layer.
	GetByID(ctx context.Context, id kernel.UUID) (*driver.Driver, bool, error)
}
