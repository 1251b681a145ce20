package ports

import (
	"context"

	"github.com/riosgabriel/taq-u-app/internal/core/domain/model/kernel"
	"github.com/riosgabriel/taq-u-app/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order together with all of its packages as a single
	// logical unit: a caller never observes an order without its packages or
	// vice versa. The implementation must not report success until all rows
	// are durably linked.
	Add(ctx context.Context, aggregate *order.Order) error

	// GetAll retrieves all orders with their packages.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetByID retrieves an order with its packages by its unique identifier.
	// The boolean reports presence; absence is not an error at this layer.
	GetByID(ctx context.Context, id kernel.UUID) (*order.Order, bool, error)
}
