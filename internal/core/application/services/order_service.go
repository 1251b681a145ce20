package services

import (
	"context"
	"time"

	"github.com/riosgabriel/taq-u-app/internal/core/domain/model/kernel"
	"github.com/riosgabriel/taq-u-app/internal/core/domain/model/order"
	"github.com/riosgabriel/taq-u-app/internal/core/ports"
	"github.com/riosgabriel/taq-u-app/internal/pkg/errs"

	"go.uber.org/zap"
)

// CreatePackageInput carries the content fields for a single package of a new
// order. Status and tracking number are assigned internally, never by the caller.
type CreatePackageInput struct {
	WeightKg    float64
	Dimensions  string
	Description string
	Fragile     bool
	Perishable  bool
	Insured     bool
}

// CreateOrderInput carries the decoded, schema-validated fields for order
// creation. Priority has already been mapped onto the enumeration at decode
// time; DeliveryDate may be nil and SpecialInstructions empty.
type CreateOrderInput struct {
	CustomerID          kernel.UUID
	PickupAddress       string
	DeliveryAddress     string
	PickupDate          time.Time
	DeliveryDate        *time.Time
	SpecialInstructions string
	Priority            order.Priority
	Packages            []CreatePackageInput
}

// OrderService implements the business operations on orders. It declares two
// required capabilities, the order repository and the customer repository,
// because order creation enforces the one cross-aggregate invariant of the
// core: an order can never be durably created against a non-existent customer.
type OrderService struct {
	orders    ports.OrderRepository
	customers ports.CustomerRepository
	logger    *zap.Logger
}

// NewOrderService creates an OrderService backed by the given repositories.
func NewOrderService(orders ports.OrderRepository, customers ports.CustomerRepository, logger *zap.Logger) *OrderService {
	return &OrderService{
		orders:    orders,
		customers: customers,
		logger:    logger,
	}
}

// CreateOrder creates a new order with its packages.
//
// The referenced customer is fetched first; if absent the operation fails
// with errs.CustomerNotFoundError and the order write is never attempted.
// The two steps are strictly sequential: the write is not initiated
// speculatively before the existence check resolves. The repository persists
// the order and all its packages as one atomic unit.
func (s *OrderService) CreateOrder(ctx context.Context, input CreateOrderInput) (*order.Order, error) {
	_, found, err := s.customers.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errs.NewCustomerNotFoundError(input.CustomerID.String())
	}

	packages := make([]*order.Package, 0, len(input.Packages))
	for _, pkg := range input.Packages {
		p, pkgErr := order.NewPackage(
			pkg.WeightKg,
			pkg.Dimensions,
			pkg.Description,
			pkg.Fragile,
			pkg.Perishable,
			pkg.Insured,
		)
		if pkgErr != nil {
			return nil, pkgErr
		}
		packages = append(packages, p)
	}

	o, err := order.NewOrder(
		input.CustomerID,
		input.PickupAddress,
		input.DeliveryAddress,
		input.PickupDate,
		input.DeliveryDate,
		input.SpecialInstructions,
		input.Priority,
		packages,
	)
	if err != nil {
		return nil, err
	}

	if err = s.orders.Add(ctx, o); err != nil {
		return nil, err
	}

	s.logger.Info("order created",
		zap.String("order_id", o.ID().String()),
		zap.String("customer_id", o.CustomerID().String()),
		zap.Int("packages", len(o.Packages())),
	)

	return o, nil
}

// GetAll returns all orders with their packages.
func (s *OrderService) GetAll(ctx context.Context) ([]*order.Order, error) {
	return s.orders.GetAll(ctx)
}

// GetByID returns the order with the given identifier, converting a
// repository "absent" result into errs.ObjectNotFoundError.
func (s *OrderService) GetByID(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	o, found, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errs.NewObjectNotFoundError("orderId", id.String())
	}

	return o, nil
}
