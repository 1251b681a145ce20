package order

import (
	"errors"
	"time"

	"github.com/riosgabriel/taq-u-app/internal/core/domain/model/kernel"
	"github.com/riosgabriel/taq-u-app/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order represents a delivery order. It is the aggregate root that owns its
// packages: the package collection is fixed at creation and persisted
// atomically with the order row.
//
// Order follows these invariants:
//   - Must reference a customer that existed at creation time (the order
//     service enforces the existence check before any write)
//   - Pickup and delivery addresses are required
//   - Pickup date is required; delivery date and special instructions are optional
//   - Priority is one of the fixed Priority enumeration, defaulting to NORMAL
//   - Status starts at PENDING
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id                  kernel.UUID
	customerID          kernel.UUID
	pickupAddress       string
	deliveryAddress     string
	pickupDate          time.Time
	deliveryDate        *time.Time
	specialInstructions string
	priority            Priority
	status              Status
	packages            []*Package

	isConstructed bool
}

// NewOrder creates a new Order for the given customer with a freshly assigned
// identifier and PENDING status. The packages become owned by the order; they
// must have been created via NewPackage in the same logical operation.
//
// deliveryDate may be nil and specialInstructions may be empty.
func NewOrder(
	customerID kernel.UUID,
	pickupAddress, deliveryAddress string,
	pickupDate time.Time,
	deliveryDate *time.Time,
	specialInstructions string,
	priority Priority,
	packages []*Package,
) (*Order, error) {
	o := &Order{
		id:                  kernel.NewUUID(),
		deliveryDate:        deliveryDate,
		specialInstructions: specialInstructions,
		status:              StatusPending,
		isConstructed:       true,
	}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setPickupAddress(pickupAddress),
		o.setDeliveryAddress(deliveryAddress),
		o.setPickupDate(pickupDate),
		o.setPriority(priority),
		o.setPackages(packages),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persisted state.
// Used by the repository layer when mapping rows back to the domain.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	pickupAddress, deliveryAddress string,
	pickupDate time.Time,
	deliveryDate *time.Time,
	specialInstructions string,
	priority Priority,
	status Status,
	packages []*Package,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		id:                  id,
		deliveryDate:        deliveryDate,
		specialInstructions: specialInstructions,
		status:              status,
		isConstructed:       true,
	}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setPickupAddress(pickupAddress),
		o.setDeliveryAddress(deliveryAddress),
		o.setPickupDate(pickupDate),
		o.setPriority(priority),
		o.setPackages(packages),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer the order belongs to.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// PickupAddress returns the pickup address.
func (o *Order) PickupAddress() string {
	return o.pickupAddress
}

// DeliveryAddress returns the delivery address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// PickupDate returns the scheduled pickup date.
func (o *Order) PickupDate() time.Time {
	return o.pickupDate
}

// DeliveryDate returns the scheduled delivery date, or nil when not set.
func (o *Order) DeliveryDate() *time.Time {
	return o.deliveryDate
}

// SpecialInstructions returns the free-text handling instructions, or "" when not set.
func (o *Order) SpecialInstructions() string {
	return o.specialInstructions
}

// Priority returns the order's delivery priority.
func (o *Order) Priority() Priority {
	return o.priority
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Packages returns the packages owned by this order, in creation order.
func (o *Order) Packages() []*Package {
	return o.packages
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setPickupAddress(pickupAddress string) error {
	if pickupAddress == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	o.pickupAddress = pickupAddress
	return nil
}

func (o *Order) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = deliveryAddress
	return nil
}

func (o *Order) setPickupDate(pickupDate time.Time) error {
	if pickupDate.IsZero() {
		return errs.NewValueIsRequiredError("pickupDate")
	}
	o.pickupDate = pickupDate
	return nil
}

func (o *Order) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	o.priority = priority
	return nil
}

func (o *Order) setPackages(packages []*Package) error {
	for _, p := range packages {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	o.packages = packages
	return nil
}
