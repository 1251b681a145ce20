// Package customer contains the Customer entity.
// A customer is referenced by zero or more orders but owns none of them;
// once created a customer record is never mutated or deleted.
package customer

import (
	"errors"

	"github.com/riosgabriel/taq-u-app/internal/core/domain/model/kernel"
	"github.com/riosgabriel/taq-u-app/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer")

// Customer represents a registered customer of the delivery service.
//
// Invariants:
//   - Identifier is assigned at construction and immutable afterwards
//   - Name, email and address are required
//   - Email is globally unique across customers; the store's uniqueness
//     constraint is the sole arbiter, this entity does not pre-check it
//   - Phone is optional and may be empty
type Customer struct {
	id      kernel.UUID
	name    string
	email   string
	phone   string
	address string

	isConstructed bool
}

// NewCustomer creates a new Customer with a freshly assigned identifier.
// Name, email and address must be non-empty; phone may be empty.
func NewCustomer(name, email, phone, address string) (*Customer, error) {
	c := &Customer{
		id:            kernel.NewUUID(),
		phone:         phone,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setName(name),
		c.setEmail(email),
		c.setAddress(address),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer reconstructs a Customer from persisted state.
// Used by the repository layer when mapping rows back to the domain.
func RestoreCustomer(id kernel.UUID, name, email, phone, address string) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	c := &Customer{
		id:            id,
		phone:         phone,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setName(name),
		c.setEmail(email),
		c.setAddress(address),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Customer was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the customer's email address.
func (c *Customer) Email() string {
	return c.email
}

// Phone returns the customer's phone number, or "" when not provided.
func (c *Customer) Phone() string {
	return c.phone
}

// Address returns the customer's postal address.
func (c *Customer) Address() string {
	return c.address
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *Customer) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = address
	return nil
}
