// Package customerrepo provides the GORM-backed customer repository.
// It handles the conversion between the customer domain entity and its
// database representation, and translates store-level conflict signals into
// the typed domain errors of the errs package.
package customerrepo

import (
	"github.com/riosgabriel/taq-u-app/internal/core/domain/model/customer"
	"github.com/riosgabriel/taq-u-app/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customers.
// Email carries a unique index; the store is the sole arbiter of email
// uniqueness across concurrent creates.
type CustomerDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string
	Email   string `gorm:"uniqueIndex"`
	Phone   string
	Address string
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer domain entity to its database representation.
func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:      c.ID().Bytes(),
		Name:    c.Name(),
		Email:   c.Email(),
		Phone:   c.Phone(),
		Address: c.Address(),
	}
}

// toDomain converts a database DTO back to a customer domain entity.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, dto.Email, dto.Phone, dto.Address)
}
