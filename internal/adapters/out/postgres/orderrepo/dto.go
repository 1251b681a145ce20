// Package orderrepo provides the GORM-backed order repository.
// The order aggregate maps onto two tables, orders and packages, written
// together in a single transaction so a caller never observes one without
// the other.
package orderrepo

import (
	"time"

	"github.com/riosgabriel/taq-u-app/internal/core/domain/model/kernel"
	"github.com/riosgabriel/taq-u-app/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Packages are owned rows linked by OrderID and are created through the
// association, never independently.
type OrderDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID          uuid.UUID `gorm:"type:uuid;index"`
	PickupAddress       string
	DeliveryAddress     string
	PickupDate          time.Time
	DeliveryDate        *time.Time
	SpecialInstructions string
	Priority            string       `gorm:"type:varchar(16)"`
	Status              string       `gorm:"type:varchar(16)"`
	Packages            []PackageDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// PackageDTO represents the database structure for persisting packages.
// TrackingNumber carries a unique index; a tracking number is never reused.
type PackageDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	WeightKg       float64
	Dimensions     string
	Description    string
	Fragile        bool
	Perishable     bool
	Insured        bool
	Status         string `gorm:"type:varchar(16)"`
	TrackingNumber string `gorm:"uniqueIndex"`
}

// TableName specifies the database table name for package entities.
func (PackageDTO) TableName() string {
	return "packages"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	packages := make([]PackageDTO, 0, len(o.Packages()))
	for _, p := range o.Packages() {
		packages = append(packages, PackageDTO{
			ID:             p.ID().Bytes(),
			OrderID:        o.ID().Bytes(),
			WeightKg:       p.WeightKg(),
			Dimensions:     p.Dimensions(),
			Description:    p.Description(),
			Fragile:        p.IsFragile(),
			Perishable:     p.IsPerishable(),
			Insured:        p.IsInsured(),
			Status:         p.Status().String(),
			TrackingNumber: p.TrackingNumber(),
		})
	}

	return OrderDTO{
		ID:                  o.ID().Bytes(),
		CustomerID:          o.CustomerID().Bytes(),
		PickupAddress:       o.PickupAddress(),
		DeliveryAddress:     o.DeliveryAddress(),
		PickupDate:          o.PickupDate(),
		DeliveryDate:        o.DeliveryDate(),
		SpecialInstructions: o.SpecialInstructions(),
		Priority:            o.Priority().String(),
		Status:              o.Status().String(),
		Packages:            packages,
	}
}

// toDomain converts a database DTO back to an order domain aggregate,
// reconstructing all owned packages.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	priority, err := order.PriorityFromString(dto.Priority)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	packages := make([]*order.Package, 0, len(dto.Packages))
	for _, pkgDTO := range dto.Packages {
		p, pkgErr := packageToDomain(pkgDTO)
		if pkgErr != nil {
			return nil, pkgErr
		}
		packages = append(packages, p)
	}

	return order.RestoreOrder(
		id,
		customerID,
		dto.PickupAddress,
		dto.DeliveryAddress,
		dto.PickupDate,
		dto.DeliveryDate,
		dto.SpecialInstructions,
		priority,
		status,
		packages,
	)
}

func packageToDomain(dto PackageDTO) (*order.Package, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.PackageStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestorePackage(
		id,
		dto.WeightKg,
		dto.Dimensions,
		dto.Description,
		dto.Fragile,
		dto.Perishable,
		dto.Insured,
		status,
		dto.TrackingNumber,
	)
}
