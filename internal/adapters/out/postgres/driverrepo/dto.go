// Package driverrepo provides the GORM-backed driver repository.
// Same shape as customerrepo, with the vehicle type persisted as its wire
// string and validated against the enumeration on read.
package driverrepo

import (
	"github.com/riosgabriel/taq-u-app/internal/core/domain/model/driver"
	"github.com/riosgabriel/taq-u-app/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting drivers.
type DriverDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	Email         string `gorm:"uniqueIndex"`
	Phone         string
	LicenseNumber string
	VehicleType   string `gorm:"type:varchar(16)"`
	IsAvailable   bool
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver domain entity to its database representation.
func fromDomain(d *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:            d.ID().Bytes(),
		Name:          d.Name(),
		Email:         d.Email(),
		Phone:         d.Phone(),
		LicenseNumber: d.LicenseNumber(),
		VehicleType:   d.VehicleType().String(),
		IsAvailable:   d.IsAvailable(),
	}
}

// toDomain converts a database DTO back to a driver domain entity.
// A vehicle-type string outside the enumeration fails the conversion instead
// of being silently truncated.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vehicleType, err := driver.VehicleTypeFromString(dto.VehicleType)
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, dto.Name, dto.Email, dto.Phone, dto.LicenseNumber, vehicleType, dto.IsAvailable)
}
