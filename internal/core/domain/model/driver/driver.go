// Package driver contains the Driver entity and its vehicle-type enumeration.
// Drivers are created once and read by id or listed; no mutation is in scope.
package driver

import (
	"errors"

	"github.com/riosgabriel/taq-u-app/internal/core/domain/model/kernel"
	"github.com/riosgabriel/taq-u-app/internal/pkg/errs"
)

// ErrDriverIsNotConstructed is returned when a Driver instance was not
// created through NewDriver or RestoreDriver.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver")

// Driver represents a delivery driver.
//
// Invariants:
//   - Identifier is assigned at construction and immutable afterwards
//   - Name, email and phone are required; email is globally unique
//   - License number is optional and defaults to ""
//   - Vehicle type is one of the fixed VehicleType enumeration
type Driver struct {
	id            kernel.UUID
	name          string
	email         string
	phone         string
	licenseNumber string
	vehicleType   VehicleType
	isAvailable   bool

	isConstructed bool
}

// NewDriver creates a new Driver with a freshly assigned identifier.
func NewDriver(name, email, phone, licenseNumber string, vehicleType VehicleType, isAvailable bool) (*Driver, error) {
	d := &Driver{
		id:            kernel.NewUUID(),
		licenseNumber: licenseNumber,
		isAvailable:   isAvailable,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setName(name),
		d.setEmail(email),
		d.setPhone(phone),
		d.setVehicleType(vehicleType),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a Driver from persisted state.
func RestoreDriver(
	id kernel.UUID,
	name, email, phone, licenseNumber string,
	vehicleType VehicleType,
	isAvailable bool,
) (*Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	d := &Driver{
		id:            id,
		licenseNumber: licenseNumber,
		isAvailable:   isAvailable,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setName(name),
		d.setEmail(email),
		d.setPhone(phone),
		d.setVehicleType(vehicleType),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Driver was properly constructed.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

// IsEqual compares two drivers by their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's name.
func (d *Driver) Name() string {
	return d.name
}

// Email returns the driver's email address.
func (d *Driver) Email() string {
	return d.email
}

// Phone returns the driver's phone number.
func (d *Driver) Phone() string {
	return d.phone
}

// LicenseNumber returns the driver's license number, or "" when not provided.
func (d *Driver) LicenseNumber() string {
	return d.licenseNumber
}

// VehicleType returns the driver's vehicle type.
func (d *Driver) VehicleType() VehicleType {
	return d.vehicleType
}

// IsAvailable reports whether the driver is currently available for deliveries.
func (d *Driver) IsAvailable() bool {
	return d.isAvailable
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Driver) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	d.email = email
	return nil
}

func (d *Driver) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	d.phone = phone
	return nil
}

func (d *Driver) setVehicleType(vehicleType VehicleType) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}
	d.vehicleType = vehicleType
	return nil
}
