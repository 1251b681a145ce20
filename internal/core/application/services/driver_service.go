package services

import (
	"context"

	"github.com/riosgabriel/taq-u-app/internal/core/domain/model/driver"
	"github.com/riosgabriel/taq-u-app/internal/core/domain/model/kernel"
	"github.com/riosgabriel/taq-u-app/internal/core/ports"
	"github.com/riosgabriel/taq-u-app/internal/pkg/errs"
)

// CreateDriverInput carries the decoded, schema-validated fields for driver
// creation. LicenseNumber may be empty; VehicleType has already been mapped
// onto the enumeration at decode time.
type CreateDriverInput struct {
	Name          string
	Email         string
	Phone         string
	LicenseNumber string
	VehicleType   driver.VehicleType
	IsAvailable   bool
}

// DriverService implements the business operations on drivers.
// Mirrors CustomerService: create, list, and get-by-id with the same
// absent-to-not-found translation.
type DriverService struct {
	drivers ports.DriverRepository
}

// NewDriverService creates a DriverService backed by the given repository.
func NewDriverService(drivers ports.DriverRepository) *DriverService {
	return &DriverService{drivers: drivers}
}

// Create registers a new driver and returns it with its assigned identifier.
func (s *DriverService) Create(ctx context.Context, input CreateDriverInput) (*driver.Driver, error) {
	d, err := driver.NewDriver(
		input.Name,
		input.Email,
		input.Phone,
		input.LicenseNumber,
		input.VehicleType,
		input.IsAvailable,
	)
	if err != nil {
		return nil, err
	}

	if err = s.drivers.Add(ctx, d); err != nil {
		return nil, err
	}

	return d, nil
}

// GetAll returns all drivers.
func (s *DriverService) GetAll(ctx context.Context) ([]*driver.Driver, error) {
	return s.drivers.GetAll(ctx)
}

// GetByID returns the driver with the given identifier, converting a
// repository "absent" result into errs.ObjectNotFoundError.
func (s *DriverService) GetByID(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	d, found, err := s.drivers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errs.NewObjectNotFoundError("driverId", id.String())
	}

	return d, nil
}
