package driverrepo

import (
	"context"
	"errors"

	"github.com/riosgabriel/taq-u-app/internal/core/domain/model/driver"
	"github.com/riosgabriel/taq-u-app/internal/core/domain/model/kernel"
	"github.com/riosgabriel/taq-u-app/internal/pkg/errs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GormDriverRepository implements ports.DriverRepository using GORM.
type GormDriverRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB, logger *zap.Logger) *GormDriverRepository {
	return &GormDriverRepository{
		db:     db,
		logger: logger,
	}
}

// Add saves a new driver to the database.
// A unique violation on email is classified as errs.EmailAlreadyExistsError;
// every other failure is logged and wrapped as errs.UnknownError.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewEmailAlreadyExistsErrorWithCause(aggregate.Email(), err)
		}

		r.logger.Error("driver insert failed", zap.Error(err))
		return errs.NewUnknownError(err)
	}

	return nil
}

// GetAll retrieves all drivers ordered by name.
func (r *GormDriverRepository) GetAll(ctx context.Context) ([]*driver.Driver, error) {
	var dtos []DriverDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		r.logger.Error("driver list failed", zap.Error(err))
		return nil, errs.NewUnknownError(err)
	}

	drivers := make([]*driver.Driver, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, errs.NewUnknownError(err)
		}
		drivers = append(drivers, d)
	}

	return drivers, nil
}

// GetByID retrieves a driver by ID.
// Absence is reported through the boolean, never as an error.
func (r *GormDriverRepository) GetByID(ctx context.Context, id kernel.UUID) (*driver.Driver, bool, error) {
	if err := id.Validate(); err != nil {
		return nil, false, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}

		r.logger.Error("driver lookup failed", zap.String("driver_id", id.String()), zap.Error(err))
		return nil, false, errs.NewUnknownError(err)
	}

	d, err := toDomain(dto)
	if err != nil {
		return nil, false, errs.NewUnknownError(err)
	}

	return d, true, nil
}
