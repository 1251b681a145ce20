package customerrepo

import (
	"context"
	"errors"

	"github.com/riosgabriel/taq-u-app/internal/core/domain/model/customer"
	"github.com/riosgabriel/taq-u-app/internal/core/domain/model/kernel"
	"github.com/riosgabriel/taq-u-app/internal/pkg/errs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GormCustomerRepository implements ports.CustomerRepository using GORM.
//
// The connection must be opened with TranslateError enabled so that a
// Postgres unique violation surfaces as gorm.ErrDuplicatedKey.
type GormCustomerRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB, logger *zap.Logger) *GormCustomerRepository {
	return &GormCustomerRepository{
		db:     db,
		logger: logger,
	}
}

// Add saves a new customer to the database.
// A unique violation on email is classified as errs.EmailAlreadyExistsError;
// every other failure is logged and wrapped as errs.UnknownError.
func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewEmailAlreadyExistsErrorWithCause(aggregate.Email(), err)
		}

		r.logger.Error("customer insert failed", zap.Error(err))
		return errs.NewUnknownError(err)
	}

	return nil
}

// GetAll retrieves all customers ordered by name.
func (r *GormCustomerRepository) GetAll(ctx context.Context) ([]*customer.Customer, error) {
	var dtos []CustomerDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		r.logger.Error("customer list failed", zap.Error(err))
		return nil, errs.NewUnknownError(err)
	}

	customers := make([]*customer.Customer, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, errs.NewUnknownError(err)
		}
		customers = append(customers, c)
	}

	return customers, nil
}

// GetByID retrieves a customer by ID.
// Absence is reported through the boolean, never as an error.
func (r *GormCustomerRepository) GetByID(ctx context.Context, id kernel.UUID) (*customer.Customer, bool, error) {
	if err := id.Validate(); err != nil {
		return nil, false, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}

		r.logger.Error("customer lookup failed", zap.String("customer_id", id.String()), zap.Error(err))
		return nil, false, errs.NewUnknownError(err)
	}

	c, err := toDomain(dto)
	if err != nil {
		return nil, false, errs.NewUnknownError(err)
	}

	return c, true, nil
}
