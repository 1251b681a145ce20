package orderrepo

import (
	"context"
	"errors"

	"github.com/riosgabriel/taq-u-app/internal/core/domain/model/kernel"
	"github.com/riosgabriel/taq-u-app/internal/core/domain/model/order"
	"github.com/riosgabriel/taq-u-app/internal/pkg/errs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, logger *zap.Logger) *GormOrderRepository {
	return &GormOrderRepository{
		db:     db,
		logger: logger,
	}
}

// Add saves a new order and all of its packages as a single logical unit.
// The order row and package rows go through one transaction; if any insert
// fails the whole write is rolled back and no success is reported.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&dto).Error
	})
	if err != nil {
		r.logger.Error("order insert failed",
			zap.String("order_id", aggregate.ID().String()),
			zap.Error(err),
		)
		return errs.NewUnknownError(err)
	}

	return nil
}

// GetAll retrieves all orders with their packages, newest pickup first.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Preload("Packages").Order("pickup_date DESC").Find(&dtos).Error; err != nil {
		r.logger.Error("order list failed", zap.Error(err))
		return nil, errs.NewUnknownError(err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, errs.NewUnknownError(err)
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// GetByID retrieves an order with its packages by ID.
// Absence is reported through the boolean, never as an error.
func (r *GormOrderRepository) GetByID(ctx context.Context, id kernel.UUID) (*order.Order, bool, error) {
	if err := id.Validate(); err != nil {
		return nil, false, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Packages").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}

		r.logger.Error("order lookup failed", zap.String("order_id", id.String()), zap.Error(err))
		return nil, false, errs.NewUnknownError(err)
	}

	o, err := toDomain(dto)
	if err != nil {
		return nil, false, errs.NewUnknownError(err)
	}

	return o, true, nil
}
