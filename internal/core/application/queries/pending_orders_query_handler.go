package queries

import (
	"context"

	"github.com/riosgabriel/taq-u-app/internal/core/domain/model/order"
	"github.com/riosgabriel/taq-u-app/internal/pkg/errs"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PendingOrdersQueryHandler lists orders still in PENDING status, oldest
// pickup first, with their package counts.
type PendingOrdersQueryHandler struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewPendingOrdersQueryHandler creates a handler for pending order queries.
func NewPendingOrdersQueryHandler(db *gorm.DB, logger *zap.Logger) PendingOrdersQueryHandler {
	return PendingOrdersQueryHandler{db: db, logger: logger}
}

// Handle executes the query and returns all pending orders.
func (h PendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query PendingOrdersQuery,
) ([]PendingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.pickup_address,
			o.delivery_address,
			o.priority,
			o.pickup_date,
			COUNT(p.id)
		FROM orders o
		LEFT JOIN packages p ON p.order_id = o.id
		WHERE o.status = ?
		GROUP BY o.id
		ORDER BY o.pickup_date
	`, order.StatusPending.String()).Rows()
	if err != nil {
		h.logger.Error("pending orders query failed", zap.Error(err))
		return nil, errs.NewUnknownError(err)
	}
	defer rows.Close()

	orders := make([]PendingOrdersQueryResponse, 0)
	for rows.Next() {
		var resp PendingOrdersQueryResponse
		var id uuid.UUID

		if err := rows.Scan(
			&id,
			&resp.PickupAddress,
			&resp.DeliveryAddress,
			&resp.Priority,
			&resp.PickupDate,
			&resp.PackageCount,
		); err != nil {
			return nil, errs.NewUnknownError(err)
		}

		resp.ID = id.String()
		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, errs.NewUnknownError(err)
	}

	return orders, nil
}
