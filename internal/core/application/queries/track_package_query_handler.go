package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/riosgabriel/taq-u-app/internal/core/ports"
	"github.com/riosgabriel/taq-u-app/internal/pkg/errs"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TrackPackageQueryHandler answers tracking lookups from a cache-fronted
// read model. A cache failure degrades to a database read; it never fails
// the lookup.
type TrackPackageQueryHandler struct {
	db     *gorm.DB
	cache  ports.TrackingCache
	ttl    time.Duration
	logger *zap.Logger
}

// NewTrackPackageQueryHandler creates a handler for tracking lookups.
// ttl controls how long a resolved lookup stays cached.
func NewTrackPackageQueryHandler(
	db *gorm.DB,
	cache ports.TrackingCache,
	ttl time.Duration,
	logger *zap.Logger,
) TrackPackageQueryHandler {
	return TrackPackageQueryHandler{
		db:     db,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// Handle resolves a tracking number to its package and order context.
// An unknown tracking number yields errs.ObjectNotFoundError.
func (h TrackPackageQueryHandler) Handle(
	ctx context.Context,
	query TrackPackageQuery,
) (TrackPackageQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackPackageQueryResponse{}, err
	}

	if payload, found, err := h.cache.Get(ctx, query.TrackingNumber()); err != nil {
		h.logger.Warn("tracking cache read failed",
			zap.String("tracking_number", query.TrackingNumber()),
			zap.Error(err),
		)
	} else if found {
		var cached TrackPackageQueryResponse
		if err := json.Unmarshal(payload, &cached); err == nil {
			return cached, nil
		}
		h.logger.Warn("tracking cache entry is not decodable",
			zap.String("tracking_number", query.TrackingNumber()),
		)
	}

	resp, err := h.lookup(ctx, query.TrackingNumber())
	if err != nil {
		return TrackPackageQueryResponse{}, err
	}

	if payload, err := json.Marshal(resp); err == nil {
		if err := h.cache.Set(ctx, query.TrackingNumber(), payload, h.ttl); err != nil {
			h.logger.Warn("tracking cache write failed",
				zap.String("tracking_number", query.TrackingNumber()),
				zap.Error(err),
			)
		}
	}

	return resp, nil
}

func (h TrackPackageQueryHandler) lookup(ctx context.Context, trackingNumber string) (TrackPackageQueryResponse, error) {
	var resp TrackPackageQueryResponse
	var orderID uuid.UUID
	var deliveryDate sql.NullTime

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			p.tracking_number,
			p.status,
			p.description,
			p.weight_kg,
			o.id,
			o.status,
			o.priority,
			o.pickup_address,
			o.delivery_address,
			o.pickup_date,
			o.delivery_date
		FROM packages p
		JOIN orders o ON o.id = p.order_id
		WHERE p.tracking_number = ?
	`, trackingNumber).Row()

	err := row.Scan(
		&resp.TrackingNumber,
		&resp.PackageStatus,
		&resp.Description,
		&resp.WeightKg,
		&orderID,
		&resp.OrderStatus,
		&resp.Priority,
		&resp.PickupAddress,
		&resp.DeliveryAddress,
		&resp.PickupDate,
		&deliveryDate,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return TrackPackageQueryResponse{}, errs.NewObjectNotFoundError("trackingNumber", trackingNumber)
	}
	if err != nil {
		h.logger.Error("tracking lookup failed",
			zap.String("tracking_number", trackingNumber),
			zap.Error(err),
		)
		return TrackPackageQueryResponse{}, errs.NewUnknownError(err)
	}

	resp.OrderID = orderID.String()
	if deliveryDate.Valid {
		resp.DeliveryDate = &deliveryDate.Time
	}

	return resp, nil
}
