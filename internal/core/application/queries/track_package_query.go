// Package queries contains the read side of the application: handlers that
// bypass the domain repositories and read projection-shaped responses straight
// from the database, optionally through a cache.
package queries

import (
	"errors"
	"time"

	"github.com/riosgabriel/taq-u-app/internal/pkg/errs"
)

var ErrTrackPackageQueryIsNotConstructed = errors.New(
	"TrackPackageQuery must be created via NewTrackPackageQuery constructor",
)

// TrackPackageQuery looks up a single package, together with its order's
// delivery context, by tracking number.
type TrackPackageQuery struct {
	trackingNumber string

	isConstructed bool
}

// NewTrackPackageQuery creates a query for the given tracking number.
func NewTrackPackageQuery(trackingNumber string) (TrackPackageQuery, error) {
	if trackingNumber == "" {
		return TrackPackageQuery{}, errs.NewValueIsRequiredError("trackingNumber")
	}

	return TrackPackageQuery{
		trackingNumber: trackingNumber,
		isConstructed:  true,
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackPackageQuery) Validate() error {
	if !q.isConstructed {
		return ErrTrackPackageQueryIsNotConstructed
	}
	return nil
}

// TrackingNumber returns the tracking number being looked up.
func (q TrackPackageQuery) TrackingNumber() string {
	return q.trackingNumber
}

// TrackPackageQueryResponse is the projection returned to tracking lookups.
// It carries the package state plus just enough order context to display
// where the delivery stands.
type TrackPackageQueryResponse struct {
	TrackingNumber  string     `json:"trackingNumber"`
	PackageStatus   string     `json:"packageStatus"`
	Description     string     `json:"description"`
	WeightKg        float64    `json:"weightKg"`
	OrderID         string     `json:"orderId"`
	OrderStatus     string     `json:"orderStatus"`
	Priority        string     `json:"priority"`
	PickupAddress   string     `json:"pickupAddress"`
	DeliveryAddress string     `json:"deliveryAddress"`
	PickupDate      time.Time  `json:"pickupDate"`
	DeliveryDate    *time.Time `json:"deliveryDate,omitempty"`
}
