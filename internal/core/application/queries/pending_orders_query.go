package queries

import (
	"errors"
	"time"
)

var ErrPendingOrdersQueryIsNotConstructed = errors.New(
	"PendingOrdersQuery must be created via NewPendingOrdersQuery constructor",
)

// PendingOrdersQuery retrieves all orders still awaiting dispatch.
// This is a parameterless query used by the reporting job and the API.
type PendingOrdersQuery struct {
	isConstructed bool
}

// NewPendingOrdersQuery creates a query for pending orders.
func NewPendingOrdersQuery() PendingOrdersQuery {
	return PendingOrdersQuery{isConstructed: true}
}

// Validate ensures the query was created through the constructor.
func (q PendingOrdersQuery) Validate() error {
	if !q.isConstructed {
		return ErrPendingOrdersQueryIsNotConstructed
	}
	return nil
}

// PendingOrdersQueryResponse represents one order awaiting dispatch.
type PendingOrdersQueryResponse struct {
	ID              string    `json:"id"`
	PickupAddress   string    `json:"pickupAddress"`
	DeliveryAddress string    `json:"deliveryAddress"`
	Priority        string    `json:"priority"`
	PickupDate      time.Time `json:"pickupDate"`
	PackageCount    int       `json:"packageCount"`
}
