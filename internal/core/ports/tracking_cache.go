package ports

import (
	"context"
	"time"
)

// TrackingCache defines the contract for the read-side cache in front of
// package tracking lookups. A miss is reported through the boolean, never as
// an error; cache failures must not break the lookup path.
type TrackingCache interface {
	// Get retrieves the cached payload for a tracking number.
	Get(ctx context.Context, trackingNumber string) ([]byte, bool, error)

	// Set stores the payload for a tracking number with the given TTL.
	Set(ctx context.Context, trackingNumber string, payload []byte, ttl time.Duration) error
}
