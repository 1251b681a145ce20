package order_test

import (
	"strings"
	"testing"

	"github.com/riosgabriel/taq-u-app/internal/core/domain/model/kernel"
	"github.com/riosgabriel/taq-u-app/internal/core/domain/model/order"
	"github.com/riosgabriel/taq-u-app/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPackage(t *testing.T) {
	t.Run("should create a valid package", func(t *testing.T) {
		p, err := order.NewPackage(2.5, "30x20x10", "books", true, false, true)

		require.NoError(t, err)
		assert.NoError(t, p.Validate())
		assert.NoError(t, p.ID().Validate())
		assert.InEpsilon(t, 2.5, p.WeightKg(), 1e-9)
		assert.Equal(t, "30x20x10", p.Dimensions())
		assert.Equal(t, "books", p.Description())
		assert.True(t, p.IsFragile())
		assert.False(t, p.IsPerishable())
		assert.True(t, p.IsInsured())
		assert.Equal(t, order.PackageStatusAwaitingPickup, p.Status())
	})

	t.Run("should allow zero weight", func(t *testing.T) {
		p, err := order.NewPackage(0, "10x10x10", "envelope", false, false, false)
		require.NoError(t, err)
		assert.Zero(t, p.WeightKg())
	})

	t.Run("should reject negative weight", func(t *testing.T) {
		_, err := order.NewPackage(-0.1, "10x10x10", "envelope", false, false, false)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject missing required fields", func(t *testing.T) {
		_, err := order.NewPackage(1, "", "envelope", false, false, false)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewPackage(1, "10x10x10", "", false, false, false)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewTrackingNumber(t *testing.T) {
	t.Run("should carry the TRK prefix", func(t *testing.T) {
		tn := order.NewTrackingNumber()
		assert.True(t, strings.HasPrefix(tn, "TRK-"), "unexpected tracking number: %s", tn)
	})

	t.Run("should be unique for identical package content", func(t *testing.T) {
		seen := make(map[string]bool)
		for range 100 {
			tn := order.NewTrackingNumber()
			assert.False(t, seen[tn], "tracking number reused: %s", tn)
			seen[tn] = true
		}
	})
}

func TestRestorePackage(t *testing.T) {
	t.Run("should restore a package from persisted state", func(t *testing.T) {
		id := kernel.NewUUID()
		p, err := order.RestorePackage(id, 1.2, "20x20x20", "glassware",
			true, false, true, order.PackageStatusInTransit, "TRK-ABC123")

		require.NoError(t, err)
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, order.PackageStatusInTransit, p.Status())
		assert.Equal(t, "TRK-ABC123", p.TrackingNumber())
	})

	t.Run("should reject an empty tracking number", func(t *testing.T) {
		_, err := order.RestorePackage(kernel.NewUUID(), 1.2, "20x20x20", "glassware",
			false, false, false, order.PackageStatusAwaitingPickup, "")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject an invalid status", func(t *testing.T) {
		_, err := order.RestorePackage(kernel.NewUUID(), 1.2, "20x20x20", "glassware",
			false, false, false, order.PackageStatusUnknown, "TRK-ABC123")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
