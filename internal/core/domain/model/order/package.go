package order

import (
	"errors"
	"fmt"

	"github.com/riosgabriel/taq-u-app/internal/core/domain/model/kernel"
	"github.com/riosgabriel/taq-u-app/internal/pkg/errs"
)

// ErrPackageIsNotConstructed is returned when a Package instance was not
// created through NewPackage or RestorePackage.
var ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage or RestorePackage")

// PackageStatus represents the lifecycle state of a package.
// New packages always start in PackageStatusAwaitingPickup.
type PackageStatus int

const (
	// PackageStatusUnknown represents an invalid or undefined package status.
	PackageStatusUnknown PackageStatus = iota

	// PackageStatusAwaitingPickup is the initial status assigned at creation.
	PackageStatusAwaitingPickup

	// PackageStatusInTransit indicates the package is moving through the network.
	PackageStatusInTransit

	// PackageStatusDelivered indicates the package reached its destination.
	PackageStatusDelivered
)

// getPackageStatusStrings returns a map of PackageStatus values to their wire representations.
func getPackageStatusStrings() map[PackageStatus]string {
	return map[PackageStatus]string{
		PackageStatusUnknown:        "UNKNOWN",
		PackageStatusAwaitingPickup: "AWAITING_PICKUP",
		PackageStatusInTransit:      "IN_TRANSIT",
		PackageStatusDelivered:      "DELIVERED",
	}
}

// getValidPackageStatusStrings returns only valid PackageStatus values.
func getValidPackageStatusStrings() map[PackageStatus]string {
	//nolint:exhaustive // PackageStatusUnknown is intentionally excluded as it's invalid
	return map[PackageStatus]string{
		PackageStatusAwaitingPickup: "AWAITING_PICKUP",
		PackageStatusInTransit:      "IN_TRANSIT",
		PackageStatusDelivered:      "DELIVERED",
	}
}

// Validate checks if the PackageStatus value is valid.
func (s PackageStatus) Validate() error {
	if _, ok := getValidPackageStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("packageStatus",
			fmt.Errorf("%d is not a valid package status", s))
	}
	return nil
}

// String returns the wire representation of the package status.
func (s PackageStatus) String() string {
	if str, ok := getPackageStatusStrings()[s]; ok {
		return str
	}
	return getPackageStatusStrings()[PackageStatusUnknown]
}

// PackageStatusFromString maps a wire string onto the enumeration.
func PackageStatusFromString(s string) (PackageStatus, error) {
	for st, str := range getValidPackageStatusStrings() {
		if str == s {
			return st, nil
		}
	}
	return PackageStatusUnknown, errs.NewValueIsInvalidErrorWithCause("packageStatus",
		fmt.Errorf("%q is not a valid package status", s))
}

// Package represents a single package within an order. Packages are owned
// exclusively by their order and are created atomically with it; the caller
// supplies only content fields, while status and tracking number are assigned
// internally.
type Package struct {
	id             kernel.UUID
	weightKg       float64
	dimensions     string
	description    string
	fragile        bool
	perishable     bool
	insured        bool
	status         PackageStatus
	trackingNumber string

	isConstructed bool
}

// NewPackage creates a new Package with a freshly assigned identifier and
// tracking number. The status is fixed to AWAITING_PICKUP.
// Weight must be non-negative; dimensions and description must be non-empty.
func NewPackage(weightKg float64, dimensions, description string, fragile, perishable, insured bool) (*Package, error) {
	p := &Package{
		id:             kernel.NewUUID(),
		fragile:        fragile,
		perishable:     perishable,
		insured:        insured,
		status:         PackageStatusAwaitingPickup,
		trackingNumber: NewTrackingNumber(),
		isConstructed:  true,
	}

	if err := errors.Join(
		p.setWeightKg(weightKg),
		p.setDimensions(dimensions),
		p.setDescription(description),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePackage reconstructs a Package from persisted state.
func RestorePackage(
	id kernel.UUID,
	weightKg float64,
	dimensions, description string,
	fragile, perishable, insured bool,
	status PackageStatus,
	trackingNumber string,
) (*Package, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if trackingNumber == "" {
		return nil, errs.NewValueIsRequiredError("trackingNumber")
	}

	p := &Package{
		id:             id,
		fragile:        fragile,
		perishable:     perishable,
		insured:        insured,
		status:         status,
		trackingNumber: trackingNumber,
		isConstructed:  true,
	}

	if err := errors.Join(
		p.setWeightKg(weightKg),
		p.setDimensions(dimensions),
		p.setDescription(description),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Package was properly constructed.
func (p *Package) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPackageIsNotConstructed
	}
	return nil
}

// ID returns the package's unique identifier.
func (p *Package) ID() kernel.UUID {
	return p.id
}

// WeightKg returns the package weight in kilograms.
func (p *Package) WeightKg() float64 {
	return p.weightKg
}

// Dimensions returns the free-text dimensions of the package.
func (p *Package) Dimensions() string {
	return p.dimensions
}

// Description returns the package description.
func (p *Package) Description() string {
	return p.description
}

// IsFragile reports whether the package needs fragile handling.
func (p *Package) IsFragile() bool {
	return p.fragile
}

// IsPerishable reports whether the package contents are perishable.
func (p *Package) IsPerishable() bool {
	return p.perishable
}

// IsInsured reports whether the package is insured.
func (p *Package) IsInsured() bool {
	return p.insured
}

// Status returns the current status of the package.
func (p *Package) Status() PackageStatus {
	return p.status
}

// TrackingNumber returns the tracking number assigned at creation.
func (p *Package) TrackingNumber() string {
	return p.trackingNumber
}

func (p *Package) setWeightKg(weightKg float64) error {
	if weightKg < 0 {
		return errs.NewValueIsInvalidErrorWithCause("weightKg",
			fmt.Errorf("%f is negative", weightKg))
	}
	p.weightKg = weightKg
	return nil
}

func (p *Package) setDimensions(dimensions string) error {
	if dimensions == "" {
		return errs.NewValueIsRequiredError("dimensions")
	}
	p.dimensions = dimensions
	return nil
}

func (p *Package) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	p.description = description
	return nil
}
