package driver

import (
	"fmt"

	"github.com/riosgabriel/taq-u-app/internal/pkg/errs"
)

// VehicleType represents the kind of vehicle a driver operates.
// It is a closed enumeration; free-text input is validated against it at
// decode time so an out-of-range value never reaches the store.
type VehicleType int

const (
	// VehicleTypeUnknown represents an invalid or undefined vehicle type.
	// This value (0) helps catch uninitialized VehicleType values.
	VehicleTypeUnknown VehicleType = iota

	// VehicleTypeMotorcycle is a two-wheeled vehicle for small deliveries.
	VehicleTypeMotorcycle

	// VehicleTypeCar is a standard passenger car.
	VehicleTypeCar

	// VehicleTypeVan is a light commercial vehicle.
	VehicleTypeVan

	// VehicleTypeTruck is a heavy goods vehicle.
	VehicleTypeTruck
)

// getVehicleTypeStrings returns a map of VehicleType values to their wire representations.
func getVehicleTypeStrings() map[VehicleType]string {
	return map[VehicleType]string{
		VehicleTypeUnknown:    "UNKNOWN",
		VehicleTypeMotorcycle: "MOTORCYCLE",
		VehicleTypeCar:        "CAR",
		VehicleTypeVan:        "VAN",
		VehicleTypeTruck:      "TRUCK",
	}
}

// getValidVehicleTypeStrings returns only valid VehicleType values.
func getValidVehicleTypeStrings() map[VehicleType]string {
	//nolint:exhaustive // VehicleTypeUnknown is intentionally excluded as it's invalid
	return map[VehicleType]string{
		VehicleTypeMotorcycle: "MOTORCYCLE",
		VehicleTypeCar:        "CAR",
		VehicleTypeVan:        "VAN",
		VehicleTypeTruck:      "TRUCK",
	}
}

// Validate checks if the VehicleType value is valid.
// VehicleTypeUnknown (0) and any other values are invalid.
func (v VehicleType) Validate() error {
	if _, ok := getValidVehicleTypeStrings()[v]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("vehicleType",
			fmt.Errorf("%d is not a valid vehicle type", v))
	}
	return nil
}

// String returns the wire representation of the vehicle type.
func (v VehicleType) String() string {
	if s, ok := getVehicleTypeStrings()[v]; ok {
		return s
	}
	return getVehicleTypeStrings()[VehicleTypeUnknown]
}

// VehicleTypeFromString maps a wire string onto the enumeration.
// Returns an error for any value outside the enumeration; input is never
// silently truncated or passed through to the store.
func VehicleTypeFromString(s string) (VehicleType, error) {
	for vt, str := range getValidVehicleTypeStrings() {
		if str == s {
			return vt, nil
		}
	}
	return VehicleTypeUnknown, errs.NewValueIsInvalidErrorWithCause("vehicleType",
		fmt.Errorf("%q is not a valid vehicle type", s))
}
