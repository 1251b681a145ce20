package order

import (
	"fmt"

	"github.com/riosgabriel/taq-u-app/internal/pkg/errs"
)

// Priority represents the delivery priority of an order.
// It is a closed enumeration; free-text input is validated against it at
// decode time so an out-of-range value never reaches the store.
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	// This value (0) helps catch uninitialized Priority values.
	PriorityUnknown Priority = iota

	// PriorityLow is for deliveries without time pressure.
	PriorityLow

	// PriorityNormal is the default priority when none is specified.
	PriorityNormal

	// PriorityHigh is for deliveries that should be expedited.
	PriorityHigh

	// PriorityUrgent is for same-day critical deliveries.
	PriorityUrgent
)

// getPriorityStrings returns a map of Priority values to their wire representations.
func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityUnknown: "UNKNOWN",
		PriorityLow:     "LOW",
		PriorityNormal:  "NORMAL",
		PriorityHigh:    "HIGH",
		PriorityUrgent:  "URGENT",
	}
}

// getValidPriorityStrings returns only valid Priority values.
func getValidPriorityStrings() map[Priority]string {
	//nolint:exhaustive // PriorityUnknown is intentionally excluded as it's invalid
	return map[Priority]string{
		PriorityLow:    "LOW",
		PriorityNormal: "NORMAL",
		PriorityHigh:   "HIGH",
		PriorityUrgent: "URGENT",
	}
}

// Validate checks if the Priority value is valid.
// PriorityUnknown (0) and any other values are invalid.
func (p Priority) Validate() error {
	if _, ok := getValidPriorityStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priority",
			fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// String returns the wire representation of the priority.
func (p Priority) String() string {
	if s, ok := getPriorityStrings()[p]; ok {
		return s
	}
	return getPriorityStrings()[PriorityUnknown]
}

// PriorityFromString maps a wire string onto the enumeration.
// The empty string maps to PriorityNormal, the documented default.
// Any other value outside the enumeration is rejected.
func PriorityFromString(s string) (Priority, error) {
	if s == "" {
		return PriorityNormal, nil
	}

	for p, str := range getValidPriorityStrings() {
		if str == s {
			return p, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause("priority",
		fmt.Errorf("%q is not a valid priority", s))
}
