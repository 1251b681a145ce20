package order

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// trackingPrefix is the constant prefix of every tracking number.
const trackingPrefix = "TRK"

// NewTrackingNumber generates a unique tracking number for a package.
//
// The number is derived from a random UUID rather than from package content,
// so two packages with identical content in the same order still receive
// distinct tracking numbers. A tracking number is assigned once at creation
// and never reused.
func NewTrackingNumber() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%s-%s", trackingPrefix, strings.ToUpper(raw))
}
