package payments

import "math"

// Gateway is the payment-intent collaborator. CreateIntent returns the
// client secret the frontend needs to confirm the payment.
type Gateway interface {
	CreateIntent(amount float64, currency string) (string, error)
}

// ToMinorUnits converts a major-unit amount (dollars) to minor units
// (cents), rounding to the nearest cent.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
