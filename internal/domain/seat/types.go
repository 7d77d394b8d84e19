package seat

import "errors"

var (
	ErrInvalidTier    = errors.New("invalid loyalty tier")
	ErrInvalidSeatID  = errors.New("seat id must be positive")
	ErrNegativeOrders = errors.New("order count cannot be negative")
	ErrQuotaExceeded  = errors.New("loyalty tier allows only one snack per trip")
)

// Tier is the loyalty tier of the passenger in a seat. Values are the labels
// the reference clients display and style on.
type Tier string

const (
	TierBasic    Tier = "Básico"
	TierTopaz    Tier = "Topázio"
	TierSapphire Tier = "Safira"
	TierDiamond  Tier = "Diamante"
)

// snackQuota is the number of snacks a quota-bound tier may order per trip.
const snackQuota = 1

func (t Tier) String() string {
	return string(t)
}

func (t Tier) IsValid() bool {
	switch t {
	case TierBasic, TierTopaz, TierSapphire, TierDiamond:
		return true
	default:
		return false
	}
}

// HasSnackQuota reports whether the tier is limited to snackQuota orders. Every other tier is unlimited.
func (t Tier) HasSnackQuota() bool {
	return t == TierBasic
}

func NewTier(s string) (Tier, error) {
	tier := Tier(s)
	if !tier.IsValid() {
		return "", ErrInvalidTier
	}
	return tier, nil
}
