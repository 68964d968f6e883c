// README: Money value object shared by booking totals and payment orders.
package types

// Money is an amount in whole currency units (rupees, not paise).
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// MinorUnits converts to the smallest currency unit expected by card processors.
func (m Money) MinorUnits() int64 {
	return m.Amount * 100
}
