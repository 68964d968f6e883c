// README: Order record and status flow shared by bookings and payments.
package order

import "github.com/google/uuid"

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusPaid      Status = "PAID"
	StatusFailed    Status = "FAILED"
)

// Order is the payment-side record attached to a booking.
type Order struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency,omitempty"`
	Status   Status `json:"status"`
}

// AllowedTransitions represents the order state flow as code.
var AllowedTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusPaid, StatusFailed},
	StatusConfirmed: {StatusPaid, StatusFailed},
}

func CanTransition(from, to Status) bool {
	for _, s := range AllowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPaid, StatusFailed:
		return true
	}
	return false
}

func NewID() string {
	return "order_" + uuid.NewString()
}
