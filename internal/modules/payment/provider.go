// README: Payment providers create orders for bookings; Stripe in production, simulated otherwise.
package payment

import (
	"context"

	"tripplanner/internal/modules/order"
	"tripplanner/internal/types"
)

// OrderRequest asks a provider to open an order for a booking. Capture marks a payment
// attempt from the traveller rather than a reservation made while booking.
type OrderRequest struct {
	BookingID string
	UserID    string
	Amount    types.Money
	Capture   bool
}

type Provider interface {
	Name() string
	CreateOrder(ctx context.Context, req OrderRequest) (order.Order, error)
}

// SimulatedProvider settles nothing; it returns CONFIRMED reservations and PAID captures.
type SimulatedProvider struct{}

func NewSimulatedProvider() *SimulatedProvider {
	return &SimulatedProvider{}
}

func (p *SimulatedProvider) Name() string {
	return "simulated"
}

func (p *SimulatedProvider) CreateOrder(_ context.Context, req OrderRequest) (order.Order, error) {
	status := order.StatusConfirmed
	if req.Capture {
		status = order.StatusPaid
	}
	return order.Order{
		OrderID:  order.NewID(),
		Amount:   req.Amount.Amount,
		Currency: req.Amount.Currency,
		Status:   status,
	}, nil
}
