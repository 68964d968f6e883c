package payment

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v83"

	"tripplanner/internal/modules/order"
	"tripplanner/internal/types"
)

// StripeProvider opens a PaymentIntent per order. The client confirms it; nothing is charged here.
type StripeProvider struct {
	client *stripe.Client
}

// NewStripeProvider builds a provider with its own Stripe client. Options such as
// stripe.WithBackends point it at another API host.
func NewStripeProvider(secretKey string, opts ...stripe.ClientOption) *StripeProvider {
	return &StripeProvider{client: stripe.NewClient(secretKey, opts...)}
}

func (p *StripeProvider) Name() string {
	return "stripe"
}

func (p *StripeProvider) CreateOrder(ctx context.Context, req OrderRequest) (order.Order, error) {
	params := &stripe.PaymentIntentCreateParams{
		Amount:   stripe.Int64(req.Amount.MinorUnits()),
		Currency: stripe.String(strings.ToLower(req.Amount.Currency)),
		Metadata: map[string]string{
			"booking_id": req.BookingID,
			"user_id":    req.UserID,
		},
		AutomaticPaymentMethods: &stripe.PaymentIntentCreateAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}

	pi, err := p.client.V1PaymentIntents.Create(ctx, params)
	if err != nil {
		return order.Order{}, errors.Wrapf(types.ErrUpstreamUnavailable, "stripe payment intent: %v", err)
	}
	return order.Order{
		OrderID:  pi.ID,
		Amount:   req.Amount.Amount,
		Currency: req.Amount.Currency,
		Status:   statusFromIntent(pi.Status),
	}, nil
}

func statusFromIntent(s stripe.PaymentIntentStatus) order.Status {
	switch s {
	case stripe.PaymentIntentStatusSucceeded:
		return order.StatusPaid
	case stripe.PaymentIntentStatusCanceled:
		return order.StatusFailed
	case stripe.PaymentIntentStatusRequiresCapture:
		return order.StatusConfirmed
	default:
		return order.StatusPending
	}
}
