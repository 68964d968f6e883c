package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"tripplanner/internal/infra"
	"tripplanner/internal/modules/booking"
	"tripplanner/internal/modules/order"
	"tripplanner/internal/modules/pricing"
	"tripplanner/internal/types"
)

// DefaultBookingTimeout bounds the whole live quote, confirm and order sequence.
const DefaultBookingTimeout = 8 * time.Second

// OrderCreator opens the order attached to a confirmed booking.
type OrderCreator interface {
	CreateOrder(ctx context.Context, bookingID, userID string, amount int64) (order.Order, error)
}

type BookingPlannerDeps struct {
	Backend  booking.Backend
	Payments OrderCreator
	Rates    *pricing.Service
	// Simulate skips the backend even when one is configured.
	Simulate bool
	Timeout  time.Duration
	Logger   *zap.Logger
	Metrics  *infra.Metrics
}

// BookingPlanner books through the live backend and falls back to a priced simulation.
type BookingPlanner struct {
	backend  booking.Backend
	payments OrderCreator
	rates    *pricing.Service
	simulate bool
	timeout  time.Duration
	log      *zap.Logger
	metrics  *infra.Metrics
}

func NewBookingPlanner(deps BookingPlannerDeps) *BookingPlanner {
	b := &BookingPlanner{
		backend:  deps.Backend,
		payments: deps.Payments,
		rates:    deps.Rates,
		simulate: deps.Simulate,
		timeout:  deps.Timeout,
		log:      deps.Logger,
		metrics:  deps.Metrics,
	}
	if b.rates == nil {
		b.rates = pricing.NewService(pricing.DefaultRateCard())
	}
	if b.timeout <= 0 {
		b.timeout = DefaultBookingTimeout
	}
	if b.log == nil {
		b.log = zap.NewNop()
	}
	return b
}

// Book always returns a complete booking; Source tells the caller which path produced it.
func (b *BookingPlanner) Book(ctx context.Context, req booking.Request) booking.Booking {
	if b.simulate || b.backend == nil {
		b.metrics.RecordOutcome("booking", infra.PathFallback, "simulated")
		return booking.Synthesize(req, b.rates)
	}

	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	out, failure := types.OrElse(b.live(ctx, req), func(*types.Failure) booking.Booking {
		return booking.Synthesize(req, b.rates)
	})
	if failure != nil {
		b.log.Warn("booking fallback",
			zap.String("user_id", req.UserID),
			zap.String("stage", string(failure.Stage)),
			zap.String("reason", failure.Reason()),
			zap.Error(failure.Err),
		)
		b.metrics.RecordOutcome("booking", infra.PathFallback, failure.Reason())
		return out
	}
	b.metrics.RecordOutcome("booking", infra.PathPrimary, "")
	return out
}

func (b *BookingPlanner) live(ctx context.Context, req booking.Request) types.Result[booking.Booking] {
	quote := types.Attempt(types.StageQuoting, func() (*booking.Quote, error) {
		started := time.Now()
		q, err := b.backend.Quote(ctx, req)
		b.metrics.ObserveUpstream("booking_quote", started, err)
		return q, err
	})

	confirmed := types.Then(quote, func(q *booking.Quote) types.Result[booking.Booking] {
		return types.Attempt(types.StageConfirming, func() (booking.Booking, error) {
			started := time.Now()
			conf, err := b.backend.Confirm(ctx, q.QuoteID, req.UserID)
			b.metrics.ObserveUpstream("booking_confirm", started, err)
			if err != nil {
				return booking.Booking{}, err
			}
			currency := q.Currency
			if currency == "" {
				currency = b.rates.Currency()
			}
			parts := booking.Parts{
				BookingID:       conf.BookingID,
				Flights:         q.Flights,
				Hotel:           q.Hotel,
				Transport:       q.Transport,
				ActivitiesTotal: q.ActivitiesTotal,
			}
			return booking.Assemble(booking.SourceLive, currency, parts, order.Order{Status: order.StatusPending}, req), nil
		})
	})

	return types.Then(confirmed, func(bk booking.Booking) types.Result[booking.Booking] {
		return types.Attempt(types.StageOrdering, func() (booking.Booking, error) {
			if b.payments == nil {
				bk.Order.OrderID = order.NewID()
				bk.Order.Status = order.StatusConfirmed
				return bk, nil
			}
			ord, err := b.payments.CreateOrder(ctx, bk.BookingID, req.UserID, bk.Totals.GrandTotal)
			if err != nil {
				return booking.Booking{}, err
			}
			bk.Order = ord
			bk.Order.Amount = bk.Totals.GrandTotal
			return bk, nil
		})
	})
}
