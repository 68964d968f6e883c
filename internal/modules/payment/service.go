package payment

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"tripplanner/internal/infra"
	"tripplanner/internal/modules/order"
	"tripplanner/internal/types"
)

var ErrBadRequest = errors.New("bad payment request")

type PayRequest struct {
	BookingID string       `json:"bookingId"`
	Amount    types.Number `json:"amount"`
	Currency  string       `json:"currency"`
	UserID    string       `json:"-"`
}

type Service struct {
	provider Provider
	currency string
	log      *zap.Logger
	metrics  *infra.Metrics
}

func NewService(provider Provider, currency string, log *zap.Logger, metrics *infra.Metrics) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{provider: provider, currency: currency, log: log, metrics: metrics}
}

// CreateOrder reserves an order for a booking being confirmed.
func (s *Service) CreateOrder(ctx context.Context, bookingID, userID string, amount int64) (order.Order, error) {
	return s.create(ctx, OrderRequest{
		BookingID: bookingID,
		UserID:    userID,
		Amount:    types.Money{Amount: amount, Currency: s.currency},
	})
}

// Pay handles a traveller's payment attempt for an existing booking.
func (s *Service) Pay(ctx context.Context, req PayRequest) (order.Order, error) {
	req.BookingID = strings.TrimSpace(req.BookingID)
	amount := int64(req.Amount)
	if req.BookingID == "" || amount <= 0 {
		return order.Order{}, ErrBadRequest
	}
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = s.currency
	}
	return s.create(ctx, OrderRequest{
		BookingID: req.BookingID,
		UserID:    req.UserID,
		Amount:    types.Money{Amount: amount, Currency: currency},
		Capture:   true,
	})
}

func (s *Service) create(ctx context.Context, req OrderRequest) (order.Order, error) {
	started := time.Now()
	ord, err := s.provider.CreateOrder(ctx, req)
	s.metrics.ObserveUpstream("payment_"+s.provider.Name(), started, err)
	if err != nil {
		s.log.Warn("create order failed",
			zap.String("provider", s.provider.Name()),
			zap.String("booking_id", req.BookingID),
			zap.Error(err),
		)
		return order.Order{}, err
	}
	if !ord.Status.Valid() {
		return order.Order{}, errors.Errorf("provider %s returned status %q", s.provider.Name(), ord.Status)
	}
	return ord, nil
}
