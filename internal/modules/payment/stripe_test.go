package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v83"

	"tripplanner/internal/modules/order"
	"tripplanner/internal/types"
)

type stripeCall struct {
	path string
	auth string
	form url.Values
}

func fakeStripe(t *testing.T, status int, body string) (*httptest.Server, *stripeCall) {
	t.Helper()
	seen := &stripeCall{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		seen.path = r.URL.Path
		seen.auth = r.Header.Get("Authorization")
		seen.form = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, seen
}

func backendsFor(baseURL string) stripe.ClientOption {
	return stripe.WithBackends(stripe.NewBackendsWithConfig(&stripe.BackendConfig{
		URL:               stripe.String(baseURL),
		MaxNetworkRetries: stripe.Int64(0),
	}))
}

func TestStripeProvider_CreateOrderAgainstFakeAPI(t *testing.T) {
	srv, seen := fakeStripe(t, http.StatusOK, `{"id":"pi_123","object":"payment_intent","status":"requires_payment_method","amount":10000,"currency":"inr"}`)
	p := NewStripeProvider("sk_test_local", backendsFor(srv.URL))

	ord, err := p.CreateOrder(context.Background(), OrderRequest{
		BookingID: "BK-1",
		UserID:    "u1",
		Amount:    types.Money{Amount: 100, Currency: "INR"},
	})

	require.NoError(t, err)
	assert.Equal(t, "pi_123", ord.OrderID)
	assert.Equal(t, order.StatusPending, ord.Status)
	assert.Equal(t, int64(100), ord.Amount)
	assert.Equal(t, "/v1/payment_intents", seen.path)
	assert.Equal(t, "10000", seen.form.Get("amount"))
	assert.Equal(t, "inr", seen.form.Get("currency"))
	assert.Equal(t, "BK-1", seen.form.Get("metadata[booking_id]"))
	assert.Equal(t, "Bearer sk_test_local", seen.auth)
	assert.Empty(t, stripe.Key)
}

func TestStripeProvider_APIErrorIsUpstreamUnavailable(t *testing.T) {
	srv, _ := fakeStripe(t, http.StatusBadRequest, `{"error":{"type":"invalid_request_error","message":"Amount must be at least 50"}}`)
	p := NewStripeProvider("sk_test_local", backendsFor(srv.URL))

	_, err := p.CreateOrder(context.Background(), OrderRequest{
		BookingID: "BK-1",
		Amount:    types.Money{Amount: 0, Currency: "INR"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrUpstreamUnavailable)
}

func TestStripeProvider_StatusMapping(t *testing.T) {
	assert.Equal(t, order.StatusPaid, statusFromIntent(stripe.PaymentIntentStatusSucceeded))
	assert.Equal(t, order.StatusFailed, statusFromIntent(stripe.PaymentIntentStatusCanceled))
	assert.Equal(t, order.StatusConfirmed, statusFromIntent(stripe.PaymentIntentStatusRequiresCapture))
	assert.Equal(t, order.StatusPending, statusFromIntent(stripe.PaymentIntentStatusProcessing))
}

func TestStripeProvider_CreateOrder(t *testing.T) {
	key := os.Getenv("STRIPE_TEST_SECRET_KEY")
	if key == "" {
		t.Skip("STRIPE_TEST_SECRET_KEY not set")
	}
	p := NewStripeProvider(key)

	ord, err := p.CreateOrder(context.Background(), OrderRequest{
		BookingID: "BK-TEST",
		UserID:    "integration",
		Amount:    types.Money{Amount: 100, Currency: "INR"},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, ord.OrderID)
	assert.True(t, ord.Status.Valid())
}
