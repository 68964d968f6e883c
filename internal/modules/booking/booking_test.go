package booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplanner/internal/modules/order"
	"tripplanner/internal/modules/pricing"
	"tripplanner/internal/types"
)

func sampleRequest() Request {
	return Request{
		UserID: "u1",
		BookingItems: []Item{
			{Day: "Day 1", Activities: []string{"Fort Aguada"}},
		},
		Details: Details{
			Origin:      "BLR",
			Destination: "GOI",
			StartDate:   "2025-12-01",
			EndDate:     "2025-12-04",
			Travelers:   2,
			FlightClass: "Economy",
			HotelRating: 3,
		},
	}
}

func TestSynthesize_ExampleTotals(t *testing.T) {
	b := Synthesize(sampleRequest(), pricing.NewService(pricing.DefaultRateCard()))

	assert.Equal(t, SourceSimulated, b.Source)
	assert.Equal(t, 3, b.Hotel.Nights)
	assert.Equal(t, b.Hotel.PricePerNight*3, b.Totals.Hotel)
	assert.Equal(t, int64((5200+5100)*2), b.Totals.Flights)
	assert.Equal(t, int64(800), b.Totals.Transport)
	assert.Equal(t, int64(0), b.Totals.Activities)
	assert.Equal(t, b.Totals.Flights+b.Totals.Hotel+b.Totals.Transport+b.Totals.Activities, b.Totals.GrandTotal)
	assert.Equal(t, b.Totals.GrandTotal, b.Order.Amount)
	assert.Equal(t, order.StatusConfirmed, b.Order.Status)
	assert.Equal(t, "3-Star City Hotel", b.Hotel.Name)
	require.Len(t, b.Flights, 2)
	assert.Equal(t, "GOI", b.Flights[1].From)
	assert.NotEmpty(t, b.BookingID)
}

func TestSynthesize_Defaults(t *testing.T) {
	b := Synthesize(Request{}, pricing.NewService(pricing.DefaultRateCard()))

	assert.Equal(t, "BLR", b.Flights[0].From)
	assert.Equal(t, "GOI", b.Flights[0].To)
	assert.Equal(t, "Economy", b.Flights[0].Class)
	assert.Equal(t, 1, b.Hotel.Nights)
	assert.Equal(t, int64(5200+5100+2800+800), b.Totals.GrandTotal)
	assert.NotNil(t, b.Items)
}

func TestSynthesize_DeterministicTotals(t *testing.T) {
	rates := pricing.NewService(pricing.DefaultRateCard())
	a := Synthesize(sampleRequest(), rates)
	b := Synthesize(sampleRequest(), rates)

	assert.Equal(t, a.Totals, b.Totals)
	assert.Equal(t, a.Flights, b.Flights)
	assert.Equal(t, a.Hotel, b.Hotel)
	assert.NotEqual(t, a.BookingID, b.BookingID)
}

func TestAssemble_GrandTotalIsSum(t *testing.T) {
	parts := Parts{
		BookingID: "BK-1",
		Flights:   []Flight{{Price: 7000}, {Price: 6500}},
		Hotel:     Hotel{Price: 9000},
		Transport: []Transport{{Price: 800}, {Price: 450}},

		ActivitiesTotal: 1200,
	}

	b := Assemble(SourceLive, "INR", parts, order.Order{OrderID: "o1", Status: order.StatusPending}, sampleRequest())

	assert.Equal(t, Totals{Flights: 13500, Hotel: 9000, Transport: 1250, Activities: 1200, GrandTotal: 24950}, b.Totals)
	assert.Equal(t, int64(24950), b.Order.Amount)
	assert.Equal(t, "INR", b.Order.Currency)
}

func TestNights(t *testing.T) {
	assert.Equal(t, 3, Nights("2025-12-01", "2025-12-04"))
	assert.Equal(t, 1, Nights("2025-12-01", "2025-12-01"))
	assert.Equal(t, 1, Nights("2025-12-05", "2025-12-01"))
	assert.Equal(t, 1, Nights("soon", "2025-12-01"))
	assert.Equal(t, 3652058, Nights("0001-01-01", "9999-12-31"))
}

func TestSynthesize_HugeInputsStayBounded(t *testing.T) {
	req := sampleRequest()
	req.Details.Travelers = 1e18
	req.Details.StartDate = "0001-01-01"
	req.Details.EndDate = "9999-12-31"

	b := Synthesize(req, pricing.NewService(pricing.DefaultRateCard()))

	assert.Equal(t, int64(5200*pricing.MaxTravelers), b.Flights[0].Price)
	assert.Equal(t, int64(5100*pricing.MaxTravelers), b.Flights[1].Price)
	assert.Equal(t, pricing.MaxNights, b.Hotel.Nights)
	assert.Equal(t, int64(2800*pricing.MaxNights), b.Totals.Hotel)
	assert.Equal(t, b.Totals.Flights+b.Totals.Hotel+b.Totals.Transport, b.Totals.GrandTotal)
	assert.Positive(t, b.Totals.GrandTotal)
}

func TestEMTClient_QuoteAndConfirm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/quote":
			var req Request
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "GOI", req.Details.Destination)
			_, _ = w.Write([]byte(`{"quoteId":"q-1","currency":"INR","flights":[{"vendor":"Vistara","price":12000}],"hotel":{"name":"Taj","pricePerNight":5000,"nights":3},"transport":[],"activitiesTotal":1500}`))
		case "/confirm":
			_, _ = w.Write([]byte(`{"bookingId":"EMT-99","status":"CONFIRMED"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()
	c := NewEMTClient(srv.URL, "secret", time.Second)

	q, err := c.Quote(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, "q-1", q.QuoteID)
	assert.Equal(t, int64(15000), q.Hotel.Price)

	conf, err := c.Confirm(context.Background(), q.QuoteID, "u1")
	require.NoError(t, err)
	assert.Equal(t, "EMT-99", conf.BookingID)
}

func TestEMTClient_Failures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/quote":
			w.WriteHeader(http.StatusBadGateway)
		case "/confirm":
			_, _ = w.Write([]byte(`{"status":"CONFIRMED"}`))
		}
	}))
	defer srv.Close()
	c := NewEMTClient(srv.URL, "", time.Second)

	_, err := c.Quote(context.Background(), sampleRequest())
	assert.ErrorIs(t, err, types.ErrUpstreamUnavailable)

	_, err = c.Confirm(context.Background(), "q-1", "u1")
	assert.ErrorIs(t, err, types.ErrParseFailure)
}
