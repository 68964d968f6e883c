package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"tripplanner/internal/types"
)

// Backend is the real travel-inventory service behind the live booking path.
type Backend interface {
	Quote(ctx context.Context, req Request) (*Quote, error)
	Confirm(ctx context.Context, quoteID, userID string) (*Confirmation, error)
}

// Quote is the backend's priced offer for a request.
type Quote struct {
	QuoteID         string      `json:"quoteId"`
	Currency        string      `json:"currency"`
	Flights         []Flight    `json:"flights"`
	Hotel           Hotel       `json:"hotel"`
	Transport       []Transport `json:"transport"`
	ActivitiesTotal int64       `json:"activitiesTotal"`
}

type Confirmation struct {
	BookingID string `json:"bookingId"`
	Status    string `json:"status"`
}

// EMTClient talks JSON over HTTPS to the booking backend at baseURL.
type EMTClient struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

func NewEMTClient(baseURL, apiKey string, timeout time.Duration) *EMTClient {
	return &EMTClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: timeout},
	}
}

func (c *EMTClient) Quote(ctx context.Context, req Request) (*Quote, error) {
	var q Quote
	if err := c.post(ctx, "/quote", req, &q); err != nil {
		return nil, errors.Wrap(err, "emt quote")
	}
	if q.QuoteID == "" {
		return nil, errors.Wrap(types.ErrParseFailure, "emt quote: missing quoteId")
	}
	if q.Hotel.Price == 0 {
		q.Hotel.Price = q.Hotel.PricePerNight * int64(q.Hotel.Nights)
	}
	return &q, nil
}

func (c *EMTClient) Confirm(ctx context.Context, quoteID, userID string) (*Confirmation, error) {
	body := map[string]string{"quoteId": quoteID, "userId": userID}
	var conf Confirmation
	if err := c.post(ctx, "/confirm", body, &conf); err != nil {
		return nil, errors.Wrap(err, "emt confirm")
	}
	if conf.BookingID == "" {
		return nil, errors.Wrap(types.ErrParseFailure, "emt confirm: missing bookingId")
	}
	return &conf, nil
}

func (c *EMTClient) post(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return errors.Wrap(err, "marshal request")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return errors.Wrapf(types.ErrUpstreamUnavailable, "do request: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return errors.Wrapf(types.ErrUpstreamUnavailable, "read response: %v", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Wrap(types.ErrUpstreamUnavailable, fmt.Sprintf("status %d: %s", resp.StatusCode, bytes.TrimSpace(raw)))
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(types.ErrParseFailure, "decode response: %v", err)
	}
	return nil
}
