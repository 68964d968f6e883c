// README: OpenWeather geocode + forecast client; any failure yields an empty forecast.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"tripplanner/internal/infra"
	"tripplanner/internal/types"
)

const (
	defaultGeoURL      = "http://api.openweathermap.org/geo/1.0/direct"
	defaultForecastURL = "https://api.openweathermap.org/data/2.5/forecast"
)

// ForecastDay is one forecast time slot.
type ForecastDay struct {
	Date        string `json:"date"`
	Description string `json:"desc"`
	Temperature string `json:"temp"`
}

// Summary renders the slot the way itinerary days display it, e.g. "light rain, 27.4°C".
func (f ForecastDay) Summary() string {
	return f.Description + ", " + f.Temperature
}

// Forecaster is the contract the itinerary pipeline depends on.
type Forecaster interface {
	Forecast(ctx context.Context, destination string) []ForecastDay
}

type Options struct {
	APIKey  string
	Slots   int
	Timeout time.Duration
	// GeoURL and ForecastURL override the OpenWeather endpoints.
	GeoURL      string
	ForecastURL string
}

type Client struct {
	opts    Options
	httpc   *http.Client
	log     *zap.Logger
	metrics *infra.Metrics
}

func NewClient(opts Options, log *zap.Logger, metrics *infra.Metrics) *Client {
	if opts.Slots <= 0 {
		opts.Slots = 3
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}
	if opts.GeoURL == "" {
		opts.GeoURL = defaultGeoURL
	}
	if opts.ForecastURL == "" {
		opts.ForecastURL = defaultForecastURL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		opts:    opts,
		httpc:   &http.Client{Timeout: opts.Timeout},
		log:     log,
		metrics: metrics,
	}
}

// Forecast never fails: errors are logged and reported as an empty forecast.
func (c *Client) Forecast(ctx context.Context, destination string) []ForecastDay {
	if c.opts.APIKey == "" || destination == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	started := time.Now()
	days, err := c.fetch(ctx, destination)
	c.metrics.ObserveUpstream("weather", started, err)
	if err != nil {
		c.log.Warn("weather lookup failed",
			zap.String("destination", destination),
			zap.Error(err),
		)
		return nil
	}
	return days
}

type geoResult struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

type forecastResponse struct {
	List []struct {
		DtTxt string `json:"dt_txt"`
		Main  struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
	} `json:"list"`
}

func (c *Client) fetch(ctx context.Context, destination string) ([]ForecastDay, error) {
	var places []geoResult
	geoQuery := url.Values{
		"q":     {destination},
		"limit": {"1"},
		"appid": {c.opts.APIKey},
	}
	if err := c.getJSON(ctx, c.opts.GeoURL, geoQuery, &places); err != nil {
		return nil, errors.Wrap(err, "geocode")
	}
	if len(places) == 0 {
		return nil, nil
	}

	var fr forecastResponse
	forecastQuery := url.Values{
		"lat":   {strconv.FormatFloat(places[0].Lat, 'f', -1, 64)},
		"lon":   {strconv.FormatFloat(places[0].Lon, 'f', -1, 64)},
		"appid": {c.opts.APIKey},
		"units": {"metric"},
	}
	if err := c.getJSON(ctx, c.opts.ForecastURL, forecastQuery, &fr); err != nil {
		return nil, errors.Wrap(err, "forecast")
	}

	n := min(len(fr.List), c.opts.Slots)
	days := make([]ForecastDay, 0, n)
	for _, slot := range fr.List[:n] {
		desc := "unknown"
		if len(slot.Weather) > 0 && slot.Weather[0].Description != "" {
			desc = slot.Weather[0].Description
		}
		days = append(days, ForecastDay{
			Date:        slot.DtTxt,
			Description: desc,
			Temperature: strconv.FormatFloat(slot.Main.Temp, 'f', -1, 64) + "°C",
		})
	}
	return days, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, query url.Values, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return errors.Wrap(types.ErrUpstreamUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Wrap(types.ErrUpstreamUnavailable, fmt.Sprintf("status %d", resp.StatusCode))
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return errors.Wrap(err, "decode response")
	}
	return nil
}
