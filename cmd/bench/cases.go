// README: Smoke cases: dependency reachability, every endpoint's contract, and a short load run.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const (
	StatusPass = "PASS"
	StatusFail = "FAIL"
	StatusSkip = "SKIP"
)

type Runner struct {
	cfg   Config
	httpc *http.Client
	db    *pgxpool.Pool
	redis *redis.Client
}

type Result struct {
	Name    string
	Status  string
	Latency time.Duration
	Note    string
}

type TestCase struct {
	Name string
	Run  func(ctx context.Context, r *Runner) Result
}

func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:   cfg,
		httpc: &http.Client{Timeout: 30 * time.Second},
	}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	if r.cfg.DSN != "" {
		if db, err := pgxpool.New(ctx, r.cfg.DSN); err == nil {
			r.db = db
		}
	}
	if r.cfg.RedisAddr != "" {
		r.redis = redis.NewClient(&redis.Options{Addr: r.cfg.RedisAddr})
	}

	tests := r.cases()
	results := make([]Result, 0, len(tests))

	for _, tc := range tests {
		res := tc.Run(ctx, r)
		res.Name = tc.Name
		results = append(results, res)
		fmt.Printf("%-5s %s", res.Status, tc.Name)
		if res.Latency > 0 {
			fmt.Printf(" (%s)", res.Latency.Round(time.Millisecond))
		}
		if res.Note != "" {
			fmt.Printf(" - %s", res.Note)
		}
		fmt.Println()
	}

	if r.db != nil {
		r.db.Close()
	}
	if r.redis != nil {
		_ = r.redis.Close()
	}
	return results
}

var goaPlan = map[string]any{
	"destination": "Goa",
	"startDate":   "2025-12-01",
	"endDate":     "2025-12-03",
	"budget":      25000,
	"theme":       "Adventure",
}

var goaBooking = map[string]any{
	"userId":       "smoke",
	"bookingItems": []map[string]any{{"day": 1, "activities": []string{"Fort Aguada"}}},
	"details": map[string]any{
		"origin":      "BLR",
		"destination": "GOI",
		"startDate":   "2025-12-01",
		"endDate":     "2025-12-03",
		"travelers":   2,
		"flightClass": "Economy",
		"hotelRating": 3,
	},
}

func (r *Runner) cases() []TestCase {
	base := r.cfg.BaseURL
	return []TestCase{
		{
			Name: "Env: Postgres connect",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.db == nil {
					return Result{Status: StatusSkip, Note: "db not configured"}
				}
				ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
				defer cancel()
				if err := r.db.Ping(ctx); err != nil {
					return Result{Status: StatusFail, Note: err.Error()}
				}
				return Result{Status: StatusPass}
			},
		},
		{
			Name: "Env: Redis connect",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.redis == nil {
					return Result{Status: StatusSkip, Note: "redis not configured"}
				}
				ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
				defer cancel()
				if err := r.redis.Ping(ctx).Err(); err != nil {
					return Result{Status: StatusFail, Note: err.Error()}
				}
				return Result{Status: StatusPass}
			},
		},
		httpCase("API: health", http.MethodGet, base+"/health", nil, http.StatusOK, nil),
		httpCase("Plan: valid request", http.MethodPost, base+"/v1/plan", goaPlan, http.StatusOK, checkDays),
		httpCase("Plan: legacy path", http.MethodPost, base+"/plan", goaPlan, http.StatusOK, checkDays),
		httpCase("Plan: empty body still 200", http.MethodPost, base+"/v1/plan", map[string]any{}, http.StatusOK, checkDays),
		httpCase("Book: valid request", http.MethodPost, base+"/v1/book", goaBooking, http.StatusOK, checkTotals),
		httpCase("Pay: valid request", http.MethodPost, base+"/v1/pay", map[string]any{"bookingId": "BK-SMOKE", "amount": 100}, http.StatusOK, nil),
		httpCase("Pay: missing booking -> 400", http.MethodPost, base+"/v1/pay", map[string]any{"amount": 100}, http.StatusBadRequest, nil),
		httpCase("POI: missing city -> 400", http.MethodGet, base+"/v1/pois", nil, http.StatusBadRequest, nil),
		httpCase("Trips: unknown id -> 404", http.MethodGet, base+"/v1/trips/trip_smoke_missing", nil, http.StatusNotFound, nil),
		{
			Name: "Trips: share and fetch",
			Run:  shareAndFetch,
		},
		{
			Name: "Perf: plan throughput",
			Run: func(ctx context.Context, r *Runner) Result {
				return perfLoad(ctx, r, base+"/v1/plan", goaPlan)
			},
		},
	}
}

type checkFunc func(body []byte) error

func httpCase(name, method, url string, body any, want int, check checkFunc) TestCase {
	return TestCase{
		Name: name,
		Run: func(ctx context.Context, r *Runner) Result {
			status, raw, latency, err := r.do(ctx, method, url, body)
			if err != nil {
				return Result{Status: StatusFail, Note: err.Error()}
			}
			if status != want {
				return Result{Status: StatusFail, Latency: latency, Note: fmt.Sprintf("status=%d want=%d", status, want)}
			}
			if check != nil {
				if err := check(raw); err != nil {
					return Result{Status: StatusFail, Latency: latency, Note: err.Error()}
				}
			}
			return Result{Status: StatusPass, Latency: latency, Note: fmt.Sprintf("status=%d", status)}
		},
	}
}

func (r *Runner) do(ctx context.Context, method, url string, body any) (int, []byte, time.Duration, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, 0, err
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	start := time.Now()
	resp, err := r.httpc.Do(req)
	if err != nil {
		return 0, nil, 0, err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	return resp.StatusCode, raw, time.Since(start), err
}

func checkDays(body []byte) error {
	var it struct {
		Days []struct {
			Weather string `json:"weather"`
		} `json:"days"`
		Degraded bool `json:"degraded"`
	}
	if err := json.Unmarshal(body, &it); err != nil {
		return err
	}
	if len(it.Days) == 0 {
		return fmt.Errorf("no days")
	}
	for i, d := range it.Days {
		if d.Weather == "" {
			return fmt.Errorf("day %d has no weather", i+1)
		}
	}
	return nil
}

func checkTotals(body []byte) error {
	var b struct {
		Totals struct {
			Flights    int64 `json:"flights"`
			Hotel      int64 `json:"hotel"`
			Transport  int64 `json:"transport"`
			Activities int64 `json:"activities"`
			GrandTotal int64 `json:"grandTotal"`
		} `json:"totals"`
		Order struct {
			Amount int64 `json:"amount"`
		} `json:"order"`
	}
	if err := json.Unmarshal(body, &b); err != nil {
		return err
	}
	t := b.Totals
	if t.Flights+t.Hotel+t.Transport+t.Activities != t.GrandTotal {
		return fmt.Errorf("grandTotal %d does not add up", t.GrandTotal)
	}
	if b.Order.Amount != t.GrandTotal {
		return fmt.Errorf("order amount %d != grandTotal %d", b.Order.Amount, t.GrandTotal)
	}
	return nil
}

func shareAndFetch(ctx context.Context, r *Runner) Result {
	base := r.cfg.BaseURL
	status, raw, _, err := r.do(ctx, http.MethodPost, base+"/v1/plan", goaPlan)
	if err != nil || status != http.StatusOK {
		return Result{Status: StatusFail, Note: fmt.Sprintf("plan: status=%d err=%v", status, err)}
	}
	var itinerary json.RawMessage = raw

	status, raw, latency, err := r.do(ctx, http.MethodPost, base+"/v1/trips", map[string]any{
		"title":     "Smoke trip",
		"itinerary": itinerary,
	})
	if err != nil || status != http.StatusCreated {
		return Result{Status: StatusFail, Note: fmt.Sprintf("share: status=%d err=%v", status, err)}
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &created); err != nil || created.ID == "" {
		return Result{Status: StatusFail, Note: "share: no id"}
	}

	status, _, _, err = r.do(ctx, http.MethodGet, base+"/v1/trips/"+created.ID+"/pdf", nil)
	if err != nil || status != http.StatusOK {
		return Result{Status: StatusFail, Note: fmt.Sprintf("pdf: status=%d err=%v", status, err)}
	}
	return Result{Status: StatusPass, Latency: latency, Note: created.ID}
}

func perfLoad(ctx context.Context, r *Runner, url string, payload any) Result {
	end := time.Now().Add(r.cfg.Duration)
	var (
		mu       sync.Mutex
		count    int
		errCount int
		wg       sync.WaitGroup
	)

	for i := 0; i < r.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(end) && ctx.Err() == nil {
				status, _, _, err := r.do(ctx, http.MethodPost, url, payload)
				mu.Lock()
				if err != nil || status != http.StatusOK {
					errCount++
				} else {
					count++
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	rps := float64(count) / r.cfg.Duration.Seconds()
	note := fmt.Sprintf("ok=%d err=%d rps=%.1f", count, errCount, rps)
	if errCount > 0 {
		return Result{Status: StatusFail, Note: note}
	}
	return Result{Status: StatusPass, Note: note}
}
