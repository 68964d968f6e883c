package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tripplanner/internal/infra"
	"tripplanner/internal/modules/itinerary"
	"tripplanner/internal/weather"
)

type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type stubForecaster struct {
	days []weather.ForecastDay
}

func (s stubForecaster) Forecast(context.Context, string) []weather.ForecastDay {
	return s.days
}

// blockingGenerator waits for its context to end, simulating a stalled model.
type blockingGenerator struct{}

func (blockingGenerator) Generate(ctx context.Context, _ string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func goaRequest() itinerary.TripRequest {
	return itinerary.TripRequest{
		Destination: "Goa",
		StartDate:   "2025-12-01",
		EndDate:     "2025-12-03",
		Budget:      25000,
		Theme:       "Adventure",
	}
}

const modelJSON = `{"days":[
	{"day":1,"activities":["Fort Aguada","Candolim beach"],"hospital":"Goa Medical College","pharmacy":"Apollo Pharmacy Panaji","tip":"Rent a scooter"},
	{"day":2,"activities":["Spice plantation"],"hospital":"Manipal Hospital","pharmacy":"Wellness Forever","tip":"Carry cash"}
]}`

func newPlanner(gen *mockGenerator, forecast []weather.ForecastDay, metrics *infra.Metrics) *TripPlanner {
	return NewTripPlanner(TripPlannerDeps{
		Forecaster:        stubForecaster{days: forecast},
		Generator:         gen,
		Currency:          "INR",
		GenerationTimeout: time.Second,
		Logger:            zap.NewNop(),
		Metrics:           metrics,
	})
}

func TestPlan_LivePath(t *testing.T) {
	gen := &mockGenerator{}
	gen.On("Generate", mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.HasPrefix(p, "Create a travel itinerary for Goa. Dates: 2025-12-01 to 2025-12-03.")
	})).Return("```json\n"+modelJSON+"\n```", nil).Once()
	forecast := []weather.ForecastDay{{Date: "2025-12-01 12:00:00", Description: "clear sky", Temperature: "31°C"}}

	it := newPlanner(gen, forecast, nil).Plan(context.Background(), goaRequest())

	gen.AssertExpectations(t)
	assert.False(t, it.Degraded)
	require.Len(t, it.Days, 2)
	assert.Equal(t, "clear sky, 31°C", it.Days[0].Weather)
	assert.Equal(t, itinerary.WeatherUnavailable, it.Days[1].Weather)
	assert.Equal(t, "Goa Medical College", it.Days[0].Hospital)
	assert.Equal(t, "Goa", it.Meta.Destination)
}

func TestPlan_GoaExampleWithEverythingDown(t *testing.T) {
	gen := &mockGenerator{}
	gen.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("vertex: 503")).Once()

	it := newPlanner(gen, nil, nil).Plan(context.Background(), goaRequest())

	assert.True(t, it.Degraded)
	require.Len(t, it.Days, 3)
	for _, d := range it.Days {
		assert.Equal(t, itinerary.WeatherUnavailable, d.Weather)
	}
	assert.Equal(t, "Goa", it.Meta.Destination)
	assert.Equal(t, 25000.0, it.Meta.Budget)
}

func TestPlan_ParseFailureServesTemplate(t *testing.T) {
	for name, out := range map[string]string{
		"prose":   "I'm sorry, I can't plan that trip.",
		"no days": `{"plan":"go to the beach"}`,
		"broken":  `{"days":[{"day":1,"activities":["a"]`,
	} {
		t.Run(name, func(t *testing.T) {
			gen := &mockGenerator{}
			gen.On("Generate", mock.Anything, mock.Anything).Return(out, nil)
			forecast := []weather.ForecastDay{{Description: "rain", Temperature: "24°C"}}

			got := newPlanner(gen, forecast, nil).Plan(context.Background(), goaRequest())

			want, err := json.Marshal(itinerary.Fallback(goaRequest()))
			require.NoError(t, err)
			raw, err := json.Marshal(got)
			require.NoError(t, err)
			assert.JSONEq(t, string(want), string(raw))
		})
	}
}

func TestPlan_GenerationTimeoutFallsBack(t *testing.T) {
	p := NewTripPlanner(TripPlannerDeps{
		Forecaster:        stubForecaster{},
		Generator:         blockingGenerator{},
		GenerationTimeout: 20 * time.Millisecond,
	})

	started := time.Now()
	it := p.Plan(context.Background(), goaRequest())

	assert.True(t, it.Degraded)
	assert.Less(t, time.Since(started), 2*time.Second)
}

func TestPlan_ValidationGapSkipsGeneration(t *testing.T) {
	gen := &mockGenerator{}

	it := newPlanner(gen, nil, nil).Plan(context.Background(), itinerary.TripRequest{Theme: "Food"})

	gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	assert.True(t, it.Degraded)
	assert.Len(t, it.Days, 3)
	assert.Equal(t, "", it.Meta.Destination)
	assert.Equal(t, "Food", it.Meta.Theme)
}

func TestPlan_NoGeneratorConfigured(t *testing.T) {
	it := NewTripPlanner(TripPlannerDeps{}).Plan(context.Background(), goaRequest())

	assert.True(t, it.Degraded)
	assert.Len(t, it.Days, 3)
}

func TestPlan_ForcedFailureIsDeterministic(t *testing.T) {
	gen := &mockGenerator{}
	gen.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("down"))
	p := newPlanner(gen, nil, nil)

	first, err := json.Marshal(p.Plan(context.Background(), goaRequest()))
	require.NoError(t, err)
	second, err := json.Marshal(p.Plan(context.Background(), goaRequest()))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestPlan_RecordsOutcomes(t *testing.T) {
	metrics := infra.NewMetrics()
	gen := &mockGenerator{}
	gen.On("Generate", mock.Anything, mock.Anything).Return(modelJSON, nil).Once()
	gen.On("Generate", mock.Anything, mock.Anything).Return("nope", nil).Once()
	p := newPlanner(gen, nil, metrics)

	p.Plan(context.Background(), goaRequest())
	p.Plan(context.Background(), goaRequest())

	families, err := metrics.Gatherer().Gather()
	require.NoError(t, err)
	got := map[string]float64{}
	for _, mf := range families {
		if mf.GetName() != "tripplanner_pipeline_outcomes_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, l := range m.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			got[labels["path"]+"/"+labels["reason"]] = m.GetCounter().GetValue()
		}
	}
	assert.Equal(t, map[string]float64{"primary/": 1, "fallback/parse_failure": 1}, got)
}
