package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"tripplanner/internal/ai"
	"tripplanner/internal/infra"
	"tripplanner/internal/modules/itinerary"
	"tripplanner/internal/types"
	"tripplanner/internal/weather"
)

// DefaultGenerationTimeout bounds a single model call when none is configured.
const DefaultGenerationTimeout = 20 * time.Second

type TripPlannerDeps struct {
	Forecaster weather.Forecaster
	Generator  ai.Generator
	Currency   string
	// GenerationTimeout bounds the model call; the forecaster applies its own timeout.
	GenerationTimeout time.Duration
	Logger            *zap.Logger
	Metrics           *infra.Metrics
}

// TripPlanner runs the itinerary pipeline: validate, fetch weather alongside generation,
// extract, merge. Any failed stage yields the fixed fallback itinerary instead.
type TripPlanner struct {
	forecaster weather.Forecaster
	generator  ai.Generator
	currency   string
	timeout    time.Duration
	log        *zap.Logger
	metrics    *infra.Metrics
}

func NewTripPlanner(deps TripPlannerDeps) *TripPlanner {
	p := &TripPlanner{
		forecaster: deps.Forecaster,
		generator:  deps.Generator,
		currency:   deps.Currency,
		timeout:    deps.GenerationTimeout,
		log:        deps.Logger,
		metrics:    deps.Metrics,
	}
	if p.generator == nil {
		p.generator = ai.Disabled()
	}
	if p.timeout <= 0 {
		p.timeout = DefaultGenerationTimeout
	}
	if p.log == nil {
		p.log = zap.NewNop()
	}
	return p
}

// Plan always returns a complete itinerary. Degraded is set when the fallback was used.
func (p *TripPlanner) Plan(ctx context.Context, req itinerary.TripRequest) itinerary.Itinerary {
	validated := types.Attempt(types.StageValidating, func() (itinerary.TripRequest, error) {
		return req, itinerary.Validate(req)
	})
	result := types.Then(validated, func(req itinerary.TripRequest) types.Result[itinerary.Itinerary] {
		return p.generate(ctx, req)
	})

	it, failure := types.OrElse(result, func(*types.Failure) itinerary.Itinerary {
		return itinerary.Fallback(req)
	})
	if failure != nil {
		p.log.Warn("itinerary fallback",
			zap.String("destination", req.Destination),
			zap.String("stage", string(failure.Stage)),
			zap.String("reason", failure.Reason()),
			zap.Error(failure.Err),
		)
		p.metrics.RecordOutcome("itinerary", infra.PathFallback, failure.Reason())
		return it
	}
	p.metrics.RecordOutcome("itinerary", infra.PathPrimary, "")
	return it
}

func (p *TripPlanner) generate(ctx context.Context, req itinerary.TripRequest) types.Result[itinerary.Itinerary] {
	var (
		forecast []weather.ForecastDay
		draft    types.Result[*ai.DraftItinerary]
	)

	// Weather and generation are independent; a failed draft cancels the forecast.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if p.forecaster != nil {
			forecast = p.forecaster.Forecast(gctx, req.Destination)
		}
		return nil
	})
	g.Go(func() error {
		draft = p.draft(gctx, req)
		if f := draft.Failure(); f != nil {
			return f
		}
		return nil
	})
	_ = g.Wait()

	return types.Then(draft, func(d *ai.DraftItinerary) types.Result[itinerary.Itinerary] {
		return types.Attempt(types.StageMerging, func() (itinerary.Itinerary, error) {
			return itinerary.Merge(d, forecast, req)
		})
	})
}

func (p *TripPlanner) draft(ctx context.Context, req itinerary.TripRequest) types.Result[*ai.DraftItinerary] {
	prompt := types.Ok(ai.BuildPrompt(ai.TripBrief{
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      float64(req.Budget),
		Currency:    p.currency,
		Theme:       req.Theme,
		Interests:   req.Interests,
	}))

	raw := types.Then(prompt, func(prompt string) types.Result[string] {
		return types.Attempt(types.StageGenerating, func() (string, error) {
			ctx, cancel := context.WithTimeout(ctx, p.timeout)
			defer cancel()

			started := time.Now()
			text, err := p.generator.Generate(ctx, prompt)
			p.metrics.ObserveUpstream("generative", started, err)
			return text, err
		})
	})

	return types.Then(raw, func(text string) types.Result[*ai.DraftItinerary] {
		return types.Attempt(types.StageExtracting, func() (*ai.DraftItinerary, error) {
			return ai.Extract(ai.Sanitize(text))
		})
	})
}
