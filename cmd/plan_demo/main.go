// README: Runs one itinerary through the configured model and prints the result; useful for prompt tuning.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"tripplanner/internal/ai"
	"tripplanner/internal/config"
	"tripplanner/internal/infra"
	"tripplanner/internal/modules/itinerary"
	"tripplanner/internal/service"
	"tripplanner/internal/types"
	"tripplanner/internal/weather"
)

func main() {
	destination := flag.String("destination", "Goa", "trip destination")
	start := flag.String("start", "2025-12-01", "start date (YYYY-MM-DD)")
	end := flag.String("end", "2025-12-03", "end date (YYYY-MM-DD)")
	budget := flag.Float64("budget", 25000, "budget in the configured currency")
	theme := flag.String("theme", "Adventure", "trip theme")
	interests := flag.String("interests", "", "comma-separated interests")
	showPrompt := flag.Bool("prompt", false, "print the prompt before calling the model")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger, err := infra.NewLogger(cfg.LogLevel, "development")
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	opts := ai.ProviderOptions{
		Model:       cfg.AI.Model,
		Temperature: float32(cfg.AI.Temperature),
		GeminiKey:   cfg.AI.GeminiKey,
		ProjectID:   cfg.AI.ProjectID,
		Location:    cfg.AI.Location,
	}

	var generator ai.Generator
	switch cfg.AI.Provider {
	case config.ProviderVertex:
		generator, err = ai.NewVertexProvider(ctx, opts)
	case config.ProviderGemini:
		var p *ai.GeminiProvider
		p, err = ai.NewGeminiProvider(ctx, opts)
		if err == nil {
			defer p.Close()
			generator = p
		}
	default:
		log.Fatal("set VERTEX_PROJECT_ID or GEMINI_API_KEY")
	}
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}

	req := itinerary.TripRequest{
		Destination: *destination,
		StartDate:   *start,
		EndDate:     *end,
		Budget:      types.Number(*budget),
		Theme:       *theme,
	}
	if *interests != "" {
		req.Interests = strings.Split(*interests, ",")
	}

	if *showPrompt {
		fmt.Println(ai.BuildPrompt(ai.TripBrief{
			Destination: req.Destination,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			Budget:      float64(req.Budget),
			Currency:    cfg.Booking.Currency,
			Theme:       req.Theme,
			Interests:   req.Interests,
		}))
		fmt.Println()
	}

	planner := service.NewTripPlanner(service.TripPlannerDeps{
		Forecaster: weather.NewClient(weather.Options{
			APIKey:  cfg.Weather.APIKey,
			Slots:   cfg.Weather.Slots,
			Timeout: cfg.Weather.Timeout,
		}, logger, nil),
		Generator:         generator,
		Currency:          cfg.Booking.Currency,
		GenerationTimeout: cfg.AI.Timeout,
		Logger:            logger,
	})

	started := time.Now()
	it := planner.Plan(ctx, req)
	logger.Info("planned", zap.Duration("took", time.Since(started)), zap.Bool("degraded", it.Degraded))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(it); err != nil {
		log.Fatal(err)
	}
}
