// README: Entry point; loads config, wires services, starts the HTTP server and shuts it down on signal.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	googlemaps "googlemaps.github.io/maps"

	"tripplanner/internal/ai"
	"tripplanner/internal/config"
	httptransport "tripplanner/internal/http"
	"tripplanner/internal/http/handlers"
	"tripplanner/internal/infra"
	"tripplanner/internal/maps"
	"tripplanner/internal/modules/booking"
	"tripplanner/internal/modules/payment"
	"tripplanner/internal/modules/pricing"
	"tripplanner/internal/modules/trips"
	"tripplanner/internal/service"
	"tripplanner/internal/weather"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := infra.NewLogger(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	metrics := infra.NewMetrics()

	generator, closeGenerator := buildGenerator(ctx, cfg, logger)
	defer closeGenerator()

	forecaster := weather.NewClient(weather.Options{
		APIKey:  cfg.Weather.APIKey,
		Slots:   cfg.Weather.Slots,
		Timeout: cfg.Weather.Timeout,
	}, logger.Named("weather"), metrics)

	planner := service.NewTripPlanner(service.TripPlannerDeps{
		Forecaster:        forecaster,
		Generator:         generator,
		Currency:          cfg.Booking.Currency,
		GenerationTimeout: cfg.AI.Timeout,
		Logger:            logger.Named("planner"),
		Metrics:           metrics,
	})

	card := pricing.DefaultRateCard()
	card.Currency = cfg.Booking.Currency
	rates := pricing.NewService(card)

	var provider payment.Provider = payment.NewSimulatedProvider()
	if cfg.Payment.StripeKey != "" {
		provider = payment.NewStripeProvider(cfg.Payment.StripeKey)
	}
	payments := payment.NewService(provider, cfg.Booking.Currency, logger.Named("payment"), metrics)

	var backend booking.Backend
	if cfg.Booking.BaseURL != "" {
		backend = booking.NewEMTClient(cfg.Booking.BaseURL, cfg.Booking.APIKey, cfg.Booking.Timeout)
	}
	booker := service.NewBookingPlanner(service.BookingPlannerDeps{
		Backend:  backend,
		Payments: payments,
		Rates:    rates,
		Simulate: cfg.Booking.Simulate,
		Timeout:  cfg.Booking.Timeout,
		Logger:   logger.Named("booking"),
		Metrics:  metrics,
	})

	var places handlers.POISearcher
	if cfg.Maps.APIKey != "" {
		svc, err := maps.NewPlacesService(cfg.Maps.APIKey, googlemaps.WithHTTPClient(&http.Client{Timeout: cfg.Maps.Timeout}))
		if err != nil {
			logger.Fatal("places init", zap.Error(err))
		}
		places = svc
	}

	store, closeStore := buildTripStore(ctx, cfg, logger)
	defer closeStore()

	var verifier infra.TokenVerifier
	if cfg.Firebase.ProjectID != "" {
		verifier, err = infra.NewFirebaseVerifier(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
		if err != nil {
			logger.Fatal("firebase init", zap.Error(err))
		}
	}

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Planner:     planner,
		Booker:      booker,
		Payments:    payments,
		Places:      places,
		Trips:       trips.NewService(store),
		Verifier:    verifier,
		Logger:      logger.Named("http"),
		Metrics:     metrics,
		CORSOrigins: cfg.HTTP.CORSOrigins,
	})

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", zap.Error(err))
		}
	}()

	logger.Info("listening",
		zap.String("addr", cfg.HTTP.Addr),
		zap.String("ai_provider", cfg.AI.Provider),
		zap.String("store", cfg.Store.Backend),
		zap.Bool("booking_simulated", backend == nil || cfg.Booking.Simulate),
	)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("listen", zap.Error(err))
	}
}

// buildGenerator picks the model backend. A provider that fails to start leaves planning on
// the fallback template rather than stopping the server.
func buildGenerator(ctx context.Context, cfg config.Config, logger *zap.Logger) (ai.Generator, func()) {
	opts := ai.ProviderOptions{
		Model:       cfg.AI.Model,
		Temperature: float32(cfg.AI.Temperature),
		GeminiKey:   cfg.AI.GeminiKey,
		ProjectID:   cfg.AI.ProjectID,
		Location:    cfg.AI.Location,
	}
	switch cfg.AI.Provider {
	case config.ProviderVertex:
		p, err := ai.NewVertexProvider(ctx, opts)
		if err != nil {
			logger.Error("vertex init; itineraries will use the fallback", zap.Error(err))
			return ai.Disabled(), func() {}
		}
		return p, func() {}
	case config.ProviderGemini:
		p, err := ai.NewGeminiProvider(ctx, opts)
		if err != nil {
			logger.Error("gemini init; itineraries will use the fallback", zap.Error(err))
			return ai.Disabled(), func() {}
		}
		return p, func() { _ = p.Close() }
	default:
		logger.Warn("no generative provider configured; itineraries will use the fallback")
		return ai.Disabled(), func() {}
	}
}

func buildTripStore(ctx context.Context, cfg config.Config, logger *zap.Logger) (trips.Store, func()) {
	switch cfg.Store.Backend {
	case config.StorePostgres:
		pool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			logger.Fatal("postgres init", zap.Error(err))
		}
		store := trips.NewPGStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			logger.Fatal("trips schema", zap.Error(err))
		}
		return store, pool.Close
	case config.StoreRedis:
		client, err := infra.NewRedis(ctx, cfg.Redis.Addr)
		if err != nil {
			logger.Fatal("redis init", zap.Error(err))
		}
		return trips.NewRedisStore(client), func() { _ = client.Close() }
	default:
		return trips.NewMemoryStore(), func() {}
	}
}
