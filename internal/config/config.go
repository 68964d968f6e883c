// README: Config loader with env defaults for HTTP, AI, weather, maps, booking, payments and storage.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderGemini = "gemini"
	ProviderVertex = "vertex"
	ProviderNone   = "none"

	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

type Config struct {
	Env      string
	LogLevel string
	HTTP     struct {
		Addr        string
		CORSOrigins []string
	}
	Weather struct {
		APIKey  string
		Slots   int
		Timeout time.Duration
	}
	AI struct {
		Provider    string
		GeminiKey   string
		ProjectID   string
		Location    string
		Model       string
		Temperature float64
		Timeout     time.Duration
	}
	Maps struct {
		APIKey  string
		Timeout time.Duration
	}
	Booking struct {
		BaseURL  string
		APIKey   string
		Simulate bool
		Currency string
		Timeout  time.Duration
	}
	Payment struct {
		StripeKey string
	}
	Store struct {
		Backend string
	}
	DB struct {
		DSN string
	}
	Redis struct {
		Addr string
	}
	Firebase struct {
		ProjectID       string
		CredentialsFile string
	}
}

// Load reads a .env file when present and then the process environment. Every key is optional:
// a collaborator without credentials runs on its fallback path.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	cfg.Env = envOrDefault("TRIP_ENV", "development")
	cfg.LogLevel = envOrDefault("TRIP_LOG_LEVEL", "info")

	cfg.HTTP.Addr = envOrDefault("TRIP_HTTP_ADDR", "")
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":" + envOrDefault("PORT", "8080")
	}
	cfg.HTTP.CORSOrigins = envList("TRIP_CORS_ORIGINS", []string{"http://localhost:5173", "https://*.web.app"})

	cfg.Weather.APIKey = os.Getenv("WEATHER_API_KEY")
	cfg.Weather.Slots = envOrDefaultInt("WEATHER_SLOTS", 3)
	cfg.Weather.Timeout = envOrDefaultDuration("TRIP_WEATHER_TIMEOUT", 5*time.Second)

	cfg.AI.GeminiKey = os.Getenv("GEMINI_API_KEY")
	cfg.AI.ProjectID = firstEnv("VERTEX_PROJECT_ID", "GOOGLE_CLOUD_PROJECT", "GCLOUD_PROJECT", "GCP_PROJECT")
	cfg.AI.Location = envOrDefault("VERTEX_LOCATION", "asia-south1")
	cfg.AI.Model = envOrDefault("VERTEX_MODEL", "gemini-1.5-flash")
	cfg.AI.Temperature = envOrDefaultFloat("TRIP_AI_TEMPERATURE", 0.7)
	cfg.AI.Timeout = envOrDefaultDuration("TRIP_AI_TIMEOUT", 20*time.Second)
	cfg.AI.Provider = envOrDefault("TRIP_AI_PROVIDER", defaultProvider(cfg.AI.ProjectID, cfg.AI.GeminiKey))

	cfg.Maps.APIKey = os.Getenv("MAPS_KEY")
	cfg.Maps.Timeout = envOrDefaultDuration("TRIP_MAPS_TIMEOUT", 6*time.Second)

	cfg.Booking.BaseURL = strings.TrimRight(os.Getenv("EMT_API_BASE"), "/")
	cfg.Booking.APIKey = os.Getenv("EMT_KEY")
	cfg.Booking.Simulate = envOrDefaultBool("EMT_SIMULATE", false)
	cfg.Booking.Currency = envOrDefault("TRIP_CURRENCY", "INR")
	cfg.Booking.Timeout = envOrDefaultDuration("TRIP_BOOKING_TIMEOUT", 8*time.Second)

	cfg.Payment.StripeKey = os.Getenv("STRIPE_SECRET_KEY")

	cfg.Store.Backend = envOrDefault("TRIP_STORE", StoreMemory)
	cfg.DB.DSN = os.Getenv("TRIP_DB_DSN")
	cfg.Redis.Addr = os.Getenv("TRIP_REDIS_ADDR")

	cfg.Firebase.ProjectID = os.Getenv("FIREBASE_PROJECT_ID")
	cfg.Firebase.CredentialsFile = os.Getenv("FIREBASE_CREDENTIALS_FILE")

	return cfg, nil
}

func defaultProvider(projectID, geminiKey string) string {
	switch {
	case projectID != "":
		return ProviderVertex
	case geminiKey != "":
		return ProviderGemini
	default:
		return ProviderNone
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

func envList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
