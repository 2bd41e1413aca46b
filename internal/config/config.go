package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration for the widget API service.
type Config struct {
	Port          string
	Env           string
	PublicBaseURL string
	LogLevel      string

	CORSAllowedOrigins []string

	// Widget tenant credentials. A single embed key per deployment; the
	// signing secret backs both request signatures and session JWTs.
	WidgetAPIKey        string
	WidgetSigningSecret string
	TokenTTL            time.Duration
	SignatureMaxSkew    time.Duration

	// Session token store. When RedisAddr is empty the service falls back
	// to the in-process store.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Scheduling window for generated time slots.
	OpenHour     int
	CloseHour    int
	SlotInterval time.Duration

	// Simulated booking submission.
	SubmitLatency time.Duration
	SubmitTimeout time.Duration
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),

		CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),

		WidgetAPIKey:        getEnv("WIDGET_API_KEY", ""),
		WidgetSigningSecret: getEnv("WIDGET_SIGNING_SECRET", ""),
		TokenTTL:            getEnvAsDuration("WIDGET_TOKEN_TTL", 15*time.Minute),
		SignatureMaxSkew:    getEnvAsDuration("WIDGET_SIGNATURE_MAX_SKEW", 5*time.Minute),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		OpenHour:     getEnvAsInt("SCHEDULE_OPEN_HOUR", 9),
		CloseHour:    getEnvAsInt("SCHEDULE_CLOSE_HOUR", 17),
		SlotInterval: getEnvAsDuration("SCHEDULE_SLOT_INTERVAL", 30*time.Minute),

		SubmitLatency: getEnvAsDuration("BOOKING_SUBMIT_LATENCY", 1500*time.Millisecond),
		SubmitTimeout: getEnvAsDuration("BOOKING_SUBMIT_TIMEOUT", 10*time.Second),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
