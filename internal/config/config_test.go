package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 9, cfg.OpenHour)
	assert.Equal(t, 17, cfg.CloseHour)
	assert.Equal(t, 30*time.Minute, cfg.SlotInterval)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("WIDGET_API_KEY", "pk_demo_123")
	t.Setenv("WIDGET_TOKEN_TTL", "1h")
	t.Setenv("SCHEDULE_OPEN_HOUR", "8")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg := Load()

	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "pk_demo_123", cfg.WidgetAPIKey)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, 8, cfg.OpenHour)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SCHEDULE_OPEN_HOUR", "not-a-number")
	t.Setenv("WIDGET_TOKEN_TTL", "not-a-duration")

	cfg := Load()

	assert.Equal(t, 9, cfg.OpenHour)
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL)
}
