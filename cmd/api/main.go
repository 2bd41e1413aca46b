package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/pawdesk/booking-widget/internal/api/router"
	"github.com/pawdesk/booking-widget/internal/booking"
	"github.com/pawdesk/booking-widget/internal/catalog"
	appconfig "github.com/pawdesk/booking-widget/internal/config"
	"github.com/pawdesk/booking-widget/internal/http/handlers"
	"github.com/pawdesk/booking-widget/internal/observability/metrics"
	"github.com/pawdesk/booking-widget/internal/render"
	"github.com/pawdesk/booking-widget/internal/schedule"
	"github.com/pawdesk/booking-widget/internal/session"
	"github.com/pawdesk/booking-widget/internal/wizard"
	"github.com/pawdesk/booking-widget/pkg/logging"
)

func main() {
	// Load .env if present; real deployments configure the environment directly.
	_ = godotenv.Load()

	// Load configuration
	cfg := appconfig.Load()

	// Initialize logger
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting booking widget API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	if cfg.WidgetAPIKey == "" || cfg.WidgetSigningSecret == "" {
		logger.Error("WIDGET_API_KEY and WIDGET_SIGNING_SECRET must be set")
		os.Exit(1)
	}

	// Session token issuing and tracking
	issuer := session.NewIssuer(cfg.WidgetSigningSecret, cfg.TokenTTL)
	var store session.Store
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			logger.Error("failed to connect to redis", "error", err, "addr", cfg.RedisAddr)
			os.Exit(1)
		}
		store = session.NewRedisStore(client)
		logger.Info("session store backed by redis", "addr", cfg.RedisAddr)
	} else {
		store = session.NewMemoryStore()
		logger.Warn("REDIS_ADDR not set, using in-process session store")
	}

	// Domain services
	catalogRepo := catalog.NewInMemoryRepository(nil)
	services, err := catalogRepo.List(context.Background())
	if err != nil {
		logger.Error("failed to load service catalog", "error", err)
		os.Exit(1)
	}
	availability := schedule.NewDemoProvider(cfg.OpenHour, cfg.CloseHour, cfg.SlotInterval)
	submitter := booking.NewSimulatedSubmitter(cfg.SubmitLatency)
	manager := wizard.NewManager(wizard.ManagerDeps{
		Services:      services,
		Availability:  availability,
		Submitter:     submitter,
		SubmitTimeout: cfg.SubmitTimeout,
		Logger:        logger,
	})
	renderer, err := render.New()
	if err != nil {
		logger.Error("failed to parse widget templates", "error", err)
		os.Exit(1)
	}

	widgetMetrics := metrics.NewWidgetMetrics(nil)

	// Setup router
	routerCfg := &router.Config{
		Logger:             logger,
		TokenHandler:       handlers.NewWidgetTokenHandler(cfg.WidgetAPIKey, cfg.WidgetSigningSecret, cfg.SignatureMaxSkew, issuer, store, widgetMetrics, logger),
		ServicesHandler:    handlers.NewWidgetServicesHandler(catalogRepo, widgetMetrics, logger),
		SessionsHandler:    handlers.NewWidgetSessionsHandler(manager, services, availability, renderer, widgetMetrics, logger),
		WidgetJSHandler:    handlers.NewWidgetJSHandler(),
		SessionIssuer:      issuer,
		SessionStore:       store,
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		TokenRateLimit:     2,
		TokenRateBurst:     10,
	}
	r := router.New(routerCfg)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}
