package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pawdesk/booking-widget/internal/http/handlers"
	httpmiddleware "github.com/pawdesk/booking-widget/internal/http/middleware"
	"github.com/pawdesk/booking-widget/internal/session"
	"github.com/pawdesk/booking-widget/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	TokenHandler       *handlers.WidgetTokenHandler
	ServicesHandler    *handlers.WidgetServicesHandler
	SessionsHandler    *handlers.WidgetSessionsHandler
	WidgetJSHandler    *handlers.WidgetJSHandler
	SessionIssuer      *session.Issuer
	SessionStore       session.Store
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string

	// Requests/sec and burst for the token endpoint. Zero disables limiting.
	TokenRateLimit float64
	TokenRateBurst int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	// Public endpoints
	r.Group(func(public chi.Router) {
		public.Get("/health", healthCheck)
		if cfg.MetricsHandler != nil {
			public.Handle("/metrics", cfg.MetricsHandler)
		}
		if cfg.WidgetJSHandler != nil {
			public.Get("/widget.js", cfg.WidgetJSHandler.HandleWidgetJS)
		}
		if cfg.TokenHandler != nil {
			token := public.With()
			if cfg.TokenRateLimit > 0 {
				token = public.With(httpmiddleware.RateLimit(cfg.TokenRateLimit, cfg.TokenRateBurst))
			}
			token.Post("/api/widget/token", cfg.TokenHandler.HandleToken)
		}
	})

	// Token-protected widget API
	r.Group(func(widget chi.Router) {
		widget.Use(httpmiddleware.SessionAuth(cfg.SessionIssuer, cfg.SessionStore))

		if cfg.ServicesHandler != nil {
			widget.Get("/api/widget/services", cfg.ServicesHandler.HandleServices)
		}
		if cfg.SessionsHandler != nil {
			widget.Route("/api/widget/sessions", func(r chi.Router) {
				r.Post("/", cfg.SessionsHandler.HandleCreate)
				r.Route("/{sessionID}", func(r chi.Router) {
					r.Get("/view", cfg.SessionsHandler.HandleView)
					r.Post("/actions", cfg.SessionsHandler.HandleAction)
					r.Delete("/", cfg.SessionsHandler.HandleDelete)
				})
			})
		}
	})

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
