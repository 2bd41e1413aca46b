// Package handlers contains the HTTP handlers of the widget API: the token
// exchange, the service catalog and the server-driven wizard sessions.
package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/pawdesk/booking-widget/internal/apiclient"
	"github.com/pawdesk/booking-widget/internal/observability/metrics"
	"github.com/pawdesk/booking-widget/internal/session"
	"github.com/pawdesk/booking-widget/pkg/logging"
)

// WidgetTokenHandler exchanges a signed embed payload for a session token.
type WidgetTokenHandler struct {
	apiKey        string
	signingSecret string
	maxSkew       time.Duration
	issuer        *session.Issuer
	store         session.Store
	metrics       *metrics.WidgetMetrics
	logger        *logging.Logger
	now           func() time.Time
}

// NewWidgetTokenHandler creates the token exchange handler.
func NewWidgetTokenHandler(apiKey, signingSecret string, maxSkew time.Duration, issuer *session.Issuer, store session.Store, m *metrics.WidgetMetrics, logger *logging.Logger) *WidgetTokenHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &WidgetTokenHandler{
		apiKey:        apiKey,
		signingSecret: signingSecret,
		maxSkew:       maxSkew,
		issuer:        issuer,
		store:         store,
		metrics:       m,
		logger:        logger,
		now:           time.Now,
	}
}

// HandleToken handles POST /api/widget/token requests.
func (h *WidgetTokenHandler) HandleToken(w http.ResponseWriter, r *http.Request) {
	var req apiclient.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.metrics.ObserveToken("bad_request")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.APIKey), []byte(h.apiKey)) != 1 {
		h.metrics.ObserveToken("unauthorized")
		h.logger.Warn("token request with unknown api key", "origin", req.Payload.Origin)
		http.Error(w, "invalid api key", http.StatusUnauthorized)
		return
	}

	if err := session.VerifySignature(h.signingSecret, req.Signature, req.Payload, h.now(), h.maxSkew); err != nil {
		h.metrics.ObserveToken("unauthorized")
		h.logger.Warn("token request signature rejected",
			"error", err,
			"origin", req.Payload.Origin,
		)
		if errors.Is(err, session.ErrStaleTimestamp) {
			http.Error(w, "stale timestamp", http.StatusUnauthorized)
			return
		}
		http.Error(w, "invalid signature", http.StatusUnauthorized)
		return
	}

	token, id, err := h.issuer.Issue(req.Payload.Origin)
	if err != nil {
		h.metrics.ObserveToken("error")
		h.logger.Error("failed to issue session token", "error", err)
		http.Error(w, "failed to issue token", http.StatusInternalServerError)
		return
	}
	if err := h.store.Save(r.Context(), id, h.issuer.TTL()); err != nil {
		h.metrics.ObserveToken("error")
		h.logger.Error("failed to save session", "error", err, "session_id", id)
		http.Error(w, "failed to save session", http.StatusInternalServerError)
		return
	}

	h.metrics.ObserveToken("ok")
	h.logger.Info("widget session issued", "session_id", id, "origin", req.Payload.Origin)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(apiclient.TokenResponse{Token: token})
}
