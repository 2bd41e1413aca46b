package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pawdesk/booking-widget/internal/catalog"
	"github.com/pawdesk/booking-widget/internal/observability/metrics"
	"github.com/pawdesk/booking-widget/pkg/logging"
)

// WidgetServicesHandler serves the bookable service catalog.
type WidgetServicesHandler struct {
	repo    catalog.Repository
	metrics *metrics.WidgetMetrics
	logger  *logging.Logger
}

// NewWidgetServicesHandler creates the catalog handler.
func NewWidgetServicesHandler(repo catalog.Repository, m *metrics.WidgetMetrics, logger *logging.Logger) *WidgetServicesHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &WidgetServicesHandler{repo: repo, metrics: m, logger: logger}
}

// HandleServices handles GET /api/widget/services requests. The route sits
// behind session auth; by the time this runs the bearer token is verified.
func (h *WidgetServicesHandler) HandleServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.repo.List(r.Context())
	if err != nil {
		h.metrics.ObserveCatalog("error")
		h.logger.Error("failed to list services", "error", err)
		http.Error(w, "failed to list services", http.StatusInternalServerError)
		return
	}

	h.metrics.ObserveCatalog("ok")
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(catalog.ServicesResponse{Services: services})
}
