package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pawdesk/booking-widget/internal/catalog"
	"github.com/pawdesk/booking-widget/internal/observability/metrics"
	"github.com/pawdesk/booking-widget/internal/pets"
	"github.com/pawdesk/booking-widget/internal/render"
	"github.com/pawdesk/booking-widget/internal/schedule"
	"github.com/pawdesk/booking-widget/internal/wizard"
	"github.com/pawdesk/booking-widget/pkg/logging"
)

// WidgetSessionsHandler drives server-side wizard sessions. Each session is
// created behind the bearer token, advanced by posted actions and rendered
// back as the widget's HTML.
type WidgetSessionsHandler struct {
	manager      *wizard.Manager
	services     []catalog.Service
	availability schedule.AvailabilityProvider
	renderer     *render.Renderer
	theme        render.Theme
	metrics      *metrics.WidgetMetrics
	logger       *logging.Logger
	now          func() time.Time
}

// NewWidgetSessionsHandler creates the sessions handler.
func NewWidgetSessionsHandler(manager *wizard.Manager, services []catalog.Service, availability schedule.AvailabilityProvider, renderer *render.Renderer, m *metrics.WidgetMetrics, logger *logging.Logger) *WidgetSessionsHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &WidgetSessionsHandler{
		manager:      manager,
		services:     services,
		availability: availability,
		renderer:     renderer,
		theme:        render.DefaultTheme(),
		metrics:      m,
		logger:       logger,
		now:          time.Now,
	}
}

// CreateSessionResponse is the body of a successful session create.
type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
}

// ActionRequest is the body of a posted wizard action. Fields beyond Action
// are read per action type.
type ActionRequest struct {
	Action    string              `json:"action"`
	ServiceID string              `json:"service_id,omitempty"`
	Date      string              `json:"date,omitempty"` // "2006-01-02"
	Time      string              `json:"time,omitempty"` // "15:04"
	PetID     string              `json:"pet_id,omitempty"`
	Step      string              `json:"step,omitempty"`
	Pet       *pets.AddPetRequest `json:"pet,omitempty"`
	Customer  *wizard.Customer    `json:"customer,omitempty"`
}

// HandleCreate handles POST /api/widget/sessions requests.
func (h *WidgetSessionsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	s := h.manager.Create(r.Context())
	h.metrics.SetActiveSessions(h.manager.Len())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(CreateSessionResponse{SessionID: s.ID})
}

// HandleView handles GET /api/widget/sessions/{sessionID}/view requests.
func (h *WidgetSessionsHandler) HandleView(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	h.renderSession(w, r, s)
}

// HandleAction handles POST /api/widget/sessions/{sessionID}/actions
// requests: it applies the action and responds with the refreshed view.
func (h *WidgetSessionsHandler) HandleAction(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var req ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.apply(w, r, s, req); err != nil {
		return
	}
	h.renderSession(w, r, s)
}

// HandleDelete handles DELETE /api/widget/sessions/{sessionID} requests.
func (h *WidgetSessionsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	h.manager.Delete(chi.URLParam(r, "sessionID"))
	h.metrics.SetActiveSessions(h.manager.Len())
	w.WriteHeader(http.StatusNoContent)
}

func (h *WidgetSessionsHandler) session(w http.ResponseWriter, r *http.Request) (*wizard.Session, bool) {
	id := chi.URLParam(r, "sessionID")
	s, err := h.manager.Get(id)
	if err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return nil, false
	}
	return s, true
}

// apply runs one action against the session's machine. A non-nil return
// means the error response was already written.
func (h *WidgetSessionsHandler) apply(w http.ResponseWriter, r *http.Request, s *wizard.Session, req ActionRequest) error {
	ctx := r.Context()
	m := s.Machine

	var err error
	switch req.Action {
	case "select-service":
		err = m.SelectService(ctx, req.ServiceID)
	case "select-date":
		var date time.Time
		date, err = time.Parse("2006-01-02", req.Date)
		if err == nil {
			err = m.SelectDate(ctx, date)
		}
	case "select-time":
		err = m.SelectTime(ctx, req.Time)
	case "select-pet":
		err = m.SelectPet(ctx, req.PetID)
	case "add-new-pet":
		m.AddNewPet()
	case "cancel-new-pet":
		m.CancelNewPet()
	case "save-new-pet":
		if req.Pet == nil {
			err = pets.ErrMissingName
		} else {
			_, err = m.SaveNewPet(ctx, req.Pet)
		}
	case "set-customer":
		if req.Customer != nil {
			m.SetCustomer(*req.Customer)
		}
	case "go-to-step":
		err = m.GoToStep(wizard.Step(req.Step))
	case "submit-booking":
		if req.Customer != nil {
			m.SetCustomer(*req.Customer)
		}
		start := h.now()
		_, err = m.SubmitBooking(ctx)
		if err != nil {
			h.metrics.ObserveBooking("failed", time.Since(start).Seconds())
		} else {
			h.metrics.ObserveBooking("ok", time.Since(start).Seconds())
		}
	case "start-new-booking":
		m.StartNewBooking()
	default:
		http.Error(w, "unknown action", http.StatusBadRequest)
		return errors.New("unknown action")
	}

	if err != nil {
		h.logger.Warn("wizard action rejected",
			"action", req.Action,
			"session_id", s.ID,
			"error", err,
		)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(actionStatus(err))
		_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return err
	}
	return nil
}

func actionStatus(err error) int {
	switch {
	case errors.Is(err, wizard.ErrUnknownService),
		errors.Is(err, pets.ErrPetNotFound):
		return http.StatusNotFound
	case errors.Is(err, wizard.ErrSubmitInFlight):
		return http.StatusConflict
	default:
		return http.StatusUnprocessableEntity
	}
}

func (h *WidgetSessionsHandler) renderSession(w http.ResponseWriter, r *http.Request, s *wizard.Session) {
	draft := s.Machine.Snapshot()
	page := render.Page{
		Theme:      h.theme,
		Draft:      draft,
		Services:   h.services,
		Calendar:   schedule.BuildMonthGrid(h.now()),
		Submitting: s.Machine.Submitting(),
	}
	if list, err := s.Pets.List(r.Context()); err == nil {
		page.Pets = list
	}
	if draft.HasDate() && h.availability != nil {
		if slots, err := h.availability.Slots(r.Context(), draft.ServiceID, draft.Date); err == nil {
			page.Slots = slots
		}
	}

	html, err := h.renderer.RenderStep(page)
	if err != nil {
		h.logger.Error("failed to render session view", "error", err, "session_id", s.ID)
		http.Error(w, "failed to render view", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(html)
}
