package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawdesk/booking-widget/internal/booking"
	"github.com/pawdesk/booking-widget/internal/catalog"
	"github.com/pawdesk/booking-widget/internal/pets"
	"github.com/pawdesk/booking-widget/internal/render"
	"github.com/pawdesk/booking-widget/internal/schedule"
	"github.com/pawdesk/booking-widget/internal/wizard"
)

func newSessionsRouter(t *testing.T) (*chi.Mux, *wizard.Manager) {
	t.Helper()

	services := catalog.DemoServices()
	availability := schedule.NewDemoProvider(9, 17, 30*time.Minute)
	manager := wizard.NewManager(wizard.ManagerDeps{
		Services:     services,
		Availability: availability,
		Submitter:    booking.NewSimulatedSubmitter(0),
		Now:          func() time.Time { return handlerNow },
	})

	renderer, err := render.New()
	require.NoError(t, err)
	h := NewWidgetSessionsHandler(manager, services, availability, renderer, nil, nil)
	h.now = func() time.Time { return handlerNow }

	r := chi.NewRouter()
	r.Post("/api/widget/sessions", h.HandleCreate)
	r.Get("/api/widget/sessions/{sessionID}/view", h.HandleView)
	r.Post("/api/widget/sessions/{sessionID}/actions", h.HandleAction)
	r.Delete("/api/widget/sessions/{sessionID}", h.HandleDelete)
	return r, manager
}

func createSession(t *testing.T, r http.Handler) string {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/widget/sessions", nil))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp CreateSessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.SessionID)
	return resp.SessionID
}

func postAction(t *testing.T, r http.Handler, id string, action ActionRequest) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(action)
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/widget/sessions/"+id+"/actions", bytes.NewReader(body)))
	return rec
}

func TestSessions_CreateAndView(t *testing.T) {
	r, _ := newSessionsRouter(t)
	id := createSession(t, r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/widget/sessions/"+id+"/view", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), `data-step="services"`)
	assert.Contains(t, rec.Body.String(), "Full Grooming")
}

func TestSessions_UnknownSession(t *testing.T) {
	r, _ := newSessionsRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/widget/sessions/nope/view", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSessions_SelectServiceAdvances(t *testing.T) {
	r, _ := newSessionsRouter(t)
	id := createSession(t, r)

	rec := postAction(t, r, id, ActionRequest{Action: "select-service", ServiceID: "svc-walk-30"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-step="datetime"`)
	assert.Contains(t, rec.Body.String(), "September 2026")
}

func TestSessions_RejectsInvalidActions(t *testing.T) {
	r, _ := newSessionsRouter(t)
	id := createSession(t, r)

	rec := postAction(t, r, id, ActionRequest{Action: "select-service", ServiceID: "svc-unknown"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown service")

	rec = postAction(t, r, id, ActionRequest{Action: "go-to-step", Step: "details"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = postAction(t, r, id, ActionRequest{Action: "teleport"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessions_PastDateRejected(t *testing.T) {
	r, _ := newSessionsRouter(t)
	id := createSession(t, r)

	rec := postAction(t, r, id, ActionRequest{Action: "select-service", ServiceID: "svc-walk-30"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = postAction(t, r, id, ActionRequest{Action: "select-date", Date: "2026-08-30"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestSessions_FullBookingFlow(t *testing.T) {
	r, manager := newSessionsRouter(t)
	id := createSession(t, r)

	require.Equal(t, http.StatusOK, postAction(t, r, id, ActionRequest{Action: "select-service", ServiceID: "svc-walk-30"}).Code)
	require.Equal(t, http.StatusOK, postAction(t, r, id, ActionRequest{Action: "select-date", Date: "2026-09-03"}).Code)
	require.Equal(t, http.StatusOK, postAction(t, r, id, ActionRequest{Action: "select-time", Time: "09:00"}).Code)
	require.Equal(t, http.StatusOK, postAction(t, r, id, ActionRequest{Action: "go-to-step", Step: "pet"}).Code)
	require.Equal(t, http.StatusOK, postAction(t, r, id, ActionRequest{
		Action: "save-new-pet",
		Pet:    &pets.AddPetRequest{Name: "Ziggy", Breed: "Corgi", AgeYears: 4},
	}).Code)
	require.Equal(t, http.StatusOK, postAction(t, r, id, ActionRequest{Action: "go-to-step", Step: "details"}).Code)

	rec := postAction(t, r, id, ActionRequest{
		Action: "submit-booking",
		Customer: &wizard.Customer{
			FirstName: "Dana",
			LastName:  "Reyes",
			Email:     "dana@example.com",
			Phone:     "+15551234567",
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-step="confirmation"`)
	assert.Contains(t, rec.Body.String(), "PAW-")

	s, err := manager.Get(id)
	require.NoError(t, err)
	assert.NotNil(t, s.Machine.Snapshot().Confirmation)
}

func TestSessions_SubmitWithoutDetailsFails(t *testing.T) {
	r, _ := newSessionsRouter(t)
	id := createSession(t, r)

	rec := postAction(t, r, id, ActionRequest{Action: "submit-booking"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestSessions_Delete(t *testing.T) {
	r, manager := newSessionsRouter(t)
	id := createSession(t, r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/widget/sessions/"+id, nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	_, err := manager.Get(id)
	assert.ErrorIs(t, err, wizard.ErrSessionNotFound)
}
