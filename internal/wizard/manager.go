package wizard

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pawdesk/booking-widget/internal/booking"
	"github.com/pawdesk/booking-widget/internal/catalog"
	"github.com/pawdesk/booking-widget/internal/pets"
	"github.com/pawdesk/booking-widget/internal/schedule"
	"github.com/pawdesk/booking-widget/pkg/logging"
)

// ErrSessionNotFound is returned for unknown or expired wizard sessions.
var ErrSessionNotFound = errors.New("wizard: session not found")

const defaultSessionTTL = 30 * time.Minute

// Session is one server-driven wizard: its machine plus the pet list that
// lives and dies with it.
type Session struct {
	ID        string
	Machine   *Machine
	Pets      pets.Repository
	CreatedAt time.Time

	expiresAt time.Time
}

// ManagerDeps are the collaborators shared by every session the manager
// creates. Each session still gets its own pet repository.
type ManagerDeps struct {
	Services      []catalog.Service
	Availability  schedule.AvailabilityProvider
	Submitter     booking.Submitter
	SubmitTimeout time.Duration
	TTL           time.Duration
	Logger        *logging.Logger
	Now           func() time.Time
}

// Manager owns the live wizard sessions keyed by id. Expired sessions are
// swept opportunistically on access.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	deps     ManagerDeps
}

// NewManager creates an empty session manager.
func NewManager(deps ManagerDeps) *Manager {
	if deps.TTL <= 0 {
		deps.TTL = defaultSessionTTL
	}
	if deps.Logger == nil {
		deps.Logger = logging.Default()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Manager{
		sessions: make(map[string]*Session),
		deps:     deps,
	}
}

// Create starts a new wizard session on the services step.
func (m *Manager) Create(ctx context.Context) *Session {
	repo := pets.NewInMemoryRepository(nil)
	now := m.deps.Now()
	s := &Session{
		ID: uuid.New().String(),
		Machine: New(Deps{
			Services:      m.deps.Services,
			Pets:          repo,
			Availability:  m.deps.Availability,
			Submitter:     m.deps.Submitter,
			SubmitTimeout: m.deps.SubmitTimeout,
			Logger:        m.deps.Logger,
			Now:           m.deps.Now,
		}),
		Pets:      repo,
		CreatedAt: now,
		expiresAt: now.Add(m.deps.TTL),
	}

	m.mu.Lock()
	m.sweepLocked(now)
	m.sessions[s.ID] = s
	m.mu.Unlock()

	m.deps.Logger.Debug("wizard session created", "session_id", s.ID)
	return s
}

// Get returns a live session and extends its lifetime.
func (m *Manager) Get(id string) (*Session, error) {
	now := m.deps.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if now.After(s.expiresAt) {
		delete(m.sessions, id)
		return nil, ErrSessionNotFound
	}
	s.expiresAt = now.Add(m.deps.TTL)
	return s, nil
}

// Delete removes a session immediately.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *Manager) sweepLocked(now time.Time) {
	for id, s := range m.sessions {
		if now.After(s.expiresAt) {
			delete(m.sessions, id)
		}
	}
}
