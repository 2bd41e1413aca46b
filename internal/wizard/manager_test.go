package wizard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawdesk/booking-widget/internal/booking"
	"github.com/pawdesk/booking-widget/internal/catalog"
	"github.com/pawdesk/booking-widget/internal/pets"
	"github.com/pawdesk/booking-widget/internal/schedule"
)

func newTestManager(now *time.Time) *Manager {
	return NewManager(ManagerDeps{
		Services:     catalog.DemoServices(),
		Availability: &fakeAvailability{slots: []schedule.Slot{{Start: "09:00", Available: true}}},
		Submitter:    booking.NewSimulatedSubmitter(0),
		TTL:          10 * time.Minute,
		Now:          func() time.Time { return *now },
	})
}

func TestManager_CreateAndGet(t *testing.T) {
	now := testToday
	m := newTestManager(&now)

	s := m.Create(context.Background())
	require.NotEmpty(t, s.ID)
	assert.Equal(t, StepServices, s.Machine.Snapshot().Step)

	got, err := m.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, err = m.Get("nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManager_SessionsAreIsolated(t *testing.T) {
	now := testToday
	m := newTestManager(&now)
	ctx := context.Background()

	a := m.Create(ctx)
	b := m.Create(ctx)

	_, err := a.Pets.Add(ctx, &pets.AddPetRequest{Name: "Ziggy", Breed: "Corgi", AgeYears: 4})
	require.NoError(t, err)

	listA, err := a.Pets.List(ctx)
	require.NoError(t, err)
	listB, err := b.Pets.List(ctx)
	require.NoError(t, err)
	assert.Len(t, listA, len(listB)+1)

	require.NoError(t, a.Machine.SelectService(ctx, "svc-walk-30"))
	assert.Equal(t, StepServices, b.Machine.Snapshot().Step)
}

func TestManager_ExpiryAndTouch(t *testing.T) {
	now := testToday
	m := newTestManager(&now)

	s := m.Create(context.Background())

	// Access just before expiry extends the session.
	now = now.Add(9 * time.Minute)
	_, err := m.Get(s.ID)
	require.NoError(t, err)

	now = now.Add(9 * time.Minute)
	_, err = m.Get(s.ID)
	require.NoError(t, err)

	// Left untouched past the TTL, the session is gone.
	now = now.Add(11 * time.Minute)
	_, err = m.Get(s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManager_Delete(t *testing.T) {
	now := testToday
	m := newTestManager(&now)

	s := m.Create(context.Background())
	assert.Equal(t, 1, m.Len())

	m.Delete(s.ID)
	assert.Equal(t, 0, m.Len())

	_, err := m.Get(s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
