// Package booking defines the submission boundary of the wizard. Submitter
// is the seam where a real reservation backend plugs in; the shipped
// implementation simulates one with configurable latency.
package booking

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Request carries everything collected by the wizard for one appointment.
type Request struct {
	ServiceID    string
	ServiceTitle string
	Date         time.Time
	SlotStart    string // "15:04" wall-clock label
	PetID        string
	PetName      string
	FirstName    string
	LastName     string
	Email        string
	Phone        string
}

// Confirmation is the outcome of a successful submission.
type Confirmation struct {
	Code        string    `json:"code"`
	BookedAt    time.Time `json:"booked_at"`
	ScheduledOn time.Time `json:"scheduled_on"`
	SlotStart   string    `json:"slot_start"`
}

// Submitter creates the appointment. Implementations must honor ctx so the
// wizard can bound submission latency.
type Submitter interface {
	Submit(ctx context.Context, req Request) (*Confirmation, error)
}

// SimulatedSubmitter stands in for a reservation backend. It waits for the
// configured latency, then fabricates a confirmation code. Nothing is
// persisted.
type SimulatedSubmitter struct {
	latency time.Duration
	now     func() time.Time
}

// NewSimulatedSubmitter creates a simulated submitter with the given latency.
func NewSimulatedSubmitter(latency time.Duration) *SimulatedSubmitter {
	return &SimulatedSubmitter{latency: latency, now: time.Now}
}

// Submit implements Submitter.
func (s *SimulatedSubmitter) Submit(ctx context.Context, req Request) (*Confirmation, error) {
	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	return &Confirmation{
		Code:        newConfirmationCode(),
		BookedAt:    s.now().UTC(),
		ScheduledOn: req.Date,
		SlotStart:   req.SlotStart,
	}, nil
}

func newConfirmationCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "PAW-" + raw[:8]
}
