package schedule

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"time"
)

// ErrInvalidWindow is returned when the open/close hours are inconsistent.
var ErrInvalidWindow = errors.New("schedule: close hour must be after open hour")

// Slot is a single bookable time within a day.
type Slot struct {
	Start     string `json:"start"` // "15:04" wall-clock label
	Available bool   `json:"available"`
}

// AvailabilityProvider answers "given a service and a date, which slots can
// be booked". Real deployments back this with an external calendar system.
type AvailabilityProvider interface {
	Slots(ctx context.Context, serviceID string, date time.Time) ([]Slot, error)
}

// SlotTimes generates slot labels every interval between openHour and
// closeHour, end exclusive.
func SlotTimes(openHour, closeHour int, interval time.Duration) ([]string, error) {
	if closeHour <= openHour {
		return nil, ErrInvalidWindow
	}
	if interval <= 0 {
		interval = 30 * time.Minute
	}

	var out []string
	day := time.Date(2000, 1, 1, openHour, 0, 0, 0, time.UTC)
	end := time.Date(2000, 1, 1, closeHour, 0, 0, 0, time.UTC)
	for cur := day; cur.Before(end); cur = cur.Add(interval) {
		out = append(out, cur.Format("15:04"))
	}
	return out, nil
}

// DemoProvider is the stand-in scheduler for demo deployments. Availability
// is derived from a hash of service, date and slot, so results are stable
// across calls for the same inputs.
type DemoProvider struct {
	openHour  int
	closeHour int
	interval  time.Duration
}

// NewDemoProvider creates a demo availability provider over the given window.
func NewDemoProvider(openHour, closeHour int, interval time.Duration) *DemoProvider {
	return &DemoProvider{openHour: openHour, closeHour: closeHour, interval: interval}
}

// Slots implements AvailabilityProvider.
func (p *DemoProvider) Slots(ctx context.Context, serviceID string, date time.Time) ([]Slot, error) {
	times, err := SlotTimes(p.openHour, p.closeHour, p.interval)
	if err != nil {
		return nil, err
	}

	day := date.Format("2006-01-02")
	slots := make([]Slot, 0, len(times))
	for _, start := range times {
		slots = append(slots, Slot{
			Start:     start,
			Available: slotHash(serviceID, day, start)%4 != 0, // roughly 3 in 4 open
		})
	}
	return slots, nil
}

func slotHash(serviceID, day, start string) uint32 {
	h := fnv.New32a()
	_, _ = fmt.Fprintf(h, "%s|%s|%s", serviceID, day, start)
	return h.Sum32()
}
