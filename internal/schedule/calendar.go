// Package schedule computes the widget's calendar grid and bookable time
// slots. Availability comes from an AvailabilityProvider so a real scheduling
// backend can replace the demo implementation without touching the wizard.
package schedule

import "time"

// Day is one cell of the calendar grid. Blank cells pad the first week so
// day 1 lands on its weekday column.
type Day struct {
	Date     time.Time `json:"date"`
	Number   int       `json:"number"`
	Blank    bool      `json:"blank"`
	Disabled bool      `json:"disabled"`
}

// MonthGrid describes the current month as a 7-column grid.
type MonthGrid struct {
	Year  int
	Month time.Month
	Weeks [][]Day
}

// BuildMonthGrid lays out today's month. Days strictly before today are
// disabled; leading blanks align day 1 with its weekday (Sunday first).
func BuildMonthGrid(today time.Time) MonthGrid {
	today = midnight(today)
	first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()
	leading := int(first.Weekday())

	cells := make([]Day, 0, leading+daysInMonth)
	for i := 0; i < leading; i++ {
		cells = append(cells, Day{Blank: true})
	}
	for d := 1; d <= daysInMonth; d++ {
		date := first.AddDate(0, 0, d-1)
		cells = append(cells, Day{
			Date:     date,
			Number:   d,
			Disabled: date.Before(today),
		})
	}
	// Pad the last week out to a full row.
	for len(cells)%7 != 0 {
		cells = append(cells, Day{Blank: true})
	}

	grid := MonthGrid{Year: today.Year(), Month: today.Month()}
	for i := 0; i < len(cells); i += 7 {
		grid.Weeks = append(grid.Weeks, cells[i:i+7])
	}
	return grid
}

func midnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
