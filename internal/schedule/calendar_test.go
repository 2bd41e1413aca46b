package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMonthGrid_LeadingBlanksMatchWeekday(t *testing.T) {
	// 2026-03-01 is a Sunday, so March 2026 has no leading blanks.
	today := time.Date(2026, time.March, 1, 10, 30, 0, 0, time.UTC)
	grid := BuildMonthGrid(today)

	require.NotEmpty(t, grid.Weeks)
	assert.False(t, grid.Weeks[0][0].Blank)
	assert.Equal(t, 1, grid.Weeks[0][0].Number)

	// 2026-07-01 is a Wednesday: three leading blanks.
	grid = BuildMonthGrid(time.Date(2026, time.July, 15, 0, 0, 0, 0, time.UTC))
	for i := 0; i < 3; i++ {
		assert.True(t, grid.Weeks[0][i].Blank)
	}
	assert.Equal(t, 1, grid.Weeks[0][3].Number)
}

func TestBuildMonthGrid_RowsAreSevenWide(t *testing.T) {
	grid := BuildMonthGrid(time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC))
	for _, week := range grid.Weeks {
		assert.Len(t, week, 7)
	}
}

func TestBuildMonthGrid_DayCount(t *testing.T) {
	grid := BuildMonthGrid(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC))

	count := 0
	last := 0
	for _, week := range grid.Weeks {
		for _, day := range week {
			if !day.Blank {
				count++
				last = day.Number
			}
		}
	}
	assert.Equal(t, 29, count) // leap year
	assert.Equal(t, 29, last)
}

func TestBuildMonthGrid_PastDaysDisabled(t *testing.T) {
	today := time.Date(2026, time.August, 15, 9, 0, 0, 0, time.UTC)
	grid := BuildMonthGrid(today)

	for _, week := range grid.Weeks {
		for _, day := range week {
			if day.Blank {
				continue
			}
			if day.Number < 15 {
				assert.True(t, day.Disabled, "day %d should be disabled", day.Number)
			} else {
				assert.False(t, day.Disabled, "day %d should be selectable", day.Number)
			}
		}
	}
}
