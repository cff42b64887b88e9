package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestControllerRightIsAlwaysLeftPlusOne(t *testing.T) {
	c := NewDualCalendarController(date(2025, time.March, 14))

	for i := 0; i < 30; i++ {
		left, right := c.Left(), c.Right()
		assert.Equal(t, left.Next(), right)
		c.NavigateNext()
	}
	for i := 0; i < 60; i++ {
		c.NavigatePrev()
		assert.Equal(t, c.Left().Next(), c.Right())
	}
}

func TestControllerYearRollover(t *testing.T) {
	c := NewDualCalendarController(date(2025, time.December, 1))

	// December's right neighbour already crosses the year boundary.
	assert.Equal(t, DisplayedMonth{Year: 2026, Month: time.January}, c.Right())

	c.NavigateNext()
	assert.Equal(t, DisplayedMonth{Year: 2026, Month: time.January}, c.Left())
	assert.Equal(t, DisplayedMonth{Year: 2026, Month: time.February}, c.Right())

	c.NavigatePrev()
	c.NavigatePrev()
	assert.Equal(t, DisplayedMonth{Year: 2025, Month: time.November}, c.Left())
	assert.Equal(t, DisplayedMonth{Year: 2025, Month: time.December}, c.Right())
}

func TestControllerSyncToRange(t *testing.T) {
	c := NewDualCalendarController(date(2025, time.January, 1))

	c.SyncToRange(NewDateRange(date(2026, time.July, 9), date(2026, time.August, 2)))
	assert.Equal(t, DisplayedMonth{Year: 2026, Month: time.July}, c.Left())
	assert.Equal(t, DisplayedMonth{Year: 2026, Month: time.August}, c.Right())

	// A range without a start leaves the display alone.
	c.SyncToRange(DateRange{})
	assert.Equal(t, DisplayedMonth{Year: 2026, Month: time.July}, c.Left())
}

func TestDisplayedMonthContains(t *testing.T) {
	m := DisplayedMonth{Year: 2025, Month: time.January}
	assert.True(t, m.Contains(date(2025, time.January, 1)))
	assert.True(t, m.Contains(date(2025, time.January, 31)))
	assert.False(t, m.Contains(date(2025, time.February, 1)))
	assert.False(t, m.Contains(date(2024, time.January, 15)))
}
