package components

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rangecal/rangecal/internal/engine"
)

func pickerEngine(t *testing.T) *engine.Engine {
	t.Helper()
	return engine.New(engine.Options{
		Now: func() time.Time { return time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC) },
	})
}

func TestRangePickerShowsBothMonths(t *testing.T) {
	view := NewRangePicker(pickerEngine(t)).View()

	assert.Contains(t, view, "January 2025")
	assert.Contains(t, view, "February 2025")
}

func TestRangePickerStatusLineFollowsPhase(t *testing.T) {
	eng := pickerEngine(t)
	picker := NewRangePicker(eng)

	assert.Contains(t, picker.View(), "pick a start date")

	eng.Click(time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC))
	assert.Contains(t, picker.View(), "pick an end date")
	assert.Contains(t, picker.View(), "Jan 10, 2025")

	eng.Click(time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC))
	view := picker.View()
	assert.Contains(t, view, "Jan 10, 2025")
	assert.Contains(t, view, "Jan 20, 2025")
}

func TestRangePickerDisabledStatus(t *testing.T) {
	eng := engine.New(engine.Options{
		Disabled: true,
		Now:      func() time.Time { return time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC) },
	})

	assert.Contains(t, NewRangePicker(eng).View(), "picker disabled")
}

func TestRangePickerFollowsNavigation(t *testing.T) {
	eng := pickerEngine(t)
	picker := NewRangePicker(eng)

	eng.NavigateNext()
	view := picker.View()
	assert.Contains(t, view, "February 2025")
	assert.Contains(t, view, "March 2025")
	assert.NotContains(t, view, "January 2025")
}
