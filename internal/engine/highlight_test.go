package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func insideCell(t time.Time) Cell {
	return Cell{Date: Day(t)}
}

func TestResolveHighlightCommittedRange(t *testing.T) {
	committed := NewDateRange(date(2025, time.January, 5), date(2025, time.January, 20))
	today := date(2025, time.January, 12)

	tests := []struct {
		name string
		day  int
		want Flags
	}{
		{"start", 5, Flags{Start: true}},
		{"end", 20, Flags{End: true}},
		{"strictly between", 12, Flags{InRange: true, Today: true}},
		{"day after end", 21, Flags{}},
		{"day before start", 4, Flags{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell := insideCell(date(2025, time.January, tt.day))
			got := ResolveHighlight(cell, committed, Selection{}, time.Time{}, Constraints{}, today)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveHighlightHoverPreview(t *testing.T) {
	sel := Selection{Phase: PhaseAwaitingEnd, PendingStart: date(2025, time.January, 10)}

	// Forward hover previews the span 10..15.
	hovered := date(2025, time.January, 15)
	mid := ResolveHighlight(insideCell(date(2025, time.January, 12)), DateRange{}, sel, hovered, Constraints{}, time.Time{})
	assert.True(t, mid.InRange)

	end := ResolveHighlight(insideCell(hovered), DateRange{}, sel, hovered, Constraints{}, time.Time{})
	assert.True(t, end.End)
	assert.True(t, end.Hovered)

	start := ResolveHighlight(insideCell(sel.PendingStart), DateRange{}, sel, hovered, Constraints{}, time.Time{})
	assert.True(t, start.Start)
}

func TestResolveHighlightBackwardHoverShowsNoPreview(t *testing.T) {
	// Hovering before the pending start previews nothing, mirroring the
	// reset-on-backward-click rule.
	sel := Selection{Phase: PhaseAwaitingEnd, PendingStart: date(2025, time.January, 10)}
	hovered := date(2025, time.January, 8)

	for day := 1; day <= 31; day++ {
		cell := insideCell(date(2025, time.January, day))
		got := ResolveHighlight(cell, DateRange{}, sel, hovered, Constraints{}, time.Time{})
		assert.False(t, got.InRange, "day %d", day)
		assert.False(t, got.End, "day %d", day)
	}

	// The hovered cell still carries the pointer-focus flag.
	got := ResolveHighlight(insideCell(hovered), DateRange{}, sel, hovered, Constraints{}, time.Time{})
	assert.True(t, got.Hovered)
}

func TestResolveHighlightPendingSelectionIgnoresCommittedRange(t *testing.T) {
	committed := NewDateRange(date(2025, time.March, 1), date(2025, time.March, 10))
	sel := Selection{Phase: PhaseAwaitingEnd, PendingStart: date(2025, time.March, 20)}

	got := ResolveHighlight(insideCell(date(2025, time.March, 5)), committed, sel, time.Time{}, Constraints{}, time.Time{})
	assert.Equal(t, Flags{}, got, "mid-selection display must not show the old committed range")
}

func TestResolveHighlightDisabled(t *testing.T) {
	cons := Constraints{
		MinDate: date(2025, time.January, 10),
		MaxDate: date(2025, time.January, 20),
	}

	tests := []struct {
		name     string
		cell     Cell
		disabled bool
	}{
		{"outside month", Cell{Date: date(2025, time.January, 15), OutsideMonth: true}, true},
		{"before min", insideCell(date(2025, time.January, 5)), true},
		{"after max", insideCell(date(2025, time.January, 25)), true},
		{"at min", insideCell(date(2025, time.January, 10)), false},
		{"at max", insideCell(date(2025, time.January, 20)), false},
		{"inside window", insideCell(date(2025, time.January, 15)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveHighlight(tt.cell, DateRange{}, Selection{}, time.Time{}, cons, time.Time{})
			assert.Equal(t, tt.disabled, got.Disabled)
		})
	}
}

func TestResolveHighlightDisabledCellsGetNoOtherFlags(t *testing.T) {
	committed := NewDateRange(date(2025, time.January, 1), date(2025, time.January, 31))
	cell := Cell{Date: date(2025, time.January, 15), OutsideMonth: true}

	got := ResolveHighlight(cell, committed, Selection{}, cell.Date, Constraints{}, cell.Date)
	assert.Equal(t, Flags{Disabled: true}, got)
}

func TestResolveHighlightInvertedConstraintsDisableEverything(t *testing.T) {
	// min after max is a caller precondition violation; the safe answer is
	// a fully disabled calendar, not a panic.
	cons := Constraints{
		MinDate: date(2025, time.June, 1),
		MaxDate: date(2025, time.January, 1),
	}

	for _, cell := range BuildGrid(2025, time.March) {
		got := ResolveHighlight(cell, DateRange{}, Selection{}, time.Time{}, cons, time.Time{})
		assert.True(t, got.Disabled, "cell %s", cell.Date.Format("2006-01-02"))
	}
}

func TestResolveHighlightIsPure(t *testing.T) {
	committed := NewDateRange(date(2025, time.January, 5), date(2025, time.January, 20))
	sel := Selection{Phase: PhaseAwaitingEnd, PendingStart: date(2025, time.January, 7)}
	cell := insideCell(date(2025, time.January, 10))
	hovered := date(2025, time.January, 10)
	cons := Constraints{MinDate: date(2025, time.January, 1)}
	today := date(2025, time.January, 10)

	first := ResolveHighlight(cell, committed, sel, hovered, cons, today)
	second := ResolveHighlight(cell, committed, sel, hovered, cons, today)
	assert.Equal(t, first, second)
}
