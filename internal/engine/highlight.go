package engine

import "time"

// Constraints bound the selectable dates. Zero bounds are open. The engine
// never mutates a Constraints value.
type Constraints struct {
	MinDate time.Time
	MaxDate time.Time
}

// Inverted reports whether both bounds are set with MinDate after MaxDate.
// This is a caller precondition violation; the resolver answers it by
// disabling every cell rather than panicking.
func (c Constraints) Inverted() bool {
	return !c.MinDate.IsZero() && !c.MaxDate.IsZero() && AfterDay(c.MinDate, c.MaxDate)
}

// Allows reports whether d falls inside [MinDate, MaxDate].
func (c Constraints) Allows(d time.Time) bool {
	if c.Inverted() {
		return false
	}
	if !c.MinDate.IsZero() && BeforeDay(d, c.MinDate) {
		return false
	}
	if !c.MaxDate.IsZero() && AfterDay(d, c.MaxDate) {
		return false
	}
	return true
}

// Flags is the resolved display state for one grid cell.
type Flags struct {
	Start    bool
	End      bool
	InRange  bool
	Today    bool
	Hovered  bool
	Disabled bool
}

// ResolveHighlight computes the display flags for one cell. Pure: identical
// inputs always yield identical flags, so it can run once per visible cell
// per render.
//
// Disabled cells (outside-month, or outside the constraint window) get no
// other flags. While awaiting the end click the active range is the pending
// start plus the hovered date, but only when the hover sits on or after the
// pending start; hovering before it previews nothing, mirroring the
// reset-on-backward-click rule. In the resting phase the active range is the
// committed one.
func ResolveHighlight(cell Cell, committed DateRange, sel Selection, hovered time.Time, cons Constraints, today time.Time) Flags {
	if cell.OutsideMonth || !cons.Allows(cell.Date) {
		return Flags{Disabled: true}
	}

	var activeStart, activeEnd time.Time
	if sel.Phase == PhaseAwaitingEnd {
		activeStart = sel.PendingStart
		if !hovered.IsZero() && !BeforeDay(hovered, sel.PendingStart) {
			activeEnd = hovered
		}
	} else {
		activeStart = committed.Start
		activeEnd = committed.End
	}

	var f Flags
	f.Start = !activeStart.IsZero() && SameDay(cell.Date, activeStart)
	f.End = !activeEnd.IsZero() && SameDay(cell.Date, activeEnd)
	if !activeStart.IsZero() && !activeEnd.IsZero() {
		f.InRange = AfterDay(cell.Date, activeStart) && BeforeDay(cell.Date, activeEnd)
	}
	f.Today = !today.IsZero() && SameDay(cell.Date, today)
	f.Hovered = !hovered.IsZero() && SameDay(cell.Date, hovered)
	return f
}
