package engine

import "time"

// Phase is the two-click selection phase.
type Phase int

const (
	// PhaseAwaitingStart is the resting phase: no click has been made since
	// the last commit or abort.
	PhaseAwaitingStart Phase = iota
	// PhaseAwaitingEnd holds between the first and second click. It is a
	// transient UI phase and is never persisted on a committed range.
	PhaseAwaitingEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingEnd:
		return "awaiting_end"
	default:
		return "awaiting_start"
	}
}

// Selection is the in-progress selection state: the current phase and, while
// awaiting the end click, the tentative start date. The zero value is the
// initial state. Selection is a value type advanced by pure transitions so it
// stays independent of any render scheduling.
type Selection struct {
	Phase        Phase
	PendingStart time.Time
}

// Click advances the selection with a picked date and returns the next state
// plus the committed range, if this click completed one.
//
// The first click records a pending start and moves to PhaseAwaitingEnd. A
// second click on an earlier day resets the pending start instead of
// committing an inverted range. A second click on the same or a later day
// commits {pending start, clicked day} and returns to the resting phase.
func (s Selection) Click(d time.Time) (Selection, *DateRange) {
	d = Day(d)

	if s.Phase == PhaseAwaitingEnd {
		if BeforeDay(d, s.PendingStart) {
			return Selection{Phase: PhaseAwaitingEnd, PendingStart: d}, nil
		}
		committed := DateRange{Start: s.PendingStart, End: d}
		return Selection{}, &committed
	}

	return Selection{Phase: PhaseAwaitingEnd, PendingStart: d}, nil
}

// Abort discards any pending start without committing. It must run on
// dismissal so a half-made selection never leaks into the next open cycle.
func (s Selection) Abort() Selection {
	return Selection{}
}
