package engine

import (
	"fmt"
	"time"
)

// DateRange is a pair of day-granularity dates. A zero Start or End means the
// bound is unset. A complete range always satisfies Start <= End; the
// selection state machine never commits an inverted range.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds a range from two dates, truncating both to day
// granularity.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: Day(start), End: Day(end)}
}

// IsComplete reports whether both bounds are set.
func (r DateRange) IsComplete() bool {
	return !r.Start.IsZero() && !r.End.IsZero()
}

// IsZero reports whether neither bound is set.
func (r DateRange) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// Contains reports whether d falls strictly between the range bounds. The
// bounds themselves are not contained; they are reported separately as start
// and end.
func (r DateRange) Contains(d time.Time) bool {
	if !r.IsComplete() {
		return false
	}
	return AfterDay(d, r.Start) && BeforeDay(d, r.End)
}

// String formats the range for logs and CLI output.
func (r DateRange) String() string {
	format := func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Format("2006-01-02")
	}
	return fmt.Sprintf("%s..%s", format(r.Start), format(r.End))
}
