package engine

import "time"

// DisplayedMonth identifies a calendar page.
type DisplayedMonth struct {
	Year  int
	Month time.Month
}

// Date returns midnight UTC on the first day of the month.
func (m DisplayedMonth) Date() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Next returns the following month, rolling the year at December.
func (m DisplayedMonth) Next() DisplayedMonth {
	d := m.Date().AddDate(0, 1, 0)
	return DisplayedMonth{Year: d.Year(), Month: d.Month()}
}

// Prev returns the preceding month, rolling the year at January.
func (m DisplayedMonth) Prev() DisplayedMonth {
	d := m.Date().AddDate(0, -1, 0)
	return DisplayedMonth{Year: d.Year(), Month: d.Month()}
}

// Contains reports whether d falls inside the month.
func (m DisplayedMonth) Contains(d time.Time) bool {
	return d.Year() == m.Year && d.Month() == m.Month
}

// DualCalendarController owns the left calendar's displayed month. The right
// calendar is always derived as left+1 and never stored, so the two views
// cannot drift apart.
type DualCalendarController struct {
	left DisplayedMonth
}

// NewDualCalendarController starts the controller on the month containing
// anchor.
func NewDualCalendarController(anchor time.Time) *DualCalendarController {
	return &DualCalendarController{
		left: DisplayedMonth{Year: anchor.Year(), Month: anchor.Month()},
	}
}

// Left returns the left calendar's month.
func (c *DualCalendarController) Left() DisplayedMonth {
	return c.left
}

// Right returns the right calendar's month, always one after the left.
func (c *DualCalendarController) Right() DisplayedMonth {
	return c.left.Next()
}

// NavigatePrev shifts both calendars back one month. Navigation is never
// clamped by date constraints; those only disable individual cells.
func (c *DualCalendarController) NavigatePrev() {
	c.left = c.left.Prev()
}

// NavigateNext shifts both calendars forward one month.
func (c *DualCalendarController) NavigateNext() {
	c.left = c.left.Next()
}

// SyncToRange resets the left calendar to the month of the range's start.
// Called when the committed range changes from outside; navigating the
// calendars never feeds back into the range.
func (c *DualCalendarController) SyncToRange(r DateRange) {
	if r.Start.IsZero() {
		return
	}
	c.left = DisplayedMonth{Year: r.Start.Year(), Month: r.Start.Month()}
}
