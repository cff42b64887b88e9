// Package engine implements the dual-calendar date-range selection core:
// month grid construction, the two-click selection state machine, per-cell
// highlight resolution, and paired-month navigation. It performs no I/O and
// no rendering; a presentation layer feeds it gestures and paints its
// output.
package engine

import "time"

// Options configures an Engine.
type Options struct {
	// Value marks the engine as controlled: the caller owns the committed
	// range and the engine only mirrors it. Updates arrive via SetValue.
	Value *DateRange
	// DefaultValue seeds the committed range in uncontrolled mode, where the
	// engine owns it.
	DefaultValue DateRange
	// OnChange receives every committed range.
	OnChange func(DateRange)
	// Constraints bound the selectable dates.
	Constraints Constraints
	// Disabled makes every gesture a no-op.
	Disabled bool
	// Now supplies the current day for today-marking. Defaults to time.Now.
	Now func() time.Time
}

// Engine owns the selection phase, pending start, hover state, and displayed
// months. All mutation happens on the caller's single event goroutine;
// gestures are applied synchronously in delivery order.
type Engine struct {
	opts       Options
	controlled bool
	value      DateRange
	sel        Selection
	hovered    time.Time
	controller *DualCalendarController
}

// New builds an engine from options. The displayed months start on the
// initial range's start month when one is set, otherwise on the current
// month.
func New(opts Options) *Engine {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	e := &Engine{opts: opts}
	if opts.Value != nil {
		e.controlled = true
		e.value = NewDateRange(opts.Value.Start, opts.Value.End)
	} else {
		e.value = NewDateRange(opts.DefaultValue.Start, opts.DefaultValue.End)
	}

	anchor := e.value.Start
	if anchor.IsZero() {
		anchor = Day(opts.Now())
	}
	e.controller = NewDualCalendarController(anchor)
	return e
}

// Value returns the committed range.
func (e *Engine) Value() DateRange {
	return e.value
}

// Selection returns the in-progress selection state.
func (e *Engine) Selection() Selection {
	return e.sel
}

// Phase returns the current selection phase.
func (e *Engine) Phase() Phase {
	return e.sel.Phase
}

// Hovered returns the last hovered date, or zero when none.
func (e *Engine) Hovered() time.Time {
	return e.hovered
}

// Months returns the two displayed months, left then right.
func (e *Engine) Months() (DisplayedMonth, DisplayedMonth) {
	return e.controller.Left(), e.controller.Right()
}

// Grids rebuilds and returns the two 42-cell grids for the displayed months.
func (e *Engine) Grids() ([]Cell, []Cell) {
	left, right := e.Months()
	return BuildGrid(left.Year, left.Month), BuildGrid(right.Year, right.Month)
}

// ResolveCell computes the display flags for one cell against the current
// engine state.
func (e *Engine) ResolveCell(cell Cell) Flags {
	return ResolveHighlight(cell, e.value, e.sel, e.hovered, e.opts.Constraints, Day(e.opts.Now()))
}

// Clickable reports whether a date accepts clicks: the engine is enabled,
// the constraints allow it, and it belongs to one of the displayed months.
// Outside-month cells carry dates of neighbouring months and therefore
// fail the displayed-month check.
func (e *Engine) Clickable(d time.Time) bool {
	if e.opts.Disabled || !e.opts.Constraints.Allows(d) {
		return false
	}
	left, right := e.Months()
	return left.Contains(d) || right.Contains(d)
}

// Click applies a date click. Clicks on non-clickable dates are silent
// no-ops in every phase. Returns the committed range when the click
// completed one, after reporting it through OnChange.
func (e *Engine) Click(d time.Time) *DateRange {
	d = Day(d)
	if !e.Clickable(d) {
		return nil
	}

	next, committed := e.sel.Click(d)
	e.sel = next
	if committed == nil {
		return nil
	}

	if !e.controlled {
		e.value = *committed
	}
	e.hovered = time.Time{}
	if e.opts.OnChange != nil {
		e.opts.OnChange(*committed)
	}
	return committed
}

// Hover records the date under the pointer. Hovers over non-clickable dates
// are silently ignored, like clicks.
func (e *Engine) Hover(d time.Time) {
	d = Day(d)
	if !e.Clickable(d) {
		return
	}
	e.hovered = d
}

// HoverEnd clears the hover state, matching the pointer leaving the grid.
func (e *Engine) HoverEnd() {
	e.hovered = time.Time{}
}

// Abort discards any in-progress selection without committing. Runs on
// dismissal so a stale pending start never survives into the next cycle.
func (e *Engine) Abort() {
	e.sel = e.sel.Abort()
	e.hovered = time.Time{}
}

// NavigatePrev shifts both displayed months back by one.
func (e *Engine) NavigatePrev() {
	if e.opts.Disabled {
		return
	}
	e.controller.NavigatePrev()
}

// NavigateNext shifts both displayed months forward by one.
func (e *Engine) NavigateNext() {
	if e.opts.Disabled {
		return
	}
	e.controller.NavigateNext()
}

// SetValue feeds a controlled-value update back into the engine. When the
// start month changed, the displayed months resync to it.
func (e *Engine) SetValue(r DateRange) {
	r = NewDateRange(r.Start, r.End)
	startChanged := !SameDay(r.Start, e.value.Start)
	e.value = r
	if startChanged {
		e.controller.SyncToRange(r)
	}
}

// Constraints returns the configured date constraints.
func (e *Engine) Constraints() Constraints {
	return e.opts.Constraints
}

// Disabled reports whether the engine rejects all gestures.
func (e *Engine) Disabled() bool {
	return e.opts.Disabled
}
