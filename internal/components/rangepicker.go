package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/rangecal/rangecal/internal/engine"
)

// RangePicker renders the dual-calendar range picker: two adjacent month
// grids, navigation controls, and a phase-aware status line. All selection
// logic lives in the engine; this component only paints its output.
type RangePicker struct {
	eng    *engine.Engine
	cursor time.Time
}

// NewRangePicker creates a picker view over an engine.
func NewRangePicker(eng *engine.Engine) *RangePicker {
	return &RangePicker{eng: eng}
}

// WithCursor marks the keyboard cursor date.
func (p *RangePicker) WithCursor(cursor time.Time) *RangePicker {
	p.cursor = cursor
	return p
}

// View renders the picker.
func (p *RangePicker) View() string {
	left, right := p.eng.Months()
	leftGrid, rightGrid := p.eng.Grids()

	leftView := NewCalendar(left, leftGrid, p.eng.ResolveCell).WithCursor(p.cursor).View()
	rightView := NewCalendar(right, rightGrid, p.eng.ResolveCell).WithCursor(p.cursor).View()

	calendars := lipgloss.JoinHorizontal(lipgloss.Top, leftView, "   ", rightView)

	body := lipgloss.JoinVertical(lipgloss.Left,
		p.navBar(),
		"",
		calendars,
		"",
		p.statusLine(),
	)

	frame := lipgloss.NewStyle().
		Border(BorderStyle(BorderVariantRounded)).
		Padding(0, 2)
	return frame.Render(body)
}

func (p *RangePicker) navBar() string {
	disabled := p.eng.Disabled()
	prev := NewButton("← prev", ButtonOptions{Variant: ButtonVariantMuted}).WithDisabled(disabled)
	next := NewButton("next →", ButtonOptions{Variant: ButtonVariantMuted}).WithDisabled(disabled)

	gap := 2*calendarWidth + 3 - lipgloss.Width(prev.View()) - lipgloss.Width(next.View())
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")
	return lipgloss.JoinHorizontal(lipgloss.Top, prev.View(), spacer, next.View())
}

// statusLine tells the user where the two-click protocol stands: the pending
// start while a selection is in progress, otherwise the committed range.
func (p *RangePicker) statusLine() string {
	styles := GetTheme().Calendar
	muted := Style(lipgloss.NewStyle(), Foreground(PaletteNeutral))

	if p.eng.Disabled() {
		return muted.Render("picker disabled")
	}

	sel := p.eng.Selection()
	if sel.Phase == engine.PhaseAwaitingEnd {
		start := sel.PendingStart.Format("Jan 2, 2006")
		return styles.MonthTitle.Render(start) + muted.Render(" → pick an end date")
	}

	value := p.eng.Value()
	if !value.IsComplete() {
		return muted.Render("pick a start date")
	}
	return fmt.Sprintf("%s → %s",
		styles.MonthTitle.Render(value.Start.Format("Jan 2, 2006")),
		styles.MonthTitle.Render(value.End.Format("Jan 2, 2006")),
	)
}
