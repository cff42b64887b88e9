package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/rangecal/rangecal/internal/engine"
)

const calendarWidth = 7*2 + 6 // seven 2-char day columns, single spaces between

var weekdayHeadings = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// Calendar renders one 42-cell month grid. It holds no selection state of
// its own; the engine's resolver decides how every cell is painted.
type Calendar struct {
	month   engine.DisplayedMonth
	cells   []engine.Cell
	resolve func(engine.Cell) engine.Flags
	cursor  time.Time
}

// NewCalendar creates a calendar for a month grid. resolve maps each cell to
// its display flags; a nil resolve paints every cell as a plain day.
func NewCalendar(month engine.DisplayedMonth, cells []engine.Cell, resolve func(engine.Cell) engine.Flags) *Calendar {
	return &Calendar{
		month:   month,
		cells:   cells,
		resolve: resolve,
	}
}

// WithCursor marks the keyboard cursor cell.
func (c *Calendar) WithCursor(cursor time.Time) *Calendar {
	c.cursor = cursor
	return c
}

// View renders the calendar: month title, weekday header, six week rows.
func (c *Calendar) View() string {
	styles := GetTheme().Calendar

	var b strings.Builder
	title := fmt.Sprintf("%s %d", c.month.Month, c.month.Year)
	b.WriteString(styles.MonthTitle.Width(calendarWidth).Align(lipgloss.Center).Render(title))
	b.WriteString("\n")

	headings := lo.Map(weekdayHeadings, func(h string, _ int) string {
		return styles.WeekdayHeader.Render(h)
	})
	b.WriteString(strings.Join(headings, " "))
	b.WriteString("\n")

	for i, week := range lo.Chunk(c.cells, 7) {
		if i > 0 {
			b.WriteString("\n")
		}
		days := lo.Map(week, func(cell engine.Cell, _ int) string {
			return c.renderCell(cell, styles)
		})
		b.WriteString(strings.Join(days, " "))
	}

	return b.String()
}

func (c *Calendar) renderCell(cell engine.Cell, styles CalendarStyles) string {
	label := fmt.Sprintf("%2d", cell.Date.Day())

	var flags engine.Flags
	if c.resolve != nil {
		flags = c.resolve(cell)
	}

	return c.cellStyle(cell, flags, styles).Render(label)
}

// cellStyle picks one style per cell. Order matters: a disabled cell never
// shows range or hover styling, and the cursor wins over everything else so
// it stays visible inside a highlighted band.
func (c *Calendar) cellStyle(cell engine.Cell, flags engine.Flags, styles CalendarStyles) lipgloss.Style {
	onCursor := !c.cursor.IsZero() && engine.SameDay(cell.Date, c.cursor) && !cell.OutsideMonth

	switch {
	case flags.Disabled && cell.OutsideMonth:
		return styles.OutsideDay
	case flags.Disabled:
		return styles.Disabled
	case onCursor:
		return styles.Cursor
	case flags.Start:
		return styles.RangeStart
	case flags.End:
		return styles.RangeEnd
	case flags.InRange:
		return styles.InRange
	case flags.Hovered:
		return styles.Hovered
	case flags.Today:
		return styles.Today
	default:
		return styles.Day
	}
}
