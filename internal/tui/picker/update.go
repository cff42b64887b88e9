package picker

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rangecal/rangecal/internal/engine"
)

// Update handles incoming messages and advances the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys

	switch {
	case key.Matches(msg, keys.quit):
		m.eng.Abort()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.abort):
		if m.eng.Phase() == engine.PhaseAwaitingEnd {
			m.eng.Abort()
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.confirm):
		if committed := m.eng.Click(m.cursor); committed != nil {
			m.committed = committed
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case key.Matches(msg, keys.showHelp):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, keys.left):
		return m.moveCursor(-1), nil
	case key.Matches(msg, keys.right):
		return m.moveCursor(1), nil
	case key.Matches(msg, keys.up):
		return m.moveCursor(-7), nil
	case key.Matches(msg, keys.down):
		return m.moveCursor(7), nil

	case key.Matches(msg, keys.prevMonth):
		m.eng.NavigatePrev()
		m.cursor = shiftMonth(m.cursor, -1)
		m.eng.Hover(m.cursor)
		return m, nil
	case key.Matches(msg, keys.nextMonth):
		m.eng.NavigateNext()
		m.cursor = shiftMonth(m.cursor, 1)
		m.eng.Hover(m.cursor)
		return m, nil
	}

	return m, nil
}

// moveCursor shifts the cursor by days, navigating the calendars when it
// crosses the displayed two-month window, and replays the hover so the
// preview tracks the cursor.
func (m Model) moveCursor(days int) Model {
	m.cursor = m.cursor.AddDate(0, 0, days)

	left, right := m.eng.Months()
	if engine.BeforeDay(m.cursor, left.Date()) {
		m.eng.NavigatePrev()
	} else if engine.AfterDay(m.cursor, lastDayOf(right)) {
		m.eng.NavigateNext()
	}

	m.eng.Hover(m.cursor)
	return m
}

// shiftMonth moves a date by whole months, clamping the day so the result
// stays inside the target month (Jan 31 back one month is Dec 31, forward
// one is Feb 28/29).
func shiftMonth(d time.Time, months int) time.Time {
	target := time.Date(d.Year(), d.Month()+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	day := d.Day()
	if last := lastDayOf(engine.DisplayedMonth{Year: target.Year(), Month: target.Month()}); day > last.Day() {
		day = last.Day()
	}
	return time.Date(target.Year(), target.Month(), day, 0, 0, 0, 0, time.UTC)
}

func lastDayOf(m engine.DisplayedMonth) time.Time {
	return m.Next().Date().AddDate(0, 0, -1)
}
