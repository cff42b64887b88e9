package picker

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rangecal/rangecal/internal/components"
)

// View renders the picker plus the key help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	body := components.NewRangePicker(m.eng).WithCursor(m.cursor).View()
	footer := m.help.View(m.keys)

	return lipgloss.JoinVertical(lipgloss.Left, body, "", footer) + "\n"
}
