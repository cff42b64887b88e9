// Package picker hosts the interactive bubbletea wrapper around the
// selection engine. The keyboard cursor doubles as the pointer: moving it
// feeds hover events into the engine so the live range preview follows it,
// and enter feeds a click.
package picker

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rangecal/rangecal/internal/engine"
)

// Model is the bubbletea model for the range picker.
type Model struct {
	eng    *engine.Engine
	cursor time.Time
	keys   keymap
	help   help.Model

	committed *engine.DateRange
	quitting  bool

	width  int
	height int
}

// New creates a picker model over an engine. The cursor starts on the
// committed range's start when one is set, otherwise on the first day of the
// left displayed month.
func New(eng *engine.Engine) Model {
	cursor := eng.Value().Start
	left, _ := eng.Months()
	if cursor.IsZero() || !left.Contains(cursor) {
		cursor = left.Date()
	}

	return Model{
		eng:    eng,
		cursor: cursor,
		keys:   newKeymap(),
		help:   help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Committed returns the range committed during the session, or nil when the
// user quit without completing one.
func (m Model) Committed() *engine.DateRange {
	return m.committed
}

// Engine exposes the underlying engine, mainly for tests.
func (m Model) Engine() *engine.Engine {
	return m.eng
}

// Cursor returns the current cursor date.
func (m Model) Cursor() time.Time {
	return m.cursor
}
