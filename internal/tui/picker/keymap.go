package picker

import "github.com/charmbracelet/bubbles/key"

// keymap defines the keyboard interactions for the range picker.
type keymap struct {
	up, down, left, right,
	prevMonth, nextMonth,
	confirm, abort,
	quit, showHelp key.Binding
}

func newKeymap() keymap {
	return keymap{
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "week back"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "week forward"),
		),
		left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous day"),
		),
		right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day"),
		),
		prevMonth: key.NewBinding(
			key.WithKeys("pgup", "["),
			key.WithHelp("pgup/[", "previous month"),
		),
		nextMonth: key.NewBinding(
			key.WithKeys("pgdown", "]"),
			key.WithHelp("pgdn/]", "next month"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "pick date"),
		),
		abort: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel selection"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.confirm, k.abort, k.quit, k.showHelp}
}

// FullHelp implements help.KeyMap.
func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.left, k.right},
		{k.prevMonth, k.nextMonth},
		{k.confirm, k.abort, k.quit},
	}
}
