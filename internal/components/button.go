package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ButtonVariant selects the button's colour treatment.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantMuted
)

// ButtonOptions defines the configuration options for a button.
type ButtonOptions struct {
	Variant  ButtonVariant
	Disabled bool
	Focus    bool
}

// Button is a small clickable control, used for the calendar's month
// navigation.
type Button struct {
	label   string
	options ButtonOptions
}

// NewButton creates a button with the given label and options.
func NewButton(label string, opts ButtonOptions) *Button {
	return &Button{label: label, options: opts}
}

// WithDisabled sets the button disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.options.Disabled = disabled
	return b
}

// WithFocus sets the button focus state.
func (b *Button) WithFocus(focus bool) *Button {
	b.options.Focus = focus
	return b
}

// View renders the button.
func (b *Button) View() string {
	return b.buildStyle().Render(b.label)
}

func (b *Button) buildStyle() lipgloss.Style {
	var appliers []StyleApplier
	switch b.options.Variant {
	case ButtonVariantMuted:
		appliers = []StyleApplier{Foreground(PaletteNeutral)}
	default:
		appliers = []StyleApplier{Background(PalettePrimary)}
	}
	style := Style(lipgloss.NewStyle().Padding(0, 1), appliers...)

	if b.options.Disabled {
		style = style.Faint(true).UnsetBackground()
		style = Style(style, Foreground(PaletteNeutral))
	} else if b.options.Focus {
		style = style.Bold(true)
	}

	return style
}

// ButtonGroup lays out buttons horizontally.
type ButtonGroup struct {
	buttons []*Button
	spacing int
}

// NewButtonGroup creates a group from the given buttons.
func NewButtonGroup(buttons ...*Button) *ButtonGroup {
	return &ButtonGroup{buttons: buttons, spacing: 1}
}

// WithSpacing sets the gap between buttons.
func (bg *ButtonGroup) WithSpacing(spacing int) *ButtonGroup {
	bg.spacing = spacing
	return bg
}

// View renders the group.
func (bg *ButtonGroup) View() string {
	if len(bg.buttons) == 0 {
		return ""
	}
	views := make([]string, 0, len(bg.buttons))
	for _, button := range bg.buttons {
		views = append(views, button.View())
	}
	return strings.Join(views, strings.Repeat(" ", bg.spacing))
}
