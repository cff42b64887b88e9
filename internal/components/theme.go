package components

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// ColourSet groups a base colour with the foreground that reads on top of it
// and a muted variant.
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
}

// Palette describes the semantic colour slots used by components.
type Palette struct {
	Primary ColourSet
	Accent  ColourSet
	Surface ColourSet
	Neutral ColourSet
	Danger  ColourSet
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// BorderVariant selects a border from the theme's BorderSet.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
	BorderVariantDouble
)

// CalendarStyles holds one style per resolved cell state plus the grid
// chrome. Cell styles are applied in priority order by the Calendar
// component: disabled first, then cursor, range endpoints, in-range band,
// hover, today, and finally the plain day style.
type CalendarStyles struct {
	Day           lipgloss.Style
	OutsideDay    lipgloss.Style
	Disabled      lipgloss.Style
	Today         lipgloss.Style
	RangeStart    lipgloss.Style
	RangeEnd      lipgloss.Style
	InRange       lipgloss.Style
	Hovered       lipgloss.Style
	Cursor        lipgloss.Style
	WeekdayHeader lipgloss.Style
	MonthTitle    lipgloss.Style
}

// Theme is the global styling theme for components.
type Theme struct {
	Palette  Palette
	Borders  BorderSet
	Calendar CalendarStyles
}

// ThemeManager coordinates concurrent access to a Theme instance.
type ThemeManager struct {
	mu    sync.RWMutex
	theme Theme
}

// NewThemeManager allocates a ThemeManager holding the provided theme.
func NewThemeManager(theme Theme) *ThemeManager {
	return &ThemeManager{theme: theme}
}

// SetTheme replaces the managed theme.
func (m *ThemeManager) SetTheme(theme Theme) {
	m.mu.Lock()
	m.theme = theme
	m.mu.Unlock()
}

// Theme returns the managed theme.
func (m *ThemeManager) Theme() Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.theme
}

var defaultThemeManager = NewThemeManager(DefaultTheme())

// SetTheme sets the global theme.
func SetTheme(theme Theme) {
	defaultThemeManager.SetTheme(theme)
}

// GetTheme returns the current global theme.
func GetTheme() Theme {
	return defaultThemeManager.Theme()
}

func defaultBorders() BorderSet {
	return BorderSet{
		None:    lipgloss.HiddenBorder(),
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Double:  lipgloss.DoubleBorder(),
	}
}

func calendarStylesFor(p Palette) CalendarStyles {
	return CalendarStyles{
		Day:        lipgloss.NewStyle().Foreground(p.Surface.OnBase),
		OutsideDay: lipgloss.NewStyle().Foreground(p.Neutral.Muted).Faint(true),
		Disabled:   lipgloss.NewStyle().Foreground(p.Neutral.Muted).Faint(true),
		Today: lipgloss.NewStyle().
			Foreground(p.Accent.Base).
			Bold(true).
			Underline(true),
		RangeStart: lipgloss.NewStyle().
			Background(p.Primary.Base).
			Foreground(p.Primary.OnBase).
			Bold(true),
		RangeEnd: lipgloss.NewStyle().
			Background(p.Primary.Base).
			Foreground(p.Primary.OnBase).
			Bold(true),
		InRange: lipgloss.NewStyle().
			Background(p.Primary.Muted).
			Foreground(p.Primary.OnBase),
		Hovered: lipgloss.NewStyle().
			Foreground(p.Accent.Base).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(p.Accent.Base).
			Foreground(p.Accent.OnBase).
			Bold(true),
		WeekdayHeader: lipgloss.NewStyle().
			Foreground(p.Neutral.Base).
			Bold(true),
		MonthTitle: lipgloss.NewStyle().
			Foreground(p.Primary.Base).
			Bold(true),
	}
}

// DefaultTheme returns the adaptive default theme.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary: ColourSet{
			Base:   ac("#3b82f6", "#60a5fa"),
			OnBase: ac("#f8fafc", "#0b1120"),
			Muted:  ac("#bfdbfe", "#1e3a8a"),
		},
		Accent: ColourSet{
			Base:   ac("#f59e0b", "#fbbf24"),
			OnBase: ac("#1f2937", "#111827"),
			Muted:  ac("#fde68a", "#78350f"),
		},
		Surface: ColourSet{
			Base:   ac("#ffffff", "#0f172a"),
			OnBase: ac("#0f172a", "#e2e8f0"),
			Muted:  ac("#f1f5f9", "#1e293b"),
		},
		Neutral: ColourSet{
			Base:   ac("#64748b", "#94a3b8"),
			OnBase: ac("#f8fafc", "#0f172a"),
			Muted:  ac("#cbd5e1", "#475569"),
		},
		Danger: ColourSet{
			Base:   ac("#dc2626", "#f87171"),
			OnBase: ac("#fef2f2", "#1f0a0a"),
			Muted:  ac("#fecaca", "#7f1d1d"),
		},
	}

	return Theme{
		Palette:  palette,
		Borders:  defaultBorders(),
		Calendar: calendarStylesFor(palette),
	}
}

// DarkTheme returns a theme pinned to the dark palette variants.
func DarkTheme() Theme {
	c := func(_, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: dark, Dark: dark}
	}
	return themeWith(c)
}

// LightTheme returns a theme pinned to the light palette variants.
func LightTheme() Theme {
	c := func(light, _ string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: light}
	}
	return themeWith(c)
}

func themeWith(pick func(light, dark string) lipgloss.AdaptiveColor) Theme {
	palette := Palette{
		Primary: ColourSet{
			Base:   pick("#3b82f6", "#60a5fa"),
			OnBase: pick("#f8fafc", "#0b1120"),
			Muted:  pick("#bfdbfe", "#1e3a8a"),
		},
		Accent: ColourSet{
			Base:   pick("#f59e0b", "#fbbf24"),
			OnBase: pick("#1f2937", "#111827"),
			Muted:  pick("#fde68a", "#78350f"),
		},
		Surface: ColourSet{
			Base:   pick("#ffffff", "#0f172a"),
			OnBase: pick("#0f172a", "#e2e8f0"),
			Muted:  pick("#f1f5f9", "#1e293b"),
		},
		Neutral: ColourSet{
			Base:   pick("#64748b", "#94a3b8"),
			OnBase: pick("#f8fafc", "#0f172a"),
			Muted:  pick("#cbd5e1", "#475569"),
		},
		Danger: ColourSet{
			Base:   pick("#dc2626", "#f87171"),
			OnBase: pick("#fef2f2", "#1f0a0a"),
			Muted:  pick("#fecaca", "#7f1d1d"),
		},
	}

	return Theme{
		Palette:  palette,
		Borders:  defaultBorders(),
		Calendar: calendarStylesFor(palette),
	}
}

// ThemeByName resolves a theme from its configuration name. Unknown names
// fall back to the default theme.
func ThemeByName(name string) Theme {
	switch name {
	case "dark":
		return DarkTheme()
	case "light":
		return LightTheme()
	default:
		return DefaultTheme()
	}
}

// BorderStyle returns the named border from the current theme.
func BorderStyle(variant BorderVariant) lipgloss.Border {
	theme := GetTheme()
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	default:
		return theme.Borders.None
	}
}

// StyleApplier applies a themed modification to a lipgloss.Style.
type StyleApplier interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc implements StyleApplier for a plain function.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

func (fn StyleFunc) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	return fn(base, theme)
}

// Style applies a series of modifiers against the current theme.
func Style(base lipgloss.Style, appliers ...StyleApplier) lipgloss.Style {
	theme := GetTheme()
	for _, applier := range appliers {
		base = applier.Apply(base, theme)
	}
	return base
}

// PaletteSlot selects a colour set from a palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteAccent  PaletteSlot = func(p Palette) ColourSet { return p.Accent }
	PaletteSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
	PaletteDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
)

// Background fills the style background from a palette slot.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		set := slot(theme.Palette)
		return base.Background(set.Base).Foreground(set.OnBase)
	}
}

// Foreground sets the style foreground from a palette slot.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// Border applies the named border variant.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(borderForVariant(theme, variant))
	}
}

func borderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	default:
		return theme.Borders.None
	}
}
