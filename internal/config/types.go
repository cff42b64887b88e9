package config

import (
	"time"

	"github.com/rangecal/rangecal/internal/engine"
)

// DateFormat is the wire format for every date field.
const DateFormat = "2006-01-02"

// Config is the full rangecal configuration document.
type Config struct {
	// MinDate and MaxDate bound the selectable window. Either may be empty.
	// An inverted window (min after max) is accepted here on purpose: the
	// engine answers it by disabling every cell instead of failing the load.
	MinDate string `yaml:"min_date,omitempty" validate:"omitempty,date"`
	MaxDate string `yaml:"max_date,omitempty" validate:"omitempty,date"`

	// DefaultRange seeds the picker's committed range.
	DefaultRange RangeConfig `yaml:"default_range,omitempty"`

	// Theme selects the colour theme.
	Theme string `yaml:"theme,omitempty" validate:"omitempty,oneof=default dark light"`

	// LogLevel sets the zerolog level for the CLI.
	LogLevel string `yaml:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
}

// RangeConfig is a start/end date pair.
type RangeConfig struct {
	Start string `yaml:"start,omitempty" validate:"required_with=End,omitempty,date"`
	End   string `yaml:"end,omitempty" validate:"required_with=Start,omitempty,date"`
}

// IsZero reports whether neither bound is set.
func (r RangeConfig) IsZero() bool {
	return r.Start == "" && r.End == ""
}

// Constraints converts the configured window into engine constraints.
// Validation guarantees the dates parse; a zero Config yields open bounds.
func (c *Config) Constraints() engine.Constraints {
	return engine.Constraints{
		MinDate: parseDate(c.MinDate),
		MaxDate: parseDate(c.MaxDate),
	}
}

// Range converts the configured default range into an engine range.
func (c *Config) Range() engine.DateRange {
	return engine.NewDateRange(parseDate(c.DefaultRange.Start), parseDate(c.DefaultRange.End))
}

func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
