package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	rangecalerrors "github.com/rangecal/rangecal/pkg/errors"
)

// ValidateConfig performs structural and cross-field validation on a
// configuration.
//
// An inverted min/max window deliberately passes: it is a caller precondition
// violation the engine handles by disabling every cell, and failing the load
// would hide that self-correcting behavior. An inverted default range is
// rejected, because the engine can never have committed one.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return rangecalerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if !cfg.DefaultRange.IsZero() {
		r := cfg.Range()
		if r.IsComplete() && r.End.Before(r.Start) {
			return rangecalerrors.NewValidationError(
				"default_range",
				fmt.Sprintf("start %s is after end %s", cfg.DefaultRange.Start, cfg.DefaultRange.End),
				nil,
			)
		}
	}

	return nil
}

func convertValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return rangecalerrors.NewValidationError("config", err.Error(), err)
	}

	first := fieldErrs[0]
	field := strings.TrimPrefix(first.Namespace(), "Config.")
	return rangecalerrors.NewValidationError(fieldName(field), describeTag(first), err)
}

func fieldName(namespace string) string {
	mapped := map[string]string{
		"MinDate":            "min_date",
		"MaxDate":            "max_date",
		"Theme":              "theme",
		"LogLevel":           "log_level",
		"DefaultRange.Start": "default_range.start",
		"DefaultRange.End":   "default_range.end",
	}
	if name, ok := mapped[namespace]; ok {
		return name
	}
	return strings.ToLower(namespace)
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "date":
		return fmt.Sprintf("%q is not a date in %s form", fe.Value(), DateFormat)
	case "oneof":
		return fmt.Sprintf("%q is not one of: %s", fe.Value(), fe.Param())
	case "required_with":
		return "both range bounds must be set together"
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
