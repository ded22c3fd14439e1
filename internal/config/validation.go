package config

import (
	"regexp"
	"slices"
	"strings"
)

// dynamicTokenPattern matches unexpanded variables in path values.
var dynamicTokenPattern = regexp.MustCompile(`\$\{[^}]+\}|\{\{[^}]+\}\}`)

// Validate checks the configuration for correctness.
func Validate(cfg *Config) error {
	var errs []ValidationError

	if !slices.Contains(LogLevels(), cfg.LogLevel) {
		errs = append(errs, ValidationError{
			Field:   KeyLogLevel,
			Message: "must be one of: " + strings.Join(LogLevels(), ", "),
			Value:   cfg.LogLevel,
		})
	}
	if strings.TrimSpace(cfg.NPM) == "" {
		errs = append(errs, ValidationError{Field: KeyNPM, Message: "must not be empty"})
	}
	for field, val := range map[string]string{KeySettings: cfg.Settings, KeyTemplates: cfg.Templates} {
		if dynamicTokenPattern.MatchString(val) {
			errs = append(errs, ValidationError{Field: field, Message: "contains an unexpanded token", Value: val})
		}
	}

	if len(errs) > 0 {
		slices.SortFunc(errs, func(a, b ValidationError) int { return strings.Compare(a.Field, b.Field) })
		return &ValidationErrors{Errors: errs}
	}
	return nil
}
