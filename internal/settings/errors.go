// Package settings loads the static settings document that drives project
// scaffolding: the path-role table and the default dependency list.
// A loaded Settings value is immutable; every accessor returns a copy.
package settings

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConfigLoad indicates the settings document is missing or malformed.
var ErrConfigLoad = errors.New("settings: cannot load settings document")

// Issue is a single structural problem found in a settings document.
type Issue struct {
	Path    string // Instance location, e.g. "/paths/src/asset"
	Message string
	Keyword string // Failing schema keyword, e.g. "required"
}

// String formats the issue as "path: message".
func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// ConfigLoadError reports why a settings document could not be loaded.
// Either Err (I/O or parse failure) or Issues (schema violations) is set.
type ConfigLoadError struct {
	Source string
	Issues []Issue
	Err    error
}

// Error implements the error interface.
func (e *ConfigLoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("settings: load %s: %v", e.Source, e.Err)
	}
	msgs := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		msgs[i] = issue.String()
	}
	return fmt.Sprintf("settings: %s failed validation with %d issue(s): %s",
		e.Source, len(e.Issues), strings.Join(msgs, "; "))
}

// Unwrap returns the underlying I/O or parse error, if any.
func (e *ConfigLoadError) Unwrap() error {
	return e.Err
}

// Is makes every ConfigLoadError match ErrConfigLoad.
func (e *ConfigLoadError) Is(target error) bool {
	return target == ErrConfigLoad
}
