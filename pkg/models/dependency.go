package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDependency is returned when a dependency identifier is not part of
// the supported choice set.
var ErrUnknownDependency = errors.New("models: unknown dependency")

// DependencyID identifies an optional runtime library a project can select.
type DependencyID string

const (
	// DependencyFastclick removes click delays on browsers with touch UIs.
	DependencyFastclick DependencyID = "fastclick"

	// DependencyFastdom batches DOM read/write operations.
	DependencyFastdom DependencyID = "fastdom"

	// DependencyJQuery simplifies client-side scripting of HTML (selected by default).
	DependencyJQuery DependencyID = "jquery"
)

// DependencyChoice describes one entry of the dependency choice set.
type DependencyChoice struct {
	ID          DependencyID
	Label       string
	Description string
	Default     bool
}

var dependencyChoices = []DependencyChoice{
	{
		ID:          DependencyFastclick,
		Label:       "fastclick",
		Description: "Polyfill to remove click delays on browsers with touch UIs",
	},
	{
		ID:          DependencyFastdom,
		Label:       "fastdom",
		Description: "Eliminates layout thrashing by batching DOM read/write operations",
	},
	{
		ID:          DependencyJQuery,
		Label:       "jQuery",
		Description: "A cross-platform JavaScript library designed to simplify the client-side scripting of HTML",
		Default:     true,
	},
}

// DependencyChoices returns the supported choice set in presentation order.
func DependencyChoices() []DependencyChoice {
	out := make([]DependencyChoice, len(dependencyChoices))
	copy(out, dependencyChoices)
	return out
}

// DefaultDependencies returns the identifiers that are pre-selected when the
// user is asked for a selection.
func DefaultDependencies() []DependencyID {
	var ids []DependencyID
	for _, c := range dependencyChoices {
		if c.Default {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// ParseDependencyID converts a raw identifier into a DependencyID.
// Matching is case-insensitive ("jQuery" and "jquery" are the same library).
func ParseDependencyID(s string) (DependencyID, error) {
	id := DependencyID(strings.ToLower(strings.TrimSpace(s)))
	if !id.IsValid() {
		return "", fmt.Errorf("%w: %q (supported: %s)", ErrUnknownDependency, s, strings.Join(dependencyIDStrings(), ", "))
	}
	return id, nil
}

// IsValid reports whether the identifier belongs to the choice set.
func (d DependencyID) IsValid() bool {
	switch d {
	case DependencyFastclick, DependencyFastdom, DependencyJQuery:
		return true
	}
	return false
}

// Description returns the human-readable description of the dependency, or
// an empty string for identifiers outside the choice set.
func (d DependencyID) Description() string {
	for _, c := range dependencyChoices {
		if c.ID == d {
			return c.Description
		}
	}
	return ""
}

// String returns the npm package name of the dependency.
func (d DependencyID) String() string {
	return string(d)
}

func dependencyIDStrings() []string {
	out := make([]string, len(dependencyChoices))
	for i, c := range dependencyChoices {
		out[i] = string(c.ID)
	}
	return out
}
