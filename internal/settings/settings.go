package settings

import (
	"path"
	"slices"
	"strings"
)

// Settings is the immutable, loaded settings document.
type Settings struct {
	paths        map[string]any
	dependencies []string
	source       string
}

// New builds Settings from an in-memory path tree and default dependency list.
// The inputs are deep-copied. No structural validation is done; resolution
// reports any missing role.
func New(paths map[string]any, dependencies []string) *Settings {
	return &Settings{
		paths:        copyTree(paths),
		dependencies: slices.Clone(dependencies),
		source:       "memory",
	}
}

// Source describes where the settings were loaded from.
func (s *Settings) Source() string {
	return s.source
}

// Path returns the relative, slash-separated path mapped to role.
// The second result is false when the role is absent, not a non-empty
// string, or names the project root itself.
func (s *Settings) Path(role Role) (string, bool) {
	var node any = s.paths
	for _, key := range role.keys() {
		m, ok := node.(map[string]any)
		if !ok {
			return "", false
		}
		node, ok = m[key]
		if !ok {
			return "", false
		}
	}
	p, ok := node.(string)
	if !ok || strings.TrimSpace(p) == "" {
		return "", false
	}
	p = path.Clean(strings.ReplaceAll(p, "\\", "/"))
	// The project root itself is not a directory role.
	if p == "." {
		return "", false
	}
	return p, true
}

// MissingRoles returns the roles in Roles() order that have no usable path.
func (s *Settings) MissingRoles() []Role {
	var missing []Role
	for _, r := range Roles() {
		if _, ok := s.Path(r); !ok {
			missing = append(missing, r)
		}
	}
	return missing
}

// Paths returns a deep copy of the full path tree, including keys that are
// not roles.
func (s *Settings) Paths() map[string]any {
	return copyTree(s.paths)
}

// Dependencies returns a copy of the default dependency list.
func (s *Settings) Dependencies() []string {
	return slices.Clone(s.dependencies)
}

func copyTree(in map[string]any) map[string]any {
	if in == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return copyTree(val)
	case []any:
		a := make([]any, len(val))
		for i, e := range val {
			a[i] = copyValue(e)
		}
		return a
	default:
		return val
	}
}
