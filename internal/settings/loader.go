package settings

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.json
var defaultDocument []byte

// maxDocumentSize bounds the settings file read from disk.
const maxDocumentSize = 1 << 20

// Load reads, parses and validates the settings document at path. JSON and
// YAML are both accepted. Any failure is returned as a *ConfigLoadError.
func Load(path string) (*Settings, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &ConfigLoadError{Source: path, Err: err}
	}
	if info.IsDir() {
		return nil, &ConfigLoadError{Source: path, Err: fmt.Errorf("is a directory")}
	}
	if info.Size() > maxDocumentSize {
		return nil, &ConfigLoadError{Source: path, Err: fmt.Errorf("file exceeds %d bytes", maxDocumentSize)}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigLoadError{Source: path, Err: err}
	}
	return Parse(path, data)
}

// LoadDefault returns the settings document compiled into the binary.
func LoadDefault() (*Settings, error) {
	return Parse("built-in settings", defaultDocument)
}

// DefaultDocument returns a copy of the built-in settings document.
func DefaultDocument() []byte {
	out := make([]byte, len(defaultDocument))
	copy(out, defaultDocument)
	return out
}

// Parse decodes and validates a settings document held in memory. source is
// only used in error messages.
func Parse(source string, data []byte) (*Settings, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ConfigLoadError{Source: source, Err: fmt.Errorf("parse: %w", err)}
	}
	if doc == nil {
		return nil, &ConfigLoadError{Source: source, Err: errors.New("document is empty")}
	}

	doc = normalize(doc)

	issues, err := validate(doc)
	if err != nil {
		return nil, &ConfigLoadError{Source: source, Err: err}
	}
	if len(issues) > 0 {
		return nil, &ConfigLoadError{Source: source, Issues: issues}
	}

	root := doc.(map[string]any)
	paths, _ := root["paths"].(map[string]any)

	var deps []string
	if raw, ok := root["dependencies"].([]any); ok {
		deps = make([]string, 0, len(raw))
		for _, d := range raw {
			deps = append(deps, d.(string))
		}
	}

	s := New(paths, deps)
	s.source = source
	return s, nil
}

// normalize converts YAML-decoded values into JSON-compatible types.
// yaml.v3 may produce map[any]any for mappings with non-string keys.
func normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(val))
		for k, e := range val {
			m[k] = normalize(e)
		}
		return m
	case map[any]any:
		m := make(map[string]any, len(val))
		for k, e := range val {
			m[fmt.Sprint(k)] = normalize(e)
		}
		return m
	case []any:
		a := make([]any, len(val))
		for i, e := range val {
			a[i] = normalize(e)
		}
		return a
	default:
		return val
	}
}
