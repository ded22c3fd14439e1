package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// markerFiles identify a directory that already holds a generated project.
// The first entry alone decides whether initialization must be forced.
var markerFiles = []string{"config.json", "package.json", "gulpfile.js"}

// State describes what already exists at a project root.
type State struct {
	Exists  bool     // The root directory exists.
	Empty   bool     // The root exists and has no entries.
	Markers []string // Marker files found, in markerFiles order.
}

// Initialized reports whether the root holds a generated config.json.
func (s State) Initialized() bool {
	return len(s.Markers) > 0 && s.Markers[0] == markerFiles[0]
}

// Inspect examines root without modifying it. A missing root is not an
// error; a root that is not a directory is.
func Inspect(root string) (State, error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if errors.Is(err, fs.ErrNotExist) {
		return State{}, nil
	}
	if err != nil {
		return State{}, fmt.Errorf("%w: %s", ErrInvalidRoot, root)
	}
	if !info.IsDir() {
		return State{}, fmt.Errorf("%w: %s is not a directory", ErrInvalidRoot, root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return State{}, fmt.Errorf("read project root: %w", err)
	}
	st := State{Exists: true, Empty: len(entries) == 0}
	for _, name := range markerFiles {
		if fileExists(filepath.Join(root, name)) {
			st.Markers = append(st.Markers, name)
		}
	}
	return st, nil
}

// fileExists checks if a path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
