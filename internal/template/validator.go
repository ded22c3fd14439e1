package template

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PathError describes a destination rejected by ValidatePaths.
type PathError struct {
	Path   string
	Reason string
}

func (e PathError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// Validator checks materialization inputs and outputs.
type Validator interface {
	// ValidateJSON reports ErrInvalidJSON when data is not a JSON document.
	ValidateJSON(data []byte) error

	// ValidatePaths returns one PathError per relative path that is
	// absolute or escapes root.
	ValidatePaths(root string, paths []string) []PathError

	// ValidateDeployment checks that every expected file exists under root
	// and that .json files parse.
	ValidateDeployment(root string, files []string) *Report
}

// Report is the outcome of ValidateDeployment.
type Report struct {
	Valid        bool
	FilesChecked int
	Errors       []PathError
	Warnings     []PathError
}

type validator struct{}

// NewValidator creates a Validator.
func NewValidator() Validator {
	return validator{}
}

func (validator) ValidateJSON(data []byte) error {
	if !json.Valid(data) {
		return ErrInvalidJSON
	}
	return nil
}

func (validator) ValidatePaths(root string, paths []string) []PathError {
	var errs []PathError
	for _, p := range paths {
		if err := validateDestPath(root, p); err != nil {
			errs = append(errs, PathError{Path: p, Reason: err.Error()})
		}
	}
	return errs
}

// validateDestPath ensures a slash-separated relative path stays under root.
func validateDestPath(root, relPath string) error {
	if relPath == "" {
		return fmt.Errorf("%w: empty path", ErrPathTraversal)
	}
	cleaned := filepath.Clean(filepath.FromSlash(relPath))

	if filepath.IsAbs(cleaned) || filepath.VolumeName(cleaned) != "" || strings.HasPrefix(relPath, "/") {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, relPath)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolve project root: %w", err)
	}
	absPath := filepath.Join(absRoot, cleaned)
	if !strings.HasPrefix(absPath, absRoot+string(filepath.Separator)) && absPath != absRoot {
		return fmt.Errorf("%w: %q escapes project root", ErrPathTraversal, relPath)
	}
	return nil
}

func (v validator) ValidateDeployment(root string, files []string) *Report {
	report := &Report{Valid: true}
	for _, f := range files {
		report.FilesChecked++
		abs := filepath.Join(root, filepath.FromSlash(f))
		info, err := os.Stat(abs)
		if err != nil {
			report.Errors = append(report.Errors, PathError{Path: f, Reason: "missing"})
			continue
		}
		if info.IsDir() {
			report.Warnings = append(report.Warnings, PathError{Path: f, Reason: "is a directory"})
			continue
		}
		if !strings.HasSuffix(f, ".json") {
			continue
		}
		data, err := os.ReadFile(abs)
		if err != nil {
			report.Errors = append(report.Errors, PathError{Path: f, Reason: err.Error()})
			continue
		}
		if err := v.ValidateJSON(data); err != nil {
			report.Errors = append(report.Errors, PathError{Path: f, Reason: err.Error()})
		}
	}
	report.Valid = len(report.Errors) == 0
	return report
}
