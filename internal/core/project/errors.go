// Package project scaffolds a front-end project: it resolves the artifact
// plan, materializes it under the project root and installs dependencies.
package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrProjectExists indicates the project root already holds a generated
	// config.json.
	ErrProjectExists = errors.New("project already initialized")

	// ErrInvalidRoot indicates the given project root path is not a usable
	// directory.
	ErrInvalidRoot = errors.New("invalid project root path")
)
