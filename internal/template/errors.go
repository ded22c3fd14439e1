// Package template renders the built-in project templates and materializes
// an artifact plan onto disk.
package template

import "errors"

// Sentinel errors for the template package.
var (
	// ErrTemplateNotFound indicates the requested template does not exist in
	// the template set.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrMissingTemplateKey indicates a template referenced a key that the
	// render context does not provide.
	ErrMissingTemplateKey = errors.New("template: missing key")

	// ErrUnexpandedToken indicates rendered output still contains a
	// placeholder token.
	ErrUnexpandedToken = errors.New("template: unexpanded token in output")

	// ErrPathTraversal indicates a destination resolves outside the project
	// root.
	ErrPathTraversal = errors.New("template: path traversal detected")

	// ErrInvalidJSON indicates a rendered .json artifact does not parse.
	ErrInvalidJSON = errors.New("template: invalid JSON")

	// ErrUnknownOp indicates a plan operation of a kind the materializer
	// cannot execute.
	ErrUnknownOp = errors.New("template: unknown operation kind")
)
