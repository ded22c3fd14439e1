package template

import (
	"embed"
	"io/fs"
)

//go:embed all:templates
var embedded embed.FS

// EmbeddedTemplates returns the built-in template set rooted at its top
// level, so that plan sources resolve directly.
func EmbeddedTemplates() (fs.FS, error) {
	return fs.Sub(embedded, "templates")
}
