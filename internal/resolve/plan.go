package resolve

import (
	"github.com/frontend-incubator/incubator/internal/settings"
	"github.com/frontend-incubator/incubator/pkg/models"
)

// OpKind is the kind of an artifact operation.
type OpKind string

const (
	// KindRenderTemplate renders a template with a context into a file.
	KindRenderTemplate OpKind = "render_template"
	// KindCopyVerbatim copies a static file or directory unchanged.
	KindCopyVerbatim OpKind = "copy_verbatim"
	// KindWritePlaceholder writes an empty-marker file into a directory
	// that intentionally has no content yet.
	KindWritePlaceholder OpKind = "write_placeholder"
	// KindWriteStub writes a short, fixed starter file.
	KindWriteStub OpKind = "write_stub"
)

// Section groups the operations of one part of the project layout.
type Section string

const (
	SectionRoot           Section = "root"
	SectionScript         Section = "script"
	SectionImage          Section = "image"
	SectionFont           Section = "font"
	SectionStylesheet     Section = "stylesheet"
	SectionPrototype      Section = "prototype"
	SectionPatternLibrary Section = "pattern_library"
)

// Context is the data handed to the template renderer. JSON keys match the
// names the templates were designed around.
type Context struct {
	Name         string               `json:"name,omitempty" yaml:"name,omitempty"`
	Version      string               `json:"version,omitempty" yaml:"version,omitempty"`
	Paths        map[string]any       `json:"paths,omitempty" yaml:"paths,omitempty"`
	ESVersion    bool                 `json:"esVersion" yaml:"esVersion"`
	FTP          *models.RemoteDeploy `json:"ftp,omitempty" yaml:"ftp,omitempty"`
	Dependencies []string             `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

// Op is a single artifact operation. Which fields are set depends on Kind:
//
//	KindRenderTemplate    Source, Destination, Context
//	KindCopyVerbatim      Source, Destination
//	KindWritePlaceholder  Destination, Text
//	KindWriteStub         Destination, Text
//
// Role is set only on the operation that terminates a directory role.
type Op struct {
	Kind        OpKind        `json:"kind" yaml:"kind"`
	Section     Section       `json:"section" yaml:"section"`
	Role        settings.Role `json:"role,omitempty" yaml:"role,omitempty"`
	Source      string        `json:"source,omitempty" yaml:"source,omitempty"`
	Destination string        `json:"destination" yaml:"destination"`
	Context     *Context      `json:"context,omitempty" yaml:"context,omitempty"`
	Text        string        `json:"text,omitempty" yaml:"text,omitempty"`
}

// Plan is the ordered list of operations that materialize a project.
type Plan struct {
	Ops []Op `json:"ops" yaml:"ops"`
}

func (p *Plan) add(op Op) {
	p.Ops = append(p.Ops, op)
}

// Section returns the operations belonging to s, in plan order.
func (p *Plan) Section(s Section) []Op {
	var out []Op
	for _, op := range p.Ops {
		if op.Section == s {
			out = append(out, op)
		}
	}
	return out
}

// ForRole returns the operations that terminate role. A well-formed plan
// returns exactly one.
func (p *Plan) ForRole(role settings.Role) []Op {
	var out []Op
	for _, op := range p.Ops {
		if op.Role == role {
			out = append(out, op)
		}
	}
	return out
}

// Count returns the number of operations of the given kind.
func (p *Plan) Count(kind OpKind) int {
	n := 0
	for _, op := range p.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}
