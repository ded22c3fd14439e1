package template

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"regexp"
	"slices"
	"strings"
	"text/template"
	"text/template/parse"
)

// templateFuncMap provides custom functions available in all templates.
var templateFuncMap = template.FuncMap{
	// toJSON encodes v as indented JSON. Map keys come out sorted, so the
	// output is stable for a given value.
	"toJSON": func(v any) (string, error) {
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b), nil
	},
	// jsonEscape escapes a string for embedding inside a JSON string literal.
	"jsonEscape": func(s string) string {
		b, err := json.Marshal(s)
		if err != nil {
			return s
		}
		return string(b[1 : len(b)-1])
	},
	"join": func(elems []string, sep string) string {
		return strings.Join(elems, sep)
	},
	// indent prefixes every line after the first with n spaces, for nesting
	// toJSON output inside a hand-written document.
	"indent": func(n int, s string) string {
		return strings.ReplaceAll(s, "\n", "\n"+strings.Repeat(" ", n))
	},
	"has": func(elems []string, s string) bool {
		return slices.Contains(elems, s)
	},
}

// unexpandedTokenPattern detects placeholder syntax left in the literal text
// of a template: Go template actions and the embedded-JS tags of the legacy
// template set.
var unexpandedTokenPattern = regexp.MustCompile(`\{\{-?\s*\.?[A-Za-z_][A-Za-z0-9_.]*\s*-?\}\}|<%[=-]?\s*[A-Za-z_][A-Za-z0-9_.]*\s*%>`)

// Renderer renders Go text/template files with strict mode enabled.
type Renderer interface {
	// Render parses the named template and executes it with data. Returns
	// ErrMissingTemplateKey if a key is missing and ErrUnexpandedToken if
	// the template text holds tokens that rendering cannot expand. Data
	// values are written as given and never scanned.
	Render(templateName string, data any) ([]byte, error)
}

type renderer struct {
	fsys fs.FS
}

// NewRenderer creates a Renderer backed by the given filesystem.
func NewRenderer(fsys fs.FS) Renderer {
	return &renderer{fsys: fsys}
}

// Render parses and executes a template with missingkey=error.
func (r *renderer) Render(templateName string, data any) ([]byte, error) {
	content, err := fs.ReadFile(r.fsys, templateName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateName)
	}

	tmpl, err := template.New(templateName).
		Funcs(templateFuncMap).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("template parse %q: %w", templateName, err)
	}

	if tok := findUnexpandedToken(tmpl); tok != "" {
		return nil, fmt.Errorf("%w: found %q in %s", ErrUnexpandedToken, tok, templateName)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingTemplateKey, err)
	}

	return buf.Bytes(), nil
}

// findUnexpandedToken returns the first placeholder found in the literal
// text of tmpl and its associated templates, or "".
func findUnexpandedToken(tmpl *template.Template) string {
	for _, t := range tmpl.Templates() {
		if t.Tree == nil {
			continue
		}
		if tok := scanTextNodes(t.Tree.Root); tok != "" {
			return tok
		}
	}
	return ""
}

func scanTextNodes(node parse.Node) string {
	switch n := node.(type) {
	case *parse.TextNode:
		return string(unexpandedTokenPattern.Find(n.Text))
	case *parse.ListNode:
		if n == nil {
			return ""
		}
		for _, child := range n.Nodes {
			if tok := scanTextNodes(child); tok != "" {
				return tok
			}
		}
	case *parse.IfNode:
		return scanBranch(&n.BranchNode)
	case *parse.RangeNode:
		return scanBranch(&n.BranchNode)
	case *parse.WithNode:
		return scanBranch(&n.BranchNode)
	}
	return ""
}

func scanBranch(b *parse.BranchNode) string {
	if tok := scanTextNodes(b.List); tok != "" {
		return tok
	}
	if b.ElseList != nil {
		return scanTextNodes(b.ElseList)
	}
	return ""
}
