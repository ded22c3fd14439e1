package template

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func TestRendererRender(t *testing.T) {
	t.Run("successful_render", func(t *testing.T) {
		fs := fstest.MapFS{
			"README.md.tmpl": &fstest.MapFile{
				Data: []byte("# {{.Name}}\n\nVersion: {{.Version}}\n"),
			},
		}
		r := NewRenderer(fs)

		data := map[string]string{
			"Name":    "my-site",
			"Version": "1.0.0",
		}

		result, err := r.Render("README.md.tmpl", data)
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}

		expected := "# my-site\n\nVersion: 1.0.0\n"
		if string(result) != expected {
			t.Errorf("Render result = %q, want %q", string(result), expected)
		}
	})

	t.Run("missing_key_strict_mode", func(t *testing.T) {
		fs := fstest.MapFS{
			"test.tmpl": &fstest.MapFile{
				Data: []byte("Hello {{.Name}}, version {{.Version}}"),
			},
		}
		r := NewRenderer(fs)

		_, err := r.Render("test.tmpl", map[string]string{"Name": "site"})
		if !errors.Is(err, ErrMissingTemplateKey) {
			t.Errorf("expected ErrMissingTemplateKey, got: %v", err)
		}
	})

	t.Run("nonexistent_template", func(t *testing.T) {
		r := NewRenderer(fstest.MapFS{})

		_, err := r.Render("nonexistent.tmpl", nil)
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("expected ErrTemplateNotFound, got: %v", err)
		}
	})

	t.Run("parse_error", func(t *testing.T) {
		fs := fstest.MapFS{
			"broken.tmpl": &fstest.MapFile{Data: []byte("{{if .Name}}unterminated")},
		}
		_, err := NewRenderer(fs).Render("broken.tmpl", map[string]string{"Name": "x"})
		if err == nil {
			t.Fatal("expected parse error")
		}
		if errors.Is(err, ErrMissingTemplateKey) {
			t.Errorf("parse error reported as missing key: %v", err)
		}
	})

	t.Run("token_like_data_rendered_as_given", func(t *testing.T) {
		fs := fstest.MapFS{
			"name.tmpl": &fstest.MapFile{Data: []byte("name: {{.Name}} pass: {{.Pass}}")},
		}
		got, err := NewRenderer(fs).Render("name.tmpl", map[string]string{"Name": "{{.Injected}}", "Pass": "a<%= b %>"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "name: {{.Injected}} pass: a<%= b %>"; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("legacy_token_inside_branch", func(t *testing.T) {
		fs := fstest.MapFS{
			"cond.tmpl": &fstest.MapFile{Data: []byte(`{{if .On}}on{{else}}<%= off %>{{end}}`)},
		}
		_, err := NewRenderer(fs).Render("cond.tmpl", map[string]bool{"On": true})
		if !errors.Is(err, ErrUnexpandedToken) {
			t.Errorf("expected ErrUnexpandedToken, got: %v", err)
		}
	})

	t.Run("legacy_token_in_template", func(t *testing.T) {
		fs := fstest.MapFS{
			"old.tmpl": &fstest.MapFile{Data: []byte(`{"name": "<%= name %>"}`)},
		}
		_, err := NewRenderer(fs).Render("old.tmpl", nil)
		if !errors.Is(err, ErrUnexpandedToken) {
			t.Errorf("expected ErrUnexpandedToken, got: %v", err)
		}
	})

	t.Run("template_with_range", func(t *testing.T) {
		fs := fstest.MapFS{
			"list.tmpl": &fstest.MapFile{
				Data: []byte("{{range .Items}}- {{.}}\n{{end}}"),
			},
		}
		data := map[string][]string{"Items": {"fastclick", "fastdom", "jquery"}}

		result, err := NewRenderer(fs).Render("list.tmpl", data)
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		expected := "- fastclick\n- fastdom\n- jquery\n"
		if string(result) != expected {
			t.Errorf("result = %q, want %q", string(result), expected)
		}
	})
}

func TestJsonEscapeTemplateFunc(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain_unchanged", "ftp.example.com", "ftp.example.com"},
		{"backslashes_escaped", `p\ss`, `p\\ss`},
		{"double_quotes_escaped", `pa"ss`, `pa\"ss`},
		{"tab_and_newline_escaped", "a\tb\nc", `a\tb\nc`},
		{"empty_string", "", ""},
	}

	fn := templateFuncMap["jsonEscape"].(func(string) string)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fn(tt.input); got != tt.want {
				t.Errorf("jsonEscape(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestToJSONInTemplate(t *testing.T) {
	fs := fstest.MapFS{
		"config.json.tmpl": &fstest.MapFile{
			Data: []byte("{\n  \"paths\": {{indent 2 (toJSON .Paths)}},\n  \"pass\": \"{{jsonEscape .Pass}}\"\n}\n"),
		},
	}
	data := map[string]any{
		"Paths": map[string]any{"src": map[string]any{"b": "2", "a": "1"}},
		"Pass":  `se"cret\`,
	}

	first, err := NewRenderer(fs).Render("config.json.tmpl", data)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	second, _ := NewRenderer(fs).Render("config.json.tmpl", data)
	if string(first) != string(second) {
		t.Error("toJSON output is not stable")
	}
	if strings.Index(string(first), `"a"`) > strings.Index(string(first), `"b"`) {
		t.Errorf("map keys not sorted: %s", first)
	}

	var parsed struct {
		Paths map[string]map[string]string `json:"paths"`
		Pass  string                       `json:"pass"`
	}
	if err := json.Unmarshal(first, &parsed); err != nil {
		t.Fatalf("rendered output is not valid JSON: %v\noutput: %s", err, first)
	}
	if parsed.Paths["src"]["a"] != "1" || parsed.Pass != `se"cret\` {
		t.Errorf("parsed = %+v", parsed)
	}
}

func TestUnexpandedTokenDetection(t *testing.T) {
	tests := []struct {
		name    string
		content string
		match   bool
	}{
		{"go_template_dot", "{{.Name}}", true},
		{"go_template_trim", "{{- .Name -}}", true},
		{"double_brace", "{{VAR}}", true},
		{"ejs_output", "<%= name %>", true},
		{"ejs_unescaped", "<%- name %>", true},
		{"normal_text", "hello world", false},
		{"scss_interpolation", "#{$gutter}", false},
		{"handlebars_block", "{{#each menu}}", false},
		{"shell_variable", "$HOME", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := unexpandedTokenPattern.MatchString(tt.content); got != tt.match {
				t.Errorf("pattern match for %q = %v, want %v", tt.content, got, tt.match)
			}
		})
	}
}
