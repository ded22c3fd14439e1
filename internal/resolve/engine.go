package resolve

import (
	"path"

	"github.com/frontend-incubator/incubator/internal/settings"
	"github.com/frontend-incubator/incubator/pkg/models"
)

// Template and static source identifiers, relative to the template set.
const (
	TemplatePackageJSON = "package.json.tmpl"
	TemplateConfig      = "config.json.tmpl"
	TemplateReadme      = "README.md.tmpl"
	TemplateSiteScript  = "site.js.tmpl"
	SourceITCSS         = "itcss.scss"
)

// Placeholder file written into directories that have no content yet.
const (
	KeepFile = ".keep"
	KeepText = "remove this file when you've added content to this folder"
)

// StaticFiles are the editor, VCS and tooling files copied to the project
// root unchanged.
var StaticFiles = []string{
	".editorconfig",
	".gitattributes",
	".gitignore",
	".jshintrc",
	"gulpfile.js",
	"tasks.json",
}

// Layer is one level of the ITCSS stylesheet architecture.
type Layer struct {
	Name    string
	Comment string
}

// Layers returns the seven ITCSS layers from lowest to highest specificity.
// The master stylesheet imports them in this order.
func Layers() []Layer {
	return []Layer{
		{"settings", "// import all settings here"},
		{"tools", "// import all tools here"},
		{"generic", "// import all generic styles here"},
		{"base", "// import all base styles here"},
		{"components", "// import all component styles here"},
		{"theme", "// import all theme styles here"},
		{"trumps", "// import all trumps here"},
	}
}

// Resolve computes the artifact plan and dependency manifest for a project.
// It performs no I/O and returns identical results for identical inputs.
// If any path role is missing from s, it returns *UnresolvedPathRoleError and
// no plan.
func Resolve(s *settings.Settings, a models.AnswerSet) (*Plan, *Manifest, error) {
	if s == nil {
		s = settings.New(nil, nil)
	}
	if missing := s.MissingRoles(); len(missing) > 0 {
		return nil, nil, &UnresolvedPathRoleError{Roles: missing}
	}
	dir := func(r settings.Role) string {
		p, _ := s.Path(r)
		return p
	}

	plan := &Plan{}

	// Root metadata.
	plan.add(Op{
		Kind:        KindRenderTemplate,
		Section:     SectionRoot,
		Source:      TemplatePackageJSON,
		Destination: "package.json",
		Context:     &Context{Name: a.ProjectName, Version: a.ProjectVersion},
	})
	ftp := a.RemoteCredentials()
	plan.add(Op{
		Kind:        KindRenderTemplate,
		Section:     SectionRoot,
		Source:      TemplateConfig,
		Destination: "config.json",
		Context:     &Context{Paths: s.Paths(), ESVersion: a.UseLoosePreset, FTP: &ftp},
	})
	plan.add(Op{
		Kind:        KindRenderTemplate,
		Section:     SectionRoot,
		Source:      TemplateReadme,
		Destination: "README.md",
		Context:     &Context{Name: a.ProjectName},
	})
	for _, f := range StaticFiles {
		plan.add(Op{Kind: KindCopyVerbatim, Section: SectionRoot, Source: f, Destination: f})
	}

	// Scripts: the entry script only when there is something to wire up.
	js := dir(settings.RoleScript)
	if deps := a.DependencyNames(); len(deps) > 0 {
		plan.add(Op{
			Kind:        KindRenderTemplate,
			Section:     SectionScript,
			Role:        settings.RoleScript,
			Source:      TemplateSiteScript,
			Destination: path.Join(js, "site.js"),
			Context:     &Context{Dependencies: deps},
		})
	} else {
		plan.add(placeholder(SectionScript, settings.RoleScript, js))
	}

	plan.add(placeholder(SectionImage, settings.RoleImage, dir(settings.RoleImage)))
	plan.add(placeholder(SectionFont, settings.RoleFont, dir(settings.RoleFont)))

	scss := dir(settings.RoleStylesheet)
	if a.UseITCSS {
		for _, l := range Layers() {
			plan.add(Op{
				Kind:        KindWriteStub,
				Section:     SectionStylesheet,
				Destination: path.Join(scss, l.Name, "_"+l.Name+".scss"),
				Text:        l.Comment,
			})
		}
		plan.add(Op{
			Kind:        KindCopyVerbatim,
			Section:     SectionStylesheet,
			Role:        settings.RoleStylesheet,
			Source:      SourceITCSS,
			Destination: path.Join(scss, "style.scss"),
		})
	} else {
		plan.add(placeholder(SectionStylesheet, settings.RoleStylesheet, scss))
	}

	for _, r := range []settings.Role{
		settings.RolePrototypeTemplate,
		settings.RolePrototypeData,
		settings.RolePrototypeWebroot,
	} {
		plan.add(placeholder(SectionPrototype, r, dir(r)))
	}

	// The pattern library is copied as a whole from the same relative root.
	kss := dir(settings.RolePatternLibrary)
	plan.add(Op{
		Kind:        KindCopyVerbatim,
		Section:     SectionPatternLibrary,
		Role:        settings.RolePatternLibrary,
		Source:      kss,
		Destination: kss,
	})

	manifest := buildManifest(s.Dependencies(), a.UseLoosePreset, a.DependencyNames())
	return plan, manifest, nil
}

func placeholder(sec Section, role settings.Role, dir string) Op {
	return Op{
		Kind:        KindWritePlaceholder,
		Section:     sec,
		Role:        role,
		Destination: path.Join(dir, KeepFile),
		Text:        KeepText,
	}
}
