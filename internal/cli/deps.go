// Package cli provides the Cobra command tree and dependency wiring for the
// incubator CLI. This file defines the Dependencies struct (composition
// root) that wires the domain packages together.
package cli

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/frontend-incubator/incubator/internal/config"
	"github.com/frontend-incubator/incubator/internal/core/project"
	"github.com/frontend-incubator/incubator/internal/install"
	"github.com/frontend-incubator/incubator/internal/settings"
	"github.com/frontend-incubator/incubator/internal/template"
	"github.com/frontend-incubator/incubator/internal/ui"
)

// Dependencies holds the services used by CLI commands. Concrete types are
// only instantiated here; commands go through these fields.
type Dependencies struct {
	Config     *config.Manager
	UserConfig *config.Config
	Theme      *ui.Theme
	Headless   *ui.HeadlessManager
	Runner     install.Runner
	Logger     *slog.Logger
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// InitDependencies creates the default dependencies. The user config is
// loaded later, once flags are parsed.
func InitDependencies() {
	deps = &Dependencies{
		Config:     config.NewManager(""),
		UserConfig: config.NewDefaultConfig(),
		Theme:      ui.NewTheme(),
		Headless:   ui.NewHeadlessManager(),
		Runner:     &install.ExecRunner{},
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// LoadSettings loads the settings document at path, or the built-in
// document when path is empty.
func (d *Dependencies) LoadSettings(path string) (*settings.Settings, error) {
	if path == "" {
		path = d.UserConfig.Settings
	}
	if path == "" {
		return settings.LoadDefault()
	}
	d.Logger.Debug("loading settings", "path", path)
	return settings.Load(path)
}

// TemplateFS returns the template set in dir, or the embedded set when dir
// is empty.
func (d *Dependencies) TemplateFS(dir string) (fs.FS, error) {
	if dir == "" {
		dir = d.UserConfig.Templates
	}
	if dir == "" {
		return template.EmbeddedTemplates()
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("open template directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("open template directory: %s is not a directory", dir)
	}
	d.Logger.Debug("using template directory", "path", dir)
	return os.DirFS(dir), nil
}

// NewInitializer wires a project initializer over the template set.
// progress, if non-nil, observes the dependency install.
func (d *Dependencies) NewInitializer(templates fs.FS, progress func(done, total int)) project.Initializer {
	m := template.NewMaterializer(templates, template.WithLogger(d.Logger))
	inst := install.New(d.Runner,
		install.WithNPM(d.UserConfig.NPM),
		install.WithLogger(d.Logger),
		install.WithProgress(progress),
	)
	return project.NewInitializer(m, inst, d.Logger)
}

// newLogger builds the CLI logger: a text handler on w at level, or debug
// when verbose is set.
func newLogger(w io.Writer, level string, verbose bool) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "info":
		l = slog.LevelInfo
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelWarn
	}
	if verbose {
		l = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}
