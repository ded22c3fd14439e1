package project

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/frontend-incubator/incubator/internal/resolve"
	"github.com/frontend-incubator/incubator/internal/settings"
	"github.com/frontend-incubator/incubator/internal/template"
	"github.com/frontend-incubator/incubator/pkg/models"
)

// SkipInstallWarning is reported when a project is generated without its
// dependencies. The generated build relies on them.
const SkipInstallWarning = "dependency install skipped: the project will not build until `npm install` has run"

// InitOptions configures the project initialization.
type InitOptions struct {
	ProjectRoot string             // Directory to generate into. Created if missing.
	Settings    *settings.Settings // Path table and default dev dependencies.
	Answers     models.AnswerSet   // Normalized user answers.
	SkipInstall bool               // If true, do not run the package manager.
	Force       bool               // If true, generate over an existing project.
}

// InitResult summarizes the outcome of project initialization.
type InitResult struct {
	Root         string            // Cleaned project root.
	CreatedDirs  []string          // Directories that were created, relative to Root.
	CreatedFiles []string          // Files that were written, relative to Root.
	Plan         *resolve.Plan     // The executed artifact plan.
	Manifest     *resolve.Manifest // The dependency manifest.
	Installed    bool              // Whether the install phase ran to completion.
	Warnings     []string          // Non-fatal warnings during initialization.
}

// Installer installs a dependency manifest into a project directory.
type Installer interface {
	Install(ctx context.Context, dir string, m *resolve.Manifest) error
}

// Initializer handles project scaffolding and setup.
type Initializer interface {
	// Init generates a project with the given options. Phases run in order
	// (resolve, materialize, install) and the first error aborts the rest.
	Init(ctx context.Context, opts InitOptions) (*InitResult, error)
}

type projectInitializer struct {
	materializer template.Materializer
	installer    Installer // May be nil when installs are always skipped.
	validator    template.Validator
	logger       *slog.Logger
}

// NewInitializer creates an Initializer with the given dependencies.
func NewInitializer(m template.Materializer, inst Installer, logger *slog.Logger) Initializer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &projectInitializer{
		materializer: m,
		installer:    inst,
		validator:    template.NewValidator(),
		logger:       logger,
	}
}

func (i *projectInitializer) Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	root := filepath.Clean(opts.ProjectRoot)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	i.logger.Info("initializing project",
		"root", root,
		"name", opts.Answers.ProjectName,
		"version", opts.Answers.ProjectVersion,
	)

	state, err := Inspect(root)
	if err != nil {
		return nil, err
	}
	if state.Initialized() && !opts.Force {
		return nil, fmt.Errorf("%w: %s", ErrProjectExists, filepath.Join(root, "config.json"))
	}
	if state.Exists && !state.Empty {
		i.logger.Debug("generating into non-empty directory", "markers", state.Markers)
	}

	// Step 1: Resolve the plan. Nothing touches disk before this succeeds.
	plan, manifest, err := resolve.Resolve(opts.Settings, opts.Answers)
	if err != nil {
		return nil, fmt.Errorf("resolve project layout: %w", err)
	}
	i.logger.Debug("plan resolved",
		"ops", len(plan.Ops),
		"devDependencies", len(manifest.Dev),
		"runtimeDependencies", len(manifest.Runtime),
	)

	result := &InitResult{Root: root, Plan: plan, Manifest: manifest}

	// Step 2: Materialize.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create project root: %w", err)
	}
	res, err := i.materializer.Materialize(ctx, root, plan)
	if res != nil {
		result.CreatedDirs = res.Dirs
		result.CreatedFiles = res.Files
	}
	if err != nil {
		return result, fmt.Errorf("materialize project: %w", err)
	}
	if report := i.validator.ValidateDeployment(root, result.CreatedFiles); !report.Valid {
		for _, e := range report.Errors {
			result.Warnings = append(result.Warnings, fmt.Sprintf("generated file %s", e))
			i.logger.Warn("generated file failed validation", "path", e.Path, "reason", e.Reason)
		}
	}
	i.logger.Info("project files written",
		"dirs", len(result.CreatedDirs),
		"files", len(result.CreatedFiles),
	)

	// Step 3: Install.
	if opts.SkipInstall || i.installer == nil {
		result.Warnings = append(result.Warnings, SkipInstallWarning)
		i.logger.Warn("dependency install skipped")
		return result, nil
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}
	if err := i.installer.Install(ctx, root, manifest); err != nil {
		return result, fmt.Errorf("install dependencies: %w", err)
	}
	result.Installed = true

	i.logger.Info("project initialized", "root", root)
	return result, nil
}
