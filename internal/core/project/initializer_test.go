package project

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/frontend-incubator/incubator/internal/install"
	"github.com/frontend-incubator/incubator/internal/resolve"
	"github.com/frontend-incubator/incubator/internal/settings"
	"github.com/frontend-incubator/incubator/internal/template"
	"github.com/frontend-incubator/incubator/pkg/models"
)

type fakeInstaller struct {
	calls []*resolve.Manifest
	dirs  []string
	err   error
}

func (f *fakeInstaller) Install(_ context.Context, dir string, m *resolve.Manifest) error {
	f.calls = append(f.calls, m)
	f.dirs = append(f.dirs, dir)
	return f.err
}

func newTestInitializer(t *testing.T, inst Installer) Initializer {
	t.Helper()
	fsys, err := template.EmbeddedTemplates()
	if err != nil {
		t.Fatalf("EmbeddedTemplates error: %v", err)
	}
	return NewInitializer(template.NewMaterializer(fsys), inst, nil)
}

func testOptions(t *testing.T, root string) InitOptions {
	t.Helper()
	s, err := settings.LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault error: %v", err)
	}
	return InitOptions{
		ProjectRoot: root,
		Settings:    s,
		Answers: models.AnswerSet{
			ProjectName:          "my-site",
			ProjectVersion:       "1.0.0",
			UseLoosePreset:       true,
			SelectedDependencies: []models.DependencyID{models.DependencyJQuery},
			UseITCSS:             true,
		},
	}
}

func TestInitializerInit(t *testing.T) {
	t.Run("full_pipeline", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "site")
		inst := &fakeInstaller{}

		result, err := newTestInitializer(t, inst).Init(context.Background(), testOptions(t, root))
		if err != nil {
			t.Fatalf("Init error: %v", err)
		}

		for _, f := range []string{"package.json", "config.json", "README.md", "gulpfile.js", "src/asset/javascript/site.js"} {
			if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(f))); err != nil {
				t.Errorf("expected %s to exist: %v", f, err)
			}
			if !slices.Contains(result.CreatedFiles, f) {
				t.Errorf("CreatedFiles does not list %s", f)
			}
		}
		if !result.Installed {
			t.Error("Installed = false, want true")
		}
		if len(inst.calls) != 1 || inst.dirs[0] != root {
			t.Fatalf("installer calls = %d dirs = %v", len(inst.calls), inst.dirs)
		}
		if !slices.Equal(inst.calls[0].Runtime, []string{"jquery"}) {
			t.Errorf("installed runtime = %v", inst.calls[0].Runtime)
		}
		if len(result.Warnings) != 0 {
			t.Errorf("unexpected warnings: %v", result.Warnings)
		}
	})

	t.Run("skip_install", func(t *testing.T) {
		root := t.TempDir()
		inst := &fakeInstaller{}
		opts := testOptions(t, root)
		opts.SkipInstall = true

		result, err := newTestInitializer(t, inst).Init(context.Background(), opts)
		if err != nil {
			t.Fatalf("Init error: %v", err)
		}
		if len(inst.calls) != 0 {
			t.Error("installer ran with SkipInstall set")
		}
		if result.Installed {
			t.Error("Installed = true, want false")
		}
		if !slices.Contains(result.Warnings, SkipInstallWarning) {
			t.Errorf("Warnings = %v, want the skip-install warning", result.Warnings)
		}
	})

	t.Run("existing_project_refused", func(t *testing.T) {
		root := t.TempDir()
		if err := os.WriteFile(filepath.Join(root, "config.json"), []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}

		_, err := newTestInitializer(t, &fakeInstaller{}).Init(context.Background(), testOptions(t, root))
		if !errors.Is(err, ErrProjectExists) {
			t.Fatalf("expected ErrProjectExists, got: %v", err)
		}
		if _, statErr := os.Stat(filepath.Join(root, "package.json")); !os.IsNotExist(statErr) {
			t.Error("files were written into an existing project")
		}
	})

	t.Run("force_overwrites", func(t *testing.T) {
		root := t.TempDir()
		if err := os.WriteFile(filepath.Join(root, "config.json"), []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
		opts := testOptions(t, root)
		opts.Force = true

		if _, err := newTestInitializer(t, &fakeInstaller{}).Init(context.Background(), opts); err != nil {
			t.Fatalf("Init error: %v", err)
		}
		data, _ := os.ReadFile(filepath.Join(root, "config.json"))
		if string(data) == "{}" {
			t.Error("config.json was not regenerated")
		}
	})

	t.Run("unresolved_role_writes_nothing", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "site")
		opts := testOptions(t, root)
		opts.Settings = settings.New(map[string]any{}, nil)
		inst := &fakeInstaller{}

		_, err := newTestInitializer(t, inst).Init(context.Background(), opts)
		if !errors.Is(err, resolve.ErrUnresolvedPathRole) {
			t.Fatalf("expected ErrUnresolvedPathRole, got: %v", err)
		}
		if _, statErr := os.Stat(root); !os.IsNotExist(statErr) {
			t.Error("project root was created despite a resolution failure")
		}
		if len(inst.calls) != 0 {
			t.Error("installer ran after a resolution failure")
		}
	})

	t.Run("install_failure_surfaces", func(t *testing.T) {
		inst := &fakeInstaller{err: &install.ExitError{Command: "npm", Code: 1}}

		result, err := newTestInitializer(t, inst).Init(context.Background(), testOptions(t, t.TempDir()))
		var exitErr *install.ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("expected *install.ExitError, got: %v", err)
		}
		if result == nil || len(result.CreatedFiles) == 0 {
			t.Error("result does not report files written before the failure")
		}
	})

	t.Run("root_is_a_file", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "file")
		if err := os.WriteFile(root, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := newTestInitializer(t, &fakeInstaller{}).Init(context.Background(), testOptions(t, root))
		if !errors.Is(err, ErrInvalidRoot) {
			t.Errorf("expected ErrInvalidRoot, got: %v", err)
		}
	})

	t.Run("cancelled_context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := newTestInitializer(t, &fakeInstaller{}).Init(ctx, testOptions(t, t.TempDir()))
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got: %v", err)
		}
	})
}

func TestInspect(t *testing.T) {
	t.Run("missing_root", func(t *testing.T) {
		st, err := Inspect(filepath.Join(t.TempDir(), "nope"))
		if err != nil {
			t.Fatalf("Inspect error: %v", err)
		}
		if st.Exists || st.Initialized() {
			t.Errorf("state = %+v, want nothing", st)
		}
	})

	t.Run("empty_root", func(t *testing.T) {
		st, err := Inspect(t.TempDir())
		if err != nil {
			t.Fatalf("Inspect error: %v", err)
		}
		if !st.Exists || !st.Empty {
			t.Errorf("state = %+v, want existing and empty", st)
		}
	})

	t.Run("package_json_only", func(t *testing.T) {
		root := t.TempDir()
		if err := os.WriteFile(filepath.Join(root, "package.json"), []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
		st, err := Inspect(root)
		if err != nil {
			t.Fatalf("Inspect error: %v", err)
		}
		if st.Initialized() {
			t.Error("Initialized() = true without config.json")
		}
		if !slices.Equal(st.Markers, []string{"package.json"}) {
			t.Errorf("Markers = %v", st.Markers)
		}
	})

	t.Run("config_json_directory_ignored", func(t *testing.T) {
		root := t.TempDir()
		if err := os.Mkdir(filepath.Join(root, "config.json"), 0o755); err != nil {
			t.Fatal(err)
		}
		st, err := Inspect(root)
		if err != nil {
			t.Fatalf("Inspect error: %v", err)
		}
		if st.Initialized() {
			t.Error("a directory named config.json counted as a project")
		}
	})
}
