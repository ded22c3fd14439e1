package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/frontend-incubator/incubator/internal/settings"
)

func TestSettingsValidate(t *testing.T) {
	t.Run("built_in", func(t *testing.T) {
		d, _ := newTestDeps(t)
		out, err := executeCommand(t, d, "settings", "validate")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "is valid") {
			t.Errorf("output = %q", out)
		}
	})

	t.Run("invalid_file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.yaml")
		if err := os.WriteFile(path, []byte("paths: 3\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		d, _ := newTestDeps(t)
		_, err := executeCommand(t, d, "settings", "validate", path)
		if !errors.Is(err, settings.ErrConfigLoad) {
			t.Fatalf("expected ErrConfigLoad, got %v", err)
		}
	})

	t.Run("missing_file", func(t *testing.T) {
		d, _ := newTestDeps(t)
		_, err := executeCommand(t, d, "settings", "validate", filepath.Join(t.TempDir(), "absent.yaml"))
		if !errors.Is(err, settings.ErrConfigLoad) {
			t.Fatalf("expected ErrConfigLoad, got %v", err)
		}
	})
}

func TestSettingsShow(t *testing.T) {
	d, _ := newTestDeps(t)
	out, err := executeCommand(t, d, "settings", "show")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, role := range settings.Roles() {
		if !strings.Contains(out, string(role)) {
			t.Errorf("output should list role %s", role)
		}
	}
	if !strings.Contains(out, "dependencies") {
		t.Error("output should list default dependencies")
	}
}

func TestChoicesCmd(t *testing.T) {
	d, _ := newTestDeps(t)
	out, err := executeCommand(t, d, "choices")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"fastclick", "fastdom", "jquery", "(default)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q:\n%s", want, out)
		}
	}
}
