package cli

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/frontend-incubator/incubator/internal/config"
)

func TestConfigSetGet(t *testing.T) {
	d, _ := newTestDeps(t)

	if _, err := executeCommand(t, d, "config", "set", "npm", "pnpm"); err != nil {
		t.Fatalf("set: %v", err)
	}
	out, err := executeCommand(t, d, "config", "get", "npm")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if strings.TrimSpace(out) != "pnpm" {
		t.Errorf("get npm = %q, want %q", out, "pnpm")
	}

	out, err = executeCommand(t, d, "config", "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "pnpm") || !strings.Contains(out, "(built-in)") {
		t.Errorf("list output:\n%s", out)
	}
}

func TestConfigSet_Invalid(t *testing.T) {
	d, _ := newTestDeps(t)

	_, err := executeCommand(t, d, "config", "set", "log_level", "loud")
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
	_, err = executeCommand(t, d, "config", "get", "colour")
	if !errors.Is(err, config.ErrUnknownKey) {
		t.Errorf("expected ErrUnknownKey, got %v", err)
	}
}

func TestConfigFlag(t *testing.T) {
	d, _ := newTestDeps(t)
	path := filepath.Join(t.TempDir(), "alt.yaml")

	if _, err := executeCommand(t, d, "--config", path, "config", "set", "npm", "yarn"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if d.Config.Path() != path {
		t.Errorf("config path = %q, want %q", d.Config.Path(), path)
	}
}
