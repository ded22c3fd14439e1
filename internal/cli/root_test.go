package cli

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/frontend-incubator/incubator/pkg/version"
)

func TestRootCmd_Subcommands(t *testing.T) {
	want := []string{"new", "plan", "settings", "choices", "config"}
	for _, name := range want {
		found := false
		for _, cmd := range rootCmd.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("%s should be registered as a subcommand of root", name)
		}
	}
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	for _, name := range []string{"config", "settings", "templates", "log-level", "verbose"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("root command should have --%s flag", name)
		}
	}
}

func TestRootCmd_Version(t *testing.T) {
	d, _ := newTestDeps(t)
	out, err := executeCommand(t, d, "--version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, version.GetVersion()) {
		t.Errorf("version output %q should contain %q", out, version.GetVersion())
	}
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	d, _ := newTestDeps(t)
	t.Setenv("INCUBATOR_LOG_LEVEL", "loud")
	if _, err := executeCommand(t, d, "choices"); err == nil {
		t.Fatal("expected error for invalid log level")
	}
}

func TestNewLogger(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name    string
		level   string
		verbose bool
		enabled slog.Level
		muted   slog.Level
	}{
		{"default_warn", "", false, slog.LevelWarn, slog.LevelInfo},
		{"info", "info", false, slog.LevelInfo, slog.LevelDebug},
		{"error", "ERROR", false, slog.LevelError, slog.LevelWarn},
		{"verbose_overrides", "error", true, slog.LevelDebug, slog.LevelDebug - 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLogger(io.Discard, tt.level, tt.verbose)
			if !l.Enabled(ctx, tt.enabled) {
				t.Errorf("level %v should be enabled", tt.enabled)
			}
			if l.Enabled(ctx, tt.muted) {
				t.Errorf("level %v should be disabled", tt.muted)
			}
		})
	}
}

func TestRenderKeyValueLines(t *testing.T) {
	got := renderKeyValueLines([]kvPair{{"Files", "3 created"}, {"Directories", "2 created"}})
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "Files") || !strings.Contains(lines[0], "3 created") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if strings.Index(lines[0], "3 created") != strings.Index(lines[1], "2 created") {
		t.Errorf("values are not aligned:\n%s", got)
	}
}

func TestRenderSuccessCard(t *testing.T) {
	got := renderSuccessCard("Project created", "body line")
	for _, want := range []string{"Project created", "body line"} {
		if !strings.Contains(got, want) {
			t.Errorf("card should contain %q:\n%s", want, got)
		}
	}
}
