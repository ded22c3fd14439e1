package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/frontend-incubator/incubator/internal/config"
	"github.com/frontend-incubator/incubator/internal/ui"
)

type runCall struct {
	dir  string
	name string
	args []string
}

// fakeRunner records package manager invocations instead of running them.
type fakeRunner struct {
	mu    sync.Mutex
	calls []runCall
	err   error
}

func (r *fakeRunner) Run(_ context.Context, dir, name string, args ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, runCall{dir: dir, name: name, args: slices.Clone(args)})
	return r.err
}

// newTestDeps returns headless, colourless dependencies with a config file
// in a temp dir and a fake runner.
func newTestDeps(t *testing.T) (*Dependencies, *fakeRunner) {
	t.Helper()
	hm := ui.NewHeadlessManager()
	hm.ForceHeadless(true)
	theme := ui.NewTheme()
	theme.NoColor = true
	runner := &fakeRunner{}
	return &Dependencies{
		Config:     config.NewManager(filepath.Join(t.TempDir(), "config.yaml")),
		UserConfig: config.NewDefaultConfig(),
		Theme:      theme,
		Headless:   hm,
		Runner:     runner,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, runner
}

// executeCommand runs the root command with args against d and returns the
// combined output.
func executeCommand(t *testing.T, d *Dependencies, args ...string) (string, error) {
	t.Helper()
	prev := GetDeps()
	SetDeps(d)
	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		SetDeps(prev)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag in the tree to its default, since cobra
// keeps parsed values between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
