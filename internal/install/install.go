// Package install runs the package manager against a scaffolded project.
package install

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/frontend-incubator/incubator/internal/resolve"
)

// DefaultNPM is the package manager executable used when none is configured.
const DefaultNPM = "npm"

// ErrCommandNotFound indicates the package manager is not on PATH.
var ErrCommandNotFound = errors.New("install: command not found")

// ExitError reports a package manager invocation that exited non-zero.
type ExitError struct {
	Command string
	Args    []string
	Code    int
	// Stderr holds the tail of the command's error output.
	Stderr string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s %s: exit status %d", e.Command, strings.Join(e.Args, " "), e.Code)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// Runner executes an external command in dir.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExecRunner runs commands with os/exec, streaming their output.
type ExecRunner struct {
	// Stdout and Stderr default to os.Stdout and os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// maxStderrTail bounds the error output kept for ExitError.
const maxStderrTail = 2048

func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	bin, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrCommandNotFound, name)
	}

	stdout := r.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	var errBuf bytes.Buffer
	cmd.Stdout = stdout
	cmd.Stderr = io.MultiWriter(stderr, &errBuf)

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			tail := strings.TrimSpace(errBuf.String())
			if len(tail) > maxStderrTail {
				tail = tail[len(tail)-maxStderrTail:]
			}
			return &ExitError{Command: name, Args: args, Code: exitErr.ExitCode(), Stderr: tail}
		}
		return fmt.Errorf("run %s: %w", name, err)
	}
	return nil
}

// Installer installs a dependency manifest with npm.
type Installer struct {
	runner   Runner
	npm      string
	logger   *slog.Logger
	progress func(done, total int)
}

// Option configures an Installer.
type Option func(*Installer)

// WithNPM overrides the package manager executable.
func WithNPM(name string) Option {
	return func(i *Installer) {
		if name != "" {
			i.npm = name
		}
	}
}

// WithLogger sets the installer's logger.
func WithLogger(l *slog.Logger) Option {
	return func(i *Installer) {
		if l != nil {
			i.logger = l
		}
	}
}

// WithProgress registers fn to observe the run: it is called with done=0
// before the first npm invocation and again after each one succeeds.
func WithProgress(fn func(done, total int)) Option {
	return func(i *Installer) {
		i.progress = fn
	}
}

// New creates an Installer. A nil runner uses an ExecRunner on the
// process's standard streams.
func New(r Runner, opts ...Option) *Installer {
	if r == nil {
		r = &ExecRunner{}
	}
	i := &Installer{
		runner: r,
		npm:    DefaultNPM,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Args returns the npm arguments for one install request.
func Args(req resolve.InstallRequest) []string {
	flag := "--save"
	if req.Scope == resolve.ScopeDev {
		flag = "--save-dev"
	}
	return append([]string{"install", flag}, req.Packages...)
}

// Install runs one npm invocation per non-empty manifest list, dev
// dependencies first. The first failure stops the run; nothing is retried.
func (i *Installer) Install(ctx context.Context, dir string, m *resolve.Manifest) error {
	if m == nil {
		return nil
	}
	reqs := m.Requests()
	i.report(0, len(reqs))
	for n, req := range reqs {
		if err := ctx.Err(); err != nil {
			return err
		}
		args := Args(req)
		i.logger.Info("installing dependencies",
			"scope", string(req.Scope),
			"count", len(req.Packages),
		)
		i.logger.Debug("npm invocation", "command", i.npm, "args", slices.Clone(args))
		if err := i.runner.Run(ctx, dir, i.npm, args...); err != nil {
			return fmt.Errorf("install %s dependencies: %w", req.Scope, err)
		}
		i.report(n+1, len(reqs))
	}
	return nil
}

func (i *Installer) report(done, total int) {
	if i.progress != nil && total > 0 {
		i.progress(done, total)
	}
}
