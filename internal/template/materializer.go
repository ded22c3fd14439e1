package template

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/frontend-incubator/incubator/internal/resolve"
)

// Result records what a materialization created, as slash-separated paths
// relative to the project root in creation order.
type Result struct {
	Files []string
	Dirs  []string
}

// Materializer executes an artifact plan against a project root.
type Materializer interface {
	// Materialize runs every operation of plan in order. It checks ctx
	// before each operation and stops at the first error. All destinations
	// are validated before anything is written.
	Materialize(ctx context.Context, root string, plan *resolve.Plan) (*Result, error)
}

// MaterializerOption configures a Materializer.
type MaterializerOption func(*materializer)

// WithLogger sets the logger used for per-operation debug output.
func WithLogger(l *slog.Logger) MaterializerOption {
	return func(m *materializer) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithRenderer replaces the renderer used for template operations.
func WithRenderer(r Renderer) MaterializerOption {
	return func(m *materializer) {
		if r != nil {
			m.renderer = r
		}
	}
}

type materializer struct {
	fsys      fs.FS
	renderer  Renderer
	validator Validator
	logger    *slog.Logger
}

// NewMaterializer creates a Materializer reading templates and static
// sources from fsys.
func NewMaterializer(fsys fs.FS, opts ...MaterializerOption) Materializer {
	m := &materializer{
		fsys:      fsys,
		renderer:  NewRenderer(fsys),
		validator: NewValidator(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *materializer) Materialize(ctx context.Context, root string, plan *resolve.Plan) (*Result, error) {
	root = filepath.Clean(root)
	res := &Result{}
	if plan == nil {
		return res, nil
	}

	dests := make([]string, 0, len(plan.Ops))
	for _, op := range plan.Ops {
		dests = append(dests, op.Destination)
	}
	if errs := m.validator.ValidatePaths(root, dests); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrPathTraversal, errs[0])
	}

	w := &writer{root: root, res: res, seen: map[string]bool{}}
	for i, op := range plan.Ops {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		m.logger.Debug("materialize op",
			"index", i,
			"kind", string(op.Kind),
			"destination", op.Destination,
		)
		if err := m.apply(w, op); err != nil {
			return res, fmt.Errorf("%s %s: %w", op.Kind, op.Destination, err)
		}
	}
	return res, nil
}

func (m *materializer) apply(w *writer, op resolve.Op) error {
	switch op.Kind {
	case resolve.KindRenderTemplate:
		data := op.Context
		if data == nil {
			data = &resolve.Context{}
		}
		out, err := m.renderer.Render(op.Source, data)
		if err != nil {
			return err
		}
		if strings.HasSuffix(op.Destination, ".json") {
			if err := m.validator.ValidateJSON(out); err != nil {
				return fmt.Errorf("%w: rendered from %s", err, op.Source)
			}
		}
		return w.write(op.Destination, out)

	case resolve.KindCopyVerbatim:
		return m.copy(w, op.Source, op.Destination)

	case resolve.KindWritePlaceholder, resolve.KindWriteStub:
		return w.write(op.Destination, []byte(op.Text))

	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, op.Kind)
	}
}

// copy copies a single file or, for a directory source, every file under it.
func (m *materializer) copy(w *writer, src, dest string) error {
	info, err := fs.Stat(m.fsys, src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrTemplateNotFound, src)
		}
		return fmt.Errorf("stat source %q: %w", src, err)
	}

	if !info.IsDir() {
		data, err := fs.ReadFile(m.fsys, src)
		if err != nil {
			return fmt.Errorf("read source %q: %w", src, err)
		}
		return w.write(dest, data)
	}

	if err := w.mkdir(dest); err != nil {
		return err
	}
	return fs.WalkDir(m.fsys, src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(p, src), "/")
		if rel == "" {
			return nil
		}
		target := path.Join(dest, rel)
		if d.IsDir() {
			return w.mkdir(target)
		}
		data, err := fs.ReadFile(m.fsys, p)
		if err != nil {
			return fmt.Errorf("read source %q: %w", p, err)
		}
		return w.write(target, data)
	})
}

// writer creates files and directories under root and records them.
type writer struct {
	root string
	res  *Result
	seen map[string]bool
}

func (w *writer) mkdir(rel string) error {
	rel = path.Clean(rel)
	if rel == "." || w.seen[rel] {
		return nil
	}
	if parent := path.Dir(rel); parent != "." {
		if err := w.mkdir(parent); err != nil {
			return err
		}
	}
	abs := filepath.Join(w.root, filepath.FromSlash(rel))
	_, statErr := os.Stat(abs)
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", rel, err)
	}
	w.seen[rel] = true
	if errors.Is(statErr, fs.ErrNotExist) {
		w.res.Dirs = append(w.res.Dirs, rel)
	}
	return nil
}

func (w *writer) write(rel string, data []byte) error {
	rel = path.Clean(rel)
	if err := w.mkdir(path.Dir(rel)); err != nil {
		return err
	}
	abs := filepath.Join(w.root, filepath.FromSlash(rel))
	if err := os.WriteFile(abs, data, 0o644); err != nil {
		return fmt.Errorf("write %q: %w", rel, err)
	}
	w.res.Files = append(w.res.Files, rel)
	return nil
}
