package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Spinner is an indeterminate activity indicator.
type Spinner interface {
	SetTitle(title string)
	Stop()
}

// ProgressBar is a determinate activity indicator.
type ProgressBar interface {
	Increment(n int)
	Done()
}

// Progress creates activity indicators suited to the terminal.
type Progress interface {
	Spinner(title string) Spinner
	Start(title string, total int) ProgressBar
}

type progressImpl struct {
	theme    *Theme
	headless *HeadlessManager
	writer   io.Writer
}

// NewProgress creates a Progress writing to w. A nil w means os.Stderr,
// which keeps indicators out of piped stdout.
func NewProgress(theme *Theme, hm *HeadlessManager, w io.Writer) Progress {
	if w == nil {
		w = os.Stderr
	}
	return &progressImpl{theme: theme, headless: hm, writer: w}
}

func (p *progressImpl) animated() bool {
	return !p.headless.IsHeadless() && !p.theme.NoColor
}

// Spinner starts an animated spinner, or prints the title once when
// headless.
func (p *progressImpl) Spinner(title string) Spinner {
	if !p.animated() {
		return newHeadlessSpinner(title, p.writer)
	}
	return newInteractiveSpinner(p.theme, title, p.writer)
}

// Start creates a progress bar with the given total. Headless bars print
// one line per increment.
func (p *progressImpl) Start(title string, total int) ProgressBar {
	if !p.animated() {
		return &headlessProgressBar{title: title, total: total, writer: p.writer}
	}
	return newInteractiveProgressBar(p.theme, title, total, p.writer)
}

type spinnerTitleMsg string

type spinnerStopMsg struct{}

type spinnerModel struct {
	spinner spinner.Model
	title   string
	done    bool
}

func newSpinnerModel(theme *Theme, title string) spinnerModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	if !theme.NoColor {
		s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Primary))
	}
	return spinnerModel{spinner: s, title: title}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTitleMsg:
		m.title = string(msg)
		return m, nil
	case spinnerStopMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.title + "\n"
}

// interactiveSpinner runs a bubbletea program in the background. It does
// not read the terminal, so Ctrl+C still reaches the process and cancels
// the running command.
type interactiveSpinner struct {
	program *tea.Program
	done    chan struct{}
	once    sync.Once
}

func newInteractiveSpinner(theme *Theme, title string, w io.Writer) *interactiveSpinner {
	p := tea.NewProgram(newSpinnerModel(theme, title),
		tea.WithOutput(w),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)
	s := &interactiveSpinner{program: p, done: make(chan struct{})}
	go func() {
		defer close(s.done)
		_, _ = p.Run()
	}()
	return s
}

func (s *interactiveSpinner) SetTitle(title string) {
	s.program.Send(spinnerTitleMsg(title))
}

func (s *interactiveSpinner) Stop() {
	s.once.Do(func() {
		s.program.Send(spinnerStopMsg{})
		<-s.done
	})
}

type progressIncrMsg int

type progressDoneMsg struct{}

type progressModel struct {
	bar     progress.Model
	title   string
	current int
	total   int
	done    bool
}

func newProgressModel(theme *Theme, title string, total int) progressModel {
	bar := progress.New(
		progress.WithGradient(theme.Colors.Primary, theme.Colors.Secondary),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)
	return progressModel{bar: bar, title: title, total: total}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressIncrMsg:
		m.current = min(m.current+int(msg), m.total)
		return m, nil
	case progressDoneMsg:
		m.current = m.total
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		return ""
	}
	pct := 0.0
	if m.total > 0 {
		pct = float64(m.current) / float64(m.total)
	}
	return m.bar.ViewAs(pct) + fmt.Sprintf(" [%d/%d] %s\n", m.current, m.total, m.title)
}

type interactiveProgressBar struct {
	program *tea.Program
	done    chan struct{}
	once    sync.Once
}

func newInteractiveProgressBar(theme *Theme, title string, total int, w io.Writer) *interactiveProgressBar {
	p := tea.NewProgram(newProgressModel(theme, title, total),
		tea.WithOutput(w),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)
	b := &interactiveProgressBar{program: p, done: make(chan struct{})}
	go func() {
		defer close(b.done)
		_, _ = p.Run()
	}()
	return b
}

func (b *interactiveProgressBar) Increment(n int) {
	b.program.Send(progressIncrMsg(n))
}

func (b *interactiveProgressBar) Done() {
	b.once.Do(func() {
		b.program.Send(progressDoneMsg{})
		<-b.done
	})
}

// headlessProgressBar writes plain log lines.
type headlessProgressBar struct {
	title   string
	total   int
	current int
	writer  io.Writer
	done    bool
}

func (b *headlessProgressBar) Increment(n int) {
	b.current = min(b.current+n, b.total)
}

// Done prints the final count once.
func (b *headlessProgressBar) Done() {
	if b.done {
		return
	}
	b.done = true
	b.current = b.total
	_, _ = fmt.Fprintf(b.writer, "[%d/%d] %s\n", b.current, b.total, b.title)
}

// headlessSpinner prints each title as a log line.
type headlessSpinner struct {
	writer io.Writer
}

func newHeadlessSpinner(title string, w io.Writer) *headlessSpinner {
	_, _ = fmt.Fprintf(w, "%s\n", title)
	return &headlessSpinner{writer: w}
}

func (s *headlessSpinner) SetTitle(title string) {
	_, _ = fmt.Fprintf(s.writer, "%s\n", title)
}

func (s *headlessSpinner) Stop() {}
