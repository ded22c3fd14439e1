package ui

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

func TestHeadlessManager(t *testing.T) {
	hm := NewHeadlessManager()

	hm.ForceHeadless(true)
	if !hm.IsHeadless() {
		t.Error("IsHeadless() = false after ForceHeadless(true)")
	}
	hm.ForceHeadless(false)
	if hm.IsHeadless() {
		t.Error("IsHeadless() = true after ForceHeadless(false)")
	}
	hm.ClearForce()
	if hm.forced != nil {
		t.Error("ClearForce did not remove the override")
	}
}

func TestNewThemeNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if !NewTheme().NoColor {
		t.Error("NoColor = false with NO_COLOR set")
	}
}

func headlessProgress(w io.Writer) Progress {
	hm := NewHeadlessManager()
	hm.ForceHeadless(true)
	return NewProgress(NewTheme(), hm, w)
}

func TestHeadlessSpinner(t *testing.T) {
	var buf bytes.Buffer
	s := headlessProgress(&buf).Spinner("Installing dev dependencies")
	s.SetTitle("Installing runtime dependencies")
	s.Stop()
	s.Stop()

	want := "Installing dev dependencies\nInstalling runtime dependencies\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestHeadlessProgressBar(t *testing.T) {
	var buf bytes.Buffer
	b := headlessProgress(&buf).Start("Writing files", 3)
	b.Increment(1)
	b.Increment(5)
	b.Done()
	b.Done()

	if buf.String() != "[3/3] Writing files\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestSpinnerModelUpdate(t *testing.T) {
	m := newSpinnerModel(NewTheme(), "working")

	next, _ := m.Update(spinnerTitleMsg("still working"))
	sm := next.(spinnerModel)
	if !strings.Contains(sm.View(), "still working") {
		t.Errorf("View() = %q, want new title", sm.View())
	}

	next, cmd := sm.Update(spinner.TickMsg{})
	if cmd == nil {
		t.Error("tick produced no follow-up command")
	}
	sm = next.(spinnerModel)

	next, cmd = sm.Update(spinnerStopMsg{})
	if cmd == nil {
		t.Error("stop did not quit the program")
	}
	if next.(spinnerModel).View() != "" {
		t.Error("stopped spinner still renders")
	}
}

func TestProgressModelUpdate(t *testing.T) {
	m := newProgressModel(NewTheme(), "Writing files", 2)

	next, _ := m.Update(progressIncrMsg(5))
	pm := next.(progressModel)
	if pm.current != 2 {
		t.Errorf("current = %d, want clamp to 2", pm.current)
	}
	if !strings.Contains(pm.View(), "[2/2] Writing files") {
		t.Errorf("View() = %q", pm.View())
	}
}

func TestInteractiveSpinnerStop(t *testing.T) {
	theme := NewTheme()
	theme.NoColor = false
	hm := NewHeadlessManager()
	hm.ForceHeadless(false)

	s := NewProgress(theme, hm, io.Discard).Spinner("working")
	s.SetTitle("still working")

	stopped := make(chan struct{})
	go func() {
		s.Stop()
		s.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not return")
	}
}

func TestRenderMarkdown(t *testing.T) {
	theme := NewTheme()
	theme.NoColor = true

	out, err := RenderMarkdown(theme, "# Plan\n\n- `package.json`\n", 0)
	if err != nil {
		t.Fatalf("RenderMarkdown error: %v", err)
	}
	if !strings.Contains(out, "Plan") || !strings.Contains(out, "package.json") {
		t.Errorf("output = %q", out)
	}
}
