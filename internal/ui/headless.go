package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// HeadlessManager decides whether the UI may prompt and animate.
type HeadlessManager struct {
	forced *bool
	fd     uintptr
}

// NewHeadlessManager creates a HeadlessManager that detects headless mode
// from the TTY state of os.Stdin.
func NewHeadlessManager() *HeadlessManager {
	return &HeadlessManager{fd: os.Stdin.Fd()}
}

// IsHeadless returns true when there is no terminal to interact with.
// ForceHeadless overrides detection.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	return !isatty.IsTerminal(h.fd) && !isatty.IsCygwinTerminal(h.fd)
}

// ForceHeadless overrides TTY detection. Pass true to force headless mode,
// or false to force interactive mode regardless of TTY state.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}

// ClearForce reverts to automatic TTY detection.
func (h *HeadlessManager) ClearForce() {
	h.forced = nil
}
