package ui

import (
	"github.com/charmbracelet/glamour"
)

// defaultWrap is the word-wrap width used when the caller passes zero.
const defaultWrap = 80

// RenderMarkdown renders md for the terminal. With colour disabled it uses
// glamour's plain style, which keeps the output readable when piped.
func RenderMarkdown(theme *Theme, md string, width int) (string, error) {
	if width <= 0 {
		width = defaultWrap
	}
	style := "dark"
	if theme == nil || theme.NoColor {
		style = "notty"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
