// Package ui provides the terminal presentation layer of the CLI: colour
// theme, headless detection, progress indicators and markdown rendering.
package ui

import "os"

// Colors holds the palette as lipgloss colour strings.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Muted     string
}

// Theme controls how UI components are drawn.
type Theme struct {
	NoColor bool
	Colors  Colors
}

// NewTheme returns the default theme. Colour is disabled when NO_COLOR is
// set, following https://no-color.org.
func NewTheme() *Theme {
	_, noColor := os.LookupEnv("NO_COLOR")
	return &Theme{
		NoColor: noColor,
		Colors: Colors{
			Primary:   "#CC6699",
			Secondary: "#F1A7C4",
			Success:   "#4CAF50",
			Warning:   "#E5A50A",
			Error:     "#E53935",
			Muted:     "#8A8A8A",
		},
	}
}
