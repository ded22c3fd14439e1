package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Shared CLI styles. Adaptive colours keep output readable on light and
// dark terminals; lipgloss drops colour when the output is not a TTY.
var (
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#4CAF50"})
	cliWarn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B26A00", Dark: "#E5A50A"})
	cliError   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#E53935"})
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#8A8A8A"})
	cliPrimary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#A3336B", Dark: "#CC6699"})
	cliBorder  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"})
)

func symSuccess() string { return cliSuccess.Render("✓") }
func symError() string   { return cliError.Render("✗") }
func symWarning() string { return cliWarn.Render("!") }

// kvPair is one row of a key/value listing.
type kvPair struct {
	key   string
	value string
}

// renderKeyValueLines aligns keys into a column and renders one pair per line.
func renderKeyValueLines(pairs []kvPair) string {
	width := 0
	for _, p := range pairs {
		width = max(width, lipgloss.Width(p.key))
	}
	keyStyle := cliMuted.Width(width + 2)

	lines := make([]string, len(pairs))
	for i, p := range pairs {
		lines[i] = keyStyle.Render(p.key) + p.value
	}
	return strings.Join(lines, "\n")
}

// renderCard draws a titled, rounded box around the body lines.
func renderCard(title string, body ...string) string {
	content := cliPrimary.Bold(true).Render(title)
	if len(body) > 0 {
		content += "\n\n" + strings.Join(body, "\n")
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cliBorder.GetForeground()).
		Padding(0, 1).
		Render(content)
}

// renderSuccessCard is renderCard with a success mark before the title.
func renderSuccessCard(title string, body ...string) string {
	return renderCard(symSuccess()+" "+title, body...)
}
