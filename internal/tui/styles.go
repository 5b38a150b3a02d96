package tui

import "github.com/charmbracelet/lipgloss"

var (
	salmonPink = lipgloss.Color("#FFB3BA")
	mintGreen  = lipgloss.Color("#A8E6CF")
	amber      = lipgloss.Color("#FCD34D")
	softRed    = lipgloss.Color("#F87171")
	mutedGray  = lipgloss.Color("#6B7280")
	brightText = lipgloss.Color("#F9FAFB")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(salmonPink).
			Bold(true)

	badgeStyle = lipgloss.NewStyle().
			Foreground(brightText).
			Background(mutedGray).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(mutedGray).
			Italic(true)

	outputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(salmonPink).
			Foreground(brightText).
			Padding(0, 1)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(mutedGray)

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedGray)

	toggleOnStyle = lipgloss.NewStyle().
			Foreground(mintGreen).
			Bold(true)

	toggleOffStyle = lipgloss.NewStyle().
			Foreground(mutedGray)

	togglePulseStyle = lipgloss.NewStyle().
				Foreground(softRed).
				Bold(true)

	pillStyle = lipgloss.NewStyle().
			Foreground(mutedGray).
			Italic(true)

	toastStyle = lipgloss.NewStyle().
			Foreground(brightText).
			Background(salmonPink).
			Padding(0, 1)
)

// strengthColor maps a strength level to the color of its dot.
func strengthColor(level string) lipgloss.Color {
	switch level {
	case "strong":
		return mintGreen
	case "medium":
		return amber
	}
	return softRed
}
