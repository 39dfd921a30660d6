package browse

import "github.com/charmbracelet/lipgloss"

var (
	surface  = lipgloss.Color("#45475a")
	text     = lipgloss.Color("#cdd6f4")
	subtext  = lipgloss.Color("#a6adc8")
	sapphire = lipgloss.Color("#74c7ec")
	green    = lipgloss.Color("#a6e3a1")
	peach    = lipgloss.Color("#fab387")

	paneStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(surface).
			Foreground(text).
			Padding(1, 2)

	titleStyle  = lipgloss.NewStyle().Foreground(sapphire).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(subtext)
	statusStyle = lipgloss.NewStyle().Foreground(green)
	errorStyle  = lipgloss.NewStyle().Foreground(peach).Bold(true)
)
