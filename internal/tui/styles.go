package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#2563eb")

	nameStyle     = lipgloss.NewStyle().Bold(true).Italic(true).Foreground(accent)
	headingStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1f2937"))
	greetingStyle = lipgloss.NewStyle().Bold(true)
	cardStyle     = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#cbd5e1")).
			Padding(0, 1)
	cardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1d4ed8"))
	subtleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
	metaStyle      = subtleStyle.Italic(true)
	toggleStyle    = lipgloss.NewStyle().Underline(true).Foreground(accent)
	toggleFocus    = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(accent)
	faintStyle  = lipgloss.NewStyle().Faint(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
	topStyle    = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(accent).
			Padding(0, 1)
	blobStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#c084fc"))
	menuStyle = lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accent)
)
