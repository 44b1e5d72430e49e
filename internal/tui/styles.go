package tui

import "github.com/charmbracelet/lipgloss"

// Shared color palette.
var (
	ColorHeader = lipgloss.Color("39")  // blue
	ColorLabel  = lipgloss.Color("245") // gray
	ColorValue  = lipgloss.Color("252") // light gray
	ColorGood   = lipgloss.Color("42")  // green
	ColorBad    = lipgloss.Color("196") // red
	ColorMuted  = lipgloss.Color("240") // dark gray
)

// Shared styles.
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorHeader).
			Bold(true).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	GoodStyle  = lipgloss.NewStyle().Foreground(ColorGood)
	BadStyle   = lipgloss.NewStyle().Foreground(ColorBad)
	MutedStyle = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)

	DetailBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().Foreground(ColorMuted)
)
