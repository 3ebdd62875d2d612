package styles

import "github.com/charmbracelet/lipgloss"

// Status colors.
var (
	ColorOK      = lipgloss.Color("#00CC00")
	ColorTimeout = lipgloss.Color("#FFCC00")
	ColorFail    = lipgloss.Color("#FF0000")
	ColorMuted   = lipgloss.Color("#666666")
	ColorAccent  = lipgloss.Color("#7D56F4")
)

// Styles used across TUI views.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(ColorAccent).
			Padding(0, 1)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			MarginBottom(1)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(1, 2)

	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	CursorStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	StatusOKStyle      = lipgloss.NewStyle().Bold(true).Foreground(ColorOK)
	StatusTimeoutStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorTimeout)
	StatusFailStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorFail)
)

// StatusStyle returns the appropriate style for a result status label.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "OK":
		return StatusOKStyle
	case "TIMEOUT":
		return StatusTimeoutStyle
	case "FAIL":
		return StatusFailStyle
	default:
		return lipgloss.NewStyle()
	}
}
