package wizard

import "github.com/charmbracelet/lipgloss"

// Colors used in the setup wizard.
var (
	ColorPrimary = lipgloss.Color("#7C3AED") // Purple
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorMuted   = lipgloss.Color("#9CA3AF") // Light gray
)

// Styles holds the styles for the setup wizard.
type Styles struct {
	Title    lipgloss.Style
	Question lipgloss.Style
	Selected lipgloss.Style
	Normal   lipgloss.Style
	Detail   lipgloss.Style
	Help     lipgloss.Style
	Frame    lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1),
		Question: lipgloss.NewStyle().
			Bold(true),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess),
		Normal: lipgloss.NewStyle(),
		Detail: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true),
		Help: lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2),
	}
}
