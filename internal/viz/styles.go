package viz

import "github.com/charmbracelet/lipgloss"

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ffff"))

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	TrajectoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ff88"))

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	ChangeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffaa00"))

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff4444"))

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)
)

// Field renders a "label value" pair.
func Field(label, value string) string {
	return MetricLabel.Render(label) + " " + MetricValue.Render(value)
}
