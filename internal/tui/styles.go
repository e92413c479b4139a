package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#2AA198")
	hiddenFg  = lipgloss.Color("#4B5563")

	appStyle    = lipgloss.NewStyle().Foreground(baseFg)
	titleStyle  = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(baseDimFg)
	hiddenStyle = lipgloss.NewStyle().Foreground(hiddenFg).Strikethrough(true)
)

// swatch renders a colored block for a layer's color, or a placeholder
// when the color is unknown.
func swatch(hex string) string {
	if hex == "" {
		return dimStyle.Render("■")
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("■")
}
