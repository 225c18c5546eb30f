package top

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

var (
	helpKeyStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "248",
		Dark:  "#626262",
	}).Bold(true).Margin(0, 1, 0, 0)

	helpDescStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#B2B2B2",
		Dark:  "#4A4A4A",
	})
)

// helpView renders help for key bindings on a single line, dropping bindings
// that don't fit within maxWidth.
func helpView(bindings []key.Binding, maxWidth int) string {
	var (
		items []string
		width int
	)
	for _, kb := range bindings {
		// Beyond the first binding, render a three space left margin, in
		// order to visually separate the bindings.
		var sep string
		if len(items) > 0 {
			sep = "   "
		}
		item := sep + lipgloss.JoinHorizontal(lipgloss.Left,
			helpKeyStyle.Render(kb.Help().Key),
			helpDescStyle.Render(kb.Help().Desc),
		)
		width += lipgloss.Width(item)
		if width > maxWidth {
			break
		}
		items = append(items, item)
	}
	return strings.Join(items, "")
}
