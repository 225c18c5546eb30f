package tui

import "github.com/charmbracelet/lipgloss"

var (
	Regular = lipgloss.NewStyle()
	Bold    = Regular.Bold(true)

	borderStyle = Regular.Foreground(BorderColor)
	buttonStyle = Regular.Foreground(ButtonForeground)
	headerStyle = Bold
	rowBgStyle  = Regular.Background(RowBackground)
)
