package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/leg100/imbinder/internal/widget"
)

const (
	Red    = lipgloss.Color(widget.Red)
	Yellow = lipgloss.Color("#DBBD70")
	Green  = lipgloss.Color("34")
	Blue   = lipgloss.Color(widget.Blue)
	White  = lipgloss.Color(widget.White)
)

var (
	DebugLogLevel = Blue
	InfoLogLevel  = lipgloss.AdaptiveColor{Dark: "86", Light: string(Green)}
	ErrorLogLevel = Red
	WarnLogLevel  = Yellow

	ButtonBackground = Blue
	ButtonForeground = White

	BorderColor = lipgloss.AdaptiveColor{
		Dark:  "244",
		Light: "250",
	}

	RowBackground = lipgloss.AdaptiveColor{
		Dark:  "236",
		Light: "254",
	}
)
