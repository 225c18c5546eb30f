package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/leg100/go-runewidth"
)

// windowChrome is the horizontal space taken by a window's border and its
// padding.
const windowChrome = 4

// borderize wraps body, whose lines are all width cells wide, in a rounded
// border with the title embedded in the top edge. Items are shifted to their
// positions within the border.
func borderize(body rendered, width int, title string) rendered {
	border := lipgloss.RoundedBorder()

	buildHorizontalBorder := func(text, leftCorner, inbetween, rightCorner string) string {
		// one border cell either side of the padding
		inner := width + windowChrome - 2
		if text != "" {
			text = " " + runewidth.Truncate(text, max(inner-3, 0), "…") + " "
		}
		rest := max(inner-1-runewidth.StringWidth(text), 0)
		s := inbetween
		if text == "" {
			s, rest = "", inner
		}
		return borderStyle.Render(leftCorner+s) +
			Bold.Render(text) +
			borderStyle.Render(strings.Repeat(inbetween, rest)+rightCorner)
	}

	out := rendered{
		lines: make([]string, 0, len(body.lines)+2),
		items: body.translate(2, 1),
	}
	out.lines = append(out.lines, buildHorizontalBorder(title, border.TopLeft, border.Top, border.TopRight))
	for _, l := range body.lines {
		out.lines = append(out.lines, borderStyle.Render(border.Left)+" "+l+" "+borderStyle.Render(border.Right))
	}
	out.lines = append(out.lines, buildHorizontalBorder("", border.BottomLeft, border.Bottom, border.BottomRight))
	return out
}
