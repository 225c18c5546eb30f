package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Text adds formatted text. Each line of the text is laid out on its own line.
func (c *Context) Text(format string, args ...any) {
	c.text(Regular, format, args...)
}

// TextColored adds formatted text in the given foreground color.
func (c *Context) TextColored(color lipgloss.TerminalColor, format string, args ...any) {
	c.text(Regular.Foreground(color), format, args...)
}

func (c *Context) text(style lipgloss.Style, format string, args ...any) {
	s := format
	if len(args) > 0 {
		s = fmt.Sprintf(format, args...)
	}
	for i, l := range strings.Split(s, "\n") {
		if i > 0 {
			c.sameLine = false
		}
		c.add(segment{raw: sanitize(l), style: style})
	}
}

// Button adds a button, returning true on the frame it is clicked, i.e. when
// the primary mouse button is released over it, having been pressed over it.
//
// Any part of the label following "##" is not displayed but makes the ID of
// the button unique.
func (c *Context) Button(label string) bool {
	id := c.id(label)
	text, _, _ := strings.Cut(label, "##")

	style := buttonStyle.
		Background(ButtonBackground).
		Padding(0, c.framePadding())
	if n := len(c.colors); n > 0 {
		style = style.Background(c.colors[n-1])
	}

	var clicked bool
	if r, ok := c.items[id]; ok {
		clicked = c.clicked(r)
		switch {
		case c.held(r) && c.hovered(r):
			style = style.Reverse(true)
		case c.hovered(r):
			style = style.Bold(true)
		}
	}
	c.add(segment{raw: sanitize(text), style: style, id: id})
	return clicked
}

// SameLine lays out the next widget on the same line as the last, separated
// by a space.
func (c *Context) SameLine() {
	c.sameLine = true
}

func (c *Context) framePadding() int {
	if n := len(c.paddings); n > 0 {
		return c.paddings[n-1]
	}
	return 0
}
