package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/leg100/go-runewidth"
	"github.com/muesli/ansi"
)

// rect is a one-line tall region of the screen.
type rect struct {
	x, y, w int
}

func (r rect) contains(x, y int) bool {
	return y == r.y && x >= r.x && x < r.x+r.w
}

// item is an interactive region, identified by its ID path.
type item struct {
	id   string
	rect rect
}

// segment is a horizontal run of a line: either raw text rendered with a
// style, or a pre-rendered string carrying the items of the widget it came
// from.
type segment struct {
	raw   string
	style lipgloss.Style
	// id is set for interactive segments, i.e. buttons.
	id string

	rendered string
	items    []item
}

func (s segment) width() int {
	if s.rendered != "" {
		return ansi.PrintableRuneWidth(s.rendered)
	}
	return runewidth.StringWidth(s.raw) + s.style.GetHorizontalFrameSize()
}

type line []segment

func (l line) width() int {
	var w int
	for _, s := range l {
		w += s.width()
	}
	return w
}

// content is a vertical list of lines: the body of a window or a table cell.
type content struct {
	lines []line
}

// add appends a segment, on the last line if sameLine is set, otherwise on a
// new line.
func (c *content) add(s segment, sameLine bool) {
	if sameLine && len(c.lines) > 0 {
		last := len(c.lines) - 1
		c.lines[last] = append(c.lines[last], segment{raw: " "}, s)
		return
	}
	c.lines = append(c.lines, line{s})
}

// insert appends pre-rendered lines along with their items.
func (c *content) insert(r rendered) {
	for y, l := range r.lines {
		s := segment{rendered: l}
		for _, it := range r.items {
			if it.rect.y == y {
				it.rect.y = 0
				s.items = append(s.items, it)
			}
		}
		c.lines = append(c.lines, line{s})
	}
}

func (c *content) width() int {
	var w int
	for _, l := range c.lines {
		w = max(w, l.width())
	}
	return w
}

func (c *content) height() int {
	return len(c.lines)
}

// rendered is a block of rendered lines, with the positions of the items
// within, relative to the top left corner of the block.
type rendered struct {
	lines []string
	items []item
}

// translate shifts all items by dx, dy.
func (r rendered) translate(dx, dy int) []item {
	items := make([]item, len(r.items))
	for i, it := range r.items {
		it.rect.x += dx
		it.rect.y += dy
		items[i] = it
	}
	return items
}

// render renders each line padded, or truncated, to exactly width cells. The
// fill style is inherited by raw segments and used for padding.
func (c *content) render(width int, fill lipgloss.Style) rendered {
	var r rendered
	for y, l := range c.lines {
		var (
			b strings.Builder
			x int
		)
		for _, s := range l {
			avail := width - x
			if avail <= 0 {
				break
			}
			if s.rendered != "" {
				text := s.rendered
				w := s.width()
				if w > avail {
					text = xansi.Truncate(text, avail, "")
					w = avail
				}
				b.WriteString(text)
				for _, it := range s.items {
					if it.rect.x >= w {
						continue
					}
					r.items = append(r.items, item{
						id:   it.id,
						rect: rect{x: x + it.rect.x, y: y, w: min(it.rect.w, w-it.rect.x)},
					})
				}
				x += w
				continue
			}
			raw := s.raw
			if w := s.width(); w > avail {
				raw = runewidth.Truncate(raw, max(0, avail-s.style.GetHorizontalFrameSize()), "…")
			}
			text := s.style.Inherit(fill).Render(raw)
			w := min(lipgloss.Width(text), avail)
			b.WriteString(text)
			if s.id != "" {
				r.items = append(r.items, item{id: s.id, rect: rect{x: x, y: y, w: w}})
			}
			x += w
		}
		if x < width {
			b.WriteString(fill.Render(strings.Repeat(" ", width-x)))
		}
		r.lines = append(r.lines, b.String())
	}
	return r
}
