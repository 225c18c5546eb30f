package tui

import "github.com/leg100/go-runewidth"

type window struct {
	title   string
	root    bool
	content content
}

// Begin starts a window with the given title, which also scopes the IDs of
// its widgets. Windows opened at the top level span the width of the
// terminal; nested windows fit their content. End must be called whether or
// not Begin returns true.
func (c *Context) Begin(title string) bool {
	c.closeTable()
	c.windows = append(c.windows, &window{title: sanitize(title)})
	c.PushID(title)
	c.sameLine = false
	return true
}

// End closes the window opened by the last call to Begin.
func (c *Context) End() {
	if len(c.windows) < 2 {
		return
	}
	c.closeTable()
	w := c.current()
	c.windows = c.windows[:len(c.windows)-1]
	c.PopID()
	c.sameLine = false

	parent := c.current()
	width := max(w.content.width(), runewidth.StringWidth(w.title)+3)
	if parent.root && c.width > windowChrome {
		width = c.width - windowChrome
	}
	body := w.content.render(width, Regular)
	parent.content.insert(borderize(body, width, w.title))
}
