// Package tui is a small immediate-mode UI toolkit for the terminal. Every
// frame the caller declares its windows and widgets afresh; widgets report
// interaction as return values, e.g. a button returns true on the frame it
// is clicked.
//
// The toolkit is driven by a bubbletea program: messages are fed to the
// context as they arrive, and the program brackets each frame with NewFrame
// and EndFrame, rendering the result of View.
package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leg100/imbinder/internal/key"
	"github.com/leg100/imbinder/internal/widget"
)

type Options struct {
	// HoldTimeout defaults to DefaultHoldTimeout.
	HoldTimeout time.Duration
	// Clock timestamps fed messages. Defaults to time.Now.
	Clock func() time.Time
}

// Context holds the state of the toolkit across frames.
type Context struct {
	input *input
	clock func() time.Time

	width, height int

	// ID stack: scopes the IDs of widgets with the same label.
	ids      []string
	colors   []lipgloss.TerminalColor
	paddings []int

	// windows being built this frame; the first is the root, which has no
	// border.
	windows  []*window
	table    *table
	sameLine bool

	// interactive items laid out on the last frame, keyed by ID
	items  map[string]rect
	tables map[string]*tableState

	frame []string
}

func New(opts Options) *Context {
	c := &Context{
		input:  newInput(opts.HoldTimeout),
		clock:  opts.Clock,
		items:  make(map[string]rect),
		tables: make(map[string]*tableState),
	}
	if c.clock == nil {
		c.clock = time.Now
	}
	return c
}

// Feed queues a bubbletea message for the next frame. It returns false if
// the message is of no interest to the toolkit.
func (c *Context) Feed(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		k, ok := key.FromKeyMsg(msg)
		if !ok {
			return false
		}
		c.input.enqueue(event{key: k, at: c.clock()})
		return true
	case tea.MouseMsg:
		ev := event{mouse: true, x: msg.X, y: msg.Y, at: c.clock()}
		switch msg.Action {
		case tea.MouseActionPress:
			k, ok := key.FromMouseButton(msg.Button)
			if !ok {
				return false
			}
			ev.key = k
		case tea.MouseActionRelease:
			// Some terminals do not report which button was released, in
			// which case all buttons are released.
			ev.key, _ = key.FromMouseButton(msg.Button)
			ev.release = true
		}
		c.input.enqueue(ev)
		return true
	case tea.WindowSizeMsg:
		c.width, c.height = msg.Width, msg.Height
		return true
	}
	return false
}

// Size returns the dimensions of the terminal.
func (c *Context) Size() (width, height int) {
	return c.width, c.height
}

// NewFrame starts a frame at now.
func (c *Context) NewFrame(now time.Time) {
	c.input.advance(now)

	c.ids = c.ids[:0]
	c.colors = c.colors[:0]
	c.paddings = c.paddings[:0]
	c.windows = []*window{{root: true}}
	c.table = nil
	c.sameLine = false
}

// EndFrame completes the frame, closing any windows left open.
func (c *Context) EndFrame() {
	if len(c.windows) == 0 {
		return
	}
	for len(c.windows) > 1 {
		c.End()
	}
	c.closeTable()
	root := c.windows[0]
	r := root.content.render(root.content.width(), lipgloss.NewStyle())

	c.items = make(map[string]rect, len(r.items))
	for _, it := range r.items {
		c.items[it.id] = it.rect
	}
	c.frame = r.lines
	c.windows = nil
}

// View returns the last completed frame, clipped to the terminal.
func (c *Context) View() string {
	lines := c.frame
	if c.height > 0 && len(lines) > c.height {
		lines = lines[:c.height]
	}
	s := strings.Join(lines, "\n")
	if c.width > 0 {
		s = lipgloss.NewStyle().MaxWidth(c.width).Render(s)
	}
	return s
}

// ContentRegionAvail returns the space left for content in the current
// window, assuming the frame is to fit the terminal.
func (c *Context) ContentRegionAvail() (width, height int) {
	width, height = c.width, c.height
	for _, w := range c.windows {
		height -= w.content.height()
		if !w.root {
			width -= windowChrome
			height -= 2
		}
	}
	return max(width, 0), max(height, 0)
}

// PushID pushes id onto the ID stack, scoping subsequent widgets.
func (c *Context) PushID(id string) {
	c.ids = append(c.ids, id)
}

// PopID pops the last ID pushed with PushID.
func (c *Context) PopID() {
	if len(c.ids) > 0 {
		c.ids = c.ids[:len(c.ids)-1]
	}
}

// id returns the full ID path of a widget with the given label.
func (c *Context) id(label string) string {
	return strings.Join(append(c.ids, label), "/")
}

// PushButtonColor sets the background color of subsequent buttons.
func (c *Context) PushButtonColor(color widget.Color) {
	c.colors = append(c.colors, lipgloss.Color(color))
}

func (c *Context) PopButtonColor() {
	if len(c.colors) > 0 {
		c.colors = c.colors[:len(c.colors)-1]
	}
}

// PushFramePadding sets the horizontal padding of subsequent buttons.
func (c *Context) PushFramePadding(n int) {
	c.paddings = append(c.paddings, n)
}

func (c *Context) PopFramePadding() {
	if len(c.paddings) > 0 {
		c.paddings = c.paddings[:len(c.paddings)-1]
	}
}

// add lays out a segment in the current table cell or window.
func (c *Context) add(s segment) {
	sameLine := c.sameLine
	c.sameLine = false

	if c.table != nil {
		if cell := c.table.cell(); cell != nil {
			cell.add(s, sameLine)
			return
		}
	}
	c.current().content.add(s, sameLine)
}

func (c *Context) current() *window {
	return c.windows[len(c.windows)-1]
}
