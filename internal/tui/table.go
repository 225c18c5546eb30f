package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/leg100/go-runewidth"
	"github.com/leg100/imbinder/internal/key"
	"github.com/leg100/imbinder/internal/widget"
)

// TableFlags alter the appearance and behaviour of a table.
type TableFlags = widget.TableFlags

const (
	TableBorders   = widget.TableBorders
	TableRowBg     = widget.TableRowBg
	TableResizable = widget.TableResizable
)

const minColumnWidth = 1

type table struct {
	id      string
	columns int
	flags   TableFlags
	window  *window

	headers   []string
	headerRow bool
	rows      [][]*content
	col       int
}

// cell returns the cell widgets are currently added to, or nil if no row or
// column has been started.
func (t *table) cell() *content {
	if len(t.rows) == 0 || t.col < 0 || t.col >= t.columns {
		return nil
	}
	return t.rows[len(t.rows)-1][t.col]
}

// tableState persists across frames.
type tableState struct {
	// widths set by the user; zero means the column fits its content.
	widths []int
	// widths rendered on the last frame
	last []int

	// column being resized, or -1
	drag   int
	startX int
	startW int
}

// BeginTable starts a table with the given number of columns. Cells are
// filled by calling TableNextRow and TableNextColumn before adding widgets.
// Tables cannot be nested. EndTable must be called only if BeginTable returns
// true.
func (c *Context) BeginTable(id string, columns int, flags TableFlags) bool {
	if c.table != nil || columns < 1 {
		return false
	}
	c.sameLine = false
	c.table = &table{
		id:      c.id(id),
		columns: columns,
		flags:   flags,
		window:  c.current(),
		col:     -1,
	}
	c.PushID(id)
	return true
}

// TableSetupColumn sets the header label of the next column.
func (c *Context) TableSetupColumn(label string) {
	if c.table == nil || len(c.table.headers) >= c.table.columns {
		return
	}
	c.table.headers = append(c.table.headers, label)
}

// TableHeadersRow emits a row of the labels set up with TableSetupColumn.
func (c *Context) TableHeadersRow() {
	if c.table != nil {
		c.table.headerRow = true
	}
}

// TableNextRow starts a new row.
func (c *Context) TableNextRow() {
	t := c.table
	if t == nil {
		return
	}
	row := make([]*content, t.columns)
	for i := range row {
		row[i] = &content{}
	}
	t.rows = append(t.rows, row)
	t.col = -1
	c.sameLine = false
}

// TableNextColumn moves to the next cell of the current row, starting a row
// if none has been started. It returns false once past the last column.
func (c *Context) TableNextColumn() bool {
	t := c.table
	if t == nil {
		return false
	}
	if len(t.rows) == 0 {
		c.TableNextRow()
	}
	c.sameLine = false
	if t.col < t.columns {
		t.col++
	}
	return t.col < t.columns
}

// EndTable completes the table started by BeginTable.
func (c *Context) EndTable() {
	t := c.table
	if t == nil {
		return
	}
	c.table = nil
	c.PopID()
	c.sameLine = false

	state, ok := c.tables[t.id]
	if !ok || len(state.widths) != t.columns {
		state = &tableState{widths: make([]int, t.columns), drag: -1}
		c.tables[t.id] = state
	}
	if t.flags.Has(TableResizable | TableBorders) {
		c.resize(t, state)
	}

	widths := make([]int, t.columns)
	for i := range widths {
		if i < len(t.headers) && t.headerRow {
			widths[i] = runewidth.StringWidth(t.headers[i])
		}
		for _, row := range t.rows {
			widths[i] = max(widths[i], row[i].width())
		}
		if state.widths[i] > 0 {
			widths[i] = state.widths[i]
		}
		widths[i] = max(widths[i], minColumnWidth)
	}
	state.last = widths

	t.window.content.insert(t.render(widths))
}

// closeTable ends a table left open in the current window.
func (c *Context) closeTable() {
	if c.table != nil && c.table.window == c.current() {
		c.EndTable()
	}
}

// resize updates user-set column widths from dragging of column separators.
func (c *Context) resize(t *table, state *tableState) {
	x, _ := c.MousePos()
	if state.drag < 0 && len(state.last) == t.columns && c.IsKeyPressed(key.MouseLeft, false) {
		for i := range t.columns {
			if r, ok := c.items[separatorID(t.id, i)]; ok && r.contains(c.input.pressX, c.input.pressY) {
				state.drag = i
				state.startX = c.input.pressX
				state.startW = state.last[i]
				break
			}
		}
	}
	if state.drag < 0 {
		return
	}
	state.widths[state.drag] = max(state.startW+x-state.startX, minColumnWidth)
	if !c.IsKeyDown(key.MouseLeft) {
		state.drag = -1
	}
}

func separatorID(tableID string, col int) string {
	return fmt.Sprintf("%s/##sep%d", tableID, col)
}

func (t *table) render(widths []int) rendered {
	var (
		out     rendered
		borders = t.flags.Has(TableBorders)
		border  = lipgloss.NormalBorder()
	)
	// horizontal rule using the given junctions
	rule := func(left, middle, right string) {
		if !borders {
			return
		}
		var b strings.Builder
		b.WriteString(left)
		for i, w := range widths {
			if i > 0 {
				b.WriteString(middle)
			}
			b.WriteString(strings.Repeat(border.Top, w+2))
		}
		b.WriteString(right)
		out.lines = append(out.lines, borderStyle.Render(b.String()))
	}
	// row of cells, each at least one line tall
	row := func(cells []*content, fill lipgloss.Style, separators bool) {
		height := 1
		for _, cell := range cells {
			height = max(height, cell.height())
		}
		blocks := make([]rendered, len(cells))
		for i, cell := range cells {
			padded := *cell
			for padded.height() < height {
				padded.lines = append(padded.lines, nil)
			}
			blocks[i] = padded.render(widths[i], fill)
		}
		y0 := len(out.lines)
		for y := range height {
			var (
				b strings.Builder
				x int
			)
			if borders {
				b.WriteString(borderStyle.Render(border.Left))
				x++
			}
			for i, block := range blocks {
				if i > 0 && borders {
					b.WriteString(borderStyle.Render(border.Left))
					if separators && t.flags.Has(TableResizable) {
						out.items = append(out.items, item{id: separatorID(t.id, i-1), rect: rect{x: x, y: y0 + y, w: 1}})
					}
					x++
				}
				if borders {
					b.WriteString(fill.Render(" "))
					x++
				}
				b.WriteString(block.lines[y])
				for _, it := range block.items {
					if it.rect.y == y {
						out.items = append(out.items, item{id: it.id, rect: rect{x: x + it.rect.x, y: y0 + y, w: it.rect.w}})
					}
				}
				x += widths[i]
				if borders {
					b.WriteString(fill.Render(" "))
					x++
				}
			}
			if borders {
				b.WriteString(borderStyle.Render(border.Right))
				if separators && t.flags.Has(TableResizable) {
					out.items = append(out.items, item{id: separatorID(t.id, len(blocks)-1), rect: rect{x: x, y: y0 + y, w: 1}})
				}
			}
			out.lines = append(out.lines, b.String())
		}
	}

	rule(border.TopLeft, border.MiddleTop, border.TopRight)
	if t.headerRow {
		headers := make([]*content, t.columns)
		for i := range headers {
			headers[i] = &content{}
			if i < len(t.headers) {
				headers[i].add(segment{raw: t.headers[i], style: headerStyle}, false)
			}
		}
		row(headers, Regular, true)
		if len(t.rows) > 0 {
			rule(border.MiddleLeft, border.Middle, border.MiddleRight)
		}
	}
	for i, cells := range t.rows {
		fill := Regular
		if t.flags.Has(TableRowBg) && i%2 == 1 {
			fill = rowBgStyle
		}
		row(cells, fill, !t.headerRow && i == 0)
	}
	rule(border.BottomLeft, border.MiddleBottom, border.BottomRight)
	return out
}
