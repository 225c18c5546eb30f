// Package widget holds the values passed between code that declares widgets
// and the toolkit that draws them, so that neither depends on the other.
package widget

// TableFlags alter the appearance and behaviour of a table.
type TableFlags int

const (
	// TableBorders draws borders around the table and between its cells.
	TableBorders TableFlags = 1 << iota
	// TableRowBg shades alternate rows.
	TableRowBg
	// TableResizable allows columns to be resized by dragging the border to
	// their right with the mouse. Requires TableBorders.
	TableResizable
)

// Has reports whether all of flag is set.
func (f TableFlags) Has(flag TableFlags) bool {
	return f&flag == flag
}

// Color is a terminal color: a hex value such as "#FF5353" or an ANSI color
// number such as "63".
type Color string

const (
	Red   Color = "#FF5353"
	Blue  Color = "63"
	White Color = "#ffffff"
)
