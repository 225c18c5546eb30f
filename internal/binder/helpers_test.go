package binder

import (
	"fmt"
	"strings"

	"github.com/leg100/imbinder/internal/key"
	"github.com/leg100/imbinder/internal/widget"
)

// fakeInput is the key state of a single frame.
type fakeInput struct {
	pressed  map[key.Key]bool
	repeated map[key.Key]bool
	released map[key.Key]bool
	down     map[key.Key]bool
}

func newFrame() *fakeInput {
	return &fakeInput{
		pressed:  make(map[key.Key]bool),
		repeated: make(map[key.Key]bool),
		released: make(map[key.Key]bool),
		down:     make(map[key.Key]bool),
	}
}

func (f *fakeInput) press(k key.Key) *fakeInput {
	f.pressed[k] = true
	f.down[k] = true
	return f
}

func (f *fakeInput) hold(k key.Key) *fakeInput {
	f.repeated[k] = true
	f.down[k] = true
	return f
}

func (f *fakeInput) release(k key.Key) *fakeInput {
	f.released[k] = true
	return f
}

func (f *fakeInput) IsKeyPressed(k key.Key, repeat bool) bool {
	return f.pressed[k] || (repeat && f.repeated[k])
}

func (f *fakeInput) IsKeyReleased(k key.Key) bool { return f.released[k] }

func (f *fakeInput) IsKeyDown(k key.Key) bool { return f.down[k] }

// fakeUI records the widgets declared by the editor. Buttons report
// activation when their label is listed in clicks against the row's action
// name.
type fakeUI struct {
	*fakeInput

	// clicks maps action name to the label of the button to activate.
	clicks map[string]string

	windows []string
	columns []string
	rows    [][]string
	// current row's action name, taken from its first cell.
	row      string
	ids      []string
	colors   int
	paddings int
}

func newFakeUI(in *fakeInput) *fakeUI {
	return &fakeUI{fakeInput: in, clicks: make(map[string]string)}
}

func (f *fakeUI) Begin(title string) bool {
	f.windows = append(f.windows, title)
	return true
}

func (f *fakeUI) End() {}

func (f *fakeUI) BeginTable(id string, columns int, flags widget.TableFlags) bool {
	return true
}

func (f *fakeUI) TableSetupColumn(label string) {
	f.columns = append(f.columns, label)
}

func (f *fakeUI) TableHeadersRow() {}

func (f *fakeUI) TableNextRow() {
	f.rows = append(f.rows, nil)
	f.row = ""
}

func (f *fakeUI) TableNextColumn() bool { return true }

func (f *fakeUI) EndTable() {}

func (f *fakeUI) Text(format string, args ...any) {
	s := fmt.Sprintf(format, args...)
	if f.row == "" {
		f.row = s
	}
	f.cell(s)
}

func (f *fakeUI) Button(label string) bool {
	f.cell("[" + label + "]")
	return f.clicks[f.row] == label
}

func (f *fakeUI) SameLine() {}

func (f *fakeUI) PushID(id string) { f.ids = append(f.ids, id) }

func (f *fakeUI) PopID() { f.ids = f.ids[:len(f.ids)-1] }

func (f *fakeUI) PushButtonColor(widget.Color) { f.colors++ }

func (f *fakeUI) PopButtonColor() { f.colors-- }

func (f *fakeUI) PushFramePadding(int) { f.paddings++ }

func (f *fakeUI) PopFramePadding() { f.paddings-- }

func (f *fakeUI) cell(s string) {
	last := len(f.rows) - 1
	f.rows[last] = append(f.rows[last], s)
}

// rowOf returns the rendered row for the named action.
func (f *fakeUI) rowOf(name string) string {
	for _, row := range f.rows {
		if len(row) > 0 && row[0] == name {
			return strings.Join(row, " ")
		}
	}
	return ""
}

func noop() {}
