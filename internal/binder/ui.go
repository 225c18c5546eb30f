package binder

import (
	"github.com/leg100/imbinder/internal/key"
	"github.com/leg100/imbinder/internal/widget"
)

// Input reports the key state of the current frame.
type Input interface {
	// IsKeyPressed reports whether k went down this frame. If repeat is true
	// it also reports auto-repeats while k is held.
	IsKeyPressed(k key.Key, repeat bool) bool
	// IsKeyReleased reports whether k went up this frame.
	IsKeyReleased(k key.Key) bool
	// IsKeyDown reports whether k is held.
	IsKeyDown(k key.Key) bool
}

// UI is the immediate-mode surface the editor is drawn with. Widgets are
// declared anew every frame; a button reports whether it was activated.
type UI interface {
	Input

	Begin(title string) bool
	End()

	BeginTable(id string, columns int, flags widget.TableFlags) bool
	TableSetupColumn(label string)
	TableHeadersRow()
	TableNextRow()
	TableNextColumn() bool
	EndTable()

	Text(format string, args ...any)
	Button(label string) bool
	SameLine()

	PushID(id string)
	PopID()
	PushButtonColor(color widget.Color)
	PopButtonColor()
	PushFramePadding(n int)
	PopFramePadding()
}
