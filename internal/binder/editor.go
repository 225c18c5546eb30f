package binder

import (
	"github.com/google/uuid"
	"github.com/leg100/imbinder/internal/key"
	"github.com/leg100/imbinder/internal/widget"
)

const editorTitle = "Input bindings"

// RenderEditorWindow renders the editor in its own window.
func (r *Registry) RenderEditorWindow(ui UI) {
	if ui.Begin(editorTitle) {
		r.RenderEditor(ui)
	}
	ui.End()
}

// RenderEditor renders a table listing each action and its key, with buttons
// to rebind or unassign the key. Use it to render into a window of the
// caller's own.
//
// Rebinding captures the next key pressed. Pressing an abort key, or the
// Cancel button, leaves the binding unchanged.
func (r *Registry) RenderEditor(ui UI) {
	ui.PushFramePadding(1)
	defer ui.PopFramePadding()

	if !ui.BeginTable("bindings", 3, widget.TableBorders|widget.TableRowBg|widget.TableResizable) {
		return
	}
	ui.TableSetupColumn("Input name")
	ui.TableSetupColumn("Assigned button")
	ui.TableSetupColumn("Actions")
	ui.TableHeadersRow()

	for _, name := range r.names() {
		e := r.actions[name]

		ui.PushID(e.id.String())
		ui.TableNextRow()
		ui.TableNextColumn()
		ui.Text("%s", e.Name)
		ui.TableNextColumn()
		ui.Text("%s", e.Key)
		ui.TableNextColumn()

		if r.rebinding == e.id {
			ui.PushButtonColor(widget.Red)
			cancelled := ui.Button("Cancel")
			ui.PopButtonColor()
			if cancelled {
				r.rebinding = uuid.Nil
			} else {
				r.capture(ui, e)
			}
		} else {
			if ui.Button("Rebind...") {
				r.rebinding = e.id
			}
			if e.Key != key.None {
				ui.SameLine()
				if ui.Button("Unassign") {
					r.logger.Debug("unassigned key", "action", e.Name, "key", e.Key)
					e.Key = key.None
				}
			}
		}
		ui.PopID()
	}
	ui.EndTable()
}

// capture assigns the first key pressed this frame to the action, unless an
// abort key is pressed. The left mouse button operates the editor's buttons,
// so it is never captured: unless it is an abort key it is ignored.
func (r *Registry) capture(in Input, e *entry) {
	for _, k := range r.abortKeys {
		if in.IsKeyPressed(k, false) {
			r.rebinding = uuid.Nil
			return
		}
	}
	for _, k := range key.All() {
		if k == key.MouseLeft {
			continue
		}
		if in.IsKeyPressed(k, false) {
			r.logger.Debug("captured key", "action", e.Name, "key", k)
			e.Key = k
			r.rebinding = uuid.Nil
			return
		}
	}
}
