package binder

import (
	"testing"

	"github.com/leg100/imbinder/internal/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEditor(t *testing.T) *Registry {
	t.Helper()

	r := New(Options{})
	_, err := r.AddActions([]Action{
		{Name: "Fire", Key: key.F, OnPress: noop},
		{Name: "Jump", Key: key.Space, OnPress: noop},
		{Name: "Walk", OnPress: noop},
	})
	require.NoError(t, err)
	return r
}

// render renders the editor for one frame, clicking the named action's
// button with the given label.
func render(r *Registry, in *fakeInput, action, label string) *fakeUI {
	ui := newFakeUI(in)
	if action != "" {
		ui.clicks[action] = label
	}
	r.RenderEditor(ui)
	return ui
}

func TestEditor_Render(t *testing.T) {
	r := setupEditor(t)

	ui := render(r, newFrame(), "", "")

	assert.Equal(t, []string{"Input name", "Assigned button", "Actions"}, ui.columns)
	require.Len(t, ui.rows, 3)
	assert.Equal(t, "Fire F [Rebind...] [Unassign]", ui.rowOf("Fire"))
	assert.Equal(t, "Jump Space [Rebind...] [Unassign]", ui.rowOf("Jump"))
	// no unassign button without a key
	assert.Equal(t, "Walk None [Rebind...]", ui.rowOf("Walk"))
	// stacks are balanced
	assert.Empty(t, ui.ids)
	assert.Zero(t, ui.colors)
	assert.Zero(t, ui.paddings)
}

func TestEditor_RenderWindow(t *testing.T) {
	r := setupEditor(t)
	ui := newFakeUI(newFrame())

	r.RenderEditorWindow(ui)

	assert.Equal(t, []string{"Input bindings"}, ui.windows)
	assert.Len(t, ui.rows, 3)
}

func TestEditor_Rebind(t *testing.T) {
	r := setupEditor(t)

	render(r, newFrame(), "Jump", "Rebind...")
	name, ok := r.Rebinding()
	require.True(t, ok)
	assert.Equal(t, "Jump", name)

	// capturing row shows cancel button
	ui := render(r, newFrame(), "", "")
	assert.Equal(t, "Jump Space [Cancel]", ui.rowOf("Jump"))
	assert.Zero(t, ui.colors)

	// next key press is captured
	render(r, newFrame().press(key.W), "", "")

	jump, _ := r.Action("Jump")
	assert.Equal(t, key.W, jump.Key)
	_, ok = r.Rebinding()
	assert.False(t, ok)
}

func TestEditor_Rebind_Abort(t *testing.T) {
	for _, abort := range DefaultAbortKeys {
		t.Run(abort.String(), func(t *testing.T) {
			r := setupEditor(t)
			render(r, newFrame(), "Jump", "Rebind...")

			render(r, newFrame().press(abort).press(key.W), "", "")

			jump, _ := r.Action("Jump")
			assert.Equal(t, key.Space, jump.Key)
			_, ok := r.Rebinding()
			assert.False(t, ok)
		})
	}
}

func TestEditor_Rebind_AbortKeyIsReserved(t *testing.T) {
	r := setupEditor(t)
	render(r, newFrame(), "Fire", "Rebind...")

	// binding escape is impossible: it always cancels
	render(r, newFrame().press(key.Escape), "", "")

	fire, _ := r.Action("Fire")
	assert.Equal(t, key.F, fire.Key)
}

func TestEditor_Rebind_CustomAbortKeys(t *testing.T) {
	r := New(Options{AbortKeys: []key.Key{key.Q}})
	_, err := r.AddAction(Action{Name: "Jump", Key: key.Space, OnPress: noop})
	require.NoError(t, err)

	render(r, newFrame(), "Jump", "Rebind...")
	render(r, newFrame().press(key.Escape), "", "")

	jump, _ := r.Action("Jump")
	assert.Equal(t, key.Escape, jump.Key)
}

func TestEditor_Rebind_MouseLeftNeverCaptured(t *testing.T) {
	r := New(Options{AbortKeys: []key.Key{key.Q}})
	_, err := r.AddAction(Action{Name: "Jump", Key: key.Space, OnPress: noop})
	require.NoError(t, err)

	render(r, newFrame(), "Jump", "Rebind...")
	render(r, newFrame().press(key.MouseLeft), "", "")

	jump, _ := r.Action("Jump")
	assert.Equal(t, key.Space, jump.Key)
	_, ok := r.Rebinding()
	assert.True(t, ok)

	render(r, newFrame().press(key.MouseRight), "", "")

	jump, _ = r.Action("Jump")
	assert.Equal(t, key.MouseRight, jump.Key)
}

func TestEditor_Rebind_CancelButton(t *testing.T) {
	r := setupEditor(t)
	render(r, newFrame(), "Jump", "Rebind...")

	render(r, newFrame().press(key.W), "Jump", "Cancel")

	jump, _ := r.Action("Jump")
	assert.Equal(t, key.Space, jump.Key)
	_, ok := r.Rebinding()
	assert.False(t, ok)
}

func TestEditor_Rebind_WaitsForKey(t *testing.T) {
	r := setupEditor(t)
	render(r, newFrame(), "Jump", "Rebind...")

	// a key that is merely held does not count as a press
	render(r, newFrame().hold(key.W), "", "")
	render(r, newFrame(), "", "")

	name, ok := r.Rebinding()
	assert.True(t, ok)
	assert.Equal(t, "Jump", name)
}

func TestEditor_Rebind_SurvivesMembershipChanges(t *testing.T) {
	r := setupEditor(t)
	render(r, newFrame(), "Jump", "Rebind...")

	// Adding an action that sorts before Jump shifts its row, but the
	// capture stays with Jump.
	_, err := r.AddAction(Action{Name: "Crouch", Key: key.C, OnPress: noop})
	require.NoError(t, err)
	require.True(t, r.RemoveAction("Fire"))

	render(r, newFrame().press(key.W), "", "")

	jump, _ := r.Action("Jump")
	crouch, _ := r.Action("Crouch")
	assert.Equal(t, key.W, jump.Key)
	assert.Equal(t, key.C, crouch.Key)
}

func TestEditor_Rebind_RemovedActionCancelsCapture(t *testing.T) {
	r := setupEditor(t)
	render(r, newFrame(), "Jump", "Rebind...")

	require.True(t, r.RemoveAction("Jump"))

	_, ok := r.Rebinding()
	assert.False(t, ok)

	render(r, newFrame().press(key.W), "", "")
	for _, action := range r.Actions() {
		assert.NotEqual(t, key.W, action.Key)
	}
}

func TestEditor_Rebind_ReplacedActionCancelsCapture(t *testing.T) {
	r := setupEditor(t)
	render(r, newFrame(), "Jump", "Rebind...")

	_, err := r.AddAction(Action{Name: "Jump", Key: key.J, OnPress: noop})
	require.NoError(t, err)

	_, ok := r.Rebinding()
	assert.False(t, ok)
}

func TestEditor_Unassign(t *testing.T) {
	r := setupEditor(t)

	render(r, newFrame(), "Fire", "Unassign")

	fire, _ := r.Action("Fire")
	assert.Equal(t, key.None, fire.Key)
	_, ok := r.Rebinding()
	assert.False(t, ok)
}
