package binder

import (
	"testing"

	"github.com/leg100/imbinder/internal/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_AddAction_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		action Action
	}{
		{"empty name", Action{OnPress: noop}},
		{"no callback", Action{Name: "Jump", Key: key.Space}},
		{"name with NUL byte", Action{Name: "Ju\x00mp", OnPress: noop}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(Options{})

			ok, err := r.AddAction(tt.action)
			assert.ErrorIs(t, err, ErrInvalidAction)
			assert.False(t, ok)
			assert.Equal(t, 0, r.Len())
		})
	}
}

func TestRegistry_AddAction(t *testing.T) {
	r := New(Options{})

	ok, err := r.AddAction(Action{Name: "Jump", Key: key.Space, OnPress: noop})
	require.NoError(t, err)
	assert.True(t, ok)

	got, ok := r.Action("Jump")
	require.True(t, ok)
	assert.Equal(t, key.Space, got.Key)
	assert.NotNil(t, got.OnPress)
}

func TestRegistry_AddAction_Duplicate(t *testing.T) {
	t.Run("keep existing", func(t *testing.T) {
		r := New(Options{})
		_, err := r.AddAction(Action{Name: "Jump", Key: key.Space, OnPress: noop})
		require.NoError(t, err)

		ok, err := r.AddAction(Action{Name: "Jump", Key: key.W, OnRelease: noop, RepeatOnHold: true}, KeepExisting())
		require.NoError(t, err)
		assert.False(t, ok)

		got, _ := r.Action("Jump")
		assert.Equal(t, key.Space, got.Key)
		assert.NotNil(t, got.OnPress)
		assert.Nil(t, got.OnRelease)
		assert.False(t, got.RepeatOnHold)
	})

	t.Run("overwrite", func(t *testing.T) {
		r := New(Options{})
		_, err := r.AddAction(Action{Name: "Jump", Key: key.Space, OnPress: noop})
		require.NoError(t, err)

		ok, err := r.AddAction(Action{Name: "Jump", Key: key.W, OnRelease: noop, RepeatOnHold: true})
		require.NoError(t, err)
		assert.True(t, ok)

		got, _ := r.Action("Jump")
		assert.Equal(t, key.W, got.Key)
		assert.Nil(t, got.OnPress)
		assert.NotNil(t, got.OnRelease)
		assert.True(t, got.RepeatOnHold)
		assert.Equal(t, 1, r.Len())
	})
}

func TestRegistry_AddActions(t *testing.T) {
	t.Run("all added", func(t *testing.T) {
		r := New(Options{})

		ok, err := r.AddActions([]Action{
			{Name: "A", OnPress: noop},
			{Name: "B", OnRelease: noop},
		})
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 2, r.Len())
	})

	t.Run("stops at duplicate and keeps earlier actions", func(t *testing.T) {
		r := New(Options{})
		_, err := r.AddAction(Action{Name: "B", OnPress: noop})
		require.NoError(t, err)

		ok, err := r.AddActions([]Action{
			{Name: "A", OnPress: noop},
			{Name: "B", OnPress: noop},
			{Name: "C", OnPress: noop},
		}, KeepExisting())
		require.NoError(t, err)
		assert.False(t, ok)

		_, hasA := r.Action("A")
		_, hasC := r.Action("C")
		assert.True(t, hasA)
		assert.False(t, hasC)
	})

	t.Run("stops at invalid action", func(t *testing.T) {
		r := New(Options{})

		ok, err := r.AddActions([]Action{
			{Name: "A", OnPress: noop},
			{Name: "B"},
			{Name: "C", OnPress: noop},
		})
		assert.ErrorIs(t, err, ErrInvalidAction)
		assert.False(t, ok)
		assert.Equal(t, 1, r.Len())
	})
}

func TestRegistry_RemoveAction(t *testing.T) {
	r := New(Options{})
	_, err := r.AddActions([]Action{
		{Name: "A", OnPress: noop},
		{Name: "B", OnPress: noop},
	})
	require.NoError(t, err)

	assert.False(t, r.RemoveAction("C"))
	assert.Equal(t, 2, r.Len())

	assert.True(t, r.RemoveAction("A"))
	_, ok := r.Action("A")
	assert.False(t, ok)
	_, ok = r.Action("B")
	assert.True(t, ok)
}

func TestRegistry_Reset(t *testing.T) {
	r := New(Options{})
	_, err := r.AddAction(Action{Name: "A", Key: key.A, OnPress: noop})
	require.NoError(t, err)

	// start a capture
	ui := newFakeUI(newFrame())
	ui.clicks["A"] = "Rebind..."
	r.RenderEditor(ui)
	_, capturing := r.Rebinding()
	require.True(t, capturing)

	r.Reset()

	assert.Equal(t, 0, r.Len())
	_, capturing = r.Rebinding()
	assert.False(t, capturing)
}

func TestRegistry_Actions(t *testing.T) {
	r := New(Options{})
	_, err := r.AddActions([]Action{
		{Name: "b", OnPress: noop},
		{Name: "C", OnPress: noop},
		{Name: "a", OnPress: noop},
	})
	require.NoError(t, err)

	var names []string
	for _, action := range r.Actions() {
		names = append(names, action.Name)
	}
	assert.Equal(t, []string{"C", "a", "b"}, names)
}

func TestNew_DefaultAbortKeys(t *testing.T) {
	r := New(Options{})
	assert.Equal(t, DefaultAbortKeys, r.abortKeys)

	r = New(Options{AbortKeys: []key.Key{key.Q}})
	assert.Equal(t, []key.Key{key.Q}, r.abortKeys)
}
