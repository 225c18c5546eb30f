package top

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("^c", "quit"),
	),
}

// Bindings handled by the toolkit rather than the program, listed for help.
var (
	clickBinding = key.NewBinding(
		key.WithHelp("click", "press button"),
	)
	dragBinding = key.NewBinding(
		key.WithHelp("drag", "resize column"),
	)
	abortBinding = key.NewBinding(
		key.WithHelp("esc", "cancel rebind"),
	)
)
