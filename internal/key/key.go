// Package key defines the symbolic key codes that actions are bound to.
package key

import (
	"strconv"
	"strings"
)

// Key is a symbolic key code. Codes are persisted in bindings files, so
// existing values must never be renumbered.
type Key int

// None is the absence of a key.
const None Key = 0

// Named keys start at 512.
const (
	Tab Key = iota + 512
	LeftArrow
	RightArrow
	UpArrow
	DownArrow
	PageUp
	PageDown
	Home
	End
	Insert
	Delete
	Backspace
	Space
	Enter
	Escape
	LeftCtrl
	LeftShift
	LeftAlt
	LeftSuper
	RightCtrl
	RightShift
	RightAlt
	RightSuper
	Menu
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	A
	B
	C
	D
	E
	F
	G
	H
	I
	J
	K
	L
	M
	N
	O
	P
	Q
	R
	S
	T
	U
	V
	W
	X
	Y
	Z
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
	Apostrophe
	Comma
	Minus
	Period
	Slash
	Semicolon
	Equal
	LeftBracket
	Backslash
	RightBracket
	GraveAccent

	lastKeyboard = GraveAccent
)

// Mouse buttons.
const (
	MouseLeft Key = iota + 641
	MouseRight
	MouseMiddle

	lastMouse = MouseMiddle
)

var names = map[Key]string{
	None:         "None",
	Tab:          "Tab",
	LeftArrow:    "LeftArrow",
	RightArrow:   "RightArrow",
	UpArrow:      "UpArrow",
	DownArrow:    "DownArrow",
	PageUp:       "PageUp",
	PageDown:     "PageDown",
	Home:         "Home",
	End:          "End",
	Insert:       "Insert",
	Delete:       "Delete",
	Backspace:    "Backspace",
	Space:        "Space",
	Enter:        "Enter",
	Escape:       "Escape",
	LeftCtrl:     "LeftCtrl",
	LeftShift:    "LeftShift",
	LeftAlt:      "LeftAlt",
	LeftSuper:    "LeftSuper",
	RightCtrl:    "RightCtrl",
	RightShift:   "RightShift",
	RightAlt:     "RightAlt",
	RightSuper:   "RightSuper",
	Menu:         "Menu",
	Apostrophe:   "'",
	Comma:        ",",
	Minus:        "-",
	Period:       ".",
	Slash:        "/",
	Semicolon:    ";",
	Equal:        "=",
	LeftBracket:  "[",
	Backslash:    "\\",
	RightBracket: "]",
	GraveAccent:  "`",
	MouseLeft:    "MouseLeft",
	MouseRight:   "MouseRight",
	MouseMiddle:  "MouseMiddle",
}

// all lists every named key in code order.
var all []Key

// byName maps lower-cased names back to keys.
var byName = make(map[string]Key)

func init() {
	for k := Key0; k <= Key9; k++ {
		names[k] = string(rune('0' + int(k-Key0)))
	}
	for k := A; k <= Z; k++ {
		names[k] = string(rune('A' + int(k-A)))
	}
	for k := F1; k <= F12; k++ {
		names[k] = "F" + strconv.Itoa(int(k-F1)+1)
	}
	for k := Tab; k <= lastKeyboard; k++ {
		all = append(all, k)
	}
	for k := MouseLeft; k <= lastMouse; k++ {
		all = append(all, k)
	}
	for k, name := range names {
		byName[strings.ToLower(name)] = k
	}
}

// String returns the display name of the key, or "Unknown" if the code is
// not a named key.
func (k Key) String() string {
	if name, ok := names[k]; ok {
		return name
	}
	return "Unknown"
}

// Named reports whether k is None or one of the named keys.
func (k Key) Named() bool {
	_, ok := names[k]
	return ok
}

// IsMouse reports whether k is a mouse button.
func (k Key) IsMouse() bool {
	return k >= MouseLeft && k <= lastMouse
}

// All returns every named key, excluding None, in ascending code order.
func All() []Key {
	keys := make([]Key, len(all))
	copy(keys, all)
	return keys
}

// Parse returns the key with the given display name. Matching is case
// insensitive. A decimal key code is accepted too.
func Parse(s string) (Key, bool) {
	s = strings.TrimSpace(s)
	if k, ok := byName[strings.ToLower(s)]; ok {
		return k, true
	}
	if code, err := strconv.Atoi(s); err == nil {
		return Key(code), true
	}
	return None, false
}
