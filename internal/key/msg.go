package key

import (
	tea "github.com/charmbracelet/bubbletea"
)

var keyTypes = map[tea.KeyType]Key{
	tea.KeyTab:        Tab,
	tea.KeyShiftTab:   Tab,
	tea.KeyLeft:       LeftArrow,
	tea.KeyRight:      RightArrow,
	tea.KeyUp:         UpArrow,
	tea.KeyDown:       DownArrow,
	tea.KeyShiftLeft:  LeftArrow,
	tea.KeyShiftRight: RightArrow,
	tea.KeyShiftUp:    UpArrow,
	tea.KeyShiftDown:  DownArrow,
	tea.KeyPgUp:       PageUp,
	tea.KeyPgDown:     PageDown,
	tea.KeyHome:       Home,
	tea.KeyEnd:        End,
	tea.KeyInsert:     Insert,
	tea.KeyDelete:     Delete,
	tea.KeyBackspace:  Backspace,
	tea.KeySpace:      Space,
	tea.KeyEnter:      Enter,
	tea.KeyEscape:     Escape,
	tea.KeyF1:         F1,
	tea.KeyF2:         F2,
	tea.KeyF3:         F3,
	tea.KeyF4:         F4,
	tea.KeyF5:         F5,
	tea.KeyF6:         F6,
	tea.KeyF7:         F7,
	tea.KeyF8:         F8,
	tea.KeyF9:         F9,
	tea.KeyF10:        F10,
	tea.KeyF11:        F11,
	tea.KeyF12:        F12,
}

// Shifted characters resolve to the key that produces them on a US layout.
var runes = map[rune]Key{
	' ':  Space,
	'\'': Apostrophe,
	'"':  Apostrophe,
	',':  Comma,
	'<':  Comma,
	'-':  Minus,
	'_':  Minus,
	'.':  Period,
	'>':  Period,
	'/':  Slash,
	'?':  Slash,
	';':  Semicolon,
	':':  Semicolon,
	'=':  Equal,
	'+':  Equal,
	'[':  LeftBracket,
	'{':  LeftBracket,
	'\\': Backslash,
	'|':  Backslash,
	']':  RightBracket,
	'}':  RightBracket,
	'`':  GraveAccent,
	'~':  GraveAccent,
	')':  Key0,
	'!':  Key1,
	'@':  Key2,
	'#':  Key3,
	'$':  Key4,
	'%':  Key5,
	'^':  Key6,
	'&':  Key7,
	'*':  Key8,
	'(':  Key9,
}

// FromRune returns the key that produces r.
func FromRune(r rune) (Key, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return A + Key(r-'a'), true
	case r >= 'A' && r <= 'Z':
		return A + Key(r-'A'), true
	case r >= '0' && r <= '9':
		return Key0 + Key(r-'0'), true
	}
	k, ok := runes[r]
	return k, ok
}

// FromKeyMsg translates a bubbletea key message. Pastes, multi-rune input and
// control sequences without a key of their own are not translated.
func FromKeyMsg(msg tea.KeyMsg) (Key, bool) {
	if msg.Paste {
		return None, false
	}
	if msg.Type == tea.KeyRunes {
		if len(msg.Runes) != 1 {
			return None, false
		}
		return FromRune(msg.Runes[0])
	}
	k, ok := keyTypes[msg.Type]
	return k, ok
}

// FromMouseButton translates a bubbletea mouse button. Wheel and extra
// buttons are not translated.
func FromMouseButton(b tea.MouseButton) (Key, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return MouseLeft, true
	case tea.MouseButtonRight:
		return MouseRight, true
	case tea.MouseButtonMiddle:
		return MouseMiddle, true
	}
	return None, false
}
