package tui

import (
	"time"

	"github.com/leg100/imbinder/internal/key"
)

// DefaultHoldTimeout is how long a keyboard key is considered held after its
// last press or auto-repeat. It must exceed the terminal's initial key repeat
// delay, otherwise a held key is released and pressed again when repeating
// starts.
const DefaultHoldTimeout = 550 * time.Millisecond

type keyState struct {
	down bool
	// edges and auto-repeats this frame
	pressed  bool
	released bool
	repeats  int
	// last press or repeat
	last time.Time
}

type event struct {
	key     key.Key
	release bool
	// mouse events carry a position
	mouse bool
	x, y  int
	at    time.Time
}

// input folds key and mouse events into per-frame key state.
//
// Terminals report key presses and auto-repeats but never key releases. A
// keyboard key is therefore released once no event for it has arrived within
// the hold timeout. Mouse buttons report real releases.
type input struct {
	holdTimeout time.Duration

	keys  map[key.Key]*keyState
	queue []event

	// current pointer position
	mouseX, mouseY int
	// pointer position of the last primary button press and release
	pressX, pressY     int
	releaseX, releaseY int
}

func newInput(holdTimeout time.Duration) *input {
	if holdTimeout <= 0 {
		holdTimeout = DefaultHoldTimeout
	}
	return &input{
		holdTimeout: holdTimeout,
		keys:        make(map[key.Key]*keyState),
	}
}

func (in *input) state(k key.Key) *keyState {
	ks, ok := in.keys[k]
	if !ok {
		ks = &keyState{}
		in.keys[k] = ks
	}
	return ks
}

func (in *input) enqueue(ev event) {
	in.queue = append(in.queue, ev)
}

// advance starts a new frame at now, applying events queued since the last
// frame.
func (in *input) advance(now time.Time) {
	for _, ks := range in.keys {
		ks.pressed = false
		ks.released = false
		ks.repeats = 0
	}
	for _, ev := range in.queue {
		if ev.mouse {
			in.mouseX, in.mouseY = ev.x, ev.y
			in.applyMouse(ev)
			continue
		}
		ks := in.state(ev.key)
		if ks.down && ev.at.Sub(ks.last) > in.holdTimeout {
			ks.down = false
			ks.released = true
		}
		if ks.down {
			ks.repeats++
		} else {
			ks.down = true
			ks.pressed = true
		}
		ks.last = ev.at
	}
	in.queue = in.queue[:0]

	for k, ks := range in.keys {
		if !k.IsMouse() && ks.down && now.Sub(ks.last) > in.holdTimeout {
			ks.down = false
			ks.released = true
		}
	}
}

func (in *input) applyMouse(ev event) {
	switch {
	case ev.key == key.None:
		// pointer motion, or a release that doesn't say which button
		if !ev.release {
			return
		}
		for _, k := range []key.Key{key.MouseLeft, key.MouseRight, key.MouseMiddle} {
			in.applyMouse(event{key: k, release: true, mouse: true, x: ev.x, y: ev.y})
		}
	case ev.release:
		ks := in.state(ev.key)
		if !ks.down {
			return
		}
		ks.down = false
		ks.released = true
		if ev.key == key.MouseLeft {
			in.releaseX, in.releaseY = ev.x, ev.y
		}
	default:
		ks := in.state(ev.key)
		if ks.down {
			return
		}
		ks.down = true
		ks.pressed = true
		if ev.key == key.MouseLeft {
			in.pressX, in.pressY = ev.x, ev.y
		}
	}
}

// IsKeyPressed reports whether k went down this frame or, if repeat is set,
// whether it auto-repeated this frame.
func (c *Context) IsKeyPressed(k key.Key, repeat bool) bool {
	ks, ok := c.input.keys[k]
	if !ok || k == key.None {
		return false
	}
	return ks.pressed || (repeat && ks.repeats > 0)
}

// IsKeyReleased reports whether k went up this frame.
func (c *Context) IsKeyReleased(k key.Key) bool {
	ks, ok := c.input.keys[k]
	return ok && k != key.None && ks.released
}

// IsKeyDown reports whether k is held.
func (c *Context) IsKeyDown(k key.Key) bool {
	ks, ok := c.input.keys[k]
	return ok && k != key.None && ks.down
}

// MousePos returns the pointer position.
func (c *Context) MousePos() (x, y int) {
	return c.input.mouseX, c.input.mouseY
}

// clicked reports whether the primary button was both pressed and released
// within r, the release happening this frame.
func (c *Context) clicked(r rect) bool {
	in := c.input
	return c.IsKeyReleased(key.MouseLeft) &&
		r.contains(in.pressX, in.pressY) &&
		r.contains(in.releaseX, in.releaseY)
}

// held reports whether the primary button is held after being pressed
// within r.
func (c *Context) held(r rect) bool {
	in := c.input
	return c.IsKeyDown(key.MouseLeft) && r.contains(in.pressX, in.pressY)
}

func (c *Context) hovered(r rect) bool {
	return r.contains(c.input.mouseX, c.input.mouseY)
}
