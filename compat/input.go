// This file is part of sdl12-compat.
//
// sdl12-compat is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sdl12-compat is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sdl12-compat.  If not, see <https://www.gnu.org/licenses/>.

package compat

import (
	"fmt"
	"sync"

	"github.com/libsdl-org/sdl12-compat-sub000/curated"
	"github.com/libsdl-org/sdl12-compat-sub000/keysym"
	"github.com/libsdl-org/sdl12-compat-sub000/legacy"
	"github.com/libsdl-org/sdl12-compat-sub000/logger"
)

// input is the keyboard and mouse state. It is updated by the event
// translator and read by the input entry points.
type input struct {
	crit sync.Mutex

	// translate text input events into the unicode field of key down
	// events
	unicode bool

	// a key down event waiting for the text input event that follows it
	pending    legacy.Event
	hasPending bool

	repeat struct {
		delay    uint32
		interval uint32
		active   bool
		ev       legacy.Event
		next     uint32
	}

	keys [keysym.Last]uint8

	mouse struct {
		x, y       int32
		xrel, yrel int32
		buttons    uint8
	}

	appState      uint8
	grab          legacy.GrabMode
	cursorVisible bool
	cursor        *legacy.Cursor

	// relative mouse mode is in use by the backend
	relative bool
}

func (in *input) reset() {
	in.unicode = false
	in.hasPending = false
	in.pending = legacy.Event{}
	in.repeat.delay = 0
	in.repeat.interval = 0
	in.repeat.active = false
	clear(in.keys[:])
	in.mouse.x, in.mouse.y = 0, 0
	in.mouse.xrel, in.mouse.yrel = 0, 0
	in.mouse.buttons = 0
	in.appState = legacy.APPACTIVE | legacy.APPINPUTFOCUS | legacy.APPMOUSEFOCUS
	in.grab = legacy.GRAB_OFF
	in.cursorVisible = true
	in.cursor = nil
	in.relative = false
}

// out collects the legacy events produced while the input state is locked.
// The events are pushed to the queue once the lock is released because the
// event filter is application code and may call back into the Context.
type out struct {
	n  int
	ev [4]legacy.Event
}

func (o *out) add(ev legacy.Event) {
	if o.n >= len(o.ev) {
		logger.Logf(logger.Allow, "compat", "too many events from one modern event. dropping %d", ev.Type)
		return
	}
	o.ev[o.n] = ev
	o.n++
}

func (c *Context) deliver(o *out) {
	for i := 0; i < o.n; i++ {
		if _, err := c.queue.PushFiltered(o.ev[i]); err != nil {
			c.fail(err)
		}
	}
	o.n = 0
}

// emitKeyDown must be called with the input state locked.
func (c *Context) emitKeyDown(ev legacy.Event, o *out) {
	in := &c.input
	o.add(ev)
	if in.repeat.delay > 0 {
		in.repeat.ev = ev
		in.repeat.active = true
		in.repeat.next = c.backend.Ticks() + in.repeat.delay
	}
}

// flushPending must be called with the input state locked.
func (c *Context) flushPending(o *out) {
	in := &c.input
	if !in.hasPending {
		return
	}
	in.hasPending = false
	c.emitKeyDown(in.pending, o)
}

// serviceRepeat must be called with the input state locked. At most one
// repeat is produced each call.
func (c *Context) serviceRepeat(o *out) {
	in := &c.input
	if !in.repeat.active {
		return
	}
	now := c.backend.Ticks()
	if now-in.repeat.next >= 1<<31 {
		return
	}
	o.add(in.repeat.ev)
	in.repeat.next = now + max(in.repeat.interval, 1)
}

// EnableUNICODE switches unicode translation of key presses on (1) or off
// (0). A value of -1 queries the state without changing it. Returns the
// previous state.
func (c *Context) EnableUNICODE(enable int) int {
	var o out
	c.input.crit.Lock()
	prev := 0
	if c.input.unicode {
		prev = 1
	}
	switch {
	case enable > 0 && !c.input.unicode:
		c.input.unicode = true
		c.backend.StartTextInput()
	case enable == 0 && c.input.unicode:
		c.input.unicode = false
		c.flushPending(&o)
		c.backend.StopTextInput()
	}
	c.input.crit.Unlock()
	c.deliver(&o)
	return prev
}

// EnableKeyRepeat sets the delay before a held key repeats and the interval
// between repeats, in milliseconds. A delay of zero disables key repeat.
func (c *Context) EnableKeyRepeat(delay, interval int) int {
	if delay < 0 || interval < 0 {
		c.fail(curated.Errorf(curated.Unsupported, "EnableKeyRepeat", fmt.Sprintf("%d, %d", delay, interval)))
		return -1
	}

	c.input.crit.Lock()
	defer c.input.crit.Unlock()
	c.input.repeat.delay = uint32(delay)
	c.input.repeat.interval = uint32(interval)
	if delay == 0 {
		c.input.repeat.active = false
	}
	return 0
}

// GetKeyRepeat returns the values set by EnableKeyRepeat().
func (c *Context) GetKeyRepeat() (delay, interval int) {
	c.input.crit.Lock()
	defer c.input.crit.Unlock()
	return int(c.input.repeat.delay), int(c.input.repeat.interval)
}

// GetKeyState returns a copy of the key state table, indexed by key symbol.
func (c *Context) GetKeyState() []uint8 {
	c.input.crit.Lock()
	defer c.input.crit.Unlock()
	keys := make([]uint8, len(c.input.keys))
	copy(keys, c.input.keys[:])
	return keys
}

// GetModState returns the current modifier state.
func (c *Context) GetModState() keysym.Mod {
	return keysym.FromModern(c.backend.ModState())
}

// SetModState changes the modifier state.
func (c *Context) SetModState(mod keysym.Mod) {
	c.backend.SetModState(keysym.ToModern(mod))
}

// GetKeyName returns the name of a key symbol.
func (c *Context) GetKeyName(key keysym.Key) string {
	return keysym.Name(key)
}

// GetAppState returns the APP* state bits.
func (c *Context) GetAppState() uint8 {
	c.input.crit.Lock()
	defer c.input.crit.Unlock()
	return c.input.appState
}

// GetMouseState returns the position of the mouse, in screen surface
// coordinates, and the button state.
func (c *Context) GetMouseState() (x, y int32, buttons uint8) {
	c.input.crit.Lock()
	defer c.input.crit.Unlock()
	return c.input.mouse.x, c.input.mouse.y, c.input.mouse.buttons
}

// GetRelativeMouseState returns the mouse movement since the previous call
// and the button state.
func (c *Context) GetRelativeMouseState() (dx, dy int32, buttons uint8) {
	c.input.crit.Lock()
	defer c.input.crit.Unlock()
	dx, dy = c.input.mouse.xrel, c.input.mouse.yrel
	c.input.mouse.xrel, c.input.mouse.yrel = 0, 0
	return dx, dy, c.input.mouse.buttons
}

// WarpMouse moves the mouse to a position on the screen surface.
func (c *Context) WarpMouse(x, y uint16) {
	c.input.crit.Lock()
	c.input.mouse.x = int32(x)
	c.input.mouse.y = int32(y)
	relative := c.input.relative
	c.input.crit.Unlock()

	// the backend doesn't move the pointer in relative mode
	if relative {
		return
	}

	c.lock.Acquire()
	defer c.lock.Release()
	if c.vid.window == nil {
		return
	}
	snap := c.snapshot()
	px, py := int32(x), int32(y)
	if snap.scaled {
		px, py = snap.viewport.FromLogical(px, py)
	}
	c.vid.window.WarpMouse(px, py)
}

// ShowCursor shows (ENABLE) or hides (IGNORE) the mouse cursor. QUERY returns
// the state without changing it. Returns 1 if the cursor was visible before
// the call and 0 otherwise.
func (c *Context) ShowCursor(toggle int) int {
	c.input.crit.Lock()
	prev := 0
	if c.input.cursorVisible {
		prev = 1
	}
	if toggle != legacy.QUERY {
		c.input.cursorVisible = toggle != legacy.IGNORE
		c.backend.ShowCursor(c.input.cursorVisible)
	}
	c.input.crit.Unlock()

	if toggle != legacy.QUERY {
		c.updateRelativeMouse()
	}

	return prev
}

// CreateCursor creates a monochrome cursor. Returns nil if the width is not
// a multiple of eight or the bitmaps are too small.
func (c *Context) CreateCursor(data, mask []byte, w, h, hotX, hotY int) *legacy.Cursor {
	cur := legacy.NewCursor(data, mask, w, h, hotX, hotY)
	if cur == nil {
		c.fail(curated.Errorf(curated.Unsupported, "CreateCursor", fmt.Sprintf("%dx%d", w, h)))
	}
	return cur
}

// SetCursor makes the cursor the current cursor. The backend's system cursor
// is still drawn. A nil cursor is ignored.
func (c *Context) SetCursor(cur *legacy.Cursor) {
	if cur == nil {
		return
	}
	c.input.crit.Lock()
	defer c.input.crit.Unlock()
	c.input.cursor = cur
	logger.Log(logger.Verbose, "compat", "monochrome cursors are drawn with the system cursor")
}

// GetCursor returns the current cursor.
func (c *Context) GetCursor() *legacy.Cursor {
	c.input.crit.Lock()
	defer c.input.crit.Unlock()
	return c.input.cursor
}

// FreeCursor forgets the cursor. If it is the current cursor the system
// cursor is used from now on.
func (c *Context) FreeCursor(cur *legacy.Cursor) {
	c.input.crit.Lock()
	defer c.input.crit.Unlock()
	if c.input.cursor == cur {
		c.input.cursor = nil
	}
}

// updateRelativeMouse puts the backend into relative mouse mode when input is
// grabbed and the cursor is hidden. Legacy applications use this
// combination to read unbounded mouse movement.
func (c *Context) updateRelativeMouse() {
	snap := c.snapshot()

	c.input.crit.Lock()
	defer c.input.crit.Unlock()

	grabbed := c.input.grab == legacy.GRAB_ON || snap.flags&legacy.FULLSCREEN != 0
	want := snap.active && grabbed && !c.input.cursorVisible
	if want == c.input.relative {
		return
	}
	if err := c.backend.SetRelativeMouseMode(want); err != nil {
		c.fail(err)
		return
	}
	c.input.relative = want
}
