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
	"unsafe"

	"github.com/libsdl-org/sdl12-compat-sub000/joystick"
	"github.com/libsdl-org/sdl12-compat-sub000/keysym"
	"github.com/libsdl-org/sdl12-compat-sub000/legacy"
	"github.com/libsdl-org/sdl12-compat-sub000/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// onModernEvent is the event watch. It is called by the backend for every
// event, on the goroutine that called PumpEvents().
func (c *Context) onModernEvent(ev sdl.Event) {
	var o out

	c.input.crit.Lock()
	switch ev := ev.(type) {
	case *sdl.KeyboardEvent:
		c.translateKey(ev, &o)
	case *sdl.TextInputEvent:
		c.translateText(ev, &o)
	case *sdl.MouseMotionEvent:
		c.translateMotion(ev, &o)
	case *sdl.MouseButtonEvent:
		c.translateButton(ev, &o)
	case *sdl.MouseWheelEvent:
		c.translateWheel(ev, &o)
	case *sdl.WindowEvent:
		c.translateWindow(ev, &o)
	case *sdl.QuitEvent:
		c.quit(&o)
	case *sdl.SysWMEvent:
		c.translateSysWM(ev, &o)
	case *sdl.JoyAxisEvent, *sdl.JoyBallEvent, *sdl.JoyHatEvent, *sdl.JoyButtonEvent,
		*sdl.ControllerAxisEvent, *sdl.ControllerButtonEvent:
		c.translateJoystick(ev, &o)
	}
	c.input.crit.Unlock()

	c.deliver(&o)
}

func (c *Context) keySym(ks sdl.Keysym) keysym.Key {
	if c.config.UseKeyboardLayout.Bool() {
		return keysym.FromKeycode(int32(ks.Sym), uint32(ks.Scancode))
	}
	return keysym.FromScancode(uint32(ks.Scancode))
}

func (c *Context) translateKey(ev *sdl.KeyboardEvent, o *out) {
	in := &c.input

	sym := c.keySym(ev.Keysym)
	lev := legacy.Event{
		Key: legacy.KeyboardEvent{
			Keysym: legacy.Keysym{
				Scancode: uint8(ev.Keysym.Scancode),
				Sym:      sym,
				Mod:      keysym.FromModern(ev.Keysym.Mod),
			},
		},
	}

	if ev.Type == sdl.KEYDOWN {
		c.flushPending(o)

		// repeats are emulated by the Context
		if ev.Repeat != 0 {
			return
		}

		lev.Type = legacy.KEYDOWN
		lev.Key.State = legacy.PRESSED
		if sym < keysym.Last {
			in.keys[sym] = legacy.PRESSED
		}

		if in.unicode {
			in.pending = lev
			in.hasPending = true
			return
		}
		c.emitKeyDown(lev, o)
		return
	}

	lev.Type = legacy.KEYUP
	lev.Key.State = legacy.RELEASED
	if sym < keysym.Last {
		in.keys[sym] = legacy.RELEASED
	}
	if in.repeat.active && in.repeat.ev.Key.Keysym.Sym == sym {
		in.repeat.active = false
	}
	c.flushPending(o)
	o.add(lev)
}

func (c *Context) translateText(ev *sdl.TextInputEvent, o *out) {
	in := &c.input
	if !in.unicode {
		return
	}

	r := keysym.DecodeRune(ev.Text[:])

	if in.hasPending {
		in.pending.Key.Keysym.Unicode = r
		c.flushPending(o)
		return
	}

	// text without a key press, from an input method for example
	if r != 0 {
		o.add(legacy.Event{
			Type: legacy.KEYDOWN,
			Key: legacy.KeyboardEvent{
				State:  legacy.PRESSED,
				Keysym: legacy.Keysym{Unicode: r},
			},
		})
	}
}

// legacy button numbers for the modern buttons
func buttonFromModern(b uint8) uint8 {
	switch b {
	case sdl.BUTTON_X1:
		return legacy.BUTTON_X1
	case sdl.BUTTON_X2:
		return legacy.BUTTON_X2
	}
	return b
}

// modern button state bits for the extra buttons
const (
	modernX1Mask = 1 << (sdl.BUTTON_X1 - 1)
	modernX2Mask = 1 << (sdl.BUTTON_X2 - 1)
)

// legacy button state from the modern button state. the extra buttons move
// up to make room for the wheel
func buttonsFromModern(state uint32) uint8 {
	b := uint8(state & 0x07)
	if state&modernX1Mask != 0 {
		b |= legacy.ButtonMask(legacy.BUTTON_X1)
	}
	if state&modernX2Mask != 0 {
		b |= legacy.ButtonMask(legacy.BUTTON_X2)
	}
	return b
}

// mousePosition maps a window position to the screen surface. Must be
// called with the input state locked.
func (c *Context) mousePosition(snap snapshot, x, y int32) (int32, int32) {
	if snap.scaled {
		x, y = snap.viewport.ToLogical(x, y)
	}
	if snap.active {
		x = max(0, min(snap.w-1, x))
		y = max(0, min(snap.h-1, y))
	}
	return x, y
}

func (c *Context) translateMotion(ev *sdl.MouseMotionEvent, o *out) {
	in := &c.input
	snap := c.snapshot()

	xrel, yrel := ev.XRel, ev.YRel
	if snap.scaled {
		xrel, yrel = snap.viewport.ToLogicalDelta(xrel, yrel)
	}

	var x, y int32
	if in.relative {
		// the backend position is meaningless in relative mode
		x, y = in.mouse.x+xrel, in.mouse.y+yrel
		if snap.active {
			x = max(0, min(snap.w-1, x))
			y = max(0, min(snap.h-1, y))
		}
	} else {
		x, y = c.mousePosition(snap, ev.X, ev.Y)
	}

	in.mouse.x, in.mouse.y = x, y
	in.mouse.xrel += xrel
	in.mouse.yrel += yrel
	in.mouse.buttons = buttonsFromModern(ev.State)

	o.add(legacy.Event{
		Type: legacy.MOUSEMOTION,
		Motion: legacy.MouseMotionEvent{
			State: in.mouse.buttons,
			X:     uint16(x),
			Y:     uint16(y),
			XRel:  int16(xrel),
			YRel:  int16(yrel),
		},
	})
}

func (c *Context) translateButton(ev *sdl.MouseButtonEvent, o *out) {
	in := &c.input

	x, y := in.mouse.x, in.mouse.y
	if !in.relative {
		x, y = c.mousePosition(c.snapshot(), ev.X, ev.Y)
		in.mouse.x, in.mouse.y = x, y
	}

	button := buttonFromModern(ev.Button)
	lev := legacy.Event{
		Button: legacy.MouseButtonEvent{
			Button: button,
			X:      uint16(x),
			Y:      uint16(y),
		},
	}

	if ev.State == sdl.PRESSED {
		lev.Type = legacy.MOUSEBUTTONDOWN
		lev.Button.State = legacy.PRESSED
		in.mouse.buttons |= legacy.ButtonMask(button)
	} else {
		lev.Type = legacy.MOUSEBUTTONUP
		lev.Button.State = legacy.RELEASED
		in.mouse.buttons &^= legacy.ButtonMask(button)
	}

	o.add(lev)
}

// the wheel is reported as a press and immediate release of a button
func (c *Context) translateWheel(ev *sdl.MouseWheelEvent, o *out) {
	in := &c.input

	y := ev.Y
	if ev.Direction == sdl.MOUSEWHEEL_FLIPPED {
		y = -y
	}

	var button uint8
	switch {
	case y > 0:
		button = legacy.BUTTON_WHEELUP
	case y < 0:
		button = legacy.BUTTON_WHEELDOWN
	default:
		return
	}

	b := legacy.MouseButtonEvent{
		Button: button,
		X:      uint16(in.mouse.x),
		Y:      uint16(in.mouse.y),
	}

	b.State = legacy.PRESSED
	o.add(legacy.Event{Type: legacy.MOUSEBUTTONDOWN, Button: b})
	b.State = legacy.RELEASED
	o.add(legacy.Event{Type: legacy.MOUSEBUTTONUP, Button: b})
}

func (c *Context) active(gain bool, state uint8, o *out) {
	in := &c.input
	ev := legacy.Event{
		Type:   legacy.ACTIVEEVENT,
		Active: legacy.ActiveEvent{State: state},
	}
	if gain {
		ev.Active.Gain = 1
		in.appState |= state
	} else {
		in.appState &^= state
	}
	o.add(ev)
}

func (c *Context) translateWindow(ev *sdl.WindowEvent, o *out) {
	snap := c.snapshot()
	if snap.active && ev.WindowID != snap.windowID {
		return
	}

	switch ev.Event {
	case sdl.WINDOWEVENT_SHOWN, sdl.WINDOWEVENT_EXPOSED:
		// creating the window produces these events
		if c.settingMode.Load() {
			return
		}
		o.add(legacy.Event{Type: legacy.VIDEOEXPOSE})

	case sdl.WINDOWEVENT_RESIZED:
		if snap.flags&legacy.RESIZABLE == 0 || c.settingMode.Load() {
			return
		}
		o.add(legacy.Event{
			Type:   legacy.VIDEORESIZE,
			Resize: legacy.ResizeEvent{W: ev.Data1, H: ev.Data2},
		})

	case sdl.WINDOWEVENT_FOCUS_GAINED:
		c.active(true, legacy.APPINPUTFOCUS, o)
	case sdl.WINDOWEVENT_FOCUS_LOST:
		c.active(false, legacy.APPINPUTFOCUS, o)
	case sdl.WINDOWEVENT_ENTER:
		c.active(true, legacy.APPMOUSEFOCUS, o)
	case sdl.WINDOWEVENT_LEAVE:
		c.active(false, legacy.APPMOUSEFOCUS, o)
	case sdl.WINDOWEVENT_MINIMIZED:
		c.active(false, legacy.APPACTIVE, o)
	case sdl.WINDOWEVENT_RESTORED:
		c.active(true, legacy.APPACTIVE, o)

	case sdl.WINDOWEVENT_CLOSE:
		c.quit(o)
	}
}

// the backend sends a quit event as well as the close event when the last
// window is closed but the legacy API only expects one
func (c *Context) quit(o *out) {
	if len(c.queue.Peek(legacy.QUITMASK, 1)) == 0 {
		o.add(legacy.Event{Type: legacy.QUIT})
	}
}

func (c *Context) translateSysWM(ev *sdl.SysWMEvent, o *out) {
	if !c.config.AllowSysWM.Bool() || ev.Msg == nil {
		return
	}

	// the platform specific part of the message is not exported by the
	// modern structure. it follows the version and subsystem fields
	raw := unsafe.Slice((*byte)(unsafe.Pointer(ev.Msg)), unsafe.Sizeof(*ev.Msg))
	msg := &legacy.SysWMMsg{
		Version:   [3]uint8{ev.Msg.Version.Major, ev.Msg.Version.Minor, ev.Msg.Version.Patch},
		Subsystem: uint32(ev.Msg.Subsystem),
		Data:      raw[8:],
	}

	// the queue copies the message
	o.add(legacy.Event{Type: legacy.SYSWMEVENT, SysWM: legacy.SysWMEvent{Msg: msg}})
}

func (c *Context) translateJoystick(ev sdl.Event, o *out) {
	if !c.joyEvents.Load() {
		return
	}

	c.joyCrit.Lock()
	defer c.joyCrit.Unlock()

	lookup := func(id sdl.JoystickID, controller bool) (uint8, joystick.Device, bool) {
		idx, dev, ok := c.joysticks.Lookup(int32(id))
		if !ok || dev.Controller() != controller {
			return 0, nil, false
		}
		return uint8(idx), dev, true
	}

	switch ev := ev.(type) {
	case *sdl.JoyAxisEvent:
		if which, _, ok := lookup(ev.Which, false); ok {
			o.add(legacy.Event{
				Type:  legacy.JOYAXISMOTION,
				JAxis: legacy.JoyAxisEvent{Which: which, Axis: ev.Axis, Value: ev.Value},
			})
		}

	case *sdl.JoyBallEvent:
		if which, _, ok := lookup(ev.Which, false); ok {
			o.add(legacy.Event{
				Type:  legacy.JOYBALLMOTION,
				JBall: legacy.JoyBallEvent{Which: which, Ball: ev.Ball, XRel: ev.XRel, YRel: ev.YRel},
			})
		}

	case *sdl.JoyHatEvent:
		if which, _, ok := lookup(ev.Which, false); ok {
			o.add(legacy.Event{
				Type: legacy.JOYHATMOTION,
				JHat: legacy.JoyHatEvent{Which: which, Hat: ev.Hat, Value: ev.Value},
			})
		}

	case *sdl.JoyButtonEvent:
		if which, _, ok := lookup(ev.Which, false); ok {
			o.add(joyButton(which, ev.Button, ev.State))
		}

	case *sdl.ControllerAxisEvent:
		which, _, ok := lookup(ev.Which, true)
		if !ok {
			return
		}
		if axis, ok := joystick.TranslateAxis(ev.Axis); ok {
			o.add(legacy.Event{
				Type:  legacy.JOYAXISMOTION,
				JAxis: legacy.JoyAxisEvent{Which: which, Axis: uint8(axis), Value: ev.Value},
			})
		}

	case *sdl.ControllerButtonEvent:
		which, dev, ok := lookup(ev.Which, true)
		if !ok {
			return
		}
		index, isHat, ok := joystick.TranslateButton(ev.Button)
		if !ok {
			return
		}
		if isHat {
			o.add(legacy.Event{
				Type: legacy.JOYHATMOTION,
				JHat: legacy.JoyHatEvent{Which: which, Hat: 0, Value: dev.Hat(0)},
			})
			return
		}
		o.add(joyButton(which, uint8(index), ev.State))

	default:
		logger.Logf(logger.Verbose, "compat", "unhandled joystick event %T", ev)
	}
}

func joyButton(which uint8, button uint8, state uint8) legacy.Event {
	ev := legacy.Event{
		JButton: legacy.JoyButtonEvent{Which: which, Button: button},
	}
	if state == sdl.PRESSED {
		ev.Type = legacy.JOYBUTTONDOWN
		ev.JButton.State = legacy.PRESSED
	} else {
		ev.Type = legacy.JOYBUTTONUP
		ev.JButton.State = legacy.RELEASED
	}
	return ev
}
