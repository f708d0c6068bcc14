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
	"github.com/libsdl-org/sdl12-compat-sub000/curated"
	"github.com/libsdl-org/sdl12-compat-sub000/joystick"
	"github.com/libsdl-org/sdl12-compat-sub000/legacy"
)

func (c *Context) joystickInitialised(op string) bool {
	if c.WasInit(legacy.INIT_JOYSTICK) == 0 {
		c.fail(curated.Errorf(curated.Unsupported, op, "joystick is not initialised"))
		return false
	}
	return true
}

// NumJoysticks returns the number of joysticks attached.
func (c *Context) NumJoysticks() int {
	if !c.joystickInitialised("NumJoysticks") {
		return 0
	}
	return c.backend.NumJoysticks()
}

// JoystickName returns the name of the joystick at the device index. Returns
// the empty string if there is no such joystick.
func (c *Context) JoystickName(index int) string {
	if !c.joystickInitialised("JoystickName") {
		return ""
	}
	if index < 0 || index >= c.backend.NumJoysticks() {
		c.fail(curated.Errorf(curated.InvalidHandle, "JoystickName", index))
		return ""
	}
	return c.backend.JoystickName(index)
}

// JoystickOpen opens the joystick at the device index and returns the handle
// used by the other joystick functions. Returns -1 on failure.
func (c *Context) JoystickOpen(index int) int {
	if !c.joystickInitialised("JoystickOpen") {
		return -1
	}

	count := c.backend.NumJoysticks()

	c.joyCrit.Lock()
	defer c.joyCrit.Unlock()

	_, err := c.joysticks.Open(func(i int) (joystick.Device, error) {
		return joystick.Open(c.backend, i)
	}, index, count)
	if err != nil {
		c.fail(err)
		return -1
	}
	return index
}

// JoystickOpened returns true if the joystick at the device index is open.
func (c *Context) JoystickOpened(index int) bool {
	c.joyCrit.Lock()
	defer c.joyCrit.Unlock()
	return c.joysticks.Opened(index)
}

// JoystickIndex returns the device index of an open joystick. Returns -1 if
// the handle is not open.
func (c *Context) JoystickIndex(handle int) int {
	if !c.JoystickOpened(handle) {
		c.fail(curated.Errorf(curated.InvalidHandle, "JoystickIndex", handle))
		return -1
	}
	return handle
}

// device calls f with the open device for the handle. Returns false if the
// handle is stale.
func (c *Context) device(handle int, f func(d joystick.Device)) bool {
	c.joyCrit.Lock()
	defer c.joyCrit.Unlock()
	d, err := c.joysticks.Get(handle)
	if err != nil {
		c.fail(err)
		return false
	}
	f(d)
	return true
}

// JoystickNumAxes returns the number of axes. Returns -1 for a stale handle.
func (c *Context) JoystickNumAxes(handle int) int {
	n := -1
	c.device(handle, func(d joystick.Device) { n = d.NumAxes() })
	return n
}

// JoystickNumBalls returns the number of trackballs. Returns -1 for a stale
// handle.
func (c *Context) JoystickNumBalls(handle int) int {
	n := -1
	c.device(handle, func(d joystick.Device) { n = d.NumBalls() })
	return n
}

// JoystickNumHats returns the number of hats. Returns -1 for a stale handle.
func (c *Context) JoystickNumHats(handle int) int {
	n := -1
	c.device(handle, func(d joystick.Device) { n = d.NumHats() })
	return n
}

// JoystickNumButtons returns the number of buttons. Returns -1 for a stale
// handle.
func (c *Context) JoystickNumButtons(handle int) int {
	n := -1
	c.device(handle, func(d joystick.Device) { n = d.NumButtons() })
	return n
}

// JoystickGetAxis returns the position of an axis.
func (c *Context) JoystickGetAxis(handle int, axis int) int16 {
	var v int16
	c.device(handle, func(d joystick.Device) {
		if axis < 0 || axis >= d.NumAxes() {
			c.fail(curated.Errorf(curated.InvalidHandle, "JoystickGetAxis", axis))
			return
		}
		v = d.Axis(axis)
	})
	return v
}

// JoystickGetBall returns the motion of a trackball since the last call. The
// third value is 0 on success and -1 on failure.
func (c *Context) JoystickGetBall(handle int, ball int) (int32, int32, int) {
	var dx, dy int32
	ret := -1
	c.device(handle, func(d joystick.Device) {
		if ball < 0 || ball >= d.NumBalls() {
			c.fail(curated.Errorf(curated.InvalidHandle, "JoystickGetBall", ball))
			return
		}
		dx, dy = d.Ball(ball)
		ret = 0
	})
	return dx, dy, ret
}

// JoystickGetHat returns the position of a hat as HAT_* bits.
func (c *Context) JoystickGetHat(handle int, hat int) uint8 {
	var v uint8
	c.device(handle, func(d joystick.Device) {
		if hat < 0 || hat >= d.NumHats() {
			c.fail(curated.Errorf(curated.InvalidHandle, "JoystickGetHat", hat))
			return
		}
		v = d.Hat(hat)
	})
	return v
}

// JoystickGetButton returns 1 if the button is pressed.
func (c *Context) JoystickGetButton(handle int, button int) uint8 {
	var v uint8
	c.device(handle, func(d joystick.Device) {
		if button < 0 || button >= d.NumButtons() {
			c.fail(curated.Errorf(curated.InvalidHandle, "JoystickGetButton", button))
			return
		}
		v = d.Button(button)
	})
	return v
}

// JoystickUpdate updates the state of every open joystick. Only needed when
// joystick events are disabled.
func (c *Context) JoystickUpdate() {
	if c.WasInit(legacy.INIT_JOYSTICK) == 0 {
		return
	}
	c.backend.JoystickUpdate()
}

var joystickEventTypes = []legacy.EventType{
	legacy.JOYAXISMOTION,
	legacy.JOYBALLMOTION,
	legacy.JOYHATMOTION,
	legacy.JOYBUTTONDOWN,
	legacy.JOYBUTTONUP,
}

// JoystickEventState enables (ENABLE) or disables (IGNORE) joystick events,
// or queries the state (QUERY). Returns the state after the call.
func (c *Context) JoystickEventState(state int) int {
	switch state {
	case legacy.QUERY:
	case legacy.ENABLE, legacy.IGNORE:
		c.joyEvents.Store(state == legacy.ENABLE)
		for _, t := range joystickEventTypes {
			c.EventState(t, state)
		}
	default:
		c.fail(curated.Errorf(curated.Unsupported, "JoystickEventState", state))
		return -1
	}

	if c.joyEvents.Load() {
		return legacy.ENABLE
	}
	return legacy.IGNORE
}

// JoystickClose closes the joystick. Closing a stale handle does nothing
// more than set the error.
func (c *Context) JoystickClose(handle int) {
	c.joyCrit.Lock()
	defer c.joyCrit.Unlock()
	if err := c.joysticks.Close(handle); err != nil {
		c.fail(err)
	}
}
