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

// Package joystick presents modern joysticks and game controllers as legacy
// joysticks. The kind of device is decided once, when the device is opened,
// and hidden behind the Device interface.
//
// A game controller is presented with six axes, one hat made from the
// directional pad and eleven buttons:
//
//	axes:    left x, left y, right x, right y, left trigger, right trigger
//	buttons: A, B, X, Y, back, guide, start, left stick, right stick,
//	         left shoulder, right shoulder
package joystick

import (
	"github.com/libsdl-org/sdl12-compat-sub000/backend"
	"github.com/libsdl-org/sdl12-compat-sub000/legacy"
	"github.com/veandco/go-sdl2/sdl"
)

// Device is an open joystick of either kind.
type Device interface {
	InstanceID() int32
	Name() string
	NumAxes() int
	NumBalls() int
	NumHats() int
	NumButtons() int
	Axis(axis int) int16
	Ball(ball int) (int32, int32)
	Hat(hat int) uint8
	Button(button int) uint8
	Close()

	// Controller returns true if the device is a game controller. Events for
	// game controllers arrive as controller events and must be translated
	// with TranslateAxis() and TranslateButton()
	Controller() bool
}

// Open the joystick at the device index. Devices with a game controller
// mapping are opened as game controllers.
func Open(b backend.Backend, index int) (Device, error) {
	if b.IsGameController(index) {
		pad, err := b.OpenGameController(index)
		if err == nil {
			return &controller{pad: pad}, nil
		}
	}

	joy, err := b.OpenJoystick(index)
	if err != nil {
		return nil, err
	}
	return &physical{Joystick: joy}, nil
}

// physical is a joystick without a controller mapping. It is a thin wrapper
// over the backend joystick.
type physical struct {
	backend.Joystick
}

func (j *physical) Controller() bool {
	return false
}

const numControllerButtons = 11

// the directional pad is a hat
var dpad = [4]struct {
	button sdl.GameControllerButton
	hat    uint8
}{
	{button: sdl.CONTROLLER_BUTTON_DPAD_UP, hat: legacy.HAT_UP},
	{button: sdl.CONTROLLER_BUTTON_DPAD_DOWN, hat: legacy.HAT_DOWN},
	{button: sdl.CONTROLLER_BUTTON_DPAD_LEFT, hat: legacy.HAT_LEFT},
	{button: sdl.CONTROLLER_BUTTON_DPAD_RIGHT, hat: legacy.HAT_RIGHT},
}

// controller is a joystick with a controller mapping.
type controller struct {
	pad backend.GameController
}

func (c *controller) InstanceID() int32 {
	return c.pad.InstanceID()
}

func (c *controller) Name() string {
	return c.pad.Name()
}

func (c *controller) NumAxes() int {
	return int(sdl.CONTROLLER_AXIS_MAX)
}

func (c *controller) NumBalls() int {
	return 0
}

func (c *controller) NumHats() int {
	return 1
}

func (c *controller) NumButtons() int {
	return numControllerButtons
}

func (c *controller) Axis(axis int) int16 {
	if axis < 0 || axis >= c.NumAxes() {
		return 0
	}
	return c.pad.Axis(sdl.GameControllerAxis(axis))
}

func (c *controller) Ball(ball int) (int32, int32) {
	return 0, 0
}

func (c *controller) Hat(hat int) uint8 {
	if hat != 0 {
		return legacy.HAT_CENTERED
	}
	var v uint8
	for _, d := range dpad {
		if c.pad.Button(d.button) != 0 {
			v |= d.hat
		}
	}
	return v
}

func (c *controller) Button(button int) uint8 {
	if button < 0 || button >= numControllerButtons {
		return 0
	}
	return c.pad.Button(sdl.GameControllerButton(button))
}

func (c *controller) Close() {
	c.pad.Close()
}

func (c *controller) Controller() bool {
	return true
}

// TranslateAxis returns the legacy axis index for a controller axis. Returns
// false if the axis has no legacy equivalent.
func TranslateAxis(axis uint8) (int, bool) {
	if int(axis) >= int(sdl.CONTROLLER_AXIS_MAX) {
		return 0, false
	}
	return int(axis), true
}

// TranslateButton returns the legacy button index for a controller button.
// Buttons on the directional pad are reported as a hat and the returned bool
// isHat is true; the index in that case is the hat bit for the button.
func TranslateButton(button uint8) (index int, isHat bool, ok bool) {
	if int(button) < numControllerButtons {
		return int(button), false, true
	}
	for _, d := range dpad {
		if int(button) == int(d.button) {
			return int(d.hat), true, true
		}
	}
	return 0, false, false
}
