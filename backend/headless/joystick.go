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

package headless

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Joystick implements the backend.Joystick interface. The state of the
// joystick is set directly by tests.
type Joystick struct {
	name       string
	instance   int32
	controller bool

	Axes    []int16
	Balls   [][2]int32
	Hats    []uint8
	Buttons []uint8

	// controller state, indexed by sdl.GameControllerAxis and
	// sdl.GameControllerButton
	ControllerAxes    [sdl.CONTROLLER_AXIS_MAX]int16
	ControllerButtons [sdl.CONTROLLER_BUTTON_MAX]uint8

	Opened int
	Closed int
}

// NewJoystick creates a joystick with the specified number of controls.
func NewJoystick(name string, instance int32, axes, balls, hats, buttons int) *Joystick {
	return &Joystick{
		name:     name,
		instance: instance,
		Axes:     make([]int16, axes),
		Balls:    make([][2]int32, balls),
		Hats:     make([]uint8, hats),
		Buttons:  make([]uint8, buttons),
	}
}

// NewGameController creates a joystick that the backend reports as having a
// controller mapping.
func NewGameController(name string, instance int32) *Joystick {
	j := NewJoystick(name, instance, 6, 0, 1, 15)
	j.controller = true
	return j
}

// InstanceID implements the backend.Joystick interface.
func (j *Joystick) InstanceID() int32 {
	return j.instance
}

// Name implements the backend.Joystick interface.
func (j *Joystick) Name() string {
	return j.name
}

// NumAxes implements the backend.Joystick interface.
func (j *Joystick) NumAxes() int {
	return len(j.Axes)
}

// NumBalls implements the backend.Joystick interface.
func (j *Joystick) NumBalls() int {
	return len(j.Balls)
}

// NumHats implements the backend.Joystick interface.
func (j *Joystick) NumHats() int {
	return len(j.Hats)
}

// NumButtons implements the backend.Joystick interface.
func (j *Joystick) NumButtons() int {
	return len(j.Buttons)
}

// Axis implements the backend.Joystick interface.
func (j *Joystick) Axis(axis int) int16 {
	if axis < 0 || axis >= len(j.Axes) {
		return 0
	}
	return j.Axes[axis]
}

// Ball implements the backend.Joystick interface.
func (j *Joystick) Ball(ball int) (int32, int32) {
	if ball < 0 || ball >= len(j.Balls) {
		return 0, 0
	}
	return j.Balls[ball][0], j.Balls[ball][1]
}

// Hat implements the backend.Joystick interface.
func (j *Joystick) Hat(hat int) uint8 {
	if hat < 0 || hat >= len(j.Hats) {
		return 0
	}
	return j.Hats[hat]
}

// Button implements the backend.Joystick interface.
func (j *Joystick) Button(button int) uint8 {
	if button < 0 || button >= len(j.Buttons) {
		return 0
	}
	return j.Buttons[button]
}

// Close implements the backend.Joystick interface.
func (j *Joystick) Close() {
	j.Closed++
}

// controller implements the backend.GameController interface over a
// Joystick.
type controller struct {
	j *Joystick
}

func (c *controller) InstanceID() int32 {
	return c.j.instance
}

func (c *controller) Name() string {
	return c.j.name
}

func (c *controller) Axis(axis sdl.GameControllerAxis) int16 {
	if axis < 0 || int(axis) >= len(c.j.ControllerAxes) {
		return 0
	}
	return c.j.ControllerAxes[axis]
}

func (c *controller) Button(button sdl.GameControllerButton) uint8 {
	if button < 0 || int(button) >= len(c.j.ControllerButtons) {
		return 0
	}
	return c.j.ControllerButtons[button]
}

func (c *controller) Close() {
	c.j.Closed++
}
