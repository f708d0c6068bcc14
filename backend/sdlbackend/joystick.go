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

package sdlbackend

import (
	"fmt"

	"github.com/libsdl-org/sdl12-compat-sub000/backend"
	"github.com/libsdl-org/sdl12-compat-sub000/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// NumJoysticks implements the backend.Backend interface.
func (b *Backend) NumJoysticks() int {
	return sdl.NumJoysticks()
}

// JoystickName implements the backend.Backend interface.
func (b *Backend) JoystickName(index int) string {
	return sdl.JoystickNameForIndex(index)
}

// IsGameController implements the backend.Backend interface.
func (b *Backend) IsGameController(index int) bool {
	return sdl.IsGameController(index)
}

// OpenJoystick implements the backend.Backend interface.
func (b *Backend) OpenJoystick(index int) (backend.Joystick, error) {
	joy := sdl.JoystickOpen(index)
	if joy == nil || !joy.Attached() {
		return nil, fmt.Errorf("sdl: %w", sdl.GetError())
	}
	logger.Logf(logger.Allow, "sdl", "joystick: %s", joy.Name())
	return &joystick{joy: joy}, nil
}

// OpenGameController implements the backend.Backend interface.
func (b *Backend) OpenGameController(index int) (backend.GameController, error) {
	pad := sdl.GameControllerOpen(index)
	if pad == nil || !pad.Attached() {
		return nil, fmt.Errorf("sdl: %w", sdl.GetError())
	}
	logger.Logf(logger.Allow, "sdl", "gamepad: %s", pad.Name())
	return &gameController{pad: pad}, nil
}

// JoystickUpdate implements the backend.Backend interface.
func (b *Backend) JoystickUpdate() {
	sdl.JoystickUpdate()
}

type joystick struct {
	joy *sdl.Joystick
}

func (j *joystick) InstanceID() int32 {
	return int32(j.joy.InstanceID())
}

func (j *joystick) Name() string {
	return j.joy.Name()
}

func (j *joystick) NumAxes() int {
	return j.joy.NumAxes()
}

func (j *joystick) NumBalls() int {
	return j.joy.NumBalls()
}

func (j *joystick) NumHats() int {
	return j.joy.NumHats()
}

func (j *joystick) NumButtons() int {
	return j.joy.NumButtons()
}

func (j *joystick) Axis(axis int) int16 {
	return j.joy.Axis(axis)
}

func (j *joystick) Ball(ball int) (int32, int32) {
	var dx, dy int32
	j.joy.Ball(ball, &dx, &dy)
	return dx, dy
}

func (j *joystick) Hat(hat int) uint8 {
	return j.joy.Hat(hat)
}

func (j *joystick) Button(button int) uint8 {
	return j.joy.Button(button)
}

func (j *joystick) Close() {
	j.joy.Close()
}

type gameController struct {
	pad *sdl.GameController
}

func (c *gameController) InstanceID() int32 {
	return int32(c.pad.Joystick().InstanceID())
}

func (c *gameController) Name() string {
	return c.pad.Name()
}

func (c *gameController) Axis(axis sdl.GameControllerAxis) int16 {
	return c.pad.Axis(axis)
}

func (c *gameController) Button(button sdl.GameControllerButton) uint8 {
	return c.pad.Button(button)
}

func (c *gameController) Close() {
	c.pad.Close()
}
