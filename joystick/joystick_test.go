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

package joystick_test

import (
	"testing"

	"github.com/libsdl-org/sdl12-compat-sub000/backend/headless"
	"github.com/libsdl-org/sdl12-compat-sub000/curated"
	"github.com/libsdl-org/sdl12-compat-sub000/joystick"
	"github.com/libsdl-org/sdl12-compat-sub000/legacy"
	"github.com/libsdl-org/sdl12-compat-sub000/test"
	"github.com/veandco/go-sdl2/sdl"
)

func newBackend() *headless.Backend {
	b := headless.NewBackend()
	b.Joysticks = []*headless.Joystick{
		headless.NewJoystick("stick", 10, 2, 1, 1, 4),
		headless.NewGameController("pad", 11),
	}
	return b
}

func TestOpen(t *testing.T) {
	b := newBackend()

	d, err := joystick.Open(b, 0)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, d.Controller())
	test.ExpectEquality(t, d.NumAxes(), 2)
	test.ExpectEquality(t, d.NumBalls(), 1)
	b.Joysticks[0].Axes[1] = -200
	test.ExpectEquality(t, d.Axis(1), int16(-200))

	d, err = joystick.Open(b, 1)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, d.Controller())
	test.ExpectEquality(t, d.NumAxes(), 6)
	test.ExpectEquality(t, d.NumHats(), 1)
	test.ExpectEquality(t, d.NumButtons(), 11)

	b.Joysticks[1].ControllerButtons[sdl.CONTROLLER_BUTTON_DPAD_UP] = 1
	b.Joysticks[1].ControllerButtons[sdl.CONTROLLER_BUTTON_DPAD_LEFT] = 1
	test.ExpectEquality(t, d.Hat(0), legacy.HAT_LEFTUP)

	b.Joysticks[1].ControllerButtons[sdl.CONTROLLER_BUTTON_A] = 1
	test.ExpectEquality(t, d.Button(0), uint8(1))
	test.ExpectEquality(t, d.Button(20), uint8(0))

	_, err = joystick.Open(b, 2)
	test.ExpectFailure(t, err)
}

func TestTranslate(t *testing.T) {
	i, ok := joystick.TranslateAxis(uint8(sdl.CONTROLLER_AXIS_TRIGGERRIGHT))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, i, 5)

	i, hat, ok := joystick.TranslateButton(uint8(sdl.CONTROLLER_BUTTON_START))
	test.ExpectSuccess(t, ok)
	test.ExpectFailure(t, hat)
	test.ExpectEquality(t, i, 6)

	i, hat, ok = joystick.TranslateButton(uint8(sdl.CONTROLLER_BUTTON_DPAD_DOWN))
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, hat)
	test.ExpectEquality(t, i, int(legacy.HAT_DOWN))
}

func TestHandles(t *testing.T) {
	b := newBackend()
	open := func(index int) (joystick.Device, error) {
		return joystick.Open(b, index)
	}

	var h joystick.Handles

	_, err := h.Open(open, 5, b.NumJoysticks())
	test.ExpectSuccess(t, curated.Is(err, curated.InvalidHandle))

	d0, err := h.Open(open, 0, b.NumJoysticks())
	test.DemandSuccess(t, err)

	// opening twice returns the same device
	d, _ := h.Open(open, 0, b.NumJoysticks())
	test.ExpectEquality(t, d, d0)
	test.ExpectEquality(t, b.Joysticks[0].Opened, 1)

	_, err = h.Open(open, 1, b.NumJoysticks())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.Count(), 2)

	idx, _, ok := h.Lookup(11)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, idx, 1)
	_, _, ok = h.Lookup(99)
	test.ExpectFailure(t, ok)

	// stale handles are errors, not faults
	test.ExpectSuccess(t, h.Close(0))
	test.ExpectFailure(t, h.Opened(0))
	test.ExpectSuccess(t, curated.Is(h.Close(0), curated.InvalidHandle))
	_, err = h.Get(-1)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, b.Joysticks[0].Closed, 1)

	h.CloseAll()
	test.ExpectEquality(t, h.Count(), 0)
	test.ExpectEquality(t, b.Joysticks[1].Closed, 1)
}
