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

package compat_test

import (
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/libsdl-org/sdl12-compat-sub000/backend/headless"
	"github.com/libsdl-org/sdl12-compat-sub000/compat"
	"github.com/libsdl-org/sdl12-compat-sub000/legacy"
	"github.com/libsdl-org/sdl12-compat-sub000/test"
	"github.com/veandco/go-sdl2/sdl"
)

const timeout = 5 * time.Second

func TestTimer(t *testing.T) {
	c, _ := newContext(t, nil)

	fired := make(chan uint32, 1)
	id := c.AddTimer(15, func(interval uint32, param any) uint32 {
		test.ExpectEquality(t, param.(string), "param")
		fired <- interval
		return 0
	}, "param")
	test.DemandSuccess(t, id != 0)

	select {
	case interval := <-fired:
		// rounded to the timer resolution
		test.ExpectEquality(t, interval, uint32(20))
	case <-time.After(timeout):
		t.Fatalf("timer did not fire")
	}

	// returning zero stopped the timer
	time.Sleep(10 * time.Millisecond)
	test.ExpectFailure(t, c.RemoveTimer(id))
}

func TestPeriodicTimer(t *testing.T) {
	c, _ := newContext(t, nil)

	var count atomic.Int32
	done := make(chan struct{})
	id := c.AddTimer(10, func(interval uint32, _ any) uint32 {
		if count.Add(1) == 3 {
			close(done)
		}
		return interval
	}, nil)

	select {
	case <-done:
	case <-time.After(timeout):
		t.Fatalf("timer fired %d times", count.Load())
	}

	test.ExpectSuccess(t, c.RemoveTimer(id))
	test.ExpectFailure(t, c.RemoveTimer(id))
}

func TestSetTimer(t *testing.T) {
	c, _ := newContext(t, nil)

	fired := make(chan struct{}, 1)
	test.ExpectEquality(t, c.SetTimer(10, func(interval uint32) uint32 {
		select {
		case fired <- struct{}{}:
		default:
		}
		return interval
	}), 0)

	select {
	case <-fired:
	case <-time.After(timeout):
		t.Fatalf("timer did not fire")
	}

	// replacing the timer stops the old one
	test.ExpectEquality(t, c.SetTimer(0, nil), 0)

	c.QuitSubSystem(legacy.INIT_TIMER)
	test.ExpectEquality(t, c.AddTimer(10, func(uint32, any) uint32 { return 0 }, nil), compat.TimerID(0))
	test.ExpectEquality(t, c.SetTimer(10, func(uint32) uint32 { return 0 }), -1)
}

func TestJoystick(t *testing.T) {
	c, b := newContext(t, nil)

	pad := headless.NewJoystick("pad", 7, 2, 0, 1, 4)
	b.Joysticks = append(b.Joysticks, pad)

	test.ExpectEquality(t, c.NumJoysticks(), 1)
	test.ExpectEquality(t, c.JoystickName(0), "pad")
	test.ExpectEquality(t, c.JoystickName(1), "")
	test.ExpectEquality(t, c.JoystickOpened(0), false)

	j := c.JoystickOpen(0)
	test.DemandEquality(t, j, 0)
	test.ExpectEquality(t, c.JoystickOpened(0), true)
	test.ExpectEquality(t, c.JoystickIndex(j), 0)
	test.ExpectEquality(t, c.JoystickOpen(1), -1)

	// opening again returns the same joystick
	test.ExpectEquality(t, c.JoystickOpen(0), j)
	test.ExpectEquality(t, pad.Opened, 1)

	test.ExpectEquality(t, c.JoystickNumAxes(j), 2)
	test.ExpectEquality(t, c.JoystickNumBalls(j), 0)
	test.ExpectEquality(t, c.JoystickNumHats(j), 1)
	test.ExpectEquality(t, c.JoystickNumButtons(j), 4)

	pad.Axes[1] = -1000
	pad.Hats[0] = legacy.HAT_UP
	pad.Buttons[3] = 1
	c.JoystickUpdate()
	test.ExpectEquality(t, c.JoystickGetAxis(j, 1), int16(-1000))
	test.ExpectEquality(t, c.JoystickGetHat(j, 0), legacy.HAT_UP)
	test.ExpectEquality(t, c.JoystickGetButton(j, 3), uint8(1))
	test.ExpectEquality(t, c.JoystickGetButton(j, 4), uint8(0))
	_, _, ret := c.JoystickGetBall(j, 0)
	test.ExpectEquality(t, ret, -1)

	// events are reported with the legacy handle
	b.Inject(
		&sdl.JoyButtonEvent{Type: sdl.JOYBUTTONDOWN, Which: 7, Button: 3, State: sdl.PRESSED},
		&sdl.JoyAxisEvent{Type: sdl.JOYAXISMOTION, Which: 7, Axis: 1, Value: -1000},
		&sdl.JoyButtonEvent{Type: sdl.JOYBUTTONDOWN, Which: 8, Button: 3, State: sdl.PRESSED},
	)
	evs := drain(c)
	test.DemandEquality(t, len(evs), 2)
	test.ExpectEquality(t, evs[0].Type, legacy.JOYBUTTONDOWN)
	test.ExpectEquality(t, evs[0].JButton.Which, uint8(0))
	test.ExpectEquality(t, evs[0].JButton.Button, uint8(3))
	test.ExpectEquality(t, evs[0].JButton.State, legacy.PRESSED)
	test.ExpectEquality(t, evs[1].Type, legacy.JOYAXISMOTION)
	test.ExpectEquality(t, evs[1].JAxis.Value, int16(-1000))

	// events can be turned off
	test.ExpectEquality(t, c.JoystickEventState(legacy.QUERY), legacy.ENABLE)
	test.ExpectEquality(t, c.JoystickEventState(legacy.IGNORE), legacy.IGNORE)
	b.Inject(&sdl.JoyButtonEvent{Type: sdl.JOYBUTTONUP, Which: 7, Button: 3, State: sdl.RELEASED})
	test.ExpectEquality(t, len(drain(c)), 0)
	test.ExpectEquality(t, c.JoystickEventState(legacy.ENABLE), legacy.ENABLE)
	test.ExpectEquality(t, c.JoystickEventState(5), -1)

	// a closed handle is stale
	c.JoystickClose(j)
	test.ExpectEquality(t, pad.Closed, 1)
	test.ExpectEquality(t, c.JoystickOpened(j), false)
	test.ExpectEquality(t, c.JoystickNumAxes(j), -1)
	test.ExpectEquality(t, c.JoystickIndex(j), -1)
	test.ExpectInequality(t, c.GetError(), "")
}

func TestGameController(t *testing.T) {
	c, b := newContext(t, nil)

	pad := headless.NewGameController("controller", 3)
	b.Joysticks = append(b.Joysticks, pad)

	j := c.JoystickOpen(0)
	test.DemandEquality(t, j, 0)
	test.ExpectEquality(t, c.JoystickNumHats(j), 1)
	test.ExpectEquality(t, c.JoystickNumButtons(j), 11)

	// the directional pad is a hat
	pad.ControllerButtons[sdl.CONTROLLER_BUTTON_DPAD_LEFT] = 1
	test.ExpectEquality(t, c.JoystickGetHat(j, 0), legacy.HAT_LEFT)

	b.Inject(
		&sdl.ControllerButtonEvent{Type: sdl.CONTROLLERBUTTONDOWN, Which: 3, Button: uint8(sdl.CONTROLLER_BUTTON_DPAD_LEFT), State: sdl.PRESSED},
		&sdl.ControllerButtonEvent{Type: sdl.CONTROLLERBUTTONDOWN, Which: 3, Button: uint8(sdl.CONTROLLER_BUTTON_A), State: sdl.PRESSED},
		&sdl.ControllerAxisEvent{Type: sdl.CONTROLLERAXISMOTION, Which: 3, Axis: uint8(sdl.CONTROLLER_AXIS_LEFTY), Value: 500},

		// the joystick events for the same device are ignored
		&sdl.JoyButtonEvent{Type: sdl.JOYBUTTONDOWN, Which: 3, Button: 0, State: sdl.PRESSED},
	)
	evs := drain(c)
	test.DemandEquality(t, len(evs), 3)
	test.ExpectEquality(t, evs[0].Type, legacy.JOYHATMOTION)
	test.ExpectEquality(t, evs[0].JHat.Value, legacy.HAT_LEFT)
	test.ExpectEquality(t, evs[1].Type, legacy.JOYBUTTONDOWN)
	test.ExpectEquality(t, evs[1].JButton.Button, uint8(sdl.CONTROLLER_BUTTON_A))
	test.ExpectEquality(t, evs[2].Type, legacy.JOYAXISMOTION)
	test.ExpectEquality(t, evs[2].JAxis.Axis, uint8(sdl.CONTROLLER_AXIS_LEFTY))
	test.ExpectEquality(t, evs[2].JAxis.Value, int16(500))

	// closing the subsystem closes the controller
	c.QuitSubSystem(legacy.INIT_JOYSTICK)
	test.ExpectEquality(t, pad.Closed, 1)
	test.ExpectEquality(t, c.NumJoysticks(), 0)
}

func TestTicks(t *testing.T) {
	c, b := newContext(t, nil)

	test.ExpectEquality(t, c.GetTicks(), uint32(0))
	c.Delay(100)
	test.ExpectEquality(t, c.GetTicks(), uint32(100))
	b.Advance(50)
	test.ExpectEquality(t, c.GetTicks(), uint32(150))

	// a deferred present is performed before sleeping
	s := c.SetVideoMode(64, 64, 32, legacy.SWSURFACE)
	test.DemandSuccess(t, s != nil)
	c.UpdateRect(s, 0, 0, 8, 8)
	c.UpdateRect(s, 0, 0, 8, 8)
	test.ExpectEquality(t, b.Counts().Presents, 1)
	b.Advance(20)
	c.Delay(1)
	test.ExpectEquality(t, b.Counts().Presents, 2)
}

// missingSymbols resolves every symbol except those in the map
type missingSymbols map[string]bool

func (m missingSymbols) Symbol(name string) (uintptr, error) {
	if m[name] {
		return 0, nil
	}
	return 1, nil
}

func TestInitMissingSymbols(t *testing.T) {
	cfg, _ := compat.NewConfig()
	cfg.SetLookup(func(string) (string, bool) {
		return "", false
	})
	test.DemandSuccess(t, cfg.Load())

	b := headless.NewBackend()
	b.Library = missingSymbols{"SDL_GL_SwapWindow": true, "SDL_JoystickOpen": true}
	c, err := compat.New(b, cfg)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, c.Init(legacy.INIT_VIDEO), -1)
	test.ExpectEquality(t, c.WasInit(0), uint32(0))
	msg := c.GetError()
	test.ExpectSuccess(t, strings.HasPrefix(msg, "load: "))
	test.ExpectSuccess(t, strings.Contains(msg, "SDL_GL_SwapWindow"))
	test.ExpectSuccess(t, strings.Contains(msg, "SDL_JoystickOpen"))

	// nothing was created
	test.ExpectEquality(t, c.SetVideoMode(64, 64, 32, legacy.SWSURFACE) == nil, true)
	test.ExpectEquality(t, b.Counts(), headless.Counts{})

	b.Library = missingSymbols{}
	test.ExpectEquality(t, c.Init(legacy.INIT_VIDEO), 0)
	c.Quit()
}

func TestMustLoad(t *testing.T) {
	defer func() {
		r := recover()
		test.DemandSuccess(t, r != nil)
		msg, ok := r.(string)
		test.DemandSuccess(t, ok)
		test.ExpectSuccess(t, strings.HasPrefix(msg, "compat: "))
	}()
	compat.MustLoad("libdoes-not-exist-sdl2.so")
}
