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
	"testing"

	"github.com/libsdl-org/sdl12-compat-sub000/backend/headless"
	"github.com/libsdl-org/sdl12-compat-sub000/compat"
	"github.com/libsdl-org/sdl12-compat-sub000/keysym"
	"github.com/libsdl-org/sdl12-compat-sub000/legacy"
	"github.com/libsdl-org/sdl12-compat-sub000/test"
	"github.com/veandco/go-sdl2/sdl"
)

// newContext creates an initialised Context on a headless backend. Hints are
// read from env and never from the real environment.
func newContext(t *testing.T, env map[string]string) (*compat.Context, *headless.Backend) {
	t.Helper()

	cfg, _ := compat.NewConfig()
	cfg.SetLookup(func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})
	test.DemandSuccess(t, cfg.Load())

	b := headless.NewBackend()
	c, err := compat.New(b, cfg)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, c.Init(legacy.INIT_VIDEO|legacy.INIT_JOYSTICK|legacy.INIT_TIMER), 0)
	t.Cleanup(c.Quit)

	return c, b
}

// drain polls every event from the queue
func drain(c *compat.Context) []legacy.Event {
	var evs []legacy.Event
	var ev legacy.Event
	for c.PollEvent(&ev) {
		evs = append(evs, ev)
	}
	return evs
}

func key(down bool, sym sdl.Keycode, scancode sdl.Scancode) *sdl.KeyboardEvent {
	ev := &sdl.KeyboardEvent{
		Type:   sdl.KEYUP,
		State:  sdl.RELEASED,
		Keysym: sdl.Keysym{Sym: sym, Scancode: scancode},
	}
	if down {
		ev.Type = sdl.KEYDOWN
		ev.State = sdl.PRESSED
	}
	return ev
}

func text(s string) *sdl.TextInputEvent {
	ev := &sdl.TextInputEvent{Type: sdl.TEXTINPUT}
	copy(ev.Text[:], s)
	return ev
}

func TestInitQuit(t *testing.T) {
	c, b := newContext(t, nil)
	test.ExpectEquality(t, c.WasInit(legacy.INIT_VIDEO), legacy.INIT_VIDEO)
	test.ExpectEquality(t, c.WasInit(legacy.INIT_CDROM), uint32(0))

	c.QuitSubSystem(legacy.INIT_JOYSTICK | legacy.INIT_TIMER)
	test.ExpectEquality(t, c.WasInit(0), legacy.INIT_VIDEO)

	// the backend is still running while video is
	_, err := b.DesktopMode()
	test.ExpectSuccess(t, err)

	c.Quit()
	test.ExpectEquality(t, c.WasInit(0), uint32(0))
	_, err = b.DesktopMode()
	test.ExpectFailure(t, err)
}

func TestKeys(t *testing.T) {
	c, b := newContext(t, nil)

	b.Inject(key(true, 'a', 4), key(false, 'a', 4))
	evs := drain(c)
	test.DemandEquality(t, len(evs), 2)
	test.ExpectEquality(t, evs[0].Type, legacy.KEYDOWN)
	test.ExpectEquality(t, evs[0].Key.Keysym.Sym, keysym.Key('a'))
	test.ExpectEquality(t, evs[0].Key.State, legacy.PRESSED)
	test.ExpectEquality(t, evs[0].Key.Keysym.Unicode, uint16(0))
	test.ExpectEquality(t, evs[1].Type, legacy.KEYUP)

	// modern repeats are dropped
	r := key(true, 'a', 4)
	r.Repeat = 1
	b.Inject(key(true, 'a', 4), r, r)
	evs = drain(c)
	test.ExpectEquality(t, len(evs), 1)
	test.ExpectEquality(t, c.GetKeyState()['a'], legacy.PRESSED)

	b.Inject(key(false, 'a', 4))
	drain(c)
	test.ExpectEquality(t, c.GetKeyState()['a'], legacy.RELEASED)
}

func TestKeyboardLayout(t *testing.T) {
	c, b := newContext(t, map[string]string{"SDL12COMPAT_USE_KEYBOARD_LAYOUT": "0"})

	// the key in the 'a' position on a french layout
	b.Inject(key(true, 'q', 4))
	evs := drain(c)
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0].Key.Keysym.Sym, keysym.Key('a'))
}

func TestUnicode(t *testing.T) {
	c, b := newContext(t, nil)

	test.ExpectEquality(t, c.EnableUNICODE(1), 0)
	test.ExpectSuccess(t, b.TextInput())
	test.ExpectEquality(t, c.EnableUNICODE(-1), 1)

	// the text is merged into the key press
	b.Inject(key(true, 'a', 4), text("a"), key(false, 'a', 4))
	evs := drain(c)
	test.DemandEquality(t, len(evs), 2)
	test.ExpectEquality(t, evs[0].Type, legacy.KEYDOWN)
	test.ExpectEquality(t, evs[0].Key.Keysym.Unicode, uint16('a'))
	test.ExpectEquality(t, evs[1].Type, legacy.KEYUP)
	test.ExpectEquality(t, evs[1].Key.Keysym.Unicode, uint16(0))

	// a key press without text is flushed at the end of the pump
	b.Inject(key(true, 0x40000052, 82))
	evs = drain(c)
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0].Key.Keysym.Sym, keysym.Up)
	test.ExpectEquality(t, evs[0].Key.Keysym.Unicode, uint16(0))

	// text on its own
	b.Inject(text("é"))
	evs = drain(c)
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0].Key.Keysym.Sym, keysym.Unknown)
	test.ExpectEquality(t, evs[0].Key.Keysym.Unicode, uint16(0xe9))

	test.ExpectEquality(t, c.EnableUNICODE(0), 1)
	test.ExpectFailure(t, b.TextInput())

	// text is ignored when unicode is off
	b.Inject(text("a"))
	test.ExpectEquality(t, len(drain(c)), 0)
}

func TestKeyRepeat(t *testing.T) {
	c, b := newContext(t, nil)

	test.ExpectEquality(t, c.EnableKeyRepeat(legacy.DEFAULT_REPEAT_DELAY, legacy.DEFAULT_REPEAT_INTERVAL), 0)
	delay, interval := c.GetKeyRepeat()
	test.ExpectEquality(t, delay, 500)
	test.ExpectEquality(t, interval, 30)
	test.ExpectEquality(t, c.EnableKeyRepeat(-1, 0), -1)

	b.Inject(key(true, 'z', 29))
	test.ExpectEquality(t, len(drain(c)), 1)

	b.Advance(499)
	test.ExpectEquality(t, len(drain(c)), 0)

	b.Advance(1)
	evs := drain(c)
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0].Type, legacy.KEYDOWN)
	test.ExpectEquality(t, evs[0].Key.Keysym.Sym, keysym.Key('z'))

	b.Advance(29)
	test.ExpectEquality(t, len(drain(c)), 0)
	b.Advance(1)
	test.ExpectEquality(t, len(drain(c)), 1)

	// releasing the key stops the repeat
	b.Inject(key(false, 'z', 29))
	test.ExpectEquality(t, len(drain(c)), 1)
	b.Advance(1000)
	test.ExpectEquality(t, len(drain(c)), 0)

	// a delay of zero disables repeat
	c.EnableKeyRepeat(0, 0)
	b.Inject(key(true, 'z', 29))
	drain(c)
	b.Advance(1000)
	test.ExpectEquality(t, len(drain(c)), 0)
}

func TestMouse(t *testing.T) {
	c, b := newContext(t, nil)
	screen := c.SetVideoMode(320, 200, 32, 0)
	test.DemandSuccess(t, screen != nil)
	win := b.Window()

	b.Inject(
		&sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, WindowID: win.ID(), X: 10, Y: 20, XRel: 3, YRel: -4},
		&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, WindowID: win.ID(), Button: sdl.BUTTON_LEFT, State: sdl.PRESSED, X: 11, Y: 21},
		&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, WindowID: win.ID(), Button: sdl.BUTTON_X1, State: sdl.PRESSED, X: 11, Y: 21},
	)
	evs := drain(c)
	test.DemandEquality(t, len(evs), 3)
	test.ExpectEquality(t, evs[0].Type, legacy.MOUSEMOTION)
	test.ExpectEquality(t, evs[0].Motion.X, uint16(10))
	test.ExpectEquality(t, evs[0].Motion.YRel, int16(-4))
	test.ExpectEquality(t, evs[1].Button.Button, legacy.BUTTON_LEFT)
	test.ExpectEquality(t, evs[1].Button.X, uint16(11))
	test.ExpectEquality(t, evs[2].Button.Button, legacy.BUTTON_X1)

	x, y, buttons := c.GetMouseState()
	test.ExpectEquality(t, x, int32(11))
	test.ExpectEquality(t, y, int32(21))
	test.ExpectEquality(t, buttons, legacy.ButtonMask(legacy.BUTTON_LEFT)|legacy.ButtonMask(legacy.BUTTON_X1))

	dx, dy, _ := c.GetRelativeMouseState()
	test.ExpectEquality(t, dx, int32(3))
	test.ExpectEquality(t, dy, int32(-4))
	dx, _, _ = c.GetRelativeMouseState()
	test.ExpectEquality(t, dx, int32(0))

	// positions outside the surface are clamped
	b.Inject(&sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, WindowID: win.ID(), X: 500, Y: -5})
	evs = drain(c)
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0].Motion.X, uint16(319))
	test.ExpectEquality(t, evs[0].Motion.Y, uint16(0))

	// the wheel is a press and release
	b.Inject(&sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: -1})
	evs = drain(c)
	test.DemandEquality(t, len(evs), 2)
	test.ExpectEquality(t, evs[0].Type, legacy.MOUSEBUTTONDOWN)
	test.ExpectEquality(t, evs[0].Button.Button, legacy.BUTTON_WHEELDOWN)
	test.ExpectEquality(t, evs[1].Type, legacy.MOUSEBUTTONUP)

	c.WarpMouse(100, 50)
	test.ExpectEquality(t, win.Warped, [2]int32{100, 50})
}

func TestRelativeMouse(t *testing.T) {
	c, b := newContext(t, nil)
	test.DemandSuccess(t, c.SetVideoMode(320, 200, 32, 0) != nil)

	test.ExpectEquality(t, c.ShowCursor(legacy.IGNORE), 1)
	test.ExpectFailure(t, b.RelativeMouse())

	test.ExpectEquality(t, c.WM_GrabInput(legacy.GRAB_ON), legacy.GRAB_ON)
	test.ExpectSuccess(t, b.Window().Grabbed)
	test.ExpectSuccess(t, b.RelativeMouse())
	test.ExpectEquality(t, c.WM_GrabInput(legacy.GRAB_QUERY), legacy.GRAB_ON)

	test.ExpectEquality(t, c.ShowCursor(legacy.QUERY), 0)
	test.ExpectEquality(t, c.ShowCursor(legacy.ENABLE), 0)
	test.ExpectFailure(t, b.RelativeMouse())
}

func TestWindowEvents(t *testing.T) {
	c, b := newContext(t, nil)
	test.DemandSuccess(t, c.SetVideoMode(320, 200, 32, legacy.RESIZABLE) != nil)
	id := b.Window().ID()

	b.Inject(
		&sdl.WindowEvent{Type: sdl.WINDOWEVENT, WindowID: id, Event: sdl.WINDOWEVENT_EXPOSED},
		&sdl.WindowEvent{Type: sdl.WINDOWEVENT, WindowID: id, Event: sdl.WINDOWEVENT_RESIZED, Data1: 640, Data2: 400},
		&sdl.WindowEvent{Type: sdl.WINDOWEVENT, WindowID: id, Event: sdl.WINDOWEVENT_FOCUS_LOST},
		&sdl.WindowEvent{Type: sdl.WINDOWEVENT, WindowID: id, Event: sdl.WINDOWEVENT_CLOSE},
		&sdl.QuitEvent{Type: sdl.QUIT},
	)
	evs := drain(c)
	test.DemandEquality(t, len(evs), 4)
	test.ExpectEquality(t, evs[0].Type, legacy.VIDEOEXPOSE)
	test.ExpectEquality(t, evs[1].Type, legacy.VIDEORESIZE)
	test.ExpectEquality(t, evs[1].Resize, legacy.ResizeEvent{W: 640, H: 400})
	test.ExpectEquality(t, evs[2].Type, legacy.ACTIVEEVENT)
	test.ExpectEquality(t, evs[2].Active, legacy.ActiveEvent{Gain: 0, State: legacy.APPINPUTFOCUS})
	test.ExpectEquality(t, evs[3].Type, legacy.QUIT)

	test.ExpectEquality(t, c.GetAppState()&legacy.APPINPUTFOCUS, uint8(0))

	// events for other windows are ignored
	b.Inject(&sdl.WindowEvent{Type: sdl.WINDOWEVENT, WindowID: id + 1, Event: sdl.WINDOWEVENT_EXPOSED})
	test.ExpectEquality(t, len(drain(c)), 0)
}

func TestResizeNotResizable(t *testing.T) {
	c, b := newContext(t, nil)
	test.DemandSuccess(t, c.SetVideoMode(320, 200, 32, 0) != nil)

	b.Inject(&sdl.WindowEvent{Type: sdl.WINDOWEVENT, WindowID: b.Window().ID(), Event: sdl.WINDOWEVENT_RESIZED, Data1: 640, Data2: 400})
	test.ExpectEquality(t, len(drain(c)), 0)
}

func TestFilterAndPeep(t *testing.T) {
	c, b := newContext(t, nil)

	c.SetEventFilter(func(ev *legacy.Event) bool {
		return ev.Type != legacy.KEYUP
	})
	b.Inject(key(true, 'a', 4), key(false, 'a', 4))
	c.PumpEvents()

	evs := make([]legacy.Event, 4)
	test.ExpectEquality(t, c.PeepEvents(evs, 4, compat.PEEKEVENT, legacy.ALLEVENTS), 1)
	test.ExpectEquality(t, evs[0].Type, legacy.KEYDOWN)

	// the filter doesn't apply to pushed events
	test.ExpectEquality(t, c.PushEvent(&legacy.Event{Type: legacy.KEYUP}), 0)
	test.ExpectEquality(t, c.PeepEvents(evs, 4, compat.GETEVENT, legacy.EventMask(legacy.KEYUP)), 1)
	test.ExpectEquality(t, c.PeepEvents(evs, 4, compat.GETEVENT, legacy.ALLEVENTS), 1)
	test.ExpectFailure(t, c.PollEvent(nil))

	user := []legacy.Event{{Type: legacy.USEREVENT, User: legacy.UserEvent{Code: 7}}}
	test.ExpectEquality(t, c.PeepEvents(user, 1, compat.ADDEVENT, 0), 1)
	test.ExpectSuccess(t, c.PollEvent(nil))

	var ev legacy.Event
	test.ExpectSuccess(t, c.WaitEvent(&ev))
	test.ExpectEquality(t, ev.User.Code, int32(7))

	// disabled events never reach the queue
	test.ExpectEquality(t, c.EventState(legacy.KEYDOWN, legacy.IGNORE), uint8(legacy.ENABLE))
	b.Inject(key(true, 'a', 4))
	test.ExpectEquality(t, len(drain(c)), 0)

	// not even when pushed by the application. dropping them isn't an error
	test.ExpectEquality(t, c.PushEvent(&legacy.Event{Type: legacy.KEYDOWN}), 0)
	test.ExpectEquality(t, len(drain(c)), 0)

	mixed := []legacy.Event{{Type: legacy.KEYDOWN}, {Type: legacy.USEREVENT}}
	test.ExpectEquality(t, c.PeepEvents(mixed, 2, compat.ADDEVENT, 0), 2)
	evs = drain(c)
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0].Type, legacy.USEREVENT)

	test.ExpectEquality(t, c.EventState(legacy.KEYDOWN, legacy.ENABLE), uint8(legacy.IGNORE))
	test.ExpectEquality(t, c.PushEvent(&legacy.Event{Type: legacy.KEYDOWN}), 0)
	test.ExpectEquality(t, len(drain(c)), 1)
}

func TestSysWMEventState(t *testing.T) {
	c, b := newContext(t, nil)

	// off until the application asks for them
	test.ExpectFailure(t, b.SysWMEvents())
	test.ExpectEquality(t, c.EventState(legacy.SYSWMEVENT, legacy.QUERY), uint8(legacy.IGNORE))
	test.ExpectFailure(t, b.SysWMEvents())

	test.ExpectEquality(t, c.EventState(legacy.SYSWMEVENT, legacy.ENABLE), uint8(legacy.IGNORE))
	test.ExpectSuccess(t, b.SysWMEvents())
	test.ExpectEquality(t, c.EventState(legacy.SYSWMEVENT, legacy.QUERY), uint8(legacy.ENABLE))
	test.ExpectSuccess(t, b.SysWMEvents())

	test.ExpectEquality(t, c.EventState(legacy.SYSWMEVENT, legacy.IGNORE), uint8(legacy.ENABLE))
	test.ExpectFailure(t, b.SysWMEvents())

	// other types leave the backend alone
	c.EventState(legacy.KEYDOWN, legacy.ENABLE)
	test.ExpectFailure(t, b.SysWMEvents())
}

func TestSysWMEventStateNotAllowed(t *testing.T) {
	c, b := newContext(t, map[string]string{"SDL12COMPAT_ALLOW_SYSWM": "0"})

	c.EventState(legacy.SYSWMEVENT, legacy.ENABLE)
	test.ExpectFailure(t, b.SysWMEvents())
}
