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

// Package headless is an in-memory implementation of the backend interfaces.
// Nothing is drawn. Instead, the backend keeps count of the objects it has
// created and destroyed and of the number of presents, which tests can then
// inspect.
//
// Time is simulated. Ticks() only moves forward when Delay() or Advance() is
// called.
package headless

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/libsdl-org/sdl12-compat-sub000/backend"
	"github.com/libsdl-org/sdl12-compat-sub000/loader"
	"github.com/veandco/go-sdl2/sdl"
)

// Counts of objects created and destroyed by the backend.
type Counts struct {
	Windows          int
	WindowsDestroyed int
	Renderers        int
	RenderersDestroy int
	Textures         int
	TexturesDestroy  int
	GLContexts       int
	GLContextsDelete int
	Presents         int
	Swaps            int
}

// Backend implements the backend.Backend interface.
type Backend struct {
	crit sync.Mutex

	initialised bool
	watch       backend.EventWatch
	pending     []sdl.Event
	ticks       uint32

	// the desktop mode and the additional modes reported by DisplayModes()
	Desktop backend.DisplayMode
	Modes   []backend.DisplayMode

	// format reported by Renderer.PreferredFormat()
	TextureFormat uint32

	// failure injection
	FailWindow   bool
	FailRenderer bool
	FailTexture  bool
	FailContext  bool

	// symbols checked by Init(). a nil Library is not checked
	Library loader.Lookup

	// GL is shared by all contexts created by the backend
	GL *GL

	Joysticks []*Joystick

	counts Counts

	windows  map[uint32]*Window
	windowID uint32

	glAttrs  map[sdl.GLattr]int
	swap     int
	relative bool
	cursor   bool
	mod      uint16
	text     bool
	syswm    bool
}

// NewBackend is the preferred method of initialisation for the Backend type.
func NewBackend() *Backend {
	return &Backend{
		Desktop: backend.DisplayMode{
			Format:      uint32(sdl.PIXELFORMAT_RGB888),
			W:           1920,
			H:           1080,
			RefreshRate: 60,
		},
		Modes: []backend.DisplayMode{
			{Format: uint32(sdl.PIXELFORMAT_RGB888), W: 1920, H: 1080, RefreshRate: 60},
			{Format: uint32(sdl.PIXELFORMAT_RGB888), W: 1280, H: 720, RefreshRate: 60},
			{Format: uint32(sdl.PIXELFORMAT_RGB888), W: 800, H: 600, RefreshRate: 60},
		},
		TextureFormat: uint32(sdl.PIXELFORMAT_ARGB8888),
		GL:            NewGL(),
		windows:       make(map[uint32]*Window),
		glAttrs:       make(map[sdl.GLattr]int),
		cursor:        true,
	}
}

// Counts returns the current object counts.
func (b *Backend) Counts() Counts {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.counts
}

// LiveWindows returns the number of windows that have not been destroyed.
func (b *Backend) LiveWindows() int {
	b.crit.Lock()
	defer b.crit.Unlock()
	return len(b.windows)
}

// Window returns the most recently created window that has not been
// destroyed. Returns nil if there are no windows.
func (b *Backend) Window() *Window {
	b.crit.Lock()
	defer b.crit.Unlock()
	var w *Window
	for _, v := range b.windows {
		if w == nil || v.id > w.id {
			w = v
		}
	}
	return w
}

// Inject queues an event to be delivered on the next PumpEvents().
func (b *Backend) Inject(ev ...sdl.Event) {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.pending = append(b.pending, ev...)
}

// Deliver calls the event watch immediately.
func (b *Backend) Deliver(ev sdl.Event) {
	b.crit.Lock()
	w := b.watch
	b.crit.Unlock()
	if w != nil {
		w(ev)
	}
}

// Advance moves the simulated clock forward.
func (b *Backend) Advance(ms uint32) {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.ticks += ms
}

// GLAttribute returns the value set for a GL attribute.
func (b *Backend) GLAttribute(attr sdl.GLattr) int {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.glAttrs[attr]
}

// RelativeMouse returns the relative mouse mode.
func (b *Backend) RelativeMouse() bool {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.relative
}

// CursorVisible returns the cursor visibility.
func (b *Backend) CursorVisible() bool {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.cursor
}

// TextInput returns true if text input has been started.
func (b *Backend) TextInput() bool {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.text
}

// SysWMEvents returns true if window manager events are enabled.
func (b *Backend) SysWMEvents() bool {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.syswm
}

// Init implements the backend.Backend interface.
func (b *Backend) Init() error {
	if b.Library != nil {
		if _, err := loader.Resolve(b.Library, loader.Required); err != nil {
			return err
		}
	}

	b.crit.Lock()
	defer b.crit.Unlock()
	b.initialised = true
	return nil
}

// Quit implements the backend.Backend interface.
func (b *Backend) Quit() {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.initialised = false
	b.pending = b.pending[:0]
	b.syswm = false
}

// AddEventWatch implements the backend.Backend interface.
func (b *Backend) AddEventWatch(watch backend.EventWatch) {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.watch = watch
}

// PumpEvents implements the backend.Backend interface.
func (b *Backend) PumpEvents() {
	b.crit.Lock()
	pending := b.pending
	b.pending = nil
	w := b.watch
	b.crit.Unlock()

	if w == nil {
		return
	}
	for _, ev := range pending {
		w(ev)
	}
}

// Ticks implements the backend.Backend interface.
func (b *Backend) Ticks() uint32 {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.ticks
}

// Delay implements the backend.Backend interface. The simulated clock is
// advanced and the function returns immediately.
func (b *Backend) Delay(ms uint32) {
	b.Advance(ms)
}

// VideoDriverName implements the backend.Backend interface.
func (b *Backend) VideoDriverName() string {
	return "headless"
}

// DesktopMode implements the backend.Backend interface.
func (b *Backend) DesktopMode() (backend.DisplayMode, error) {
	b.crit.Lock()
	defer b.crit.Unlock()
	if !b.initialised {
		return backend.DisplayMode{}, fmt.Errorf("headless: video not initialised")
	}
	return b.Desktop, nil
}

// DisplayModes implements the backend.Backend interface.
func (b *Backend) DisplayModes() ([]backend.DisplayMode, error) {
	b.crit.Lock()
	defer b.crit.Unlock()
	if !b.initialised {
		return nil, fmt.Errorf("headless: video not initialised")
	}
	return append([]backend.DisplayMode(nil), b.Modes...), nil
}

// CreateWindow implements the backend.Backend interface.
func (b *Backend) CreateWindow(title string, w, h int32, flags backend.WindowFlags) (backend.Window, error) {
	b.crit.Lock()
	defer b.crit.Unlock()

	if b.FailWindow {
		return nil, fmt.Errorf("headless: window creation failed")
	}

	b.windowID++
	win := &Window{
		b:     b,
		id:    b.windowID,
		Title: title,
		W:     w,
		H:     h,
		flags: flags,
	}
	if flags&backend.WindowFlags(sdl.WINDOW_FULLSCREEN_DESKTOP) == backend.WindowFlags(sdl.WINDOW_FULLSCREEN_DESKTOP) {
		win.W = b.Desktop.W
		win.H = b.Desktop.H
	}
	b.windows[win.id] = win
	b.counts.Windows++

	return win, nil
}

// GLSetAttribute implements the backend.Backend interface.
func (b *Backend) GLSetAttribute(attr sdl.GLattr, value int) error {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.glAttrs[attr] = value
	return nil
}

// GLLoadLibrary implements the backend.Backend interface.
func (b *Backend) GLLoadLibrary(path string) error {
	return nil
}

// GLGetProcAddress implements the backend.Backend interface. There is no GL
// library so the function always returns nil.
func (b *Backend) GLGetProcAddress(name string) unsafe.Pointer {
	return nil
}

// GLExtensionSupported implements the backend.Backend interface.
func (b *Backend) GLExtensionSupported(name string) bool {
	return b.GL.Extension(name)
}

// GLSetSwapInterval implements the backend.Backend interface.
func (b *Backend) GLSetSwapInterval(interval int) error {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.swap = interval
	return nil
}

// SetRelativeMouseMode implements the backend.Backend interface.
func (b *Backend) SetRelativeMouseMode(on bool) error {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.relative = on
	return nil
}

// ShowCursor implements the backend.Backend interface.
func (b *Backend) ShowCursor(show bool) {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.cursor = show
}

// ModState implements the backend.Backend interface.
func (b *Backend) ModState() uint16 {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.mod
}

// SetModState implements the backend.Backend interface.
func (b *Backend) SetModState(mod uint16) {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.mod = mod
}

// StartTextInput implements the backend.Backend interface.
func (b *Backend) StartTextInput() {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.text = true
}

// StopTextInput implements the backend.Backend interface.
func (b *Backend) StopTextInput() {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.text = false
}

// SetSysWMEvents implements the backend.Backend interface.
func (b *Backend) SetSysWMEvents(on bool) {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.syswm = on
}

// NumJoysticks implements the backend.Backend interface.
func (b *Backend) NumJoysticks() int {
	return len(b.Joysticks)
}

// JoystickName implements the backend.Backend interface.
func (b *Backend) JoystickName(index int) string {
	if index < 0 || index >= len(b.Joysticks) {
		return ""
	}
	return b.Joysticks[index].name
}

// IsGameController implements the backend.Backend interface.
func (b *Backend) IsGameController(index int) bool {
	if index < 0 || index >= len(b.Joysticks) {
		return false
	}
	return b.Joysticks[index].controller
}

// OpenJoystick implements the backend.Backend interface.
func (b *Backend) OpenJoystick(index int) (backend.Joystick, error) {
	if index < 0 || index >= len(b.Joysticks) {
		return nil, fmt.Errorf("headless: no joystick at index %d", index)
	}
	j := b.Joysticks[index]
	j.Opened++
	return j, nil
}

// OpenGameController implements the backend.Backend interface.
func (b *Backend) OpenGameController(index int) (backend.GameController, error) {
	if index < 0 || index >= len(b.Joysticks) || !b.Joysticks[index].controller {
		return nil, fmt.Errorf("headless: no game controller at index %d", index)
	}
	j := b.Joysticks[index]
	j.Opened++
	return &controller{j: j}, nil
}

// JoystickUpdate implements the backend.Backend interface.
func (b *Backend) JoystickUpdate() {
}
