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

// Package sdlbackend implements the backend interfaces with go-sdl2 and
// go-gl.
//
// SDL requires that most video functions are called from the thread that
// initialised the video subsystem. Callers should lock the main goroutine to
// its OS thread with runtime.LockOSThread() before calling Init().
package sdlbackend

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/libsdl-org/sdl12-compat-sub000/backend"
	"github.com/libsdl-org/sdl12-compat-sub000/loader"
	"github.com/libsdl-org/sdl12-compat-sub000/logger"
	"github.com/veandco/go-sdl2/sdl"
)

const subsystems = sdl.INIT_VIDEO | sdl.INIT_EVENTS | sdl.INIT_TIMER | sdl.INIT_JOYSTICK | sdl.INIT_GAMECONTROLLER

// Backend implements the backend.Backend interface.
type Backend struct {
	crit sync.Mutex

	// libraries tried by Init() when checking the entry points
	libs []string

	watch    backend.EventWatch
	handle   sdl.EventWatchHandle
	hasWatch bool
}

// NewBackend is the preferred method of initialisation for the Backend type.
// Init() checks the first of the named libraries that can be opened for every
// entry point the layer needs. No names means the platform defaults.
func NewBackend(libs ...string) *Backend {
	return &Backend{libs: libs}
}

// Init implements the backend.Backend interface. Returns a LoadFailure error if
// the backend library is missing or too old.
func (b *Backend) Init() error {
	lib, err := loader.Load(b.libs...)
	if err != nil {
		return err
	}
	_ = lib.Close()

	err = sdl.InitSubSystem(subsystems)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}

	var v sdl.Version
	sdl.GetVersion(&v)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", v.Major, v.Minor, v.Patch)

	return nil
}

// Quit implements the backend.Backend interface.
func (b *Backend) Quit() {
	b.AddEventWatch(nil)
	sdl.QuitSubSystem(subsystems)
}

// AddEventWatch implements the backend.Backend interface.
func (b *Backend) AddEventWatch(watch backend.EventWatch) {
	b.crit.Lock()
	defer b.crit.Unlock()

	if b.hasWatch {
		sdl.DelEventWatch(b.handle)
		b.hasWatch = false
	}

	b.watch = watch
	if watch == nil {
		return
	}

	b.handle = sdl.AddEventWatchFunc(func(ev sdl.Event, _ interface{}) bool {
		watch(ev)
		return true
	}, nil)
	b.hasWatch = true
}

// PumpEvents implements the backend.Backend interface. Events are delivered
// to the event watch during the pump and then removed from the SDL queue.
func (b *Backend) PumpEvents() {
	sdl.PumpEvents()
	sdl.FlushEvents(sdl.FIRSTEVENT, sdl.LASTEVENT)
}

// Ticks implements the backend.Backend interface.
func (b *Backend) Ticks() uint32 {
	return sdl.GetTicks()
}

// Delay implements the backend.Backend interface.
func (b *Backend) Delay(ms uint32) {
	sdl.Delay(ms)
}

// VideoDriverName implements the backend.Backend interface.
func (b *Backend) VideoDriverName() string {
	n, err := sdl.GetCurrentVideoDriver()
	if err != nil {
		return ""
	}
	return n
}

func displayMode(m sdl.DisplayMode) backend.DisplayMode {
	return backend.DisplayMode{
		Format:      m.Format,
		W:           m.W,
		H:           m.H,
		RefreshRate: m.RefreshRate,
	}
}

// DesktopMode implements the backend.Backend interface.
func (b *Backend) DesktopMode() (backend.DisplayMode, error) {
	m, err := sdl.GetDesktopDisplayMode(0)
	if err != nil {
		return backend.DisplayMode{}, fmt.Errorf("sdl: %w", err)
	}
	return displayMode(m), nil
}

// DisplayModes implements the backend.Backend interface.
func (b *Backend) DisplayModes() ([]backend.DisplayMode, error) {
	n, err := sdl.GetNumDisplayModes(0)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	modes := make([]backend.DisplayMode, 0, n)
	for i := 0; i < n; i++ {
		m, err := sdl.GetDisplayMode(0, i)
		if err != nil {
			logger.Logf(logger.Allow, "sdl", "display mode %d: %v", i, err)
			continue
		}
		modes = append(modes, displayMode(m))
	}
	return modes, nil
}

// CreateWindow implements the backend.Backend interface.
func (b *Backend) CreateWindow(title string, w, h int32, flags backend.WindowFlags) (backend.Window, error) {
	win, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, w, h, uint32(flags))
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	return &window{win: win}, nil
}

// GLSetAttribute implements the backend.Backend interface.
func (b *Backend) GLSetAttribute(attr sdl.GLattr, value int) error {
	err := sdl.GLSetAttribute(attr, value)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}

// GLLoadLibrary implements the backend.Backend interface.
func (b *Backend) GLLoadLibrary(path string) error {
	err := sdl.GLLoadLibrary(path)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}

// GLGetProcAddress implements the backend.Backend interface.
func (b *Backend) GLGetProcAddress(name string) unsafe.Pointer {
	return sdl.GLGetProcAddress(name)
}

// GLExtensionSupported implements the backend.Backend interface.
func (b *Backend) GLExtensionSupported(name string) bool {
	return sdl.GLExtensionSupported(name)
}

// GLSetSwapInterval implements the backend.Backend interface.
func (b *Backend) GLSetSwapInterval(interval int) error {
	err := sdl.GLSetSwapInterval(interval)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}

// SetRelativeMouseMode implements the backend.Backend interface.
func (b *Backend) SetRelativeMouseMode(on bool) error {
	sdl.SetRelativeMouseMode(on)
	if sdl.GetRelativeMouseMode() != on {
		return fmt.Errorf("sdl: relative mouse mode not supported")
	}
	return nil
}

// ShowCursor implements the backend.Backend interface.
func (b *Backend) ShowCursor(show bool) {
	var err error
	if show {
		_, err = sdl.ShowCursor(sdl.ENABLE)
	} else {
		_, err = sdl.ShowCursor(sdl.DISABLE)
	}
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "show cursor: %v", err)
	}
}

// SetSysWMEvents implements the backend.Backend interface.
func (b *Backend) SetSysWMEvents(on bool) {
	if on {
		sdl.EventState(sdl.SYSWMEVENT, sdl.ENABLE)
	} else {
		sdl.EventState(sdl.SYSWMEVENT, sdl.IGNORE)
	}
}

// ModState implements the backend.Backend interface.
func (b *Backend) ModState() uint16 {
	return uint16(sdl.GetModState())
}

// SetModState implements the backend.Backend interface.
func (b *Backend) SetModState(mod uint16) {
	sdl.SetModState(sdl.Keymod(mod))
}

// StartTextInput implements the backend.Backend interface.
func (b *Backend) StartTextInput() {
	sdl.StartTextInput()
}

// StopTextInput implements the backend.Backend interface.
func (b *Backend) StopTextInput() {
	sdl.StopTextInput()
}
