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

// Package backend defines the modern multimedia services that the
// compatibility layer is built on. The sdlbackend package implements the
// interfaces with go-sdl2 and go-gl. The headless package implements them in
// memory for testing.
//
// Events are delivered as go-sdl2 event values regardless of the
// implementation. The event types are plain Go structures and can be
// constructed without a running backend.
package backend

import (
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
)

// DisplayMode is a resolution and refresh rate supported by a display.
type DisplayMode struct {
	Format      uint32
	W, H        int32
	RefreshRate int32
}

// Bpp returns the bits per pixel of the display mode's pixel format.
func (m DisplayMode) Bpp() int {
	return int(m.Format>>8) & 0xff
}

// WindowFlags is a combination of sdl.WINDOW_* values.
type WindowFlags uint32

// EventWatch is called synchronously for every event the backend produces,
// on the goroutine that pumped the backend.
type EventWatch func(ev sdl.Event)

// Backend is the top level collaborator.
type Backend interface {
	// Init the video and event subsystems. Init can be called more than
	// once if Quit is called in between
	Init() error
	Quit()

	// AddEventWatch replaces any previously registered watch. A nil watch
	// removes the watch
	AddEventWatch(watch EventWatch)

	// PumpEvents gathers pending input and calls the event watch for each
	// event
	PumpEvents()

	Ticks() uint32
	Delay(ms uint32)

	VideoDriverName() string
	DesktopMode() (DisplayMode, error)
	DisplayModes() ([]DisplayMode, error)

	CreateWindow(title string, w, h int32, flags WindowFlags) (Window, error)

	GLSetAttribute(attr sdl.GLattr, value int) error
	GLLoadLibrary(path string) error
	GLGetProcAddress(name string) unsafe.Pointer
	GLExtensionSupported(name string) bool
	GLSetSwapInterval(interval int) error

	SetRelativeMouseMode(on bool) error
	ShowCursor(show bool)
	ModState() uint16
	SetModState(mod uint16)
	StartTextInput()
	StopTextInput()

	// SetSysWMEvents enables or disables delivery of window manager events.
	// They are disabled until enabled
	SetSysWMEvents(on bool)

	NumJoysticks() int
	JoystickName(index int) string
	IsGameController(index int) bool
	OpenJoystick(index int) (Joystick, error)
	OpenGameController(index int) (GameController, error)
	JoystickUpdate()
}

// Window is a top level window.
type Window interface {
	ID() uint32
	Size() (int32, int32)
	SetSize(w, h int32)
	SetTitle(title string)

	// SetFullscreen takes one of zero, sdl.WINDOW_FULLSCREEN or
	// sdl.WINDOW_FULLSCREEN_DESKTOP
	SetFullscreen(flags uint32) error
	SetBordered(bordered bool)
	SetResizable(resizable bool)
	SetGrab(grab bool)
	Minimize()
	Show()
	WarpMouse(x, y int32)
	Flags() WindowFlags
	RefreshRate() int32

	CreateRenderer(vsync bool) (Renderer, error)

	CreateGLContext() (GLContext, error)
	GLSwap()
	GLDrawableSize() (int32, int32)

	Destroy() error
}

// Renderer draws textures to a window.
type Renderer interface {
	Name() string

	// PreferredFormat is the texture format that can be uploaded without
	// conversion by the renderer
	PreferredFormat() uint32

	// SupportsFormat returns true if a texture can be created with the
	// pixel format
	SupportsFormat(format uint32) bool

	CreateTexture(format uint32, w, h int32) (Texture, error)
	SetLogicalSize(w, h int32) error
	SetScaleQuality(linear bool)
	Clear() error
	Copy(tex Texture, src *sdl.Rect, dst *sdl.Rect) error
	Present()
	Destroy() error
}

// Texture is a streaming texture.
type Texture interface {
	Format() uint32
	Size() (int32, int32)

	// Lock returns the pixels for the area and the pitch of the returned
	// pixels. A nil area locks the whole texture
	Lock(area *sdl.Rect) ([]byte, int, error)
	Unlock()
	Destroy() error
}

// GLContext is an OpenGL context tied to a window.
type GLContext interface {
	// MakeCurrent binds the context to the calling OS thread
	MakeCurrent() error

	// Release unbinds the context from the calling OS thread
	Release() error

	GL() GL
	Delete()
}

// Joystick is an open physical joystick.
type Joystick interface {
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
}

// GameController is a joystick with a known controller mapping.
type GameController interface {
	InstanceID() int32
	Name() string
	Axis(axis sdl.GameControllerAxis) int16
	Button(button sdl.GameControllerButton) uint8
	Close()
}
