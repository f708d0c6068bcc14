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
	"github.com/libsdl-org/sdl12-compat-sub000/legacy"
	"github.com/libsdl-org/sdl12-compat-sub000/logger"
	"github.com/libsdl-org/sdl12-compat-sub000/videomode"
)

// WM_SetCaption sets the window title and the title used when the window is
// iconified. The strings are kept for windows created later.
func (c *Context) WM_SetCaption(title string, icon string) {
	c.lock.Acquire()
	defer c.lock.Release()
	c.vid.title = title
	c.vid.iconName = icon
	if c.vid.window != nil {
		c.vid.window.SetTitle(title)
	}
}

// WM_GetCaption returns the strings set by WM_SetCaption().
func (c *Context) WM_GetCaption() (title string, icon string) {
	c.lock.Acquire()
	defer c.lock.Release()
	return c.vid.title, c.vid.iconName
}

// WM_IconifyWindow minimizes the window. Returns 1 on success and 0 if there
// is no window.
func (c *Context) WM_IconifyWindow() int {
	c.lock.Acquire()
	defer c.lock.Release()
	if c.vid.window == nil {
		return 0
	}
	c.vid.window.Minimize()
	return 1
}

// WM_GrabInput confines the mouse and keyboard to the window (GRAB_ON) or
// releases it (GRAB_OFF). GRAB_QUERY returns the mode without changing it.
// Fullscreen modes are always grabbed but report the mode set by the
// application.
func (c *Context) WM_GrabInput(mode legacy.GrabMode) legacy.GrabMode {
	c.input.crit.Lock()
	if mode == legacy.GRAB_QUERY {
		defer c.input.crit.Unlock()
		return c.input.grab
	}
	c.input.grab = mode
	c.input.crit.Unlock()

	c.lock.Acquire()
	c.applyGrab()
	c.lock.Release()

	c.updateRelativeMouse()

	return mode
}

// WM_ToggleFullScreen switches the screen surface between windowed and
// fullscreen without changing the surface. Returns 1 on success and 0 if
// the mode could not be toggled.
func (c *Context) WM_ToggleFullScreen(screen *legacy.Surface) int {
	if screen == nil || screen != c.GetVideoSurface() {
		return 0
	}

	c.lock.Acquire()
	ok := c.toggleFullScreen()
	c.lock.Release()

	if !ok {
		return 0
	}

	c.updateRelativeMouse()
	if screen.Flags&legacy.OPENGL == 0 {
		c.UpdateRects(screen, nil)
	}

	return 1
}

// must be called with the presentation lock held
func (c *Context) toggleFullScreen() bool {
	v := &c.vid
	if v.window == nil || v.screen == nil {
		return false
	}

	desktop, err := c.backend.DesktopMode()
	if err != nil {
		logger.Log(logger.Allow, "compat", err)
		return false
	}

	next := v.req
	next.Flags ^= legacy.FULLSCREEN

	if next.OpenGL() && c.policy.MustRecreateContext(v.req, next) {
		logger.Logf(logger.Allow, "compat", "cannot toggle fullscreen without a new GL context (%s policy)", c.policy.Name)
		return false
	}

	scalingAvailable := !next.OpenGL() || c.config.OpenGLScaling.Bool()
	strategy := videomode.Strategy(next, desktop, scalingAvailable, c.config.FixBorderlessFSWin.Bool())

	_, fs := windowFlags(next, strategy)
	if err := v.window.SetFullscreen(fs); err != nil {
		logger.Log(logger.Allow, "compat", err)
		return false
	}
	if fs == 0 {
		v.window.SetSize(next.W, next.H)
	}

	if next.OpenGL() {
		if err := c.setupGL(next, strategy); err != nil {
			logger.Log(logger.Allow, "compat", err)
			return false
		}
	}

	v.req = next
	v.strategy = strategy
	v.screen.Flags ^= legacy.FULLSCREEN

	c.applyGrab()
	c.publish()

	logger.Logf(logger.Allow, "compat", "toggled to %s", strategy)

	return true
}
