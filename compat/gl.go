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
	"fmt"
	"sync"

	"github.com/libsdl-org/sdl12-compat-sub000/curated"
	"github.com/libsdl-org/sdl12-compat-sub000/legacy"
	"github.com/libsdl-org/sdl12-compat-sub000/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// glAttributes are the values requested with GL_SetAttribute(). They are
// applied to the backend when a GL window is created.
type glAttributes struct {
	crit   sync.Mutex
	values [legacy.GL_NUM_ATTRIBUTES]int
}

// modern equivalents of the legacy attributes. GL_SWAP_CONTROL is a swap
// interval and has no attribute
var glAttrMap = map[legacy.GLattr]sdl.GLattr{
	legacy.GL_RED_SIZE:           sdl.GL_RED_SIZE,
	legacy.GL_GREEN_SIZE:         sdl.GL_GREEN_SIZE,
	legacy.GL_BLUE_SIZE:          sdl.GL_BLUE_SIZE,
	legacy.GL_ALPHA_SIZE:         sdl.GL_ALPHA_SIZE,
	legacy.GL_BUFFER_SIZE:        sdl.GL_BUFFER_SIZE,
	legacy.GL_DOUBLEBUFFER:       sdl.GL_DOUBLEBUFFER,
	legacy.GL_DEPTH_SIZE:         sdl.GL_DEPTH_SIZE,
	legacy.GL_STENCIL_SIZE:       sdl.GL_STENCIL_SIZE,
	legacy.GL_ACCUM_RED_SIZE:     sdl.GL_ACCUM_RED_SIZE,
	legacy.GL_ACCUM_GREEN_SIZE:   sdl.GL_ACCUM_GREEN_SIZE,
	legacy.GL_ACCUM_BLUE_SIZE:    sdl.GL_ACCUM_BLUE_SIZE,
	legacy.GL_ACCUM_ALPHA_SIZE:   sdl.GL_ACCUM_ALPHA_SIZE,
	legacy.GL_STEREO:             sdl.GL_STEREO,
	legacy.GL_MULTISAMPLEBUFFERS: sdl.GL_MULTISAMPLEBUFFERS,
	legacy.GL_MULTISAMPLESAMPLES: sdl.GL_MULTISAMPLESAMPLES,
	legacy.GL_ACCELERATED_VISUAL: sdl.GL_ACCELERATED_VISUAL,
}

func (c *Context) resetGLAttributes() {
	c.gl.crit.Lock()
	defer c.gl.crit.Unlock()
	c.gl.values = [legacy.GL_NUM_ATTRIBUTES]int{
		legacy.GL_RED_SIZE:           3,
		legacy.GL_GREEN_SIZE:         3,
		legacy.GL_BLUE_SIZE:          2,
		legacy.GL_DOUBLEBUFFER:       1,
		legacy.GL_DEPTH_SIZE:         16,
		legacy.GL_ACCELERATED_VISUAL: -1,
		legacy.GL_SWAP_CONTROL:       -1,
	}
}

func (c *Context) glAttribute(attr legacy.GLattr) int {
	c.gl.crit.Lock()
	defer c.gl.crit.Unlock()
	return c.gl.values[attr]
}

// swapInterval returns the swap interval to use for a new context. Returns
// false if the backend default should be left alone.
func (c *Context) swapInterval() (int, bool) {
	if v := c.glAttribute(legacy.GL_SWAP_CONTROL); v >= 0 {
		return v, true
	}
	if c.config.SyncToVBlank.Bool() {
		return 1, true
	}
	return 0, false
}

// applyGLAttributes passes the requested attributes to the backend. Must be
// called before the window is created.
func (c *Context) applyGLAttributes() error {
	c.gl.crit.Lock()
	values := c.gl.values
	c.gl.crit.Unlock()

	for attr, modern := range glAttrMap {
		v := values[attr]

		switch attr {
		case legacy.GL_ACCELERATED_VISUAL:
			// negative means don't care
			if v < 0 {
				continue
			}
		case legacy.GL_MULTISAMPLEBUFFERS, legacy.GL_MULTISAMPLESAMPLES:
			// the scaling framebuffer is multisampled instead of the window
			if c.config.OpenGLScaling.Bool() {
				v = 0
			}
		}

		if err := c.backend.GLSetAttribute(modern, v); err != nil {
			return curated.Errorf(curated.BackendFailure, "GL_SetAttribute", err)
		}
	}

	return nil
}

// GL_SetAttribute requests a value for a GL attribute of the next GL video
// mode. Returns 0 on success and -1 if the attribute is unknown.
func (c *Context) GL_SetAttribute(attr legacy.GLattr, value int) int {
	if attr < 0 || attr >= legacy.GL_NUM_ATTRIBUTES {
		c.fail(curated.Errorf(curated.Unsupported, "GL_SetAttribute", fmt.Sprintf("attribute %d", attr)))
		return -1
	}

	c.gl.crit.Lock()
	c.gl.values[attr] = value
	c.gl.crit.Unlock()

	// the swap interval can change while the context exists
	if attr == legacy.GL_SWAP_CONTROL && value >= 0 {
		c.lock.Acquire()
		defer c.lock.Release()
		if c.vid.glctx != nil {
			if err := c.backend.GLSetSwapInterval(value); err != nil {
				logger.Logf(logger.Allow, "compat", "swap interval: %v", err)
			}
		}
	}

	return 0
}

// GL_GetAttribute returns the value requested for a GL attribute and 0.
// Returns -1 as the second value if the attribute is unknown.
func (c *Context) GL_GetAttribute(attr legacy.GLattr) (int, int) {
	if attr < 0 || attr >= legacy.GL_NUM_ATTRIBUTES {
		c.fail(curated.Errorf(curated.Unsupported, "GL_GetAttribute", fmt.Sprintf("attribute %d", attr)))
		return 0, -1
	}
	return c.glAttribute(attr), 0
}

// GL_SwapBuffers makes the frame drawn by the application visible. When the
// scaler is active the offscreen framebuffer is scaled into the window first.
func (c *Context) GL_SwapBuffers() {
	c.lock.Acquire()
	defer c.lock.Release()

	v := &c.vid
	if v.window == nil || v.glctx == nil {
		return
	}

	if !v.scaler.Enabled() {
		v.window.GLSwap()
		return
	}

	pw, ph := v.window.GLDrawableSize()
	vp := v.scaler.Present(pw, ph, c.config.Linear())
	v.window.GLSwap()

	a := v.appViewport
	v.glctx.GL().Viewport(a[0], a[1], a[2], a[3])
	a = v.appScissor
	v.glctx.GL().Scissor(a[0], a[1], a[2], a[3])

	// the window may have changed size since the mode was set
	c.vcrit.Lock()
	if c.snap.active {
		c.snap.viewport = vp
	}
	c.vcrit.Unlock()
}

// GL_LoadLibrary loads the GL library. An empty path loads the default
// library. Returns 0 on success and -1 on failure.
func (c *Context) GL_LoadLibrary(path string) int {
	if !c.videoInitialised() {
		if c.InitSubSystem(legacy.INIT_VIDEO) != 0 {
			return -1
		}
	}
	if err := c.backend.GLLoadLibrary(path); err != nil {
		c.fail(curated.Errorf(curated.LoadFailure, err))
		return -1
	}
	return 0
}
