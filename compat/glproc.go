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
	"unsafe"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/libsdl-org/sdl12-compat-sub000/backend"
	"github.com/libsdl-org/sdl12-compat-sub000/curated"
	"github.com/libsdl-org/sdl12-compat-sub000/scaling"
)

// glProcs returns the GL entry points that are replaced for the application.
// While the scaler is active, the application's default framebuffer is the
// offscreen framebuffer and reads from it must be resolved first.
func (c *Context) glProcs() map[string]any {
	return map[string]any{
		"glBindFramebuffer":    c.glBindFramebuffer,
		"glBindFramebufferEXT": c.glBindFramebuffer,
		"glReadPixels":         c.glReadPixels,
		"glCopyTexImage1D":     c.glCopyTexImage1D,
		"glCopyTexImage2D":     c.glCopyTexImage2D,
		"glCopyTexSubImage1D":  c.glCopyTexSubImage1D,
		"glCopyTexSubImage2D":  c.glCopyTexSubImage2D,
		"glCopyTexSubImage3D":  c.glCopyTexSubImage3D,
		"glGetIntegerv":        c.glGetIntegerv,
		"glViewport":           c.glViewport,
		"glScissor":            c.glScissor,
	}
}

// GL_GetProcAddress returns the GL entry point with the name. Replaced entry
// points are Go functions. Everything else is the address returned by the
// backend. Returns nil if the entry point cannot be found.
func (c *Context) GL_GetProcAddress(name string) any {
	if f, ok := c.procs[name]; ok {
		return f
	}
	p := c.backend.GLGetProcAddress(name)
	if p == nil {
		c.fail(curated.Errorf(curated.Unsupported, "GL_GetProcAddress", name))
		return nil
	}
	return p
}

// withGL calls f with the GL functions and scaler of the current mode. The
// scaler is nil if it is not active. Does nothing if there is no GL context.
func (c *Context) withGL(f func(g backend.GL, a *scaling.Adapter)) {
	c.lock.Acquire()
	defer c.lock.Release()
	v := &c.vid
	if v.glctx == nil {
		return
	}
	a := v.scaler
	if !a.Enabled() {
		a = nil
	}
	f(v.glctx.GL(), a)
}

func (c *Context) glBindFramebuffer(target uint32, fb uint32) {
	c.withGL(func(g backend.GL, a *scaling.Adapter) {
		if a == nil {
			g.BindFramebuffer(target, fb)
			return
		}
		a.BindFramebuffer(target, fb)
	})
}

// readBack prepares the framebuffer for reading and calls f.
func (c *Context) readBack(f func(g backend.GL)) {
	c.withGL(func(g backend.GL, a *scaling.Adapter) {
		if a != nil {
			a.ResolveForRead()
		}
		f(g)
	})
}

func (c *Context) glReadPixels(x, y, w, h int32, format uint32, xtype uint32, pixels unsafe.Pointer) {
	c.readBack(func(g backend.GL) {
		g.ReadPixels(x, y, w, h, format, xtype, pixels)
	})
}

func (c *Context) glCopyTexImage1D(target uint32, level int32, internalformat uint32, x, y, w, border int32) {
	c.readBack(func(g backend.GL) {
		g.CopyTexImage1D(target, level, internalformat, x, y, w, border)
	})
}

func (c *Context) glCopyTexImage2D(target uint32, level int32, internalformat uint32, x, y, w, h, border int32) {
	c.readBack(func(g backend.GL) {
		g.CopyTexImage2D(target, level, internalformat, x, y, w, h, border)
	})
}

func (c *Context) glCopyTexSubImage1D(target uint32, level, xoffset, x, y, w int32) {
	c.readBack(func(g backend.GL) {
		g.CopyTexSubImage1D(target, level, xoffset, x, y, w)
	})
}

func (c *Context) glCopyTexSubImage2D(target uint32, level, xoffset, yoffset, x, y, w, h int32) {
	c.readBack(func(g backend.GL) {
		g.CopyTexSubImage2D(target, level, xoffset, yoffset, x, y, w, h)
	})
}

func (c *Context) glCopyTexSubImage3D(target uint32, level, xoffset, yoffset, zoffset, x, y, w, h int32) {
	c.readBack(func(g backend.GL) {
		g.CopyTexSubImage3D(target, level, xoffset, yoffset, zoffset, x, y, w, h)
	})
}

// the offscreen framebuffer is reported as the default framebuffer
func (c *Context) glGetIntegerv(pname uint32, data *int32) {
	c.withGL(func(g backend.GL, a *scaling.Adapter) {
		if a != nil {
			switch pname {
			case gl.DRAW_FRAMEBUFFER_BINDING:
				*data = int32(a.Binding(false))
				return
			case gl.READ_FRAMEBUFFER_BINDING:
				*data = int32(a.Binding(true))
				return
			case gl.VIEWPORT:
				vp := c.vid.appViewport
				copy(unsafe.Slice(data, 4), vp[:])
				return
			case gl.SCISSOR_BOX:
				sb := c.vid.appScissor
				copy(unsafe.Slice(data, 4), sb[:])
				return
			}
		}
		g.GetIntegerv(pname, data)
	})
}

func (c *Context) glViewport(x, y, w, h int32) {
	c.withGL(func(g backend.GL, a *scaling.Adapter) {
		c.vid.appViewport = [4]int32{x, y, w, h}
		g.Viewport(x, y, w, h)
	})
}

func (c *Context) glScissor(x, y, w, h int32) {
	c.withGL(func(g backend.GL, a *scaling.Adapter) {
		c.vid.appScissor = [4]int32{x, y, w, h}
		g.Scissor(x, y, w, h)
	})
}
