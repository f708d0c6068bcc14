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

package scaling

import (
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/libsdl-org/sdl12-compat-sub000/backend"
	"github.com/libsdl-org/sdl12-compat-sub000/curated"
	"github.com/libsdl-org/sdl12-compat-sub000/logger"
)

// extensions providing framebuffer objects and blitting
var extensions = [][]string{
	{"GL_ARB_framebuffer_object"},
	{"GL_EXT_framebuffer_object", "GL_EXT_framebuffer_blit"},
}

// Adapter redirects drawing by the application into an offscreen framebuffer
// of the logical size. The zero value is a disabled adapter.
type Adapter struct {
	gl      backend.GL
	enabled bool

	w, h    int32
	samples int32

	// the framebuffer the application draws into. multisampled if samples
	// is greater than zero
	fbo   uint32
	color uint32
	depth uint32

	// single sampled copy of the framebuffer, only when multisampling
	resolveFBO   uint32
	resolveColor uint32

	// framebuffers the application has bound. zero means the default
	// framebuffer, which is really fbo
	appDraw uint32
	appRead uint32
}

// NewAdapter is the preferred method of initialisation for the Adapter type.
func NewAdapter(gl backend.GL) *Adapter {
	return &Adapter{gl: gl}
}

// Enabled returns true if Setup() has succeeded and the adapter has not been
// destroyed.
func (a *Adapter) Enabled() bool {
	return a != nil && a.enabled
}

// Size returns the logical size.
func (a *Adapter) Size() (int32, int32) {
	return a.w, a.h
}

// Framebuffer returns the name of the offscreen framebuffer.
func (a *Adapter) Framebuffer() uint32 {
	return a.fbo
}

func (a *Adapter) supported() bool {
	for _, set := range extensions {
		ok := true
		for _, e := range set {
			ok = ok && a.gl.Extension(e)
		}
		if ok {
			return true
		}
	}
	return false
}

func (a *Adapter) renderbuffer(samples int32, format uint32, attachment uint32) uint32 {
	rb := a.gl.GenRenderbuffer()
	a.gl.BindRenderbuffer(rb)
	a.gl.RenderbufferStorage(samples, format, a.w, a.h)
	a.gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, attachment, rb)
	return rb
}

// Setup creates the offscreen framebuffer for the logical size, with depth and
// stencil buffers of the requested sizes and multisampling if samples is
// greater than zero. On failure, everything created is deleted and the
// adapter is disabled.
func (a *Adapter) Setup(w, h int32, depthBits, stencilBits int, samples int32) error {
	a.Destroy()

	if w <= 0 || h <= 0 {
		return curated.Errorf(curated.Unsupported, "scaling", "zero size framebuffer")
	}
	if !a.supported() {
		return curated.Errorf(curated.Unsupported, "scaling", "no framebuffer object extension")
	}

	a.w = w
	a.h = h
	a.samples = max(0, min(samples, a.gl.MaxSamples()))

	a.fbo = a.gl.GenFramebuffer()
	a.gl.BindFramebuffer(gl.FRAMEBUFFER, a.fbo)
	a.color = a.renderbuffer(a.samples, gl.RGBA8, gl.COLOR_ATTACHMENT0)

	switch {
	case depthBits > 0 && stencilBits > 0:
		a.depth = a.renderbuffer(a.samples, gl.DEPTH24_STENCIL8, gl.DEPTH_STENCIL_ATTACHMENT)
	case depthBits > 0:
		a.depth = a.renderbuffer(a.samples, gl.DEPTH_COMPONENT24, gl.DEPTH_ATTACHMENT)
	case stencilBits > 0:
		a.depth = a.renderbuffer(a.samples, gl.STENCIL_INDEX8, gl.STENCIL_ATTACHMENT)
	}

	if a.gl.CheckFramebufferStatus(gl.FRAMEBUFFER) != gl.FRAMEBUFFER_COMPLETE {
		a.Destroy()
		return curated.Errorf(curated.BackendFailure, "scaling", "incomplete framebuffer")
	}

	if a.samples > 0 {
		a.resolveFBO = a.gl.GenFramebuffer()
		a.gl.BindFramebuffer(gl.FRAMEBUFFER, a.resolveFBO)
		a.resolveColor = a.renderbuffer(0, gl.RGBA8, gl.COLOR_ATTACHMENT0)
		if a.gl.CheckFramebufferStatus(gl.FRAMEBUFFER) != gl.FRAMEBUFFER_COMPLETE {
			a.Destroy()
			return curated.Errorf(curated.BackendFailure, "scaling", "incomplete resolve framebuffer")
		}
	}

	a.enabled = true
	a.appDraw = 0
	a.appRead = 0
	a.gl.BindFramebuffer(gl.FRAMEBUFFER, a.fbo)
	a.gl.Viewport(0, 0, w, h)

	logger.Logf(logger.Allow, "scaling", "offscreen framebuffer %dx%d (%d samples)", w, h, a.samples)

	return nil
}

// Destroy deletes all GL objects and disables the adapter. Objects are deleted
// in the reverse order they were created. It is safe to call Destroy() on an
// adapter that was never set up.
func (a *Adapter) Destroy() {
	if a.gl == nil {
		return
	}
	if a.resolveColor != 0 {
		a.gl.DeleteRenderbuffer(a.resolveColor)
	}
	if a.resolveFBO != 0 {
		a.gl.DeleteFramebuffer(a.resolveFBO)
	}
	if a.depth != 0 {
		a.gl.DeleteRenderbuffer(a.depth)
	}
	if a.color != 0 {
		a.gl.DeleteRenderbuffer(a.color)
	}
	if a.fbo != 0 {
		a.gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		a.gl.DeleteFramebuffer(a.fbo)
	}
	a.resolveColor, a.resolveFBO, a.depth, a.color, a.fbo = 0, 0, 0, 0, 0
	a.enabled = false
}

// real returns the framebuffer to bind in place of the one requested by the
// application.
func (a *Adapter) real(fb uint32) uint32 {
	if fb == 0 {
		return a.fbo
	}
	return fb
}

// BindFramebuffer replaces the application's glBindFramebuffer(). Binding the
// default framebuffer binds the offscreen framebuffer instead. Binding the
// default framebuffer for reading resolves the multisampled framebuffer
// first.
func (a *Adapter) BindFramebuffer(target uint32, fb uint32) {
	if !a.enabled {
		a.gl.BindFramebuffer(target, fb)
		return
	}

	switch target {
	case gl.DRAW_FRAMEBUFFER:
		a.appDraw = fb
	case gl.READ_FRAMEBUFFER:
		a.appRead = fb
		if fb == 0 {
			a.ResolveForRead()
			return
		}
	default:
		a.appDraw = fb
		a.appRead = fb
	}

	a.gl.BindFramebuffer(target, a.real(fb))
}

// Binding returns the framebuffer name to report to the application for
// GL_DRAW_FRAMEBUFFER_BINDING or GL_READ_FRAMEBUFFER_BINDING. The offscreen
// framebuffer is reported as zero.
func (a *Adapter) Binding(read bool) uint32 {
	if read {
		return a.appRead
	}
	return a.appDraw
}

// ResolveForRead prepares the offscreen framebuffer for reading back by
// glReadPixels(), glCopyTexImage2D() and similar. If the framebuffer is
// multisampled, it is resolved and the resolve framebuffer is bound for
// reading.
func (a *Adapter) ResolveForRead() {
	if !a.enabled || a.appRead != 0 {
		return
	}

	if a.samples == 0 {
		a.gl.BindFramebuffer(gl.READ_FRAMEBUFFER, a.fbo)
		return
	}

	a.resolve()
	a.gl.BindFramebuffer(gl.READ_FRAMEBUFFER, a.resolveFBO)
	a.gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, a.real(a.appDraw))
}

// copy the multisampled framebuffer to the resolve framebuffer
func (a *Adapter) resolve() {
	a.gl.BindFramebuffer(gl.READ_FRAMEBUFFER, a.fbo)
	a.gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, a.resolveFBO)
	r := [4]int32{0, 0, a.w, a.h}
	a.gl.BlitFramebuffer(r, r, gl.NEAREST)
}

// Present scales the offscreen framebuffer into the window. The window must be
// swapped by the caller afterwards. The offscreen framebuffer is rebound for
// the application on return.
func (a *Adapter) Present(physW, physH int32, linear bool) Viewport {
	vp := NewViewport(a.w, a.h, physW, physH)
	if !a.enabled {
		return vp
	}

	src := a.fbo
	if a.samples > 0 {
		a.resolve()
		src = a.resolveFBO
	}

	// the application's scissor box would clip the clear and the blit
	scissor := a.gl.IsEnabled(gl.SCISSOR_TEST)
	if scissor {
		a.gl.Disable(gl.SCISSOR_TEST)
	}

	a.gl.BindFramebuffer(gl.READ_FRAMEBUFFER, src)
	a.gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	a.gl.Viewport(0, 0, physW, physH)
	a.gl.ClearColor(0, 0, 0, 1)
	a.gl.Clear(gl.COLOR_BUFFER_BIT)

	filter := uint32(gl.NEAREST)
	if linear {
		filter = gl.LINEAR
	}
	a.gl.BlitFramebuffer([4]int32{0, 0, a.w, a.h}, vp.blit(physH), filter)

	a.gl.BindFramebuffer(gl.READ_FRAMEBUFFER, a.real(a.appRead))
	a.gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, a.real(a.appDraw))
	a.gl.Viewport(0, 0, a.w, a.h)

	if scissor {
		a.gl.Enable(gl.SCISSOR_TEST)
	}

	return vp
}
