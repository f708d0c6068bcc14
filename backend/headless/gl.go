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

package headless

import (
	"sync"
	"unsafe"

	"github.com/go-gl/gl/v3.2-core/gl"
)

// GL implements the backend.GL interface. Framebuffer and renderbuffer names
// are allocated and tracked so that tests can check for leaks.
type GL struct {
	crit sync.Mutex

	// extensions reported as supported
	Extensions map[string]bool

	Samples int32

	// make CheckFramebufferStatus() report an incomplete framebuffer
	Incomplete bool

	next          uint32
	framebuffers  map[uint32]bool
	renderbuffers map[uint32]bool

	// currently bound framebuffers
	Draw uint32
	Read uint32

	Blits     int
	LastBlit  [2][4]int32
	LastClear uint32

	// blits made while the scissor test was enabled
	ScissoredBlits int

	Viewports [][4]int32
	Scissors  [][4]int32

	enabled map[uint32]bool

	// the read framebuffer bound at the time of each read back
	ReadsFrom []uint32
}

// NewGL is the preferred method of initialisation for the GL type.
func NewGL() *GL {
	return &GL{
		Extensions: map[string]bool{
			"GL_ARB_framebuffer_object": true,
		},
		Samples:       4,
		framebuffers:  make(map[uint32]bool),
		renderbuffers: make(map[uint32]bool),
		enabled:       make(map[uint32]bool),
	}
}

// Live returns the number of framebuffers and renderbuffers that have not
// been deleted.
func (g *GL) Live() (int, int) {
	g.crit.Lock()
	defer g.crit.Unlock()
	return len(g.framebuffers), len(g.renderbuffers)
}

// Extension implements the backend.GL interface.
func (g *GL) Extension(name string) bool {
	g.crit.Lock()
	defer g.crit.Unlock()
	return g.Extensions[name]
}

// MaxSamples implements the backend.GL interface.
func (g *GL) MaxSamples() int32 {
	return g.Samples
}

// GenFramebuffer implements the backend.GL interface.
func (g *GL) GenFramebuffer() uint32 {
	g.crit.Lock()
	defer g.crit.Unlock()
	g.next++
	g.framebuffers[g.next] = true
	return g.next
}

// DeleteFramebuffer implements the backend.GL interface.
func (g *GL) DeleteFramebuffer(fb uint32) {
	g.crit.Lock()
	defer g.crit.Unlock()
	delete(g.framebuffers, fb)
}

// BindFramebuffer implements the backend.GL interface.
func (g *GL) BindFramebuffer(target uint32, fb uint32) {
	g.crit.Lock()
	defer g.crit.Unlock()
	switch target {
	case gl.DRAW_FRAMEBUFFER:
		g.Draw = fb
	case gl.READ_FRAMEBUFFER:
		g.Read = fb
	default:
		g.Draw = fb
		g.Read = fb
	}
}

// CheckFramebufferStatus implements the backend.GL interface.
func (g *GL) CheckFramebufferStatus(target uint32) uint32 {
	if g.Incomplete {
		return gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT
	}
	return gl.FRAMEBUFFER_COMPLETE
}

// FramebufferRenderbuffer implements the backend.GL interface.
func (g *GL) FramebufferRenderbuffer(target uint32, attachment uint32, rb uint32) {
}

// GenRenderbuffer implements the backend.GL interface.
func (g *GL) GenRenderbuffer() uint32 {
	g.crit.Lock()
	defer g.crit.Unlock()
	g.next++
	g.renderbuffers[g.next] = true
	return g.next
}

// DeleteRenderbuffer implements the backend.GL interface.
func (g *GL) DeleteRenderbuffer(rb uint32) {
	g.crit.Lock()
	defer g.crit.Unlock()
	delete(g.renderbuffers, rb)
}

// BindRenderbuffer implements the backend.GL interface.
func (g *GL) BindRenderbuffer(rb uint32) {
}

// RenderbufferStorage implements the backend.GL interface.
func (g *GL) RenderbufferStorage(samples int32, format uint32, w, h int32) {
}

// BlitFramebuffer implements the backend.GL interface.
func (g *GL) BlitFramebuffer(src [4]int32, dst [4]int32, filter uint32) {
	g.crit.Lock()
	defer g.crit.Unlock()
	g.Blits++
	g.LastBlit = [2][4]int32{src, dst}
	if g.enabled[gl.SCISSOR_TEST] {
		g.ScissoredBlits++
	}
}

// Viewport implements the backend.GL interface.
func (g *GL) Viewport(x, y, w, h int32) {
	g.crit.Lock()
	defer g.crit.Unlock()
	g.Viewports = append(g.Viewports, [4]int32{x, y, w, h})
}

// Scissor implements the backend.GL interface.
func (g *GL) Scissor(x, y, w, h int32) {
	g.crit.Lock()
	defer g.crit.Unlock()
	g.Scissors = append(g.Scissors, [4]int32{x, y, w, h})
}

// Enable implements the backend.GL interface.
func (g *GL) Enable(capability uint32) {
	g.crit.Lock()
	defer g.crit.Unlock()
	g.enabled[capability] = true
}

// Disable implements the backend.GL interface.
func (g *GL) Disable(capability uint32) {
	g.crit.Lock()
	defer g.crit.Unlock()
	delete(g.enabled, capability)
}

// IsEnabled implements the backend.GL interface.
func (g *GL) IsEnabled(capability uint32) bool {
	g.crit.Lock()
	defer g.crit.Unlock()
	return g.enabled[capability]
}

// ClearColor implements the backend.GL interface.
func (g *GL) ClearColor(r, gr, b, a float32) {
}

// Clear implements the backend.GL interface.
func (g *GL) Clear(mask uint32) {
	g.crit.Lock()
	defer g.crit.Unlock()
	g.LastClear = mask
}

// GetIntegerv implements the backend.GL interface. Only the framebuffer
// bindings are answered.
func (g *GL) GetIntegerv(pname uint32, data *int32) {
	g.crit.Lock()
	defer g.crit.Unlock()
	switch pname {
	case gl.DRAW_FRAMEBUFFER_BINDING:
		*data = int32(g.Draw)
	case gl.READ_FRAMEBUFFER_BINDING:
		*data = int32(g.Read)
	default:
		*data = 0
	}
}

func (g *GL) read() {
	g.crit.Lock()
	defer g.crit.Unlock()
	g.ReadsFrom = append(g.ReadsFrom, g.Read)
}

// ReadPixels implements the backend.GL interface.
func (g *GL) ReadPixels(x, y, w, h int32, format uint32, xtype uint32, pixels unsafe.Pointer) {
	g.read()
}

// CopyTexImage1D implements the backend.GL interface.
func (g *GL) CopyTexImage1D(target uint32, level int32, internalformat uint32, x, y, w, border int32) {
	g.read()
}

// CopyTexImage2D implements the backend.GL interface.
func (g *GL) CopyTexImage2D(target uint32, level int32, internalformat uint32, x, y, w, h, border int32) {
	g.read()
}

// CopyTexSubImage1D implements the backend.GL interface.
func (g *GL) CopyTexSubImage1D(target uint32, level, xoffset, x, y, w int32) {
	g.read()
}

// CopyTexSubImage2D implements the backend.GL interface.
func (g *GL) CopyTexSubImage2D(target uint32, level, xoffset, yoffset, x, y, w, h int32) {
	g.read()
}

// CopyTexSubImage3D implements the backend.GL interface.
func (g *GL) CopyTexSubImage3D(target uint32, level, xoffset, yoffset, zoffset, x, y, w, h int32) {
	g.read()
}
