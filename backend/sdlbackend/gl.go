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

package sdlbackend

import (
	"unsafe"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/veandco/go-sdl2/sdl"
)

// glFuncs implements the backend.GL interface with go-gl. The functions act on
// whichever context is current on the calling thread.
type glFuncs struct{}

func (glFuncs) Extension(name string) bool {
	return sdl.GLExtensionSupported(name)
}

func (glFuncs) MaxSamples() int32 {
	var n int32
	gl.GetIntegerv(gl.MAX_SAMPLES, &n)
	return n
}

func (glFuncs) GenFramebuffer() uint32 {
	var fb uint32
	gl.GenFramebuffers(1, &fb)
	return fb
}

func (glFuncs) DeleteFramebuffer(fb uint32) {
	gl.DeleteFramebuffers(1, &fb)
}

func (glFuncs) BindFramebuffer(target uint32, fb uint32) {
	gl.BindFramebuffer(target, fb)
}

func (glFuncs) CheckFramebufferStatus(target uint32) uint32 {
	return gl.CheckFramebufferStatus(target)
}

func (glFuncs) FramebufferRenderbuffer(target uint32, attachment uint32, rb uint32) {
	gl.FramebufferRenderbuffer(target, attachment, gl.RENDERBUFFER, rb)
}

func (glFuncs) GenRenderbuffer() uint32 {
	var rb uint32
	gl.GenRenderbuffers(1, &rb)
	return rb
}

func (glFuncs) DeleteRenderbuffer(rb uint32) {
	gl.DeleteRenderbuffers(1, &rb)
}

func (glFuncs) BindRenderbuffer(rb uint32) {
	gl.BindRenderbuffer(gl.RENDERBUFFER, rb)
}

func (glFuncs) RenderbufferStorage(samples int32, format uint32, w, h int32) {
	if samples > 0 {
		gl.RenderbufferStorageMultisample(gl.RENDERBUFFER, samples, format, w, h)
		return
	}
	gl.RenderbufferStorage(gl.RENDERBUFFER, format, w, h)
}

func (glFuncs) BlitFramebuffer(src [4]int32, dst [4]int32, filter uint32) {
	gl.BlitFramebuffer(src[0], src[1], src[2], src[3],
		dst[0], dst[1], dst[2], dst[3],
		gl.COLOR_BUFFER_BIT, filter)
}

func (glFuncs) Viewport(x, y, w, h int32) {
	gl.Viewport(x, y, w, h)
}

func (glFuncs) Scissor(x, y, w, h int32) {
	gl.Scissor(x, y, w, h)
}

func (glFuncs) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (glFuncs) Clear(mask uint32) {
	gl.Clear(mask)
}

func (glFuncs) Enable(capability uint32) {
	gl.Enable(capability)
}

func (glFuncs) Disable(capability uint32) {
	gl.Disable(capability)
}

func (glFuncs) IsEnabled(capability uint32) bool {
	return gl.IsEnabled(capability)
}

func (glFuncs) GetIntegerv(pname uint32, data *int32) {
	gl.GetIntegerv(pname, data)
}

func (glFuncs) ReadPixels(x, y, w, h int32, format uint32, xtype uint32, pixels unsafe.Pointer) {
	gl.ReadPixels(x, y, w, h, format, xtype, pixels)
}

func (glFuncs) CopyTexImage1D(target uint32, level int32, internalformat uint32, x, y, w, border int32) {
	gl.CopyTexImage1D(target, level, internalformat, x, y, w, border)
}

func (glFuncs) CopyTexImage2D(target uint32, level int32, internalformat uint32, x, y, w, h, border int32) {
	gl.CopyTexImage2D(target, level, internalformat, x, y, w, h, border)
}

func (glFuncs) CopyTexSubImage1D(target uint32, level, xoffset, x, y, w int32) {
	gl.CopyTexSubImage1D(target, level, xoffset, x, y, w)
}

func (glFuncs) CopyTexSubImage2D(target uint32, level, xoffset, yoffset, x, y, w, h int32) {
	gl.CopyTexSubImage2D(target, level, xoffset, yoffset, x, y, w, h)
}

func (glFuncs) CopyTexSubImage3D(target uint32, level, xoffset, yoffset, zoffset, x, y, w, h int32) {
	gl.CopyTexSubImage3D(target, level, xoffset, yoffset, zoffset, x, y, w, h)
}
