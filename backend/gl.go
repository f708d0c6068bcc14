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

package backend

import "unsafe"

// GL is the subset of the OpenGL API needed to redirect drawing to an offscreen
// framebuffer and to scale the framebuffer into the window. Values for
// targets, formats and attachments are the OpenGL enumerations.
type GL interface {
	// Extension returns true if the extension is supported by the context
	Extension(name string) bool
	MaxSamples() int32

	GenFramebuffer() uint32
	DeleteFramebuffer(fb uint32)
	BindFramebuffer(target uint32, fb uint32)
	CheckFramebufferStatus(target uint32) uint32
	FramebufferRenderbuffer(target uint32, attachment uint32, rb uint32)

	GenRenderbuffer() uint32
	DeleteRenderbuffer(rb uint32)
	BindRenderbuffer(rb uint32)
	RenderbufferStorage(samples int32, format uint32, w, h int32)

	// BlitFramebuffer copies the color buffer of the read framebuffer to the
	// draw framebuffer. src and dst are x0, y0, x1, y1
	BlitFramebuffer(src [4]int32, dst [4]int32, filter uint32)

	Viewport(x, y, w, h int32)
	Scissor(x, y, w, h int32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	Enable(capability uint32)
	Disable(capability uint32)
	IsEnabled(capability uint32) bool
	GetIntegerv(pname uint32, data *int32)

	// read back from the bound read framebuffer
	ReadPixels(x, y, w, h int32, format uint32, xtype uint32, pixels unsafe.Pointer)
	CopyTexImage1D(target uint32, level int32, internalformat uint32, x, y, w, border int32)
	CopyTexImage2D(target uint32, level int32, internalformat uint32, x, y, w, h, border int32)
	CopyTexSubImage1D(target uint32, level, xoffset, x, y, w int32)
	CopyTexSubImage2D(target uint32, level, xoffset, yoffset, x, y, w, h int32)
	CopyTexSubImage3D(target uint32, level, xoffset, yoffset, zoffset, x, y, w, h int32)
}
