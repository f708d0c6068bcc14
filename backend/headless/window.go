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
	"fmt"

	"github.com/libsdl-org/sdl12-compat-sub000/backend"
	"github.com/veandco/go-sdl2/sdl"
)

// Window implements the backend.Window interface.
type Window struct {
	b  *Backend
	id uint32

	Title     string
	W, H      int32
	flags     backend.WindowFlags
	Grabbed   bool
	Minimised bool
	Warped    [2]int32

	renderer *Renderer
	context  *GLContext
}

// ID implements the backend.Window interface.
func (w *Window) ID() uint32 {
	return w.id
}

// Size implements the backend.Window interface.
func (w *Window) Size() (int32, int32) {
	w.b.crit.Lock()
	defer w.b.crit.Unlock()
	return w.W, w.H
}

// SetSize implements the backend.Window interface.
func (w *Window) SetSize(width, height int32) {
	w.b.crit.Lock()
	defer w.b.crit.Unlock()
	w.W = width
	w.H = height
}

// SetTitle implements the backend.Window interface.
func (w *Window) SetTitle(title string) {
	w.b.crit.Lock()
	defer w.b.crit.Unlock()
	w.Title = title
}

const fullscreenMask = backend.WindowFlags(sdl.WINDOW_FULLSCREEN | sdl.WINDOW_FULLSCREEN_DESKTOP)

// SetFullscreen implements the backend.Window interface.
func (w *Window) SetFullscreen(flags uint32) error {
	w.b.crit.Lock()
	defer w.b.crit.Unlock()
	w.flags = (w.flags &^ fullscreenMask) | backend.WindowFlags(flags)
	if flags == uint32(sdl.WINDOW_FULLSCREEN_DESKTOP) {
		w.W = w.b.Desktop.W
		w.H = w.b.Desktop.H
	}
	return nil
}

func (w *Window) setFlag(f backend.WindowFlags, on bool) {
	w.b.crit.Lock()
	defer w.b.crit.Unlock()
	if on {
		w.flags |= f
	} else {
		w.flags &^= f
	}
}

// SetBordered implements the backend.Window interface.
func (w *Window) SetBordered(bordered bool) {
	w.setFlag(backend.WindowFlags(sdl.WINDOW_BORDERLESS), !bordered)
}

// SetResizable implements the backend.Window interface.
func (w *Window) SetResizable(resizable bool) {
	w.setFlag(backend.WindowFlags(sdl.WINDOW_RESIZABLE), resizable)
}

// SetGrab implements the backend.Window interface.
func (w *Window) SetGrab(grab bool) {
	w.b.crit.Lock()
	defer w.b.crit.Unlock()
	w.Grabbed = grab
}

// Minimize implements the backend.Window interface.
func (w *Window) Minimize() {
	w.b.crit.Lock()
	defer w.b.crit.Unlock()
	w.Minimised = true
}

// Show implements the backend.Window interface.
func (w *Window) Show() {
	w.b.crit.Lock()
	defer w.b.crit.Unlock()
	w.Minimised = false
}

// WarpMouse implements the backend.Window interface.
func (w *Window) WarpMouse(x, y int32) {
	w.b.crit.Lock()
	defer w.b.crit.Unlock()
	w.Warped = [2]int32{x, y}
}

// Flags implements the backend.Window interface.
func (w *Window) Flags() backend.WindowFlags {
	w.b.crit.Lock()
	defer w.b.crit.Unlock()
	return w.flags
}

// RefreshRate implements the backend.Window interface.
func (w *Window) RefreshRate() int32 {
	return w.b.Desktop.RefreshRate
}

// Renderer returns the renderer created for the window. Returns nil if there
// is no renderer or it has been destroyed.
func (w *Window) Renderer() *Renderer {
	w.b.crit.Lock()
	defer w.b.crit.Unlock()
	return w.renderer
}

// CreateRenderer implements the backend.Window interface.
func (w *Window) CreateRenderer(vsync bool) (backend.Renderer, error) {
	w.b.crit.Lock()
	defer w.b.crit.Unlock()
	if w.b.FailRenderer {
		return nil, fmt.Errorf("headless: renderer creation failed")
	}
	if w.renderer != nil {
		return nil, fmt.Errorf("headless: window already has a renderer")
	}
	if w.context != nil {
		return nil, fmt.Errorf("headless: window already has a GL context")
	}
	w.renderer = &Renderer{w: w, VSync: vsync}
	w.b.counts.Renderers++
	return w.renderer, nil
}

// CreateGLContext implements the backend.Window interface.
func (w *Window) CreateGLContext() (backend.GLContext, error) {
	w.b.crit.Lock()
	defer w.b.crit.Unlock()
	if w.b.FailContext {
		return nil, fmt.Errorf("headless: GL context creation failed")
	}
	if w.renderer != nil {
		return nil, fmt.Errorf("headless: window already has a renderer")
	}
	w.context = &GLContext{w: w}
	w.b.counts.GLContexts++
	return w.context, nil
}

// GLContext returns the context created for the window. Returns nil if no
// context has been created.
func (w *Window) GLContext() *GLContext {
	w.b.crit.Lock()
	defer w.b.crit.Unlock()
	return w.context
}

// GLSwap implements the backend.Window interface.
func (w *Window) GLSwap() {
	w.b.crit.Lock()
	defer w.b.crit.Unlock()
	w.b.counts.Swaps++
}

// GLDrawableSize implements the backend.Window interface.
func (w *Window) GLDrawableSize() (int32, int32) {
	return w.Size()
}

// Destroy implements the backend.Window interface.
func (w *Window) Destroy() error {
	w.b.crit.Lock()
	defer w.b.crit.Unlock()
	if _, ok := w.b.windows[w.id]; !ok {
		return fmt.Errorf("headless: window %d already destroyed", w.id)
	}
	delete(w.b.windows, w.id)
	w.b.counts.WindowsDestroyed++
	return nil
}

// Renderer implements the backend.Renderer interface.
type Renderer struct {
	w     *Window
	VSync bool

	LogicalW, LogicalH int32
	Linear             bool

	// textures copied since the last present
	Copied []*Texture

	destroyed bool
}

// Name implements the backend.Renderer interface.
func (r *Renderer) Name() string {
	return "headless"
}

// PreferredFormat implements the backend.Renderer interface.
func (r *Renderer) PreferredFormat() uint32 {
	return r.w.b.TextureFormat
}

// SupportsFormat implements the backend.Renderer interface.
func (r *Renderer) SupportsFormat(format uint32) bool {
	switch format {
	case r.w.b.TextureFormat, uint32(sdl.PIXELFORMAT_YV12), uint32(sdl.PIXELFORMAT_IYUV):
		return true
	}
	return false
}

// CreateTexture implements the backend.Renderer interface.
func (r *Renderer) CreateTexture(format uint32, w, h int32) (backend.Texture, error) {
	r.w.b.crit.Lock()
	defer r.w.b.crit.Unlock()
	if r.w.b.FailTexture {
		return nil, fmt.Errorf("headless: texture creation failed")
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("headless: invalid texture size (%dx%d)", w, h)
	}
	t := &Texture{
		b:      r.w.b,
		format: format,
		w:      w,
		h:      h,
	}
	t.Pitch = int(w) * bytesPerPixel(format)
	t.Pixels = make([]byte, textureSize(format, w, h))
	r.w.b.counts.Textures++
	return t, nil
}

func bytesPerPixel(format uint32) int {
	switch format {
	case uint32(sdl.PIXELFORMAT_YV12), uint32(sdl.PIXELFORMAT_IYUV), uint32(sdl.PIXELFORMAT_INDEX8):
		return 1
	case uint32(sdl.PIXELFORMAT_YUY2), uint32(sdl.PIXELFORMAT_UYVY), uint32(sdl.PIXELFORMAT_YVYU),
		uint32(sdl.PIXELFORMAT_RGB565), uint32(sdl.PIXELFORMAT_RGB555):
		return 2
	case uint32(sdl.PIXELFORMAT_RGB24), uint32(sdl.PIXELFORMAT_BGR24):
		return 3
	}
	return 4
}

func textureSize(format uint32, w, h int32) int {
	switch format {
	case uint32(sdl.PIXELFORMAT_YV12), uint32(sdl.PIXELFORMAT_IYUV):
		return int(w*h) + 2*int(((w+1)/2)*((h+1)/2))
	}
	return int(w*h) * bytesPerPixel(format)
}

// SetLogicalSize implements the backend.Renderer interface.
func (r *Renderer) SetLogicalSize(w, h int32) error {
	r.LogicalW = w
	r.LogicalH = h
	return nil
}

// SetScaleQuality implements the backend.Renderer interface.
func (r *Renderer) SetScaleQuality(linear bool) {
	r.Linear = linear
}

// Clear implements the backend.Renderer interface.
func (r *Renderer) Clear() error {
	r.Copied = r.Copied[:0]
	return nil
}

// Copy implements the backend.Renderer interface.
func (r *Renderer) Copy(tex backend.Texture, src *sdl.Rect, dst *sdl.Rect) error {
	t, ok := tex.(*Texture)
	if !ok || t.destroyed {
		return fmt.Errorf("headless: invalid texture")
	}
	r.Copied = append(r.Copied, t)
	return nil
}

// Present implements the backend.Renderer interface.
func (r *Renderer) Present() {
	r.w.b.crit.Lock()
	defer r.w.b.crit.Unlock()
	r.w.b.counts.Presents++
}

// Destroy implements the backend.Renderer interface.
func (r *Renderer) Destroy() error {
	r.w.b.crit.Lock()
	defer r.w.b.crit.Unlock()
	if r.destroyed {
		return fmt.Errorf("headless: renderer already destroyed")
	}
	r.destroyed = true
	r.w.renderer = nil
	r.w.b.counts.RenderersDestroy++
	return nil
}

// Texture implements the backend.Texture interface.
type Texture struct {
	b      *Backend
	format uint32
	w, h   int32

	Pixels []byte
	Pitch  int
	Locked bool

	// number of times the texture has been locked
	Uploads int

	destroyed bool
}

// Format implements the backend.Texture interface.
func (t *Texture) Format() uint32 {
	return t.format
}

// Size implements the backend.Texture interface.
func (t *Texture) Size() (int32, int32) {
	return t.w, t.h
}

// Lock implements the backend.Texture interface.
func (t *Texture) Lock(area *sdl.Rect) ([]byte, int, error) {
	if t.Locked {
		return nil, 0, fmt.Errorf("headless: texture already locked")
	}
	t.Locked = true
	t.Uploads++
	if area == nil {
		return t.Pixels, t.Pitch, nil
	}
	o := int(area.Y)*t.Pitch + int(area.X)*bytesPerPixel(t.format)
	return t.Pixels[o:], t.Pitch, nil
}

// Unlock implements the backend.Texture interface.
func (t *Texture) Unlock() {
	t.Locked = false
}

// Destroy implements the backend.Texture interface.
func (t *Texture) Destroy() error {
	t.b.crit.Lock()
	defer t.b.crit.Unlock()
	if t.destroyed {
		return fmt.Errorf("headless: texture already destroyed")
	}
	t.destroyed = true
	t.b.counts.TexturesDestroy++
	return nil
}

// Destroyed returns true if Destroy() has been called.
func (t *Texture) Destroyed() bool {
	return t.destroyed
}

// GLContext implements the backend.GLContext interface.
type GLContext struct {
	w       *Window
	Current bool
	deleted bool

	// every change of Current in order. true for MakeCurrent()
	History []bool

	// number of calls to MakeCurrent() while the context was already
	// current. with a real backend that would be an error if the calls came
	// from different threads
	Rebinds int
}

// MakeCurrent implements the backend.GLContext interface.
func (c *GLContext) MakeCurrent() error {
	if c.deleted {
		return fmt.Errorf("headless: GL context has been deleted")
	}
	if c.Current {
		c.Rebinds++
	}
	c.Current = true
	c.History = append(c.History, true)
	return nil
}

// Release implements the backend.GLContext interface.
func (c *GLContext) Release() error {
	if c.Current {
		c.History = append(c.History, false)
	}
	c.Current = false
	return nil
}

// GL implements the backend.GLContext interface.
func (c *GLContext) GL() backend.GL {
	return c.w.b.GL
}

// Delete implements the backend.GLContext interface.
func (c *GLContext) Delete() {
	c.w.b.crit.Lock()
	defer c.w.b.crit.Unlock()
	if c.deleted {
		return
	}
	c.deleted = true
	c.Current = false
	c.w.context = nil
	c.w.b.counts.GLContextsDelete++
}
