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
	"fmt"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/libsdl-org/sdl12-compat-sub000/backend"
	"github.com/libsdl-org/sdl12-compat-sub000/logger"
	"github.com/veandco/go-sdl2/sdl"
)

type window struct {
	win *sdl.Window
}

func (w *window) ID() uint32 {
	id, err := w.win.GetID()
	if err != nil {
		return 0
	}
	return id
}

func (w *window) Size() (int32, int32) {
	return w.win.GetSize()
}

func (w *window) SetSize(width, height int32) {
	w.win.SetSize(width, height)
}

func (w *window) SetTitle(title string) {
	w.win.SetTitle(title)
}

func (w *window) SetFullscreen(flags uint32) error {
	err := w.win.SetFullscreen(flags)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}

func (w *window) SetBordered(bordered bool) {
	w.win.SetBordered(bordered)
}

func (w *window) SetResizable(resizable bool) {
	w.win.SetResizable(resizable)
}

func (w *window) SetGrab(grab bool) {
	w.win.SetGrab(grab)
}

func (w *window) Minimize() {
	w.win.Minimize()
}

func (w *window) Show() {
	w.win.Show()
}

func (w *window) WarpMouse(x, y int32) {
	w.win.WarpMouseInWindow(x, y)
}

func (w *window) Flags() backend.WindowFlags {
	return backend.WindowFlags(w.win.GetFlags())
}

func (w *window) RefreshRate() int32 {
	m, err := w.win.GetDisplayMode()
	if err != nil {
		return 0
	}
	return m.RefreshRate
}

func (w *window) CreateRenderer(vsync bool) (backend.Renderer, error) {
	flags := uint32(sdl.RENDERER_ACCELERATED)
	if vsync {
		flags |= uint32(sdl.RENDERER_PRESENTVSYNC)
	}
	r, err := sdl.CreateRenderer(w.win, -1, flags)
	if err != nil {
		// fall back to any renderer, including software renderers
		r, err = sdl.CreateRenderer(w.win, -1, 0)
		if err != nil {
			return nil, fmt.Errorf("sdl: %w", err)
		}
	}

	rnd := &renderer{rnd: r}
	info, err := r.GetInfo()
	if err == nil {
		rnd.name = info.Name
		n := min(int(info.NumTextureFormats), len(info.TextureFormats))
		for i := 0; i < n; i++ {
			rnd.formats = append(rnd.formats, uint32(info.TextureFormats[i]))
		}
	}
	logger.Logf(logger.Allow, "sdl", "renderer: %s", rnd.name)

	return rnd, nil
}

func (w *window) CreateGLContext() (backend.GLContext, error) {
	ctx, err := w.win.GLCreateContext()
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	c := &glContext{w: w, ctx: ctx}
	err = c.MakeCurrent()
	if err != nil {
		sdl.GLDeleteContext(ctx)
		return nil, err
	}

	err = gl.Init()
	if err != nil {
		sdl.GLDeleteContext(ctx)
		return nil, fmt.Errorf("gl: %w", err)
	}
	logger.Logf(logger.Allow, "gl", "version %s", gl.GoStr(gl.GetString(gl.VERSION)))

	return c, nil
}

func (w *window) GLSwap() {
	w.win.GLSwap()
}

func (w *window) GLDrawableSize() (int32, int32) {
	return w.win.GLGetDrawableSize()
}

func (w *window) Destroy() error {
	err := w.win.Destroy()
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}

type glContext struct {
	w   *window
	ctx sdl.GLContext
}

func (c *glContext) MakeCurrent() error {
	err := c.w.win.GLMakeCurrent(c.ctx)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}

func (c *glContext) Release() error {
	err := c.w.win.GLMakeCurrent(nil)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}

func (c *glContext) GL() backend.GL {
	return glFuncs{}
}

func (c *glContext) Delete() {
	sdl.GLDeleteContext(c.ctx)
}
