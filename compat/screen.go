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
	"github.com/libsdl-org/sdl12-compat-sub000/curated"
	"github.com/libsdl-org/sdl12-compat-sub000/legacy"
	"github.com/libsdl-org/sdl12-compat-sub000/logger"
	"github.com/libsdl-org/sdl12-compat-sub000/overlay"
)

// presenter copies the screen surface to the texture and the texture to the
// window. Both methods are called by the scheduler with the presentation lock
// held.
type presenter struct {
	c *Context
}

// Upload implements the present.Presenter interface.
func (p presenter) Upload(rects []legacy.Rect) error {
	v := &p.c.vid
	if v.texture == nil || v.screen == nil {
		return nil
	}

	// palette changes affect every pixel
	if rects == nil || v.paletteDirty {
		rects = []legacy.Rect{v.screen.Bounds()}
		v.paletteDirty = false
	}

	for _, r := range rects {
		r = r.Intersect(v.screen.Bounds())
		if r.Empty() {
			continue
		}
		if err := p.upload(r); err != nil {
			return err
		}
	}

	return nil
}

func (p presenter) upload(r legacy.Rect) error {
	v := &p.c.vid
	s := v.screen

	area := r.SDL()
	pixels, pitch, err := v.texture.Lock(&area)
	if err != nil {
		return curated.Errorf(curated.BackendFailure, "upload", err)
	}
	defer v.texture.Unlock()

	x0, y0 := int32(r.X), int32(r.Y)
	w, h := int32(r.W), int(r.H)

	if v.convert {
		for y := 0; y < h; y++ {
			s.ConvertRow(pixels[y*pitch:], y0+int32(y), x0, w)
		}
		return nil
	}

	bpp := int(s.Format.BytesPerPixel)
	n := int(w) * bpp
	for y := 0; y < h; y++ {
		o := (int(y0)+y)*int(s.Pitch) + int(x0)*bpp
		copy(pixels[y*pitch:y*pitch+n], s.Pixels[o:o+n])
	}

	return nil
}

// Present implements the present.Presenter interface.
func (p presenter) Present() error {
	c := p.c
	v := &c.vid
	if v.renderer == nil || v.texture == nil {
		return nil
	}

	if err := v.renderer.Clear(); err != nil {
		return curated.Errorf(curated.BackendFailure, "present", err)
	}
	if err := v.renderer.Copy(v.texture, nil, nil); err != nil {
		return curated.Errorf(curated.BackendFailure, "present", err)
	}

	err := v.overlays.Drain(func(it overlay.Item) error {
		tex, err := c.overlayTexture(it.Overlay)
		if err != nil {
			return err
		}
		if err := it.Overlay.Upload(tex); err != nil {
			return err
		}
		dst := it.Dst.SDL()
		return v.renderer.Copy(tex, nil, &dst)
	})
	if err != nil {
		// the screen is still presented without the overlay
		logger.Log(logger.Allow, "compat", err)
	}

	v.renderer.Present()

	return nil
}

// servicePresent performs any present deferred by the scheduler.
func (c *Context) servicePresent() {
	snap := c.snapshot()
	if snap.sched == nil {
		return
	}
	if err := snap.sched.Service(); err != nil {
		c.fail(err)
	}
}

// UpdatePending returns true if there is an update of the screen surface that
// has not been presented yet.
func (c *Context) UpdatePending() bool {
	snap := c.snapshot()
	return snap.sched != nil && snap.sched.Dirty()
}

// UpdateRects makes areas of the screen surface visible. Surfaces other than
// the screen surface are ignored. A zero rectangle means the whole surface.
func (c *Context) UpdateRects(screen *legacy.Surface, rects []legacy.Rect) {
	snap := c.snapshot()
	if !snap.active || screen == nil || screen != snap.screen {
		return
	}

	// GL modes present with GL_SwapBuffers()
	if snap.sched == nil {
		return
	}

	policy, err := snap.sched.Update(rects)
	if err != nil {
		c.fail(err)
		return
	}
	logger.Logf(logger.Verbose, "compat", "update %d rects (%s)", len(rects), policy)
}

// UpdateRect makes an area of the screen surface visible. A zero area means
// the whole surface.
func (c *Context) UpdateRect(screen *legacy.Surface, x, y int32, w, h uint32) {
	r := legacy.Rect{
		X: int16(max(-0x8000, min(0x7fff, x))),
		Y: int16(max(-0x8000, min(0x7fff, y))),
		W: uint16(min(0xffff, w)),
		H: uint16(min(0xffff, h)),
	}
	c.UpdateRects(screen, []legacy.Rect{r})
}

// Flip makes the whole screen surface visible. For GL modes the buffers are
// swapped. Returns 0 on success and -1 on failure.
func (c *Context) Flip(screen *legacy.Surface) int {
	snap := c.snapshot()
	if !snap.active || screen != snap.screen {
		c.fail(curated.Errorf(curated.InvalidHandle, "Flip", "not the screen surface"))
		return -1
	}
	if snap.flags&legacy.OPENGL == legacy.OPENGL {
		c.GL_SwapBuffers()
		return 0
	}
	c.UpdateRects(screen, nil)
	return 0
}

// SetPalette sets colors in the palette of an 8 bit surface. The flags are a
// combination of LOGPAL and PHYSPAL. Changing the physical palette of the
// screen surface updates the whole display. Returns false if the surface has
// no palette or not every color could be set.
func (c *Context) SetPalette(s *legacy.Surface, flags int, colors []legacy.Color, first int) bool {
	if s == nil || s.Format == nil || s.Format.Palette == nil {
		return false
	}

	pal := s.Format.Palette.Colors
	if first < 0 || first >= len(pal) {
		return false
	}
	n := copy(pal[first:], colors)

	snap := c.snapshot()
	if snap.active && s == snap.screen && flags&legacy.PHYSPAL == legacy.PHYSPAL {
		c.lock.Acquire()
		c.vid.paletteDirty = true
		c.lock.Release()
		c.UpdateRects(s, nil)
	}

	return n == len(colors)
}

// SetColors sets both the logical and physical palette.
func (c *Context) SetColors(s *legacy.Surface, colors []legacy.Color, first int) bool {
	return c.SetPalette(s, legacy.LOGPAL|legacy.PHYSPAL, colors, first)
}

// SetGamma is accepted and does nothing. Returns 0.
func (c *Context) SetGamma(r, g, b float32) int {
	logger.Logf(logger.Verbose, "compat", "gamma %.2f %.2f %.2f ignored", r, g, b)
	return 0
}

// LockSurface locks the surface for direct pixel access. Returns 0.
func (c *Context) LockSurface(s *legacy.Surface) int {
	if s == nil {
		return -1
	}
	s.Lock()
	return 0
}

// UnlockSurface balances a call to LockSurface().
func (c *Context) UnlockSurface(s *legacy.Surface) {
	if s == nil {
		return
	}
	s.Unlock()
}

// FreeSurface releases a surface. The screen surface is owned by the Context
// and is never freed this way.
func (c *Context) FreeSurface(s *legacy.Surface) {
	if s == nil {
		return
	}
	if snap := c.snapshot(); snap.active && s == snap.screen {
		logger.Log(logger.Verbose, "compat", "refusing to free the screen surface")
		return
	}
	s.RefCount--
	if s.RefCount <= 0 {
		s.Pixels = nil
		s.Format = nil
	}
}
