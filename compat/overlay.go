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
	"github.com/libsdl-org/sdl12-compat-sub000/backend"
	"github.com/libsdl-org/sdl12-compat-sub000/curated"
	"github.com/libsdl-org/sdl12-compat-sub000/legacy"
	"github.com/libsdl-org/sdl12-compat-sub000/logger"
	"github.com/libsdl-org/sdl12-compat-sub000/overlay"
)

// CreateYUVOverlay creates an overlay for display on the screen surface.
// Returns nil if there is no software video mode or the format is not one of
// the *_OVERLAY values.
func (c *Context) CreateYUVOverlay(w, h int32, format uint32, display *legacy.Surface) *overlay.Overlay {
	c.lock.Acquire()
	defer c.lock.Release()

	v := &c.vid
	if v.renderer == nil || display == nil || display != v.screen {
		c.fail(curated.Errorf(curated.Unsupported, "CreateYUVOverlay", "overlays need a software video mode"))
		return nil
	}

	ov, err := overlay.New(w, h, format)
	if err != nil {
		c.fail(curated.Errorf(curated.Unsupported, "CreateYUVOverlay", err))
		return nil
	}
	ov.HWOverlay = ov.TextureFormat(v.renderer.SupportsFormat) == ov.SDLFormat()

	return ov
}

// LockYUVOverlay locks the overlay so the planes can be written. Returns 0.
func (c *Context) LockYUVOverlay(ov *overlay.Overlay) int {
	if ov == nil {
		return -1
	}
	ov.Lock()
	return 0
}

// UnlockYUVOverlay balances a call to LockYUVOverlay().
func (c *Context) UnlockYUVOverlay(ov *overlay.Overlay) {
	if ov == nil {
		return
	}
	ov.Unlock()
}

// DisplayYUVOverlay queues the overlay to be drawn over the screen surface in
// the destination rectangle. Overlays queued within one frame are drawn
// together. Returns 0 on success and -1 on failure.
func (c *Context) DisplayYUVOverlay(ov *overlay.Overlay, dst legacy.Rect) int {
	if ov == nil {
		return -1
	}
	if ov.Locked() {
		c.fail(curated.Errorf(curated.Unsupported, "DisplayYUVOverlay", "overlay is locked"))
		return -1
	}

	c.lock.Acquire()
	if c.vid.renderer == nil {
		c.lock.Release()
		c.fail(curated.Errorf(curated.Unsupported, "DisplayYUVOverlay", "no software video mode"))
		return -1
	}
	c.vid.overlays.Enqueue(ov, dst)
	screen := c.vid.screen
	c.lock.Release()

	// the destination is part of the screen so the present is deferred like
	// any other partial update
	r := dst.Intersect(screen.Bounds())
	if r.Empty() {
		return 0
	}
	c.UpdateRects(screen, []legacy.Rect{r})

	return 0
}

// FreeYUVOverlay forgets the overlay and deletes its texture.
func (c *Context) FreeYUVOverlay(ov *overlay.Overlay) {
	if ov == nil {
		return
	}

	c.lock.Acquire()
	defer c.lock.Release()

	v := &c.vid
	v.overlays.Remove(ov)
	if tex, ok := v.overlayTex[ov]; ok {
		if err := tex.Destroy(); err != nil {
			logger.Log(logger.Allow, "compat", err)
		}
		delete(v.overlayTex, ov)
	}
}

// overlayTexture returns the texture for the overlay, creating it if
// necessary. Must be called with the presentation lock held.
func (c *Context) overlayTexture(ov *overlay.Overlay) (backend.Texture, error) {
	v := &c.vid
	if tex, ok := v.overlayTex[ov]; ok {
		return tex, nil
	}

	format := ov.TextureFormat(v.renderer.SupportsFormat)
	tex, err := v.renderer.CreateTexture(format, ov.W, ov.H)
	if err != nil {
		return nil, curated.Errorf(curated.BackendFailure, "overlay", err)
	}
	v.overlayTex[ov] = tex

	if format != ov.SDLFormat() {
		logger.Logf(logger.Verbose, "compat", "overlay %#08x converted for upload", ov.Format)
	}

	return tex, nil
}

// dropOverlays forgets every queued overlay and deletes every overlay
// texture. Must be called with the presentation lock held.
func (c *Context) dropOverlays() {
	v := &c.vid
	_ = v.overlays.Drain(func(overlay.Item) error { return nil })
	for ov, tex := range v.overlayTex {
		if err := tex.Destroy(); err != nil {
			logger.Log(logger.Allow, "compat", err)
		}
		delete(v.overlayTex, ov)
	}
}
