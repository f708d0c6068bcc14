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
	"slices"

	"github.com/libsdl-org/sdl12-compat-sub000/backend"
	"github.com/veandco/go-sdl2/sdl"
)

type renderer struct {
	rnd     *sdl.Renderer
	name    string
	formats []uint32
}

func (r *renderer) Name() string {
	return r.name
}

func (r *renderer) PreferredFormat() uint32 {
	if len(r.formats) == 0 {
		return uint32(sdl.PIXELFORMAT_ARGB8888)
	}
	return r.formats[0]
}

func (r *renderer) SupportsFormat(format uint32) bool {
	return slices.Contains(r.formats, format)
}

func (r *renderer) CreateTexture(format uint32, w, h int32) (backend.Texture, error) {
	t, err := r.rnd.CreateTexture(format, int(sdl.TEXTUREACCESS_STREAMING), w, h)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	return &texture{tex: t, format: format, w: w, h: h}, nil
}

func (r *renderer) SetLogicalSize(w, h int32) error {
	err := r.rnd.SetLogicalSize(w, h)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}

func (r *renderer) SetScaleQuality(linear bool) {
	if linear {
		sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "linear")
	} else {
		sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "nearest")
	}
}

func (r *renderer) Clear() error {
	err := r.rnd.SetDrawColor(0, 0, 0, 255)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	err = r.rnd.Clear()
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}

func (r *renderer) Copy(tex backend.Texture, src *sdl.Rect, dst *sdl.Rect) error {
	t, ok := tex.(*texture)
	if !ok {
		return fmt.Errorf("sdl: texture not created by this backend")
	}
	err := r.rnd.Copy(t.tex, src, dst)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}

func (r *renderer) Present() {
	r.rnd.Present()
}

func (r *renderer) Destroy() error {
	err := r.rnd.Destroy()
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}

type texture struct {
	tex    *sdl.Texture
	format uint32
	w, h   int32
}

func (t *texture) Format() uint32 {
	return t.format
}

func (t *texture) Size() (int32, int32) {
	return t.w, t.h
}

func (t *texture) Lock(area *sdl.Rect) ([]byte, int, error) {
	pixels, pitch, err := t.tex.Lock(area)
	if err != nil {
		return nil, 0, fmt.Errorf("sdl: %w", err)
	}
	return pixels, pitch, nil
}

func (t *texture) Unlock() {
	t.tex.Unlock()
}

func (t *texture) Destroy() error {
	err := t.tex.Destroy()
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}
