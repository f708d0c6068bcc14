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

package legacy

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Rect is the legacy rectangle. Note that the legacy API uses 16 bit fields,
// signed for the position and unsigned for the dimensions.
type Rect struct {
	X, Y int16
	W, H uint16
}

// Empty returns true if the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W == 0 || r.H == 0
}

// Intersect returns the intersection of two rectangles. The result is empty
// if the rectangles do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(int32(r.X), int32(o.X))
	y0 := max(int32(r.Y), int32(o.Y))
	x1 := min(int32(r.X)+int32(r.W), int32(o.X)+int32(o.W))
	y1 := min(int32(r.Y)+int32(r.H), int32(o.Y)+int32(o.H))
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: int16(x0), Y: int16(y0)}
	}
	return Rect{X: int16(x0), Y: int16(y0), W: uint16(x1 - x0), H: uint16(y1 - y0)}
}

// Covers returns true if the rectangle covers the whole of an area with the
// given dimensions.
func (r Rect) Covers(w, h int32) bool {
	return r.X <= 0 && r.Y <= 0 &&
		int32(r.X)+int32(r.W) >= w && int32(r.Y)+int32(r.H) >= h
}

func clamp16(v int32) int16 {
	return int16(max(-32768, min(32767, v)))
}

func clampU16(v int32) uint16 {
	return uint16(max(0, min(65535, v)))
}

// RectFromSDL converts a modern rectangle. Values are clamped to the range
// of the legacy fields.
func RectFromSDL(r sdl.Rect) Rect {
	return Rect{
		X: clamp16(r.X),
		Y: clamp16(r.Y),
		W: clampU16(r.W),
		H: clampU16(r.H),
	}
}

// SDL converts the legacy rectangle to a modern rectangle.
func (r Rect) SDL() sdl.Rect {
	return sdl.Rect{X: int32(r.X), Y: int32(r.Y), W: int32(r.W), H: int32(r.H)}
}
