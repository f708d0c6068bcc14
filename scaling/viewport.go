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

// Package scaling renders a GL application at its requested resolution into
// an offscreen framebuffer and scales the result into the window, keeping
// the aspect ratio with letterboxing or pillarboxing as required.
package scaling

// Viewport is the area of the window that the logical resolution is scaled
// into.
type Viewport struct {
	X, Y, W, H int32

	// the logical resolution
	LogicalW, LogicalH int32
}

// NewViewport calculates where a logical resolution is placed in a window of
// the physical size. If the aspect ratios are equal the logical resolution
// fills the window. If the logical resolution is wider the viewport is
// letterboxed and if it is narrower it is pillarboxed.
func NewViewport(logicalW, logicalH, physW, physH int32) Viewport {
	vp := Viewport{
		W:        physW,
		H:        physH,
		LogicalW: logicalW,
		LogicalH: logicalH,
	}

	if logicalW <= 0 || logicalH <= 0 || physW <= 0 || physH <= 0 {
		return vp
	}

	// compare aspect ratios without division
	want := int64(logicalW) * int64(physH)
	have := int64(physW) * int64(logicalH)

	switch {
	case want > have:
		// letterbox
		vp.H = int32(int64(physW) * int64(logicalH) / int64(logicalW))
		vp.Y = (physH - vp.H) / 2
	case want < have:
		// pillarbox
		vp.W = int32(int64(physH) * int64(logicalW) / int64(logicalH))
		vp.X = (physW - vp.W) / 2
	}

	return vp
}

// Letterboxed returns true if there are bars above and below the viewport.
func (vp Viewport) Letterboxed() bool {
	return vp.Y > 0
}

// Pillarboxed returns true if there are bars to the left and right of the
// viewport.
func (vp Viewport) Pillarboxed() bool {
	return vp.X > 0
}

// ToLogical maps a point in the window to the logical resolution. Points
// outside the viewport are clamped to the edge of the logical resolution.
func (vp Viewport) ToLogical(x, y int32) (int32, int32) {
	if vp.W <= 0 || vp.H <= 0 {
		return x, y
	}
	lx := int32(int64(x-vp.X) * int64(vp.LogicalW) / int64(vp.W))
	ly := int32(int64(y-vp.Y) * int64(vp.LogicalH) / int64(vp.H))
	lx = max(0, min(vp.LogicalW-1, lx))
	ly = max(0, min(vp.LogicalH-1, ly))
	return lx, ly
}

// ToLogicalDelta maps a relative movement in the window to the logical
// resolution.
func (vp Viewport) ToLogicalDelta(dx, dy int32) (int32, int32) {
	if vp.W <= 0 || vp.H <= 0 {
		return dx, dy
	}
	return int32(int64(dx) * int64(vp.LogicalW) / int64(vp.W)),
		int32(int64(dy) * int64(vp.LogicalH) / int64(vp.H))
}

// FromLogical maps a position on the logical framebuffer to a position in
// the window.
func (vp Viewport) FromLogical(x, y int32) (int32, int32) {
	if vp.LogicalW <= 0 || vp.LogicalH <= 0 {
		return x, y
	}
	return vp.X + int32(int64(x)*int64(vp.W)/int64(vp.LogicalW)),
		vp.Y + int32(int64(y)*int64(vp.H)/int64(vp.LogicalH))
}

// blit rectangle in GL window coordinates, which have the origin at the
// bottom left. physH is the height of the window
func (vp Viewport) blit(physH int32) [4]int32 {
	y0 := physH - vp.Y - vp.H
	return [4]int32{vp.X, y0, vp.X + vp.W, y0 + vp.H}
}
