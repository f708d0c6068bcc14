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

// Package overlay emulates legacy YUV overlays. An overlay is a YUV image
// that the application fills and then asks to be displayed in a rectangle of
// the screen. Display requests are queued and composited over the screen
// surface at the next present.
//
// Planar overlays are uploaded directly to planar YUV textures when the
// renderer supports them. Everything else is converted to RGBA.
package overlay

import (
	"fmt"
	"image"

	"github.com/libsdl-org/sdl12-compat-sub000/legacy"
	"github.com/veandco/go-sdl2/sdl"
)

// Overlay is a legacy YUV overlay.
type Overlay struct {
	Format  uint32
	W, H    int32
	Planes  int
	Pitches []uint16
	Pixels  [][]byte

	// the legacy API reported whether the overlay was hardware
	// accelerated. it is if it can be uploaded without conversion
	HWOverlay bool

	locked int
}

// New creates an overlay for one of the legacy overlay formats.
func New(w, h int32, format uint32) (*Overlay, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("overlay: invalid dimensions (%dx%d)", w, h)
	}

	ov := &Overlay{
		Format: format,
		W:      w,
		H:      h,
	}

	switch format {
	case legacy.YV12_OVERLAY, legacy.IYUV_OVERLAY:
		cw := (w + 1) / 2
		ch := (h + 1) / 2
		ov.Planes = 3
		ov.Pitches = []uint16{uint16(w), uint16(cw), uint16(cw)}
		ov.Pixels = [][]byte{
			make([]byte, w*h),
			make([]byte, cw*ch),
			make([]byte, cw*ch),
		}
	case legacy.YUY2_OVERLAY, legacy.UYVY_OVERLAY, legacy.YVYU_OVERLAY:
		pitch := ((w + 1) &^ 1) * 2
		ov.Planes = 1
		ov.Pitches = []uint16{uint16(pitch)}
		ov.Pixels = [][]byte{make([]byte, pitch*h)}
	default:
		return nil, fmt.Errorf("overlay: unsupported format (%#08x)", format)
	}

	return ov, nil
}

// SDLFormat returns the modern pixel format equivalent to the overlay format.
func (ov *Overlay) SDLFormat() uint32 {
	switch ov.Format {
	case legacy.YV12_OVERLAY:
		return uint32(sdl.PIXELFORMAT_YV12)
	case legacy.IYUV_OVERLAY:
		return uint32(sdl.PIXELFORMAT_IYUV)
	case legacy.YUY2_OVERLAY:
		return uint32(sdl.PIXELFORMAT_YUY2)
	case legacy.UYVY_OVERLAY:
		return uint32(sdl.PIXELFORMAT_UYVY)
	case legacy.YVYU_OVERLAY:
		return uint32(sdl.PIXELFORMAT_YVYU)
	}
	return uint32(sdl.PIXELFORMAT_UNKNOWN)
}

// Planar returns true for formats with separate Y, U and V planes.
func (ov *Overlay) Planar() bool {
	return ov.Planes == 3
}

// Lock the overlay for writing.
func (ov *Overlay) Lock() {
	ov.locked++
}

// Unlock the overlay after writing.
func (ov *Overlay) Unlock() {
	if ov.locked > 0 {
		ov.locked--
	}
}

// Locked returns true if the overlay is locked.
func (ov *Overlay) Locked() bool {
	return ov.locked > 0
}

// u and v planes of a planar overlay
func (ov *Overlay) chroma() (u []byte, v []byte) {
	if ov.Format == legacy.YV12_OVERLAY {
		return ov.Pixels[2], ov.Pixels[1]
	}
	return ov.Pixels[1], ov.Pixels[2]
}

// YCbCr returns the overlay as an image. Planar overlays share their pixels
// with the image. Packed overlays are copied.
func (ov *Overlay) YCbCr() *image.YCbCr {
	rect := image.Rect(0, 0, int(ov.W), int(ov.H))

	if ov.Planar() {
		u, v := ov.chroma()
		return &image.YCbCr{
			Y:              ov.Pixels[0],
			Cb:             u,
			Cr:             v,
			YStride:        int(ov.Pitches[0]),
			CStride:        int(ov.Pitches[1]),
			SubsampleRatio: image.YCbCrSubsampleRatio420,
			Rect:           rect,
		}
	}

	// offsets of the y0, u, y1, v bytes in each four byte group
	var y0, u, y1, v int
	switch ov.Format {
	case legacy.YUY2_OVERLAY:
		y0, u, y1, v = 0, 1, 2, 3
	case legacy.UYVY_OVERLAY:
		u, y0, v, y1 = 0, 1, 2, 3
	case legacy.YVYU_OVERLAY:
		y0, v, y1, u = 0, 1, 2, 3
	}

	img := image.NewYCbCr(rect, image.YCbCrSubsampleRatio422)
	pitch := int(ov.Pitches[0])
	for y := 0; y < int(ov.H); y++ {
		row := ov.Pixels[0][y*pitch:]
		for x := 0; x < int(ov.W); x += 2 {
			g := row[x*2:]
			img.Y[y*img.YStride+x] = g[y0]
			if x+1 < int(ov.W) {
				img.Y[y*img.YStride+x+1] = g[y1]
			}
			c := y*img.CStride + x/2
			img.Cb[c] = g[u]
			img.Cr[c] = g[v]
		}
	}

	return img
}
