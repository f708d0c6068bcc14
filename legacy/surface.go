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
	"encoding/binary"
	"fmt"
)

// Surface flags. The values are part of the legacy ABI.
const (
	SWSURFACE   uint32 = 0x00000000
	HWSURFACE   uint32 = 0x00000001
	ASYNCBLIT   uint32 = 0x00000004
	ANYFORMAT   uint32 = 0x10000000
	HWPALETTE   uint32 = 0x20000000
	DOUBLEBUF   uint32 = 0x40000000
	FULLSCREEN  uint32 = 0x80000000
	OPENGL      uint32 = 0x00000002
	OPENGLBLIT  uint32 = 0x0000000A
	RESIZABLE   uint32 = 0x00000010
	NOFRAME     uint32 = 0x00000020
	HWACCEL     uint32 = 0x00000100
	SRCCOLORKEY uint32 = 0x00001000
	RLEACCELOK  uint32 = 0x00002000
	RLEACCEL    uint32 = 0x00004000
	SRCALPHA    uint32 = 0x00010000
	PREALLOC    uint32 = 0x01000000
)

// Surface is the legacy bitmap. The pixel buffer is owned by the surface
// unless the PREALLOC flag is set.
type Surface struct {
	Flags    uint32
	Format   *PixelFormat
	W, H     int32
	Pitch    uint16
	Pixels   []byte
	ClipRect Rect

	// lock count. the screen surface is always lockable but Lock() and
	// Unlock() must balance
	Locked int

	// reference count. FreeSurface() only frees when this drops to zero
	RefCount int
}

// pitch is always rounded up to four bytes, as the legacy API did
func pitchFor(w int32, bytesPerPixel uint8) int32 {
	return (w*int32(bytesPerPixel) + 3) &^ 3
}

// NewSurface creates a surface and allocates a pixel buffer. The masks are
// only used for depths greater than 8. Zero masks for those depths use the
// DefaultMasks().
func NewSurface(flags uint32, w, h int32, bpp int, rmask, gmask, bmask, amask uint32) (*Surface, error) {
	if w < 0 || h < 0 || w > 16384 || h > 16384 {
		return nil, fmt.Errorf("invalid surface dimensions (%dx%d)", w, h)
	}
	switch bpp {
	case 8, 15, 16, 24, 32:
	default:
		return nil, fmt.Errorf("invalid surface depth (%d)", bpp)
	}

	if bpp > 8 && rmask == 0 && gmask == 0 && bmask == 0 {
		rmask, gmask, bmask, amask = DefaultMasks(bpp)
	}

	s := &Surface{
		Flags:    flags &^ PREALLOC,
		Format:   NewPixelFormat(bpp, rmask, gmask, bmask, amask),
		RefCount: 1,
	}
	s.Resize(w, h)

	return s, nil
}

// Resize reallocates the pixel buffer for new dimensions and resets the clip
// rectangle to cover the whole surface. The contents of the buffer are
// cleared.
func (s *Surface) Resize(w, h int32) {
	s.W = w
	s.H = h
	pitch := pitchFor(w, s.Format.BytesPerPixel)
	s.Pitch = uint16(pitch)

	sz := int(pitch * h)
	if cap(s.Pixels) >= sz {
		s.Pixels = s.Pixels[:sz]
		clear(s.Pixels)
	} else {
		s.Pixels = make([]byte, sz)
	}

	s.SetClipRect(nil)
}

// Bounds returns a rectangle covering the whole surface.
func (s *Surface) Bounds() Rect {
	return Rect{W: clampU16(s.W), H: clampU16(s.H)}
}

// SetClipRect sets the clipping rectangle. A nil rectangle resets clipping to
// the whole surface. Returns false if the new clipping rectangle does not
// intersect the surface, in which case all drawing is clipped.
func (s *Surface) SetClipRect(r *Rect) bool {
	if r == nil {
		s.ClipRect = s.Bounds()
		return true
	}
	s.ClipRect = r.Intersect(s.Bounds())
	return !s.ClipRect.Empty()
}

// MustLock returns true if the surface must be locked before the pixels are
// accessed. The legacy API only required this of hardware and RLE surfaces.
func (s *Surface) MustLock() bool {
	return s.Flags&(HWSURFACE|RLEACCEL) != 0
}

// Lock increases the lock count.
func (s *Surface) Lock() {
	s.Locked++
}

// Unlock decreases the lock count. Returns true if the surface is now
// unlocked.
func (s *Surface) Unlock() bool {
	if s.Locked > 0 {
		s.Locked--
	}
	return s.Locked == 0
}

// pixel reads the value of one pixel.
func (s *Surface) pixel(x, y int32) uint32 {
	o := int(y)*int(s.Pitch) + int(x)*int(s.Format.BytesPerPixel)
	p := s.Pixels[o:]
	switch s.Format.BytesPerPixel {
	case 1:
		return uint32(p[0])
	case 2:
		return uint32(binary.LittleEndian.Uint16(p))
	case 3:
		return uint32(p[0]) | uint32(p[1])<<8 | uint32(p[2])<<16
	}
	return binary.LittleEndian.Uint32(p)
}

// putPixel writes the value of one pixel.
func (s *Surface) putPixel(x, y int32, v uint32) {
	o := int(y)*int(s.Pitch) + int(x)*int(s.Format.BytesPerPixel)
	p := s.Pixels[o:]
	switch s.Format.BytesPerPixel {
	case 1:
		p[0] = uint8(v)
	case 2:
		binary.LittleEndian.PutUint16(p, uint16(v))
	case 3:
		p[0], p[1], p[2] = uint8(v), uint8(v>>8), uint8(v>>16)
	default:
		binary.LittleEndian.PutUint32(p, v)
	}
}

// Pixel returns the pixel value at the coordinates. Out of range coordinates
// return zero.
func (s *Surface) Pixel(x, y int32) uint32 {
	if x < 0 || y < 0 || x >= s.W || y >= s.H {
		return 0
	}
	return s.pixel(x, y)
}

// FillRect fills a rectangle with a pixel value, clipped to the clip
// rectangle. A nil rectangle fills the whole clip rectangle. The rectangle is
// updated to show the area actually filled.
func (s *Surface) FillRect(r *Rect, color uint32) {
	area := s.ClipRect
	if r != nil {
		area = r.Intersect(s.ClipRect)
		*r = area
	}
	if area.Empty() {
		return
	}

	x0, y0 := int32(area.X), int32(area.Y)
	x1, y1 := x0+int32(area.W), y0+int32(area.H)

	// fill the first row pixel by pixel and copy it to the remaining rows
	for x := x0; x < x1; x++ {
		s.putPixel(x, y0, color)
	}
	bpp := int32(s.Format.BytesPerPixel)
	row := s.Pixels[int(y0)*int(s.Pitch)+int(x0*bpp) : int(y0)*int(s.Pitch)+int(x1*bpp)]
	for y := y0 + 1; y < y1; y++ {
		o := int(y)*int(s.Pitch) + int(x0*bpp)
		copy(s.Pixels[o:], row)
	}
}

// ConvertRow converts one row of the surface to 32 bit XRGB8888 pixels in
// dst. Used when the pixel format cannot be uploaded to a texture directly.
// The dst slice must have room for 4 * width bytes.
func (s *Surface) ConvertRow(dst []byte, y int32, x0, width int32) {
	for i := int32(0); i < width; i++ {
		r, g, b, _ := s.Format.GetRGBA(s.pixel(x0+i, y))
		binary.LittleEndian.PutUint32(dst[i*4:], 0xff000000|uint32(r)<<16|uint32(g)<<8|uint32(b))
	}
}
