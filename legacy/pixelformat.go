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
	"math/bits"

	"github.com/veandco/go-sdl2/sdl"
)

// Color is the legacy palette entry.
type Color struct {
	R, G, B uint8
	Unused  uint8
}

// Palette is owned by the PixelFormat it belongs to.
type Palette struct {
	Colors []Color
}

// PixelFormat is the legacy description of how pixels are laid out in a
// surface. A format with a Palette has 8 bits per pixel and zero masks.
type PixelFormat struct {
	Palette       *Palette
	BitsPerPixel  uint8
	BytesPerPixel uint8

	Rloss, Gloss, Bloss, Aloss     uint8
	Rshift, Gshift, Bshift, Ashift uint8
	Rmask, Gmask, Bmask, Amask     uint32

	// RGB colour key for SRCCOLORKEY surfaces
	ColorKey uint32

	// per surface alpha for SRCALPHA surfaces
	Alpha uint8
}

// DefaultMasks returns the channel masks used when an application asks for a
// bit depth without specifying masks.
func DefaultMasks(bpp int) (r, g, b, a uint32) {
	switch bpp {
	case 15:
		return 0x7c00, 0x03e0, 0x001f, 0
	case 16:
		return 0xf800, 0x07e0, 0x001f, 0
	case 24, 32:
		return 0x00ff0000, 0x0000ff00, 0x000000ff, 0
	}
	return 0, 0, 0, 0
}

// shift and loss values for a channel mask
func maskInfo(mask uint32) (shift uint8, loss uint8) {
	if mask == 0 {
		return 0, 8
	}
	shift = uint8(bits.TrailingZeros32(mask))
	width := bits.OnesCount32(mask)
	if width < 8 {
		loss = uint8(8 - width)
	}
	return shift, loss
}

// NewPixelFormat creates a pixel format for the given depth and masks. A
// depth of 8 creates an owned 256 colour palette, initialised to a 3-3-2
// colour cube.
func NewPixelFormat(bpp int, rmask, gmask, bmask, amask uint32) *PixelFormat {
	pf := &PixelFormat{
		BitsPerPixel:  uint8(bpp),
		BytesPerPixel: uint8((bpp + 7) / 8),
		Alpha:         255,
	}

	if bpp <= 8 {
		pf.Palette = &Palette{Colors: make([]Color, 1<<bpp)}
		if bpp == 8 {
			for i := range pf.Palette.Colors {
				r := uint8(i>>5) & 0x07
				g := uint8(i>>2) & 0x07
				b := uint8(i) & 0x03
				pf.Palette.Colors[i] = Color{
					R: r<<5 | r<<2 | r>>1,
					G: g<<5 | g<<2 | g>>1,
					B: b<<6 | b<<4 | b<<2 | b,
				}
			}
		}
		pf.Rloss, pf.Gloss, pf.Bloss, pf.Aloss = 8, 8, 8, 8
		return pf
	}

	pf.Rmask, pf.Gmask, pf.Bmask, pf.Amask = rmask, gmask, bmask, amask
	pf.Rshift, pf.Rloss = maskInfo(rmask)
	pf.Gshift, pf.Gloss = maskInfo(gmask)
	pf.Bshift, pf.Bloss = maskInfo(bmask)
	pf.Ashift, pf.Aloss = maskInfo(amask)

	return pf
}

// Copy returns a deep copy of the pixel format. The palette is not shared.
func (pf *PixelFormat) Copy() *PixelFormat {
	c := *pf
	if pf.Palette != nil {
		c.Palette = &Palette{Colors: make([]Color, len(pf.Palette.Colors))}
		copy(c.Palette.Colors, pf.Palette.Colors)
	}
	return &c
}

// MapRGBA maps a colour to a pixel value. Paletted formats return the index
// of the closest palette entry.
func (pf *PixelFormat) MapRGBA(r, g, b, a uint8) uint32 {
	if pf.Palette != nil {
		best := 0
		bestDist := int(^uint(0) >> 1)
		for i, c := range pf.Palette.Colors {
			dr := int(c.R) - int(r)
			dg := int(c.G) - int(g)
			db := int(c.B) - int(b)
			d := dr*dr + dg*dg + db*db
			if d < bestDist {
				best, bestDist = i, d
				if d == 0 {
					break
				}
			}
		}
		return uint32(best)
	}

	v := (uint32(r)>>pf.Rloss)<<pf.Rshift |
		(uint32(g)>>pf.Gloss)<<pf.Gshift |
		(uint32(b)>>pf.Bloss)<<pf.Bshift
	if pf.Amask != 0 {
		v |= (uint32(a) >> pf.Aloss) << pf.Ashift
	}
	return v
}

// MapRGB maps an opaque colour to a pixel value.
func (pf *PixelFormat) MapRGB(r, g, b uint8) uint32 {
	return pf.MapRGBA(r, g, b, 255)
}

// expand an n-bit channel value to 8 bits by replicating the high bits
func expand(v uint32, loss uint8) uint8 {
	if loss >= 8 {
		return 0
	}
	v <<= loss
	return uint8(v | v>>(8-loss))
}

// GetRGBA returns the colour of a pixel value.
func (pf *PixelFormat) GetRGBA(pixel uint32) (r, g, b, a uint8) {
	if pf.Palette != nil {
		if int(pixel) < len(pf.Palette.Colors) {
			c := pf.Palette.Colors[pixel]
			return c.R, c.G, c.B, 255
		}
		return 0, 0, 0, 255
	}

	r = expand((pixel&pf.Rmask)>>pf.Rshift, pf.Rloss)
	g = expand((pixel&pf.Gmask)>>pf.Gshift, pf.Gloss)
	b = expand((pixel&pf.Bmask)>>pf.Bshift, pf.Bloss)
	a = 255
	if pf.Amask != 0 {
		a = expand((pixel&pf.Amask)>>pf.Ashift, pf.Aloss)
	}
	return r, g, b, a
}

// SDLFormat returns the modern pixel format enumeration for the legacy
// format. Returns PIXELFORMAT_UNKNOWN if there is no equivalent, in which
// case pixels need converting before they can be uploaded.
func (pf *PixelFormat) SDLFormat() uint32 {
	switch pf.BitsPerPixel {
	case 8:
		return uint32(sdl.PIXELFORMAT_INDEX8)
	case 15:
		if pf.Rmask == 0x7c00 && pf.Gmask == 0x03e0 && pf.Bmask == 0x001f {
			return uint32(sdl.PIXELFORMAT_RGB555)
		}
	case 16:
		switch {
		case pf.Rmask == 0xf800 && pf.Gmask == 0x07e0 && pf.Bmask == 0x001f:
			return uint32(sdl.PIXELFORMAT_RGB565)
		case pf.Rmask == 0x7c00 && pf.Gmask == 0x03e0 && pf.Bmask == 0x001f:
			return uint32(sdl.PIXELFORMAT_RGB555)
		case pf.Rmask == 0x001f && pf.Gmask == 0x07e0 && pf.Bmask == 0xf800:
			return uint32(sdl.PIXELFORMAT_BGR565)
		}
	case 24:
		switch {
		case pf.Rmask == 0xff0000 && pf.Bmask == 0x0000ff:
			return uint32(sdl.PIXELFORMAT_RGB24)
		case pf.Rmask == 0x0000ff && pf.Bmask == 0xff0000:
			return uint32(sdl.PIXELFORMAT_BGR24)
		}
	case 32:
		switch {
		case pf.Rmask == 0x00ff0000 && pf.Gmask == 0x0000ff00 && pf.Bmask == 0x000000ff && pf.Amask == 0xff000000:
			return uint32(sdl.PIXELFORMAT_ARGB8888)
		case pf.Rmask == 0x00ff0000 && pf.Gmask == 0x0000ff00 && pf.Bmask == 0x000000ff:
			return uint32(sdl.PIXELFORMAT_RGB888)
		case pf.Rmask == 0x000000ff && pf.Gmask == 0x0000ff00 && pf.Bmask == 0x00ff0000 && pf.Amask == 0xff000000:
			return uint32(sdl.PIXELFORMAT_ABGR8888)
		case pf.Rmask == 0x000000ff && pf.Gmask == 0x0000ff00 && pf.Bmask == 0x00ff0000:
			return uint32(sdl.PIXELFORMAT_BGR888)
		}
	}
	return uint32(sdl.PIXELFORMAT_UNKNOWN)
}

// PixelFormatFromSDL creates a legacy pixel format from one of the modern
// pixel format enumerations. Returns nil for formats the legacy API cannot
// describe (YUV and packed formats with less than 8 bits per pixel).
func PixelFormatFromSDL(format uint32) *PixelFormat {
	switch format {
	case uint32(sdl.PIXELFORMAT_INDEX8):
		return NewPixelFormat(8, 0, 0, 0, 0)
	case uint32(sdl.PIXELFORMAT_RGB555):
		return NewPixelFormat(15, 0x7c00, 0x03e0, 0x001f, 0)
	case uint32(sdl.PIXELFORMAT_RGB565):
		return NewPixelFormat(16, 0xf800, 0x07e0, 0x001f, 0)
	case uint32(sdl.PIXELFORMAT_BGR565):
		return NewPixelFormat(16, 0x001f, 0x07e0, 0xf800, 0)
	case uint32(sdl.PIXELFORMAT_RGB24):
		return NewPixelFormat(24, 0xff0000, 0x00ff00, 0x0000ff, 0)
	case uint32(sdl.PIXELFORMAT_BGR24):
		return NewPixelFormat(24, 0x0000ff, 0x00ff00, 0xff0000, 0)
	case uint32(sdl.PIXELFORMAT_RGB888):
		return NewPixelFormat(32, 0x00ff0000, 0x0000ff00, 0x000000ff, 0)
	case uint32(sdl.PIXELFORMAT_BGR888):
		return NewPixelFormat(32, 0x000000ff, 0x0000ff00, 0x00ff0000, 0)
	case uint32(sdl.PIXELFORMAT_ARGB8888):
		return NewPixelFormat(32, 0x00ff0000, 0x0000ff00, 0x000000ff, 0xff000000)
	case uint32(sdl.PIXELFORMAT_ABGR8888):
		return NewPixelFormat(32, 0x000000ff, 0x0000ff00, 0x00ff0000, 0xff000000)
	}
	return nil
}
