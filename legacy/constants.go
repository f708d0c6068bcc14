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

// Event states for EventState() and JoystickEventState().
const (
	QUERY  = -1
	IGNORE = 0
	ENABLE = 1
)

// Input grab modes for WM_GrabInput().
type GrabMode int

// List of valid GrabMode values.
const (
	GRAB_QUERY GrabMode = -1
	GRAB_OFF   GrabMode = 0
	GRAB_ON    GrabMode = 1
)

// Init flags. Only video, timer, joystick and events are handled by the
// compatibility layer. The others are accepted and ignored.
const (
	INIT_TIMER       uint32 = 0x00000001
	INIT_AUDIO       uint32 = 0x00000010
	INIT_VIDEO       uint32 = 0x00000020
	INIT_CDROM       uint32 = 0x00000100
	INIT_JOYSTICK    uint32 = 0x00000200
	INIT_NOPARACHUTE uint32 = 0x00100000
	INIT_EVENTTHREAD uint32 = 0x01000000
	INIT_EVERYTHING  uint32 = 0x0000FFFF
)

// GLattr indexes the legacy GL attributes.
type GLattr int

// List of valid GLattr values. The order is part of the legacy ABI.
const (
	GL_RED_SIZE GLattr = iota
	GL_GREEN_SIZE
	GL_BLUE_SIZE
	GL_ALPHA_SIZE
	GL_BUFFER_SIZE
	GL_DOUBLEBUFFER
	GL_DEPTH_SIZE
	GL_STENCIL_SIZE
	GL_ACCUM_RED_SIZE
	GL_ACCUM_GREEN_SIZE
	GL_ACCUM_BLUE_SIZE
	GL_ACCUM_ALPHA_SIZE
	GL_STEREO
	GL_MULTISAMPLEBUFFERS
	GL_MULTISAMPLESAMPLES
	GL_ACCELERATED_VISUAL
	GL_SWAP_CONTROL
	GL_NUM_ATTRIBUTES
)

// Flags for SetPalette().
const (
	LOGPAL  = 0x01
	PHYSPAL = 0x02
)

// Key repeat defaults.
const (
	DEFAULT_REPEAT_DELAY    = 500
	DEFAULT_REPEAT_INTERVAL = 30
)

// Overlay formats, as four character codes.
const (
	YV12_OVERLAY uint32 = 0x32315659
	IYUV_OVERLAY uint32 = 0x56555949
	YUY2_OVERLAY uint32 = 0x32595559
	UYVY_OVERLAY uint32 = 0x59565955
	YVYU_OVERLAY uint32 = 0x55595659
)

// VideoInfo describes the video hardware as far as the legacy API can tell.
type VideoInfo struct {
	HWAvailable bool
	WMAvailable bool
	BlitHW      bool
	BlitHWCC    bool
	BlitHWA     bool
	BlitSW      bool
	BlitSWCC    bool
	BlitSWA     bool
	BlitFill    bool

	// video memory in kilobytes
	VideoMem uint32

	Vfmt *PixelFormat

	// desktop size when called before SetVideoMode(), the size of the
	// current mode after
	CurrentW int32
	CurrentH int32
}

// Cursor is a legacy monochrome cursor. Data and Mask are one bit per pixel,
// with W rounded up to a multiple of eight.
type Cursor struct {
	Area       Rect
	HotX, HotY int16
	Data       []byte
	Mask       []byte
}

// NewCursor creates a cursor from legacy data and mask bitmaps. Returns nil if
// the width is not a multiple of eight or the bitmaps are too short.
func NewCursor(data, mask []byte, w, h, hotX, hotY int) *Cursor {
	if w <= 0 || h <= 0 || w%8 != 0 {
		return nil
	}
	sz := (w / 8) * h
	if len(data) < sz || len(mask) < sz {
		return nil
	}
	c := &Cursor{
		Area: Rect{W: uint16(w), H: uint16(h)},
		HotX: int16(hotX),
		HotY: int16(hotY),
		Data: make([]byte, sz),
		Mask: make([]byte, sz),
	}
	copy(c.Data, data[:sz])
	copy(c.Mask, mask[:sz])
	return c
}

// Visible returns true if the pixel at x, y is drawn. The legacy cursor
// encoding is: data 0 mask 1 is white, data 1 mask 1 is black, data 0 mask 0
// is transparent and data 1 mask 0 is inverted (drawn as black).
func (c *Cursor) Visible(x, y int) (visible bool, black bool) {
	stride := int(c.Area.W) / 8
	i := y*stride + x/8
	bit := byte(0x80) >> (x % 8)
	d := c.Data[i]&bit != 0
	m := c.Mask[i]&bit != 0
	return d || m, d
}
