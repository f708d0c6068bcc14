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

package videomode

import (
	"github.com/libsdl-org/sdl12-compat-sub000/backend"
	"github.com/libsdl-org/sdl12-compat-sub000/curated"
	"github.com/libsdl-org/sdl12-compat-sub000/legacy"
)

// Request is a video mode request from the legacy application. Flags are the
// legacy surface flags.
type Request struct {
	W, H  int32
	Bpp   int
	Flags uint32
}

// OpenGL returns true if the request is for the GL path.
func (r Request) OpenGL() bool {
	return r.Flags&legacy.OPENGL == legacy.OPENGL
}

// Fullscreen returns true if the request is for a fullscreen mode.
func (r Request) Fullscreen() bool {
	return r.Flags&legacy.FULLSCREEN == legacy.FULLSCREEN
}

// Supported returns true if the depth can be used for a screen surface.
func Supported(bpp int) bool {
	switch bpp {
	case 8, 15, 16, 24, 32:
		return true
	}
	return false
}

// NormalizeRequest fills in the parts of a request that the application left
// to the library. A zero width or height means the size of the desktop. A
// zero depth means the depth of the desktop, which is then rounded to 16 or
// 32. An unsupported depth is an error unless the ANYFORMAT flag is set, in
// which case 32 is used.
func NormalizeRequest(req Request, desktop backend.DisplayMode) (Request, error) {
	if req.W < 0 || req.H < 0 {
		return req, curated.Errorf(curated.Unsupported, "videomode", "negative dimensions")
	}

	if req.W == 0 || req.H == 0 {
		req.W = desktop.W
		req.H = desktop.H
	}

	if req.Bpp == 0 {
		if desktop.Bpp() <= 16 {
			req.Bpp = 16
		} else {
			req.Bpp = 32
		}
	}

	if !Supported(req.Bpp) {
		if req.Flags&legacy.ANYFORMAT == 0 {
			return req, curated.Errorf(curated.Unsupported, "videomode", req.Bpp)
		}
		req.Bpp = 32
	}

	return req, nil
}
