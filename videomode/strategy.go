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
	"github.com/libsdl-org/sdl12-compat-sub000/legacy"
)

// Fullscreen is the way a mode is put on the display.
type Fullscreen int

// List of valid Fullscreen values.
const (
	// a normal window
	Windowed Fullscreen = iota

	// a borderless window covering the desktop, with the mode scaled to
	// fit
	DesktopScaled

	// a real change of display mode
	Exclusive
)

func (f Fullscreen) String() string {
	switch f {
	case Windowed:
		return "windowed"
	case DesktopScaled:
		return "desktop scaled"
	case Exclusive:
		return "exclusive"
	}
	return "unknown"
}

// Strategy decides how a normalized request is displayed. Exclusive
// fullscreen is only used when the mode cannot be scaled and the request is
// exactly the size of the desktop. Any other fullscreen request is displayed
// as a borderless window at desktop size.
//
// When promoteBorderless is true, a borderless window request exactly the
// size of the desktop is treated as a fullscreen request.
func Strategy(req Request, desktop backend.DisplayMode, scalingAvailable bool, promoteBorderless bool) Fullscreen {
	atDesktop := req.W == desktop.W && req.H == desktop.H

	if req.Fullscreen() {
		if !scalingAvailable && atDesktop {
			return Exclusive
		}
		return DesktopScaled
	}

	if promoteBorderless && req.Flags&legacy.NOFRAME == legacy.NOFRAME && atDesktop {
		return DesktopScaled
	}

	return Windowed
}
