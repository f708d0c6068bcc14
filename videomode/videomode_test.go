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

package videomode_test

import (
	"testing"

	"github.com/libsdl-org/sdl12-compat-sub000/backend"
	"github.com/libsdl-org/sdl12-compat-sub000/legacy"
	"github.com/libsdl-org/sdl12-compat-sub000/test"
	"github.com/libsdl-org/sdl12-compat-sub000/videomode"
	"github.com/veandco/go-sdl2/sdl"
)

var desktop = backend.DisplayMode{Format: uint32(sdl.PIXELFORMAT_RGB888), W: 1920, H: 1080, RefreshRate: 60}

func TestList(t *testing.T) {
	modes := []backend.DisplayMode{
		{W: 1920, H: 1080},
		{W: 1920, H: 1080},
		{W: 1024, H: 768},
		{W: 2560, H: 1440},
		{W: 1000, H: 700},
	}

	l := videomode.List(desktop, modes, videomode.Mode{}, false)
	test.DemandEquality(t, len(l), 3)
	test.ExpectEquality(t, l[0], videomode.Mode{W: 1920, H: 1080})
	test.ExpectEquality(t, l[1], videomode.Mode{W: 1024, H: 768})
	test.ExpectEquality(t, l[2], videomode.Mode{W: 1000, H: 700})

	// the common modes are added when the mode can be scaled
	l = videomode.List(desktop, modes, videomode.Mode{}, true)
	test.ExpectEquality(t, l[0], videomode.Mode{W: 1920, H: 1080})
	test.ExpectEquality(t, l[len(l)-1], videomode.Mode{W: 320, H: 200})
	for i := 1; i < len(l); i++ {
		test.ExpectInequality(t, l[i], l[i-1])
		test.ExpectSuccess(t, l[i].W <= l[i-1].W, l[i])
	}

	// the limit removes larger modes
	l = videomode.List(desktop, modes, videomode.Mode{W: 800, H: 600}, true)
	test.ExpectEquality(t, l[0], videomode.Mode{W: 800, H: 600})
}

func TestParseLimit(t *testing.T) {
	m, err := videomode.ParseLimit("800x600")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m, videomode.Mode{W: 800, H: 600})

	m, err = videomode.ParseLimit("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m, videomode.Mode{})

	_, err = videomode.ParseLimit("800")
	test.ExpectFailure(t, err)
	_, err = videomode.ParseLimit("0x600")
	test.ExpectFailure(t, err)
}

func TestNormalizeRequest(t *testing.T) {
	r, err := videomode.NormalizeRequest(videomode.Request{}, desktop)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, videomode.Request{W: 1920, H: 1080, Bpp: 32})

	d16 := desktop
	d16.Format = uint32(sdl.PIXELFORMAT_RGB565)
	r, _ = videomode.NormalizeRequest(videomode.Request{W: 640, H: 480}, d16)
	test.ExpectEquality(t, r.Bpp, 16)

	_, err = videomode.NormalizeRequest(videomode.Request{W: 640, H: 480, Bpp: 12}, desktop)
	test.ExpectFailure(t, err)

	r, err = videomode.NormalizeRequest(videomode.Request{W: 640, H: 480, Bpp: 12, Flags: legacy.ANYFORMAT}, desktop)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r.Bpp, 32)

	r, _ = videomode.NormalizeRequest(videomode.Request{W: 320, H: 200, Bpp: 8}, desktop)
	test.ExpectEquality(t, r.Bpp, 8)
}

func TestStrategy(t *testing.T) {
	full := func(w, h int32) videomode.Request {
		return videomode.Request{W: w, H: h, Bpp: 32, Flags: legacy.FULLSCREEN}
	}

	test.ExpectEquality(t, videomode.Strategy(full(640, 480), desktop, true, true), videomode.DesktopScaled)
	test.ExpectEquality(t, videomode.Strategy(full(1920, 1080), desktop, false, true), videomode.Exclusive)
	test.ExpectEquality(t, videomode.Strategy(full(640, 480), desktop, false, true), videomode.DesktopScaled)
	test.ExpectEquality(t, videomode.Strategy(videomode.Request{W: 640, H: 480}, desktop, true, true), videomode.Windowed)

	// borderless window at desktop size
	nf := videomode.Request{W: 1920, H: 1080, Bpp: 32, Flags: legacy.NOFRAME}
	test.ExpectEquality(t, videomode.Strategy(nf, desktop, true, true), videomode.DesktopScaled)
	test.ExpectEquality(t, videomode.Strategy(nf, desktop, true, false), videomode.Windowed)
}

func TestContextPolicy(t *testing.T) {
	gl := func(w, h int32, flags uint32) videomode.Request {
		return videomode.Request{W: w, H: h, Bpp: 32, Flags: legacy.OPENGL | flags}
	}

	// switching paths or depth always needs a new window
	test.ExpectSuccess(t, videomode.MustRecreateWindow(gl(640, 480, 0), videomode.Request{W: 640, H: 480, Bpp: 32}))
	test.ExpectSuccess(t, videomode.MustRecreateWindow(videomode.Request{Bpp: 16}, videomode.Request{Bpp: 32}))
	test.ExpectFailure(t, videomode.MustRecreateWindow(videomode.Request{W: 1, Bpp: 32}, videomode.Request{W: 2, Bpp: 32}))

	win := videomode.PolicyFor("windows")
	test.ExpectFailure(t, win.MustRecreateContext(gl(640, 480, 0), gl(800, 600, 0)))
	test.ExpectFailure(t, win.MustRecreateContext(gl(640, 480, 0), gl(640, 480, legacy.FULLSCREEN)))
	test.ExpectSuccess(t, win.MustRecreateContext(gl(640, 480, 0), gl(640, 480, legacy.FULLSCREEN|legacy.NOFRAME)))

	mac := videomode.PolicyFor("darwin")
	test.ExpectFailure(t, mac.MustRecreateContext(gl(640, 480, 0), gl(800, 600, 0)))
	test.ExpectFailure(t, mac.MustRecreateContext(gl(640, 480, 0), gl(640, 480, legacy.FULLSCREEN|legacy.NOFRAME)))

	x11 := videomode.PolicyFor("linux")
	test.ExpectEquality(t, x11.Name, "x11")
	test.ExpectFailure(t, x11.MustRecreateContext(gl(640, 480, 0), gl(800, 600, legacy.RESIZABLE)))
	test.ExpectSuccess(t, x11.MustRecreateContext(gl(640, 480, 0), videomode.Request{W: 640, H: 480, Bpp: 16, Flags: legacy.OPENGL}))

	other := videomode.PolicyFor("plan9")
	test.ExpectSuccess(t, other.Always)
	test.ExpectSuccess(t, other.MustRecreateContext(gl(640, 480, 0), gl(800, 600, 0)))
	test.ExpectFailure(t, other.MustRecreateContext(gl(640, 480, 0), gl(640, 480, 0)))
}
