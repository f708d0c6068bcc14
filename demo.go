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

package main

import (
	"errors"
	"fmt"

	"github.com/libsdl-org/sdl12-compat-sub000/compat"
	"github.com/libsdl-org/sdl12-compat-sub000/keysym"
	"github.com/libsdl-org/sdl12-compat-sub000/legacy"
	"github.com/libsdl-org/sdl12-compat-sub000/version"
)

// milliseconds between frames
const frameInterval = 16

type demoOptions struct {
	width      int32
	height     int32
	bpp        int
	fullscreen bool
	resizable  bool
	frames     int
}

// runDemo draws a bouncing square the way a legacy application would. The
// context must not have been initialised.
func runDemo(c *compat.Context, opts demoOptions) error {
	if c.Init(legacy.INIT_VIDEO|legacy.INIT_TIMER) != 0 {
		return errors.New(c.GetError())
	}
	defer c.Quit()

	c.WM_SetCaption(fmt.Sprintf("%s demo", version.ApplicationName), version.ApplicationName)

	flags := legacy.SWSURFACE
	if opts.fullscreen {
		flags |= legacy.FULLSCREEN
	}
	if opts.resizable {
		flags |= legacy.RESIZABLE
	}

	var screen *legacy.Surface
	var sq square

	setMode := func(w, h int32) error {
		screen = c.SetVideoMode(w, h, opts.bpp, flags)
		if screen == nil {
			return errors.New(c.GetError())
		}
		if screen.Format.Palette != nil {
			c.SetColors(screen, colourCube(), 0)
		}
		sq.reset(screen)
		screen.FillRect(nil, sq.bg)
		if c.Flip(screen) != 0 {
			return errors.New(c.GetError())
		}
		return nil
	}

	if err := setMode(opts.width, opts.height); err != nil {
		return err
	}

	// the timer callback runs on its own goroutine so it only pushes an event.
	// drawing happens in the event loop
	timer := c.AddTimer(frameInterval, func(interval uint32, _ any) uint32 {
		_ = c.PushEvent(&legacy.Event{Type: legacy.USEREVENT})
		return interval
	}, nil)
	if timer == 0 {
		return errors.New(c.GetError())
	}
	defer c.RemoveTimer(timer)

	var frame int
	var ev legacy.Event
	for c.WaitEvent(&ev) {
		switch ev.Type {
		case legacy.QUIT:
			return nil

		case legacy.KEYDOWN:
			if ev.Key.Keysym.Sym == keysym.Escape {
				return nil
			}

		case legacy.VIDEORESIZE:
			if err := setMode(ev.Resize.W, ev.Resize.H); err != nil {
				return err
			}

		case legacy.USEREVENT:
			sq.step(c, screen)
			frame++
			if opts.frames > 0 && frame >= opts.frames {
				return nil
			}
		}
	}

	return errors.New(c.GetError())
}

// a 6x6x6 colour cube for 8 bit modes
func colourCube() []legacy.Color {
	var cols []legacy.Color
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				cols = append(cols, legacy.Color{
					R: uint8(r * 51),
					G: uint8(g * 51),
					B: uint8(b * 51),
				})
			}
		}
	}
	return cols
}

type square struct {
	x, y   int32
	dx, dy int32
	size   int32

	bg     uint32
	fg     []uint32
	colour int
}

func (sq *square) reset(screen *legacy.Surface) {
	sq.size = min(screen.W, screen.H) / 8
	sq.x = (screen.W - sq.size) / 2
	sq.y = (screen.H - sq.size) / 2
	sq.dx = 3
	sq.dy = 2

	pf := screen.Format
	sq.bg = pf.MapRGB(0, 0, 51)
	sq.fg = []uint32{
		pf.MapRGB(255, 153, 0),
		pf.MapRGB(255, 204, 51),
		pf.MapRGB(204, 255, 51),
		pf.MapRGB(51, 204, 255),
	}
}

func (sq *square) rect() legacy.Rect {
	return legacy.Rect{
		X: int16(sq.x),
		Y: int16(sq.y),
		W: uint16(sq.size),
		H: uint16(sq.size),
	}
}

// step erases the square, moves it and draws it again. only the changed
// areas of the screen are updated
func (sq *square) step(c *compat.Context, screen *legacy.Surface) {
	prev := sq.rect()

	sq.x += sq.dx
	if sq.x < 0 || sq.x+sq.size > screen.W {
		sq.dx = -sq.dx
		sq.x = max(0, min(sq.x, screen.W-sq.size))
		sq.colour = (sq.colour + 1) % len(sq.fg)
	}
	sq.y += sq.dy
	if sq.y < 0 || sq.y+sq.size > screen.H {
		sq.dy = -sq.dy
		sq.y = max(0, min(sq.y, screen.H-sq.size))
		sq.colour = (sq.colour + 1) % len(sq.fg)
	}

	next := sq.rect()
	screen.FillRect(&prev, sq.bg)
	screen.FillRect(&next, sq.fg[sq.colour])
	c.UpdateRects(screen, []legacy.Rect{prev, next})
}
