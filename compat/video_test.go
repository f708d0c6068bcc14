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

package compat_test

import (
	"testing"
	"time"
	"unsafe"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/libsdl-org/sdl12-compat-sub000/backend"
	"github.com/libsdl-org/sdl12-compat-sub000/legacy"
	"github.com/libsdl-org/sdl12-compat-sub000/videomode"
	"github.com/libsdl-org/sdl12-compat-sub000/test"
	"github.com/veandco/go-sdl2/sdl"
)

func TestSetVideoMode(t *testing.T) {
	c, b := newContext(t, nil)

	s := c.SetVideoMode(640, 480, 32, legacy.SWSURFACE)
	test.DemandSuccess(t, s != nil)
	test.ExpectEquality(t, s.W, int32(640))
	test.ExpectEquality(t, s.H, int32(480))
	test.ExpectEquality(t, int(s.Format.BitsPerPixel), 32)
	test.ExpectEquality(t, c.GetVideoSurface(), s)

	n := b.Counts()
	test.ExpectEquality(t, n.Windows, 1)
	test.ExpectEquality(t, n.Renderers, 1)
	test.ExpectEquality(t, n.Textures, 1)

	r := b.Window().Renderer()
	test.ExpectEquality(t, r.LogicalW, int32(640))
	test.ExpectEquality(t, r.LogicalH, int32(480))
	test.ExpectEquality(t, r.VSync, true)

	// a new size keeps the window and renderer but needs a new texture
	s2 := c.SetVideoMode(800, 600, 32, legacy.SWSURFACE)
	test.ExpectEquality(t, s2, s)
	test.ExpectEquality(t, s.W, int32(800))
	n = b.Counts()
	test.ExpectEquality(t, n.Windows, 1)
	test.ExpectEquality(t, n.Renderers, 1)
	test.ExpectEquality(t, n.Textures, 2)
	test.ExpectEquality(t, n.TexturesDestroy, 1)

	w, h := b.Window().Size()
	test.ExpectEquality(t, w, int32(800))
	test.ExpectEquality(t, h, int32(600))

	// the same request again changes nothing but the screen is cleared
	s.FillRect(nil, 0xffffffff)
	s.SetClipRect(&legacy.Rect{W: 10, H: 10})
	test.ExpectEquality(t, c.SetVideoMode(800, 600, 32, legacy.SWSURFACE), s)
	test.ExpectEquality(t, b.Counts().Textures, 2)
	test.ExpectEquality(t, s.Pixel(400, 300), uint32(0))
	test.ExpectEquality(t, s.ClipRect, s.Bounds())

	// zero dimensions and depth mean the desktop
	s = c.SetVideoMode(0, 0, 0, legacy.SWSURFACE)
	test.DemandSuccess(t, s != nil)
	test.ExpectEquality(t, s.W, int32(1920))
	test.ExpectEquality(t, s.H, int32(1080))
	test.ExpectEquality(t, int(s.Format.BitsPerPixel), 32)

	// a change of depth needs a new window
	s = c.SetVideoMode(320, 200, 16, legacy.SWSURFACE)
	test.DemandSuccess(t, s != nil)
	test.ExpectEquality(t, int(s.Format.BitsPerPixel), 16)
	test.ExpectEquality(t, b.Counts().Windows, 2)
	test.ExpectEquality(t, b.LiveWindows(), 1)
}

func TestSetVideoModeWithoutInit(t *testing.T) {
	c, b := newContext(t, nil)
	c.Quit()

	// video is initialised on demand
	s := c.SetVideoMode(320, 200, 8, legacy.SWSURFACE)
	test.DemandSuccess(t, s != nil)
	test.ExpectEquality(t, c.WasInit(legacy.INIT_VIDEO), legacy.INIT_VIDEO)
	test.ExpectEquality(t, s.Flags&legacy.HWPALETTE, legacy.HWPALETTE)
	test.ExpectEquality(t, b.LiveWindows(), 1)

	c.Quit()
	test.ExpectEquality(t, b.LiveWindows(), 0)
	test.ExpectEquality(t, c.GetVideoSurface() == nil, true)
}

func TestSwitchToOpenGL(t *testing.T) {
	c, b := newContext(t, nil)

	test.DemandSuccess(t, c.SetVideoMode(640, 480, 32, legacy.SWSURFACE) != nil)

	s := c.SetVideoMode(640, 480, 32, legacy.OPENGL)
	test.DemandSuccess(t, s != nil)
	test.ExpectEquality(t, len(s.Pixels), 0)
	test.ExpectEquality(t, s.W, int32(640))
	test.ExpectEquality(t, s.Flags&legacy.OPENGL, legacy.OPENGL)

	n := b.Counts()
	test.ExpectEquality(t, n.Windows, 2)
	test.ExpectEquality(t, n.WindowsDestroyed, 1)
	test.ExpectEquality(t, n.RenderersDestroy, 1)
	test.ExpectEquality(t, n.TexturesDestroy, 1)
	test.ExpectEquality(t, n.GLContexts, 1)
	test.ExpectEquality(t, b.Window().Flags()&backend.WindowFlags(sdl.WINDOW_OPENGL) != 0, true)

	// GL modes have nothing to update
	c.UpdateRects(s, nil)
	test.ExpectEquality(t, b.Counts().Presents, 0)
	test.ExpectEquality(t, c.Flip(s), 0)
	test.ExpectEquality(t, b.Counts().Swaps, 1)

	test.DemandSuccess(t, c.SetVideoMode(640, 480, 32, legacy.SWSURFACE) != nil)
	n = b.Counts()
	test.ExpectEquality(t, n.Windows, 3)
	test.ExpectEquality(t, n.GLContextsDelete, 1)
	test.ExpectEquality(t, b.LiveWindows(), 1)
}

func TestSetVideoModeFailure(t *testing.T) {
	c, b := newContext(t, nil)

	test.DemandSuccess(t, c.SetVideoMode(640, 480, 32, legacy.SWSURFACE) != nil)

	b.FailTexture = true
	test.ExpectEquality(t, c.SetVideoMode(800, 600, 32, legacy.SWSURFACE) == nil, true)
	test.ExpectInequality(t, c.GetError(), "")

	// the previous mode is gone and nothing leaks
	test.ExpectEquality(t, c.GetVideoSurface() == nil, true)
	test.ExpectEquality(t, b.LiveWindows(), 0)
	n := b.Counts()
	test.ExpectEquality(t, n.Renderers, n.RenderersDestroy)
	test.ExpectEquality(t, n.Textures, n.TexturesDestroy)

	b.FailTexture = false
	test.ExpectSuccess(t, c.SetVideoMode(800, 600, 32, legacy.SWSURFACE) != nil)

	// requests that can't be satisfied leave the working mode alone
	prev := c.GetVideoSurface()
	win := b.Window()
	n = b.Counts()

	c.ClearError()
	test.ExpectEquality(t, c.SetVideoMode(640, 480, 12, legacy.SWSURFACE) == nil, true)
	test.ExpectInequality(t, c.GetError(), "")

	c.ClearError()
	test.ExpectEquality(t, c.SetVideoMode(-1, 480, 32, legacy.SWSURFACE) == nil, true)
	test.ExpectInequality(t, c.GetError(), "")

	test.ExpectEquality(t, c.GetVideoSurface(), prev)
	test.ExpectEquality(t, b.Window(), win)
	test.ExpectEquality(t, b.LiveWindows(), 1)
	test.ExpectEquality(t, b.Counts(), n)

	// and the mode still presents
	c.UpdateRects(prev, nil)
	test.ExpectEquality(t, b.Counts().Presents, n.Presents+1)
}

func TestPalette(t *testing.T) {
	c, b := newContext(t, nil)

	s := c.SetVideoMode(4, 4, 8, legacy.SWSURFACE)
	test.DemandSuccess(t, s != nil)
	s.FillRect(nil, 1)

	// changing the physical palette of the screen presents immediately
	test.ExpectSuccess(t, c.SetColors(s, []legacy.Color{{R: 255}}, 1))
	test.ExpectEquality(t, b.Counts().Presents, 1)

	r := b.Window().Renderer()
	test.DemandEquality(t, len(r.Copied), 1)
	tex := r.Copied[0]
	test.ExpectEquality(t, tex.Format(), uint32(sdl.PIXELFORMAT_ARGB8888))
	test.ExpectEquality(t, tex.Pixels[0], uint8(0x00))
	test.ExpectEquality(t, tex.Pixels[1], uint8(0x00))
	test.ExpectEquality(t, tex.Pixels[2], uint8(0xff))
	test.ExpectEquality(t, tex.Pixels[3], uint8(0xff))

	// a logical palette change is not visible
	test.ExpectSuccess(t, c.SetPalette(s, legacy.LOGPAL, []legacy.Color{{G: 255}}, 1))
	test.ExpectEquality(t, b.Counts().Presents, 1)

	// too many colors
	colors := make([]legacy.Color, 10)
	test.ExpectFailure(t, c.SetColors(s, colors, 250))

	// surfaces without a palette
	rgb, err := legacy.NewSurface(0, 4, 4, 32, 0, 0, 0, 0)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, c.SetColors(rgb, colors, 0))
}

func TestDeferredUpdate(t *testing.T) {
	c, b := newContext(t, nil)

	s := c.SetVideoMode(64, 64, 32, legacy.SWSURFACE)
	test.DemandSuccess(t, s != nil)

	// the first partial update is presented straight away
	c.UpdateRect(s, 0, 0, 8, 8)
	test.ExpectEquality(t, b.Counts().Presents, 1)

	// later partial updates wait for the next frame
	c.UpdateRect(s, 8, 8, 8, 8)
	c.UpdateRect(s, 16, 16, 8, 8)
	test.ExpectEquality(t, b.Counts().Presents, 1)
	c.PumpEvents()
	test.ExpectEquality(t, b.Counts().Presents, 1)

	b.Advance(16)
	c.PumpEvents()
	test.ExpectEquality(t, b.Counts().Presents, 2)

	// updating the whole surface presents straight away
	c.UpdateRect(s, 0, 0, 0, 0)
	test.ExpectEquality(t, b.Counts().Presents, 3)
	test.ExpectEquality(t, c.Flip(s), 0)
	test.ExpectEquality(t, b.Counts().Presents, 4)

	// surfaces other than the screen are ignored
	other, err := legacy.NewSurface(0, 64, 64, 32, 0, 0, 0, 0)
	test.DemandSuccess(t, err)
	c.UpdateRects(other, nil)
	test.ExpectEquality(t, b.Counts().Presents, 4)
	test.ExpectEquality(t, c.Flip(other), -1)
}

func TestUpdatePending(t *testing.T) {
	c, b := newContext(t, nil)

	s := c.SetVideoMode(320, 200, 8, legacy.SWSURFACE)
	test.DemandSuccess(t, s != nil)
	test.ExpectFailure(t, c.UpdatePending())

	s.FillRect(nil, 3)
	c.UpdateRects(s, nil)
	test.ExpectFailure(t, c.UpdatePending())
	test.ExpectEquality(t, b.Counts().Presents, 1)

	// a partial update is held back until the deadline, one frame at 60Hz
	c.UpdateRect(s, 10, 10, 20, 20)
	test.ExpectSuccess(t, c.UpdatePending())
	b.Advance(8)
	c.PumpEvents()
	test.ExpectSuccess(t, c.UpdatePending())
	b.Advance(8)
	c.PumpEvents()
	test.ExpectFailure(t, c.UpdatePending())
	test.ExpectEquality(t, b.Counts().Presents, 2)

	// a whole surface update from another goroutine waits for the goroutine
	// that set the mode
	done := make(chan struct{})
	go func() {
		c.UpdateRects(s, nil)
		close(done)
	}()
	<-done
	test.ExpectSuccess(t, c.UpdatePending())
	c.Delay(1)
	test.ExpectFailure(t, c.UpdatePending())
	test.ExpectEquality(t, b.Counts().Presents, 3)
}

func TestGLContextBorrowed(t *testing.T) {
	c, b := newContext(t, nil)

	test.DemandSuccess(t, c.SetVideoMode(640, 480, 32, legacy.OPENGL) != nil)
	ctx := b.Window().GLContext()
	test.DemandSuccess(t, ctx != nil)
	test.DemandSuccess(t, ctx.Current)
	history := len(ctx.History)
	swaps := b.Counts().Swaps

	done := make(chan struct{})
	go func() {
		c.GL_SwapBuffers()
		close(done)
	}()

	// the goroutine that set the mode lends the context when it pumps events
	expire := time.After(timeout)
	for waiting := true; waiting; {
		select {
		case <-done:
			waiting = false
		case <-expire:
			t.Fatal("swap from another goroutine did not complete")
		default:
			c.PumpEvents()
		}
	}

	test.ExpectEquality(t, b.Counts().Swaps, swaps+1)
	test.ExpectEquality(t, ctx.Rebinds, 0)
	test.ExpectSuccess(t, ctx.Current)

	// released by the owner, made current and released by the borrower, made
	// current again by the owner
	test.DemandEquality(t, len(ctx.History), history+4)
	test.ExpectEquality(t, ctx.History[history], false)
	test.ExpectEquality(t, ctx.History[history+1], true)
	test.ExpectEquality(t, ctx.History[history+2], false)
	test.ExpectEquality(t, ctx.History[history+3], true)

	// the owner itself doesn't give the context up
	c.GL_SwapBuffers()
	test.ExpectEquality(t, len(ctx.History), history+4)
	test.ExpectSuccess(t, ctx.Current)
}

func TestBackgroundUpdate(t *testing.T) {
	c, b := newContext(t, nil)

	s := c.SetVideoMode(64, 64, 32, legacy.SWSURFACE)
	test.DemandSuccess(t, s != nil)

	done := make(chan struct{})
	go func() {
		c.UpdateRects(s, nil)
		close(done)
	}()
	<-done

	// only the goroutine that set the video mode presents
	test.ExpectEquality(t, b.Counts().Presents, 0)
	c.PumpEvents()
	test.ExpectEquality(t, b.Counts().Presents, 1)
	c.PumpEvents()
	test.ExpectEquality(t, b.Counts().Presents, 1)
}

func TestBackgroundUpdateNotAllowed(t *testing.T) {
	c, b := newContext(t, map[string]string{"SDL12COMPAT_ALLOW_THREADED_DRAWS": "0"})

	s := c.SetVideoMode(64, 64, 32, legacy.SWSURFACE)
	test.DemandSuccess(t, s != nil)

	done := make(chan struct{})
	go func() {
		c.UpdateRects(s, nil)
		close(done)
	}()
	<-done

	test.ExpectEquality(t, b.Counts().Presents, 1)
}

func TestOpenGLScaling(t *testing.T) {
	c, b := newContext(t, nil)
	g := b.GL

	test.ExpectEquality(t, c.GL_SetAttribute(legacy.GL_DEPTH_SIZE, 24), 0)
	test.ExpectEquality(t, c.GL_SetAttribute(legacy.GL_MULTISAMPLEBUFFERS, 1), 0)
	v, ret := c.GL_GetAttribute(legacy.GL_DEPTH_SIZE)
	test.ExpectEquality(t, v, 24)
	test.ExpectEquality(t, ret, 0)
	_, ret = c.GL_GetAttribute(legacy.GL_NUM_ATTRIBUTES)
	test.ExpectEquality(t, ret, -1)

	s := c.SetVideoMode(640, 480, 32, legacy.OPENGL|legacy.FULLSCREEN)
	test.DemandSuccess(t, s != nil)

	// the window covers the desktop and the application draws offscreen
	w, h := b.Window().Size()
	test.ExpectEquality(t, w, int32(1920))
	test.ExpectEquality(t, h, int32(1080))
	test.ExpectEquality(t, b.GLAttribute(sdl.GL_DEPTH_SIZE), 24)
	test.ExpectEquality(t, b.GLAttribute(sdl.GL_MULTISAMPLEBUFFERS), 0)
	test.ExpectEquality(t, b.GLAttribute(sdl.GL_RED_SIZE), 3)

	fbs, rbs := g.Live()
	test.ExpectEquality(t, fbs, 1)
	test.ExpectEquality(t, rbs, 2)
	fbo := g.Draw
	test.ExpectInequality(t, fbo, uint32(0))

	// binding the default framebuffer binds the offscreen framebuffer
	bind := c.GL_GetProcAddress("glBindFramebuffer").(func(uint32, uint32))
	bind(gl.FRAMEBUFFER, 0)
	test.ExpectEquality(t, g.Draw, fbo)
	test.ExpectEquality(t, g.Read, fbo)

	getv := c.GL_GetProcAddress("glGetIntegerv").(func(uint32, *int32))
	binding := int32(-1)
	getv(gl.DRAW_FRAMEBUFFER_BINDING, &binding)
	test.ExpectEquality(t, binding, int32(0))

	var vp [4]int32
	getv(gl.VIEWPORT, &vp[0])
	test.ExpectEquality(t, vp, [4]int32{0, 0, 640, 480})

	read := c.GL_GetProcAddress("glReadPixels").(func(int32, int32, int32, int32, uint32, uint32, unsafe.Pointer))
	read(0, 0, 1, 1, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	test.DemandEquality(t, len(g.ReadsFrom), 1)
	test.ExpectEquality(t, g.ReadsFrom[0], fbo)

	// mouse positions are mapped to the logical size
	b.Inject(&sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, WindowID: b.Window().ID(), X: 960, Y: 540})
	evs := drain(c)
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0].Motion.X, uint16(320))
	test.ExpectEquality(t, evs[0].Motion.Y, uint16(240))

	// the scissor box is the application's
	getv(gl.SCISSOR_BOX, &vp[0])
	test.ExpectEquality(t, vp, [4]int32{0, 0, 640, 480})
	scissor := c.GL_GetProcAddress("glScissor").(func(int32, int32, int32, int32))
	scissor(10, 20, 100, 50)
	getv(gl.SCISSOR_BOX, &vp[0])
	test.ExpectEquality(t, vp, [4]int32{10, 20, 100, 50})
	g.Enable(gl.SCISSOR_TEST)

	// swapping scales the offscreen framebuffer without the scissor test and
	// restores the viewport and scissor box
	c.GL_SwapBuffers()
	test.ExpectEquality(t, b.Counts().Swaps, 1)
	test.ExpectEquality(t, g.Blits, 1)
	test.ExpectEquality(t, g.ScissoredBlits, 0)
	test.ExpectSuccess(t, g.IsEnabled(gl.SCISSOR_TEST))
	test.ExpectEquality(t, g.Viewports[len(g.Viewports)-1], [4]int32{0, 0, 640, 480})
	test.ExpectEquality(t, g.Scissors[len(g.Scissors)-1], [4]int32{10, 20, 100, 50})
	test.ExpectEquality(t, g.Draw, fbo)

	c.QuitSubSystem(legacy.INIT_VIDEO)
	fbs, rbs = g.Live()
	test.ExpectEquality(t, fbs, 0)
	test.ExpectEquality(t, rbs, 0)
	test.ExpectEquality(t, b.Counts().GLContextsDelete, 1)
}

func TestOpenGLUnscaled(t *testing.T) {
	c, b := newContext(t, map[string]string{"SDL12COMPAT_OPENGL_SCALING": "0"})
	g := b.GL

	test.ExpectEquality(t, c.GL_SetAttribute(legacy.GL_MULTISAMPLEBUFFERS, 1), 0)
	test.ExpectEquality(t, c.GL_SetAttribute(legacy.GL_MULTISAMPLESAMPLES, 4), 0)

	s := c.SetVideoMode(640, 480, 32, legacy.OPENGL)
	test.DemandSuccess(t, s != nil)
	test.ExpectEquality(t, b.GLAttribute(sdl.GL_MULTISAMPLEBUFFERS), 1)
	test.ExpectEquality(t, b.GLAttribute(sdl.GL_MULTISAMPLESAMPLES), 4)

	fbs, _ := g.Live()
	test.ExpectEquality(t, fbs, 0)

	bind := c.GL_GetProcAddress("glBindFramebuffer").(func(uint32, uint32))
	bind(gl.FRAMEBUFFER, 0)
	test.ExpectEquality(t, g.Draw, uint32(0))

	c.GL_SwapBuffers()
	test.ExpectEquality(t, b.Counts().Swaps, 1)
	test.ExpectEquality(t, g.Blits, 0)

	// without scaling a fullscreen mode larger than the desktop is refused
	test.ExpectEquality(t, c.VideoModeOK(2560, 1440, 32, legacy.OPENGL|legacy.FULLSCREEN), 0)
	test.ExpectEquality(t, c.VideoModeOK(2560, 1440, 32, legacy.FULLSCREEN), 32)
}

func TestVideoModeOK(t *testing.T) {
	c, _ := newContext(t, nil)
	test.ExpectEquality(t, c.VideoModeOK(640, 480, 32, legacy.SWSURFACE), 32)
	test.ExpectEquality(t, c.VideoModeOK(640, 480, 15, legacy.SWSURFACE), 15)
	test.ExpectEquality(t, c.VideoModeOK(640, 480, 12, legacy.SWSURFACE), 0)
	test.ExpectEquality(t, c.VideoModeOK(640, 480, 12, legacy.ANYFORMAT), 32)
	test.ExpectEquality(t, c.VideoModeOK(640, 480, 0, legacy.SWSURFACE), 32)
	test.ExpectEquality(t, c.VideoModeOK(-1, 480, 32, legacy.SWSURFACE), 0)
}

func TestListModes(t *testing.T) {
	c, _ := newContext(t, nil)

	modes, anySize := c.ListModes(nil, legacy.SWSURFACE)
	test.ExpectEquality(t, anySize, true)
	test.ExpectEquality(t, len(modes), 0)

	modes, anySize = c.ListModes(nil, legacy.FULLSCREEN)
	test.ExpectEquality(t, anySize, false)
	test.DemandSuccess(t, len(modes) > 3)
	test.ExpectEquality(t, modes[0], videomode.Mode{W: 1920, H: 1080})
	test.ExpectEquality(t, modes[len(modes)-1], videomode.Mode{W: 320, H: 200})
	for _, m := range modes {
		test.ExpectSuccess(t, m.Fits(videomode.Mode{W: 1920, H: 1080}), m.String())
	}

	// an unsupported depth has no modes
	modes, anySize = c.ListModes(&legacy.PixelFormat{BitsPerPixel: 12}, legacy.FULLSCREEN)
	test.ExpectEquality(t, anySize, false)
	test.ExpectEquality(t, len(modes), 0)

	c, _ = newContext(t, map[string]string{"SDL12COMPAT_MAX_VIDMODE": "800x600"})
	modes, _ = c.ListModes(nil, legacy.FULLSCREEN)
	test.DemandSuccess(t, len(modes) > 0)
	test.ExpectEquality(t, modes[0], videomode.Mode{W: 800, H: 600})

	// unscaled GL modes are the real display modes only
	c, _ = newContext(t, map[string]string{"SDL12COMPAT_OPENGL_SCALING": "0"})
	modes, _ = c.ListModes(nil, legacy.FULLSCREEN|legacy.OPENGL)
	test.ExpectEquality(t, len(modes), 3)
}

func TestGetVideoInfo(t *testing.T) {
	c, _ := newContext(t, nil)

	info := c.GetVideoInfo()
	test.DemandSuccess(t, info != nil)
	test.ExpectEquality(t, info.CurrentW, int32(1920))
	test.ExpectEquality(t, info.CurrentH, int32(1080))
	test.ExpectEquality(t, info.WMAvailable, true)
	test.ExpectEquality(t, info.VideoMem, uint32(256*1024))
	test.ExpectEquality(t, c.VideoDriverName(), "headless")

	test.DemandSuccess(t, c.SetVideoMode(320, 200, 16, legacy.SWSURFACE) != nil)
	info = c.GetVideoInfo()
	test.ExpectEquality(t, info.CurrentW, int32(320))
	test.ExpectEquality(t, info.CurrentH, int32(200))
	test.ExpectEquality(t, int(info.Vfmt.BitsPerPixel), 16)
}

func TestWindowManager(t *testing.T) {
	c, b := newContext(t, nil)

	// the caption is remembered for windows created later
	c.WM_SetCaption("title", "icon")
	test.ExpectEquality(t, c.WM_IconifyWindow(), 0)

	s := c.SetVideoMode(320, 200, 32, legacy.SWSURFACE)
	test.DemandSuccess(t, s != nil)
	test.ExpectEquality(t, b.Window().Title, "title")

	c.WM_SetCaption("new title", "")
	title, icon := c.WM_GetCaption()
	test.ExpectEquality(t, title, "new title")
	test.ExpectEquality(t, icon, "")
	test.ExpectEquality(t, b.Window().Title, "new title")

	test.ExpectEquality(t, c.WM_IconifyWindow(), 1)
	test.ExpectEquality(t, b.Window().Minimised, true)

	test.ExpectEquality(t, c.WM_GrabInput(legacy.GRAB_QUERY), legacy.GRAB_OFF)
	test.ExpectEquality(t, c.WM_GrabInput(legacy.GRAB_ON), legacy.GRAB_ON)
	test.ExpectEquality(t, b.Window().Grabbed, true)
	test.ExpectEquality(t, c.WM_GrabInput(legacy.GRAB_QUERY), legacy.GRAB_ON)
	c.WM_GrabInput(legacy.GRAB_OFF)
	test.ExpectEquality(t, b.Window().Grabbed, false)
}

func TestToggleFullScreen(t *testing.T) {
	c, b := newContext(t, nil)

	s := c.SetVideoMode(640, 480, 32, legacy.SWSURFACE)
	test.DemandSuccess(t, s != nil)
	presents := b.Counts().Presents

	test.ExpectEquality(t, c.WM_ToggleFullScreen(s), 1)
	test.ExpectEquality(t, s.Flags&legacy.FULLSCREEN, legacy.FULLSCREEN)
	fs := backend.WindowFlags(sdl.WINDOW_FULLSCREEN_DESKTOP)
	test.ExpectEquality(t, b.Window().Flags()&fs, fs)
	test.ExpectEquality(t, b.Window().Grabbed, true)
	test.ExpectEquality(t, b.Counts().Presents, presents+1)

	// the surface is unchanged
	test.ExpectEquality(t, c.GetVideoSurface(), s)
	test.ExpectEquality(t, s.W, int32(640))

	test.ExpectEquality(t, c.WM_ToggleFullScreen(s), 1)
	test.ExpectEquality(t, s.Flags&legacy.FULLSCREEN, uint32(0))
	test.ExpectEquality(t, b.Window().Grabbed, false)
	w, h := b.Window().Size()
	test.ExpectEquality(t, w, int32(640))
	test.ExpectEquality(t, h, int32(480))

	test.ExpectEquality(t, b.Counts().Windows, 1)
	test.ExpectEquality(t, c.WM_ToggleFullScreen(nil), 0)
}

func TestToggleFullScreenOpenGL(t *testing.T) {
	c, b := newContext(t, nil)

	c.SetContextPolicy(videomode.PolicyFor("windows"))
	s := c.SetVideoMode(640, 480, 32, legacy.OPENGL)
	test.DemandSuccess(t, s != nil)

	// the context survives a change of the fullscreen flag alone
	test.ExpectEquality(t, c.WM_ToggleFullScreen(s), 1)
	test.ExpectEquality(t, b.Counts().GLContexts, 1)
	fbs, _ := b.GL.Live()
	test.ExpectEquality(t, fbs, 1)

	test.ExpectEquality(t, c.WM_ToggleFullScreen(s), 1)
	fbs, _ = b.GL.Live()
	test.ExpectEquality(t, fbs, 0)

	// a platform that always needs a new context cannot toggle
	c.SetContextPolicy(videomode.PolicyFor("plan9"))
	test.ExpectEquality(t, c.WM_ToggleFullScreen(s), 0)
	test.ExpectEquality(t, s.Flags&legacy.FULLSCREEN, uint32(0))

	// but setting the mode again creates the new context
	test.DemandSuccess(t, c.SetVideoMode(640, 480, 32, legacy.OPENGL|legacy.FULLSCREEN) != nil)
	test.ExpectEquality(t, b.Counts().GLContexts, 2)
	test.ExpectEquality(t, b.Counts().Windows, 1)
}

func TestOverlay(t *testing.T) {
	c, b := newContext(t, nil)

	s := c.SetVideoMode(64, 64, 32, legacy.SWSURFACE)
	test.DemandSuccess(t, s != nil)

	ov := c.CreateYUVOverlay(16, 16, legacy.YV12_OVERLAY, s)
	test.DemandSuccess(t, ov != nil)
	test.ExpectEquality(t, ov.HWOverlay, true)
	test.ExpectEquality(t, ov.Planes, 3)

	packed := c.CreateYUVOverlay(16, 16, legacy.YUY2_OVERLAY, s)
	test.DemandSuccess(t, packed != nil)
	test.ExpectEquality(t, packed.HWOverlay, false)

	test.ExpectEquality(t, c.CreateYUVOverlay(16, 16, 0x12345678, s) == nil, true)

	// a locked overlay cannot be displayed
	test.ExpectEquality(t, c.LockYUVOverlay(ov), 0)
	ov.Pixels[0][0] = 0x80
	test.ExpectEquality(t, c.DisplayYUVOverlay(ov, legacy.Rect{W: 32, H: 32}), -1)
	c.UnlockYUVOverlay(ov)

	// overlays displayed in the same frame are drawn together
	test.ExpectEquality(t, c.DisplayYUVOverlay(ov, legacy.Rect{W: 32, H: 32}), 0)
	test.ExpectEquality(t, b.Counts().Presents, 1)
	r := b.Window().Renderer()
	test.ExpectEquality(t, len(r.Copied), 2)

	test.ExpectEquality(t, c.DisplayYUVOverlay(ov, legacy.Rect{X: 32, Y: 32, W: 32, H: 32}), 0)
	test.ExpectEquality(t, c.DisplayYUVOverlay(packed, legacy.Rect{W: 16, H: 16}), 0)
	test.ExpectEquality(t, b.Counts().Presents, 1)
	b.Advance(16)
	c.PumpEvents()
	test.ExpectEquality(t, b.Counts().Presents, 2)
	test.ExpectEquality(t, len(r.Copied), 3)

	// the screen texture and one texture per overlay
	test.ExpectEquality(t, b.Counts().Textures, 3)
	c.FreeYUVOverlay(ov)
	c.FreeYUVOverlay(packed)
	test.ExpectEquality(t, b.Counts().TexturesDestroy, 2)

	// GL modes have no overlays
	s = c.SetVideoMode(64, 64, 32, legacy.OPENGL)
	test.DemandSuccess(t, s != nil)
	test.ExpectEquality(t, c.CreateYUVOverlay(16, 16, legacy.YV12_OVERLAY, s) == nil, true)
}
