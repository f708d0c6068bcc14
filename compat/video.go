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

package compat

import (
	"github.com/libsdl-org/sdl12-compat-sub000/backend"
	"github.com/libsdl-org/sdl12-compat-sub000/curated"
	"github.com/libsdl-org/sdl12-compat-sub000/legacy"
	"github.com/libsdl-org/sdl12-compat-sub000/logger"
	"github.com/libsdl-org/sdl12-compat-sub000/overlay"
	"github.com/libsdl-org/sdl12-compat-sub000/present"
	"github.com/libsdl-org/sdl12-compat-sub000/scaling"
	"github.com/libsdl-org/sdl12-compat-sub000/videomode"
	"github.com/veandco/go-sdl2/sdl"
)

// snapshot is the part of the video state that is read without the
// presentation lock. It is only replaced once a video mode has been fully set
// up or torn down.
type snapshot struct {
	active   bool
	windowID uint32
	w, h     int32
	flags    uint32

	// the GL scaler is drawing to a viewport in the window. mouse positions
	// need mapping to the logical size
	scaled   bool
	viewport scaling.Viewport

	screen *legacy.Surface
	sched  *present.Scheduler
}

func (c *Context) snapshot() snapshot {
	c.vcrit.Lock()
	defer c.vcrit.Unlock()
	return c.snap
}

func (c *Context) setSnapshot(s snapshot) {
	c.vcrit.Lock()
	defer c.vcrit.Unlock()
	c.snap = s
}

// video is everything created by SetVideoMode(). Must only be touched with
// the presentation lock held.
type video struct {
	req      videomode.Request
	strategy videomode.Fullscreen

	window   backend.Window
	renderer backend.Renderer
	texture  backend.Texture

	// the texture format differs from the screen surface and rows are
	// converted on upload
	convert bool

	glctx  backend.GLContext
	scaler *scaling.Adapter

	// the viewport and scissor box last set by the application. restored
	// after the scaler presents
	appViewport [4]int32
	appScissor  [4]int32

	screen *legacy.Surface
	sched  *present.Scheduler

	// the palette has changed since the last upload
	paletteDirty bool

	overlays   overlay.Queue
	overlayTex map[*overlay.Overlay]backend.Texture

	// window manager strings survive a change of video mode
	title    string
	iconName string
}

func (v *video) reset() {
	title, icon := v.title, v.iconName
	*v = video{
		title:      title,
		iconName:   icon,
		overlayTex: make(map[*overlay.Overlay]backend.Texture),
	}
}

// SetVideoMode sets up the display for the requested mode and returns the
// screen surface. Returns nil on failure. A request that cannot be satisfied
// (an unsupported depth for example) leaves any previous mode untouched. A
// failure of the backend while the mode is being built tears the previous
// mode down.
func (c *Context) SetVideoMode(w, h int32, bpp int, flags uint32) *legacy.Surface {
	if !c.videoInitialised() {
		if c.InitSubSystem(legacy.INIT_VIDEO) != 0 {
			return nil
		}
	}

	if !c.settingMode.CompareAndSwap(false, true) {
		c.fail(curated.Errorf(curated.Unsupported, "SetVideoMode", "called while already setting a video mode"))
		return nil
	}
	defer c.settingMode.Store(false)

	desktop, err := c.backend.DesktopMode()
	if err != nil {
		c.fail(curated.Errorf(curated.BackendFailure, "SetVideoMode", err))
		return nil
	}

	req, err := videomode.NormalizeRequest(videomode.Request{W: w, H: h, Bpp: bpp, Flags: flags}, desktop)
	if err != nil {
		c.fail(err)
		return nil
	}

	c.lock.Acquire()
	defer c.lock.Release()

	screen, err := c.setVideoMode(req, desktop)
	if err != nil {
		c.teardownVideo()
		c.fail(err)
		return nil
	}

	// the events from creating or changing the window are handled while the
	// mode is still in progress so that they are suppressed
	c.backend.PumpEvents()

	c.updateRelativeMouse()

	return screen
}

// the request must have been normalised
func (c *Context) setVideoMode(req videomode.Request, desktop backend.DisplayMode) (*legacy.Surface, error) {
	v := &c.vid

	if v.screen != nil && req == v.req {
		logger.Logf(logger.Verbose, "compat", "video mode unchanged (%dx%dx%d)", req.W, req.H, req.Bpp)
		v.screen.SetClipRect(nil)
		clear(v.screen.Pixels)
		return v.screen, nil
	}

	if v.window != nil {
		if videomode.MustRecreateWindow(v.req, req) {
			logger.Log(logger.Verbose, "compat", "recreating window for new video mode")
			c.teardownVideo()
		} else if req.OpenGL() && c.policy.MustRecreateContext(v.req, req) {
			logger.Logf(logger.Verbose, "compat", "recreating GL context (%s policy)", c.policy.Name)
			c.destroyGL()
		}
	}

	scalingAvailable := !req.OpenGL() || c.config.OpenGLScaling.Bool()
	strategy := videomode.Strategy(req, desktop, scalingAvailable, c.config.FixBorderlessFSWin.Bool())

	if err := c.setupWindow(req, strategy); err != nil {
		return nil, err
	}

	if req.OpenGL() {
		if err := c.setupGL(req, strategy); err != nil {
			return nil, err
		}
	} else {
		if err := c.setupRenderer(req); err != nil {
			return nil, err
		}
	}

	if err := c.setupScreen(req); err != nil {
		return nil, err
	}

	v.req = req
	v.strategy = strategy

	// a GL mode doesn't have a screen surface to schedule. the goroutine
	// setting the mode owns the scheduler
	v.sched = nil
	if !req.OpenGL() {
		v.sched = present.NewScheduler(presenter{c: c}, &c.lock, c.backend.Ticks, req.W, req.H, c.config.AllowThreadedDraws.Bool())
		v.sched.SetRefreshRate(v.window.RefreshRate())
	}

	c.applyGrab()
	c.publish()

	logger.Logf(logger.Allow, "compat", "video mode %dx%dx%d (%s)", req.W, req.H, req.Bpp, strategy)

	return v.screen, nil
}

// applyGrab grabs the pointer for the window if the application asked for it
// or the mode is fullscreen. Must be called with the presentation lock held.
func (c *Context) applyGrab() {
	if c.vid.window == nil {
		return
	}
	c.input.crit.Lock()
	grab := c.input.grab == legacy.GRAB_ON
	c.input.crit.Unlock()
	c.vid.window.SetGrab(grab || c.vid.req.Fullscreen())
}

// publish replaces the snapshot with the state of the current mode. Must be
// called with the presentation lock held.
func (c *Context) publish() {
	v := &c.vid
	snap := snapshot{
		active:   true,
		windowID: v.window.ID(),
		w:        v.req.W,
		h:        v.req.H,
		flags:    v.screen.Flags,
		screen:   v.screen,
		sched:    v.sched,
	}
	if v.scaler.Enabled() {
		pw, ph := v.window.GLDrawableSize()
		snap.scaled = true
		snap.viewport = scaling.NewViewport(v.req.W, v.req.H, pw, ph)
	}
	c.setSnapshot(snap)
}

// windowFlags returns the window flags and the fullscreen flag for the
// strategy.
func windowFlags(req videomode.Request, strategy videomode.Fullscreen) (backend.WindowFlags, uint32) {
	var fs uint32
	switch strategy {
	case videomode.DesktopScaled:
		fs = uint32(sdl.WINDOW_FULLSCREEN_DESKTOP)
	case videomode.Exclusive:
		fs = uint32(sdl.WINDOW_FULLSCREEN)
	}

	flags := backend.WindowFlags(fs)
	if req.OpenGL() {
		flags |= backend.WindowFlags(sdl.WINDOW_OPENGL)
	}
	if req.Flags&legacy.RESIZABLE == legacy.RESIZABLE {
		flags |= backend.WindowFlags(sdl.WINDOW_RESIZABLE)
	}
	if req.Flags&legacy.NOFRAME == legacy.NOFRAME {
		flags |= backend.WindowFlags(sdl.WINDOW_BORDERLESS)
	}
	return flags, fs
}

func (c *Context) setupWindow(req videomode.Request, strategy videomode.Fullscreen) error {
	v := &c.vid
	flags, fs := windowFlags(req, strategy)

	if v.window == nil {
		if req.OpenGL() {
			if err := c.applyGLAttributes(); err != nil {
				return err
			}
		}
		win, err := c.backend.CreateWindow(v.title, req.W, req.H, flags)
		if err != nil {
			return curated.Errorf(curated.BackendFailure, "SetVideoMode", err)
		}
		v.window = win
		return nil
	}

	if err := v.window.SetFullscreen(fs); err != nil {
		return curated.Errorf(curated.BackendFailure, "SetVideoMode", err)
	}
	if fs == 0 {
		v.window.SetSize(req.W, req.H)
	}
	v.window.SetBordered(req.Flags&legacy.NOFRAME == 0)
	v.window.SetResizable(req.Flags&legacy.RESIZABLE == legacy.RESIZABLE)
	v.window.Show()

	return nil
}

// textureFormat chooses the texture format for the screen surface. Returns
// true if rows must be converted on upload.
func (c *Context) textureFormat(req videomode.Request) (uint32, bool) {
	r, g, b, a := legacy.DefaultMasks(req.Bpp)
	f := legacy.NewPixelFormat(req.Bpp, r, g, b, a).SDLFormat()
	if req.Bpp > 8 && f != uint32(sdl.PIXELFORMAT_UNKNOWN) && c.vid.renderer.SupportsFormat(f) {
		return f, false
	}

	// converted rows are XRGB8888
	switch pref := c.vid.renderer.PreferredFormat(); pref {
	case uint32(sdl.PIXELFORMAT_ARGB8888), uint32(sdl.PIXELFORMAT_RGB888):
		return pref, true
	}
	return uint32(sdl.PIXELFORMAT_ARGB8888), true
}

func (c *Context) setupRenderer(req videomode.Request) error {
	v := &c.vid

	if v.renderer == nil {
		r, err := v.window.CreateRenderer(c.config.SyncToVBlank.Bool())
		if err != nil {
			return curated.Errorf(curated.BackendFailure, "SetVideoMode", err)
		}
		v.renderer = r
		logger.Logf(logger.Allow, "compat", "renderer: %s", r.Name())
	}

	if err := v.renderer.SetLogicalSize(req.W, req.H); err != nil {
		return curated.Errorf(curated.BackendFailure, "SetVideoMode", err)
	}
	v.renderer.SetScaleQuality(c.config.Linear())

	format, convert := c.textureFormat(req)

	if v.texture != nil {
		tw, th := v.texture.Size()
		if tw != req.W || th != req.H || v.texture.Format() != format {
			if err := v.texture.Destroy(); err != nil {
				logger.Log(logger.Allow, "compat", err)
			}
			v.texture = nil
		}
	}

	if v.texture == nil {
		tex, err := v.renderer.CreateTexture(format, req.W, req.H)
		if err != nil {
			return curated.Errorf(curated.BackendFailure, "SetVideoMode", err)
		}
		v.texture = tex
	}
	v.convert = convert

	if convert {
		logger.Logf(logger.Verbose, "compat", "%d bpp screen converted on upload", req.Bpp)
	}

	return nil
}

func (c *Context) setupGL(req videomode.Request, strategy videomode.Fullscreen) error {
	v := &c.vid

	if v.glctx == nil {
		ctx, err := v.window.CreateGLContext()
		if err != nil {
			return curated.Errorf(curated.BackendFailure, "SetVideoMode", err)
		}
		v.glctx = ctx

		// the presentation lock was acquired before the context existed
		if err := ctx.MakeCurrent(); err != nil {
			return curated.Errorf(curated.BackendFailure, "SetVideoMode", err)
		}
		c.glBind.own(ctx)

		if interval, ok := c.swapInterval(); ok {
			if err := c.backend.GLSetSwapInterval(interval); err != nil {
				logger.Logf(logger.Allow, "compat", "swap interval: %v", err)
			}
		}
	}

	if v.scaler != nil {
		v.scaler.Destroy()
		v.scaler = nil
	}

	if strategy == videomode.DesktopScaled && c.config.OpenGLScaling.Bool() {
		samples := int32(c.config.MSAA.Int())
		if samples == 0 && c.glAttribute(legacy.GL_MULTISAMPLEBUFFERS) > 0 {
			samples = int32(c.glAttribute(legacy.GL_MULTISAMPLESAMPLES))
		}

		a := scaling.NewAdapter(v.glctx.GL())
		err := a.Setup(req.W, req.H, c.glAttribute(legacy.GL_DEPTH_SIZE), c.glAttribute(legacy.GL_STENCIL_SIZE), samples)
		if err != nil {
			logger.Logf(logger.Allow, "compat", "drawing unscaled: %v", err)
		} else {
			v.scaler = a
		}
	}

	v.appViewport = [4]int32{0, 0, req.W, req.H}
	v.appScissor = v.appViewport

	return nil
}

func (c *Context) setupScreen(req videomode.Request) error {
	v := &c.vid

	if v.screen == nil || int(v.screen.Format.BitsPerPixel) != req.Bpp {
		r, g, b, a := legacy.DefaultMasks(req.Bpp)
		s, err := legacy.NewSurface(0, 0, 0, req.Bpp, r, g, b, a)
		if err != nil {
			return curated.Errorf(curated.Unsupported, "SetVideoMode", err)
		}
		v.screen = s
	}

	if req.OpenGL() {
		// the screen surface of a GL mode has no pixels
		v.screen.Resize(0, 0)
		v.screen.W = req.W
		v.screen.H = req.H
		v.screen.SetClipRect(nil)
	} else {
		v.screen.Resize(req.W, req.H)
	}

	v.screen.Flags = req.Flags & (legacy.FULLSCREEN | legacy.OPENGL | legacy.OPENGLBLIT |
		legacy.RESIZABLE | legacy.NOFRAME | legacy.DOUBLEBUF | legacy.ANYFORMAT | legacy.HWSURFACE)
	if req.Bpp == 8 {
		v.screen.Flags |= legacy.HWPALETTE
	}
	v.paletteDirty = false

	return nil
}

// destroyGL deletes the scaler and the GL context.
func (c *Context) destroyGL() {
	v := &c.vid
	if v.scaler != nil {
		v.scaler.Destroy()
		v.scaler = nil
	}
	if v.glctx != nil {
		c.glBind.disown()
		if err := v.glctx.Release(); err != nil {
			logger.Log(logger.Allow, "compat", err)
		}
		v.glctx.Delete()
		v.glctx = nil
	}
}

// teardownVideo destroys everything created by SetVideoMode(). It is safe to
// call more than once and on a partially created mode. Must be called with
// the presentation lock held.
func (c *Context) teardownVideo() {
	v := &c.vid

	c.setSnapshot(snapshot{})

	c.dropOverlays()

	if v.texture != nil {
		if err := v.texture.Destroy(); err != nil {
			logger.Log(logger.Allow, "compat", err)
		}
	}
	if v.renderer != nil {
		if err := v.renderer.Destroy(); err != nil {
			logger.Log(logger.Allow, "compat", err)
		}
	}
	c.destroyGL()
	if v.window != nil {
		if err := v.window.Destroy(); err != nil {
			logger.Log(logger.Allow, "compat", err)
		}
		logger.Log(logger.Verbose, "compat", "video mode torn down")
	}

	v.reset()
	c.updateRelativeMouse()
}

// GetVideoSurface returns the screen surface. Returns nil if there is no
// video mode.
func (c *Context) GetVideoSurface() *legacy.Surface {
	return c.snapshot().screen
}

// VideoModeOK returns the bit depth closest to the request that the mode
// would be given. Returns 0 if the mode cannot be set.
func (c *Context) VideoModeOK(w, h int32, bpp int, flags uint32) int {
	if !c.videoInitialised() {
		c.fail(curated.Errorf(curated.Unsupported, "VideoModeOK", "video is not initialised"))
		return 0
	}

	desktop, err := c.backend.DesktopMode()
	if err != nil {
		c.fail(curated.Errorf(curated.BackendFailure, "VideoModeOK", err))
		return 0
	}

	req, err := videomode.NormalizeRequest(videomode.Request{W: w, H: h, Bpp: bpp, Flags: flags}, desktop)
	if err != nil {
		return 0
	}

	// without scaling a fullscreen mode must fit the desktop
	if req.Fullscreen() && req.OpenGL() && !c.config.OpenGLScaling.Bool() {
		if req.W > desktop.W || req.H > desktop.H {
			return 0
		}
	}

	return req.Bpp
}

// ListModes returns the fullscreen modes available for the pixel format.
// When any dimensions are acceptable, the slice is nil and the boolean is
// true. A nil format means the format of the desktop.
func (c *Context) ListModes(format *legacy.PixelFormat, flags uint32) ([]videomode.Mode, bool) {
	if !c.videoInitialised() {
		c.fail(curated.Errorf(curated.Unsupported, "ListModes", "video is not initialised"))
		return nil, false
	}

	if flags&legacy.FULLSCREEN == 0 {
		return nil, true
	}

	desktop, err := c.backend.DesktopMode()
	if err != nil {
		c.fail(curated.Errorf(curated.BackendFailure, "ListModes", err))
		return nil, false
	}

	if format != nil && !videomode.Supported(int(format.BitsPerPixel)) {
		return nil, false
	}

	modes, err := c.backend.DisplayModes()
	if err != nil {
		// the desktop is always listed
		logger.Log(logger.Allow, "compat", err)
	}

	scaled := flags&legacy.OPENGL == 0 || c.config.OpenGLScaling.Bool()

	return videomode.List(desktop, modes, c.config.Limit(), scaled), false
}

// GetVideoInfo describes the display. Before a video mode is set the current
// size is the desktop size.
func (c *Context) GetVideoInfo() *legacy.VideoInfo {
	if !c.videoInitialised() {
		c.fail(curated.Errorf(curated.Unsupported, "GetVideoInfo", "video is not initialised"))
		return nil
	}

	info := &legacy.VideoInfo{
		WMAvailable: true,
		BlitSW:      true,
		BlitSWCC:    true,
		BlitSWA:     true,
		BlitFill:    true,
		VideoMem:    256 * 1024,
	}

	if snap := c.snapshot(); snap.active {
		info.Vfmt = snap.screen.Format.Copy()
		info.CurrentW = snap.w
		info.CurrentH = snap.h
		return info
	}

	desktop, err := c.backend.DesktopMode()
	if err != nil {
		c.fail(curated.Errorf(curated.BackendFailure, "GetVideoInfo", err))
		return nil
	}
	info.Vfmt = legacy.PixelFormatFromSDL(desktop.Format)
	if info.Vfmt == nil {
		r, g, b, a := legacy.DefaultMasks(32)
		info.Vfmt = legacy.NewPixelFormat(32, r, g, b, a)
	}
	info.CurrentW = desktop.W
	info.CurrentH = desktop.H

	return info
}

// VideoDriverName returns the name of the backend's video driver. Returns the
// empty string if video is not initialised.
func (c *Context) VideoDriverName() string {
	if !c.videoInitialised() {
		c.fail(curated.Errorf(curated.Unsupported, "VideoDriverName", "video is not initialised"))
		return ""
	}
	return c.backend.VideoDriverName()
}
