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
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/libsdl-org/sdl12-compat-sub000/backend"
	"github.com/libsdl-org/sdl12-compat-sub000/events"
	"github.com/libsdl-org/sdl12-compat-sub000/joystick"
	"github.com/libsdl-org/sdl12-compat-sub000/legacy"
	"github.com/libsdl-org/sdl12-compat-sub000/logger"
	"github.com/libsdl-org/sdl12-compat-sub000/present"
	"github.com/libsdl-org/sdl12-compat-sub000/version"
	"github.com/libsdl-org/sdl12-compat-sub000/videomode"
)

// Context is the state of the legacy API. Exactly one video mode can be
// active in a Context.
type Context struct {
	backend backend.Backend
	config  *Config

	initCrit    sync.Mutex
	initialised uint32

	errCrit   sync.Mutex
	lastError string

	queue *events.Queue
	input input

	joyCrit   sync.Mutex
	joysticks joystick.Handles

	// joystick events are only translated if enabled with
	// JoystickEventState()
	joyEvents atomic.Bool

	// the presentation lock serialises everything that touches the window,
	// the renderer or the GL context
	lock present.Lock

	// which goroutine has the GL context current
	glBind glBinding

	// prevents SetVideoMode() being called while it is already running
	settingMode atomic.Bool

	vid video

	// when the GL context survives a change of video mode
	policy videomode.ContextPolicy

	gl glAttributes

	// GL entry points replaced for the application
	procs map[string]any

	// snapshot of the video state needed by the event translator
	vcrit sync.Mutex
	snap  snapshot

	timers timers
}

// New is the preferred method of initialisation for the Context type. A nil
// Config will create one from the environment.
func New(b backend.Backend, cfg *Config) (*Context, error) {
	if cfg == nil {
		var err error
		cfg, err = NewConfig()
		if err != nil {
			logger.Log(logger.Allow, "compat", err)
		}
		if cfg == nil {
			return nil, err
		}
	}

	c := &Context{
		backend: b,
		config:  cfg,
		queue:   events.NewQueue(events.DefaultCapacity),
		policy:  videomode.CurrentPolicy(),
	}
	c.input.reset()
	c.vid.reset()
	c.timers.init(c)
	c.resetGLAttributes()
	c.procs = c.glProcs()

	c.lock.BeforeAcquire = c.glBind.yield
	c.lock.OnAcquire = c.glBind.bind
	c.lock.OnRelease = c.glBind.unbind

	if !cfg.AllowThreadedDraws.Bool() {
		logger.Log(logger.Allow, "compat", "background draws are not allowed")
	}

	return c, nil
}

// Config returns the Config in use by the Context.
func (c *Context) Config() *Config {
	return c.config
}

// SetContextPolicy replaces the policy deciding when a GL context is
// recreated by SetVideoMode(). The policy for the running platform is used
// by default.
func (c *Context) SetContextPolicy(p videomode.ContextPolicy) {
	c.lock.Acquire()
	defer c.lock.Release()
	c.policy = p
}

// Linked returns the version of the legacy API implemented.
func (c *Context) Linked() string {
	return version.LegacyVersion()
}

// Init initialises the subsystems named by the INIT_* flags.
func (c *Context) Init(flags uint32) int {
	return c.InitSubSystem(flags)
}

// the subsystems the Context does anything with. everything else is accepted
// and ignored
const handledSubsystems = legacy.INIT_VIDEO | legacy.INIT_JOYSTICK | legacy.INIT_TIMER

// InitSubSystem initialises subsystems. Returns 0 on success and -1 on
// failure.
func (c *Context) InitSubSystem(flags uint32) int {
	c.initCrit.Lock()
	defer c.initCrit.Unlock()

	flags &= handledSubsystems

	if c.initialised == 0 && flags != 0 {
		if err := c.backend.Init(); err != nil {
			c.fail(err)
			return -1
		}
		c.backend.AddEventWatch(c.onModernEvent)
		logger.Logf(logger.Allow, "compat", "initialised (%s)", c.backend.VideoDriverName())
	}

	if flags&legacy.INIT_JOYSTICK != 0 && c.initialised&legacy.INIT_JOYSTICK == 0 {
		c.joyEvents.Store(true)
	}

	c.initialised |= flags
	return 0
}

// QuitSubSystem shuts down subsystems. The backend is shutdown when the last
// subsystem is.
func (c *Context) QuitSubSystem(flags uint32) {
	c.initCrit.Lock()
	defer c.initCrit.Unlock()

	flags &= c.initialised

	if flags&legacy.INIT_VIDEO != 0 {
		c.lock.Acquire()
		c.teardownVideo()
		c.lock.Release()

		c.input.crit.Lock()
		c.input.reset()
		c.input.crit.Unlock()

		c.queue.Flush(legacy.ALLEVENTS)
	}

	if flags&legacy.INIT_JOYSTICK != 0 {
		c.joyCrit.Lock()
		c.joysticks.CloseAll()
		c.joyCrit.Unlock()
	}

	if flags&legacy.INIT_TIMER != 0 {
		c.timers.removeAll()
	}

	c.initialised &^= flags

	if c.initialised == 0 && flags != 0 {
		c.backend.AddEventWatch(nil)
		c.backend.Quit()
		logger.Log(logger.Allow, "compat", "shutdown")
	}
}

// WasInit returns the subset of flags that name initialised subsystems.
func (c *Context) WasInit(flags uint32) uint32 {
	c.initCrit.Lock()
	defer c.initCrit.Unlock()
	if flags == 0 {
		return c.initialised
	}
	return c.initialised & flags
}

// Quit shuts down every subsystem.
func (c *Context) Quit() {
	c.QuitSubSystem(legacy.INIT_EVERYTHING)
}

func (c *Context) videoInitialised() bool {
	return c.WasInit(legacy.INIT_VIDEO) != 0
}

// GetError returns the text of the most recent error.
func (c *Context) GetError() string {
	c.errCrit.Lock()
	defer c.errCrit.Unlock()
	return c.lastError
}

// SetError sets the error text.
func (c *Context) SetError(format string, args ...any) {
	c.errCrit.Lock()
	defer c.errCrit.Unlock()
	c.lastError = fmt.Sprintf(format, args...)
}

// ClearError clears the error text.
func (c *Context) ClearError() {
	c.errCrit.Lock()
	defer c.errCrit.Unlock()
	c.lastError = ""
}

// fail records the error for GetError() and logs it.
func (c *Context) fail(err error) {
	logger.Log(logger.Allow, "compat", err)
	c.errCrit.Lock()
	defer c.errCrit.Unlock()
	c.lastError = err.Error()
}

// GetTicks returns the number of milliseconds since the backend was
// initialised.
func (c *Context) GetTicks() uint32 {
	return c.backend.Ticks()
}

// Delay sleeps for the number of milliseconds. Any present deferred by the
// scheduler is performed first.
func (c *Context) Delay(ms uint32) {
	c.servicePresent()
	c.backend.Delay(ms)
}
