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
	"os"
	"os/signal"
	"runtime"

	"github.com/libsdl-org/sdl12-compat-sub000/backend/sdlbackend"
	"github.com/libsdl-org/sdl12-compat-sub000/compat"
	"github.com/libsdl-org/sdl12-compat-sub000/legacy"
	"github.com/libsdl-org/sdl12-compat-sub000/loader"
	"github.com/libsdl-org/sdl12-compat-sub000/logger"
	"github.com/libsdl-org/sdl12-compat-sub000/modalflag"
	"github.com/libsdl-org/sdl12-compat-sub000/prefs"
	"github.com/libsdl-org/sdl12-compat-sub000/version"
)

// the video functions of the backend must be called from the main thread
func init() {
	runtime.LockOSThread()
}

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when the mode has its own
	// handler.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

// mainSync is used to communicate between the launch goroutine and the main
// thread.
type mainSync struct {
	state chan stateRequest

	// functions sent to run are called on the main thread. the result of the
	// function is sent to done
	run  chan func() error
	done chan error
}

// onMain runs the function on the main thread and waits for it to complete.
func (sync *mainSync) onMain(f func() error) error {
	sync.run <- f
	return <-sync.done
}

func main() {
	sync := &mainSync{
		state: make(chan stateRequest),
		run:   make(chan func() error),
		done:  make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	exitVal := 0

	// ctrl-c handler. can be turned off with reqNoIntSig
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync)

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case f := <-sync.run:
			sync.done <- f()

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}
		}
	}

	os.Exit(exitVal)
}

func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubMode("DEMO", "set a video mode and draw into it until the window is closed")
	md.AddSubMode("MODES", "list the video modes reported to applications")
	md.AddSubMode("CHECK", "load the backend library and check the entry points")
	md.AddSubMode("VERSION", "print version information")
	md.AdditionalHelp("hints are read from the environment. for example, SDL12COMPAT_OPENGL_SCALING=0\nthe -hints flag of each mode takes precedence over the environment")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "DEMO":
		err = demo(md, sync)

	case "MODES":
		err = modes(md, sync)

	case "CHECK":
		err = check(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// flags shared by the modes that create a compatibility context
type common struct {
	hints   *string
	log     *bool
	verbose *bool
}

func addCommon(md *modalflag.Modes) common {
	return common{
		hints:   md.AddString("hints", "", "hints of the form \"SDL12COMPAT_SCALE_METHOD::nearest; SDL12COMPAT_MSAA::4\""),
		log:     md.AddBool("log", false, "echo log to stderr"),
		verbose: md.AddBool("verbose", false, "include high frequency messages in the log"),
	}
}

// newContext creates a compatibility context for the SDL backend. The hints
// are only consulted while the configuration is loaded.
func newContext(cm common, libs ...string) (*compat.Context, error) {
	if *cm.log {
		logger.SetEcho(os.Stderr)
	}
	logger.SetVerbose(*cm.verbose)

	if *cm.hints != "" {
		prefs.PushCommandLineStack(*cm.hints)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "main", "unused hints: %s", unused)
			}
		}()
	}

	cfg, err := compat.NewConfig()
	if cfg == nil {
		return nil, err
	}
	if err != nil {
		// the config is still usable with default values in place of the bad
		// hints
		logger.Log(logger.Allow, "main", err)
	}

	return compat.New(sdlbackend.NewBackend(libs...), cfg)
}

func demo(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	var opts demoOptions
	width := md.AddInt("width", 640, "width of the video mode")
	height := md.AddInt("height", 480, "height of the video mode")
	bpp := md.AddInt("bpp", 32, "bits per pixel. 8, 15, 16, 24 or 32. zero uses the depth of the desktop")
	fullscreen := md.AddBool("fullscreen", false, "request a fullscreen video mode")
	resizable := md.AddBool("resizable", false, "allow the window to be resized")
	frames := md.AddInt("frames", 0, "end after the number of frames. zero runs until the window is closed")
	lib := md.AddString("lib", "", "backend library to check before starting. empty uses the platform default")
	cm := addCommon(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	opts.width = int32(*width)
	opts.height = int32(*height)
	opts.bpp = *bpp
	opts.fullscreen = *fullscreen
	opts.resizable = *resizable
	opts.frames = *frames

	// a legacy application would have failed to start without the library so
	// the demo is allowed to fail in the same way
	var libs []string
	if *lib != "" {
		libs = append(libs, *lib)
	}
	l := compat.MustLoad(libs...)
	_ = l.Close()

	c, err := newContext(cm, libs...)
	if err != nil {
		return err
	}

	// interrupt sends a quit event to the application rather than ending the
	// program
	sync.state <- stateRequest{req: reqNoIntSig}
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer func() {
		signal.Stop(intChan)
		close(intChan)
	}()
	go func() {
		for range intChan {
			c.PushEvent(&legacy.Event{Type: legacy.QUIT})
		}
	}()

	return sync.onMain(func() error {
		return runDemo(c, opts)
	})
}

func modes(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	bpp := md.AddInt("bpp", 0, "bits per pixel to test each mode with. zero uses the depth of the desktop")
	opengl := md.AddBool("opengl", false, "list the modes offered to GL applications")
	cm := addCommon(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	c, err := newContext(cm)
	if err != nil {
		return err
	}

	return sync.onMain(func() error {
		return listModes(md, c, *bpp, *opengl)
	})
}

func listModes(md *modalflag.Modes, c *compat.Context, bpp int, opengl bool) error {
	if c.Init(legacy.INIT_VIDEO) != 0 {
		return errors.New(c.GetError())
	}
	defer c.Quit()

	info := c.GetVideoInfo()
	if info == nil {
		return errors.New(c.GetError())
	}
	fmt.Fprintf(md.Output, "driver: %s\n", c.VideoDriverName())
	fmt.Fprintf(md.Output, "desktop: %dx%d %d bpp\n", info.CurrentW, info.CurrentH, info.Vfmt.BitsPerPixel)

	flags := legacy.FULLSCREEN
	if opengl {
		flags |= legacy.OPENGL
	}

	var pf *legacy.PixelFormat
	if bpp != 0 {
		r, g, b, a := legacy.DefaultMasks(bpp)
		pf = legacy.NewPixelFormat(bpp, r, g, b, a)
	}

	list, anySize := c.ListModes(pf, flags)
	switch {
	case anySize:
		fmt.Fprintln(md.Output, "any size is acceptable")
		return nil
	case len(list) == 0:
		fmt.Fprintln(md.Output, "no modes available")
		return nil
	}

	for _, m := range list {
		ok := c.VideoModeOK(m.W, m.H, bpp, flags)
		if ok == 0 {
			fmt.Fprintf(md.Output, "  %s\tunavailable\n", m)
		} else {
			fmt.Fprintf(md.Output, "  %s\t%d bpp\n", m, ok)
		}
	}

	return nil
}

func check(md *modalflag.Modes) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if *log {
		logger.SetEcho(os.Stderr)
	}

	lib, err := loader.Load(md.RemainingArgs()...)
	if err != nil {
		return err
	}
	defer lib.Close()

	fmt.Fprintf(md.Output, "%s: version %s\n", lib.Path, lib.Version)
	fmt.Fprintf(md.Output, "%d entry points resolved\n", len(loader.Required))

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "include the vcs revision")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, v)
	if *revision && r != "" {
		fmt.Fprintf(md.Output, "revision %s\n", r)
	}
	fmt.Fprintf(md.Output, "legacy API %s\n", version.LegacyVersion())
	fmt.Fprintf(md.Output, "backend %d.%d.%d or later\n", version.BackendMajor, version.BackendMinor, version.BackendPatch)

	return nil
}
