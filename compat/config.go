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
	"os"
	"strings"

	"github.com/libsdl-org/sdl12-compat-sub000/logger"
	"github.com/libsdl-org/sdl12-compat-sub000/prefs"
	"github.com/libsdl-org/sdl12-compat-sub000/videomode"
)

// Config is the collection of hints that change the behaviour of the
// compatibility layer. Values are read from the environment when the
// Config is created and can be overridden with the prefs command line
// stack.
type Config struct {
	hints *prefs.Hints

	// scale GL applications with an offscreen framebuffer
	OpenGLScaling prefs.Bool

	// "nearest" or "linear"
	ScaleMethod prefs.String

	// largest mode reported by ListModes(). WxH
	MaxVidMode prefs.String

	// UpdateRects() from goroutines other than the one that set the video
	// mode are deferred to the owner. if false they are performed
	// immediately under the presentation lock
	AllowThreadedDraws prefs.Bool

	// translate keys with the keyboard layout rather than by position
	UseKeyboardLayout prefs.Bool

	// borderless windows the size of the desktop become fullscreen
	FixBorderlessFSWin prefs.Bool

	SyncToVBlank prefs.Bool
	DebugLogging prefs.Bool
	AllowSysWM   prefs.Bool

	// multisample count for the scaling framebuffer. zero uses the GL
	// attribute set by the application
	MSAA prefs.Int
}

// the methods shared by the preference types
type hint interface {
	fmt.Stringer
	Set(prefs.Value) error
	Get() prefs.Value
	Reset() error
}

// NewConfig is the preferred method of initialisation for the Config type.
// An error is returned if any hint in the environment could not be
// understood. The Config is usable in that case, with defaults in place of
// the bad values.
func NewConfig() (*Config, error) {
	cfg := &Config{
		hints: prefs.NewHints(),
	}

	add := []struct {
		key string
		p   hint
		def prefs.Value
	}{
		{"SDL12COMPAT_OPENGL_SCALING", &cfg.OpenGLScaling, true},
		{"SDL12COMPAT_SCALE_METHOD", &cfg.ScaleMethod, "linear"},
		{"SDL12COMPAT_MAX_VIDMODE", &cfg.MaxVidMode, ""},
		{"SDL12COMPAT_ALLOW_THREADED_DRAWS", &cfg.AllowThreadedDraws, true},
		{"SDL12COMPAT_USE_KEYBOARD_LAYOUT", &cfg.UseKeyboardLayout, true},
		{"SDL12COMPAT_FIX_BORDERLESS_FS_WIN", &cfg.FixBorderlessFSWin, true},
		{"SDL12COMPAT_SYNC_TO_VBLANK", &cfg.SyncToVBlank, true},
		{"SDL12COMPAT_DEBUG_LOGGING", &cfg.DebugLogging, false},
		{"SDL12COMPAT_ALLOW_SYSWM", &cfg.AllowSysWM, true},
		{"SDL12COMPAT_MSAA", &cfg.MSAA, 0},
	}

	for _, a := range add {
		if err := cfg.hints.Add(a.key, a.p, a.def); err != nil {
			return nil, err
		}
	}

	cfg.DebugLogging.SetHookPost(func(v prefs.Value) error {
		if v.(bool) {
			logger.SetEcho(os.Stderr)
		} else {
			logger.SetEcho(nil)
		}
		return nil
	})

	return cfg, cfg.Load()
}

// Load reads the hints again.
func (cfg *Config) Load() error {
	return cfg.hints.Load()
}

// SetLookup replaces the function used to read hints from the environment.
func (cfg *Config) SetLookup(f func(string) (string, bool)) {
	cfg.hints.SetLookup(f)
}

// Linear returns true if scaling should use linear filtering.
func (cfg *Config) Linear() bool {
	return !strings.EqualFold(strings.TrimSpace(cfg.ScaleMethod.String()), "nearest")
}

// Limit returns the MaxVidMode hint as a mode. A malformed hint is logged and
// ignored.
func (cfg *Config) Limit() videomode.Mode {
	m, err := videomode.ParseLimit(cfg.MaxVidMode.String())
	if err != nil {
		logger.Log(logger.Allow, "compat", err)
		return videomode.Mode{}
	}
	return m
}

func (cfg *Config) String() string {
	return cfg.hints.String()
}
