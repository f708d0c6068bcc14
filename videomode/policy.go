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
	"runtime"

	"github.com/libsdl-org/sdl12-compat-sub000/legacy"
)

// ContextPolicy describes when a GL context does not survive a change of video
// mode on a platform family. The rules were found by observing the behaviour
// of the legacy library on each platform and are data, not derivation.
type ContextPolicy struct {
	Name string

	// the context is recreated on every mode change, including resizes
	Always bool

	// the context is recreated when fullscreen is toggled and at least one
	// other flag changes at the same time
	FullscreenWithOthers bool
}

// flags that are compared when deciding whether other flags changed
const significantFlags = legacy.FULLSCREEN | legacy.OPENGL | legacy.RESIZABLE | legacy.NOFRAME | legacy.DOUBLEBUF | legacy.HWSURFACE

var policies = map[string]ContextPolicy{
	"windows": {Name: "windows", FullscreenWithOthers: true},
	"darwin":  {Name: "darwin"},
	"linux":   {Name: "x11"},
	"freebsd": {Name: "x11"},
	"openbsd": {Name: "x11"},
	"netbsd":  {Name: "x11"},
}

// PolicyFor returns the context policy for a GOOS value. Platforms without a
// known policy recreate the context on every mode change.
func PolicyFor(goos string) ContextPolicy {
	if p, ok := policies[goos]; ok {
		return p
	}
	return ContextPolicy{Name: goos, Always: true}
}

// CurrentPolicy returns the context policy for the running platform.
func CurrentPolicy() ContextPolicy {
	return PolicyFor(runtime.GOOS)
}

// MustRecreateWindow returns true if the window used for the previous request
// cannot be reused for the next request. This is the case when switching
// between the GL and software paths or when the depth changes.
func MustRecreateWindow(prev Request, next Request) bool {
	if prev.OpenGL() != next.OpenGL() {
		return true
	}
	return prev.Bpp != next.Bpp
}

// MustRecreateContext returns true if the GL context used for the previous
// request must be replaced for the next request. Both requests must be for
// the GL path.
func (p ContextPolicy) MustRecreateContext(prev Request, next Request) bool {
	if MustRecreateWindow(prev, next) {
		return true
	}

	if p.Always {
		return prev != next
	}

	if p.FullscreenWithOthers {
		changed := (prev.Flags ^ next.Flags) & significantFlags
		if changed&legacy.FULLSCREEN != 0 && changed&^legacy.FULLSCREEN != 0 {
			return true
		}
	}

	return false
}
