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

package loader

import (
	"fmt"
	"strings"

	"github.com/libsdl-org/sdl12-compat-sub000/curated"
	"github.com/libsdl-org/sdl12-compat-sub000/logger"
	"github.com/libsdl-org/sdl12-compat-sub000/version"
)

// Required is the list of entry points that must be present in the backend
// library.
var Required = []string{
	"SDL_Init",
	"SDL_InitSubSystem",
	"SDL_QuitSubSystem",
	"SDL_WasInit",
	"SDL_Quit",
	"SDL_GetVersion",
	"SDL_GetError",
	"SDL_SetError",
	"SDL_ClearError",
	"SDL_SetHint",
	"SDL_GetHint",
	"SDL_AddEventWatch",
	"SDL_DelEventWatch",
	"SDL_PumpEvents",
	"SDL_FlushEvents",
	"SDL_GetTicks",
	"SDL_Delay",
	"SDL_GetCurrentVideoDriver",
	"SDL_GetDesktopDisplayMode",
	"SDL_GetNumDisplayModes",
	"SDL_GetDisplayMode",
	"SDL_CreateWindow",
	"SDL_DestroyWindow",
	"SDL_GetWindowID",
	"SDL_GetWindowSize",
	"SDL_SetWindowSize",
	"SDL_SetWindowTitle",
	"SDL_SetWindowFullscreen",
	"SDL_SetWindowBordered",
	"SDL_SetWindowResizable",
	"SDL_SetWindowGrab",
	"SDL_MinimizeWindow",
	"SDL_ShowWindow",
	"SDL_GetWindowFlags",
	"SDL_GetWindowDisplayMode",
	"SDL_WarpMouseInWindow",
	"SDL_CreateRenderer",
	"SDL_DestroyRenderer",
	"SDL_GetRendererInfo",
	"SDL_RenderSetLogicalSize",
	"SDL_SetRenderDrawColor",
	"SDL_RenderClear",
	"SDL_RenderCopy",
	"SDL_RenderPresent",
	"SDL_CreateTexture",
	"SDL_DestroyTexture",
	"SDL_LockTexture",
	"SDL_UnlockTexture",
	"SDL_GL_SetAttribute",
	"SDL_GL_LoadLibrary",
	"SDL_GL_GetProcAddress",
	"SDL_GL_ExtensionSupported",
	"SDL_GL_SetSwapInterval",
	"SDL_GL_CreateContext",
	"SDL_GL_MakeCurrent",
	"SDL_GL_DeleteContext",
	"SDL_GL_SwapWindow",
	"SDL_GL_GetDrawableSize",
	"SDL_SetRelativeMouseMode",
	"SDL_GetRelativeMouseMode",
	"SDL_ShowCursor",
	"SDL_GetModState",
	"SDL_SetModState",
	"SDL_StartTextInput",
	"SDL_StopTextInput",
	"SDL_NumJoysticks",
	"SDL_JoystickNameForIndex",
	"SDL_JoystickOpen",
	"SDL_JoystickClose",
	"SDL_JoystickUpdate",
	"SDL_IsGameController",
	"SDL_GameControllerOpen",
	"SDL_GameControllerClose",
}

// Lookup resolves a single symbol by name.
type Lookup interface {
	Symbol(name string) (uintptr, error)
}

// Resolve looks up every name in the list. Any missing names are collected
// into a single LoadFailure error.
func Resolve(lib Lookup, names []string) (map[string]uintptr, error) {
	syms := make(map[string]uintptr, len(names))
	var missing []string

	for _, n := range names {
		p, err := lib.Symbol(n)
		if err != nil || p == 0 {
			missing = append(missing, n)
			continue
		}
		syms[n] = p
	}

	if len(missing) > 0 {
		return nil, curated.Errorf(curated.LoadFailure,
			fmt.Sprintf("missing %d symbol(s): %s", len(missing), strings.Join(missing, ", ")))
	}

	return syms, nil
}

// Version is the version number reported by the backend library.
type Version struct {
	Major, Minor, Patch uint8
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// CheckVersion returns an error if the version is older than the minimum
// backend version the layer supports.
func CheckVersion(v Version) error {
	if !version.BackendAtLeast(int(v.Major), int(v.Minor), int(v.Patch)) {
		return curated.Errorf(curated.LoadFailure,
			fmt.Sprintf("backend library is version %s, need at least %d.%d.%d",
				v, version.BackendMajor, version.BackendMinor, version.BackendPatch))
	}
	return nil
}

// Library is an opened and verified backend library.
type Library struct {
	Path    string
	Version Version

	handle  uintptr
	symbols map[string]uintptr
}

// Load opens the first library in the list that can be opened, resolves the
// Required symbols and checks the version. If no library names are given
// the platform defaults are used.
func Load(libs ...string) (*Library, error) {
	if len(libs) == 0 {
		libs = defaultNames
	}

	var openErr error
	for _, path := range libs {
		h, err := open(path)
		if err != nil {
			logger.Logf(logger.Verbose, "loader", "%v", err)
			openErr = err
			continue
		}

		lib := &Library{
			Path:   path,
			handle: h,
		}

		lib.symbols, err = Resolve(lib, Required)
		if err != nil {
			_ = lib.Close()
			return nil, err
		}

		lib.Version, err = getVersion(lib.symbols["SDL_GetVersion"])
		if err != nil {
			_ = lib.Close()
			return nil, curated.Errorf(curated.LoadFailure, err)
		}

		err = CheckVersion(lib.Version)
		if err != nil {
			_ = lib.Close()
			return nil, err
		}

		logger.Logf(logger.Allow, "loader", "%s (%s)", path, lib.Version)
		return lib, nil
	}

	if openErr == nil {
		openErr = fmt.Errorf("no library names")
	}
	return nil, curated.Errorf(curated.LoadFailure, openErr)
}

// Symbol implements the Lookup interface.
func (lib *Library) Symbol(name string) (uintptr, error) {
	if p, ok := lib.symbols[name]; ok {
		return p, nil
	}
	return symbol(lib.handle, name)
}

// Close the library. The library should not be used after closing.
func (lib *Library) Close() error {
	if lib.handle == 0 {
		return nil
	}
	err := closeLib(lib.handle)
	lib.handle = 0
	lib.symbols = nil
	return err
}
