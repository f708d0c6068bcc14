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

//go:build (darwin || freebsd || linux) && !android

package loader

import (
	"fmt"
	"unsafe"

	"github.com/ebitengine/purego"
)

func open(path string) (uintptr, error) {
	h, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	return h, nil
}

func symbol(h uintptr, name string) (uintptr, error) {
	if h == 0 {
		return 0, fmt.Errorf("library is closed")
	}
	return purego.Dlsym(h, name)
}

func closeLib(h uintptr) error {
	return purego.Dlclose(h)
}

func getVersion(fn uintptr) (Version, error) {
	var v Version
	if fn == 0 {
		return v, fmt.Errorf("no version function")
	}
	purego.SyscallN(fn, uintptr(unsafe.Pointer(&v)))
	return v, nil
}
