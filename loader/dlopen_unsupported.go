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

//go:build !(darwin || freebsd || linux) || android

package loader

import (
	"fmt"
	"runtime"
)

func open(path string) (uintptr, error) {
	return 0, fmt.Errorf("%s: dynamic loading is not available on %s", path, runtime.GOOS)
}

func symbol(_ uintptr, name string) (uintptr, error) {
	return 0, fmt.Errorf("%s: dynamic loading is not available on %s", name, runtime.GOOS)
}

func closeLib(_ uintptr) error {
	return nil
}

func getVersion(_ uintptr) (Version, error) {
	return Version{}, fmt.Errorf("dynamic loading is not available on %s", runtime.GOOS)
}
