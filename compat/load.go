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

	"github.com/libsdl-org/sdl12-compat-sub000/loader"
)

// MustLoad opens and verifies the backend library. There is no way for a
// legacy application to recover from a missing or outdated backend so any
// error results in a panic. The message names every missing entry point.
func MustLoad(libs ...string) *loader.Library {
	lib, err := loader.Load(libs...)
	if err != nil {
		panic(fmt.Sprintf("compat: %v", err))
	}
	return lib
}
