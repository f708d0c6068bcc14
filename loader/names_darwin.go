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

var defaultNames = []string{
	"libSDL2-2.0.0.dylib",
	"libSDL2.dylib",
	"/Library/Frameworks/SDL2.framework/Versions/A/SDL2",
	"/opt/homebrew/lib/libSDL2-2.0.0.dylib",
}
