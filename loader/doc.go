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

// Package loader binds the modern backend library at start up. The library
// is opened with dlopen (through the purego package, so no cgo is needed for
// this step) and every entry point the compatibility layer requires is
// resolved by name.
//
// A missing symbol is not something the layer can recover from. Load() will
// return a single error listing every missing name so that the user can see
// in one go how far the installed library is from what is needed.
package loader
