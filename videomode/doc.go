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

// Package videomode contains the decisions made when the legacy application
// asks for a video mode: which modes are reported as available, how an
// incomplete request is filled in, which kind of fullscreen to use and whether
// an existing GL context can survive the change.
//
// The functions are pure. They take the state of the display as arguments
// and do not talk to the backend.
package videomode
