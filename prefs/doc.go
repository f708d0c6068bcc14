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

// Package prefs holds typed preference values and the Hints type, which
// fills those values from the process environment.
//
// The legacy API has no configuration calls of its own so every tunable of
// the compatibility layer is a hint: an environment variable read once when
// the subsystem is initialised. For example:
//
//	var scaling prefs.Bool
//	hints := prefs.NewHints()
//	hints.Add("SDL12COMPAT_OPENGL_SCALING", &scaling, true)
//	hints.Load()
//
// Values pushed onto the command line stack with PushCommandLineStack() take
// priority over the environment. This is how the demonstration command and the
// tests override hints without changing the environment of the process.
package prefs
