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

// Package compat is the legacy API. A Context holds everything the legacy
// API kept in global variables: the event queue, the keyboard and mouse
// state, the single video mode and its screen surface, open joysticks and
// timers.
//
// Entry points are methods on the Context and are named after the legacy
// functions they replace. They report failure the legacy way, with a
// sentinel return value (nil, -1 or false), and store the error text for
// GetError().
//
// Events reach the Context through the event watch registered with the
// backend. The watch is called synchronously by the backend whenever
// PumpEvents() is called and translates each modern event into zero or more
// legacy events:
//
//	backend.PumpEvents() -> onModernEvent() -> events.Queue -> PollEvent()
//
// A key press is held back until the text input event that follows it
// arrives, so that the legacy event can carry the unicode value of the key.
// Key repeat is emulated by the Context and is serviced by PumpEvents().
//
// Drawing to the screen surface is made visible with UpdateRects() or
// Flip(). When the upload and present happen is decided by the Scheduler in
// the present package.
package compat
