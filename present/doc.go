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

// Package present decides when the contents of the screen surface are copied
// to the display.
//
// Legacy applications write into the screen surface and then ask for part or
// all of it to be updated. The Scheduler chooses one of three policies for
// each update request:
//
//	Immediate            the whole surface, on the owning goroutine. upload
//	                     and present straight away
//
//	Deferred             part of the surface, on the owning goroutine.
//	                     upload straight away but only present once the
//	                     whole surface has been touched or the frame
//	                     deadline has passed
//
//	BackgroundDeferred   any update from another goroutine. nothing is
//	                     uploaded. the surface is marked dirty and the
//	                     upload and present happen the next time the owning
//	                     goroutine calls Service()
//
// The owning goroutine is the goroutine that created the video mode.
//
// Uploads and presents happen with the presentation Lock held. The Lock is
// recursive for the goroutine holding it and calls a hook on final release,
// which is used to unbind the GL context from the OS thread.
package present
