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

// Package curated is the error type used throughout the compatibility layer.
// Every failure that reaches a legacy application as SDL_GetError() text
// starts life as a curated error.
//
// A curated error is a pattern plus the values for the pattern. The message
// is only formatted when Error() is called. The pattern identifies the class
// of the error and the patterns in use are the constants in patterns.go:
//
//	QueueFull       the event queue has no free slots
//	OutOfResources  an allocation was refused
//	InvalidHandle   a joystick index, timer or surface that isn't live
//	BackendFailure  the modern backend refused a request
//	Unsupported     a request that can never succeed
//	LoadFailure     the backend library is missing, incomplete or too old
//
// The first value for a pattern is usually the legacy entry point that
// failed:
//
//	err := curated.Errorf(curated.QueueFull, "PushEvent")
//	fmt.Println(err)
//
//	PushEvent: event queue is full
//
// Callers decide how to react by class rather than by message. Is() tests the
// outermost pattern and Has() searches the whole chain of curated errors:
//
//	e := curated.Errorf(curated.Unsupported, "videomode", 12)
//	f := curated.Errorf(curated.BackendFailure, "SetVideoMode", e)
//
//	curated.Is(f, curated.Unsupported)    // false
//	curated.Has(f, curated.Unsupported)   // true
//	curated.Is(f, curated.BackendFailure) // true
//
// SetVideoMode() relies on this. An Unsupported request is rejected before
// anything is touched and the current video mode survives. Any other failure
// tears the mode down.
//
// Errors from other packages can be wrapped as values. Unwrap() returns the
// first error value so errors.Is() and errors.As() still find them.
//
// Error() removes adjacent repeated parts of the message, where a part is the
// text between ": " separators. A backend error wrapped on the way up by
// each layer that sees it is printed once:
//
//	inner := curated.Errorf(curated.BackendFailure, "CreateWindow", sdlErr)
//	outer := curated.Errorf(curated.BackendFailure, "CreateWindow", inner)
//	fmt.Println(outer)
//
//	CreateWindow: no available video device
//
// IsAny() returns true for any curated error whatever its pattern.
package curated
