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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and ExpectInequality() functions test for equality of
// two values of the same type. The ExpectSuccess() and ExpectFailure()
// functions accept bool or error values and interpret them in the obvious way.
//
// The Demand*() functions are the same as the equivalent Expect*() functions
// except that a failure stops the test immediately.
//
// The Writer type captures output (from the logger package for example) for
// comparison with an expected string.
package test
