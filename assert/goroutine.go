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

// Package assert provides goroutine identity. The compatibility layer needs to
// know whether an entry point has been called from the goroutine that created
// the video mode because the modern renderer and GL context may only be used
// from that goroutine's thread.
package assert

import (
	"bytes"
	"runtime"
	"strconv"
)

// GetGoRoutineID returns an identify for a goroutine. it returns a result that
// is (a) different between goroutines and (b) consistent for a given
// goroutine.
//
// Reading the stack header is not cheap. Callers on a hot path should compare
// IDs only when they have reason to think the goroutine may have changed.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}
