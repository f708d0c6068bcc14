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

package present

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/libsdl-org/sdl12-compat-sub000/assert"
	"github.com/libsdl-org/sdl12-compat-sub000/logger"
)

// Lock is a recursive lock keyed on goroutine identity. The goroutine is
// locked to its OS thread for as long as the Lock is held.
type Lock struct {
	crit  sync.Mutex
	owner atomic.Uint64
	depth int

	// called before a goroutine that does not hold the lock waits for it
	BeforeAcquire func()

	// called after the lock is first acquired and before it is finally
	// released
	OnAcquire func()
	OnRelease func()
}

// Acquire the lock. If the calling goroutine already holds the lock the depth
// is increased and the function returns immediately.
func (l *Lock) Acquire() {
	id := assert.GetGoRoutineID()
	if l.owner.Load() == id {
		l.depth++
		return
	}

	if l.BeforeAcquire != nil {
		l.BeforeAcquire()
	}

	runtime.LockOSThread()
	l.crit.Lock()
	l.owner.Store(id)
	l.depth = 1

	logger.Logf(logger.Verbose, "present", "lock acquired by goroutine %d (thread %d)", id, threadID())

	if l.OnAcquire != nil {
		l.OnAcquire()
	}
}

// Release the lock. The lock is only released when the number of calls to
// Release() matches the number of calls to Acquire(). Releasing a lock that
// the calling goroutine does not hold does nothing.
func (l *Lock) Release() {
	if l.owner.Load() != assert.GetGoRoutineID() {
		logger.Log(logger.Allow, "present", "release of lock not held by calling goroutine")
		return
	}

	l.depth--
	if l.depth > 0 {
		return
	}

	if l.OnRelease != nil {
		l.OnRelease()
	}

	l.owner.Store(0)
	l.crit.Unlock()
	runtime.UnlockOSThread()
}

// Held returns true if the calling goroutine holds the lock.
func (l *Lock) Held() bool {
	return l.owner.Load() == assert.GetGoRoutineID()
}
