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

package compat

import (
	"runtime"
	"sync"
	"time"

	"github.com/libsdl-org/sdl12-compat-sub000/assert"
	"github.com/libsdl-org/sdl12-compat-sub000/backend"
	"github.com/libsdl-org/sdl12-compat-sub000/logger"
)

// how long a goroutine waits for the owner of the GL context to lend it
const borrowTimeout = time.Second

// glBinding tracks which goroutine has the GL context current.
//
// The goroutine that created the context (the owner) is locked to its OS
// thread and keeps the context current between calls so that the application
// can call GL directly. Any other goroutine that acquires the presentation
// lock borrows the context: it waits until the owner releases the context at
// its next entry point, makes the context current on its own thread and
// releases it again with the presentation lock. The owner then makes the
// context current again before returning to the application.
type glBinding struct {
	crit sync.Mutex

	ctx    backend.GLContext
	owner  uint64
	holder uint64

	// number of goroutines waiting to borrow the context
	wanted int

	// closed and replaced whenever holder or wanted changes
	changed chan struct{}
}

func (b *glBinding) notify() {
	if b.changed != nil {
		close(b.changed)
	}
	b.changed = make(chan struct{})
}

// wait until cond() is true or the timeout expires. a nil timeout waits
// forever. must be called with crit held. returns with crit held
func (b *glBinding) wait(cond func() bool, timeout <-chan time.Time) bool {
	for !cond() {
		if b.changed == nil {
			b.changed = make(chan struct{})
		}
		ch := b.changed
		b.crit.Unlock()
		select {
		case <-ch:
		case <-timeout:
			b.crit.Lock()
			return cond()
		}
		b.crit.Lock()
	}
	return true
}

// own is called on the goroutine that created the context. the context must
// already be current.
func (b *glBinding) own(ctx backend.GLContext) {
	runtime.LockOSThread()

	b.crit.Lock()
	defer b.crit.Unlock()
	b.ctx = ctx
	b.owner = assert.GetGoRoutineID()
	b.holder = b.owner
	b.notify()
}

// disown forgets the context. the context should be released and deleted by
// the caller afterwards.
func (b *glBinding) disown() {
	b.crit.Lock()
	owner := b.owner
	b.ctx = nil
	b.owner = 0
	b.holder = 0
	b.notify()
	b.crit.Unlock()

	if owner == assert.GetGoRoutineID() {
		runtime.UnlockOSThread()
	} else if owner != 0 {
		logger.Log(logger.Allow, "compat", "GL context deleted by a goroutine that does not own it")
	}
}

// bind is called after the presentation lock has been acquired.
func (b *glBinding) bind() {
	id := assert.GetGoRoutineID()

	b.crit.Lock()
	defer b.crit.Unlock()

	if b.ctx == nil || b.holder == id {
		return
	}

	if b.holder != 0 {
		b.wanted++
		b.notify()
		ok := b.wait(func() bool {
			return b.ctx == nil || b.holder == 0
		}, time.After(borrowTimeout))
		b.wanted--
		b.notify()
		if !ok {
			logger.Log(logger.Allow, "compat", "GL context not released by its owner. drawing without it")
			return
		}
		if b.ctx == nil {
			return
		}
	}

	if err := b.ctx.MakeCurrent(); err != nil {
		logger.Log(logger.Allow, "compat", err)
		return
	}
	b.holder = id
}

// unbind is called before the presentation lock is finally released. the
// owner keeps the context current.
func (b *glBinding) unbind() {
	id := assert.GetGoRoutineID()

	b.crit.Lock()
	defer b.crit.Unlock()

	if b.ctx == nil || b.holder != id || id == b.owner {
		return
	}
	if err := b.ctx.Release(); err != nil {
		logger.Log(logger.Allow, "compat", err)
	}
	b.holder = 0
	b.notify()
}

// yield lends the context to any goroutine waiting for it and waits for it to
// be returned. does nothing if the caller is not the owner.
func (b *glBinding) yield() {
	id := assert.GetGoRoutineID()

	b.crit.Lock()
	defer b.crit.Unlock()

	if b.ctx == nil || b.owner != id || b.wanted == 0 {
		return
	}

	if b.holder == id {
		if err := b.ctx.Release(); err != nil {
			logger.Log(logger.Allow, "compat", err)
		}
		b.holder = 0
		b.notify()
	}

	b.wait(func() bool {
		return b.ctx == nil || (b.wanted == 0 && b.holder == 0)
	}, nil)

	if b.ctx == nil {
		return
	}
	if err := b.ctx.MakeCurrent(); err != nil {
		logger.Log(logger.Allow, "compat", err)
		return
	}
	b.holder = id
}
