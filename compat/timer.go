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
	"time"

	"github.com/libsdl-org/sdl12-compat-sub000/curated"
	"github.com/libsdl-org/sdl12-compat-sub000/legacy"
	"github.com/libsdl-org/sdl12-compat-sub000/logger"
)

// TimerCallback is called on a timer goroutine when the interval has passed.
// The return value is the next interval in milliseconds. Returning zero
// stops the timer.
type TimerCallback func(interval uint32, param any) uint32

// TimerID identifies a timer added with AddTimer(). The zero value is never
// a valid timer.
type TimerID int

// intervals are rounded up to the legacy timer resolution
const timerResolution = 10

func roundInterval(ms uint32) uint32 {
	return (ms + timerResolution - 1) / timerResolution * timerResolution
}

type timer struct {
	id       TimerID
	interval uint32
	cb       TimerCallback
	param    any
	t        *time.Timer
}

// timers is the list of running timers. The list is guarded by the event
// queue mutex.
type timers struct {
	c      *Context
	nextID TimerID
	list   map[TimerID]*timer

	// the timer set with SetTimer()
	single TimerID
}

func (ts *timers) init(c *Context) {
	ts.c = c
	ts.list = make(map[TimerID]*timer)
}

func (ts *timers) add(interval uint32, cb TimerCallback, param any) TimerID {
	ts.c.queue.Lock()
	defer ts.c.queue.Unlock()

	ts.nextID++
	tm := &timer{
		id:       ts.nextID,
		interval: roundInterval(interval),
		cb:       cb,
		param:    param,
	}
	ts.list[tm.id] = tm
	tm.t = time.AfterFunc(time.Duration(tm.interval)*time.Millisecond, func() {
		ts.fire(tm)
	})

	return tm.id
}

// fire runs on the timer goroutine.
func (ts *timers) fire(tm *timer) {
	ts.c.queue.Lock()
	if _, ok := ts.list[tm.id]; !ok {
		ts.c.queue.Unlock()
		return
	}
	interval := tm.interval
	ts.c.queue.Unlock()

	// the callback may call back into the Context
	next := tm.cb(interval, tm.param)

	ts.c.queue.Lock()
	defer ts.c.queue.Unlock()

	if _, ok := ts.list[tm.id]; !ok {
		return
	}
	if next == 0 {
		delete(ts.list, tm.id)
		return
	}
	tm.interval = roundInterval(next)
	tm.t.Reset(time.Duration(tm.interval) * time.Millisecond)
}

func (ts *timers) remove(id TimerID) bool {
	ts.c.queue.Lock()
	defer ts.c.queue.Unlock()

	tm, ok := ts.list[id]
	if !ok {
		return false
	}
	tm.t.Stop()
	delete(ts.list, id)
	return true
}

func (ts *timers) removeAll() {
	ts.c.queue.Lock()
	defer ts.c.queue.Unlock()

	for id, tm := range ts.list {
		tm.t.Stop()
		delete(ts.list, id)
	}
	ts.single = 0
}

// AddTimer adds a timer that calls the callback after the interval in
// milliseconds. Returns zero if the timer subsystem is not initialised.
func (c *Context) AddTimer(interval uint32, cb TimerCallback, param any) TimerID {
	if c.WasInit(legacy.INIT_TIMER) == 0 {
		c.fail(curated.Errorf(curated.Unsupported, "AddTimer", "timer is not initialised"))
		return 0
	}
	if cb == nil {
		return 0
	}
	id := c.timers.add(interval, cb, param)
	logger.Logf(logger.Verbose, "compat", "timer %d added (%dms)", id, interval)
	return id
}

// RemoveTimer stops a timer. Returns false if the timer doesn't exist or has
// already stopped.
func (c *Context) RemoveTimer(id TimerID) bool {
	return c.timers.remove(id)
}

// SetTimer replaces the single timer of the legacy API. A zero interval or a
// nil callback stops the timer. Returns 0 on success and -1 on failure.
func (c *Context) SetTimer(interval uint32, cb func(interval uint32) uint32) int {
	c.queue.Lock()
	prev := c.timers.single
	c.timers.single = 0
	c.queue.Unlock()

	if prev != 0 {
		c.timers.remove(prev)
	}

	if interval == 0 || cb == nil {
		return 0
	}

	id := c.AddTimer(interval, func(interval uint32, _ any) uint32 {
		return cb(interval)
	}, nil)
	if id == 0 {
		return -1
	}

	c.queue.Lock()
	c.timers.single = id
	c.queue.Unlock()

	return 0
}
