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

package events

import (
	"sync"

	"github.com/libsdl-org/sdl12-compat-sub000/curated"
	"github.com/libsdl-org/sdl12-compat-sub000/legacy"
)

// DefaultCapacity is the number of slots in the queue if no other value is
// specified.
const DefaultCapacity = 128

// end of list marker
const nilSlot = -1

type slot struct {
	ev legacy.Event

	// window manager messages are copied into the slot because the original
	// message is only valid while the modern event is being handled
	msg legacy.SysWMMsg

	next int
}

// Queue is a fixed capacity FIFO of legacy events.
type Queue struct {
	crit sync.Mutex

	slots []slot

	free     int
	live     int
	liveTail int

	freeCount int
	liveCount int

	// event types that have been disabled with SetEventState(). indexed by
	// event type
	disabled [legacy.NUMEVENTS]bool

	filter func(*legacy.Event) bool
}

// NewQueue is the preferred method of initialisation for the Queue type. A
// capacity of zero or less creates a queue with DefaultCapacity slots.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	q := &Queue{
		slots: make([]slot, capacity),
	}
	q.reset()

	// the legacy API disabled window manager messages by default
	q.disabled[legacy.SYSWMEVENT] = true

	return q
}

// link every slot into the free list
func (q *Queue) reset() {
	for i := range q.slots {
		q.slots[i].next = i + 1
	}
	q.slots[len(q.slots)-1].next = nilSlot
	q.free = 0
	q.live = nilSlot
	q.liveTail = nilSlot
	q.freeCount = len(q.slots)
	q.liveCount = 0
}

// Lock the queue. Used by collaborators that share the queue mutex, such as
// the timer list. Must not be held while calling any other queue function.
func (q *Queue) Lock() {
	q.crit.Lock()
}

// Unlock the queue after a call to Lock().
func (q *Queue) Unlock() {
	q.crit.Unlock()
}

// Push adds an event to the end of the queue. Returns an error if the queue is
// full, in which case the event is lost.
func (q *Queue) Push(ev legacy.Event) error {
	q.crit.Lock()
	defer q.crit.Unlock()

	if q.free == nilSlot {
		return curated.Errorf(curated.QueueFull, "events")
	}

	i := q.free
	s := &q.slots[i]
	q.free = s.next
	q.freeCount--

	s.ev = ev
	if ev.Type == legacy.SYSWMEVENT && ev.SysWM.Msg != nil {
		s.msg.Version = ev.SysWM.Msg.Version
		s.msg.Subsystem = ev.SysWM.Msg.Subsystem
		s.msg.Data = append(s.msg.Data[:0], ev.SysWM.Msg.Data...)
		s.ev.SysWM.Msg = &s.msg
	}

	s.next = nilSlot
	if q.liveTail == nilSlot {
		q.live = i
	} else {
		q.slots[q.liveTail].next = i
	}
	q.liveTail = i
	q.liveCount++

	return nil
}

// copy an event out of a slot. the window manager message is copied again so
// that the caller is not left with a pointer into a slot that may be reused
func (s *slot) copyOut() legacy.Event {
	ev := s.ev
	if ev.Type == legacy.SYSWMEVENT && ev.SysWM.Msg != nil {
		msg := s.msg
		msg.Data = append([]byte(nil), s.msg.Data...)
		ev.SysWM.Msg = &msg
	}
	return ev
}

// walk the live list calling f() for every event matching the mask. walking
// stops after n matches or when f() returns false. if remove is true matched
// slots are returned to the free list. returns the number of matches.
//
// must be called with the critical section locked.
func (q *Queue) walk(mask uint32, n int, remove bool, f func(legacy.Event) bool) int {
	matched := 0
	prev := nilSlot
	i := q.live

	for i != nilSlot && matched < n {
		s := &q.slots[i]
		next := s.next

		if legacy.EventMask(s.ev.Type)&mask == 0 {
			prev = i
			i = next
			continue
		}

		matched++
		cont := true
		if f != nil {
			cont = f(s.copyOut())
		}

		if remove {
			q.unlink(prev, i)
		} else {
			prev = i
		}
		i = next

		if !cont {
			break
		}
	}

	return matched
}

// unlink slot i from the live list and return it to the free list. prev is the
// slot before i in the live list or nilSlot if i is the head.
//
// must be called with the critical section locked.
func (q *Queue) unlink(prev int, i int) {
	s := &q.slots[i]
	if prev == nilSlot {
		q.live = s.next
	} else {
		q.slots[prev].next = s.next
	}
	if q.liveTail == i {
		q.liveTail = prev
	}
	q.liveCount--

	s.ev = legacy.Event{}
	s.next = q.free
	q.free = i
	q.freeCount++
}

// Peek returns up to n events matching the mask without removing them from
// the queue.
func (q *Queue) Peek(mask uint32, n int) []legacy.Event {
	q.crit.Lock()
	defer q.crit.Unlock()

	var evs []legacy.Event
	q.walk(mask, n, false, func(ev legacy.Event) bool {
		evs = append(evs, ev)
		return true
	})
	return evs
}

// Get removes and returns up to n events matching the mask. The order of the
// events remaining in the queue is preserved.
func (q *Queue) Get(mask uint32, n int) []legacy.Event {
	q.crit.Lock()
	defer q.crit.Unlock()

	var evs []legacy.Event
	q.walk(mask, n, true, func(ev legacy.Event) bool {
		evs = append(evs, ev)
		return true
	})
	return evs
}

// PeekInto copies the first event matching the mask into ev without removing
// it. Returns false if there is no such event. The ev argument can be nil, in
// which case the function only reports whether a matching event exists.
func (q *Queue) PeekInto(ev *legacy.Event, mask uint32) bool {
	q.crit.Lock()
	defer q.crit.Unlock()

	return q.walk(mask, 1, false, func(e legacy.Event) bool {
		if ev != nil {
			*ev = e
		}
		return false
	}) > 0
}

// GetInto removes the first event matching the mask and copies it into ev.
// Returns false if there is no such event. The ev argument can be nil, in
// which case the event is removed and discarded.
func (q *Queue) GetInto(ev *legacy.Event, mask uint32) bool {
	q.crit.Lock()
	defer q.crit.Unlock()

	return q.walk(mask, 1, true, func(e legacy.Event) bool {
		if ev != nil {
			*ev = e
		}
		return false
	}) > 0
}

// Flush removes all events matching the mask. Returns the number of events
// removed.
func (q *Queue) Flush(mask uint32) int {
	q.crit.Lock()
	defer q.crit.Unlock()
	return q.walk(mask, len(q.slots), true, nil)
}

// Len returns the number of events in the queue.
func (q *Queue) Len() int {
	q.crit.Lock()
	defer q.crit.Unlock()
	return q.liveCount
}

// FreeLen returns the number of unused slots.
func (q *Queue) FreeLen() int {
	q.crit.Lock()
	defer q.crit.Unlock()
	return q.freeCount
}

// Cap returns the total number of slots.
func (q *Queue) Cap() int {
	return len(q.slots)
}
