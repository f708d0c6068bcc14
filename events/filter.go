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
	"github.com/libsdl-org/sdl12-compat-sub000/curated"
	"github.com/libsdl-org/sdl12-compat-sub000/legacy"
)

// SetFilter sets the application filter. Events for which the filter returns
// false are never pushed. A nil filter accepts everything.
func (q *Queue) SetFilter(filter func(*legacy.Event) bool) {
	q.crit.Lock()
	defer q.crit.Unlock()
	q.filter = filter
}

// Filter returns the current application filter.
func (q *Queue) Filter() func(*legacy.Event) bool {
	q.crit.Lock()
	defer q.crit.Unlock()
	return q.filter
}

// SetEventState queries or changes whether an event type is processed.
// Disabling a type removes any events of that type already in the queue.
// Returns the state of the event type before the call, as either
// legacy.ENABLE or legacy.IGNORE.
func (q *Queue) SetEventState(t legacy.EventType, state int) (int, error) {
	if t >= legacy.NUMEVENTS {
		return 0, curated.Errorf(curated.Unsupported, "events", t)
	}

	q.crit.Lock()
	defer q.crit.Unlock()

	prev := legacy.ENABLE
	if q.disabled[t] {
		prev = legacy.IGNORE
	}

	switch state {
	case legacy.QUERY:
	case legacy.IGNORE:
		q.disabled[t] = true
		q.walk(legacy.EventMask(t), len(q.slots), true, nil)
	default:
		q.disabled[t] = false
	}

	return prev, nil
}

// Enabled returns true if the event type has not been disabled.
func (q *Queue) Enabled(t legacy.EventType) bool {
	if t >= legacy.NUMEVENTS {
		return false
	}
	q.crit.Lock()
	defer q.crit.Unlock()
	return !q.disabled[t]
}

// Accept returns true if the event should be pushed. The table of enabled
// event types is consulted first and then the application filter. The filter
// is called without the queue locked so that it may safely call back into
// the queue.
func (q *Queue) Accept(ev *legacy.Event) bool {
	q.crit.Lock()
	if ev.Type >= legacy.NUMEVENTS || q.disabled[ev.Type] {
		q.crit.Unlock()
		return false
	}
	filter := q.filter
	q.crit.Unlock()

	if filter == nil {
		return true
	}
	return filter(ev)
}

// PushFiltered pushes the event if Accept() returns true for it. Returns
// false and no error if the event was filtered.
func (q *Queue) PushFiltered(ev legacy.Event) (bool, error) {
	if !q.Accept(&ev) {
		return false, nil
	}
	if err := q.Push(ev); err != nil {
		return false, err
	}
	return true, nil
}
