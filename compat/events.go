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
	"github.com/libsdl-org/sdl12-compat-sub000/curated"
	"github.com/libsdl-org/sdl12-compat-sub000/legacy"
)

// PumpEvents gathers events from the backend. Pending key presses are
// flushed, key repeat is serviced and any deferred present is performed.
func (c *Context) PumpEvents() {
	if !c.videoInitialised() {
		return
	}

	// a goroutine drawing in the background may be waiting for the GL
	// context
	c.glBind.yield()

	c.backend.PumpEvents()

	// text input for a key press arrives in the same pump as the key press
	// so anything still pending has no text
	var o out
	c.input.crit.Lock()
	c.flushPending(&o)
	c.serviceRepeat(&o)
	c.input.crit.Unlock()
	c.deliver(&o)

	c.servicePresent()
}

// PollEvent pumps events and removes the first event from the queue. Returns
// false if the queue is empty. A nil event checks for an event without
// removing it.
func (c *Context) PollEvent(ev *legacy.Event) bool {
	c.PumpEvents()
	if ev == nil {
		return c.queue.PeekInto(nil, legacy.ALLEVENTS)
	}
	return c.queue.GetInto(ev, legacy.ALLEVENTS)
}

// WaitEvent waits for an event. There is no timeout. Returns false if the
// video subsystem is not initialised.
func (c *Context) WaitEvent(ev *legacy.Event) bool {
	for {
		if c.PollEvent(ev) {
			return true
		}
		if !c.videoInitialised() {
			c.fail(curated.Errorf(curated.Unsupported, "WaitEvent", "video not initialised"))
			return false
		}
		c.backend.Delay(1)
	}
}

// PeepAction is the action performed by PeepEvents().
type PeepAction int

// List of valid PeepAction values.
const (
	ADDEVENT PeepAction = iota
	PEEKEVENT
	GETEVENT
)

// PeepEvents adds events to the queue or returns events from the queue
// without pumping. For ADDEVENT the first n events in the slice are added.
// For PEEKEVENT and GETEVENT up to n events matching the mask are copied to
// the slice. Returns the number of events added or copied, or -1 on error.
func (c *Context) PeepEvents(evs []legacy.Event, n int, action PeepAction, mask uint32) int {
	n = min(n, len(evs))

	switch action {
	case ADDEVENT:
		for i := 0; i < n; i++ {
			// disabled types are dropped but still count as added
			if !c.queue.Enabled(evs[i].Type) {
				continue
			}
			if err := c.queue.Push(evs[i]); err != nil {
				c.fail(err)
				if i == 0 {
					return -1
				}
				return i
			}
		}
		return n

	case PEEKEVENT:
		return copy(evs, c.queue.Peek(mask, n))

	case GETEVENT:
		return copy(evs, c.queue.Get(mask, n))
	}

	c.fail(curated.Errorf(curated.Unsupported, "PeepEvents", action))
	return -1
}

// PushEvent adds an event to the queue. The event filter is not applied but
// events of a type disabled with EventState() are dropped. Returns 0 on
// success and -1 if the queue is full.
func (c *Context) PushEvent(ev *legacy.Event) int {
	if ev == nil {
		c.fail(curated.Errorf(curated.InvalidHandle, "PushEvent", "nil"))
		return -1
	}
	if !c.queue.Enabled(ev.Type) {
		return 0
	}
	if err := c.queue.Push(*ev); err != nil {
		c.fail(err)
		return -1
	}
	return 0
}

// SetEventFilter sets the application event filter. Events for which the
// filter returns false are dropped before they reach the queue.
func (c *Context) SetEventFilter(filter func(*legacy.Event) bool) {
	c.queue.SetFilter(filter)
}

// GetEventFilter returns the filter set by SetEventFilter().
func (c *Context) GetEventFilter() func(*legacy.Event) bool {
	return c.queue.Filter()
}

// EventState enables (ENABLE) or disables (IGNORE) an event type, or queries
// the state (QUERY). Returns the state before the call.
func (c *Context) EventState(t legacy.EventType, state int) uint8 {
	prev, err := c.queue.SetEventState(t, state)
	if err != nil {
		c.fail(err)
		return legacy.IGNORE
	}

	// the backend doesn't produce window manager events unless asked
	if t == legacy.SYSWMEVENT && state != legacy.QUERY {
		c.backend.SetSysWMEvents(state == legacy.ENABLE && c.config.AllowSysWM.Bool())
	}

	return uint8(prev)
}
