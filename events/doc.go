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

// Package events implements the legacy event queue. The queue is a fixed
// arena of slots linked by index into a free list and a live list. Pushing an
// event moves a slot from the free list to the tail of the live list and
// getting an event moves it back. The number of slots never changes once the
// queue has been created.
//
// All operations are guarded by a single mutex. None of them block for longer
// than it takes to walk the live list.
//
// Events enter the queue through Push(). Whether an event should be pushed at
// all is decided by Accept(), which consults the table of enabled event types
// and then the application filter, if there is one.
package events
