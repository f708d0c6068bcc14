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
	"sync"

	"github.com/libsdl-org/sdl12-compat-sub000/assert"
	"github.com/libsdl-org/sdl12-compat-sub000/legacy"
	"github.com/libsdl-org/sdl12-compat-sub000/logger"
)

// Policy is the way an update request is handled.
type Policy int

// List of valid Policy values.
const (
	Immediate Policy = iota
	Deferred
	BackgroundDeferred
)

func (p Policy) String() string {
	switch p {
	case Immediate:
		return "immediate"
	case Deferred:
		return "deferred"
	case BackgroundDeferred:
		return "background deferred"
	}
	return "unknown"
}

// Classify chooses the policy for an update request. Updates from a goroutine
// other than the owner are only deferred to the owner if allowBackground is
// true. Otherwise they are handled as if they came from the owner.
func Classify(owner bool, whole bool, allowBackground bool) Policy {
	if !owner && allowBackground {
		return BackgroundDeferred
	}
	if whole {
		return Immediate
	}
	return Deferred
}

// DefaultInterval is the minimum time between deferred presents, in
// milliseconds, when the refresh rate of the display is not known.
const DefaultInterval = 15

// Presenter copies the screen surface to the display.
type Presenter interface {
	// Upload copies the areas of the screen surface to the texture or
	// framebuffer. A nil slice means the whole surface
	Upload(rects []legacy.Rect) error

	// Present makes everything uploaded so far visible
	Present() error
}

// Scheduler decides when to upload and present. It is safe to call from any
// goroutine.
type Scheduler struct {
	crit sync.Mutex

	presenter Presenter
	ticks     func() uint32
	lock      *Lock

	// dimensions of the screen surface
	w, h int32

	owner           uint64
	allowBackground bool

	interval uint32
	deadline uint32

	// an update from another goroutine is waiting for the owner
	dirty bool

	// uploaded but not yet presented
	pending bool

	// bounding box of the areas uploaded since the last present
	touched legacy.Rect

	presents int
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type. The goroutine calling NewScheduler() is the owner. The ticks function
// returns the current time in milliseconds.
func NewScheduler(presenter Presenter, lock *Lock, ticks func() uint32, w, h int32, allowBackground bool) *Scheduler {
	return &Scheduler{
		presenter:       presenter,
		ticks:           ticks,
		lock:            lock,
		w:               w,
		h:               h,
		owner:           assert.GetGoRoutineID(),
		allowBackground: allowBackground,
		interval:        DefaultInterval,
	}
}

// SetRefreshRate sets the minimum time between deferred presents to one
// frame at the refresh rate. A rate of zero or less means the rate is unknown.
func (s *Scheduler) SetRefreshRate(hz int32) {
	s.crit.Lock()
	defer s.crit.Unlock()
	if hz <= 0 {
		s.interval = DefaultInterval
		return
	}
	s.interval = uint32(1000 / hz)
}

// Interval returns the minimum time between deferred presents.
func (s *Scheduler) Interval() uint32 {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.interval
}

// Owner returns true if the calling goroutine created the scheduler.
func (s *Scheduler) Owner() bool {
	return assert.GetGoRoutineID() == s.owner
}

// Dirty returns true if there is an update waiting to be presented.
func (s *Scheduler) Dirty() bool {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.dirty || s.pending
}

// Presents returns the number of presents so far.
func (s *Scheduler) Presents() int {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.presents
}

// whole returns true if the rectangles cover the whole surface. An empty list
// or a zero rectangle means the whole surface.
func (s *Scheduler) whole(rects []legacy.Rect) bool {
	if len(rects) == 0 {
		return true
	}
	for _, r := range rects {
		if r == (legacy.Rect{}) || r.Covers(s.w, s.h) {
			return true
		}
	}
	return false
}

// grow the touched area by the rectangle
func (s *Scheduler) touch(r legacy.Rect) {
	if s.touched.Empty() {
		s.touched = r
		return
	}
	x0 := min(int32(s.touched.X), int32(r.X))
	y0 := min(int32(s.touched.Y), int32(r.Y))
	x1 := max(int32(s.touched.X)+int32(s.touched.W), int32(r.X)+int32(r.W))
	y1 := max(int32(s.touched.Y)+int32(s.touched.H), int32(r.Y)+int32(r.H))
	s.touched = legacy.Rect{X: int16(x0), Y: int16(y0), W: uint16(x1 - x0), H: uint16(y1 - y0)}
}

// Update is called when the application asks for areas of the screen surface
// to be updated. Returns the policy that was used.
func (s *Scheduler) Update(rects []legacy.Rect) (Policy, error) {
	whole := s.whole(rects)
	policy := Classify(s.Owner(), whole, s.allowBackground)

	if policy == BackgroundDeferred {
		s.crit.Lock()
		s.dirty = true
		s.deadline = s.ticks()
		s.crit.Unlock()
		return policy, nil
	}

	s.lock.Acquire()
	defer s.lock.Release()

	s.crit.Lock()
	defer s.crit.Unlock()

	if whole {
		rects = nil
	}

	err := s.presenter.Upload(rects)
	if err != nil {
		return policy, err
	}
	s.pending = true

	if policy == Immediate {
		return policy, s.present()
	}

	for _, r := range rects {
		s.touch(r)
	}
	if s.touched.Covers(s.w, s.h) || s.ticks()-s.deadline < 1<<31 {
		return policy, s.present()
	}

	return policy, nil
}

// present must be called with the critical section locked and the
// presentation lock held.
func (s *Scheduler) present() error {
	err := s.presenter.Present()
	if err != nil {
		return err
	}
	now := s.ticks()
	s.deadline = now + s.interval
	s.pending = false
	s.dirty = false
	s.touched = legacy.Rect{}
	s.presents++
	return nil
}

// Service performs any upload and present that has been deferred. It only
// does anything when called from the owning goroutine. It should be called
// whenever the owner pumps events, polls or sleeps.
func (s *Scheduler) Service() error {
	if !s.Owner() {
		return nil
	}

	s.crit.Lock()
	dirty := s.dirty
	due := s.pending && s.ticks()-s.deadline < 1<<31
	s.crit.Unlock()

	if !dirty && !due {
		return nil
	}

	s.lock.Acquire()
	defer s.lock.Release()

	s.crit.Lock()
	defer s.crit.Unlock()

	if s.dirty {
		logger.Log(logger.Verbose, "present", "servicing background update")
		err := s.presenter.Upload(nil)
		if err != nil {
			return err
		}
	}

	return s.present()
}

// Resize changes the dimensions of the screen surface. Any deferred present
// is forgotten.
func (s *Scheduler) Resize(w, h int32) {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.w = w
	s.h = h
	s.dirty = false
	s.pending = false
	s.touched = legacy.Rect{}
}
