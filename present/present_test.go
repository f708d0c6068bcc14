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

package present_test

import (
	"testing"
	"time"

	"github.com/libsdl-org/sdl12-compat-sub000/legacy"
	"github.com/libsdl-org/sdl12-compat-sub000/present"
	"github.com/libsdl-org/sdl12-compat-sub000/test"
)

type presenter struct {
	uploads  int
	whole    int
	presents int
}

func (p *presenter) Upload(rects []legacy.Rect) error {
	p.uploads++
	if rects == nil {
		p.whole++
	}
	return nil
}

func (p *presenter) Present() error {
	p.presents++
	return nil
}

type clock struct {
	now uint32
}

func (c *clock) ticks() uint32 {
	return c.now
}

func TestClassify(t *testing.T) {
	test.ExpectEquality(t, present.Classify(true, true, true), present.Immediate)
	test.ExpectEquality(t, present.Classify(true, false, true), present.Deferred)
	test.ExpectEquality(t, present.Classify(false, true, true), present.BackgroundDeferred)
	test.ExpectEquality(t, present.Classify(false, false, true), present.BackgroundDeferred)
	test.ExpectEquality(t, present.Classify(false, true, false), present.Immediate)
	test.ExpectEquality(t, present.Classify(false, false, false), present.Deferred)
}

func TestImmediate(t *testing.T) {
	p := &presenter{}
	c := &clock{}
	s := present.NewScheduler(p, &present.Lock{}, c.ticks, 320, 200, true)

	policy, err := s.Update(nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, policy, present.Immediate)
	test.ExpectEquality(t, p.presents, 1)
	test.ExpectEquality(t, p.whole, 1)
	test.ExpectFailure(t, s.Dirty())

	// a rectangle covering the surface is the same as the whole surface
	policy, _ = s.Update([]legacy.Rect{{W: 320, H: 200}})
	test.ExpectEquality(t, policy, present.Immediate)
	test.ExpectEquality(t, s.Presents(), 2)
}

func TestDeferred(t *testing.T) {
	p := &presenter{}
	c := &clock{}
	s := present.NewScheduler(p, &present.Lock{}, c.ticks, 320, 200, true)
	s.SetRefreshRate(50)
	test.ExpectEquality(t, s.Interval(), uint32(20))

	s.Update(nil)
	test.ExpectEquality(t, p.presents, 1)

	// before the deadline partial updates are uploaded but not presented
	c.now = 5
	policy, err := s.Update([]legacy.Rect{{W: 320, H: 100}})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, policy, present.Deferred)
	test.ExpectEquality(t, p.uploads, 2)
	test.ExpectEquality(t, p.presents, 1)
	test.ExpectSuccess(t, s.Dirty())

	// servicing before the deadline does nothing
	test.ExpectSuccess(t, s.Service())
	test.ExpectEquality(t, p.presents, 1)

	// touching the rest of the surface presents
	s.Update([]legacy.Rect{{Y: 100, W: 320, H: 100}})
	test.ExpectEquality(t, p.presents, 2)
	test.ExpectFailure(t, s.Dirty())

	// a deadline of 20ms from the last present
	c.now = 10
	s.Update([]legacy.Rect{{W: 10, H: 10}})
	test.ExpectEquality(t, p.presents, 2)
	c.now = 25
	test.ExpectSuccess(t, s.Service())
	test.ExpectEquality(t, p.presents, 3)

	// an update after the deadline is presented immediately
	c.now = 100
	s.Update([]legacy.Rect{{W: 10, H: 10}})
	test.ExpectEquality(t, p.presents, 4)
}

func TestBackground(t *testing.T) {
	p := &presenter{}
	c := &clock{}
	s := present.NewScheduler(p, &present.Lock{}, c.ticks, 320, 200, true)

	done := make(chan present.Policy)
	go func() {
		policy, _ := s.Update([]legacy.Rect{{W: 10, H: 10}})

		// servicing from a goroutine that is not the owner does nothing
		s.Service()
		done <- policy
	}()
	test.ExpectEquality(t, <-done, present.BackgroundDeferred)

	test.ExpectEquality(t, p.uploads, 0)
	test.ExpectSuccess(t, s.Dirty())

	test.ExpectSuccess(t, s.Service())
	test.ExpectEquality(t, p.whole, 1)
	test.ExpectEquality(t, p.presents, 1)
	test.ExpectFailure(t, s.Dirty())

	// background updates that are not allowed are performed on the calling
	// goroutine
	s = present.NewScheduler(p, &present.Lock{}, c.ticks, 320, 200, false)
	go func() {
		policy, _ := s.Update(nil)
		done <- policy
	}()
	test.ExpectEquality(t, <-done, present.Immediate)
	test.ExpectEquality(t, p.presents, 2)
}

func TestLock(t *testing.T) {
	var acquired, released int
	l := &present.Lock{
		OnAcquire: func() { acquired++ },
		OnRelease: func() { released++ },
	}

	l.Acquire()
	l.Acquire()
	test.ExpectSuccess(t, l.Held())
	test.ExpectEquality(t, acquired, 1)

	got := make(chan bool)
	go func() {
		l.Acquire()
		got <- l.Held()
		l.Release()
		got <- true
	}()

	blocked := func() bool {
		select {
		case <-got:
			return false
		case <-time.After(20 * time.Millisecond):
			return true
		}
	}

	test.ExpectSuccess(t, blocked())
	l.Release()
	test.ExpectEquality(t, released, 0)
	test.ExpectSuccess(t, blocked())

	l.Release()
	test.ExpectSuccess(t, <-got)
	<-got
	test.ExpectEquality(t, acquired, 2)
	test.ExpectEquality(t, released, 2)
	test.ExpectFailure(t, l.Held())

	// releasing a lock that is not held does nothing
	l.Release()
	test.ExpectEquality(t, released, 2)
}
