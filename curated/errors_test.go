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

package curated_test

import (
	"errors"
	"testing"

	"github.com/libsdl-org/sdl12-compat-sub000/curated"
	"github.com/libsdl-org/sdl12-compat-sub000/test"
)

func TestDuplicateErrors(t *testing.T) {
	e := curated.Errorf("error: %v", "foo")
	test.ExpectEquality(t, e.Error(), "error: foo")

	// packing errors of the same type next to each other causes
	// one of them to be dropped
	f := curated.Errorf("error: %v", e)
	test.ExpectEquality(t, f.Error(), "error: foo")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(curated.QueueFull, "PushEvent")
	test.ExpectSuccess(t, curated.Is(e, curated.QueueFull))
	test.ExpectFailure(t, curated.Is(e, curated.InvalidHandle))
	test.ExpectEquality(t, e.Error(), "PushEvent: event queue is full")

	// uncurated errors are never Is()
	u := errors.New("plain")
	test.ExpectFailure(t, curated.IsAny(u))
	test.ExpectFailure(t, curated.Is(u, curated.QueueFull))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(curated.InvalidHandle, "JoystickGetAxis", 3)
	f := curated.Errorf(curated.BackendFailure, "SetVideoMode", e)
	test.ExpectFailure(t, curated.Is(f, curated.InvalidHandle))
	test.ExpectSuccess(t, curated.Has(f, curated.InvalidHandle))
	test.ExpectSuccess(t, curated.Has(f, curated.BackendFailure))
	test.ExpectFailure(t, curated.Has(f, curated.QueueFull))
}

func TestUnwrap(t *testing.T) {
	sentinel := errors.New("sentinel")
	e := curated.Errorf(curated.BackendFailure, "CreateWindow", sentinel)
	test.ExpectSuccess(t, errors.Is(e, sentinel))
}

func TestClassByPattern(t *testing.T) {
	e := curated.Errorf(curated.Unsupported, "videomode", 12)
	test.ExpectEquality(t, e.Error(), "videomode: unsupported: 12")

	f := curated.Errorf(curated.BackendFailure, "SetVideoMode", e)
	test.ExpectFailure(t, curated.Is(f, curated.Unsupported))
	test.ExpectSuccess(t, curated.Has(f, curated.Unsupported))
	test.ExpectSuccess(t, curated.Is(f, curated.BackendFailure))
	test.ExpectSuccess(t, curated.IsAny(f))
}

func TestBackendChain(t *testing.T) {
	sdlErr := errors.New("no available video device")
	inner := curated.Errorf(curated.BackendFailure, "CreateWindow", sdlErr)
	outer := curated.Errorf(curated.BackendFailure, "CreateWindow", inner)
	test.ExpectEquality(t, outer.Error(), "CreateWindow: no available video device")
	test.ExpectSuccess(t, errors.Is(outer, sdlErr))
}
