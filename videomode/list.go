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

package videomode

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/libsdl-org/sdl12-compat-sub000/backend"
)

// Mode is a resolution.
type Mode struct {
	W, H int32
}

func (m Mode) String() string {
	return fmt.Sprintf("%dx%d", m.W, m.H)
}

// Fits returns true if the mode is no larger than the limit in either
// dimension. A zero limit fits everything.
func (m Mode) Fits(limit Mode) bool {
	if limit.W == 0 && limit.H == 0 {
		return true
	}
	return m.W <= limit.W && m.H <= limit.H
}

// resolutions reported in addition to the real display modes. these are
// common resolutions used by legacy applications, some of which are no
// longer supported by displays
var common = []Mode{
	{3840, 2160},
	{2560, 1440},
	{1920, 1200},
	{1920, 1080},
	{1680, 1050},
	{1600, 1200},
	{1600, 900},
	{1440, 900},
	{1400, 1050},
	{1366, 768},
	{1280, 1024},
	{1280, 960},
	{1280, 800},
	{1280, 768},
	{1280, 720},
	{1152, 864},
	{1024, 768},
	{960, 720},
	{800, 600},
	{720, 480},
	{640, 480},
	{640, 400},
	{640, 350},
	{512, 384},
	{400, 300},
	{320, 240},
	{320, 200},
}

// List synthesises the list of modes reported to the legacy application. The
// display modes of the backend are merged with a table of common
// resolutions, if the mode can be scaled. Modes larger than the desktop or
// the limit are removed. The list is sorted from largest to smallest with no
// duplicates.
func List(desktop backend.DisplayMode, modes []backend.DisplayMode, limit Mode, scaled bool) []Mode {
	d := Mode{W: desktop.W, H: desktop.H}

	var l []Mode
	add := func(m Mode) {
		if m.W <= 0 || m.H <= 0 {
			return
		}
		if !m.Fits(d) || !m.Fits(limit) {
			return
		}
		l = append(l, m)
	}

	for _, m := range modes {
		add(Mode{W: m.W, H: m.H})
	}
	if scaled {
		for _, m := range common {
			add(m)
		}
	}

	slices.SortFunc(l, func(a, b Mode) int {
		if a.W != b.W {
			return int(b.W - a.W)
		}
		return int(b.H - a.H)
	})

	return slices.Compact(l)
}

// ParseLimit parses a mode limit of the form "WxH". An empty string means no
// limit.
func ParseLimit(s string) (Mode, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Mode{}, nil
	}

	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return Mode{}, fmt.Errorf("videomode: invalid mode limit (%s)", s)
	}

	wv, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil || wv <= 0 {
		return Mode{}, fmt.Errorf("videomode: invalid mode limit (%s)", s)
	}
	hv, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil || hv <= 0 {
		return Mode{}, fmt.Errorf("videomode: invalid mode limit (%s)", s)
	}

	return Mode{W: int32(wv), H: int32(hv)}, nil
}
