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

package prefs

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Hints is a collection of preference values filled from the environment.
type Hints struct {
	entries map[string]hint

	// lookup is os.LookupEnv unless replaced for testing
	lookup func(string) (string, bool)
}

type hint struct {
	p   pref
	def Value

	// where the current value came from
	source string
}

// list of values for the source field of the hint type
const (
	sourceDefault     = "default"
	sourceEnvironment = "environment"
	sourceCommandLine = "command line"
)

// NewHints is the preferred method of initialisation for the Hints type.
func NewHints() *Hints {
	return &Hints{
		entries: make(map[string]hint),
		lookup:  os.LookupEnv,
	}
}

// SetLookup replaces the function used to read the environment. A nil
// function restores os.LookupEnv.
func (h *Hints) SetLookup(f func(string) (string, bool)) {
	if f == nil {
		f = os.LookupEnv
	}
	h.lookup = f
}

// Add a preference value to the collection. The value is set to the default
// immediately.
func (h *Hints) Add(key string, p pref, def Value) error {
	key = strings.TrimSpace(key)
	if _, ok := h.entries[key]; ok {
		return fmt.Errorf("hints: %s: already added", key)
	}
	if err := p.Set(def); err != nil {
		return fmt.Errorf("hints: %s: %w", key, err)
	}
	h.entries[key] = hint{p: p, def: def, source: sourceDefault}
	return nil
}

// Load fills every value in the collection. The top of the command line stack
// has priority over the environment. A value that cannot be converted to the
// type of the preference is an error and the preference keeps its default.
func (h *Hints) Load() error {
	var errs []string

	for _, key := range h.keys() {
		e := h.entries[key]

		var v Value
		var source string
		if ok, cl := GetCommandLinePref(key); ok {
			v = cl
			source = sourceCommandLine
		} else if env, ok := h.lookup(key); ok {
			v = env
			source = sourceEnvironment
		} else {
			v = e.def
			source = sourceDefault
		}

		if err := e.p.Set(v); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
			_ = e.p.Set(e.def)
			source = sourceDefault
		}

		e.source = source
		h.entries[key] = e
	}

	if len(errs) > 0 {
		return fmt.Errorf("hints: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Source returns where the value for a key came from. One of "default",
// "environment" or "command line". The empty string is returned for an
// unknown key.
func (h *Hints) Source(key string) string {
	if e, ok := h.entries[key]; ok {
		return e.source
	}
	return ""
}

// Reset all values to their defaults.
func (h *Hints) Reset() error {
	for key, e := range h.entries {
		if err := e.p.Set(e.def); err != nil {
			return fmt.Errorf("hints: %s: %w", key, err)
		}
		e.source = sourceDefault
		h.entries[key] = e
	}
	return nil
}

func (h *Hints) keys() []string {
	keys := make([]string, 0, len(h.entries))
	for k := range h.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String returns a sorted list of every hint and its value, one per line.
func (h *Hints) String() string {
	s := strings.Builder{}
	for _, key := range h.keys() {
		e := h.entries[key]
		s.WriteString(fmt.Sprintf("%s :: %s (%s)\n", key, e.p.String(), e.source))
	}
	return s.String()
}
