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

package modalflag

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
)

// ParseResult is returned by the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// continue with the program. the arguments and flags have been parsed
	// and a sub-mode may have been selected
	ParseContinue ParseResult = iota

	// help was requested and has been written to Output. the program should
	// normally end
	ParseHelp

	// an error occurred. the error is returned alongside the ParseResult
	ParseError
)

type subMode struct {
	name        string
	description string
}

// Modes provides an easy way of handling command line arguments that select
// a mode of operation. The zero value is usable after a call to NewArgs().
type Modes struct {
	// where help and error messages are written. nil discards them
	Output io.Writer

	args []string
	idx  int

	// the modes selected by previous calls to Parse()
	path []string

	flags    *flag.FlagSet
	subModes []subMode
	help     string
}

func (md *Modes) String() string {
	return md.Path()
}

// NewArgs sets the arguments to be parsed and resets any previously selected
// modes.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.idx = 0
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode prepares for a new set of flags and sub-modes. The mode path and
// the unparsed arguments are kept.
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.flags.SetOutput(io.Discard)
	md.flags.Usage = func() {}
	md.subModes = md.subModes[:0]
	md.help = ""
}

// AddSubMode adds a sub-mode that can be selected by the next call to
// Parse(). The first sub-mode added is the default.
func (md *Modes) AddSubMode(name string, description string) {
	md.subModes = append(md.subModes, subMode{
		name:        strings.ToUpper(name),
		description: description,
	})
}

// AdditionalHelp adds text to the end of the help message.
func (md *Modes) AdditionalHelp(help string) {
	md.help = help
}

// Mode returns the most recently selected mode. Returns the empty string if
// no mode has been selected.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every mode selected so far, separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, "/")
}

// RemainingArgs returns the arguments not yet consumed by Parse().
func (md *Modes) RemainingArgs() []string {
	return md.args[md.idx:]
}

// GetArg returns the numbered argument from RemainingArgs(). Returns the empty
// string if there is no such argument.
func (md *Modes) GetArg(i int) string {
	rem := md.RemainingArgs()
	if i < 0 || i >= len(rem) {
		return ""
	}
	return rem[i]
}

func (md *Modes) subMode(arg string) (string, bool) {
	arg = strings.ToUpper(arg)
	for _, m := range md.subModes {
		if m.name == arg {
			return m.name, true
		}
	}
	return "", false
}

// Parse the flags for the current mode and select the next sub-mode, if any
// have been added.
func (md *Modes) Parse() (ParseResult, error) {
	if md.flags == nil {
		md.NewMode()
	}

	err := md.flags.Parse(md.RemainingArgs())
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			md.writeHelp()
			return ParseHelp, nil
		}

		// a flag not recognised by this mode may be meant for the default
		// sub-mode. the arguments are left for the sub-mode to parse
		if len(md.subModes) > 0 && strings.HasPrefix(err.Error(), "flag provided but not defined") {
			md.path = append(md.path, md.subModes[0].name)
			return ParseContinue, nil
		}

		if md.Output != nil {
			fmt.Fprintf(md.Output, "%v\n", err)
		}
		return ParseError, err
	}

	md.idx = len(md.args) - md.flags.NArg()

	if len(md.subModes) == 0 {
		return ParseContinue, nil
	}

	if m, ok := md.subMode(md.GetArg(0)); ok {
		md.path = append(md.path, m)
		md.idx++
	} else {
		md.path = append(md.path, md.subModes[0].name)
	}

	return ParseContinue, nil
}

// AddBool flag for the next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddString flag for the next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddInt flag for the next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddDuration flag for the next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}
