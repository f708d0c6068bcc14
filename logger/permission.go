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

package logger

// Permission implementations indicate whether the environment making a
// logging request is allowed to create new log entries.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (_ allow) AllowLogging() bool {
	return true
}

// Allow is a convenient implementation of the Permission interface. It
// always allows logging.
var Allow Permission = allow{}

// Verbose is a Permission that allows logging only when verbose logging has
// been switched on with SetVerbose(). Used for the high frequency messages
// (every present, every dropped event) that would otherwise flood the log.
var Verbose Permission = &verbose{}

type verbose struct {
	on bool
}

func (v *verbose) AllowLogging() bool {
	return v.on
}

// SetVerbose switches the Verbose permission on or off.
func SetVerbose(on bool) {
	Verbose.(*verbose).on = on
}
