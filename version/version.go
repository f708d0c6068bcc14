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

package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the compatibility layer
const ApplicationName = "sdl12-compat"

// The legacy API version reported to applications. Applications compare this
// against the version they were built with and some refuse to run with
// anything older than 1.2.10.
const (
	LegacyMajor = 1
	LegacyMinor = 2
	LegacyPatch = 68
)

// The oldest modern backend that provides every entry point the layer needs.
const (
	BackendMajor = 2
	BackendMinor = 0
	BackendPatch = 7
)

// LegacyVersion returns the legacy API version as a string.
func LegacyVersion() string {
	return fmt.Sprintf("%d.%d.%d", LegacyMajor, LegacyMinor, LegacyPatch)
}

// BackendAtLeast returns true if the version numbers are at least the minimum
// required backend version.
func BackendAtLeast(major, minor, patch int) bool {
	if major != BackendMajor {
		return major > BackendMajor
	}
	if minor != BackendMinor {
		return minor > BackendMinor
	}
	return patch >= BackendPatch
}

// if number is empty then the project was probably not built using the makefile
var number string

// revision contains the vcs revision. If the source has been modified but
// has not been committed then the Revision string will be suffixed with
// "+dirty"
var revision string

// version contains a the current version number of the project
//
// If the version string is "unreleased" then it means that the project has
// been manually built (ie. not with the makefile)
//
// If the version string is "local" then it means that there is no no version
// number and no vcs information.
var version string

// Version returns the version string, the revision string and whether this is a
// numbered "release" version.
func Version() (string, string, bool) {
	return version, revision, version == number
}

func init() {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	info, ok := debug.ReadBuildInfo()
	if ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	if vcsRevision == "" {
		revision = "no revision information"
	} else {
		revision = vcsRevision
		if vcsModified {
			revision = fmt.Sprintf("%s+dirty", revision)
		}
	}

	if number == "" {
		if vcs {
			version = "unreleased"
		} else {
			version = "local"
		}
	} else {
		version = number
	}
}
