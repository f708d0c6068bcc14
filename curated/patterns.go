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

package curated

// Patterns for each class of error reported by the compatibility layer. The
// first value of each pattern is the name of the entry point or subsystem
// that failed.
const (
	// resource exhaustion. the operation is aborted and the caller continues
	QueueFull      = "%s: event queue is full"
	OutOfResources = "%s: out of resources: %v"

	// stale or out of range handles
	InvalidHandle = "%s: invalid handle (%v)"

	// the modern backend refused to create a window, context, texture etc.
	BackendFailure = "%s: %v"

	// requests that can never be satisfied. no side effects
	Unsupported = "%s: unsupported: %v"

	// the backend library could not be bound at load time
	LoadFailure = "load: %v"
)
