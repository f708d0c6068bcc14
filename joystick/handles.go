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

package joystick

import (
	"github.com/libsdl-org/sdl12-compat-sub000/curated"
)

// Handles maps legacy joystick handles to open devices. The legacy handle is
// the device index the joystick was opened with.
type Handles struct {
	devices []Device
}

// Open a device. Opening an index that is already open returns the existing
// device.
func (h *Handles) Open(open func(index int) (Device, error), index int, count int) (Device, error) {
	if index < 0 || index >= count {
		return nil, curated.Errorf(curated.InvalidHandle, "joystick", index)
	}
	if len(h.devices) < count {
		h.devices = append(h.devices, make([]Device, count-len(h.devices))...)
	}
	if h.devices[index] != nil {
		return h.devices[index], nil
	}
	d, err := open(index)
	if err != nil {
		return nil, curated.Errorf(curated.BackendFailure, "joystick", err)
	}
	h.devices[index] = d
	return d, nil
}

// Get returns the device for a legacy handle.
func (h *Handles) Get(index int) (Device, error) {
	if index < 0 || index >= len(h.devices) || h.devices[index] == nil {
		return nil, curated.Errorf(curated.InvalidHandle, "joystick", index)
	}
	return h.devices[index], nil
}

// Opened returns true if the legacy handle refers to an open device.
func (h *Handles) Opened(index int) bool {
	_, err := h.Get(index)
	return err == nil
}

// Close the device for a legacy handle.
func (h *Handles) Close(index int) error {
	d, err := h.Get(index)
	if err != nil {
		return err
	}
	d.Close()
	h.devices[index] = nil
	return nil
}

// CloseAll closes every open device.
func (h *Handles) CloseAll() {
	for i, d := range h.devices {
		if d != nil {
			d.Close()
			h.devices[i] = nil
		}
	}
}

// Lookup returns the legacy handle of the open device with the instance ID.
// Returns false if no open device has that ID.
func (h *Handles) Lookup(instanceID int32) (int, Device, bool) {
	for i, d := range h.devices {
		if d != nil && d.InstanceID() == instanceID {
			return i, d, true
		}
	}
	return 0, nil, false
}

// Count returns the number of open devices.
func (h *Handles) Count() int {
	n := 0
	for _, d := range h.devices {
		if d != nil {
			n++
		}
	}
	return n
}
