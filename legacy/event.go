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

package legacy

import (
	"encoding/binary"

	"github.com/libsdl-org/sdl12-compat-sub000/keysym"
)

// EventType is the discriminant of the legacy event union. It is always the
// first byte of the encoded event.
type EventType uint8

// List of legacy event types. The numbering is part of the legacy ABI.
const (
	NOEVENT EventType = iota
	ACTIVEEVENT
	KEYDOWN
	KEYUP
	MOUSEMOTION
	MOUSEBUTTONDOWN
	MOUSEBUTTONUP
	JOYAXISMOTION
	JOYBALLMOTION
	JOYHATMOTION
	JOYBUTTONDOWN
	JOYBUTTONUP
	QUIT
	SYSWMEVENT
	EVENT_RESERVEDA
	EVENT_RESERVEDB
	VIDEORESIZE
	VIDEOEXPOSE

	USEREVENT EventType = 24
	NUMEVENTS EventType = 32
)

// EventMask returns the mask bit for an event type.
func EventMask(t EventType) uint32 {
	return 1 << t
}

// Masks for groups of events.
const (
	ACTIVEEVENTMASK     = uint32(1) << ACTIVEEVENT
	KEYDOWNMASK         = uint32(1) << KEYDOWN
	KEYUPMASK           = uint32(1) << KEYUP
	KEYEVENTMASK        = KEYDOWNMASK | KEYUPMASK
	MOUSEMOTIONMASK     = uint32(1) << MOUSEMOTION
	MOUSEBUTTONDOWNMASK = uint32(1) << MOUSEBUTTONDOWN
	MOUSEBUTTONUPMASK   = uint32(1) << MOUSEBUTTONUP
	MOUSEEVENTMASK      = MOUSEMOTIONMASK | MOUSEBUTTONDOWNMASK | MOUSEBUTTONUPMASK
	JOYAXISMOTIONMASK   = uint32(1) << JOYAXISMOTION
	JOYBALLMOTIONMASK   = uint32(1) << JOYBALLMOTION
	JOYHATMOTIONMASK    = uint32(1) << JOYHATMOTION
	JOYBUTTONDOWNMASK   = uint32(1) << JOYBUTTONDOWN
	JOYBUTTONUPMASK     = uint32(1) << JOYBUTTONUP
	JOYEVENTMASK        = JOYAXISMOTIONMASK | JOYBALLMOTIONMASK | JOYHATMOTIONMASK | JOYBUTTONDOWNMASK | JOYBUTTONUPMASK
	VIDEORESIZEMASK     = uint32(1) << VIDEORESIZE
	VIDEOEXPOSEMASK     = uint32(1) << VIDEOEXPOSE
	QUITMASK            = uint32(1) << QUIT
	SYSWMEVENTMASK      = uint32(1) << SYSWMEVENT

	ALLEVENTS uint32 = 0xffffffff
)

// Button and key states.
const (
	RELEASED uint8 = 0
	PRESSED  uint8 = 1
)

// ActiveEvent payload. Gain is 1 for gained and 0 for lost. State is a
// combination of the APP* bits.
type ActiveEvent struct {
	Gain  uint8
	State uint8
}

// Application state bits for ActiveEvent and GetAppState().
const (
	APPMOUSEFOCUS uint8 = 0x01
	APPINPUTFOCUS uint8 = 0x02
	APPACTIVE     uint8 = 0x04
)

// Keysym describes a key. Unicode is only filled in when unicode translation
// has been enabled and only for key down events.
type Keysym struct {
	Scancode uint8
	Sym      keysym.Key
	Mod      keysym.Mod
	Unicode  uint16
}

// KeyboardEvent payload.
type KeyboardEvent struct {
	Which  uint8
	State  uint8
	Keysym Keysym
}

// MouseMotionEvent payload.
type MouseMotionEvent struct {
	Which      uint8
	State      uint8
	X, Y       uint16
	XRel, YRel int16
}

// Legacy mouse buttons. The wheel is reported as a press and release of
// buttons four and five.
const (
	BUTTON_LEFT      uint8 = 1
	BUTTON_MIDDLE    uint8 = 2
	BUTTON_RIGHT     uint8 = 3
	BUTTON_WHEELUP   uint8 = 4
	BUTTON_WHEELDOWN uint8 = 5
	BUTTON_X1        uint8 = 6
	BUTTON_X2        uint8 = 7
)

// ButtonMask returns the mask bit of a button in a mouse state value.
func ButtonMask(button uint8) uint8 {
	return 1 << (button - 1)
}

// MouseButtonEvent payload.
type MouseButtonEvent struct {
	Which  uint8
	Button uint8
	State  uint8
	X, Y   uint16
}

// JoyAxisEvent payload.
type JoyAxisEvent struct {
	Which uint8
	Axis  uint8
	Value int16
}

// JoyBallEvent payload.
type JoyBallEvent struct {
	Which      uint8
	Ball       uint8
	XRel, YRel int16
}

// Hat positions.
const (
	HAT_CENTERED  uint8 = 0x00
	HAT_UP        uint8 = 0x01
	HAT_RIGHT     uint8 = 0x02
	HAT_DOWN      uint8 = 0x04
	HAT_LEFT      uint8 = 0x08
	HAT_RIGHTUP         = HAT_RIGHT | HAT_UP
	HAT_RIGHTDOWN       = HAT_RIGHT | HAT_DOWN
	HAT_LEFTUP          = HAT_LEFT | HAT_UP
	HAT_LEFTDOWN        = HAT_LEFT | HAT_DOWN
)

// JoyHatEvent payload.
type JoyHatEvent struct {
	Which uint8
	Hat   uint8
	Value uint8
}

// JoyButtonEvent payload.
type JoyButtonEvent struct {
	Which  uint8
	Button uint8
	State  uint8
}

// ResizeEvent payload.
type ResizeEvent struct {
	W, H int32
}

// UserEvent payload. The data fields are opaque to the compatibility layer.
type UserEvent struct {
	Code         int32
	Data1, Data2 uintptr
}

// SysWMMsg is a window manager message. The data is copied out of the
// modern event when the legacy event is queued because the modern message is
// only valid for the duration of the event watch callback.
type SysWMMsg struct {
	Version   [3]uint8
	Subsystem uint32
	Data      []byte
}

// SysWMEvent payload.
type SysWMEvent struct {
	Msg *SysWMMsg
}

// Event is the legacy event union. Only the payload named by Type is
// meaningful.
type Event struct {
	Type    EventType
	Active  ActiveEvent
	Key     KeyboardEvent
	Motion  MouseMotionEvent
	Button  MouseButtonEvent
	JAxis   JoyAxisEvent
	JBall   JoyBallEvent
	JHat    JoyHatEvent
	JButton JoyButtonEvent
	Resize  ResizeEvent
	User    UserEvent
	SysWM   SysWMEvent
}

// EventSize is the size in bytes of the encoded legacy event on a 64 bit
// platform. The user event, with two pointers, is the largest member.
const EventSize = 24

var ne = binary.NativeEndian

// Encode writes the event to b in the legacy layout. The slice must be at
// least EventSize bytes long. Bytes that are not part of the event's payload
// are zeroed. The SysWM message pointer cannot be represented and is written
// as zero.
func (ev *Event) Encode(b []byte) {
	b = b[:EventSize]
	clear(b)
	b[0] = uint8(ev.Type)

	switch ev.Type {
	case ACTIVEEVENT:
		b[1] = ev.Active.Gain
		b[2] = ev.Active.State
	case KEYDOWN, KEYUP:
		b[1] = ev.Key.Which
		b[2] = ev.Key.State
		b[4] = ev.Key.Keysym.Scancode
		ne.PutUint32(b[8:], uint32(ev.Key.Keysym.Sym))
		ne.PutUint32(b[12:], uint32(ev.Key.Keysym.Mod))
		ne.PutUint16(b[16:], ev.Key.Keysym.Unicode)
	case MOUSEMOTION:
		b[1] = ev.Motion.Which
		b[2] = ev.Motion.State
		ne.PutUint16(b[4:], ev.Motion.X)
		ne.PutUint16(b[6:], ev.Motion.Y)
		ne.PutUint16(b[8:], uint16(ev.Motion.XRel))
		ne.PutUint16(b[10:], uint16(ev.Motion.YRel))
	case MOUSEBUTTONDOWN, MOUSEBUTTONUP:
		b[1] = ev.Button.Which
		b[2] = ev.Button.Button
		b[3] = ev.Button.State
		ne.PutUint16(b[4:], ev.Button.X)
		ne.PutUint16(b[6:], ev.Button.Y)
	case JOYAXISMOTION:
		b[1] = ev.JAxis.Which
		b[2] = ev.JAxis.Axis
		ne.PutUint16(b[4:], uint16(ev.JAxis.Value))
	case JOYBALLMOTION:
		b[1] = ev.JBall.Which
		b[2] = ev.JBall.Ball
		ne.PutUint16(b[4:], uint16(ev.JBall.XRel))
		ne.PutUint16(b[6:], uint16(ev.JBall.YRel))
	case JOYHATMOTION:
		b[1] = ev.JHat.Which
		b[2] = ev.JHat.Hat
		b[3] = ev.JHat.Value
	case JOYBUTTONDOWN, JOYBUTTONUP:
		b[1] = ev.JButton.Which
		b[2] = ev.JButton.Button
		b[3] = ev.JButton.State
	case VIDEORESIZE:
		ne.PutUint32(b[4:], uint32(ev.Resize.W))
		ne.PutUint32(b[8:], uint32(ev.Resize.H))
	default:
		if ev.Type >= USEREVENT && ev.Type < NUMEVENTS {
			ne.PutUint32(b[4:], uint32(ev.User.Code))
			ne.PutUint64(b[8:], uint64(ev.User.Data1))
			ne.PutUint64(b[16:], uint64(ev.User.Data2))
		}
	}
}

// DecodeEvent reads an event in the legacy layout. It is the inverse of
// Encode() except for the SysWM message, which is always nil.
func DecodeEvent(b []byte) Event {
	b = b[:EventSize]
	ev := Event{Type: EventType(b[0])}

	switch ev.Type {
	case ACTIVEEVENT:
		ev.Active = ActiveEvent{Gain: b[1], State: b[2]}
	case KEYDOWN, KEYUP:
		ev.Key = KeyboardEvent{
			Which: b[1],
			State: b[2],
			Keysym: Keysym{
				Scancode: b[4],
				Sym:      keysym.Key(ne.Uint32(b[8:])),
				Mod:      keysym.Mod(ne.Uint32(b[12:])),
				Unicode:  ne.Uint16(b[16:]),
			},
		}
	case MOUSEMOTION:
		ev.Motion = MouseMotionEvent{
			Which: b[1], State: b[2],
			X: ne.Uint16(b[4:]), Y: ne.Uint16(b[6:]),
			XRel: int16(ne.Uint16(b[8:])), YRel: int16(ne.Uint16(b[10:])),
		}
	case MOUSEBUTTONDOWN, MOUSEBUTTONUP:
		ev.Button = MouseButtonEvent{
			Which: b[1], Button: b[2], State: b[3],
			X: ne.Uint16(b[4:]), Y: ne.Uint16(b[6:]),
		}
	case JOYAXISMOTION:
		ev.JAxis = JoyAxisEvent{Which: b[1], Axis: b[2], Value: int16(ne.Uint16(b[4:]))}
	case JOYBALLMOTION:
		ev.JBall = JoyBallEvent{Which: b[1], Ball: b[2], XRel: int16(ne.Uint16(b[4:])), YRel: int16(ne.Uint16(b[6:]))}
	case JOYHATMOTION:
		ev.JHat = JoyHatEvent{Which: b[1], Hat: b[2], Value: b[3]}
	case JOYBUTTONDOWN, JOYBUTTONUP:
		ev.JButton = JoyButtonEvent{Which: b[1], Button: b[2], State: b[3]}
	case VIDEORESIZE:
		ev.Resize = ResizeEvent{W: int32(ne.Uint32(b[4:])), H: int32(ne.Uint32(b[8:]))}
	default:
		if ev.Type >= USEREVENT && ev.Type < NUMEVENTS {
			ev.User = UserEvent{
				Code:  int32(ne.Uint32(b[4:])),
				Data1: uintptr(ne.Uint64(b[8:])),
				Data2: uintptr(ne.Uint64(b[16:])),
			}
		}
	}

	return ev
}
