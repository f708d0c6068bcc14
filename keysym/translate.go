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

package keysym

import "unicode/utf8"

// scancodes are the USB HID usage IDs used by the modern backend. the table
// maps each to the key a US keyboard produces in that position
var scancodes = [...]Key{
	4: 'a', 5: 'b', 6: 'c', 7: 'd', 8: 'e', 9: 'f', 10: 'g', 11: 'h', 12: 'i',
	13: 'j', 14: 'k', 15: 'l', 16: 'm', 17: 'n', 18: 'o', 19: 'p', 20: 'q',
	21: 'r', 22: 's', 23: 't', 24: 'u', 25: 'v', 26: 'w', 27: 'x', 28: 'y',
	29: 'z',

	30: '1', 31: '2', 32: '3', 33: '4', 34: '5', 35: '6', 36: '7', 37: '8',
	38: '9', 39: '0',

	40: Return, 41: Escape, 42: Backspace, 43: Tab, 44: Space, 45: Minus,
	46: Equals, 47: LeftBracket, 48: RightBracket, 49: Backslash, 50: Hash,
	51: Semicolon, 52: Quote, 53: Backquote, 54: Comma, 55: Period, 56: Slash,
	57: CapsLock,

	58: F1, 59: F2, 60: F3, 61: F4, 62: F5, 63: F6, 64: F7, 65: F8, 66: F9,
	67: F10, 68: F11, 69: F12,

	70: Print, 71: ScrolLock, 72: Pause, 73: Insert, 74: Home, 75: PageUp,
	76: Delete, 77: End, 78: PageDown, 79: Right, 80: Left, 81: Down, 82: Up,

	83: NumLock, 84: KPDivide, 85: KPMultiply, 86: KPMinus, 87: KPPlus,
	88: KPEnter, 89: KP1, 90: KP2, 91: KP3, 92: KP4, 93: KP5, 94: KP6, 95: KP7,
	96: KP8, 97: KP9, 98: KP0, 99: KPPeriod,

	100: Less, 101: Menu, 102: Power, 103: KPEquals,
	104: F13, 105: F14, 106: F15,

	117: Help, 118: Menu, 122: Undo, 154: SysReq, 156: Clear,

	224: LCtrl, 225: LShift, 226: LAlt, 227: LSuper,
	228: RCtrl, 229: RShift, 230: RAlt, 231: RSuper,

	257: Mode,
}

// FromScancode translates a modern scancode directly to a legacy key symbol.
// The keyboard layout is ignored. Scancodes with no legacy equivalent return
// Unknown.
func FromScancode(scancode uint32) Key {
	if scancode >= uint32(len(scancodes)) {
		return Unknown
	}
	return scancodes[scancode]
}

// keycodes with this bit set are scancodes with no character representation
const scancodeMask = 1 << 30

// FromKeycode translates a modern keycode, as produced by the current
// keyboard layout, to a legacy key symbol. The scancode is used for keys that
// the layout maps to something the legacy numbering cannot represent.
func FromKeycode(keycode int32, scancode uint32) Key {
	switch {
	case keycode&scancodeMask == scancodeMask:
		return FromScancode(uint32(keycode &^ scancodeMask))

	case keycode >= 'A' && keycode <= 'Z':
		// the legacy API never reports upper case key symbols
		return Key(keycode - 'A' + 'a')

	case keycode > 0 && keycode < 128:
		return Key(keycode)

	case keycode >= int32(World0) && keycode <= int32(World95):
		// the ISO-8859-1 upper range corresponds exactly to the world keys
		return Key(keycode)

	case keycode == 0x20ac:
		return Euro
	}

	return FromScancode(scancode)
}

// DecodeRune returns the first code point in a text input buffer. The buffer
// may be zero terminated. The legacy unicode field is 16 bits wide so code
// points outside the basic multilingual plane are returned as zero, as are
// empty or invalid buffers.
func DecodeRune(text []byte) uint16 {
	if len(text) == 0 || text[0] == 0 {
		return 0
	}
	r, _ := utf8.DecodeRune(text)
	if r == utf8.RuneError || r > 0xffff {
		return 0
	}
	return uint16(r)
}
