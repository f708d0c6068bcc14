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

import "fmt"

var names = map[Key]string{
	Backspace: "backspace", Tab: "tab", Clear: "clear", Return: "return",
	Pause: "pause", Escape: "escape", Space: "space", Delete: "delete",

	KP0: "[0]", KP1: "[1]", KP2: "[2]", KP3: "[3]", KP4: "[4]", KP5: "[5]",
	KP6: "[6]", KP7: "[7]", KP8: "[8]", KP9: "[9]", KPPeriod: "[.]",
	KPDivide: "[/]", KPMultiply: "[*]", KPMinus: "[-]", KPPlus: "[+]",
	KPEnter: "enter", KPEquals: "equals",

	Up: "up", Down: "down", Right: "right", Left: "left", Insert: "insert",
	Home: "home", End: "end", PageUp: "page up", PageDown: "page down",

	F1: "f1", F2: "f2", F3: "f3", F4: "f4", F5: "f5", F6: "f6", F7: "f7",
	F8: "f8", F9: "f9", F10: "f10", F11: "f11", F12: "f12", F13: "f13",
	F14: "f14", F15: "f15",

	NumLock: "numlock", CapsLock: "caps lock", ScrolLock: "scroll lock",
	RShift: "right shift", LShift: "left shift", RCtrl: "right ctrl",
	LCtrl: "left ctrl", RAlt: "right alt", LAlt: "left alt",
	RMeta: "right meta", LMeta: "left meta", LSuper: "left super",
	RSuper: "right super", Mode: "alt gr", Compose: "compose",

	Help: "help", Print: "print screen", SysReq: "sys req", Break: "break",
	Menu: "menu", Power: "power", Euro: "euro", Undo: "undo",
}

// Name returns the legacy name for a key symbol.
func Name(k Key) string {
	if n, ok := names[k]; ok {
		return n
	}
	switch {
	case k > Space && k < Delete:
		return string(rune(k))
	case k >= World0 && k <= World95:
		return fmt.Sprintf("world %d", k-World0)
	}
	return "unknown key"
}
