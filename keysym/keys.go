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

// Package keysym translates the key symbols and modifiers of the modern
// backend into the legacy key symbol numbering.
//
// The legacy numbering uses ASCII values for the printable keys, the
// ISO-8859-1 range 160-255 for the "world" keys and a block of values from
// 256 upwards for the keypad, cursor, function and modifier keys.
//
// Two translation strategies are available. FromScancode() uses the physical
// key position and always answers as if the keyboard were a US layout.
// FromKeycode() uses the symbol produced by the current keyboard layout and
// falls back to the scancode table for keys the legacy numbering cannot
// represent.
package keysym

// Key is a legacy key symbol.
type Key uint32

// List of legacy key symbols. The printable ASCII keys are not listed. Use
// Key('a') etc.
const (
	Unknown      Key = 0
	Backspace    Key = 8
	Tab          Key = 9
	Clear        Key = 12
	Return       Key = 13
	Pause        Key = 19
	Escape       Key = 27
	Space        Key = 32
	Hash         Key = 35
	Quote        Key = 39
	Comma        Key = 44
	Minus        Key = 45
	Period       Key = 46
	Slash        Key = 47
	Semicolon    Key = 59
	Less         Key = 60
	Equals       Key = 61
	LeftBracket  Key = 91
	Backslash    Key = 92
	RightBracket Key = 93
	Backquote    Key = 96
	Delete       Key = 127

	World0  Key = 160
	World95 Key = 255

	KP0        Key = 256
	KP1        Key = 257
	KP2        Key = 258
	KP3        Key = 259
	KP4        Key = 260
	KP5        Key = 261
	KP6        Key = 262
	KP7        Key = 263
	KP8        Key = 264
	KP9        Key = 265
	KPPeriod   Key = 266
	KPDivide   Key = 267
	KPMultiply Key = 268
	KPMinus    Key = 269
	KPPlus     Key = 270
	KPEnter    Key = 271
	KPEquals   Key = 272

	Up       Key = 273
	Down     Key = 274
	Right    Key = 275
	Left     Key = 276
	Insert   Key = 277
	Home     Key = 278
	End      Key = 279
	PageUp   Key = 280
	PageDown Key = 281

	F1  Key = 282
	F2  Key = 283
	F3  Key = 284
	F4  Key = 285
	F5  Key = 286
	F6  Key = 287
	F7  Key = 288
	F8  Key = 289
	F9  Key = 290
	F10 Key = 291
	F11 Key = 292
	F12 Key = 293
	F13 Key = 294
	F14 Key = 295
	F15 Key = 296

	NumLock   Key = 300
	CapsLock  Key = 301
	ScrolLock Key = 302
	RShift    Key = 303
	LShift    Key = 304
	RCtrl     Key = 305
	LCtrl     Key = 306
	RAlt      Key = 307
	LAlt      Key = 308
	RMeta     Key = 309
	LMeta     Key = 310
	LSuper    Key = 311
	RSuper    Key = 312
	Mode      Key = 313
	Compose   Key = 314

	Help   Key = 315
	Print  Key = 316
	SysReq Key = 317
	Break  Key = 318
	Menu   Key = 319
	Power  Key = 320
	Euro   Key = 321
	Undo   Key = 322

	// Last is one more than the highest key symbol. The key state table
	// returned to applications has Last entries.
	Last Key = 323
)

// Mod is the legacy modifier bitmask. The bit layout is identical to the
// modern backend's with the GUI keys taking the place of the meta keys.
type Mod uint32

// List of legacy modifier bits.
const (
	ModNone   Mod = 0x0000
	ModLShift Mod = 0x0001
	ModRShift Mod = 0x0002
	ModLCtrl  Mod = 0x0040
	ModRCtrl  Mod = 0x0080
	ModLAlt   Mod = 0x0100
	ModRAlt   Mod = 0x0200
	ModLMeta  Mod = 0x0400
	ModRMeta  Mod = 0x0800
	ModNum    Mod = 0x1000
	ModCaps   Mod = 0x2000
	ModMode   Mod = 0x4000

	ModShift = ModLShift | ModRShift
	ModCtrl  = ModLCtrl | ModRCtrl
	ModAlt   = ModLAlt | ModRAlt
	ModMeta  = ModLMeta | ModRMeta
)

// the modifier bits that have a legacy equivalent
const modMask = ModShift | ModCtrl | ModAlt | ModMeta | ModNum | ModCaps | ModMode

// FromModern converts the modern modifier state to the legacy bitmask.
func FromModern(mod uint16) Mod {
	return Mod(mod) & modMask
}

// ToModern converts a legacy modifier bitmask to the modern modifier state.
func ToModern(mod Mod) uint16 {
	return uint16(mod & modMask)
}
