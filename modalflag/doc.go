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

// Package modalflag handles command lines that select a mode of operation
// before the arguments for that mode. It is built on the flag package of the
// standard library and each mode has its own flag set.
//
// Arguments are given once with NewArgs() and then consumed a mode at a time
// by repeated calls to Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubMode("demo", "open a window and draw into it")
//	md.AddSubMode("modes", "list the available video modes")
//	if p, err := md.Parse(); p != modalflag.ParseContinue {
//		return err
//	}
//
// After Parse() the Mode() function returns the selected sub-mode. The first
// sub-mode added is the default and is selected when the next argument is not
// the name of any sub-mode. Names are compared without regard to case and
// Mode() always returns the upper-case form.
//
// To parse the flags of the selected mode call NewMode(), add the flags and
// then call Parse() again:
//
//	md.NewMode()
//	width := md.AddInt("width", 640, "width of the window")
//	if p, err := md.Parse(); p != modalflag.ParseContinue {
//		return err
//	}
//
// Arguments that are neither flags nor sub-modes are available with
// RemainingArgs() and GetArg().
//
// Help is printed to Output when the -help flag (or -h) is given. The help
// lists the flags of the current mode and the sub-modes with their
// descriptions. Text added with AdditionalHelp() is printed after that.
package modalflag
