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
	"flag"
	"fmt"
	"io"
	"strings"
)

func (md *Modes) writeHelp() {
	if md.Output == nil {
		return
	}

	var b strings.Builder

	if p := md.Path(); p != "" {
		fmt.Fprintf(&b, "Usage of %s mode:\n", p)
	} else {
		b.WriteString("Usage:\n")
	}

	var numFlags int
	md.flags.VisitAll(func(_ *flag.Flag) {
		numFlags++
	})

	if numFlags == 0 && len(md.subModes) == 0 {
		b.WriteString("  no flags or modes\n")
	}

	if numFlags > 0 {
		md.flags.SetOutput(&b)
		md.flags.PrintDefaults()
		md.flags.SetOutput(io.Discard)
	}

	if len(md.subModes) > 0 {
		if numFlags > 0 {
			b.WriteString("\n")
		}
		b.WriteString("  modes:\n")

		var w int
		for _, m := range md.subModes {
			w = max(w, len(m.name))
		}

		for i, m := range md.subModes {
			s := fmt.Sprintf("    %-*s  %s", w, m.name, m.description)
			if i == 0 {
				s = fmt.Sprintf("%s (default)", strings.TrimRight(s, " "))
			}
			b.WriteString(strings.TrimRight(s, " "))
			b.WriteString("\n")
		}
	}

	if md.help != "" {
		b.WriteString("\n")
		b.WriteString(strings.TrimRight(md.help, "\n"))
		b.WriteString("\n")
	}

	fmt.Fprint(md.Output, b.String())
}
