// This file is part of TTClock.
//
// TTClock is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// TTClock is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with TTClock.  If not, see <https://www.gnu.org/licenses/>.

package console

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/sixseg/ttclock/curated"
)

// terminal wraps "github.com/pkg/term/termios", giving the termios calls
// friendlier names and remembering the attributes needed to restore the
// terminal on exit.
type terminal struct {
	input *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

func (trm *terminal) initialise(input *os.File) error {
	trm.input = input

	if err := termios.Tcgetattr(input.Fd(), &trm.canAttr); err != nil {
		return curated.Errorf("console: %v", err)
	}

	trm.cbreakAttr = trm.canAttr
	termios.Cfmakecbreak(&trm.cbreakAttr)

	return nil
}

// cbreakMode puts the terminal into cbreak mode: no line buffering and no
// echo, but signal keys still work.
func (trm *terminal) cbreakMode() error {
	if err := termios.Tcsetattr(trm.input.Fd(), termios.TCSANOW, &trm.cbreakAttr); err != nil {
		return curated.Errorf("console: %v", err)
	}
	return nil
}

// canonicalMode restores the terminal attributes recorded at initialise.
func (trm *terminal) canonicalMode() error {
	if err := termios.Tcsetattr(trm.input.Fd(), termios.TCSANOW, &trm.canAttr); err != nil {
		return curated.Errorf("console: %v", err)
	}
	return nil
}
