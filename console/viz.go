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
	"bytes"
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/sixseg/ttclock/curated"
	"github.com/sixseg/ttclock/hardware"
)

// dumpState writes the live chip state as a Graphviz graph. Render it with:
//
//	dot -Tsvg chipstate.dot -o chipstate.svg
func dumpState(chip *hardware.Chip, filename string) error {
	b := &bytes.Buffer{}
	memviz.Map(b, chip)

	if err := os.WriteFile(filename, b.Bytes(), 0644); err != nil {
		return curated.Errorf("console: %v", err)
	}

	return nil
}
