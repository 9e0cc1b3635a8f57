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

package display

import (
	"github.com/sixseg/ttclock/hardware/bcd"
)

// Scanner time-multiplexes the six digits onto the shared segment bus. One
// digit position is driven per tick, in a fixed rotation, its latch enable
// asserted alongside its segment pattern. The rotation means the full
// display refreshes every six ticks, ten times a second at the slowest
// reference frequency.
type Scanner struct {
	pos bcd.Digit
}

// Reset the scanner to the first digit position.
func (sc *Scanner) Reset() {
	sc.pos = bcd.Ht
}

// Step the scanner by one tick. The segment pattern for the current digit is
// returned together with the one-hot latch enable selecting it. A digit's
// pattern is never presented under any other latch enable.
//
// The hour digits are passed through the 12/24 hour mapping before encoding;
// pm is valid regardless of which digit is being driven this tick.
func (sc *Scanner) Step(reg *bcd.Register, hour12 bool) (seg uint8, latch uint8, pm bool) {
	ht, ho, pm := MapHours(reg.Hours(), hour12)

	var v uint8
	switch sc.pos {
	case bcd.Ht:
		v = ht
	case bcd.Ho:
		v = ho
	default:
		v = reg.Digit(sc.pos)
	}

	seg = Encode(v)
	latch = 1 << uint(sc.pos)

	sc.pos++
	if sc.pos >= bcd.NumDigits {
		sc.pos = bcd.Ht
	}

	return seg, latch, pm
}
