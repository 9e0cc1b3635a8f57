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
	"fmt"

	"github.com/sixseg/ttclock/hardware/bcd"
	"github.com/sixseg/ttclock/hardware/pins"
)

// Capture reassembles the displayed time from the chip's multiplexed output
// bus. Feed it the output pins every tick; whenever a latch enable is
// asserted the segment bus is decoded and stored as that digit, which is
// precisely what the latch chips on a real board do.
type Capture struct {
	digits [bcd.NumDigits]uint8

	// most recent colon, pm and pulse levels
	Colon bool
	PM    bool
	Pulse bool
}

// Reset the capture to all zero digits.
func (cap *Capture) Reset() {
	cap.digits = [bcd.NumDigits]uint8{}
	cap.Colon = false
	cap.PM = false
	cap.Pulse = false
}

// Snoop the output pins for one tick.
func (cap *Capture) Snoop(out pins.Output) {
	for d := bcd.Ht; d < bcd.NumDigits; d++ {
		if out.Latch&(1<<uint(d)) != 0 {
			cap.digits[d] = Decode(out.Segments)
		}
	}

	cap.Colon = out.Colon
	cap.PM = out.PM
	cap.Pulse = out.Pulse
}

// Digit returns the most recently latched value for a digit position.
// Returns Invalid if the position has latched a pattern that matches no
// digit.
func (cap Capture) Digit(d bcd.Digit) uint8 {
	return cap.digits[d]
}

// Hours returns the displayed hour pair. Note that in 12-hour mode this is
// the mapped presentation value, not the stored 24-hour value.
func (cap Capture) Hours() int {
	return int(cap.digits[bcd.Ht])*10 + int(cap.digits[bcd.Ho])
}

// Minutes returns the displayed minute pair.
func (cap Capture) Minutes() int {
	return int(cap.digits[bcd.Mt])*10 + int(cap.digits[bcd.Mo])
}

// Seconds returns the displayed second pair.
func (cap Capture) Seconds() int {
	return int(cap.digits[bcd.St])*10 + int(cap.digits[bcd.So])
}

func (cap Capture) String() string {
	colon := " "
	if cap.Colon {
		colon = ":"
	}

	s := fmt.Sprintf("%d%d%s%d%d%s%d%d",
		cap.digits[bcd.Ht], cap.digits[bcd.Ho], colon,
		cap.digits[bcd.Mt], cap.digits[bcd.Mo], colon,
		cap.digits[bcd.St], cap.digits[bcd.So],
	)

	if cap.PM {
		s += " PM"
	}

	return s
}
