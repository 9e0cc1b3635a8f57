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

package display_test

import (
	"math/bits"
	"testing"

	"github.com/sixseg/ttclock/display"
	"github.com/sixseg/ttclock/hardware/bcd"
	"github.com/sixseg/ttclock/hardware/pins"
	"github.com/sixseg/ttclock/test"
)

func TestScanOrder(t *testing.T) {
	var reg bcd.Register
	var sc display.Scanner
	sc.Reset()

	// exactly one latch enable per tick, each position once per six ticks
	seen := uint8(0)
	for i := 0; i < int(bcd.NumDigits); i++ {
		_, latch, _ := sc.Step(&reg, false)
		test.ExpectEquality(t, bits.OnesCount8(latch), 1)
		test.ExpectEquality(t, seen&latch, uint8(0))
		seen |= latch
	}
	test.ExpectEquality(t, seen, uint8(0x3f))
}

func TestScanContent(t *testing.T) {
	var reg bcd.Register
	var sc display.Scanner
	sc.Reset()

	// 19:00:00
	for i := 0; i < 19; i++ {
		reg.IncHours()
	}

	// each digit's pattern appears only under its own latch enable
	for i := 0; i < int(bcd.NumDigits); i++ {
		seg, latch, _ := sc.Step(&reg, false)
		d := bcd.Digit(bits.TrailingZeros8(latch))
		test.ExpectEquality(t, display.Decode(seg), reg.Digit(d))
	}
}

func TestCapture(t *testing.T) {
	var reg bcd.Register
	var sc display.Scanner
	var cap display.Capture
	sc.Reset()
	cap.Reset()

	// 13:37:00
	for i := 0; i < 13; i++ {
		reg.IncHours()
	}
	for i := 0; i < 37; i++ {
		reg.IncMinutes()
	}

	// a snooper sampling continuously reconstructs the full displayed time
	// after one rotation
	for i := 0; i < int(bcd.NumDigits); i++ {
		seg, latch, pm := sc.Step(&reg, true)
		cap.Snoop(pins.Output{Segments: seg, Latch: latch, PM: pm})
	}

	// 12-hour presentation of 13:37
	test.ExpectEquality(t, cap.Hours(), 1)
	test.ExpectEquality(t, cap.Minutes(), 37)
	test.ExpectEquality(t, cap.Seconds(), 0)
	test.ExpectSuccess(t, cap.PM)
	test.ExpectEquality(t, cap.String(), "01 37 00 PM")
}
