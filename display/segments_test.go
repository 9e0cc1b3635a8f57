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
	"testing"

	"github.com/sixseg/ttclock/display"
	"github.com/sixseg/ttclock/test"
)

func TestFont(t *testing.T) {
	// the exact patterns the chip drives, a in bit 6 through g in bit 0
	expected := []uint8{
		0b1111110, // 0
		0b0110000, // 1
		0b1101101, // 2
		0b1111001, // 3
		0b0110011, // 4
		0b1011011, // 5
		0b1011111, // 6
		0b1110000, // 7
		0b1111111, // 8
		0b1111011, // 9
	}

	for v := uint8(0); v <= 9; v++ {
		test.ExpectEquality(t, display.Encode(v), expected[v])
	}
}

func TestEncodeOutOfRange(t *testing.T) {
	test.ExpectEquality(t, display.Encode(10), uint8(display.Blank))
	test.ExpectEquality(t, display.Encode(255), uint8(display.Blank))
}

func TestDecode(t *testing.T) {
	// every digit round-trips
	for v := uint8(0); v <= 9; v++ {
		test.ExpectEquality(t, display.Decode(display.Encode(v)), v)
	}

	// patterns that match no digit decode to the invalid sentinel rather
	// than a misleading value
	test.ExpectEquality(t, display.Decode(display.Blank), display.Invalid)
	test.ExpectEquality(t, display.Decode(0b1001001), display.Invalid)

	// the colon bit riding above the segment bus is masked off
	test.ExpectEquality(t, display.Decode(0x80|display.Encode(7)), uint8(7))
}
