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

// Segment masks for the 7-segment bus, active high. Conventional layout: a
// is the top bar, g the middle bar, segments running clockwise from a.
const (
	SegA = 0b1000000
	SegB = 0b0100000
	SegC = 0b0010000
	SegD = 0b0001000
	SegE = 0b0000100
	SegF = 0b0000010
	SegG = 0b0000001
)

// Blank is the segment pattern produced for a value the encoder cannot
// render. All segments off is distinguishable from every digit, including
// zero.
const Blank = 0x00

// Invalid is returned by Decode for a pattern that matches no digit.
const Invalid = uint8(0xf)

// the conventional 7-segment font, indexed by digit value.
var font = [10]uint8{
	SegA | SegB | SegC | SegD | SegE | SegF,        // 0
	SegB | SegC,                                    // 1
	SegA | SegB | SegD | SegE | SegG,               // 2
	SegA | SegB | SegC | SegD | SegG,               // 3
	SegB | SegC | SegF | SegG,                      // 4
	SegA | SegC | SegD | SegF | SegG,               // 5
	SegA | SegC | SegD | SegE | SegF | SegG,        // 6
	SegA | SegB | SegC,                             // 7
	SegA | SegB | SegC | SegD | SegE | SegF | SegG, // 8
	SegA | SegB | SegC | SegD | SegF | SegG,        // 9
}

// Encode a decimal digit to its active-high segment pattern. Values outside
// 0 to 9 produce the Blank pattern; by construction of the time register the
// chip itself never asks for one.
func Encode(v uint8) uint8 {
	if v > 9 {
		return Blank
	}
	return font[v]
}

// Decode a segment pattern back to a decimal digit. Patterns that match no
// digit decode to Invalid.
func Decode(pattern uint8) uint8 {
	pattern &= 0x7f
	for v, p := range font {
		if p == pattern {
			return uint8(v)
		}
	}
	return Invalid
}
