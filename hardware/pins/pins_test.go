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

package pins_test

import (
	"testing"

	"github.com/sixseg/ttclock/hardware/pins"
	"github.com/sixseg/ttclock/test"
)

func TestInputEncoding(t *testing.T) {
	// bit assignments as documented for the chip harness
	test.ExpectEquality(t, pins.Input{PPS: true}.Pack(), uint8(0x01))
	test.ExpectEquality(t, pins.Input{SetMode: true}.Pack(), uint8(0x02))
	test.ExpectEquality(t, pins.Input{IncHours: true}.Pack(), uint8(0x04))
	test.ExpectEquality(t, pins.Input{IncMinutes: true}.Pack(), uint8(0x08))
	test.ExpectEquality(t, pins.Input{IncSeconds: true}.Pack(), uint8(0x10))
	test.ExpectEquality(t, pins.Input{AC50: true}.Pack(), uint8(0x20))
	test.ExpectEquality(t, pins.Input{Hour12: true}.Pack(), uint8(0x40))

	// the reset line is not part of the packed byte
	test.ExpectEquality(t, pins.Input{Reset: true}.Pack(), uint8(0x00))

	// the spare bit is ignored on unpack
	test.ExpectEquality(t, pins.Unpack(0x80), pins.Input{})

	inp := pins.Unpack(0x32)
	test.ExpectSuccess(t, inp.SetMode)
	test.ExpectSuccess(t, inp.IncSeconds)
	test.ExpectSuccess(t, inp.AC50)
	test.ExpectFailure(t, inp.PPS)
}

func TestOutputEncoding(t *testing.T) {
	out := pins.Output{Segments: 0x7e, Colon: true}
	test.ExpectEquality(t, out.UO(), uint8(0xfe))

	out = pins.Output{Latch: 0x01, PM: true, Pulse: true}
	test.ExpectEquality(t, out.UIO(), uint8(0xc1))

	// stray high bits in the segment and latch fields never leak into the
	// packed bytes
	out = pins.Output{Segments: 0xff, Latch: 0xff}
	test.ExpectEquality(t, out.UO(), uint8(0x7f))
	test.ExpectEquality(t, out.UIO(), uint8(0x3f))
}
