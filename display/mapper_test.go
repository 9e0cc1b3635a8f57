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

func Test24HourPassthrough(t *testing.T) {
	for h := 0; h < 24; h++ {
		ht, ho, pm := display.MapHours(h, false)
		test.ExpectEquality(t, int(ht), h/10)
		test.ExpectEquality(t, int(ho), h%10)
		test.ExpectFailure(t, pm)
	}
}

func Test12HourMapping(t *testing.T) {
	// 13:00 displays as 01 PM
	ht, ho, pm := display.MapHours(13, true)
	test.ExpectEquality(t, ht, uint8(0))
	test.ExpectEquality(t, ho, uint8(1))
	test.ExpectSuccess(t, pm)

	// midnight displays as 12 AM
	ht, ho, pm = display.MapHours(0, true)
	test.ExpectEquality(t, ht, uint8(1))
	test.ExpectEquality(t, ho, uint8(2))
	test.ExpectFailure(t, pm)

	// noon displays as 12 PM
	ht, ho, pm = display.MapHours(12, true)
	test.ExpectEquality(t, ht, uint8(1))
	test.ExpectEquality(t, ho, uint8(2))
	test.ExpectSuccess(t, pm)

	// 11:00 displays as 11 AM
	ht, ho, pm = display.MapHours(11, true)
	test.ExpectEquality(t, ht, uint8(1))
	test.ExpectEquality(t, ho, uint8(1))
	test.ExpectFailure(t, pm)

	// 23:00 displays as 11 PM
	ht, ho, pm = display.MapHours(23, true)
	test.ExpectEquality(t, ht, uint8(1))
	test.ExpectEquality(t, ho, uint8(1))
	test.ExpectSuccess(t, pm)
}
