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

package debounce_test

import (
	"testing"

	"github.com/sixseg/ttclock/hardware/debounce"
	"github.com/sixseg/ttclock/test"
)

// hold the button high for a number of ticks, returning how many press
// events fired.
func hold(btn *debounce.Button, ticks int) int {
	presses := 0
	for i := 0; i < ticks; i++ {
		if btn.Sample(true) {
			presses++
		}
	}
	return presses
}

func TestGlitchRejection(t *testing.T) {
	btn := debounce.NewButton(3)

	// two-tick glitch. shorter than the threshold so no press
	test.ExpectEquality(t, hold(&btn, 2), 0)
	test.ExpectFailure(t, btn.Sample(false))

	// one-tick glitches separated by low ticks never accumulate
	for i := 0; i < 10; i++ {
		test.ExpectFailure(t, btn.Sample(true))
		test.ExpectFailure(t, btn.Sample(false))
	}
}

func TestValidPress(t *testing.T) {
	btn := debounce.NewButton(3)

	// exactly the threshold gives exactly one press, on the final tick
	test.ExpectFailure(t, btn.Sample(true))
	test.ExpectFailure(t, btn.Sample(true))
	test.ExpectSuccess(t, btn.Sample(true))

	// holding beyond the threshold never repeats
	test.ExpectEquality(t, hold(&btn, 100), 0)

	// release and press again
	test.ExpectFailure(t, btn.Sample(false))
	test.ExpectEquality(t, hold(&btn, 5), 1)
}

func TestIndependentButtons(t *testing.T) {
	a := debounce.NewButton(3)
	b := debounce.NewButton(3)

	// simultaneous presses on distinct buttons both register
	for i := 0; i < 2; i++ {
		test.ExpectFailure(t, a.Sample(true))
		test.ExpectFailure(t, b.Sample(true))
	}
	test.ExpectSuccess(t, a.Sample(true))
	test.ExpectSuccess(t, b.Sample(true))
}

func TestReset(t *testing.T) {
	btn := debounce.NewButton(3)

	btn.Sample(true)
	btn.Sample(true)
	btn.Reset()

	// counting starts over after a reset
	test.ExpectFailure(t, btn.Sample(true))
	test.ExpectFailure(t, btn.Sample(true))
	test.ExpectSuccess(t, btn.Sample(true))
}
