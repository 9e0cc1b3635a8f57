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

// Package divider derives the one second boundary from the mains-frequency
// reference tick. It also owns the two outputs that are driven directly from
// the boundary: the colon level, toggling once per second, and the
// one-second pulse, high for exactly one tick per second.
//
// An external PPS pulse realigns the second boundary: the tick it is
// observed on becomes a boundary regardless of the tick count, and counting
// restarts from there.
package divider

// Number of reference ticks per second for the two supported mains
// frequencies.
const (
	TicksPerSecond60 = 60
	TicksPerSecond50 = 50
)

// Divisor returns the active tick count for a second, as selected by the
// ac50 input level.
func Divisor(ac50 bool) int {
	if ac50 {
		return TicksPerSecond50
	}
	return TicksPerSecond60
}

// Divider counts reference ticks and emits second boundaries.
type Divider struct {
	// ticks since the last second boundary
	Count int

	// colon level. toggles on every boundary
	Colon bool

	// one-second pulse level. high only on the tick a boundary fired
	Pulse bool
}

// Reset the divider, forcing both outputs low.
func (div *Divider) Reset() {
	div.Count = 0
	div.Colon = false
	div.Pulse = false
}

// Step the divider by one tick. The divisor is sampled fresh on every tick
// so a mains frequency change takes effect immediately; the period spanning
// the change is transitional but every period after it is exact.
//
// A high pps level forces a boundary on this tick, taking priority over the
// tick-count comparison. Returns true if a second boundary fired.
func (div *Divider) Step(divisor int, pps bool) bool {
	boundary := false

	if pps {
		// realign. the comparison below is not consulted at all
		div.Count = 0
		boundary = true
	} else {
		div.Count++

		// equality is not enough: a divisor lowered mid-cycle may already
		// have been overshot by the count
		if div.Count >= divisor {
			div.Count = 0
			boundary = true
		}
	}

	if boundary {
		div.Colon = !div.Colon
	}
	div.Pulse = boundary

	return boundary
}
