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

// Package display implements the display side of the clock chip: the 12/24
// hour presentation mapping, the 7-segment encoder and the digit scanner
// that time-multiplexes the six digits onto the shared segment bus.
//
// The package also provides Capture, the host-side counterpart of the
// scanner. Front-ends and tests feed it the chip's output pins every tick
// and it reassembles the six displayed digits, exactly as the latch chips on
// a real board would.
//
// Nothing in this package ever writes to the time register. The display is
// strictly downstream of the clock.
package display
