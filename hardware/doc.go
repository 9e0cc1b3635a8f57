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

// Package hardware is the container package for the emulated clock chip.
// The Chip type assembles the sub-components from the packages below it
// (debounce, divider, bcd, and the display pipeline) and steps them in the
// chip's fixed evaluation order, one reference tick at a time.
//
// The emulation is a single synchronous domain. There is no concurrency
// inside the chip: a front-end calls Step() with the current input pin
// levels and receives the output pin levels for that tick. Determinism is
// the point; the same input history always produces the same output history.
package hardware
