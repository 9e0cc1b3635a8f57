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

// Package bcd implements the six digit time register at the heart of the
// clock chip. The register always holds a valid 24-hour time of day, one
// decimal digit per position.
//
// The register offers two styles of mutation. Advance() is the automatic
// rollover used while the clock is running: a carry out of the seconds
// propagates into the minutes and a carry out of the minutes propagates into
// the hours. The Inc*() functions are the manual edits used while the clock
// is being set: each one wraps within its own field and never carries. The
// asymmetry is deliberate and is what stops an operator adjusting the
// minutes from accidentally bumping the hour.
package bcd

import "fmt"

// Digit identifies one of the six digit positions of the register. The
// values double as latch-enable bit numbers on the chip's output bus.
type Digit int

// The six digit positions, most significant first.
const (
	Ht Digit = iota
	Ho
	Mt
	Mo
	St
	So
	NumDigits
)

func (d Digit) String() string {
	switch d {
	case Ht:
		return "Ht"
	case Ho:
		return "Ho"
	case Mt:
		return "Mt"
	case Mo:
		return "Mo"
	case St:
		return "St"
	case So:
		return "So"
	}
	panic("unknown digit position")
}

// Register is the canonical 24-hour time, stored as six decimal digits.
// The zero value is a valid register reading 00:00:00.
type Register struct {
	digits [NumDigits]uint8
}

// Reset the register to 00:00:00.
func (reg *Register) Reset() {
	reg.digits = [NumDigits]uint8{}
}

// Digit returns the value of a single digit position.
func (reg Register) Digit(d Digit) uint8 {
	return reg.digits[d]
}

// Hours returns the 24-hour value of the hour digit pair.
func (reg Register) Hours() int {
	return int(reg.digits[Ht])*10 + int(reg.digits[Ho])
}

// Minutes returns the value of the minute digit pair.
func (reg Register) Minutes() int {
	return int(reg.digits[Mt])*10 + int(reg.digits[Mo])
}

// Seconds returns the value of the second digit pair.
func (reg Register) Seconds() int {
	return int(reg.digits[St])*10 + int(reg.digits[So])
}

func (reg Register) String() string {
	return fmt.Sprintf("%d%d:%d%d:%d%d",
		reg.digits[Ht], reg.digits[Ho],
		reg.digits[Mt], reg.digits[Mo],
		reg.digits[St], reg.digits[So],
	)
}

// incPair increments a ones/tens digit pair, the ones digit wrapping at ten
// and the pair wrapping when the tens digit reaches tensWrap. Returns true
// if the pair wrapped to zero.
func (reg *Register) incPair(tens Digit, ones Digit, tensWrap uint8) bool {
	reg.digits[ones]++
	if reg.digits[ones] < 10 {
		return false
	}
	reg.digits[ones] = 0

	reg.digits[tens]++
	if reg.digits[tens] < tensWrap {
		return false
	}
	reg.digits[tens] = 0

	return true
}

// IncSeconds adds one second, wrapping 59 to 00. No carry into the minutes.
// Returns true if the seconds wrapped.
func (reg *Register) IncSeconds() bool {
	return reg.incPair(St, So, 6)
}

// IncMinutes adds one minute, wrapping 59 to 00. No carry into the hours.
// Returns true if the minutes wrapped.
func (reg *Register) IncMinutes() bool {
	return reg.incPair(Mt, Mo, 6)
}

// IncHours adds one hour, wrapping 23 to 00. Returns true if the hours
// wrapped.
func (reg *Register) IncHours() bool {
	reg.digits[Ho]++

	// the ones digit wraps at ten except in the final hour of the day when
	// the pair wraps together
	if reg.digits[Ht] == 2 && reg.digits[Ho] == 4 {
		reg.digits[Ht] = 0
		reg.digits[Ho] = 0
		return true
	}

	if reg.digits[Ho] == 10 {
		reg.digits[Ho] = 0
		reg.digits[Ht]++
	}

	return false
}

// Advance the register by one second with full carry propagation. This is
// the rollover applied on every second boundary while the clock is running.
func (reg *Register) Advance() {
	if !reg.IncSeconds() {
		return
	}
	if !reg.IncMinutes() {
		return
	}
	reg.IncHours()
}
