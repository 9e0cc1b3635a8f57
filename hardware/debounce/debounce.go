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

// Package debounce filters the raw levels of the chip's push buttons into
// discrete press events. A press registers only once the input has been held
// high for a minimum number of consecutive ticks and registers only once per
// press, however long the button is held after that.
package debounce

// DefaultLength is the number of consecutive high ticks required before an
// input is treated as a genuine press.
const DefaultLength = 3

// Button debounces a single input line. Each monitored button has its own
// Button instance so that simultaneous presses on different buttons both
// register.
type Button struct {
	length int
	count  int

	// a press has been emitted and the input has not yet returned low
	spent bool
}

// NewButton creates a debounced button requiring the input to be held high
// for length consecutive ticks. A length less than one is clamped to one.
func NewButton(length int) Button {
	if length < 1 {
		length = 1
	}
	return Button{length: length}
}

// SetLength changes the debounce threshold. Takes effect from the next
// Sample().
func (btn *Button) SetLength(length int) {
	if length < 1 {
		length = 1
	}
	btn.length = length
}

// Reset the debounce state, as happens while the chip reset line is held.
func (btn *Button) Reset() {
	btn.count = 0
	btn.spent = false
}

// Sample the raw input level for this tick. Returns true on the one tick the
// press event fires.
func (btn *Button) Sample(raw bool) bool {
	if !raw {
		btn.count = 0
		btn.spent = false
		return false
	}

	if btn.spent {
		return false
	}

	btn.count++
	if btn.count < btn.length {
		return false
	}

	btn.spent = true
	return true
}
