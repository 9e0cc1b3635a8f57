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

// Package preferences holds the adjustable parameters of the emulated chip.
// These model fabrication-time constants rather than anything an operator of
// the real clock could change, so they are plain values with no persistence.
package preferences

import (
	"github.com/sixseg/ttclock/curated"
	"github.com/sixseg/ttclock/hardware/debounce"
)

// Preferences for the emulated chip.
type Preferences struct {
	// number of consecutive high ticks before a button press registers
	DebounceLength int
}

// NewPreferences with every value at its chip default.
func NewPreferences() *Preferences {
	return &Preferences{
		DebounceLength: debounce.DefaultLength,
	}
}

// Validate the preference values.
func (prf *Preferences) Validate() error {
	if prf.DebounceLength < 1 {
		return curated.Errorf("preferences: debounce length must be at least one tick (%d)", prf.DebounceLength)
	}
	return nil
}
