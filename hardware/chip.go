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

package hardware

import (
	"fmt"

	"github.com/sixseg/ttclock/curated"
	"github.com/sixseg/ttclock/display"
	"github.com/sixseg/ttclock/hardware/bcd"
	"github.com/sixseg/ttclock/hardware/debounce"
	"github.com/sixseg/ttclock/hardware/divider"
	"github.com/sixseg/ttclock/hardware/pins"
	"github.com/sixseg/ttclock/hardware/preferences"
)

// Chip is the emulated BCD clock chip.
type Chip struct {
	Prefs *preferences.Preferences

	Reg  bcd.Register
	Div  divider.Divider
	Scan display.Scanner

	// the three debounced edit buttons
	hours   debounce.Button
	minutes debounce.Button
	seconds debounce.Button
}

// NewChip is the preferred method of initialisation for the Chip type. A nil
// prefs argument selects the chip defaults. The chip starts in the reset
// state, reading 00:00:00.
func NewChip(prefs *preferences.Preferences) (*Chip, error) {
	if prefs == nil {
		prefs = preferences.NewPreferences()
	}
	if err := prefs.Validate(); err != nil {
		return nil, curated.Errorf("hardware: %v", err)
	}

	ch := &Chip{
		Prefs:   prefs,
		hours:   debounce.NewButton(prefs.DebounceLength),
		minutes: debounce.NewButton(prefs.DebounceLength),
		seconds: debounce.NewButton(prefs.DebounceLength),
	}
	ch.Reset()

	return ch, nil
}

// Reset the chip, as the dedicated reset line does: time register to
// 00:00:00, tick and debounce counters to zero, colon and pulse outputs low.
func (ch *Chip) Reset() {
	ch.Reg.Reset()
	ch.Div.Reset()
	ch.Scan.Reset()
	ch.hours.Reset()
	ch.minutes.Reset()
	ch.seconds.Reset()
}

func (ch *Chip) String() string {
	return fmt.Sprintf("%s count=%d colon=%v", ch.Reg.String(), ch.Div.Count, ch.Div.Colon)
}

// Step the chip by one reference tick. Evaluation follows the chip's fixed
// order, making simultaneous-input conflicts deterministic:
//
//  1. sample the raw button levels through the debounce filters
//  2. evaluate the divider, PPS taking priority over the tick count
//  3. apply at most one kind of transition to the time register. the mode
//     level gates which source is honoured: boundary rollover in run mode,
//     debounced edits in set mode
//  4. recompute every output from the just-updated state
//
// While the reset line is asserted the chip holds its reset state and all
// outputs are low. Operation resumes on the first tick after release.
func (ch *Chip) Step(inp pins.Input) pins.Output {
	if inp.Reset {
		ch.Reset()
		return pins.Output{}
	}

	// debounce threshold is a preference and is sampled fresh like any
	// other configuration input
	ch.hours.SetLength(ch.Prefs.DebounceLength)
	ch.minutes.SetLength(ch.Prefs.DebounceLength)
	ch.seconds.SetLength(ch.Prefs.DebounceLength)

	// (1) button sampling. every button is filtered independently so
	// presses arriving on the same tick all register
	hrs := ch.hours.Sample(inp.IncHours)
	mins := ch.minutes.Sample(inp.IncMinutes)
	secs := ch.seconds.Sample(inp.IncSeconds)

	// (2) second boundary detection
	boundary := ch.Div.Step(divider.Divisor(inp.AC50), inp.PPS)

	// (3) register transition. the mode level is read fresh every tick; it
	// is not edge detected and no history is kept
	if inp.SetMode {
		// rollover is suspended entirely while in set mode. edits never
		// cascade. when more than one button fires on the same tick the
		// edits apply in hours, minutes, seconds order
		if hrs {
			ch.Reg.IncHours()
		}
		if mins {
			ch.Reg.IncMinutes()
		}
		if secs {
			ch.Reg.IncSeconds()
		}
	} else if boundary {
		// edit buttons are ignored in run mode. see the note in the
		// package documentation for package bcd on cascade semantics
		ch.Reg.Advance()
	}

	// (4) outputs
	seg, latch, pm := ch.Scan.Step(&ch.Reg, inp.Hour12)

	return pins.Output{
		Segments: seg,
		Latch:    latch,
		Colon:    ch.Div.Colon,
		PM:       pm,
		Pulse:    ch.Div.Pulse,
	}
}
