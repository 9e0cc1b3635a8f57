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

package hardware_test

import (
	"testing"

	"github.com/sixseg/ttclock/display"
	"github.com/sixseg/ttclock/hardware"
	"github.com/sixseg/ttclock/hardware/pins"
	"github.com/sixseg/ttclock/hardware/preferences"
	"github.com/sixseg/ttclock/test"
)

// step the chip for a number of ticks with the input levels held constant.
// the last output is returned.
func run(ch *hardware.Chip, inp pins.Input, ticks int) pins.Output {
	var out pins.Output
	for i := 0; i < ticks; i++ {
		out = ch.Step(inp)
	}
	return out
}

// press holds a button level high for the given number of ticks and then
// releases it for three ticks, stepping the chip throughout.
func press(ch *hardware.Chip, inp pins.Input, set func(*pins.Input, bool), ticks int) {
	set(&inp, true)
	run(ch, inp, ticks)
	set(&inp, false)
	run(ch, inp, 3)
}

// step the chip until the colon changes level, returning the tick count.
func ticksToToggle(ch *hardware.Chip, inp pins.Input) int {
	colon := ch.Div.Colon
	ticks := 0
	for ch.Div.Colon == colon {
		ch.Step(inp)
		ticks++
		if ticks > 1000 {
			panic("colon is not toggling")
		}
	}
	return ticks
}

func TestResetState(t *testing.T) {
	ch, err := hardware.NewChip(nil)
	test.ExpectSuccess(t, err)

	// run for a while then hold reset
	run(ch, pins.Input{}, 500)
	out := run(ch, pins.Input{Reset: true}, 10)

	// all outputs low while reset is held
	test.ExpectEquality(t, out, pins.Output{})
	test.ExpectEquality(t, ch.Reg.String(), "00:00:00")

	// operation resumes the tick after release: colon toggles at tick 60
	// exactly
	test.ExpectEquality(t, ticksToToggle(ch, pins.Input{}), 60)
}

func TestRunModeTimekeeping(t *testing.T) {
	ch, err := hardware.NewChip(nil)
	test.ExpectSuccess(t, err)

	// over two full seconds exactly two one-tick pulses are observed
	pulses := 0
	for i := 0; i < 120; i++ {
		if ch.Step(pins.Input{}).Pulse {
			pulses++
		}
	}
	test.ExpectEquality(t, pulses, 2)
	test.ExpectEquality(t, ch.Reg.Seconds(), 2)

	// a full emulated minute cascades into the minutes field
	run(ch, pins.Input{}, 58*60)
	test.ExpectEquality(t, ch.Reg.String(), "00:01:00")
}

func TestFrequencySelect(t *testing.T) {
	ch, err := hardware.NewChip(nil)
	test.ExpectSuccess(t, err)

	// 60Hz reference: colon toggles at tick 60 exactly
	test.ExpectEquality(t, ticksToToggle(ch, pins.Input{}), 60)

	// switch to 50Hz. the period spanning the change is transitional
	transitional := ticksToToggle(ch, pins.Input{AC50: true})
	test.ExpectSuccess(t, transitional >= 47 && transitional <= 53)

	// exact 50 tick periods thereafter
	test.ExpectEquality(t, ticksToToggle(ch, pins.Input{AC50: true}), 50)
	test.ExpectEquality(t, ticksToToggle(ch, pins.Input{AC50: true}), 50)
}

func TestDebouncedEdits(t *testing.T) {
	ch, err := hardware.NewChip(nil)
	test.ExpectSuccess(t, err)

	setMode := pins.Input{SetMode: true}

	// a one-tick glitch on the seconds button leaves the register unchanged
	press(ch, setMode, func(inp *pins.Input, v bool) { inp.IncSeconds = v }, 1)
	test.ExpectEquality(t, ch.Reg.Seconds(), 0)

	// a three-tick press increments the seconds by exactly one, with no
	// effect on the minutes
	press(ch, setMode, func(inp *pins.Input, v bool) { inp.IncSeconds = v }, 3)
	test.ExpectEquality(t, ch.Reg.Seconds(), 1)
	test.ExpectEquality(t, ch.Reg.Minutes(), 0)

	// holding the button never repeats the edit
	press(ch, setMode, func(inp *pins.Input, v bool) { inp.IncSeconds = v }, 200)
	test.ExpectEquality(t, ch.Reg.Seconds(), 2)
}

func TestNoCascadeInSetMode(t *testing.T) {
	ch, err := hardware.NewChip(nil)
	test.ExpectSuccess(t, err)

	setMode := pins.Input{SetMode: true}
	incMinutes := func(inp *pins.Input, v bool) { inp.IncMinutes = v }
	incSeconds := func(inp *pins.Input, v bool) { inp.IncSeconds = v }
	incHours := func(inp *pins.Input, v bool) { inp.IncHours = v }

	// bring the minutes to 59
	for i := 0; i < 59; i++ {
		press(ch, setMode, incMinutes, 3)
	}
	test.ExpectEquality(t, ch.Reg.Minutes(), 59)

	// minutes wrap to 00 with hours untouched
	press(ch, setMode, incMinutes, 3)
	test.ExpectEquality(t, ch.Reg.Minutes(), 0)
	test.ExpectEquality(t, ch.Reg.Hours(), 0)

	// seconds wrap to 00 with minutes untouched
	for i := 0; i < 60; i++ {
		press(ch, setMode, incSeconds, 3)
	}
	test.ExpectEquality(t, ch.Reg.Seconds(), 0)
	test.ExpectEquality(t, ch.Reg.Minutes(), 0)

	// hours wrap after 23
	for i := 0; i < 24; i++ {
		press(ch, setMode, incHours, 3)
	}
	test.ExpectEquality(t, ch.Reg.Hours(), 0)
}

func TestTimeFrozenInSetMode(t *testing.T) {
	ch, err := hardware.NewChip(nil)
	test.ExpectSuccess(t, err)

	// rollover is suspended for as long as the mode level is high, however
	// many second boundaries pass
	run(ch, pins.Input{SetMode: true}, 600)
	test.ExpectEquality(t, ch.Reg.String(), "00:00:00")

	// the mode line is level sensitive: dropping it resumes the clock the
	// same tick
	run(ch, pins.Input{}, 60)
	test.ExpectEquality(t, ch.Reg.Seconds(), 1)
}

func TestEditButtonsIgnoredInRunMode(t *testing.T) {
	ch, err := hardware.NewChip(nil)
	test.ExpectSuccess(t, err)

	// a held button in run mode changes nothing but the passage of time
	run(ch, pins.Input{IncHours: true}, 60)
	test.ExpectEquality(t, ch.Reg.Hours(), 0)
	test.ExpectEquality(t, ch.Reg.Seconds(), 1)

	// and the press does not fire retroactively when set mode is entered
	run(ch, pins.Input{SetMode: true, IncHours: true}, 1)
	run(ch, pins.Input{SetMode: true}, 3)
	test.ExpectEquality(t, ch.Reg.Hours(), 0)
}

func TestPPSPriority(t *testing.T) {
	ch, err := hardware.NewChip(nil)
	test.ExpectSuccess(t, err)

	// move the divider to an arbitrary phase
	run(ch, pins.Input{}, 42)

	// a one-tick pps pulse realigns the second boundary: the colon toggles
	// on the pps tick itself
	colon := ch.Div.Colon
	out := ch.Step(pins.Input{PPS: true})
	test.ExpectInequality(t, out.Colon, colon)
	test.ExpectSuccess(t, out.Pulse)

	// and the seconds advanced with the forced boundary
	test.ExpectEquality(t, ch.Reg.Seconds(), 1)

	// the next boundary is a full second after the pps tick
	test.ExpectEquality(t, ticksToToggle(ch, pins.Input{}), 60)
}

func TestDisplayThroughPins(t *testing.T) {
	ch, err := hardware.NewChip(nil)
	test.ExpectSuccess(t, err)

	setMode := pins.Input{SetMode: true}
	incHours := func(inp *pins.Input, v bool) { inp.IncHours = v }

	// set the register to 13:00
	for i := 0; i < 13; i++ {
		press(ch, setMode, incHours, 3)
	}

	// snoop the output bus in 12-hour mode for a full scan rotation
	var cap display.Capture
	for i := 0; i < 6; i++ {
		cap.Snoop(ch.Step(pins.Input{SetMode: true, Hour12: true}))
	}
	test.ExpectEquality(t, cap.Hours(), 1)
	test.ExpectSuccess(t, cap.PM)

	// and in 24-hour mode
	for i := 0; i < 6; i++ {
		cap.Snoop(ch.Step(pins.Input{SetMode: true}))
	}
	test.ExpectEquality(t, cap.Hours(), 13)
	test.ExpectFailure(t, cap.PM)
}

func TestDebouncePreference(t *testing.T) {
	// invalid preferences are rejected at creation
	_, err := hardware.NewChip(&preferences.Preferences{})
	test.ExpectFailure(t, err)

	ch, err := hardware.NewChip(nil)
	test.ExpectSuccess(t, err)

	// a longer debounce length means a three-tick press is now a glitch
	ch.Prefs.DebounceLength = 5
	press(ch, pins.Input{SetMode: true}, func(inp *pins.Input, v bool) { inp.IncSeconds = v }, 3)
	test.ExpectEquality(t, ch.Reg.Seconds(), 0)

	press(ch, pins.Input{SetMode: true}, func(inp *pins.Input, v bool) { inp.IncSeconds = v }, 5)
	test.ExpectEquality(t, ch.Reg.Seconds(), 1)
}
