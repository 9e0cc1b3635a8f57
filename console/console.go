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

// Package console is the terminal front-end for the emulated clock. The
// display is redrawn in place with ANSI sequences and single keypresses
// stand in for the chip's buttons and switches:
//
//	h/m/s   press the hour/minute/second edit button
//	e       toggle the set mode level
//	t       toggle 12/24 hour display
//	5/6     select the 50Hz/60Hz reference
//	p       fire a PPS pulse
//	r       pulse the reset line
//	v       dump the chip state graph to a dot file
//	q       quit
//
// A keyboard delivers discrete keypresses rather than held levels, so a
// button key drives the corresponding input line high for exactly the
// debounce length: long enough to register, and a second press is a second
// press.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/sixseg/ttclock/display"
	"github.com/sixseg/ttclock/hardware"
	"github.com/sixseg/ttclock/hardware/divider"
	"github.com/sixseg/ttclock/hardware/pins"
	"github.com/sixseg/ttclock/logger"
	"github.com/sixseg/ttclock/performance/limiter"
)

// filename used by the state dump key.
const vizFilename = "chipstate.dot"

// ansi sequences used for the in-place redraw.
const (
	ansiClearLine = "\033[2K\r"
	ansiBold      = "\033[1m"
	ansiNormal    = "\033[0m"
)

// Console is the terminal front-end.
type Console struct {
	chip *hardware.Chip
	term terminal
	out  io.Writer

	// input levels presented to the chip on the next tick
	inp pins.Input

	// remaining ticks to hold each momentary line high
	holdHours   int
	holdMinutes int
	holdSeconds int
	holdReset   int
	holdPPS     int

	cap display.Capture

	// most recent rendering. redraws only happen on change
	lastLine string
}

// NewConsole is the preferred method of initialisation for the Console
// type. The input file is expected to be a terminal.
func NewConsole(chip *hardware.Chip, ac50 bool, hour12 bool) (*Console, error) {
	con := &Console{
		chip: chip,
		out:  os.Stdout,
	}
	con.inp.AC50 = ac50
	con.inp.Hour12 = hour12

	if err := con.term.initialise(os.Stdin); err != nil {
		return nil, err
	}

	return con, nil
}

// Run the console until the quit key is pressed. The terminal is restored
// on return.
func (con *Console) Run() error {
	if err := con.term.cbreakMode(); err != nil {
		return err
	}
	defer func() {
		con.term.canonicalMode()
		fmt.Fprintln(con.out)
	}()

	// keypresses are read in a separate goroutine. the emulation loop polls
	// the channel between ticks
	keys := make(chan byte, 8)
	go func() {
		b := make([]byte, 1)
		for {
			n, err := os.Stdin.Read(b)
			if err != nil {
				return
			}
			if n == 1 {
				keys <- b[0]
			}
		}
	}()

	lim := limiter.NewLimiter(divider.Divisor(con.inp.AC50))

	for {
		lim.Wait()

		select {
		case k := <-keys:
			quit, err := con.service(k)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		default:
		}

		con.cap.Snoop(con.chip.Step(con.levels()))
		lim.SetLimit(divider.Divisor(con.inp.AC50))

		con.render()
	}
}

// service a single keypress.
func (con *Console) service(k byte) (bool, error) {
	hold := con.chip.Prefs.DebounceLength

	switch k {
	case 'q', 3: // ctrl-c arrives as a plain byte in cbreak mode
		return true, nil
	case 'h':
		con.holdHours = hold
	case 'm':
		con.holdMinutes = hold
	case 's':
		con.holdSeconds = hold
	case 'e':
		con.inp.SetMode = !con.inp.SetMode
	case 't':
		con.inp.Hour12 = !con.inp.Hour12
	case '5':
		con.inp.AC50 = true
	case '6':
		con.inp.AC50 = false
	case 'p':
		con.holdPPS = 1
	case 'r':
		con.holdReset = 1
	case 'v':
		if err := dumpState(con.chip, vizFilename); err != nil {
			return false, err
		}
		logger.Logf("console", "chip state written to %s", vizFilename)
	}

	return false, nil
}

// levels assembles the input pin levels for the next tick, counting down the
// momentary holds.
func (con *Console) levels() pins.Input {
	inp := con.inp

	inp.IncHours = con.holdHours > 0
	inp.IncMinutes = con.holdMinutes > 0
	inp.IncSeconds = con.holdSeconds > 0
	inp.PPS = con.holdPPS > 0
	inp.Reset = con.holdReset > 0

	if con.holdHours > 0 {
		con.holdHours--
	}
	if con.holdMinutes > 0 {
		con.holdMinutes--
	}
	if con.holdSeconds > 0 {
		con.holdSeconds--
	}
	if con.holdPPS > 0 {
		con.holdPPS--
	}
	if con.holdReset > 0 {
		con.holdReset--
	}

	return inp
}

func (con *Console) render() {
	mode := "run"
	if con.inp.SetMode {
		mode = "SET"
	}

	hz := "60Hz"
	if con.inp.AC50 {
		hz = "50Hz"
	}

	line := fmt.Sprintf("%s%s%s  %s %s", ansiBold, con.cap.String(), ansiNormal, mode, hz)
	if line == con.lastLine {
		return
	}
	con.lastLine = line

	fmt.Fprintf(con.out, "%s%s", ansiClearLine, line)
}
