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

// Package performance measures how fast the emulation runs when uncapped.
// The clock chip needs only 50 or 60 ticks per wall-clock second, so the
// interesting number is the real-time multiple: how many emulated seconds
// fit into one real one. Optional CPU and memory profiles can be taken
// around the measurement.
package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/sixseg/ttclock/curated"
	"github.com/sixseg/ttclock/hardware"
	"github.com/sixseg/ttclock/hardware/divider"
	"github.com/sixseg/ttclock/hardware/pins"
)

// number of ticks between checks of the duration timer. checking the
// channel on every tick costs more than the tick itself.
const checkBrake = 10000

// Check the performance of the emulation, running the chip uncapped in run
// mode for the specified wall-clock duration.
func Check(output io.Writer, profile Profile, duration string, ac50 bool) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	ch, err := hardware.NewChip(nil)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	inp := pins.Input{AC50: ac50}
	divisor := divider.Divisor(ac50)

	ticks := 0
	pulses := 0

	runner := func() error {
		timesUp := make(chan bool)
		time.AfterFunc(dur, func() {
			timesUp <- true
		})

		brake := 0
		for {
			if ch.Step(inp).Pulse {
				pulses++
			}
			ticks++

			brake++
			if brake >= checkBrake {
				brake = 0
				select {
				case <-timesUp:
					return nil
				default:
				}
			}
		}
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	tps := float64(ticks) / dur.Seconds()
	fmt.Fprintf(output, "%.0f ticks/sec (%d emulated seconds in %.2f wall-clock seconds) %.0fx real-time\n",
		tps, pulses, dur.Seconds(), tps/float64(divisor))

	return nil
}
