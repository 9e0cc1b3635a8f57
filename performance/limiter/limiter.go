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

// Package limiter paces the emulation loop to the chip's reference
// frequency. Front-ends that present the clock in real time call Wait()
// before every chip tick:
//
//	lim := limiter.NewLimiter(60)
//	for {
//		lim.Wait()
//		chip.Step(inp)
//	}
package limiter

import (
	"time"
)

// Limiter triggers at a fixed number of events per second.
type Limiter struct {
	rate     int
	interval time.Duration
	next     time.Time
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(rate int) *Limiter {
	lim := &Limiter{}
	lim.SetLimit(rate)
	lim.next = time.Now()
	return lim
}

// Rate currently limited to.
func (lim *Limiter) Rate() int {
	return lim.rate
}

// SetLimit changes the rate at which Wait() triggers. A no-op if the rate is
// unchanged.
func (lim *Limiter) SetLimit(rate int) {
	if rate == lim.rate {
		return
	}
	lim.rate = rate
	lim.interval = time.Second / time.Duration(rate)
}

// Wait blocks until the next event is due. Timing errors carry over so the
// long-run average rate is exact even though individual sleeps are not.
func (lim *Limiter) Wait() {
	now := time.Now()
	if d := lim.next.Sub(now); d > 0 {
		time.Sleep(d)
	} else if d < -time.Second {
		// too far behind to catch up. drop the debt
		lim.next = now
	}
	lim.next = lim.next.Add(lim.interval)
}
