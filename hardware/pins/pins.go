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

// Package pins defines the external interface of the clock chip: the levels
// presented to the input pins before a tick and the levels on the output
// pins after it.
//
// The bit assignments of the packed forms follow the physical chip. Input
// pins pack into the ui_in byte:
//
//	bit 0   PPS resync pulse
//	bit 1   set_mode level (0=run, 1=set)
//	bit 2   inc_hours button
//	bit 3   inc_minutes button
//	bit 4   inc_seconds button
//	bit 5   ac50_sel (0=60 ticks/s, 1=50 ticks/s)
//	bit 6   hour_12 (0=24h display, 1=12h display)
//	bit 7   spare (ignored)
//
// Output pins pack into two bytes. uo_out:
//
//	bits 6-0  segments {a,b,c,d,e,f,g}, active high, a in bit 6
//	bit 7     colon level
//
// and uio_out:
//
//	bits 5-0  digit latch enables {Ht,Ho,Mt,Mo,St,So}, Ht in bit 0
//	bit 6     PM flag
//	bit 7     one-second pulse
//
// Reset is a dedicated line on the chip harness and is not part of the
// packed input byte.
package pins

// Input is the level on every input pin, sampled at the top of a tick.
type Input struct {
	PPS        bool
	SetMode    bool
	IncHours   bool
	IncMinutes bool
	IncSeconds bool
	AC50       bool
	Hour12     bool

	// dedicated reset line. not part of the ui_in byte
	Reset bool
}

// masks for the packed ui_in byte.
const (
	MaskPPS        = 0b00000001
	MaskSetMode    = 0b00000010
	MaskIncHours   = 0b00000100
	MaskIncMinutes = 0b00001000
	MaskIncSeconds = 0b00010000
	MaskAC50       = 0b00100000
	MaskHour12     = 0b01000000
)

// Pack input levels into the ui_in byte. The spare bit is always zero.
func (inp Input) Pack() uint8 {
	var b uint8
	if inp.PPS {
		b |= MaskPPS
	}
	if inp.SetMode {
		b |= MaskSetMode
	}
	if inp.IncHours {
		b |= MaskIncHours
	}
	if inp.IncMinutes {
		b |= MaskIncMinutes
	}
	if inp.IncSeconds {
		b |= MaskIncSeconds
	}
	if inp.AC50 {
		b |= MaskAC50
	}
	if inp.Hour12 {
		b |= MaskHour12
	}
	return b
}

// Unpack a ui_in byte into input levels. The spare bit is ignored and the
// dedicated reset line is left unasserted.
func Unpack(b uint8) Input {
	return Input{
		PPS:        b&MaskPPS != 0,
		SetMode:    b&MaskSetMode != 0,
		IncHours:   b&MaskIncHours != 0,
		IncMinutes: b&MaskIncMinutes != 0,
		IncSeconds: b&MaskIncSeconds != 0,
		AC50:       b&MaskAC50 != 0,
		Hour12:     b&MaskHour12 != 0,
	}
}

// Output is the level on every output pin at the end of a tick.
type Output struct {
	// segments {a..g}, active high, a in bit 6. only the low seven bits are
	// ever used
	Segments uint8

	// latch enables {Ht..So}, Ht in bit 0. at most one bit is set
	Latch uint8

	Colon bool
	PM    bool
	Pulse bool
}

// UO packs the segment bus and colon level into the uo_out byte.
func (out Output) UO() uint8 {
	b := out.Segments & 0x7f
	if out.Colon {
		b |= 0x80
	}
	return b
}

// UIO packs the latch enables, PM flag and one-second pulse into the uio_out
// byte.
func (out Output) UIO() uint8 {
	b := out.Latch & 0x3f
	if out.PM {
		b |= 0x40
	}
	if out.Pulse {
		b |= 0x80
	}
	return b
}
