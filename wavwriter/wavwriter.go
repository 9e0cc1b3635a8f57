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

// Package wavwriter renders the chip's timing outputs as an audible click
// track and writes it to disk as a WAV file. The one-second pulse becomes a
// loud click and every colon toggle a quieter one, so divider behaviour can
// be audited by ear or with a waveform viewer. Samples are buffered in
// memory in their entirety and written on End().
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/sixseg/ttclock/curated"
	"github.com/sixseg/ttclock/hardware/pins"
	"github.com/sixseg/ttclock/logger"
)

// number of audio samples rendered for each chip tick. the WAV sample rate
// is this multiplied by the tick rate.
const samplesPerTick = 128

const bitDepth = 16

// click amplitudes. the pulse click dominates the colon click
const (
	pulseAmplitude = 28000
	colonAmplitude = 9000
)

// WavWriter buffers a click track of the chip's timing outputs.
type WavWriter struct {
	filename  string
	ticksRate int
	data      []int
	lastColon bool
}

// New is the preferred method of initialisation for the WavWriter type.
// ticksRate is the number of chip ticks per second being simulated.
func New(filename string, ticksRate int) (*WavWriter, error) {
	if ticksRate < 1 {
		return nil, curated.Errorf("wavwriter: bad tick rate (%d)", ticksRate)
	}

	return &WavWriter{
		filename:  filename,
		ticksRate: ticksRate,
		data:      make([]int, 0, 1024),
	}, nil
}

// Snoop the output pins for one tick, rendering the tick's worth of audio.
func (wr *WavWriter) Snoop(out pins.Output) {
	amp := 0
	if out.Pulse {
		amp = pulseAmplitude
	} else if out.Colon != wr.lastColon {
		amp = colonAmplitude
	}
	wr.lastColon = out.Colon

	// a click is a decaying square burst over the first half of the tick
	for i := 0; i < samplesPerTick; i++ {
		v := 0
		if amp > 0 && i < samplesPerTick/2 {
			v = amp - (amp*i*2)/samplesPerTick
			if i%2 == 1 {
				v = -v
			}
		}
		wr.data = append(wr.data, v)
	}
}

// End writes the buffered click track to disk.
func (wr *WavWriter) End() (rerr error) {
	f, err := os.Create(wr.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	sampleRate := wr.ticksRate * samplesPerTick

	enc := wav.NewEncoder(f, sampleRate, bitDepth, 1, 1)
	defer func() {
		if err := enc.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           wr.data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	logger.Logf("wavwriter", "%d samples written to %s", len(wr.data), wr.filename)

	return nil
}
