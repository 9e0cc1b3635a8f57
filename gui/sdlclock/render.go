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

package sdlclock

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/sixseg/ttclock/display"
	"github.com/sixseg/ttclock/hardware/bcd"
)

// face geometry at scale 1.0, in pixels.
const (
	margin     = 16
	digitW     = 44
	digitH     = 80
	digitGap   = 12
	groupGap   = 28 // room for the colon between digit pairs
	colonR     = 5
	pmR        = 5
	segmentThk = 9
)

// faceSize returns the window dimensions for a scale factor.
func faceSize(scale float32) (int32, int32) {
	w := 2*margin + 6*digitW + 4*digitGap + 2*groupGap
	h := 2*margin + digitH
	return int32(float32(w) * scale), int32(float32(h) * scale)
}

// display colours
var (
	backgroundCol = sdl.Color{R: 10, G: 10, B: 12, A: 255}
	litCol        = sdl.Color{R: 250, G: 60, B: 40, A: 255}
	unlitCol      = sdl.Color{R: 38, G: 14, B: 12, A: 255}
)

func (scr *SdlClock) setColour(c sdl.Color) {
	scr.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
}

// render the whole clock face from the latched output state.
func (scr *SdlClock) render() {
	scr.crit.Lock()
	cap := scr.cap
	scr.crit.Unlock()

	scr.setColour(backgroundCol)
	scr.renderer.Clear()

	x := int32(margin)
	for d := bcd.Ht; d < bcd.NumDigits; d++ {
		pattern := uint8(display.Blank)
		if v := cap.Digit(d); v <= 9 {
			pattern = display.Encode(v)
		}
		scr.drawDigit(x, margin, pattern)

		x += digitW
		switch d {
		case bcd.Ho, bcd.Mo:
			scr.drawColon(x, cap.Colon)
			x += groupGap + digitGap
		default:
			x += digitGap
		}
	}

	scr.drawPM(cap.PM)

	scr.renderer.Present()
}

// drawDigit draws one 7-segment digit with its top-left corner at (x, y).
// Unlit segments are drawn faintly, the way a real LED digit ghosts.
func (scr *SdlClock) drawDigit(x, y int32, pattern uint8) {
	const t = int32(segmentThk)
	w := int32(digitW)
	h := int32(digitH)
	half := h / 2

	segments := []struct {
		mask uint8
		rect sdl.Rect
	}{
		{display.SegA, sdl.Rect{X: x + t, Y: y, W: w - 2*t, H: t}},
		{display.SegB, sdl.Rect{X: x + w - t, Y: y + t, W: t, H: half - t - t/2}},
		{display.SegC, sdl.Rect{X: x + w - t, Y: y + half + t/2, W: t, H: half - t - t/2}},
		{display.SegD, sdl.Rect{X: x + t, Y: y + h - t, W: w - 2*t, H: t}},
		{display.SegE, sdl.Rect{X: x, Y: y + half + t/2, W: t, H: half - t - t/2}},
		{display.SegF, sdl.Rect{X: x, Y: y + t, W: t, H: half - t - t/2}},
		{display.SegG, sdl.Rect{X: x + t, Y: y + half - t/2, W: w - 2*t, H: t}},
	}

	for _, seg := range segments {
		if pattern&seg.mask != 0 {
			scr.setColour(litCol)
		} else {
			scr.setColour(unlitCol)
		}
		scr.renderer.FillRect(&seg.rect)
	}
}

// drawColon draws the two colon dots in the gap beginning at x.
func (scr *SdlClock) drawColon(x int32, lit bool) {
	if lit {
		scr.setColour(litCol)
	} else {
		scr.setColour(unlitCol)
	}

	cx := x + (groupGap+digitGap)/2 - colonR
	for _, cy := range []int32{margin + digitH/3, margin + 2*digitH/3} {
		scr.renderer.FillRect(&sdl.Rect{X: cx, Y: cy - colonR, W: 2 * colonR, H: 2 * colonR})
	}
}

// drawPM draws the PM indicator dot in the bottom right corner of the face.
func (scr *SdlClock) drawPM(lit bool) {
	if lit {
		scr.setColour(litCol)
	} else {
		scr.setColour(unlitCol)
	}

	w, h := faceSize(1.0)
	scr.renderer.FillRect(&sdl.Rect{
		X: w - margin + (margin-2*pmR)/2,
		Y: h - margin - 2*pmR,
		W: 2 * pmR,
		H: 2 * pmR,
	})
}
