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

// Package sdlclock is the SDL front-end for the emulated clock. It draws
// the six 7-segment digits, the colon and the PM indicator, and maps the
// keyboard onto the chip's input pins.
//
// Keys follow the console front-end: h/m/s are the edit buttons and are
// honoured as held levels (the chip's own debounce does the filtering),
// e toggles the set mode level, t toggles the 12/24 hour display, 5 and 6
// select the reference frequency, p fires a PPS pulse, r holds the reset
// line, q or ESC quits.
//
// SDL requires servicing on the main thread. The emulation loop runs
// elsewhere, exchanging pin state through ReadInput() and UpdateOutput().
package sdlclock

import (
	"io"
	"sync"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/sixseg/ttclock/curated"
	"github.com/sixseg/ttclock/display"
	"github.com/sixseg/ttclock/hardware/pins"
	"github.com/sixseg/ttclock/logger"
	"github.com/sixseg/ttclock/version"
)

// rendering happens at most this often, regardless of how often Service()
// is called.
const renderInterval = 16 * time.Millisecond

// SdlClock is the SDL implementation of the clock face.
type SdlClock struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	// crit protects everything below it. the emulation loop and the main
	// thread are on opposite sides of this mutex
	crit sync.Mutex

	// input levels as set by the keyboard
	inp pins.Input

	// a pending PPS pulse, consumed by the next ReadInput()
	ppsPending bool

	// latched output state, as a real display board would hold it
	cap display.Capture

	quit bool

	lastRender time.Time
}

// NewSdlClock is the preferred method of initialisation for the SdlClock
// type. Must be called from the main thread.
func NewSdlClock(scale float32, hour12 bool, ac50 bool) (*SdlClock, error) {
	if scale <= 0 {
		scale = 1.0
	}

	scr := &SdlClock{}
	scr.inp.Hour12 = hour12
	scr.inp.AC50 = ac50

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, curated.Errorf("sdlclock: %v", err)
	}

	w, h := faceSize(scale)

	var err error
	scr.window, err = sdl.CreateWindow(version.ApplicationName,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		w, h, sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, curated.Errorf("sdlclock: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return nil, curated.Errorf("sdlclock: %v", err)
	}

	if err := scr.renderer.SetScale(scale, scale); err != nil {
		return nil, curated.Errorf("sdlclock: %v", err)
	}

	logger.Logf("sdlclock", "window %dx%d at scale %.1f", w, h, scale)

	return scr, nil
}

// Destroy implements the GuiCreator interface. Must be called from the main
// thread.
func (scr *SdlClock) Destroy(output io.Writer) {
	if scr.renderer != nil {
		if err := scr.renderer.Destroy(); err != nil {
			io.WriteString(output, err.Error())
		}
	}
	if scr.window != nil {
		if err := scr.window.Destroy(); err != nil {
			io.WriteString(output, err.Error())
		}
	}
	sdl.Quit()
}

// ReadInput returns the input pin levels for the next chip tick. Called
// from the emulation loop.
func (scr *SdlClock) ReadInput() pins.Input {
	scr.crit.Lock()
	defer scr.crit.Unlock()

	inp := scr.inp
	inp.PPS = scr.ppsPending
	scr.ppsPending = false

	return inp
}

// UpdateOutput latches the output pin levels from a chip tick. Called from
// the emulation loop.
func (scr *SdlClock) UpdateOutput(out pins.Output) {
	scr.crit.Lock()
	defer scr.crit.Unlock()
	scr.cap.Snoop(out)
}

// ShouldQuit returns true once the user has asked to leave. Called from the
// emulation loop.
func (scr *SdlClock) ShouldQuit() bool {
	scr.crit.Lock()
	defer scr.crit.Unlock()
	return scr.quit
}

// Service implements the GuiCreator interface: event polling and rendering.
// Must be called repeatedly from the main thread.
func (scr *SdlClock) Service() {
	switch ev := sdl.PollEvent().(type) {
	case *sdl.QuitEvent:
		scr.crit.Lock()
		scr.quit = true
		scr.crit.Unlock()

	case *sdl.KeyboardEvent:
		scr.serviceKeyboard(ev)
	}

	if time.Since(scr.lastRender) >= renderInterval {
		scr.lastRender = time.Now()
		scr.render()
	}
}

func (scr *SdlClock) serviceKeyboard(ev *sdl.KeyboardEvent) {
	scr.crit.Lock()
	defer scr.crit.Unlock()

	held := ev.Type == sdl.KEYDOWN

	switch ev.Keysym.Sym {
	// held levels
	case sdl.K_h:
		scr.inp.IncHours = held
	case sdl.K_m:
		scr.inp.IncMinutes = held
	case sdl.K_s:
		scr.inp.IncSeconds = held
	case sdl.K_r:
		scr.inp.Reset = held
	}

	// toggles and pulses act on key down only, and ignore key repeat
	if ev.Type != sdl.KEYDOWN || ev.Repeat != 0 {
		return
	}

	switch ev.Keysym.Sym {
	case sdl.K_e:
		scr.inp.SetMode = !scr.inp.SetMode
	case sdl.K_t:
		scr.inp.Hour12 = !scr.inp.Hour12
	case sdl.K_5:
		scr.inp.AC50 = true
	case sdl.K_6:
		scr.inp.AC50 = false
	case sdl.K_p:
		scr.ppsPending = true
	case sdl.K_q, sdl.K_ESCAPE:
		scr.quit = true
	}
}
