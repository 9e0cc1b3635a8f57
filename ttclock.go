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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sixseg/ttclock/console"
	"github.com/sixseg/ttclock/gui/sdlclock"
	"github.com/sixseg/ttclock/hardware"
	"github.com/sixseg/ttclock/hardware/divider"
	"github.com/sixseg/ttclock/hardware/pins"
	"github.com/sixseg/ttclock/hardware/preferences"
	"github.com/sixseg/ttclock/logger"
	"github.com/sixseg/ttclock/modalflag"
	"github.com/sixseg/ttclock/performance"
	"github.com/sixseg/ttclock/performance/limiter"
	"github.com/sixseg/ttclock/statsview"
	"github.com/sixseg/ttclock/wavwriter"
)

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to run on the main thread.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary. it is
	// called repeatedly as part of a larger loop on the main thread
	Service()
}

// communication between main() and launch(). SDL requires that window
// handling, creation included, happens on the main thread.
type mainSync struct {
	quit    chan int
	creator chan func() (GuiCreator, error)

	// the result of creator is returned on one of these two channels
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		quit:          make(chan int),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync)

	// #mainthread service loop
	exitVal := 0
	var gui GuiCreator
	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			var err error
			gui, err = creator()
			if err != nil {
				gui = nil
				sync.creationError <- err
			} else {
				sync.creation <- gui
			}

		case exitVal = <-sync.quit:
			done = true

		default:
			if gui != nil {
				gui.Service()
			}
		}
	}

	if gui != nil {
		gui.Destroy(os.Stderr)
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. communication back to the
// main thread is through the mainSync instance.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "CONSOLE", "PERF", "WAV")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.quit <- 0
		return
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.quit <- 10
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)
	case "CONSOLE":
		err = consoleMode(md)
	case "PERF":
		err = perform(md)
	case "WAV":
		err = wav(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md.String(), err)
		sync.quit <- 20
		return
	}

	sync.quit <- 0
}

// commonFlags are the flags shared by every mode that creates a chip.
type commonFlags struct {
	ac50   *bool
	hour12 *bool
	deb    *int
	log    *bool
}

func addCommonFlags(md *modalflag.Modes) commonFlags {
	return commonFlags{
		ac50:   md.AddBool("50hz", false, "use the 50Hz reference (default 60Hz)"),
		hour12: md.AddBool("12h", false, "12-hour display with PM indicator"),
		deb:    md.AddInt("debounce", preferences.NewPreferences().DebounceLength, "button debounce length in ticks"),
		log:    md.AddBool("log", false, "echo the debugging log to stderr"),
	}
}

func (cf commonFlags) newChip() (*hardware.Chip, error) {
	if *cf.log {
		logger.SetEcho(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}

	prefs := preferences.NewPreferences()
	prefs.DebounceLength = *cf.deb

	return hardware.NewChip(prefs)
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	cf := addCommonFlags(md)
	scale := md.AddFloat64("scale", 1.0, "window scale")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	chip, err := cf.newChip()
	if err != nil {
		return err
	}

	// gui is created and serviced on the main thread
	sync.creator <- func() (GuiCreator, error) {
		return sdlclock.NewSdlClock(float32(*scale), *cf.hour12, *cf.ac50)
	}

	var scr *sdlclock.SdlClock
	select {
	case g := <-sync.creation:
		scr = g.(*sdlclock.SdlClock)
	case err := <-sync.creationError:
		return err
	}

	// the emulation loop. paced to the reference frequency so the clock
	// face runs in real time
	lim := limiter.NewLimiter(divider.Divisor(*cf.ac50))
	for !scr.ShouldQuit() {
		lim.Wait()

		inp := scr.ReadInput()
		scr.UpdateOutput(chip.Step(inp))
		lim.SetLimit(divider.Divisor(inp.AC50))
	}

	return nil
}

func consoleMode(md *modalflag.Modes) error {
	md.NewMode()

	cf := addCommonFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	chip, err := cf.newChip()
	if err != nil {
		return err
	}

	con, err := console.NewConsole(chip, *cf.ac50, *cf.hour12)
	if err != nil {
		return err
	}

	return con.Run()
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	ac50 := md.AddBool("50hz", false, "use the 50Hz reference (default 60Hz)")
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "none", "profiles to take: cpu, mem, all")
	stats := md.AddBool("statsview", false, "run the statsview HTTP server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	if *stats {
		if !statsview.Available() {
			fmt.Println("* statsview not available. rebuild with the statsview tag")
		} else {
			statsview.Launch(os.Stdout)
		}
	}

	return performance.Check(os.Stdout, prf, *duration, *ac50)
}

func wav(md *modalflag.Modes) error {
	md.NewMode()

	cf := addCommonFlags(md)
	seconds := md.AddInt("seconds", 10, "number of emulated seconds to record")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("WAV mode requires a single output filename")
	}

	chip, err := cf.newChip()
	if err != nil {
		return err
	}

	divisor := divider.Divisor(*cf.ac50)

	wr, err := wavwriter.New(md.GetArg(0), divisor)
	if err != nil {
		return err
	}

	inp := pins.Input{AC50: *cf.ac50, Hour12: *cf.hour12}
	for i := 0; i < *seconds*divisor; i++ {
		wr.Snoop(chip.Step(inp))
	}

	return wr.End()
}
