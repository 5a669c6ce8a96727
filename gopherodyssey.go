// This file is part of Gopherodyssey.
//
// Gopherodyssey is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherodyssey is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherodyssey.  If not, see <https://www.gnu.org/licenses/>.


package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/jetsetilly/gopherodyssey/cartridgeloader"
	"github.com/jetsetilly/gopherodyssey/debugger"
	"github.com/jetsetilly/gopherodyssey/debugger/govern"
	"github.com/jetsetilly/gopherodyssey/debugger/terminal"
	"github.com/jetsetilly/gopherodyssey/debugger/terminal/colorterm"
	"github.com/jetsetilly/gopherodyssey/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopherodyssey/digest"
	"github.com/jetsetilly/gopherodyssey/disassembly"
	"github.com/jetsetilly/gopherodyssey/gui"
	"github.com/jetsetilly/gopherodyssey/gui/sdlgl"
	"github.com/jetsetilly/gopherodyssey/gui/sdlsoft"
	"github.com/jetsetilly/gopherodyssey/hardware"
	"github.com/jetsetilly/gopherodyssey/hardware/preferences"
	"github.com/jetsetilly/gopherodyssey/hardware/television/specification"
	"github.com/jetsetilly/gopherodyssey/logger"
	"github.com/jetsetilly/gopherodyssey/modalflag"
	"github.com/jetsetilly/gopherodyssey/paths"
	"github.com/jetsetilly/gopherodyssey/performance"
	"github.com/jetsetilly/gopherodyssey/statsview"
	"github.com/jetsetilly/gopherodyssey/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// stop the default interrupt handling. the debugger installs its own
	// handler.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// how often the main thread services the GUI.
const serviceInterval = 2 * time.Millisecond

// communication between the main() function and the launch() function. this is
// required because SDL requires window creation and event handling to occur
// on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (gui.GUI, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan gui.GUI
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (gui.GUI, error)),
		creation:      make(chan gui.GUI),
		creationError: make(chan error),
	}

	exitVal := 0

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	ticker := time.NewTicker(serviceInterval)
	defer ticker.Stop()

	done := false
	var g gui.GUI
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			if g != nil {
				g.Destroy()
			}

			g, err = creator()
			if err != nil {
				sync.creationError <- err
				g = nil
			} else {
				sync.creation <- g
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Stop(intChan)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		case <-ticker.C:
			if g != nil {
				if err := g.Service(); err != nil {
					logger.Log(logger.Allow, "gui", err)
				}
			}
		}
	}

	if g != nil {
		g.Destroy()
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "DEBUG", "DISASM", "PERFORMANCE", "DIGEST", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = emulate(govern.ModePlay, md, sync)

	case "DEBUG":
		err = emulate(govern.ModeDebugger, md, sync)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)

	case "DIGEST":
		err = videoDigest(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// resolves the BIOS filename. the empty string means the default BIOS file in
// the resource directory.
func biosFilename(bios string) (string, error) {
	if bios != "" {
		return bios, nil
	}
	return paths.ResourcePath("", cartridgeloader.DefaultBIOS)
}

// the television specification requested on the command line. the empty
// string defers to the PAL preference.
func tvSpec(id string, prefs *preferences.Preferences) (specification.Spec, error) {
	if id == "" && prefs != nil && prefs.PAL.Get().(bool) {
		id = "PAL"
	}
	return specification.Search(id)
}

func cartridgeArg(md *modalflag.Modes, bios string) (*cartridgeloader.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("cartridge required for %s mode", md)
	case 1:
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	bios, err := biosFilename(bios)
	if err != nil {
		return nil, err
	}

	cartload := cartridgeloader.NewLoader(md.GetArg(0), bios)
	return &cartload, nil
}

func emulate(mode govern.Mode, md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	prefs, err := preferences.NewPreferences()
	if err != nil {
		return err
	}

	bios := md.AddString("bios", "", "BIOS file (default o2rom.bin in resource directory)")
	spec := md.AddString("tv", "", "television specification: NTSC, PAL")
	renderer := md.AddString("renderer", prefs.Renderer.Get().(string), "presentation backend: software, opengl")
	scale := md.AddInt("scale", prefs.Scale.Get().(int), "window scaling")
	fpsCap := md.AddBool("fpscap", prefs.FPSCap.Get().(bool), "cap fps to specification")
	illegal := md.AddBool("illegalbreak", prefs.IllegalBreak.Get().(bool), "halt on illegal opcodes")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	profile := md.AddString("profile", "none", "run performance profilers: cpu, mem, trace, all")

	md.AdditionalHelp(`Keys while the emulation is running:
  F1            pause/resume
  F4            enter the debugger
  F5            reset
  PrintScreen   save a screenshot
  Escape        quit
  CAPS LOCK     send W/A/S/D and space to the console keyboard`)

	var termType *string
	if mode == govern.ModeDebugger {
		termType = md.AddString("term", "color", "terminal type to use in debug mode: color, plain")
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if statsview.Available() {
			stop := statsview.Launch(os.Stdout)
			defer stop()
		} else {
			fmt.Println("! statsview not available in this build")
		}
	}

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	cartload, err := cartridgeArg(md, *bios)
	if err != nil {
		return err
	}

	err = prefs.IllegalBreak.Set(*illegal)
	if err != nil {
		return err
	}

	tv, err := tvSpec(*spec, prefs)
	if err != nil {
		return err
	}

	var term terminal.Terminal
	if mode == govern.ModeDebugger && strings.ToUpper(*termType) == "COLOR" {
		term = &colorterm.ColorTerminal{}
	} else {
		term = plainterm.NewPlainTerminal(nil, nil)
	}

	// create gui on the main thread
	switch strings.ToLower(*renderer) {
	case preferences.RendererOpenGL:
		sync.creator <- func() (gui.GUI, error) {
			return sdlgl.NewSdlGL(*scale)
		}
	case preferences.RendererSoftware:
		sync.creator <- func() (gui.GUI, error) {
			return sdlsoft.NewSdlSoft(*scale)
		}
	default:
		return fmt.Errorf("unknown renderer (%s)", *renderer)
	}

	var scr gui.GUI
	select {
	case scr = <-sync.creation:
	case err := <-sync.creationError:
		return err
	}

	con, err := hardware.NewConsole(tv, scr, prefs)
	if err != nil {
		return err
	}

	dbg, err := debugger.NewDebugger(con, scr, term, *fpsCap)
	if err != nil {
		return err
	}

	// the debugger handles interrupt signals from now on
	sync.state <- stateRequest{req: reqNoIntSig}

	return performance.RunProfiler(prof, strings.ToLower(mode.String()), func() error {
		return dbg.Start(mode, cartload)
	})
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	bios := md.AddString("bios", "", "BIOS file (default o2rom.bin in resource directory)")
	bytecode := md.AddBool("bytecode", false, "including bytecode in disassembly")
	cycles := md.AddBool("cycles", false, "including cycle counts in disassembly")
	bank := md.AddInt("bank", -1, "disassemble a single bank only")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartload, err := cartridgeArg(md, *bios)
	if err != nil {
		return err
	}

	dsm, err := disassembly.FromCartridge(cartload)
	if err != nil {
		return err
	}

	attr := disassembly.WriteAttr{
		ByteCode: *bytecode,
		Cycles:   *cycles,
	}

	if *bank >= 0 {
		return dsm.WriteBank(os.Stdout, attr, *bank)
	}
	return dsm.Write(os.Stdout, attr)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	bios := md.AddString("bios", "", "BIOS file (default o2rom.bin in resource directory)")
	spec := md.AddString("tv", "", "television specification: NTSC, PAL")
	fpsCap := md.AddBool("fpscap", false, "cap fps to specification")
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run performance profilers: cpu, mem, trace, all")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	cartload, err := cartridgeArg(md, *bios)
	if err != nil {
		return err
	}

	tv, err := tvSpec(*spec, nil)
	if err != nil {
		return err
	}

	return performance.Check(os.Stdout, prof, cartload, tv, !*fpsCap, *duration)
}

func videoDigest(md *modalflag.Modes) error {
	md.NewMode()

	bios := md.AddString("bios", "", "BIOS file (default o2rom.bin in resource directory)")
	spec := md.AddString("tv", "", "television specification: NTSC, PAL")
	frames := md.AddInt("frames", 60, "number of frames to run before taking the digest")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *frames <= 0 {
		return fmt.Errorf("number of frames must be positive")
	}

	cartload, err := cartridgeArg(md, *bios)
	if err != nil {
		return err
	}

	tv, err := tvSpec(*spec, nil)
	if err != nil {
		return err
	}

	con, dig, err := newDigestConsole(tv, cartload)
	if err != nil {
		return err
	}

	err = con.RunForFrameCount(*frames, nil)
	if err != nil {
		return err
	}

	fmt.Println(dig.Hash())
	return nil
}

// the console used by the DIGEST mode. random numbers depend only on the beam
// position so that the digest is the same for every run.
func newDigestConsole(tv specification.Spec, cartload *cartridgeloader.Loader) (*hardware.Console, *digest.Video, error) {
	dig := digest.NewVideo()

	con, err := hardware.NewConsole(tv, dig, nil)
	if err != nil {
		return nil, nil, err
	}
	con.Random.ZeroSeed = true

	err = con.AttachCartridge(cartload)
	if err != nil {
		return nil, nil, err
	}

	return con, dig, nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control system")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	inf := version.Get()
	if *revision {
		fmt.Printf("%s (%s) %s\n", inf.Version, inf.Revision, inf.GoVersion)
	} else {
		fmt.Println(inf.Version)
	}
	return nil
}
