package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"

	"github.com/bradleyjkemp/memviz"
	"github.com/kestrel-emu/chip8/chip8"
	"github.com/kestrel-emu/chip8/logger"
	"github.com/kestrel-emu/chip8/random"
	"github.com/kestrel-emu/chip8/statsview"
	"github.com/kestrel-emu/chip8/terminal"
	"github.com/sqweek/dialog"
	"github.com/veandco/go-sdl2/sdl"
)

/// options from the command line.
///
type options struct {
	hz       int
	scale    int
	term     bool
	tone     string
	seed     int64
	trace    bool
	log      bool
	debug    bool
	disasm   bool
	asm      bool
	dump     bool
	memviz   string
	stats    bool
	filename string
}

func init() {
	// SDL calls must all come from the main thread
	runtime.LockOSThread()
}

func main() {
	os.Exit(run(os.Args[1:]))
}

/// run the emulator and return the process exit code.
///
func run(args []string) int {
	opts, err := parseArgs(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.log {
		logger.SetEcho(os.Stderr)
	}

	if err := emulate(opts); err != nil {
		if errors.Is(err, context.Canceled) {
			return 0
		}

		fmt.Fprintf(os.Stderr, "* %v\n", err)

		// the events leading up to the error
		if !opts.log {
			logger.Tail(os.Stderr, 20)
		}

		return 1
	}

	return 0
}

/// parseArgs into options.
///
func parseArgs(args []string) (options, error) {
	var opts options

	flgs := flag.NewFlagSet("chip8", flag.ContinueOnError)
	flgs.IntVar(&opts.hz, "hz", chip8.DefaultConfig.CPUHz, "instructions executed per second")
	flgs.IntVar(&opts.scale, "scale", 10, "size of each pixel in the window")
	flgs.BoolVar(&opts.term, "term", false, "run in the terminal instead of a window")
	flgs.StringVar(&opts.tone, "tone", "", "WAV or MP3 file played for the sound timer")
	flgs.Int64Var(&opts.seed, "seed", 0, "seed for RND (0 seeds from the clock)")
	flgs.BoolVar(&opts.trace, "trace", false, "log every instruction executed")
	flgs.BoolVar(&opts.log, "log", false, "echo the log to stderr")
	flgs.BoolVar(&opts.debug, "debug", false, "show registers under the display")
	flgs.BoolVar(&opts.disasm, "disasm", false, "print a disassembly of the program and exit")
	flgs.BoolVar(&opts.asm, "asm", false, "assemble the program from source")
	flgs.BoolVar(&opts.dump, "dump", false, "print memory after loading the program")
	flgs.StringVar(&opts.memviz, "memviz", "", "write a graphviz diagram of the machine to this file on exit")
	flgs.BoolVar(&opts.stats, "statsview", false, "run the runtime statistics server")

	flgs.Usage = func() {
		fmt.Fprintf(flgs.Output(), "usage: chip8 [options] [program]\n\n")
		flgs.PrintDefaults()
	}

	if err := flgs.Parse(args); err != nil {
		return opts, err
	}

	switch flgs.NArg() {
	case 0:
	case 1:
		opts.filename = flgs.Arg(0)
	default:
		flgs.Usage()
		return opts, fmt.Errorf("too many arguments")
	}

	if opts.scale < 1 {
		return opts, fmt.Errorf("scale must be at least 1")
	}

	return opts, nil
}

/// emulate the program named in the options.
///
func emulate(opts options) error {
	cfg := chip8.Config{CPUHz: opts.hz}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// ask for a program if one wasn't given
	if opts.filename == "" {
		if opts.term {
			return fmt.Errorf("no program given")
		}

		filename, err := dialog.File().Filter("CHIP-8 program", "ch8", "c8", "asm").Title("Load CHIP-8 program").Load()
		if err != nil {
			if errors.Is(err, dialog.ErrCancelled) {
				return nil
			}
			return err
		}

		opts.filename = filename
		opts.asm = opts.asm || strings.EqualFold(filepath.Ext(filename), ".asm")
	}

	program, err := readProgram(opts.filename, opts.asm)
	if err != nil {
		return err
	}

	if opts.disasm {
		return chip8.Listing(os.Stdout, program, chip8.ProgramBase)
	}

	vm := chip8.New()
	vm.Trace = opts.trace
	vm.Rand = random.NewRandom(opts.seed)

	logger.Logf(logger.Allow, "main", "random seed %d", vm.Rand.Seed())

	if err := vm.Load(program, chip8.ProgramBase); err != nil {
		return err
	}

	if opts.dump {
		if err := vm.Dump(os.Stdout); err != nil {
			return err
		}
	}

	if opts.stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			logger.Log(logger.Allow, "main", "statsview not available in this build")
		}
	}

	if opts.memviz != "" {
		defer writeMemviz(opts.memviz, vm)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.term {
		return runTerminal(ctx, vm, cfg)
	}

	return runWindow(ctx, vm, cfg, opts)
}

/// readProgram loads a binary program or assembles a source file.
///
func readProgram(filename string, asm bool) ([]byte, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	if !asm {
		return b, nil
	}

	out, err := chip8.Assemble(b)
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "main", "assembled %d bytes, %d labels", len(out.ROM), len(out.Labels))

	return out.ROM, nil
}

/// runWindow runs the machine in an SDL window.
///
func runWindow(ctx context.Context, vm *chip8.Machine, cfg chip8.Config, opts options) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		return err
	}
	defer sdl.Quit()

	// the register strip goes under the display
	w := int32(chip8.Width * opts.scale)
	h := int32(chip8.Height * opts.scale)
	if opts.debug {
		h += OverlayHeight(opts.scale)
	}

	window, renderer, err := sdl.CreateWindowAndRenderer(w, h, sdl.WINDOW_SHOWN)
	if err != nil {
		return err
	}
	defer window.Destroy()
	defer renderer.Destroy()

	window.SetTitle(fmt.Sprintf("CHIP-8 - %s", filepath.Base(opts.filename)))

	screen, err := NewScreen(renderer, opts.scale)
	if err != nil {
		return err
	}
	defer screen.Destroy()

	// the audio device must be ready before the timers run
	tone, err := OpenTone(opts.tone)
	if err != nil {
		return err
	}
	defer tone.Close()

	keypad := NewKeypad()
	timer := chip8.NewTimer(tone)

	sched, err := chip8.NewScheduler(vm, timer, keypad, screen, cfg)
	if err != nil {
		return err
	}

	keypad.Control(vm, sched, timer)

	if opts.debug {
		screen.Overlay(NewOverlay(vm, sched, opts.scale))
	}

	return sched.Run(ctx)
}

/// runTerminal runs the machine in the terminal.
///
func runTerminal(ctx context.Context, vm *chip8.Machine, cfg chip8.Config) error {
	term := terminal.NewTerminal(os.Stdin, os.Stdout)
	if err := term.Initialise(); err != nil {
		return err
	}
	defer term.CleanUp()

	sched, err := chip8.NewScheduler(vm, chip8.NewTimer(term), term, term, cfg)
	if err != nil {
		return err
	}

	return sched.Run(ctx)
}

/// registers is the part of the machine shown by memviz. Memory and the
/// display are left out because they swamp the diagram.
///
type registers struct {
	V      [16]byte
	I      uint16
	PC     uint16
	DT, ST byte
	Stack  *chip8.Stack
	Cycles int64
}

/// writeMemviz writes a graphviz diagram of the machine's registers.
///
func writeMemviz(filename string, vm *chip8.Machine) {
	f, err := os.Create(filename)
	if err != nil {
		logger.Logf(logger.Allow, "memviz", "%v", err)
		return
	}
	defer f.Close()

	memviz.Map(f, &registers{
		V:      vm.V,
		I:      vm.I,
		PC:     vm.PC,
		DT:     vm.DT,
		ST:     vm.ST,
		Stack:  &vm.Stack,
		Cycles: vm.Cycles,
	})

	logger.Logf(logger.Allow, "memviz", "written to %s", filename)
}
