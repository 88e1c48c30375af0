package main

import (
	"testing"

	"github.com/kestrel-emu/chip8/chip8"
	"github.com/kestrel-emu/chip8/test"
	"github.com/veandco/go-sdl2/sdl"
)

func TestParseArgs(t *testing.T) {
	opts, err := parseArgs([]string{"-hz", "700", "-term", "-seed", "42", "game.ch8"})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, opts.hz, 700)
	test.ExpectEquality(t, opts.term, true)
	test.ExpectEquality(t, opts.seed, int64(42))
	test.ExpectEquality(t, opts.scale, 10)
	test.ExpectEquality(t, opts.filename, "game.ch8")

	opts, err = parseArgs(nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, opts.hz, chip8.DefaultConfig.CPUHz)
	test.ExpectEquality(t, opts.filename, "")

	_, err = parseArgs([]string{"a.ch8", "b.ch8"})
	test.ExpectFailure(t, err)

	_, err = parseArgs([]string{"-scale", "0"})
	test.ExpectFailure(t, err)
}

func TestKeysFromState(t *testing.T) {
	state := make([]uint8, sdl.NUM_SCANCODES)
	state[sdl.SCANCODE_X] = 1
	state[sdl.SCANCODE_V] = 1
	state[sdl.SCANCODE_P] = 1

	keys := keysFromState(state)
	for k, down := range keys {
		test.ExpectEquality(t, down, k == 0x0 || k == 0xF, k)
	}

	// a short state never panics
	keys = keysFromState(nil)
	test.ExpectEquality(t, keys, [16]bool{})
}

func TestClampHz(t *testing.T) {
	test.ExpectEquality(t, clampHz(0), chip8.MinCPUHz)
	test.ExpectEquality(t, clampHz(600), 600)
	test.ExpectEquality(t, clampHz(chip8.MaxCPUHz+100), chip8.MaxCPUHz)
}

func TestHexDigit(t *testing.T) {
	n, ok := hexDigit('7')
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, n, byte(7))

	n, ok = hexDigit('b')
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, n, byte(0xB))

	_, ok = hexDigit(' ')
	test.ExpectEquality(t, ok, false)
}

func TestRegisterLines(t *testing.T) {
	vm := chip8.New()
	vm.V[0] = 0x12
	vm.V[0xF] = 0x01
	vm.I = 0x345
	vm.DT = 0x3C
	test.DemandSuccess(t, vm.Stack.Push(0x202))

	lines := registerLines(vm)
	test.DemandEquality(t, len(lines), 2)
	test.ExpectEquality(t, lines[0], "12 00 00 00 00 00 00 00 00 00 00 00 00 00 00 01")
	test.ExpectEquality(t, lines[1], "200 345 3C 00 1")
}

func TestOverlayHeight(t *testing.T) {
	test.ExpectEquality(t, textSize(1), int32(1))
	test.ExpectEquality(t, textSize(10), int32(2))
	test.ExpectEquality(t, OverlayHeight(10), int32(2*7*2+4))
}

func TestControls(t *testing.T) {
	vm := chip8.New()
	timer := chip8.NewTimer(nil)
	sched, err := chip8.NewScheduler(vm, timer, &Keypad{}, nil, chip8.DefaultConfig)
	test.DemandSuccess(t, err)

	k := NewKeypad()
	k.Control(vm, sched, timer)

	test.ExpectEquality(t, k.apply(quitControl), true)
	test.ExpectEquality(t, k.apply(noControl), false)

	k.apply(pauseControl)
	test.ExpectEquality(t, sched.Paused(), true)
	k.apply(pauseControl)
	test.ExpectEquality(t, sched.Paused(), false)

	k.apply(fasterControl)
	test.ExpectEquality(t, sched.CPUHz(), chip8.DefaultConfig.CPUHz+hzStep)
	k.apply(slowerControl)
	k.apply(slowerControl)
	test.ExpectEquality(t, sched.CPUHz(), chip8.DefaultConfig.CPUHz-hzStep)

	vm.V[3] = 9
	vm.PC = 0x300
	k.apply(resetControl)
	test.ExpectEquality(t, vm.V[3], byte(0))
	test.ExpectEquality(t, vm.PC, uint16(chip8.ProgramBase))
}
