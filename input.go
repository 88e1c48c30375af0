package main

import (
	"github.com/kestrel-emu/chip8/chip8"
	"github.com/kestrel-emu/chip8/logger"
	"github.com/veandco/go-sdl2/sdl"
)

/// KeyMap of CHIP-8 keys to the modern keyboard.
///
var KeyMap = [16]sdl.Scancode{
	0x0: sdl.SCANCODE_X,
	0x1: sdl.SCANCODE_1,
	0x2: sdl.SCANCODE_2,
	0x3: sdl.SCANCODE_3,
	0x4: sdl.SCANCODE_Q,
	0x5: sdl.SCANCODE_W,
	0x6: sdl.SCANCODE_E,
	0x7: sdl.SCANCODE_A,
	0x8: sdl.SCANCODE_S,
	0x9: sdl.SCANCODE_D,
	0xA: sdl.SCANCODE_Z,
	0xB: sdl.SCANCODE_C,
	0xC: sdl.SCANCODE_4,
	0xD: sdl.SCANCODE_R,
	0xE: sdl.SCANCODE_F,
	0xF: sdl.SCANCODE_V,
}

/// control is an emulator action bound to a key.
///
type control int

const (
	noControl control = iota
	quitControl
	pauseControl
	stepControl
	resetControl
	slowerControl
	fasterControl
)

/// controls bound to keys outside the keypad.
///
var controls = map[sdl.Scancode]control{
	sdl.SCANCODE_ESCAPE:       quitControl,
	sdl.SCANCODE_SPACE:        pauseControl,
	sdl.SCANCODE_F5:           pauseControl,
	sdl.SCANCODE_F6:           stepControl,
	sdl.SCANCODE_F10:          stepControl,
	sdl.SCANCODE_BACKSPACE:    resetControl,
	sdl.SCANCODE_LEFTBRACKET:  slowerControl,
	sdl.SCANCODE_RIGHTBRACKET: fasterControl,
}

/// hzStep is how much the speed controls change the CPU rate.
///
const hzStep = 100

/// Keypad polls SDL for events and the keyboard state.
///
type Keypad struct {
	vm    *chip8.Machine
	sched *chip8.Scheduler
	timer *chip8.Timer
}

/// NewKeypad returns a keypad with no controls attached.
///
func NewKeypad() *Keypad {
	return &Keypad{}
}

/// Control attaches the parts of the emulator the control keys act on.
///
func (k *Keypad) Control(vm *chip8.Machine, sched *chip8.Scheduler, timer *chip8.Timer) {
	k.vm = vm
	k.sched = sched
	k.timer = timer
}

/// Poll implements chip8.Input.
///
func (k *Keypad) Poll() ([16]bool, bool) {
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		switch ev := e.(type) {
		case *sdl.QuitEvent:
			return [16]bool{}, true
		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN || ev.Repeat != 0 {
				continue
			}

			if k.apply(controls[ev.Keysym.Scancode]) {
				return [16]bool{}, true
			}
		}
	}

	return keysFromState(sdl.GetKeyboardState()), false
}

/// apply a control, returning true if the emulator should quit.
///
func (k *Keypad) apply(c control) bool {
	switch c {
	case quitControl:
		return true
	case pauseControl:
		if k.sched != nil {
			k.sched.Pause(!k.sched.Paused())
		}
	case stepControl:
		if k.sched != nil && k.sched.Paused() {
			logger.Log(logger.Allow, "step", chip8.Disassemble(k.vm.Memory[:], int(k.vm.PC)))
			k.sched.StepOnce()
		}
	case resetControl:
		if k.vm != nil {
			k.vm.Reset()
			logger.Log(logger.Allow, "main", "reset")
		}
		if k.timer != nil {
			if err := k.timer.Silence(); err != nil {
				logger.Logf(logger.Allow, "main", "%v", err)
			}
		}
	case slowerControl:
		k.changeSpeed(-hzStep)
	case fasterControl:
		k.changeSpeed(hzStep)
	}

	return false
}

/// changeSpeed of the CPU, staying within the allowed range.
///
func (k *Keypad) changeSpeed(delta int) {
	if k.sched == nil {
		return
	}

	hz := clampHz(k.sched.CPUHz() + delta)
	if err := k.sched.SetCPUHz(hz); err != nil {
		logger.Logf(logger.Allow, "main", "%v", err)
		return
	}

	logger.Logf(logger.Allow, "main", "cpu at %d Hz", hz)
}

/// clampHz to the rates the scheduler accepts.
///
func clampHz(hz int) int {
	if hz < chip8.MinCPUHz {
		return chip8.MinCPUHz
	}
	if hz > chip8.MaxCPUHz {
		return chip8.MaxCPUHz
	}
	return hz
}

/// keysFromState maps the SDL keyboard state to the CHIP-8 keypad.
///
func keysFromState(state []uint8) [16]bool {
	var keys [16]bool

	for key, code := range KeyMap {
		if int(code) < len(state) {
			keys[key] = state[code] != 0
		}
	}

	return keys
}
