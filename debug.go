package main

import (
	"fmt"
	"strings"

	"github.com/kestrel-emu/chip8/chip8"
	"github.com/veandco/go-sdl2/sdl"
)

/// Overlay shows the CHIP-8 registers under the display.
///
type Overlay struct {
	vm    *chip8.Machine
	sched *chip8.Scheduler
	size  int32
}

/// overlayRows of text in the register strip.
///
const overlayRows = 2

/// textSize of the overlay font for a window scale.
///
func textSize(scale int) int32 {
	if scale < 5 {
		return 1
	}
	return int32(scale / 5)
}

/// OverlayHeight in pixels for a window scale.
///
func OverlayHeight(scale int) int32 {
	size := textSize(scale)
	return overlayRows*(chip8.GlyphSize+2)*size + 2*size
}

/// NewOverlay for a machine.
///
func NewOverlay(vm *chip8.Machine, sched *chip8.Scheduler, scale int) *Overlay {
	return &Overlay{vm: vm, sched: sched, size: textSize(scale)}
}

/// Draw the overlay starting at the top y coordinate.
///
func (o *Overlay) Draw(renderer *sdl.Renderer, top int32) {
	x := 2 * o.size
	y := top + 2*o.size

	// paused is shown by the text color
	if o.sched.Paused() {
		renderer.SetDrawColor(176, 32, 57, 255)
	} else {
		renderer.SetDrawColor(57, 102, 176, 255)
	}

	for _, line := range registerLines(o.vm) {
		DrawText(renderer, line, x, y, o.size)
		y += (chip8.GlyphSize + 2) * o.size
	}
}

/// registerLines of hex shown in the overlay: V0-VF on the first line
/// then PC, I, DT, ST and the stack depth.
///
func registerLines(vm *chip8.Machine) []string {
	v := make([]string, len(vm.V))
	for i, r := range vm.V {
		v[i] = fmt.Sprintf("%02X", r)
	}

	return []string{
		strings.Join(v, " "),
		fmt.Sprintf("%03X %03X %02X %02X %X", vm.PC, vm.I, vm.DT, vm.ST, vm.Stack.Depth()),
	}
}
