// Package terminal runs the CHIP-8 machine in a text terminal. It implements
// the chip8.Input, chip8.Renderer and chip8.Speaker interfaces.
//
// The display is drawn with half-block characters so that the 64x32 pixels
// fit in 64x16 character cells. Terminals only report key presses, not key
// releases, so a key is held for a short time after each press.
//
// The keypad is mapped onto the left-hand side of the keyboard:
//
//	1 2 3 4        1 2 3 C
//	Q W E R   ->   4 5 6 D
//	A S D F        7 8 9 E
//	Z X C V        A 0 B F
//
// Escape or Ctrl-C quits.
package terminal
