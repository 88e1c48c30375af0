// Package chip8 is the CHIP-8 virtual machine: the instruction decoder, the
// machine state and its execution engine, the 60Hz timers, and the scheduler
// that interleaves instruction execution with frame ticks.
//
// The machine has 4KB of memory, sixteen 8-bit V registers, a 16-bit index
// register, a 16 cell call stack, a 16 key keypad and a 64x32 monochrome
// display. Programs are loaded at 0x200 and the hex font occupies 0x000 to
// 0x04F.
//
// Presentation, keyboard and audio are supplied by the host through the
// Renderer, Input and Speaker interfaces.
//
// All failures are fatal to the program being run and are returned as
// curated errors. The patterns in errors.go can be tested for with
// curated.Is() and curated.Has().
package chip8
