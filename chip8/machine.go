package chip8

import (
	"fmt"
	"io"

	"github.com/kestrel-emu/chip8/curated"
	"github.com/kestrel-emu/chip8/logger"
	"github.com/kestrel-emu/chip8/random"
)

/// Memory layout.
///
const (
	MemorySize  = 0x1000
	FontAddress = 0x000
	ProgramBase = 0x200

	// the last address an instruction can be fetched from
	lastFetch = MemorySize - 2
)

/// Machine is the CHIP-8 virtual machine state.
///
type Machine struct {
	/// ROM is the pristine memory image: the font and the loaded program.
	/// Reset copies it back into Memory.
	///
	ROM [MemorySize]byte

	/// Memory addressable by CHIP-8.
	///
	Memory [MemorySize]byte

	/// V are the 16 virtual registers. VF is also the flag register.
	///
	V [16]byte

	/// I is the address register.
	///
	I uint16

	/// PC is the program counter. All programs begin at 0x200.
	///
	PC uint16

	/// Stack of return addresses.
	///
	Stack Stack

	/// Keys hold the current state for the 16-key pad keys. They are
	/// replaced once per frame by the scheduler.
	///
	Keys [16]bool

	/// Video is the 64x32 display.
	///
	Video Framebuffer

	/// DT is the delay timer and ST the sound timer. Both count down at
	/// 60Hz, see Timer.
	///
	DT, ST byte

	/// Cycles is how many instructions have been executed since reset.
	///
	Cycles int64

	/// Trace logs every instruction executed.
	///
	Trace bool

	/// Rand is the source for the RND instruction.
	///
	Rand *random.Random
}

/// New returns a machine with the font loaded and no program.
///
func New() *Machine {
	vm := &Machine{
		Rand: random.NewRandom(0),
	}

	copy(vm.ROM[FontAddress:], Font[:])

	// reset the VM memory
	vm.Reset()

	return vm
}

/// Load a program into memory at offset. The program is also kept so that
/// Reset can restore it.
///
func (vm *Machine) Load(program []byte, offset uint16) error {
	if int(offset) > MemorySize || len(program) > MemorySize-int(offset) {
		return curated.Errorf(LoadError, len(program), offset)
	}

	copy(vm.ROM[offset:], program)
	copy(vm.Memory[offset:], program)

	logger.Logf(logger.Allow, "chip8", "loaded %d bytes at %#03x", len(program), offset)

	return nil
}

/// Reset memory and registers to their state immediately after Load.
///
func (vm *Machine) Reset() {
	vm.Memory = vm.ROM

	// reset video memory
	vm.Video.Clear()

	// reset keys
	vm.Keys = [16]bool{}

	// reset program counter and stack
	vm.PC = ProgramBase
	vm.Stack.Reset()

	// reset address and virtual registers
	vm.I = 0
	vm.V = [16]byte{}

	// reset timer registers
	vm.DT = 0
	vm.ST = 0

	vm.Cycles = 0

	// RND repeats the same sequence after a reset
	if vm.Rand != nil {
		vm.Rand.Reset()
	}
}

/// SetKeys replaces the state of the keypad.
///
func (vm *Machine) SetKeys(keys [16]bool) {
	vm.Keys = keys
}

/// AllowLogging implements the logger.Permission interface. Instruction
/// traces are only logged when Trace is set.
///
func (vm *Machine) AllowLogging() bool {
	return vm.Trace
}

/// Step the CHIP-8 virtual machine a single instruction.
///
func (vm *Machine) Step() error {
	pc := vm.PC

	// fetch the next instruction
	inst, err := vm.fetch()
	if err != nil {
		return curated.Errorf(ExecutionError, pc, err)
	}

	logger.Logf(vm, "trace", "%03X %s", pc, inst)

	if err := vm.Execute(inst); err != nil {
		return curated.Errorf(ExecutionError, pc, err)
	}

	// increment the cycle count
	vm.Cycles++

	return nil
}

/// Fetch and decode the next instruction, advancing the program counter.
///
func (vm *Machine) fetch() (Instruction, error) {
	if vm.PC > lastFetch {
		return Instruction{}, curated.Errorf(OutOfRangeAddress, "pc", vm.PC)
	}

	i := vm.PC

	// advance the program counter
	vm.PC += 2

	return Decode(vm.Memory[i], vm.Memory[i+1]), nil
}

/// Dump writes memory as hex, 32 bytes per line.
///
func (vm *Machine) Dump(w io.Writer) error {
	for addr := 0; addr < MemorySize; addr += 32 {
		if _, err := fmt.Fprintf(w, "%03X:", addr); err != nil {
			return err
		}

		for i, b := range vm.Memory[addr : addr+32] {
			sep := " "
			if i > 0 && i%8 == 0 {
				sep = "  "
			}
			if _, err := fmt.Fprintf(w, "%s%02X", sep, b); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	return nil
}

/// String summarises the registers on a single line.
///
func (vm *Machine) String() string {
	return fmt.Sprintf("PC=%03X I=%03X SP=%d DT=%02X ST=%02X V=% X", vm.PC, vm.I, vm.Stack.Depth(), vm.DT, vm.ST, vm.V[:])
}
