package chip8

import "github.com/kestrel-emu/chip8/curated"

/// Execute a single decoded instruction. The program counter must already
/// have been advanced past the instruction.
///
func (vm *Machine) Execute(inst Instruction) error {
	x, y := inst.X&0xF, inst.Y&0xF

	switch inst.Op {
	case CLS:
		vm.cls()
	case RET:
		return vm.ret()
	case JMP:
		vm.jump(inst.Addr)
	case CALL:
		return vm.call(inst.Addr)
	case SE:
		vm.skipIf(vm.V[x] == inst.Byte)
	case SNE:
		vm.skipIf(vm.V[x] != inst.Byte)
	case RSE:
		vm.skipIf(vm.V[x] == vm.V[y])
	case RSNE:
		vm.skipIf(vm.V[x] != vm.V[y])
	case SET:
		vm.V[x] = inst.Byte
	case ADD:
		vm.V[x] += inst.Byte
	case RLD:
		vm.V[x] = vm.V[y]
	case ROR:
		vm.V[x] |= vm.V[y]
	case RAND:
		vm.V[x] &= vm.V[y]
	case RXOR:
		vm.V[x] ^= vm.V[y]
	case RADD:
		vm.addXY(x, y)
	case RSUB:
		vm.subXY(x, y)
	case RSUBN:
		vm.subYX(x, y)
	case RSHR:
		vm.shr(x)
	case RSHL:
		vm.shl(x)
	case LD:
		vm.I = inst.Addr
	case JP:
		vm.jumpV0(inst.Addr)
	case RND:
		vm.V[x] = vm.Rand.Byte() & inst.Byte
	case DRW:
		return vm.drw(x, y, inst.N)
	case SKP:
		return vm.skipIfPressed(x, true)
	case SKNP:
		return vm.skipIfPressed(x, false)
	case LDT:
		vm.V[x] = vm.DT
	case KPR:
		vm.loadXK(x)
	case SETDT:
		vm.DT = vm.V[x]
	case SETST:
		vm.ST = vm.V[x]
	case ADDI:
		vm.I += uint16(vm.V[x])
	case LDSPR:
		vm.I = FontAddress + uint16(vm.V[x]&0xF)*GlyphSize
	case STBCD:
		return vm.loadB(x)
	case STORE:
		return vm.saveRegs(x)
	case READ:
		return vm.loadRegs(x)
	default:
		return curated.Errorf(UnrecognizedInstruction, inst.Encode())
	}

	return nil
}

/// Clear the video display memory.
///
func (vm *Machine) cls() {
	vm.Video.Clear()
}

/// return from subroutine.
///
func (vm *Machine) ret() error {
	pc, err := vm.Stack.Pop()
	if err != nil {
		return err
	}

	vm.PC = pc

	return nil
}

/// call a subroutine at address.
///
func (vm *Machine) call(address uint16) error {
	if err := vm.Stack.Push(vm.PC); err != nil {
		return err
	}

	vm.PC = address

	return nil
}

/// jump to address.
///
func (vm *Machine) jump(address uint16) {
	vm.PC = address
}

/// jump to address + v0.
///
func (vm *Machine) jumpV0(address uint16) {
	vm.PC = address + uint16(vm.V[0])
}

/// skip next instruction if the condition holds.
///
func (vm *Machine) skipIf(cond bool) {
	if cond {
		vm.PC += 2
	}
}

/// skip next instruction if key(vx) is (not) pressed.
///
func (vm *Machine) skipIfPressed(x uint8, pressed bool) error {
	k := vm.V[x]
	if int(k) >= len(vm.Keys) {
		return curated.Errorf(OutOfRangeAddress, "key", uint16(k))
	}

	vm.skipIf(vm.Keys[k] == pressed)

	return nil
}

/// load vx with next key hit. Rewinds the program counter when no key is
/// pressed so the instruction is executed again on the next step.
///
func (vm *Machine) loadXK(x uint8) {
	for k, down := range vm.Keys {
		if down {
			vm.V[x] = byte(k)
			return
		}
	}

	vm.PC -= 2
}

/// add vy to vx and set carry.
///
func (vm *Machine) addXY(x, y uint8) {
	sum := uint16(vm.V[x]) + uint16(vm.V[y])

	vm.V[x] = byte(sum)
	vm.V[0xF] = flag(sum > 0xFF)
}

/// subtract vy from vx, set flag if vx > vy.
///
func (vm *Machine) subXY(x, y uint8) {
	vx, vy := vm.V[x], vm.V[y]

	vm.V[x] = vx - vy
	vm.V[0xF] = flag(vx > vy)
}

/// subtract vx from vy and store in vx, set flag if vy > vx.
///
func (vm *Machine) subYX(x, y uint8) {
	vx, vy := vm.V[x], vm.V[y]

	vm.V[x] = vy - vx
	vm.V[0xF] = flag(vy > vx)
}

/// shr vx 1 bit, set flag to LSB of vx before shift.
///
func (vm *Machine) shr(x uint8) {
	v := vm.V[x]

	vm.V[x] = v >> 1
	vm.V[0xF] = v & 1
}

/// shl vx 1 bit, set flag to MSB of vx before shift.
///
func (vm *Machine) shl(x uint8) {
	v := vm.V[x]

	vm.V[x] = v << 1
	vm.V[0xF] = v >> 7
}

/// draw a sprite at I to video memory at vx, vy.
///
func (vm *Machine) drw(x, y, n uint8) error {
	if err := vm.span("sprite", int(n)); err != nil {
		return err
	}

	sprite := vm.Memory[vm.I : int(vm.I)+int(n)]
	ox, oy := int(vm.V[x]), int(vm.V[y])

	vm.V[0xF] = 0
	if vm.Video.Draw(sprite, ox, oy) {
		vm.V[0xF] = 1
	}

	return nil
}

/// store BCD of vx at I, I+1, I+2.
///
func (vm *Machine) loadB(x uint8) error {
	if err := vm.span("bcd", 3); err != nil {
		return err
	}

	v := vm.V[x]

	vm.Memory[vm.I+0] = v / 100
	vm.Memory[vm.I+1] = v / 10 % 10
	vm.Memory[vm.I+2] = v % 10

	return nil
}

/// save registers v0..vx to I.
///
func (vm *Machine) saveRegs(x uint8) error {
	if err := vm.span("store", int(x)+1); err != nil {
		return err
	}

	copy(vm.Memory[vm.I:], vm.V[:x+1])

	return nil
}

/// load registers v0..vx from I.
///
func (vm *Machine) loadRegs(x uint8) error {
	if err := vm.span("read", int(x)+1); err != nil {
		return err
	}

	copy(vm.V[:x+1], vm.Memory[vm.I:])

	return nil
}

/// span checks that n bytes starting at I are addressable.
///
func (vm *Machine) span(what string, n int) error {
	if int(vm.I)+n > MemorySize {
		return curated.Errorf(OutOfRangeAddress, what, vm.I)
	}
	return nil
}

func flag(b bool) byte {
	if b {
		return 1
	}
	return 0
}
