package chip8_test

import (
	"testing"

	"github.com/kestrel-emu/chip8/chip8"
	"github.com/kestrel-emu/chip8/test"
)

func TestDecodeIsTotal(t *testing.T) {
	for w := 0; w <= 0xFFFF; w++ {
		hi, lo := byte(w>>8), byte(w)

		a := chip8.Decode(hi, lo)
		b := chip8.Decode(hi, lo)
		if !test.ExpectEquality(t, a, b, w) {
			return
		}

		// every word re-encodes to itself
		if !test.ExpectEquality(t, a.Encode(), uint16(w), a.Op) {
			return
		}
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		word uint16
		inst chip8.Instruction
	}{
		{0x00E0, chip8.Instruction{Op: chip8.CLS}},
		{0x00EE, chip8.Instruction{Op: chip8.RET}},
		{0x1234, chip8.Instruction{Op: chip8.JMP, Addr: 0x234}},
		{0x2ABC, chip8.Instruction{Op: chip8.CALL, Addr: 0xABC}},
		{0x3A12, chip8.Instruction{Op: chip8.SE, X: 0xA, Byte: 0x12}},
		{0x4B34, chip8.Instruction{Op: chip8.SNE, X: 0xB, Byte: 0x34}},
		{0x5120, chip8.Instruction{Op: chip8.RSE, X: 1, Y: 2}},
		{0x6CFF, chip8.Instruction{Op: chip8.SET, X: 0xC, Byte: 0xFF}},
		{0x7D01, chip8.Instruction{Op: chip8.ADD, X: 0xD, Byte: 0x01}},
		{0x8120, chip8.Instruction{Op: chip8.RLD, X: 1, Y: 2}},
		{0x8121, chip8.Instruction{Op: chip8.ROR, X: 1, Y: 2}},
		{0x8122, chip8.Instruction{Op: chip8.RAND, X: 1, Y: 2}},
		{0x8123, chip8.Instruction{Op: chip8.RXOR, X: 1, Y: 2}},
		{0x8124, chip8.Instruction{Op: chip8.RADD, X: 1, Y: 2}},
		{0x8125, chip8.Instruction{Op: chip8.RSUB, X: 1, Y: 2}},
		{0x8126, chip8.Instruction{Op: chip8.RSHR, X: 1, Y: 2}},
		{0x8127, chip8.Instruction{Op: chip8.RSUBN, X: 1, Y: 2}},
		{0x812E, chip8.Instruction{Op: chip8.RSHL, X: 1, Y: 2}},
		{0x9450, chip8.Instruction{Op: chip8.RSNE, X: 4, Y: 5}},
		{0xA123, chip8.Instruction{Op: chip8.LD, Addr: 0x123}},
		{0xB300, chip8.Instruction{Op: chip8.JP, Addr: 0x300}},
		{0xC70F, chip8.Instruction{Op: chip8.RND, X: 7, Byte: 0x0F}},
		{0xD125, chip8.Instruction{Op: chip8.DRW, X: 1, Y: 2, N: 5}},
		{0xE29E, chip8.Instruction{Op: chip8.SKP, X: 2}},
		{0xE2A1, chip8.Instruction{Op: chip8.SKNP, X: 2}},
		{0xF307, chip8.Instruction{Op: chip8.LDT, X: 3}},
		{0xF30A, chip8.Instruction{Op: chip8.KPR, X: 3}},
		{0xF315, chip8.Instruction{Op: chip8.SETDT, X: 3}},
		{0xF318, chip8.Instruction{Op: chip8.SETST, X: 3}},
		{0xF31E, chip8.Instruction{Op: chip8.ADDI, X: 3}},
		{0xF329, chip8.Instruction{Op: chip8.LDSPR, X: 3}},
		{0xF333, chip8.Instruction{Op: chip8.STBCD, X: 3}},
		{0xF355, chip8.Instruction{Op: chip8.STORE, X: 3}},
		{0xF365, chip8.Instruction{Op: chip8.READ, X: 3}},
	}

	for _, tt := range tests {
		inst := chip8.Decode(byte(tt.word>>8), byte(tt.word))
		test.ExpectEquality(t, inst, tt.inst, tt.word)
	}
}

func TestUnrecognized(t *testing.T) {
	for _, w := range []uint16{0x0000, 0x0123, 0x00FF, 0x5121, 0x800F, 0x9451, 0xE000, 0xF0FF, 0xFF00} {
		inst := chip8.Decode(byte(w>>8), byte(w))
		test.ExpectEquality(t, inst.Op, chip8.Unknown, w)
		test.ExpectEquality(t, inst.Word, w)
	}
}

func TestInstructionString(t *testing.T) {
	tests := []struct {
		word uint16
		text string
	}{
		{0x00E0, "CLS"},
		{0x6105, "LD     V1, #05"},
		{0xA21E, "LD     I, #21E"},
		{0xB200, "JP     V0, #200"},
		{0xD015, "DRW    V0, V1, 5"},
		{0x8336, "SHR    V3"},
		{0x834E, "SHL    V3, V4"},
		{0xF255, "LD     [I], V2"},
		{0xF265, "LD     V2, [I]"},
		{0x0123, "??     #0123"},
	}

	for _, tt := range tests {
		inst := chip8.Decode(byte(tt.word>>8), byte(tt.word))
		test.ExpectEquality(t, inst.String(), tt.text)
	}

	test.ExpectEquality(t, chip8.RSUBN.String(), "RSUBN")
	test.ExpectEquality(t, chip8.Unknown.String(), "Unknown")
}
