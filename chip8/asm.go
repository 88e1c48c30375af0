/* Copyright (c) 2017 Jeffrey Massung
 *
 * This software is provided 'as-is', without any express or implied
 * warranty.  In no event will the authors be held liable for any damages
 * arising from the use of this software.
 *
 * Permission is granted to anyone to use this software for any purpose,
 * including commercial applications, and to alter it and redistribute it
 * freely, subject to the following restrictions:
 *
 * 1. The origin of this software must not be misrepresented; you must not
 *    claim that you wrote the original software. If you use this software
 *    in a product, an acknowledgment in the product documentation would be
 *    appreciated but is not required.
 *
 * 2. Altered source versions must be plainly marked as such, and must not be
 *    misrepresented as being the original software.
 *
 * 3. This notice may not be removed or altered from any source distribution.
 */

package chip8

import (
	"bufio"
	"bytes"
	"fmt"

	"github.com/kestrel-emu/chip8/curated"
)

/// Assembly is a completely assembled source file.
///
type Assembly struct {
	/// ROM is the final, assembled bytes to load at Base.
	///
	ROM []byte

	/// Labels map to the address they were declared at.
	///
	Labels map[string]int

	/// Base address the ROM begins at.
	///
	Base int

	// references to labels declared later in the source
	fixups []fixup
}

/// fixup is an address operand waiting for its label to be declared.
///
type fixup struct {
	offset int
	label  string
	line   int
}

/// Assemble CHIP-8 source code. The output is to be loaded at 0x200.
///
/// Labels are declared with a leading '.' in the first column. Everything
/// else must be indented. Literals are decimal, #hex or $binary.
///
func Assemble(program []byte) (out *Assembly, err error) {
	var line int

	out = &Assembly{
		ROM:    make([]byte, 0, MemorySize-ProgramBase),
		Labels: make(map[string]int),
		Base:   ProgramBase,
	}

	// handle panics during assembly
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = curated.Errorf(AssemblyError, line, r)
		}
	}()

	// create simple line scanner over the file
	reader := bytes.NewReader(bytes.ToUpper(program))
	scanner := bufio.NewScanner(reader)

	// parse and assemble
	for line = 1; scanner.Scan(); line++ {
		out.assemble(&tokenScanner{bytes: scanner.Bytes()}, line)

		if len(out.ROM) > MemorySize-ProgramBase {
			panic("program too large")
		}
	}

	// resolve all forward references
	for _, f := range out.fixups {
		line = f.line

		addr, ok := out.Labels[f.label]
		if !ok {
			panic(fmt.Sprintf("unresolved label: %s", f.label))
		}

		// every address operand is the low 12 bits of a word
		out.ROM[f.offset] |= byte(addr >> 8 & 0xF)
		out.ROM[f.offset+1] = byte(addr & 0xFF)
	}

	out.fixups = nil

	return out, nil
}

/// address of the next byte assembled.
///
func (a *Assembly) address() int {
	return a.Base + len(a.ROM)
}

/// Compile a single line into the assembly.
///
func (a *Assembly) assemble(s *tokenScanner, line int) {
	t := s.scanToken()

	// assign labels
	if t.typ == tokenLabel {
		label := t.val.(string)
		if _, exists := a.Labels[label]; exists {
			panic("duplicate label")
		}

		a.Labels[label] = a.address()

		t = s.scanToken()
	}

	switch t.typ {
	case tokenRef:
		mnemonic := t.val.(string)
		if !mnemonics[mnemonic] {
			panic(fmt.Sprintf("illegal instruction: %s", mnemonic))
		}

		a.assembleInstruction(mnemonic, s.scanOperands(), line)
	case tokenEnd:
	default:
		panic("unexpected token")
	}
}

/// Compile a single instruction into the assembly.
///
func (a *Assembly) assembleInstruction(mnemonic string, tokens []token, line int) {
	switch mnemonic {
	case "BYTE":
		a.ROM = append(a.ROM, a.assembleBYTE(tokens)...)
		return
	case "WORD":
		a.ROM = append(a.ROM, a.assembleWORD(tokens, line)...)
		return
	}

	var inst Instruction

	switch mnemonic {
	case "CLS":
		inst = a.assembleNone(tokens, CLS)
	case "RET":
		inst = a.assembleNone(tokens, RET)
	case "JP":
		inst = a.assembleJP(tokens, line)
	case "CALL":
		inst = a.assembleCALL(tokens, line)
	case "SE":
		inst = a.assembleCompare(tokens, SE, RSE)
	case "SNE":
		inst = a.assembleCompare(tokens, SNE, RSNE)
	case "SKP":
		inst = a.assembleX(tokens, SKP)
	case "SKNP":
		inst = a.assembleX(tokens, SKNP)
	case "OR":
		inst = a.assembleXY(tokens, ROR)
	case "AND":
		inst = a.assembleXY(tokens, RAND)
	case "XOR":
		inst = a.assembleXY(tokens, RXOR)
	case "SUB":
		inst = a.assembleXY(tokens, RSUB)
	case "SUBN":
		inst = a.assembleXY(tokens, RSUBN)
	case "SHR":
		inst = a.assembleShift(tokens, RSHR)
	case "SHL":
		inst = a.assembleShift(tokens, RSHL)
	case "ADD":
		inst = a.assembleADD(tokens)
	case "RND":
		inst = a.assembleRND(tokens)
	case "DRW":
		inst = a.assembleDRW(tokens)
	case "LD":
		inst = a.assembleLD(tokens, line)
	default:
		panic("illegal instruction")
	}

	a.ROM = append(a.ROM, inst.Bytes()...)
}

/// Assemble a single operand, expanding label references.
///
func (a *Assembly) assembleOperand(t token) token {
	if t.typ == tokenRef {
		label := t.val.(string)
		if addr, exists := a.Labels[label]; exists {
			return token{typ: tokenLit, val: addr}
		}
		return token{typ: tokenForward, val: label}
	}

	return t
}

/// Match the desired tokens with a list of tokens. Expand labels.
///
func (a *Assembly) assembleOperands(tokens []token, m ...tokenType) ([]token, bool) {
	ops := make([]token, 0, 3)

	// the number of desired tokens should match
	if len(tokens) != len(m) {
		return nil, false
	}

	// expand and compare the token types
	for i, typ := range m {
		t := a.assembleOperand(tokens[i])

		switch {
		case t.typ == typ:
		case typ == tokenAddress && (t.typ == tokenLit || t.typ == tokenForward):
		default:
			return nil, false
		}

		ops = append(ops, t)
	}

	return ops, true
}

/// addr returns a 12-bit address operand. Forward references are patched
/// once the whole program has been assembled.
///
func (a *Assembly) addr(t token, line int) uint16 {
	if t.typ == tokenForward {
		a.fixups = append(a.fixups, fixup{offset: len(a.ROM), label: t.val.(string), line: line})
		return 0
	}

	if n := t.val.(int); n >= 0 && n < MemorySize {
		return uint16(n)
	}

	panic("illegal address")
}

/// lit8 returns an 8-bit literal operand.
///
func lit8(t token) uint8 {
	if n := t.val.(int); n >= -0x80 && n <= 0xFF {
		return uint8(n)
	}

	panic("illegal byte")
}

/// reg returns a register operand.
///
func reg(t token) uint8 {
	return uint8(t.val.(int))
}

/// Assemble an instruction without operands.
///
func (a *Assembly) assembleNone(tokens []token, op Op) Instruction {
	if len(tokens) == 0 {
		return Instruction{Op: op}
	}

	panic("illegal instruction")
}

/// Assemble a JP instruction.
///
func (a *Assembly) assembleJP(tokens []token, line int) Instruction {
	if ops, ok := a.assembleOperands(tokens, tokenAddress); ok {
		return Instruction{Op: JMP, Addr: a.addr(ops[0], line)}
	}

	if ops, ok := a.assembleOperands(tokens, tokenV, tokenAddress); ok && reg(ops[0]) == 0 {
		return Instruction{Op: JP, Addr: a.addr(ops[1], line)}
	}

	panic("illegal instruction")
}

/// Assemble a CALL instruction.
///
func (a *Assembly) assembleCALL(tokens []token, line int) Instruction {
	if ops, ok := a.assembleOperands(tokens, tokenAddress); ok {
		return Instruction{Op: CALL, Addr: a.addr(ops[0], line)}
	}

	panic("illegal instruction")
}

/// Assemble SE or SNE, comparing a register with a literal or a register.
///
func (a *Assembly) assembleCompare(tokens []token, lit Op, regs Op) Instruction {
	if ops, ok := a.assembleOperands(tokens, tokenV, tokenLit); ok {
		return Instruction{Op: lit, X: reg(ops[0]), Byte: lit8(ops[1])}
	}

	if ops, ok := a.assembleOperands(tokens, tokenV, tokenV); ok {
		return Instruction{Op: regs, X: reg(ops[0]), Y: reg(ops[1])}
	}

	panic("illegal instruction")
}

/// Assemble an instruction with a single register operand.
///
func (a *Assembly) assembleX(tokens []token, op Op) Instruction {
	if ops, ok := a.assembleOperands(tokens, tokenV); ok {
		return Instruction{Op: op, X: reg(ops[0])}
	}

	panic("illegal instruction")
}

/// Assemble an instruction with two register operands.
///
func (a *Assembly) assembleXY(tokens []token, op Op) Instruction {
	if ops, ok := a.assembleOperands(tokens, tokenV, tokenV); ok {
		return Instruction{Op: op, X: reg(ops[0]), Y: reg(ops[1])}
	}

	panic("illegal instruction")
}

/// Assemble SHR or SHL. VY is optional and defaults to VX.
///
func (a *Assembly) assembleShift(tokens []token, op Op) Instruction {
	if ops, ok := a.assembleOperands(tokens, tokenV); ok {
		x := reg(ops[0])
		return Instruction{Op: op, X: x, Y: x}
	}

	return a.assembleXY(tokens, op)
}

/// Assemble an ADD instruction.
///
func (a *Assembly) assembleADD(tokens []token) Instruction {
	if ops, ok := a.assembleOperands(tokens, tokenV, tokenLit); ok {
		return Instruction{Op: ADD, X: reg(ops[0]), Byte: lit8(ops[1])}
	}

	if ops, ok := a.assembleOperands(tokens, tokenV, tokenV); ok {
		return Instruction{Op: RADD, X: reg(ops[0]), Y: reg(ops[1])}
	}

	if ops, ok := a.assembleOperands(tokens, tokenI, tokenV); ok {
		return Instruction{Op: ADDI, X: reg(ops[1])}
	}

	panic("illegal instruction")
}

/// Assemble a RND instruction.
///
func (a *Assembly) assembleRND(tokens []token) Instruction {
	if ops, ok := a.assembleOperands(tokens, tokenV, tokenLit); ok {
		return Instruction{Op: RND, X: reg(ops[0]), Byte: lit8(ops[1])}
	}

	panic("illegal instruction")
}

/// Assemble a DRW instruction.
///
func (a *Assembly) assembleDRW(tokens []token) Instruction {
	if ops, ok := a.assembleOperands(tokens, tokenV, tokenV, tokenLit); ok {
		if n := ops[2].val.(int); n >= 0 && n < 0x10 {
			return Instruction{Op: DRW, X: reg(ops[0]), Y: reg(ops[1]), N: uint8(n)}
		}
	}

	panic("illegal instruction")
}

/// Assemble a LD instruction.
///
func (a *Assembly) assembleLD(tokens []token, line int) Instruction {
	if ops, ok := a.assembleOperands(tokens, tokenV, tokenLit); ok {
		return Instruction{Op: SET, X: reg(ops[0]), Byte: lit8(ops[1])}
	}

	if ops, ok := a.assembleOperands(tokens, tokenV, tokenV); ok {
		return Instruction{Op: RLD, X: reg(ops[0]), Y: reg(ops[1])}
	}

	if ops, ok := a.assembleOperands(tokens, tokenI, tokenAddress); ok {
		return Instruction{Op: LD, Addr: a.addr(ops[1], line)}
	}

	// register to and from the timers, keypad and memory
	moves := []struct {
		dst, src tokenType
		op       Op
	}{
		{tokenV, tokenDT, LDT},
		{tokenV, tokenK, KPR},
		{tokenDT, tokenV, SETDT},
		{tokenST, tokenV, SETST},
		{tokenF, tokenV, LDSPR},
		{tokenB, tokenV, STBCD},
		{tokenEffectiveAddress, tokenV, STORE},
		{tokenV, tokenEffectiveAddress, READ},
	}

	for _, m := range moves {
		if ops, ok := a.assembleOperands(tokens, m.dst, m.src); ok {
			v := ops[0]
			if m.dst != tokenV {
				v = ops[1]
			}
			return Instruction{Op: m.op, X: reg(v)}
		}
	}

	panic("illegal instruction")
}

/// Assemble a BYTE directive. Operands are 8-bit literals or strings.
///
func (a *Assembly) assembleBYTE(tokens []token) []byte {
	b := make([]byte, 0, len(tokens))

	for _, t := range tokens {
		op := a.assembleOperand(t)

		switch op.typ {
		case tokenLit:
			b = append(b, lit8(op))
		case tokenText:
			b = append(b, op.val.(string)...)
		default:
			panic("invalid byte")
		}
	}

	return b
}

/// Assemble a WORD directive. Operands are 16-bit literals or labels.
///
func (a *Assembly) assembleWORD(tokens []token, line int) []byte {
	b := make([]byte, 0, len(tokens)*2)

	for _, t := range tokens {
		op := a.assembleOperand(t)

		switch op.typ {
		case tokenForward:
			a.fixups = append(a.fixups, fixup{offset: len(a.ROM) + len(b), label: op.val.(string), line: line})
			b = append(b, 0, 0)
		case tokenLit:
			n := op.val.(int)
			if n < 0 || n > 0xFFFF {
				panic("invalid word")
			}

			// store msb first
			b = append(b, byte(n>>8), byte(n))
		default:
			panic("invalid word")
		}
	}

	return b
}
