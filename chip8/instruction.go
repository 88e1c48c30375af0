package chip8

import "fmt"

/// Op identifies one of the 34 instructions. The zero value is Unknown.
///
type Op uint8

/// All recognized instructions.
///
const (
	Unknown Op = iota
	CLS        // 00E0
	RET        // 00EE
	JMP        // 1NNN
	CALL       // 2NNN
	SE         // 3XNN
	SNE        // 4XNN
	RSE        // 5XY0
	SET        // 6XNN
	ADD        // 7XNN
	RLD        // 8XY0
	ROR        // 8XY1
	RAND       // 8XY2
	RXOR       // 8XY3
	RADD       // 8XY4
	RSUB       // 8XY5
	RSHR       // 8XY6
	RSUBN      // 8XY7
	RSHL       // 8XYE
	RSNE       // 9XY0
	LD         // ANNN
	JP         // BNNN
	RND        // CXNN
	DRW        // DXYN
	SKP        // EX9E
	SKNP       // EXA1
	LDT        // FX07
	KPR        // FX0A
	SETDT      // FX15
	SETST      // FX18
	ADDI       // FX1E
	LDSPR      // FX29
	STBCD      // FX33
	STORE      // FX55
	READ       // FX65

	numOps
)

/// operand layouts.
///
type form int

const (
	noOperands form = iota
	formNNN
	formXNN
	formXY
	formXYN
	formX
)

/// encoding is the base word and operand layout of each op.
///
var encoding = [numOps]struct {
	name string
	base uint16
	form form
}{
	Unknown: {"Unknown", 0x0000, noOperands},
	CLS:     {"CLS", 0x00E0, noOperands},
	RET:     {"RET", 0x00EE, noOperands},
	JMP:     {"JMP", 0x1000, formNNN},
	CALL:    {"CALL", 0x2000, formNNN},
	SE:      {"SE", 0x3000, formXNN},
	SNE:     {"SNE", 0x4000, formXNN},
	RSE:     {"RSE", 0x5000, formXY},
	SET:     {"SET", 0x6000, formXNN},
	ADD:     {"ADD", 0x7000, formXNN},
	RLD:     {"RLD", 0x8000, formXY},
	ROR:     {"ROR", 0x8001, formXY},
	RAND:    {"RAND", 0x8002, formXY},
	RXOR:    {"RXOR", 0x8003, formXY},
	RADD:    {"RADD", 0x8004, formXY},
	RSUB:    {"RSUB", 0x8005, formXY},
	RSHR:    {"RSHR", 0x8006, formXY},
	RSUBN:   {"RSUBN", 0x8007, formXY},
	RSHL:    {"RSHL", 0x800E, formXY},
	RSNE:    {"RSNE", 0x9000, formXY},
	LD:      {"LD", 0xA000, formNNN},
	JP:      {"JP", 0xB000, formNNN},
	RND:     {"RND", 0xC000, formXNN},
	DRW:     {"DRW", 0xD000, formXYN},
	SKP:     {"SKP", 0xE09E, formX},
	SKNP:    {"SKNP", 0xE0A1, formX},
	LDT:     {"LDT", 0xF007, formX},
	KPR:     {"KPR", 0xF00A, formX},
	SETDT:   {"SETDT", 0xF015, formX},
	SETST:   {"SETST", 0xF018, formX},
	ADDI:    {"ADDI", 0xF01E, formX},
	LDSPR:   {"LDSPR", 0xF029, formX},
	STBCD:   {"STBCD", 0xF033, formX},
	STORE:   {"STORE", 0xF055, formX},
	READ:    {"READ", 0xF065, formX},
}

func (op Op) String() string {
	if op >= numOps {
		return fmt.Sprintf("Op(%d)", op)
	}
	return encoding[op].name
}

/// Instruction is a single decoded instruction. Only the operands used by
/// Op are set. Word is only set for Unknown instructions.
///
type Instruction struct {
	Op Op

	/// X and Y are register operands, N a 4-bit literal.
	///
	X, Y, N uint8

	/// Byte is an 8-bit literal.
	///
	Byte uint8

	/// Addr is a 12-bit literal address.
	///
	Addr uint16

	/// Word is the raw, unrecognized instruction.
	///
	Word uint16
}

/// Decode two big-endian bytes into an instruction. Every input decodes to
/// something; words that match no instruction decode as Unknown.
///
func Decode(hi, lo byte) Instruction {
	w := uint16(hi)<<8 | uint16(lo)

	// operands
	x := hi & 0xF
	y := lo >> 4
	n := lo & 0xF
	a := w & 0xFFF

	switch hi >> 4 {
	case 0x0:
		switch w {
		case 0x00E0:
			return Instruction{Op: CLS}
		case 0x00EE:
			return Instruction{Op: RET}
		}
	case 0x1:
		return Instruction{Op: JMP, Addr: a}
	case 0x2:
		return Instruction{Op: CALL, Addr: a}
	case 0x3:
		return Instruction{Op: SE, X: x, Byte: lo}
	case 0x4:
		return Instruction{Op: SNE, X: x, Byte: lo}
	case 0x5:
		if n == 0 {
			return Instruction{Op: RSE, X: x, Y: y}
		}
	case 0x6:
		return Instruction{Op: SET, X: x, Byte: lo}
	case 0x7:
		return Instruction{Op: ADD, X: x, Byte: lo}
	case 0x8:
		if op := aluOps[n]; op != Unknown {
			return Instruction{Op: op, X: x, Y: y}
		}
	case 0x9:
		if n == 0 {
			return Instruction{Op: RSNE, X: x, Y: y}
		}
	case 0xA:
		return Instruction{Op: LD, Addr: a}
	case 0xB:
		return Instruction{Op: JP, Addr: a}
	case 0xC:
		return Instruction{Op: RND, X: x, Byte: lo}
	case 0xD:
		return Instruction{Op: DRW, X: x, Y: y, N: n}
	case 0xE:
		switch lo {
		case 0x9E:
			return Instruction{Op: SKP, X: x}
		case 0xA1:
			return Instruction{Op: SKNP, X: x}
		}
	case 0xF:
		if op, ok := miscOps[lo]; ok {
			return Instruction{Op: op, X: x}
		}
	}

	return Instruction{Op: Unknown, Word: w}
}

/// 8XYN instructions by N.
///
var aluOps = [16]Op{
	0x0: RLD,
	0x1: ROR,
	0x2: RAND,
	0x3: RXOR,
	0x4: RADD,
	0x5: RSUB,
	0x6: RSHR,
	0x7: RSUBN,
	0xE: RSHL,
}

/// FXNN instructions by NN.
///
var miscOps = map[byte]Op{
	0x07: LDT,
	0x0A: KPR,
	0x15: SETDT,
	0x18: SETST,
	0x1E: ADDI,
	0x29: LDSPR,
	0x33: STBCD,
	0x55: STORE,
	0x65: READ,
}

/// Encode returns the 16-bit word the instruction decodes from.
///
func (i Instruction) Encode() uint16 {
	if i.Op == Unknown || i.Op >= numOps {
		return i.Word
	}

	e := encoding[i.Op]
	x := uint16(i.X&0xF) << 8
	y := uint16(i.Y&0xF) << 4

	switch e.form {
	case formNNN:
		return e.base | i.Addr&0xFFF
	case formXNN:
		return e.base | x | uint16(i.Byte)
	case formXY:
		return e.base | x | y
	case formXYN:
		return e.base | x | y | uint16(i.N&0xF)
	case formX:
		return e.base | x
	}

	return e.base
}

/// Bytes returns the encoded instruction, most significant byte first.
///
func (i Instruction) Bytes() []byte {
	w := i.Encode()
	return []byte{byte(w >> 8), byte(w)}
}

/// String returns the instruction in assembler syntax.
///
func (i Instruction) String() string {
	switch i.Op {
	case CLS:
		return "CLS"
	case RET:
		return "RET"
	case JMP:
		return fmt.Sprintf("JP     #%03X", i.Addr)
	case CALL:
		return fmt.Sprintf("CALL   #%03X", i.Addr)
	case SE:
		return fmt.Sprintf("SE     V%X, #%02X", i.X, i.Byte)
	case SNE:
		return fmt.Sprintf("SNE    V%X, #%02X", i.X, i.Byte)
	case RSE:
		return fmt.Sprintf("SE     V%X, V%X", i.X, i.Y)
	case SET:
		return fmt.Sprintf("LD     V%X, #%02X", i.X, i.Byte)
	case ADD:
		return fmt.Sprintf("ADD    V%X, #%02X", i.X, i.Byte)
	case RLD:
		return fmt.Sprintf("LD     V%X, V%X", i.X, i.Y)
	case ROR:
		return fmt.Sprintf("OR     V%X, V%X", i.X, i.Y)
	case RAND:
		return fmt.Sprintf("AND    V%X, V%X", i.X, i.Y)
	case RXOR:
		return fmt.Sprintf("XOR    V%X, V%X", i.X, i.Y)
	case RADD:
		return fmt.Sprintf("ADD    V%X, V%X", i.X, i.Y)
	case RSUB:
		return fmt.Sprintf("SUB    V%X, V%X", i.X, i.Y)
	case RSHR:
		return shift("SHR", i)
	case RSUBN:
		return fmt.Sprintf("SUBN   V%X, V%X", i.X, i.Y)
	case RSHL:
		return shift("SHL", i)
	case RSNE:
		return fmt.Sprintf("SNE    V%X, V%X", i.X, i.Y)
	case LD:
		return fmt.Sprintf("LD     I, #%03X", i.Addr)
	case JP:
		return fmt.Sprintf("JP     V0, #%03X", i.Addr)
	case RND:
		return fmt.Sprintf("RND    V%X, #%02X", i.X, i.Byte)
	case DRW:
		return fmt.Sprintf("DRW    V%X, V%X, %d", i.X, i.Y, i.N)
	case SKP:
		return fmt.Sprintf("SKP    V%X", i.X)
	case SKNP:
		return fmt.Sprintf("SKNP   V%X", i.X)
	case LDT:
		return fmt.Sprintf("LD     V%X, DT", i.X)
	case KPR:
		return fmt.Sprintf("LD     V%X, K", i.X)
	case SETDT:
		return fmt.Sprintf("LD     DT, V%X", i.X)
	case SETST:
		return fmt.Sprintf("LD     ST, V%X", i.X)
	case ADDI:
		return fmt.Sprintf("ADD    I, V%X", i.X)
	case LDSPR:
		return fmt.Sprintf("LD     F, V%X", i.X)
	case STBCD:
		return fmt.Sprintf("LD     B, V%X", i.X)
	case STORE:
		return fmt.Sprintf("LD     [I], V%X", i.X)
	case READ:
		return fmt.Sprintf("LD     V%X, [I]", i.X)
	}

	return fmt.Sprintf("??     #%04X", i.Word)
}

/// shifts only mention VY when it differs from VX.
///
func shift(mnemonic string, i Instruction) string {
	if i.X == i.Y {
		return fmt.Sprintf("%-6s V%X", mnemonic, i.X)
	}
	return fmt.Sprintf("%-6s V%X, V%X", mnemonic, i.X, i.Y)
}
