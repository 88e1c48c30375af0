package chip8

/// Error patterns returned by the virtual machine.
///
const (
	LoadError               = "load error: %d bytes do not fit in memory at %#03x"
	StackOverflow           = "stack overflow: call depth %d"
	StackUnderflow          = "stack underflow: return with empty stack"
	UnrecognizedInstruction = "unrecognized instruction: %04X"
	OutOfRangeAddress       = "out of range address: %s %#04x"
	NoSpeaker               = "no speaker: sound timer started before audio was initialised"
	InvalidConfig           = "invalid config: %s"
	AssemblyError           = "assembly error: line %d: %v"

	// ExecutionError wraps any of the above with the address of the
	// instruction that failed.
	ExecutionError = "chip8: %03X: %v"
)
