package chip8

import "github.com/kestrel-emu/chip8/curated"

/// StackDepth is the maximum number of unreturned CALL instructions.
///
const StackDepth = 16

/// Stack of return addresses. Only CALL and RET use it.
///
type Stack struct {
	cells [StackDepth]uint16
	depth int
}

/// Push a return address.
///
func (s *Stack) Push(addr uint16) error {
	if s.depth == StackDepth {
		return curated.Errorf(StackOverflow, s.depth+1)
	}

	s.cells[s.depth] = addr
	s.depth++

	return nil
}

/// Pop the most recently pushed return address.
///
func (s *Stack) Pop() (uint16, error) {
	if s.depth == 0 {
		return 0, curated.Errorf(StackUnderflow)
	}

	s.depth--

	return s.cells[s.depth], nil
}

/// Depth is the number of addresses on the stack.
///
func (s *Stack) Depth() int {
	return s.depth
}

/// Reset empties the stack.
///
func (s *Stack) Reset() {
	*s = Stack{}
}
