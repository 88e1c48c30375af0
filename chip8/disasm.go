package chip8

import (
	"fmt"
	"io"
)

/// Disassemble the instruction at address i of mem.
///
func Disassemble(mem []byte, i int) string {
	if i < 0 || i >= len(mem)-1 {
		return ""
	}

	return fmt.Sprintf("%04X - %s", i, Decode(mem[i], mem[i+1]))
}

/// Listing writes the disassembly of every word in mem, which is assumed to
/// be loaded at base. A trailing odd byte is listed as data.
///
func Listing(w io.Writer, mem []byte, base int) error {
	for i := 0; i < len(mem); i += 2 {
		var line string

		if i+1 < len(mem) {
			line = fmt.Sprintf("%04X - %s", base+i, Decode(mem[i], mem[i+1]))
		} else {
			line = fmt.Sprintf("%04X - BYTE   #%02X", base+i, mem[i])
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}
