package main

import (
	"github.com/kestrel-emu/chip8/chip8"
	"github.com/veandco/go-sdl2/sdl"
)

/// glyphWidth of the hex font including a column of spacing.
///
const glyphWidth = 5

/// DrawText using the CHIP-8 hex font. Only hex digits are drawn; any
/// other character is left as a space.
///
func DrawText(renderer *sdl.Renderer, text string, x, y, size int32) {
	for i := 0; i < len(text); i++ {
		if n, ok := hexDigit(text[i]); ok {
			drawGlyph(renderer, chip8.Glyph(n), x, y, size)
		}

		x += glyphWidth * size
	}
}

/// drawGlyph with each font pixel as a size*size square.
///
func drawGlyph(renderer *sdl.Renderer, glyph []byte, x, y, size int32) {
	for row, bits := range glyph {
		for col := int32(0); col < 4; col++ {
			if bits&(0x80>>col) == 0 {
				continue
			}

			renderer.FillRect(&sdl.Rect{
				X: x + col*size,
				Y: y + int32(row)*size,
				W: size,
				H: size,
			})
		}
	}
}

/// hexDigit value of a character.
///
func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}
