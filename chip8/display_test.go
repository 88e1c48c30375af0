package chip8_test

import (
	"testing"

	"github.com/kestrel-emu/chip8/chip8"
	"github.com/kestrel-emu/chip8/test"
)

func TestDrawWrapsHorizontally(t *testing.T) {
	var fb chip8.Framebuffer

	collision := fb.Draw([]byte{0xFF}, 62, 0)
	test.ExpectEquality(t, collision, false)

	for _, x := range []int{62, 63, 0, 1, 2, 3, 4, 5} {
		test.ExpectEquality(t, fb.At(x, 0), true, x)
	}
	test.ExpectEquality(t, fb.At(6, 0), false)
	test.ExpectEquality(t, fb.At(61, 0), false)
	test.ExpectEquality(t, fb.Lit(), 8)
}

func TestDrawWrapsVertically(t *testing.T) {
	var fb chip8.Framebuffer

	fb.Draw([]byte{0x80, 0x80, 0x80}, 0, 31)

	test.ExpectEquality(t, fb.At(0, 31), true)
	test.ExpectEquality(t, fb.At(0, 0), true)
	test.ExpectEquality(t, fb.At(0, 1), true)
	test.ExpectEquality(t, fb.Lit(), 3)
}

func TestDrawCollision(t *testing.T) {
	var fb chip8.Framebuffer

	test.ExpectEquality(t, fb.Draw([]byte{0xC0}, 10, 10), false)

	// overlapping by one pixel
	test.ExpectEquality(t, fb.Draw([]byte{0x60}, 10, 10), true)
	test.ExpectEquality(t, fb.At(10, 10), true)
	test.ExpectEquality(t, fb.At(11, 10), false)
	test.ExpectEquality(t, fb.At(12, 10), true)

	fb.Clear()
	test.ExpectEquality(t, fb.Lit(), 0)
}
