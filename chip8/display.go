package chip8

/// Display resolution.
///
const (
	Width  = 64
	Height = 32
)

/// Framebuffer is the 64x32 display, row-major. A true pixel is on.
///
type Framebuffer [Width * Height]bool

/// Clear turns off every pixel.
///
func (fb *Framebuffer) Clear() {
	*fb = Framebuffer{}
}

/// At returns the pixel at x, y. Coordinates wrap.
///
func (fb *Framebuffer) At(x, y int) bool {
	return fb[index(x, y)]
}

/// Draw XORs an 8 pixel wide sprite onto the display with its top-left
/// corner at x, y. Pixels that run off an edge wrap around to the opposite
/// edge. Returns true if any pixel was turned off.
///
func (fb *Framebuffer) Draw(sprite []byte, x, y int) bool {
	collision := false

	for row, bits := range sprite {
		for col := 0; col < 8; col++ {
			if bits&(0x80>>col) == 0 {
				continue
			}

			i := index(x+col, y+row)

			// a set pixel being turned off is a collision
			if fb[i] {
				collision = true
			}

			fb[i] = !fb[i]
		}
	}

	return collision
}

/// Lit returns the number of pixels that are on.
///
func (fb *Framebuffer) Lit() int {
	n := 0
	for _, p := range fb {
		if p {
			n++
		}
	}
	return n
}

func index(x, y int) int {
	x %= Width
	if x < 0 {
		x += Width
	}

	y %= Height
	if y < 0 {
		y += Height
	}

	return y*Width + x
}
