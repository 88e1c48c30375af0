package main

import (
	"github.com/kestrel-emu/chip8/chip8"
	"github.com/veandco/go-sdl2/sdl"
)

/// Screen renders the CHIP-8 framebuffer to an SDL window.
///
type Screen struct {
	renderer *sdl.Renderer
	texture  *sdl.Texture
	scale    int32
	overlay  *Overlay
}

/// NewScreen creates the render target for the CHIP-8 video memory.
///
func NewScreen(renderer *sdl.Renderer, scale int) (*Screen, error) {
	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_RGB888, sdl.TEXTUREACCESS_TARGET, chip8.Width, chip8.Height)
	if err != nil {
		return nil, err
	}

	return &Screen{
		renderer: renderer,
		texture:  texture,
		scale:    int32(scale),
	}, nil
}

/// Overlay draws the register strip under the display on every frame.
///
func (s *Screen) Overlay(o *Overlay) {
	s.overlay = o
}

/// Destroy the render target.
///
func (s *Screen) Destroy() {
	s.texture.Destroy()
}

/// Render implements chip8.Renderer.
///
func (s *Screen) Render(fb *chip8.Framebuffer) error {
	if err := s.renderer.SetRenderTarget(s.texture); err != nil {
		return err
	}

	// the background color for the screen
	s.renderer.SetDrawColor(143, 145, 133, 255)
	s.renderer.Clear()

	// the color of lit pixels
	s.renderer.SetDrawColor(17, 29, 43, 255)

	for y := 0; y < chip8.Height; y++ {
		for x := 0; x < chip8.Width; x++ {
			if fb.At(x, y) {
				if err := s.renderer.DrawPoint(int32(x), int32(y)); err != nil {
					return err
				}
			}
		}
	}

	if err := s.renderer.SetRenderTarget(nil); err != nil {
		return err
	}

	// window background
	s.renderer.SetDrawColor(32, 42, 53, 255)
	s.renderer.Clear()

	dst := sdl.Rect{W: chip8.Width * s.scale, H: chip8.Height * s.scale}
	if err := s.renderer.Copy(s.texture, nil, &dst); err != nil {
		return err
	}

	if s.overlay != nil {
		s.overlay.Draw(s.renderer, dst.H)
	}

	s.renderer.Present()

	return nil
}
