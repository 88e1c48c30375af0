package terminal

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/kestrel-emu/chip8/chip8"
	"github.com/kestrel-emu/chip8/curated"
	"github.com/kestrel-emu/chip8/logger"
	"golang.org/x/term"
)

/// TerminalError is the pattern for errors from this package.
///
const TerminalError = "terminal: %v"

/// Hold is how long a key stays pressed after the terminal reports it.
///
const Hold = 100 * time.Millisecond

const logTag = "terminal"

/// KeyMap maps the characters typed to keypad keys.
///
var KeyMap = map[byte]int{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

/// control characters
///
const (
	ctrlC  = 0x03
	bell   = 0x07
	escape = 0x1b
)

/// ANSI sequences
///
const (
	home       = "\x1b[H"
	clear      = "\x1b[2J"
	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"
)

/// Terminal reads the keypad from in and draws the display to out.
///
type Terminal struct {
	in  io.Reader
	out io.Writer

	// the saved state of a real terminal, restored by CleanUp()
	fd    int
	state *term.State

	// bytes read from in
	input chan byte

	// time each key was last reported
	pressed [16]time.Time
	quit    bool

	// the last frame drawn
	last  chip8.Framebuffer
	drawn bool

	now func() time.Time
}

/// NewTerminal is the preferred method of initialisation for the Terminal
/// type.
///
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:    in,
		out:   out,
		fd:    -1,
		input: make(chan byte, 64),
		now:   time.Now,
	}
}

/// Initialise puts a real terminal into raw mode and starts reading input.
///
func (t *Terminal) Initialise() error {
	if f, ok := t.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		t.fd = int(f.Fd())

		state, err := term.MakeRaw(t.fd)
		if err != nil {
			return curated.Errorf(TerminalError, err)
		}
		t.state = state

		if w, h, err := term.GetSize(t.fd); err == nil && (w < chip8.Width || h < chip8.Height/2) {
			logger.Logf(logger.Allow, logTag, "terminal is %dx%d, display needs %dx%d", w, h, chip8.Width, chip8.Height/2)
		}
	} else {
		logger.Log(logger.Allow, logTag, "input is not a terminal")
	}

	go t.read()

	_, err := io.WriteString(t.out, hideCursor+clear)

	return err
}

/// CleanUp restores the terminal.
///
func (t *Terminal) CleanUp() {
	io.WriteString(t.out, showCursor+"\r\n")

	if t.state != nil {
		if err := term.Restore(t.fd, t.state); err != nil {
			logger.Logf(logger.Allow, logTag, "restore: %v", err)
		}
		t.state = nil
	}
}

/// read forwards input to the channel until the input ends.
///
func (t *Terminal) read() {
	buf := make([]byte, 16)
	for {
		n, err := t.in.Read(buf)
		for _, b := range buf[:n] {
			t.input <- b
		}
		if err != nil {
			close(t.input)
			return
		}
	}
}

/// Poll implements the chip8.Input interface.
///
func (t *Terminal) Poll() ([16]bool, bool) {
	now := t.now()

	for done := false; !done; {
		select {
		case b, ok := <-t.input:
			if !ok {
				// input has ended. there is no way for the user to quit now
				// other than by signal, so leave that to the caller
				t.input = nil
				done = true
				break
			}
			t.handle(b, now)
		default:
			done = true
		}
	}

	var keys [16]bool
	for k, at := range t.pressed {
		keys[k] = !at.IsZero() && now.Sub(at) < Hold
	}

	return keys, t.quit
}

/// handle a single byte of input.
///
func (t *Terminal) handle(b byte, now time.Time) {
	switch b {
	case escape, ctrlC:
		t.quit = true
		return
	}

	if k, ok := KeyMap[toLower(b)]; ok {
		t.pressed[k] = now
	}
}

func toLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 'a' - 'A'
	}
	return b
}

/// Render implements the chip8.Renderer interface. Unchanged frames are not
/// redrawn.
///
func (t *Terminal) Render(fb *chip8.Framebuffer) error {
	if t.drawn && *fb == t.last {
		return nil
	}

	t.last = *fb
	t.drawn = true

	s := strings.Builder{}
	s.WriteString(home)

	for y := 0; y < chip8.Height; y += 2 {
		for x := 0; x < chip8.Width; x++ {
			s.WriteString(cell(fb.At(x, y), fb.At(x, y+1)))
		}
		s.WriteString("\r\n")
	}

	if _, err := io.WriteString(t.out, s.String()); err != nil {
		return curated.Errorf(TerminalError, err)
	}

	return nil
}

/// cell returns the character for two vertically adjacent pixels.
///
func cell(top, bottom bool) string {
	switch {
	case top && bottom:
		return "█"
	case top:
		return "▀"
	case bottom:
		return "▄"
	}
	return " "
}

/// Start implements the chip8.Speaker interface. The terminal bell is the
/// only sound available.
///
func (t *Terminal) Start() error {
	_, err := t.out.Write([]byte{bell})
	return err
}

/// Stop implements the chip8.Speaker interface.
///
func (t *Terminal) Stop() error {
	return nil
}
