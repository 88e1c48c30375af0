package terminal

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/kestrel-emu/chip8/chip8"
	"github.com/kestrel-emu/chip8/test"
)

func newTestTerminal(out *test.CompareWriter) (*Terminal, *time.Time) {
	now := time.Unix(100, 0)

	t := NewTerminal(&bytes.Buffer{}, out)
	t.now = func() time.Time { return now }

	return t, &now
}

func TestKeysAreHeld(t *testing.T) {
	term, now := newTestTerminal(&test.CompareWriter{})

	term.handle('w', *now)
	term.handle('V', *now)

	keys, quit := term.Poll()
	test.ExpectEquality(t, quit, false)
	test.ExpectEquality(t, keys[0x5], true)
	test.ExpectEquality(t, keys[0xF], true)
	test.ExpectEquality(t, keys[0x0], false)

	*now = now.Add(Hold - time.Millisecond)
	keys, _ = term.Poll()
	test.ExpectEquality(t, keys[0x5], true)

	*now = now.Add(time.Millisecond)
	keys, _ = term.Poll()
	test.ExpectEquality(t, keys[0x5], false)
	test.ExpectEquality(t, keys[0xF], false)
}

func TestQuit(t *testing.T) {
	for _, b := range []byte{escape, ctrlC} {
		term, now := newTestTerminal(&test.CompareWriter{})
		term.handle(b, *now)

		_, quit := term.Poll()
		test.ExpectEquality(t, quit, true, b)
	}
}

func TestPollReadsInput(t *testing.T) {
	term := NewTerminal(strings.NewReader("x"), &test.CompareWriter{})
	go term.read()

	// wait for the reader to finish with the input
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		keys, _ := term.Poll()
		if keys[0x0] {
			break
		}
		time.Sleep(time.Millisecond)
	}

	keys, quit := term.Poll()
	test.ExpectEquality(t, keys[0x0], true)
	test.ExpectEquality(t, quit, false)
}

func TestRender(t *testing.T) {
	out := &test.CompareWriter{}
	term, _ := newTestTerminal(out)

	var fb chip8.Framebuffer
	fb.Draw([]byte{0x80, 0x80, 0x00, 0x80}, 0, 0)

	test.DemandSuccess(t, term.Render(&fb))

	lines := strings.Split(strings.TrimPrefix(out.String(), home), "\r\n")
	test.ExpectEquality(t, len(lines), chip8.Height/2+1)
	test.ExpectEquality(t, strings.HasPrefix(lines[0], "█ "), true)
	test.ExpectEquality(t, strings.HasPrefix(lines[1], "▄ "), true)
	test.ExpectEquality(t, lines[2], strings.Repeat(" ", chip8.Width))

	// unchanged frames are skipped
	out.Clear()
	test.DemandSuccess(t, term.Render(&fb))
	test.ExpectEquality(t, out.String(), "")

	fb.Clear()
	test.DemandSuccess(t, term.Render(&fb))
	test.ExpectInequality(t, out.String(), "")
}

func TestBell(t *testing.T) {
	out := &test.CompareWriter{}
	term, _ := newTestTerminal(out)

	test.DemandSuccess(t, term.Start())
	test.DemandSuccess(t, term.Stop())
	test.ExpectEquality(t, out.String(), "\a")
}
