package chip8

import (
	"context"
	"testing"
	"time"

	"github.com/kestrel-emu/chip8/test"
)

func TestWallClockNeverSleeps(t *testing.T) {
	s, err := NewScheduler(New(), NewTimer(nil), nil, nil, DefaultConfig)
	test.DemandSuccess(t, err)

	_, ok := s.clock.(sleeper)
	test.ExpectEquality(t, ok, false)
}

// countingClock moves 1ms every time it is read.
type countingClock struct {
	now time.Time
}

func (c *countingClock) Now() time.Time {
	c.now = c.now.Add(time.Millisecond)
	return c.now
}

type quitter struct {
	polls int
}

func (q *quitter) Poll() ([16]bool, bool) {
	q.polls++
	return [16]bool{}, q.polls >= 3
}

type discard struct{}

func (discard) Render(*Framebuffer) error {
	return nil
}

func TestRunSpinsWithoutSleeper(t *testing.T) {
	vm := New()
	test.DemandSuccess(t, vm.Load([]byte{0x12, 0x00}, ProgramBase))

	s, err := NewScheduler(vm, NewTimer(nil), &quitter{}, discard{}, DefaultConfig)
	test.DemandSuccess(t, err)

	clk := &countingClock{now: time.Unix(0, 0)}
	s.SetClock(clk)

	test.ExpectSuccess(t, s.Run(context.Background()))

	// the clock only moves when read, so reaching the third frame means
	// the loop kept polling it
	test.ExpectEquality(t, s.Frames(), int64(3))
	test.ExpectEquality(t, clk.now.Sub(time.Unix(0, 0)) >= 3*(time.Second/FrameHz), true)
	test.ExpectEquality(t, clk.now.Sub(time.Unix(0, 0)) < 3*(time.Second/FrameHz)+2*time.Millisecond, true)
}
