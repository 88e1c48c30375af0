package chip8

import (
	"github.com/kestrel-emu/chip8/curated"
	"github.com/kestrel-emu/chip8/logger"
)

/// TimerHz is the rate the delay and sound timers count down at.
///
const TimerHz = 60

/// Speaker plays a single looping tone. Start and Stop are only called when
/// the sound timer changes between zero and non-zero.
///
type Speaker interface {
	Start() error
	Stop() error
}

/// Timer counts down the delay and sound timers of a machine and switches
/// the speaker on and off.
///
type Timer struct {
	speaker  Speaker
	sounding bool
}

/// NewTimer is the preferred method of initialisation for the Timer type. The
/// speaker must be ready for use.
///
func NewTimer(speaker Speaker) *Timer {
	return &Timer{speaker: speaker}
}

/// Tick is called once per frame.
///
func (t *Timer) Tick(vm *Machine) error {
	if vm.DT > 0 {
		vm.DT--
	}

	switch {
	case vm.ST > 0 && !t.sounding:
		if t.speaker == nil {
			return curated.Errorf(NoSpeaker)
		}
		if err := t.speaker.Start(); err != nil {
			return err
		}

		logger.Logf(vm, "timer", "tone on for %d frames", vm.ST)

		t.sounding = true
		vm.ST--

	case vm.ST > 0:
		vm.ST--

	case t.sounding:
		if err := t.speaker.Stop(); err != nil {
			return err
		}

		logger.Log(vm, "timer", "tone off")

		t.sounding = false
	}

	return nil
}

/// Sounding is true between the speaker being started and stopped.
///
func (t *Timer) Sounding() bool {
	return t.sounding
}

/// Silence stops the speaker if it is sounding. Used when the machine is
/// reset.
///
func (t *Timer) Silence() error {
	if !t.sounding {
		return nil
	}

	t.sounding = false

	return t.speaker.Stop()
}
