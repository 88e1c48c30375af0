package chip8_test

import (
	"testing"

	"github.com/kestrel-emu/chip8/chip8"
	"github.com/kestrel-emu/chip8/curated"
	"github.com/kestrel-emu/chip8/test"
)

type speaker struct {
	starts int
	stops  int
}

func (s *speaker) Start() error {
	s.starts++
	return nil
}

func (s *speaker) Stop() error {
	s.stops++
	return nil
}

func TestSoundTimer(t *testing.T) {
	vm := chip8.New()
	spk := &speaker{}
	tmr := chip8.NewTimer(spk)

	vm.ST = 3

	for i, sounding := range []bool{true, true, true, false, false} {
		test.DemandSuccess(t, tmr.Tick(vm))
		test.ExpectEquality(t, tmr.Sounding(), sounding, i)
	}

	test.ExpectEquality(t, vm.ST, byte(0))
	test.ExpectEquality(t, spk.starts, 1)
	test.ExpectEquality(t, spk.stops, 1)
}

func TestDelayTimer(t *testing.T) {
	vm := chip8.New()
	tmr := chip8.NewTimer(&speaker{})

	vm.DT = 2
	test.DemandSuccess(t, tmr.Tick(vm))
	test.ExpectEquality(t, vm.DT, byte(1))
	test.DemandSuccess(t, tmr.Tick(vm))
	test.ExpectEquality(t, vm.DT, byte(0))

	// never wraps
	test.DemandSuccess(t, tmr.Tick(vm))
	test.ExpectEquality(t, vm.DT, byte(0))
}

func TestSoundTimerReloaded(t *testing.T) {
	vm := chip8.New()
	spk := &speaker{}
	tmr := chip8.NewTimer(spk)

	vm.ST = 2
	test.DemandSuccess(t, tmr.Tick(vm))

	// reloading while sounding does not restart the tone
	vm.ST = 2
	test.DemandSuccess(t, tmr.Tick(vm))
	test.DemandSuccess(t, tmr.Tick(vm))
	test.ExpectEquality(t, tmr.Sounding(), true)
	test.DemandSuccess(t, tmr.Tick(vm))
	test.ExpectEquality(t, tmr.Sounding(), false)

	test.ExpectEquality(t, spk.starts, 1)
	test.ExpectEquality(t, spk.stops, 1)
}

func TestSilence(t *testing.T) {
	vm := chip8.New()
	spk := &speaker{}
	tmr := chip8.NewTimer(spk)

	test.DemandSuccess(t, tmr.Silence())
	test.ExpectEquality(t, spk.stops, 0)

	vm.ST = 10
	test.DemandSuccess(t, tmr.Tick(vm))
	test.DemandSuccess(t, tmr.Silence())
	test.ExpectEquality(t, tmr.Sounding(), false)
	test.ExpectEquality(t, spk.stops, 1)
}

func TestNoSpeaker(t *testing.T) {
	vm := chip8.New()
	tmr := chip8.NewTimer(nil)

	// the delay timer doesn't need a speaker
	vm.DT = 1
	test.ExpectSuccess(t, tmr.Tick(vm))

	vm.ST = 1
	err := tmr.Tick(vm)
	test.ExpectEquality(t, curated.Is(err, chip8.NoSpeaker), true)
}
