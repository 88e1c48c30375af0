package chip8

import (
	"context"
	"time"

	"github.com/kestrel-emu/chip8/curated"
	"github.com/kestrel-emu/chip8/logger"
)

/// FrameHz is the rate input is polled, timers are ticked and the display is
/// rendered.
///
const FrameHz = 60

/// Input supplies the state of the keypad once per frame. Quit is true when
/// the user has asked to stop.
///
type Input interface {
	Poll() (keys [16]bool, quit bool)
}

/// Renderer presents the display once per frame.
///
type Renderer interface {
	Render(fb *Framebuffer) error
}

/// Clock is the time source for the scheduler. A clock that also has a
/// Sleep(time.Duration) method is asked to wait whenever both rates are
/// ahead of schedule; otherwise Run polls the clock continuously.
///
type Clock interface {
	Now() time.Time
}

/// wallClock never sleeps. Run spins on it.
///
type wallClock struct{}

func (wallClock) Now() time.Time {
	return time.Now()
}

/// sleeper is the optional part of a Clock.
///
type sleeper interface {
	Sleep(d time.Duration)
}

/// Config for the scheduler.
///
type Config struct {
	/// CPUHz is the number of instructions executed per second.
	///
	CPUHz int
}

/// DefaultConfig runs programs at 500 instructions per second.
///
var DefaultConfig = Config{CPUHz: 500}

/// Limits for Config.CPUHz.
///
const (
	MinCPUHz = 1
	MaxCPUHz = 100000
)

/// Validate the configuration.
///
func (c Config) Validate() error {
	if c.CPUHz < MinCPUHz || c.CPUHz > MaxCPUHz {
		return curated.Errorf(InvalidConfig, "cpu rate must be between 1 and 100000 Hz")
	}
	return nil
}

/// maxLag is how far the scheduler will fall behind before it gives up
/// catching up.
///
const maxLag = 250 * time.Millisecond

/// Scheduler drives a machine. Instructions are executed at the configured
/// CPU rate and frames (input, timers, rendering) at FrameHz, both from the
/// same loop.
///
type Scheduler struct {
	vm       *Machine
	timer    *Timer
	input    Input
	renderer Renderer
	clock    Clock

	cpuHz         int
	cpuInterval   time.Duration
	frameInterval time.Duration

	lastCPU   time.Time
	lastFrame time.Time
	started   bool

	paused bool
	step   bool

	// number of frames run
	frames int64
}

/// NewScheduler is the preferred method of initialisation for the Scheduler
/// type.
///
func NewScheduler(vm *Machine, timer *Timer, input Input, renderer Renderer, cfg Config) (*Scheduler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Scheduler{
		vm:            vm,
		timer:         timer,
		input:         input,
		renderer:      renderer,
		clock:         wallClock{},
		cpuHz:         cfg.CPUHz,
		cpuInterval:   time.Second / time.Duration(cfg.CPUHz),
		frameInterval: time.Second / FrameHz,
	}

	return s, nil
}

/// SetClock replaces the wall clock. Must be called before the first Tick.
///
func (s *Scheduler) SetClock(clock Clock) {
	s.clock = clock
}

/// Run the machine until the user quits, an error occurs or the context is
/// cancelled. Quitting is not an error.
///
func (s *Scheduler) Run(ctx context.Context) error {
	logger.Logf(logger.Allow, "scheduler", "running at %d Hz", s.CPUHz())

	for {
		frames := s.frames
		now := s.clock.Now()

		quit, err := s.Tick(now)
		if err != nil {
			return err
		}
		if quit {
			logger.Log(logger.Allow, "scheduler", "quit")
			return nil
		}

		// cancellation is only noticed at frame boundaries
		if s.frames != frames {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		if sl, ok := s.clock.(sleeper); ok {
			if d := s.untilDue(now); d > 0 {
				sl.Sleep(d)
			}
		}
	}
}

/// untilDue is the time from now until the next instruction or frame.
///
func (s *Scheduler) untilDue(now time.Time) time.Duration {
	cpu := s.lastCPU.Add(s.cpuInterval).Sub(now)
	frame := s.lastFrame.Add(s.frameInterval).Sub(now)

	if cpu < frame {
		return cpu
	}
	return frame
}

/// Tick runs whatever is due at time now: at most one instruction and at most
/// one frame. Returns true if the input asked to quit.
///
func (s *Scheduler) Tick(now time.Time) (bool, error) {
	if !s.started {
		s.lastCPU = now
		s.lastFrame = now
		s.started = true
		return false, nil
	}

	if now.Sub(s.lastCPU) >= s.cpuInterval {
		s.lastCPU = advance(s.lastCPU, now, s.cpuInterval)

		if !s.paused || s.step {
			s.step = false

			if err := s.vm.Step(); err != nil {
				return false, err
			}
		}
	}

	if now.Sub(s.lastFrame) >= s.frameInterval {
		s.lastFrame = advance(s.lastFrame, now, s.frameInterval)
		s.frames++

		return s.frame()
	}

	return false, nil
}

/// frame polls input, ticks the timers and renders.
///
func (s *Scheduler) frame() (bool, error) {
	keys, quit := s.input.Poll()
	if quit {
		return true, nil
	}

	s.vm.SetKeys(keys)

	if !s.paused {
		if err := s.timer.Tick(s.vm); err != nil {
			return false, err
		}
	}

	return false, s.renderer.Render(&s.vm.Video)
}

/// advance last by one interval. When too far behind, the schedule restarts
/// from now rather than running a burst of catch up ticks.
///
func advance(last, now time.Time, interval time.Duration) time.Time {
	if now.Sub(last) > maxLag {
		return now
	}
	return last.Add(interval)
}

/// Pause or resume instruction execution and the timers. Input is still
/// polled and the display is still rendered while paused.
///
func (s *Scheduler) Pause(paused bool) {
	s.paused = paused
	s.step = false

	logger.Logf(logger.Allow, "scheduler", "paused: %v", paused)
}

/// Paused returns true if execution is paused.
///
func (s *Scheduler) Paused() bool {
	return s.paused
}

/// StepOnce executes a single instruction on the next CPU tick while paused.
///
func (s *Scheduler) StepOnce() {
	if s.paused {
		s.step = true
	}
}

/// SetCPUHz changes the instruction rate.
///
func (s *Scheduler) SetCPUHz(hz int) error {
	cfg := Config{CPUHz: hz}
	if err := cfg.Validate(); err != nil {
		return err
	}

	s.cpuHz = hz
	s.cpuInterval = time.Second / time.Duration(hz)

	logger.Logf(logger.Allow, "scheduler", "cpu rate %d Hz", hz)

	return nil
}

/// CPUHz returns the instruction rate.
///
func (s *Scheduler) CPUHz() int {
	return s.cpuHz
}

/// Frames returns the number of frames run.
///
func (s *Scheduler) Frames() int64 {
	return s.frames
}
