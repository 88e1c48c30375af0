package main

import (
	"github.com/kestrel-emu/chip8/logger"
	"github.com/kestrel-emu/chip8/tone"
	"github.com/veandco/go-sdl2/mix"
	"github.com/veandco/go-sdl2/sdl"
)

/// Tone played while the sound timer is running.
///
type Tone struct {
	chunk   *mix.Chunk
	channel int
	cleanup func()
}

/// OpenTone opens the audio device and loads the tone. An empty filename
/// uses a synthesized beep.
///
func OpenTone(filename string) (*Tone, error) {
	if err := mix.OpenAudio(tone.SampleRate, sdl.AUDIO_S16SYS, 1, 1024); err != nil {
		return nil, err
	}

	path, cleanup, err := tone.Prepare(filename)
	if err != nil {
		mix.CloseAudio()
		return nil, err
	}

	chunk, err := mix.LoadWAV(path)
	if err != nil {
		cleanup()
		mix.CloseAudio()
		return nil, err
	}

	logger.Logf(logger.Allow, "audio", "loaded tone from %s", path)

	return &Tone{chunk: chunk, channel: -1, cleanup: cleanup}, nil
}

/// Start implements chip8.Speaker. The tone loops until stopped.
///
func (t *Tone) Start() error {
	ch, err := t.chunk.Play(-1, -1)
	if err != nil {
		return err
	}

	t.channel = ch
	return nil
}

/// Stop implements chip8.Speaker.
///
func (t *Tone) Stop() error {
	if t.channel >= 0 {
		mix.HaltChannel(t.channel)
		t.channel = -1
	}
	return nil
}

/// Close the audio device and release the tone.
///
func (t *Tone) Close() {
	t.Stop()
	t.chunk.Free()
	mix.CloseAudio()
	t.cleanup()
}
