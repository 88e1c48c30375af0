package tone

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/kestrel-emu/chip8/curated"
	"github.com/kestrel-emu/chip8/logger"
)

/// Error patterns.
///
const (
	ToneError   = "tone: %v"
	Unsupported = "tone: unsupported file type: %s"
)

/// Default parameters of the synthesized tone.
///
const (
	Frequency  = 440
	SampleRate = 44100
	Length     = 100 * time.Millisecond

	bitDepth  = 16
	amplitude = 0x2000

	// wav format for uncompressed PCM
	pcmFormat = 1
)

const logTag = "tone"

/// Synthesize writes a square wave of freq Hz as a 16 bit mono WAV. The
/// length is rounded to a whole number of cycles so the tone can be looped.
///
func Synthesize(w io.WriteSeeker, freq int, rate int, length time.Duration) error {
	if freq <= 0 || rate <= 0 || freq*2 > rate {
		return curated.Errorf(ToneError, "invalid frequency")
	}

	cycles := int(length.Seconds()*float64(freq) + 0.5)
	if cycles < 1 {
		cycles = 1
	}

	n := cycles * rate / freq
	data := make([]int, n)

	for i := range data {
		// first half of every cycle is high
		if i*freq*2/rate%2 == 0 {
			data[i] = amplitude
		} else {
			data[i] = -amplitude
		}
	}

	return encode(w, data, rate)
}

/// encode mono 16 bit samples as a WAV.
///
func encode(w io.WriteSeeker, data []int, rate int) error {
	enc := wav.NewEncoder(w, rate, bitDepth, 1, pcmFormat)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: rate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return curated.Errorf(ToneError, err)
	}

	if err := enc.Close(); err != nil {
		return curated.Errorf(ToneError, err)
	}

	return nil
}

/// Prepare returns the path of a WAV file for the mixer to load. An empty
/// filename synthesizes the default tone. MP3 files are decoded and written
/// as WAV. The cleanup function removes any temporary file and must always be
/// called.
///
func Prepare(filename string) (string, func(), error) {
	nop := func() {}

	switch strings.ToLower(filepath.Ext(filename)) {
	case "":
		if filename != "" {
			break
		}

		logger.Logf(logger.Allow, logTag, "synthesizing %dHz square wave", Frequency)

		return temporary(func(f *os.File) error {
			return Synthesize(f, Frequency, SampleRate, Length)
		})

	case ".wav":
		if err := validate(filename); err != nil {
			return "", nop, err
		}

		logger.Logf(logger.Allow, logTag, "using %s", filename)

		return filename, nop, nil

	case ".mp3":
		data, rate, err := decodeMP3(filename)
		if err != nil {
			return "", nop, err
		}

		logger.Logf(logger.Allow, logTag, "converted %s (%d samples at %dHz)", filename, len(data), rate)

		return temporary(func(f *os.File) error {
			return encode(f, data, rate)
		})
	}

	return "", nop, curated.Errorf(Unsupported, filepath.Ext(filename))
}

/// temporary creates a temporary WAV file with the supplied writer.
///
func temporary(write func(f *os.File) error) (string, func(), error) {
	f, err := os.CreateTemp("", "chip8-tone-*.wav")
	if err != nil {
		return "", func() {}, curated.Errorf(ToneError, err)
	}

	cleanup := func() {
		_ = os.Remove(f.Name())
	}

	err = write(f)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = curated.Errorf(ToneError, cerr)
	}
	if err != nil {
		cleanup()
		return "", func() {}, err
	}

	return f.Name(), cleanup, nil
}

/// validate checks that filename is a WAV file with PCM data.
///
func validate(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return curated.Errorf(ToneError, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if dec == nil || !dec.IsValidFile() {
		return curated.Errorf(ToneError, "not a valid wav file")
	}

	return nil
}

/// decodeMP3 returns the left channel of an MP3 file as 16 bit samples.
///
func decodeMP3(filename string) ([]int, int, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, 0, curated.Errorf(ToneError, err)
	}
	defer f.Close()

	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, 0, curated.Errorf(ToneError, err)
	}

	// the decoded stream is always 16 bit little endian stereo
	var data []int
	chunk := make([]byte, 4096)

	for {
		n, err := io.ReadFull(dec, chunk)
		for i := 0; i+1 < n; i += 4 {
			data = append(data, int(int16(uint16(chunk[i])|uint16(chunk[i+1])<<8)))
		}

		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return nil, 0, curated.Errorf(ToneError, err)
		}
	}

	if len(data) == 0 {
		return nil, 0, curated.Errorf(ToneError, "mp3 contains no samples")
	}

	return data, dec.SampleRate(), nil
}
