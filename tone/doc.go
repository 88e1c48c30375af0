// Package tone prepares the sound played while the CHIP-8 sound timer is
// non-zero. The host audio mixer loads a single WAV file and loops it, so
// every source is reduced to a WAV file on disk: a synthesized square wave
// by default, or a user supplied WAV or MP3 file.
package tone
