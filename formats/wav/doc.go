// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF/WAVE files on top of github.com/go-audio/wav.
//
// # Decoding
//
// Decoder accepts integer PCM (format 1, or WAVE_FORMAT_EXTENSIBLE) at 8, 16,
// 24 or 32 bits with any channel count. 8-bit data is unsigned; the rest is
// signed little-endian. Samples come out interleaved in [-1, 1):
//
//	src, err := wav.Decoder{}.Decode(f)
//	if errors.Is(err, fault.ErrInvalidInput) {
//	    // not a usable WAV file
//	}
//
// # Encoding
//
// WriteWAV16 writes mono 16-bit PCM. go-audio patches the chunk sizes after
// the data, so destinations that cannot seek are staged in memory.
//
// Synth is an event.Writer that renders a transcription back to audio as
// sine tones, which makes it easy to listen to what the analyzer heard.
package wav
