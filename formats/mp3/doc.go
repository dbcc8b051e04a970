// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG Layer III audio with github.com/hajimehoshi/go-mp3.
//
// The library always yields 16-bit little-endian stereo, so the returned
// source reports two channels even for mono files. Transcription mixes it
// down with audio.NewMonoMixer before windowing:
//
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	events, err := audnote.Transcribe(ctx, src, audnote.DefaultConfig())
//
// Samples are normalized to [-1, 1).
package mp3
