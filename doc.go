// SPDX-License-Identifier: EPL-2.0

// Package audnote transcribes monophonic recordings into note events.
//
// A run reads an audio.Source, mixes it to mono and optionally resamples it,
// cuts it into fixed windows, takes the strongest frequency of each window,
// quantizes it to the nearest MIDI note and run-length encodes the notes into
// (note, duration) events. A filter chain then cleans the events up and
// converts durations from windows to seconds or steps.
//
//	src, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
//	cfg := audnote.DefaultConfig()
//	cfg.Filters = append(cfg.Filters, filter.MinDuration{Threshold: 0.05})
//	err = audnote.Convert(ctx, src, cfg, midi.Writer{}, out)
//
// # Configuration
//
// Config is the only input besides the audio. DefaultConfig uses 4096-sample
// windows, drops a short trailing window, treats windows whose spectral peak
// stays under the silence threshold as rests, clamps notes to 0..127 and
// converts durations to seconds. Validate runs before the first sample is
// read.
//
// # Errors
//
// Every error the library returns matches one of the categories in package
// fault with errors.Is: invalid configuration, invalid input, unit and range.
// Writer errors are passed through unchanged.
//
// # Concurrency
//
// Windows are analyzed by Config.Workers goroutines, each with its own FFT
// plan. Results are consumed in window order, so the output does not depend
// on the worker count.
package audnote
