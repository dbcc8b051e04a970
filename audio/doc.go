// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample stream abstraction the transcriber reads
// from, plus the small processors needed to bring any decoded file into the
// mono stream the analyzer expects.
//
// # Source Interface
//
// Source is a pull-based stream of interleaved float32 samples in [-1, 1]:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Decoders in the formats/ subpackages return a Source; so do the processors
// below, which lets them be chained.
//
// # In-memory Streams
//
// BufferSource serves a slice that is already in memory. It never writes to
// the slice and can be rewound with Reset:
//
//	src := audio.NewBufferSource(44100, 1, samples)
//
// # Channel Mixing
//
// The analyzer works on mono audio. MonoMixer averages channels:
//
//	mono := audio.NewMonoMixer(stereo)
//
// # Resampling
//
// Resampler changes the sample rate with Catmull-Rom interpolation and a
// one-pole low-pass when downsampling:
//
//	r, err := audio.NewResampler(src, 44100)
//
// # Format Registry
//
// Registry maps format keys to decoders and picks one from a file name:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.ForPath("melody.wav")
//
// # Error Handling
//
// ReadSamples returns io.EOF when the stream is finished, possibly together
// with a final batch of samples:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    process(buf[:n])
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
