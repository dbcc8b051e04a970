// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"fmt"

	"github.com/ik5/audnote/audio"
	"github.com/ik5/audnote/formats/wav"
)

func ExampleNewMonoMixer() {
	stereo := audio.NewBufferSource(8000, 2, []float32{1, 0, 0.5, 0.5, -1, 0})
	mono := audio.NewMonoMixer(stereo)

	buf := make([]float32, 8)
	n, _ := mono.ReadSamples(buf)
	fmt.Println(mono.Channels(), buf[:n])
	// Output: 1 [0.5 0.5 -0.5]
}

// A BufferSource can be read again after Reset, which is how the same
// recording is analyzed with different settings.
func ExampleBufferSource_Reset() {
	src := audio.NewBufferSource(8000, 1, []float32{0.1, 0.2, 0.3})
	buf := make([]float32, 4)

	first, _ := src.ReadSamples(buf)
	src.Reset()
	second, _ := src.ReadSamples(buf)
	fmt.Println(first, second)
	// Output: 3 3
}

func ExampleRegistry_ForPath() {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})

	if _, err := reg.ForPath("take1.WAV"); err == nil {
		fmt.Println("wav: ok")
	}
	_, err := reg.ForPath("take1.flac")
	fmt.Println(err)
	// Output:
	// wav: ok
	// invalid input: unknown audio format: "flac" (known: [wav])
}
