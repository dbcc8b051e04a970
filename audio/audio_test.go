// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"slices"
	"sync"
	"testing"
)

type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(io.Reader) (Source, error) {
	return NewBufferSource(44100, 1, make([]float32, 100)), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}
	registry.Register("wav", decoder)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}
	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}

	if _, ok := registry.Get("WAV"); !ok {
		t.Error("Registry.Get() should ignore case")
	}
	if _, ok := registry.Get("flac"); ok {
		t.Error("Registry.Get() returned ok=true for non-existent format")
	}
}

func TestRegistry_ForPath(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	wav := &mockDecoder{name: "wav"}
	mp3 := &mockDecoder{name: "mp3"}
	registry.Register("wav", wav)
	registry.Register("mp3", mp3)

	tests := []struct {
		path    string
		want    Decoder
		wantErr bool
	}{
		{path: "melody.wav", want: wav},
		{path: "/tmp/Melody.MP3", want: mp3},
		{path: "melody.flac", wantErr: true},
		{path: "melody", wantErr: true},
	}

	for _, tt := range tests {
		got, err := registry.ForPath(tt.path)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownFormat) {
				t.Errorf("ForPath(%q) error = %v, want ErrUnknownFormat", tt.path, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ForPath(%q) = %v, %v", tt.path, got, err)
		}
	}

	if formats := registry.Formats(); !slices.Equal(formats, []string{"mp3", "wav"}) {
		t.Errorf("Formats() = %v", formats)
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	var wg sync.WaitGroup

	for i := range 10 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			registry.Register(string(rune('a'+i)), &mockDecoder{})
		}()
		go func() {
			defer wg.Done()
			registry.Get(string(rune('a' + i)))
		}()
	}
	wg.Wait()

	if len(registry.Formats()) != 10 {
		t.Errorf("Formats() has %d entries, want 10", len(registry.Formats()))
	}
}

func TestBufferSource(t *testing.T) {
	t.Parallel()

	samples := []float32{0.1, 0.2, 0.3, 0.4, 0.5}
	src := NewBufferSource(8000, 1, samples)

	if src.SampleRate() != 8000 || src.Channels() != 1 || src.Len() != 5 {
		t.Fatalf("metadata = %d Hz, %d ch, %d samples", src.SampleRate(), src.Channels(), src.Len())
	}

	buf := make([]float32, 3)
	n, err := src.ReadSamples(buf)
	if n != 3 || err != nil {
		t.Fatalf("first ReadSamples() = %d, %v", n, err)
	}
	n, err = src.ReadSamples(buf)
	if n != 2 || err != io.EOF {
		t.Fatalf("second ReadSamples() = %d, %v; want 2, EOF", n, err)
	}
	if n, err = src.ReadSamples(buf); n != 0 || err != io.EOF {
		t.Fatalf("ReadSamples() after end = %d, %v", n, err)
	}

	src.Reset()
	if n, _ := src.ReadSamples(buf); n != 3 || buf[0] != 0.1 {
		t.Errorf("ReadSamples() after Reset = %d, %v", n, buf)
	}

	if samples[0] != 0.1 {
		t.Error("BufferSource modified its input")
	}
}

func TestBufferSource_InvalidDst(t *testing.T) {
	t.Parallel()

	src := NewBufferSource(8000, 2, make([]float32, 8))
	if _, err := src.ReadSamples(make([]float32, 3)); err != ErrInvalidDstSize {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
}
