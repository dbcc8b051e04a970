// SPDX-License-Identifier: EPL-2.0

package spectrum

import (
	"fmt"
	"math/cmplx"

	"github.com/mjibson/go-dsp/window"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
)

// DefaultSilenceThreshold is the peak magnitude under which a window counts
// as silent. It corresponds to a 10000 magnitude on 16-bit integer samples
// for an untapered window of DefaultWindowSize samples; the analyzer scales
// it to its own size and taper.
const DefaultSilenceThreshold = 10000.0 / 32768.0

// Apodization selects the taper applied to a window before the transform.
type Apodization int

const (
	ApodizationNone Apodization = iota
	ApodizationHann
	ApodizationHamming
	ApodizationBlackman
)

var apodizationNames = [...]string{"none", "hann", "hamming", "blackman"}

// ParseApodization accepts "none", "hann", "hamming" or "blackman".
func ParseApodization(s string) (Apodization, error) {
	if s == "" {
		return ApodizationNone, nil
	}
	for i, name := range apodizationNames {
		if s == name {
			return Apodization(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownApodization, s)
}

func (a Apodization) String() string {
	if a < 0 || int(a) >= len(apodizationNames) {
		return fmt.Sprintf("apodization(%d)", int(a))
	}
	return apodizationNames[a]
}

func (a Apodization) coefficients(size int) ([]float64, error) {
	switch a {
	case ApodizationNone:
		return nil, nil
	case ApodizationHann:
		return window.Hann(size), nil
	case ApodizationHamming:
		return window.Hamming(size), nil
	case ApodizationBlackman:
		return window.Blackman(size), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownApodization, int(a))
}

// AnalyzerOptions tune an Analyzer. The zero value applies no taper and
// treats only all-zero spectra as silent.
type AnalyzerOptions struct {
	Apodization Apodization
	// SilenceThreshold is expressed for an untapered DefaultWindowSize
	// window. A tone's peak grows with the window length and shrinks with
	// the taper's coherent gain, and the threshold follows both.
	SilenceThreshold float64
}

// Analyzer estimates the dominant frequency of fixed-size windows.
// It keeps scratch buffers, so one Analyzer must not be shared between
// goroutines.
type Analyzer struct {
	size      int
	rate      int
	threshold float64

	fft   *fourier.FFT
	taper []float64

	in   []float64
	out  []complex128
	mags []float64
}

// NewAnalyzer prepares an analyzer for windows of size samples taken at
// sampleRate Hz.
func NewAnalyzer(size, sampleRate int, opts AnalyzerOptions) (*Analyzer, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: %d", ErrWindowSize, size)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrSampleRate, sampleRate)
	}
	taper, err := opts.Apodization.coefficients(size)
	if err != nil {
		return nil, err
	}

	return &Analyzer{
		size:      size,
		rate:      sampleRate,
		threshold: scaledThreshold(opts.SilenceThreshold, size, taper),
		fft:       fourier.NewFFT(size),
		taper:     taper,
		in:        make([]float64, size),
		out:       make([]complex128, size/2+1),
		mags:      make([]float64, size/2),
	}, nil
}

func scaledThreshold(th float64, size int, taper []float64) float64 {
	gain := 1.0
	if taper != nil {
		gain = floats.Sum(taper) / float64(len(taper))
	}
	return th * float64(size) / DefaultWindowSize * gain
}

// Threshold is the silence threshold after scaling to the window size and
// taper.
func (a *Analyzer) Threshold() float64 { return a.threshold }

// Size is the window length the analyzer expects.
func (a *Analyzer) Size() int { return a.size }

// BinFrequency is the center frequency of bin k.
func (a *Analyzer) BinFrequency(k int) float64 {
	return float64(k) * float64(a.rate) / float64(a.size)
}

// Magnitudes returns the spectrum magnitudes of bins 1..size/2; element i
// holds bin i+1. The slice is reused by the next call.
func (a *Analyzer) Magnitudes(w Window) ([]float64, error) {
	if len(w.Samples) != a.size {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrWindowLength, len(w.Samples), a.size)
	}

	for i, s := range w.Samples {
		a.in[i] = float64(s)
	}
	if a.taper != nil {
		floats.Mul(a.in, a.taper)
	}

	a.out = a.fft.Coefficients(a.out, a.in)
	for k := range a.mags {
		a.mags[k] = cmplx.Abs(a.out[k+1])
	}
	return a.mags, nil
}

// Analyze returns the frequency of the strongest bin in 1..size/2. The
// lowest bin wins a tie. A window whose peak is below the silence threshold,
// or whose spectrum is flat zero, yields 0.
func (a *Analyzer) Analyze(w Window) (float64, error) {
	mags, err := a.Magnitudes(w)
	if err != nil {
		return 0, err
	}

	peak := floats.MaxIdx(mags)
	if mags[peak] == 0 || mags[peak] < a.threshold {
		return 0, nil
	}
	return a.BinFrequency(peak + 1), nil
}
