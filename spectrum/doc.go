// SPDX-License-Identifier: EPL-2.0

// Package spectrum turns a mono sample stream into one pitch estimate per
// fixed-size window.
//
// A Windower pulls samples lazily and cuts them into non-overlapping
// windows; an Analyzer runs a real FFT over a window and reports the
// frequency of the strongest bin:
//
//	wr, err := spectrum.NewWindower(mono, spectrum.DefaultWindowSize, spectrum.PartialDrop)
//	a, err := spectrum.NewAnalyzer(wr.Size(), mono.SampleRate(), spectrum.AnalyzerOptions{})
//	for w, err := range wr.All() {
//	    if err != nil {
//	        return err
//	    }
//	    hz, err := a.Analyze(w)
//	    ...
//	}
//
// Scan does the same on several goroutines while keeping window order.
//
// The pitch resolution is one bin, sampleRate/size Hz; no interpolation
// between bins is attempted.
package spectrum
