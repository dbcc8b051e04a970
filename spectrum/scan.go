// SPDX-License-Identifier: EPL-2.0

package spectrum

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"
)

// windowsPerWorker sets how many windows a batch holds per worker. Larger
// batches amortize the goroutine fan-out; smaller ones bound memory.
const windowsPerWorker = 4

// ScanOptions configure Scan.
type ScanOptions struct {
	SampleRate int
	Analyzer   AnalyzerOptions
	// Workers is the number of analyzers run in parallel. Zero means
	// runtime.GOMAXPROCS(0).
	Workers int
}

// Scan reads every window from wr, estimates its pitch and calls fn with
// the results in window order. Windows are analyzed in parallel batches but
// fn is only ever called from the calling goroutine. An error from fn, from
// the windower or from ctx stops the scan; only io.EOF ends it cleanly.
func Scan(ctx context.Context, wr *Windower, opts ScanOptions, fn func(w Window, hz float64) error) error {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	analyzers := make([]*Analyzer, workers)
	for i := range analyzers {
		a, err := NewAnalyzer(wr.Size(), opts.SampleRate, opts.Analyzer)
		if err != nil {
			return err
		}
		analyzers[i] = a
	}

	batch := make([]Window, 0, workers*windowsPerWorker)
	pitches := make([]float64, cap(batch))
	errs := make([]error, cap(batch))

	for done := false; !done; {
		if err := ctx.Err(); err != nil {
			return err
		}

		batch = batch[:0]
		for len(batch) < cap(batch) {
			w, err := wr.Next()
			if err == io.EOF {
				done = true
				break
			}
			if err != nil {
				return err
			}
			batch = append(batch, w)
		}

		analyzeBatch(analyzers, batch, pitches, errs)

		for i, w := range batch {
			if errs[i] != nil {
				return fmt.Errorf("window %d: %w", w.Index, errs[i])
			}
			if err := fn(w, pitches[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

// analyzeBatch stripes batch across the analyzers; worker i takes windows
// i, i+len(analyzers) and so on.
func analyzeBatch(analyzers []*Analyzer, batch []Window, pitches []float64, errs []error) {
	if len(analyzers) == 1 || len(batch) <= 1 {
		for i, w := range batch {
			pitches[i], errs[i] = analyzers[0].Analyze(w)
		}
		return
	}

	var wg sync.WaitGroup
	for offset, a := range analyzers {
		if offset >= len(batch) {
			break
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := offset; i < len(batch); i += len(analyzers) {
				pitches[i], errs[i] = a.Analyze(batch[i])
			}
		}()
	}
	wg.Wait()
}
