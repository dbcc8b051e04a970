// SPDX-License-Identifier: EPL-2.0

package event

import (
	"fmt"
	"io"
	"slices"
	"sync"
)

// Writer serializes a finalized stream into a target format.
//
// The stream handed to Write is in playback order and its unit will not change
// any more. A Writer may reject what it cannot represent; such errors are
// returned to the caller unchanged.
type Writer interface {
	Write(w io.Writer, s Stream) error
	// Extension is the file extension, with its dot, for documents of this format.
	Extension() string
}

// WriterRegistry maps writer names (e.g. "midi", "json") to writers.
type WriterRegistry struct {
	writers map[string]Writer

	mtx *sync.Mutex
}

func NewWriterRegistry() *WriterRegistry {
	return &WriterRegistry{
		writers: make(map[string]Writer),
		mtx:     &sync.Mutex{},
	}
}

func (r *WriterRegistry) Register(name string, w Writer) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.writers[name] = w
}

func (r *WriterRegistry) Get(name string) (Writer, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	w, ok := r.writers[name]
	return w, ok
}

// Lookup is Get with an error naming the valid choices.
func (r *WriterRegistry) Lookup(name string) (Writer, error) {
	if w, ok := r.Get(name); ok {
		return w, nil
	}
	return nil, fmt.Errorf("%w: %q (valid: %v)", ErrUnknownWriter, name, r.Names())
}

// Names lists registered writers in sorted order.
func (r *WriterRegistry) Names() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	names := make([]string, 0, len(r.writers))
	for name := range r.writers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
