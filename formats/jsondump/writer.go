// SPDX-License-Identifier: EPL-2.0

// Package jsondump writes event streams as JSON documents.
//
//	{"unit":"seconds","events":[{"note":69,"name":"A4","duration":0.186}]}
//
// Rests carry note -1 and name "rest". Any duration unit is accepted as
// long as the stream does not mix them; an empty stream has no unit.
package jsondump

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ik5/audnote/event"
)

type Document struct {
	Unit   string  `json:"unit,omitempty"`
	Events []Event `json:"events"`
}

type Event struct {
	Note     int     `json:"note"`
	Name     string  `json:"name"`
	Duration float64 `json:"duration"`
}

// Writer emits one Document. Indent, when set, pretty prints it.
type Writer struct {
	Indent string
}

func (Writer) Extension() string { return ".json" }

func (w Writer) Write(out io.Writer, st event.Stream) error {
	doc, err := NewDocument(st)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	if w.Indent != "" {
		enc.SetIndent("", w.Indent)
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("writing json: %w", err)
	}
	return nil
}

func NewDocument(st event.Stream) (Document, error) {
	unit, ok, err := st.Unit()
	if err != nil {
		return Document{}, err
	}

	doc := Document{Events: make([]Event, len(st))}
	if ok {
		doc.Unit = unit.String()
	}
	for i, e := range st {
		doc.Events[i] = Event{
			Note:     int(e.Note),
			Name:     e.Note.String(),
			Duration: e.Duration.Value(),
		}
	}
	return doc, nil
}
