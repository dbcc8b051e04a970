// SPDX-License-Identifier: EPL-2.0

package floppy

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"
	"unicode"

	"github.com/ik5/audnote/event"
)

const DefaultName = "song"

// Writer emits one bytecode table. Name is the C identifier of the array;
// characters that cannot appear in an identifier become underscores.
type Writer struct {
	Name string
}

func (Writer) Extension() string { return ".flb" }

type entry struct {
	note     byte
	duration uint16
}

func (w Writer) Write(out io.Writer, st event.Stream) error {
	track, err := encode(st)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(out)
	fmt.Fprintf(bw, "const byte %s[] PROGMEM = {\n", Identifier(w.Name))
	fmt.Fprintf(bw, "%s, 0x1, %s", pair(uint16(3*len(track)+5)), pair(uint16(len(track))))
	for _, e := range track {
		fmt.Fprintf(bw, ", %#x, %s", e.note, pair(e.duration))
	}
	bw.WriteString("\n}\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing floppy table: %w", err)
	}
	return nil
}

func encode(st event.Stream) ([]entry, error) {
	if 3*len(st)+5 > math.MaxUint16 {
		return nil, fmt.Errorf("%d events: %w", len(st), ErrSongTooLong)
	}

	track := make([]entry, 0, len(st))
	for i, e := range st {
		if e.Duration.Unit() != event.Seconds {
			return nil, fmt.Errorf("event %d is in %s: %w", i, e.Duration.Unit(), ErrNotSeconds)
		}

		var n byte
		switch {
		case e.Note.IsRest():
		case e.Note < 0 || e.Note > math.MaxUint8:
			return nil, fmt.Errorf("event %d: note %d: %w", i, int(e.Note), ErrNoteOutOfRange)
		default:
			n = byte(e.Note)
		}

		ms := int(e.Duration.Value() * 1000)
		if ms > math.MaxUint16 {
			return nil, fmt.Errorf("event %d: %d ms: %w", i, ms, ErrDurationTooLong)
		}
		track = append(track, entry{note: n, duration: uint16(ms)})
	}
	return track, nil
}

// pair prints v as its high and low byte.
func pair(v uint16) string {
	return fmt.Sprintf("%#x, %#x", v>>8, v&0xFF)
}

// Identifier turns name into a valid C identifier, falling back to
// DefaultName when nothing usable is left.
func Identifier(name string) string {
	id := strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			return r
		}
		return '_'
	}, name)

	if strings.Trim(id, "_") == "" {
		return DefaultName
	}
	if unicode.IsDigit(rune(id[0])) {
		id = "_" + id
	}
	return id
}
