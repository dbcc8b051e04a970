// SPDX-License-Identifier: EPL-2.0

// Package codecs wires every decoder and writer the command line tool and
// the HTTP service offer.
package codecs

import (
	"mime"
	"strings"

	"github.com/ik5/audnote/audio"
	"github.com/ik5/audnote/event"
	"github.com/ik5/audnote/formats/aiff"
	"github.com/ik5/audnote/formats/debug"
	"github.com/ik5/audnote/formats/floppy"
	"github.com/ik5/audnote/formats/jsondump"
	"github.com/ik5/audnote/formats/midi"
	"github.com/ik5/audnote/formats/mp3"
	"github.com/ik5/audnote/formats/vorbis"
	"github.com/ik5/audnote/formats/wav"
)

// Decoders returns a registry keyed by file extension.
func Decoders() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	return reg
}

// Writers returns a registry of every output format with default options.
func Writers() *event.WriterRegistry {
	reg := event.NewWriterRegistry()
	reg.Register("midi", midi.Writer{})
	reg.Register("floppy", floppy.Writer{})
	reg.Register("json", jsondump.Writer{})
	reg.Register("debug", debug.Writer{})
	reg.Register("wav", wav.Synth{})
	return reg
}

// Named returns w with its output name set, for writers that embed one.
func Named(w event.Writer, name string) event.Writer {
	if fw, ok := w.(floppy.Writer); ok {
		fw.Name = name
		return fw
	}
	return w
}

var contentTypes = map[string]string{
	".mid":  "audio/midi",
	".flb":  "text/x-c; charset=utf-8",
	".json": "application/json",
	".txt":  "text/plain; charset=utf-8",
	".wav":  "audio/wav",
}

// ContentType is the MIME type of documents w produces.
func ContentType(w event.Writer) string {
	ext := strings.ToLower(w.Extension())
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
