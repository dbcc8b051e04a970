// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio with github.com/jfreymuth/oggvorbis.
//
// The library already produces interleaved float32 samples, so the source
// passes them through untouched. Every read returns whole frames; a
// destination shorter than one frame is rejected with
// audio.ErrInvalidDstSize.
package vorbis
