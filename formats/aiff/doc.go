// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes uncompressed AIFF files with github.com/go-audio/aiff.
//
// Samples are big-endian two's complement at 16, 24 or 32 bits and come out
// as interleaved float32 in [-1, 1). AIFF-C is rejected with
// ErrUnsupportedEncoding; anything without a FORM/AIFF header is
// ErrNotAiffFile. Both match fault.ErrInvalidInput.
//
// go-audio seeks while parsing, so streamed input (stdin, HTTP bodies) is
// buffered in memory before decoding.
package aiff
