// SPDX-License-Identifier: EPL-2.0

// Package floppy writes event streams as Flopkestra bytecode tables: C
// source declaring a PROGMEM byte array that an Arduino driving floppy
// drive steppers plays back.
//
// Layout of the array, all multi-byte values big-endian:
//
//	song length (2 bytes, 3*events+5)
//	track count (1 byte, always 0x1)
//	track length (2 bytes, events)
//	events: note (1 byte, 0x0 for a rest), duration in ms (2 bytes)
//
// Bytes are printed the way the player firmware's tooling expects, as
// unpadded lowercase hex literals ("0x0", "0x45").
package floppy
