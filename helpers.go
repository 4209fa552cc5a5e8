// Copyright (c) 2024 Neomantra Corp

package itch

import "encoding/binary"

// readUint48BE reads a 6-byte big-endian integer, zero-extended to 64 bits.
// ITCH timestamps (and nothing else in the format) use this width.
func readUint48BE(b []byte) uint64 {
	_ = b[5] // bounds check hint, mirrors binary.BigEndian's style
	return uint64(b[0])<<40 | uint64(b[1])<<32 | uint64(b[2])<<24 |
		uint64(b[3])<<16 | uint64(b[4])<<8 | uint64(b[5])
}

// putUint48BE writes v's low 48 bits as 6 big-endian bytes.
func putUint48BE(b []byte, v uint64) {
	_ = b[5]
	b[0] = byte(v >> 40)
	b[1] = byte(v >> 32)
	b[2] = byte(v >> 24)
	b[3] = byte(v >> 16)
	b[4] = byte(v >> 8)
	b[5] = byte(v)
}

func readUint16BE(b []byte) uint16 { return binary.BigEndian.Uint16(b) }
func readUint32BE(b []byte) uint32 { return binary.BigEndian.Uint32(b) }
func readUint64BE(b []byte) uint64 { return binary.BigEndian.Uint64(b) }
