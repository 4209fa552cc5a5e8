// Copyright (c) 2024 Neomantra Corp

package itch

import "fmt"

var (
	ErrTruncatedStream = fmt.Errorf("truncated stream")
	ErrNoRecord        = fmt.Errorf("no record scanned")
	ErrUnknownTag      = fmt.Errorf("unknown message tag")
	ErrLengthMismatch  = fmt.Errorf("length prefix does not match tag's known length")
)

func unknownTagError(tag byte) error {
	return fmt.Errorf("%w: %q (0x%02x)", ErrUnknownTag, string(rune(tag)), tag)
}

func lengthMismatchError(tag byte, expected, actual int) error {
	return fmt.Errorf("%w: tag %q expected %d bytes, framed for %d", ErrLengthMismatch, string(rune(tag)), expected, actual)
}

func unexpectedBytesError(tag byte, got int, want int) error {
	return fmt.Errorf("%w: tag %q expected %d bytes, got %d", ErrTruncatedStream, string(rune(tag)), want, got)
}
