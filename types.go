// Copyright (c) 2024 Neomantra Corp

package itch

import (
	"bytes"
	"time"

	"github.com/shopspring/decimal"
)

///////////////////////////////////////////////////////////////////////////////

// Price is a fixed-point price with 4 implied decimal digits: the wire
// value is price * 10000. Book logic only ever compares and adds raw
// Price values; conversion to a human/decimal form is a presentation
// concern, never performed on the hot path.
type Price int64

// PriceScale is the wire denominator of Price: raw = price * PriceScale.
const PriceScale = 10000

// Float64 converts to a float64 dollar amount. Presentation only.
func (p Price) Float64() float64 {
	return float64(p) / float64(PriceScale)
}

// Decimal converts to an exact decimal.Decimal dollar amount. Presentation only.
func (p Price) Decimal() decimal.Decimal {
	return decimal.New(int64(p), -4)
}

///////////////////////////////////////////////////////////////////////////////

// Volume is a share count.
type Volume uint32

// OrderRef is a venue-assigned order reference, unique within a
// trading day and venue.
type OrderRef uint64

// MatchNumber (TradeRef) is a venue-assigned identifier unique per
// execution or trade event.
type MatchNumber uint64

// Timestamp is nanoseconds since midnight of the trading day. ITCH
// encodes it in 6 bytes on the wire; it is zero-extended to 8 here.
type Timestamp uint64

// Time resolves a Timestamp to a wall-clock time.Time given the
// trading day it belongs to (the day is not itself encoded per message).
func (ts Timestamp) Time(bookDate time.Time) time.Time {
	y, m, d := bookDate.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, bookDate.Location())
	return midnight.Add(time.Duration(ts))
}

///////////////////////////////////////////////////////////////////////////////

// Symbol is the 8-byte, right-space-padded ASCII ticker ITCH carries in
// every symbol-keyed message. Comparisons are byte-wise, as spec'd;
// TrimmedString is the only place padding is stripped.
type Symbol [8]byte

// NewSymbol right-pads s with spaces (or truncates) to form a Symbol.
func NewSymbol(s string) Symbol {
	var sym Symbol
	copy(sym[:], s)
	for i := len(s); i < len(sym); i++ {
		sym[i] = ' '
	}
	return sym
}

// TrimmedString returns s with trailing spaces/NULs removed.
func (s Symbol) TrimmedString() string {
	return string(bytes.TrimRight(bytes.TrimRight(s[:], "\x00"), " "))
}

func (s Symbol) String() string {
	return s.TrimmedString()
}
