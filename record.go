// Copyright (c) 2024 Neomantra Corp
//
// Tagged message variants: shared header plus one struct per ITCH 5.0
// message kind (spec.md table, section 4.1). Each kind is a plain
// struct implementing Record/RecordPtr — no class hierarchy, dispatch
// is by Tag switch in Decoder.Visit, mirroring the teacher's RType
// switch in DbnScanner.Visit.

package itch

// Record is the marker interface every message kind satisfies.
type Record interface {
	Tag() Tag
}

// RecordPtr constrains a pointer-to-T to be fillable from raw wire
// bytes. T itself satisfies Record; RP is always *T.
type RecordPtr[T any] interface {
	*T
	Record
	RSize() int
	Fill_Raw([]byte) error
}

///////////////////////////////////////////////////////////////////////////////

// Header is the common prefix of every ITCH 5.0 message: the tag plus
// the venue's stock-locate/tracking-number/timestamp fields.
type Header struct {
	MessageTag     Tag       `json:"tag"`
	StockLocate    uint16    `json:"stock_locate"`
	TrackingNumber uint16    `json:"tracking_number"`
	Timestamp      Timestamp `json:"timestamp"`
}

// HeaderSize is the byte width of Header on the wire: 1 (tag) + 2 + 2 + 6.
const HeaderSize = 11

// Tag implements Record for any embedder of Header.
func (h Header) Tag() Tag { return h.MessageTag }

func fillHeaderRaw(b []byte, h *Header) error {
	if len(b) < HeaderSize {
		return unexpectedBytesError(0, len(b), HeaderSize)
	}
	h.MessageTag = Tag(b[0])
	h.StockLocate = readUint16BE(b[1:3])
	h.TrackingNumber = readUint16BE(b[3:5])
	h.Timestamp = Timestamp(readUint48BE(b[5:11]))
	return nil
}

func putHeaderRaw(b []byte, h Header) {
	b[0] = byte(h.MessageTag)
	putUint16BE(b[1:3], h.StockLocate)
	putUint16BE(b[3:5], h.TrackingNumber)
	putUint48BE(b[5:11], uint64(h.Timestamp))
}

func putUint16BE(b []byte, v uint16) { b[0] = byte(v >> 8); b[1] = byte(v) }
func putUint32BE(b []byte, v uint32) {
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}
func putUint64BE(b []byte, v uint64) {
	b[0] = byte(v >> 56)
	b[1] = byte(v >> 48)
	b[2] = byte(v >> 40)
	b[3] = byte(v >> 32)
	b[4] = byte(v >> 24)
	b[5] = byte(v >> 16)
	b[6] = byte(v >> 8)
	b[7] = byte(v)
}
