// Copyright (c) 2024 Neomantra Corp
//
// Wire decoder: turns a byte stream into tagged ITCH 5.0 records. Two
// framing modes are supported (spec.md section 9): a venue that
// prefixes each message with its own length (MoldUDP64/SoupBinTCP
// style), and one that does not, requiring the tag-to-length table to
// know how many bytes to read.

package itch

import (
	"bufio"
	"io"
)

// DefaultDecodeBufferSize sizes the buffered reader wrapping the source.
const DefaultDecodeBufferSize = 16 * 1024

// DefaultScratchBufferSize is bigger than the largest known message.
const DefaultScratchBufferSize = 64

// Framing selects how Decoder finds message boundaries in the stream.
type Framing int

const (
	// FramingLengthPrefixed expects a 2-byte big-endian length prefix
	// ahead of every message (the length counts the message itself,
	// not the prefix).
	FramingLengthPrefixed Framing = iota
	// FramingFixedByType has no length prefix: the first byte is the
	// tag, and Decoder.lengthTable supplies the record's full width
	// (tag included).
	FramingFixedByType
)

// Decoder scans a raw ITCH byte stream, one message at a time.
type Decoder struct {
	srcReader   io.Reader
	buffReader  *bufio.Reader
	framing     Framing
	lengthTable LengthTable
	lastRecord  []byte
	lastSize    int
	lastError   error
}

// NewDecoder creates a Decoder over sourceReader. lengthTable supplies
// the framing width under FramingFixedByType, and in both framing modes
// is also the reference Visit checks each record's length against
// before decoding it (so pass the table matching the venue/version
// feeding sourceReader even under FramingLengthPrefixed).
func NewDecoder(sourceReader io.Reader, framing Framing, lengthTable LengthTable) *Decoder {
	return &Decoder{
		srcReader:   sourceReader,
		buffReader:  bufio.NewReaderSize(sourceReader, DefaultDecodeBufferSize),
		framing:     framing,
		lengthTable: lengthTable,
		lastRecord:  make([]byte, DefaultScratchBufferSize),
		lastSize:    0,
	}
}

// Error returns the last error from Next. May be io.EOF.
func (d *Decoder) Error() error {
	return d.lastError
}

// LastTag returns the tag of the most recently scanned record.
func (d *Decoder) LastTag() Tag {
	if d.lastSize == 0 {
		return 0
	}
	return Tag(d.lastRecord[0])
}

// LastRecord returns the raw bytes of the most recently scanned record.
func (d *Decoder) LastRecord() []byte {
	return d.lastRecord[:d.lastSize]
}

func (d *Decoder) ensureCapacity(n int) {
	if cap(d.lastRecord) < n {
		d.lastRecord = make([]byte, n)
	} else {
		d.lastRecord = d.lastRecord[:n]
	}
}

// Next scans the next record from the stream, reporting whether one
// was successfully read. On false, call Error for the cause (io.EOF at
// a clean stream end).
func (d *Decoder) Next() bool {
	switch d.framing {
	case FramingLengthPrefixed:
		return d.nextLengthPrefixed()
	default:
		return d.nextFixedByType()
	}
}

func (d *Decoder) nextLengthPrefixed() bool {
	var lenBuf [2]byte
	if _, err := io.ReadFull(d.buffReader, lenBuf[:]); err != nil {
		d.lastError = err
		d.lastSize = 0
		return false
	}
	msgLen := int(readUint16BE(lenBuf[:]))
	d.ensureCapacity(msgLen)
	if _, err := io.ReadFull(d.buffReader, d.lastRecord[:msgLen]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			err = ErrTruncatedStream
		}
		d.lastError = err
		d.lastSize = 0
		return false
	}
	d.lastError = nil
	d.lastSize = msgLen
	return true
}

func (d *Decoder) nextFixedByType() bool {
	tagByte, err := d.buffReader.ReadByte()
	if err != nil {
		d.lastError = err
		d.lastSize = 0
		return false
	}
	msgLen, ok := d.lengthTable[Tag(tagByte)]
	if !ok {
		d.lastError = unknownTagError(tagByte)
		d.lastSize = 0
		return false
	}
	d.ensureCapacity(msgLen)
	d.lastRecord[0] = tagByte
	if _, err := io.ReadFull(d.buffReader, d.lastRecord[1:msgLen]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			err = ErrTruncatedStream
		}
		d.lastError = err
		d.lastSize = 0
		return false
	}
	d.lastError = nil
	d.lastSize = msgLen
	return true
}

// DecoderDecode parses the Decoder's current record as a concrete
// Record type. A plain function, since receiver methods cannot be generic.
func DecoderDecode[R Record, RP RecordPtr[R]](d *Decoder) (*R, error) {
	if d.lastSize < HeaderSize {
		return nil, ErrNoRecord
	}
	var rp RP = new(R)
	if d.lastSize < rp.RSize() {
		return nil, lengthMismatchError(d.lastRecord[0], rp.RSize(), d.lastSize)
	}
	if err := rp.Fill_Raw(d.lastRecord[:rp.RSize()]); err != nil {
		return nil, err
	}
	return rp, nil
}

// Visit parses the current record and dispatches it to visitor, one
// On<Tag> call per message kind.
func (d *Decoder) Visit(visitor Visitor) error {
	if d.lastSize < HeaderSize {
		return ErrNoRecord
	}

	tag := Tag(d.lastRecord[0])
	buf := d.lastRecord[:d.lastSize]

	if expected, ok := d.lengthTable[tag]; ok && d.lastSize != expected {
		return lengthMismatchError(byte(tag), expected, d.lastSize)
	}

	switch tag {
	case Tag_SystemEvent:
		var m SystemEventMessage
		if err := m.Fill_Raw(buf); err != nil {
			return err
		}
		return visitor.OnSystemEvent(&m)
	case Tag_StockDirectory:
		var m StockDirectoryMessage
		if err := m.Fill_Raw(buf); err != nil {
			return err
		}
		return visitor.OnStockDirectory(&m)
	case Tag_StockTradingAction:
		var m StockTradingActionMessage
		if err := m.Fill_Raw(buf); err != nil {
			return err
		}
		return visitor.OnStockTradingAction(&m)
	case Tag_RegSHORestriction:
		var m RegSHORestrictionMessage
		if err := m.Fill_Raw(buf); err != nil {
			return err
		}
		return visitor.OnRegSHORestriction(&m)
	case Tag_MarketParticipantPosition:
		var m MarketParticipantPositionMessage
		if err := m.Fill_Raw(buf); err != nil {
			return err
		}
		return visitor.OnMarketParticipantPosition(&m)
	case Tag_MWCBDeclineLevel:
		var m MWCBDeclineLevelMessage
		if err := m.Fill_Raw(buf); err != nil {
			return err
		}
		return visitor.OnMWCBDeclineLevel(&m)
	case Tag_MWCBStatus:
		var m MWCBStatusMessage
		if err := m.Fill_Raw(buf); err != nil {
			return err
		}
		return visitor.OnMWCBStatus(&m)
	case Tag_IPOQuotingPeriod:
		var m IPOQuotingPeriodMessage
		if err := m.Fill_Raw(buf); err != nil {
			return err
		}
		return visitor.OnIPOQuotingPeriod(&m)
	case Tag_LULDAuctionCollar:
		var m LULDAuctionCollarMessage
		if err := m.Fill_Raw(buf); err != nil {
			return err
		}
		return visitor.OnLULDAuctionCollar(&m)
	case Tag_OperationalHalt:
		var m OperationalHaltMessage
		if err := m.Fill_Raw(buf); err != nil {
			return err
		}
		return visitor.OnOperationalHalt(&m)

	case Tag_AddOrder:
		var m AddOrderMessage
		if err := m.Fill_Raw(buf); err != nil {
			return err
		}
		return visitor.OnAddOrder(&m)
	case Tag_AddOrderMPID:
		var m AddOrderMPIDMessage
		if err := m.Fill_Raw(buf); err != nil {
			return err
		}
		return visitor.OnAddOrderMPID(&m)
	case Tag_OrderExecuted:
		var m OrderExecutedMessage
		if err := m.Fill_Raw(buf); err != nil {
			return err
		}
		return visitor.OnOrderExecuted(&m)
	case Tag_OrderExecutedWithPrice:
		var m OrderExecutedWithPriceMessage
		if err := m.Fill_Raw(buf); err != nil {
			return err
		}
		return visitor.OnOrderExecutedWithPrice(&m)
	case Tag_OrderCancel:
		var m OrderCancelMessage
		if err := m.Fill_Raw(buf); err != nil {
			return err
		}
		return visitor.OnOrderCancel(&m)
	case Tag_OrderDelete:
		var m OrderDeleteMessage
		if err := m.Fill_Raw(buf); err != nil {
			return err
		}
		return visitor.OnOrderDelete(&m)
	case Tag_OrderReplace:
		var m OrderReplaceMessage
		if err := m.Fill_Raw(buf); err != nil {
			return err
		}
		return visitor.OnOrderReplace(&m)

	case Tag_Trade:
		var m TradeMessage
		if err := m.Fill_Raw(buf); err != nil {
			return err
		}
		return visitor.OnTrade(&m)
	case Tag_CrossTrade:
		var m CrossTradeMessage
		if err := m.Fill_Raw(buf); err != nil {
			return err
		}
		return visitor.OnCrossTrade(&m)
	case Tag_BrokenTrade:
		var m BrokenTradeMessage
		if err := m.Fill_Raw(buf); err != nil {
			return err
		}
		return visitor.OnBrokenTrade(&m)
	case Tag_NOII:
		var m NOIIMessage
		if err := m.Fill_Raw(buf); err != nil {
			return err
		}
		return visitor.OnNOII(&m)
	case Tag_RPI:
		var m RPIMessage
		if err := m.Fill_Raw(buf); err != nil {
			return err
		}
		return visitor.OnRPI(&m)
	case Tag_DirectListingCapitalRaise:
		var m DirectListingCapitalRaiseMessage
		if err := m.Fill_Raw(buf); err != nil {
			return err
		}
		return visitor.OnDirectListingCapitalRaise(&m)

	default:
		return unknownTagError(byte(tag))
	}
}

///////////////////////////////////////////////////////////////////////////////

// DecodeAll reads every record from reader under the given framing and
// length table, dispatching each to visitor, then calls OnStreamEnd.
// io.EOF at a clean stream boundary is not treated as an error.
func DecodeAll(reader io.Reader, framing Framing, lengthTable LengthTable, visitor Visitor) error {
	d := NewDecoder(reader, framing, lengthTable)
	for d.Next() {
		if err := d.Visit(visitor); err != nil {
			return err
		}
	}
	if err := d.Error(); err != nil && err != io.EOF {
		return err
	}
	return visitor.OnStreamEnd()
}
