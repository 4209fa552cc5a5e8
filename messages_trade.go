// Copyright (c) 2024 Neomantra Corp
//
// Trade, cross and imbalance message kinds.

package itch

///////////////////////////////////////////////////////////////////////////////

// TradeMessage ('P') is a non-cross execution print. OrderRef is 0 for
// a hidden execution (no visible resting order) per spec.md section 3
// invariant 6: hidden trades never mutate the book.
type TradeMessage struct {
	Header
	OrderRef    OrderRef    `json:"order_ref"`
	Side        Side        `json:"side"`
	Shares      Volume      `json:"shares"`
	Stock       Symbol      `json:"stock"`
	Price       Price       `json:"price"`
	MatchNumber MatchNumber `json:"match_number"`
}

const TradeMessage_Size = HeaderSize + 33

func (*TradeMessage) RSize() int { return TradeMessage_Size }

func (m *TradeMessage) Fill_Raw(b []byte) error {
	if len(b) < TradeMessage_Size {
		return unexpectedBytesError(byte(Tag_Trade), len(b), TradeMessage_Size)
	}
	if err := fillHeaderRaw(b, &m.Header); err != nil {
		return err
	}
	body := b[HeaderSize:]
	m.OrderRef = OrderRef(readUint64BE(body[0:8]))
	m.Side = Side(body[8])
	m.Shares = Volume(readUint32BE(body[9:13]))
	copy(m.Stock[:], body[13:21])
	m.Price = Price(readUint32BE(body[21:25]))
	m.MatchNumber = MatchNumber(readUint64BE(body[25:33]))
	return nil
}

func (m *TradeMessage) Put(b []byte) {
	putHeaderRaw(b, m.Header)
	body := b[HeaderSize:]
	putUint64BE(body[0:8], uint64(m.OrderRef))
	body[8] = byte(m.Side)
	putUint32BE(body[9:13], uint32(m.Shares))
	copy(body[13:21], m.Stock[:])
	putUint32BE(body[21:25], uint32(m.Price))
	putUint64BE(body[25:33], uint64(m.MatchNumber))
}

// IsHidden reports whether this print has no visible resting order.
func (m *TradeMessage) IsHidden() bool {
	return m.OrderRef == 0
}

///////////////////////////////////////////////////////////////////////////////

// CrossTradeMessage ('Q') is an auction-style match (opening, closing, halt).
type CrossTradeMessage struct {
	Header
	Shares      uint64      `json:"shares"`
	Stock       Symbol      `json:"stock"`
	CrossPrice  Price       `json:"cross_price"`
	MatchNumber MatchNumber `json:"match_number"`
	CrossType   CrossType   `json:"cross_type"`
}

const CrossTradeMessage_Size = HeaderSize + 29

func (*CrossTradeMessage) RSize() int { return CrossTradeMessage_Size }

func (m *CrossTradeMessage) Fill_Raw(b []byte) error {
	if len(b) < CrossTradeMessage_Size {
		return unexpectedBytesError(byte(Tag_CrossTrade), len(b), CrossTradeMessage_Size)
	}
	if err := fillHeaderRaw(b, &m.Header); err != nil {
		return err
	}
	body := b[HeaderSize:]
	m.Shares = readUint64BE(body[0:8])
	copy(m.Stock[:], body[8:16])
	m.CrossPrice = Price(readUint32BE(body[16:20]))
	m.MatchNumber = MatchNumber(readUint64BE(body[20:28]))
	m.CrossType = CrossType(body[28])
	return nil
}

func (m *CrossTradeMessage) Put(b []byte) {
	putHeaderRaw(b, m.Header)
	body := b[HeaderSize:]
	putUint64BE(body[0:8], m.Shares)
	copy(body[8:16], m.Stock[:])
	putUint32BE(body[16:20], uint32(m.CrossPrice))
	putUint64BE(body[20:28], uint64(m.MatchNumber))
	body[28] = byte(m.CrossType)
}

///////////////////////////////////////////////////////////////////////////////

// BrokenTradeMessage ('B') retracts a previously-printed trade by match number.
type BrokenTradeMessage struct {
	Header
	MatchNumber MatchNumber `json:"match_number"`
}

const BrokenTradeMessage_Size = HeaderSize + 8

func (*BrokenTradeMessage) RSize() int { return BrokenTradeMessage_Size }

func (m *BrokenTradeMessage) Fill_Raw(b []byte) error {
	if len(b) < BrokenTradeMessage_Size {
		return unexpectedBytesError(byte(Tag_BrokenTrade), len(b), BrokenTradeMessage_Size)
	}
	if err := fillHeaderRaw(b, &m.Header); err != nil {
		return err
	}
	m.MatchNumber = MatchNumber(readUint64BE(b[HeaderSize : HeaderSize+8]))
	return nil
}

func (m *BrokenTradeMessage) Put(b []byte) {
	putHeaderRaw(b, m.Header)
	putUint64BE(b[HeaderSize:HeaderSize+8], uint64(m.MatchNumber))
}

///////////////////////////////////////////////////////////////////////////////

// NOIIMessage ('I') is the net order imbalance indicator published ahead
// of an auction.
type NOIIMessage struct {
	Header
	PairedShares            uint64             `json:"paired_shares"`
	ImbalanceShares         uint64             `json:"imbalance_shares"`
	ImbalanceDirection      ImbalanceDirection `json:"imbalance_direction"`
	Stock                   Symbol             `json:"stock"`
	FarPrice                Price              `json:"far_price"`
	NearPrice               Price              `json:"near_price"`
	CurrentReferencePrice   Price              `json:"current_reference_price"`
	CrossType               CrossType          `json:"cross_type"`
	PriceVariationIndicator byte               `json:"price_variation_indicator"`
}

const NOIIMessage_Size = HeaderSize + 39

func (*NOIIMessage) RSize() int { return NOIIMessage_Size }

func (m *NOIIMessage) Fill_Raw(b []byte) error {
	if len(b) < NOIIMessage_Size {
		return unexpectedBytesError(byte(Tag_NOII), len(b), NOIIMessage_Size)
	}
	if err := fillHeaderRaw(b, &m.Header); err != nil {
		return err
	}
	body := b[HeaderSize:]
	m.PairedShares = readUint64BE(body[0:8])
	m.ImbalanceShares = readUint64BE(body[8:16])
	m.ImbalanceDirection = ImbalanceDirection(body[16])
	copy(m.Stock[:], body[17:25])
	m.FarPrice = Price(readUint32BE(body[25:29]))
	m.NearPrice = Price(readUint32BE(body[29:33]))
	m.CurrentReferencePrice = Price(readUint32BE(body[33:37]))
	m.CrossType = CrossType(body[37])
	m.PriceVariationIndicator = body[38]
	return nil
}

func (m *NOIIMessage) Put(b []byte) {
	putHeaderRaw(b, m.Header)
	body := b[HeaderSize:]
	putUint64BE(body[0:8], m.PairedShares)
	putUint64BE(body[8:16], m.ImbalanceShares)
	body[16] = byte(m.ImbalanceDirection)
	copy(body[17:25], m.Stock[:])
	putUint32BE(body[25:29], uint32(m.FarPrice))
	putUint32BE(body[29:33], uint32(m.NearPrice))
	putUint32BE(body[33:37], uint32(m.CurrentReferencePrice))
	body[37] = byte(m.CrossType)
	body[38] = m.PriceVariationIndicator
}

///////////////////////////////////////////////////////////////////////////////

// RPIMessage ('N') is the retail price improvement interest indicator.
type RPIMessage struct {
	Header
	Stock        Symbol          `json:"stock"`
	InterestFlag RPIInterestFlag `json:"interest_flag"`
}

const RPIMessage_Size = HeaderSize + 9

func (*RPIMessage) RSize() int { return RPIMessage_Size }

func (m *RPIMessage) Fill_Raw(b []byte) error {
	if len(b) < RPIMessage_Size {
		return unexpectedBytesError(byte(Tag_RPI), len(b), RPIMessage_Size)
	}
	if err := fillHeaderRaw(b, &m.Header); err != nil {
		return err
	}
	body := b[HeaderSize:]
	copy(m.Stock[:], body[0:8])
	m.InterestFlag = RPIInterestFlag(body[8])
	return nil
}

func (m *RPIMessage) Put(b []byte) {
	putHeaderRaw(b, m.Header)
	body := b[HeaderSize:]
	copy(body[0:8], m.Stock[:])
	body[8] = byte(m.InterestFlag)
}
