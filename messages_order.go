// Copyright (c) 2024 Neomantra Corp
//
// Order-lifecycle message kinds: these are the ones the processor
// feeds into the order book.

package itch

///////////////////////////////////////////////////////////////////////////////

// AddOrderMessage ('A') adds a new visible limit order to the book.
type AddOrderMessage struct {
	Header
	OrderRef OrderRef `json:"order_ref"`
	Side     Side     `json:"side"`
	Shares   Volume   `json:"shares"`
	Stock    Symbol   `json:"stock"`
	Price    Price    `json:"price"`
}

const AddOrderMessage_Size = HeaderSize + 25

func (*AddOrderMessage) RSize() int { return AddOrderMessage_Size }

func (m *AddOrderMessage) Fill_Raw(b []byte) error {
	if len(b) < AddOrderMessage_Size {
		return unexpectedBytesError(byte(Tag_AddOrder), len(b), AddOrderMessage_Size)
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
	return nil
}

func (m *AddOrderMessage) Put(b []byte) {
	putHeaderRaw(b, m.Header)
	body := b[HeaderSize:]
	putUint64BE(body[0:8], uint64(m.OrderRef))
	body[8] = byte(m.Side)
	putUint32BE(body[9:13], uint32(m.Shares))
	copy(body[13:21], m.Stock[:])
	putUint32BE(body[21:25], uint32(m.Price))
}

///////////////////////////////////////////////////////////////////////////////

// AddOrderMPIDMessage ('F') is AddOrder plus the attributed market participant.
type AddOrderMPIDMessage struct {
	Header
	OrderRef OrderRef `json:"order_ref"`
	Side     Side     `json:"side"`
	Shares   Volume   `json:"shares"`
	Stock    Symbol   `json:"stock"`
	Price    Price    `json:"price"`
	MPID     [4]byte  `json:"mpid"`
}

const AddOrderMPIDMessage_Size = HeaderSize + 29

func (*AddOrderMPIDMessage) RSize() int { return AddOrderMPIDMessage_Size }

func (m *AddOrderMPIDMessage) Fill_Raw(b []byte) error {
	if len(b) < AddOrderMPIDMessage_Size {
		return unexpectedBytesError(byte(Tag_AddOrderMPID), len(b), AddOrderMPIDMessage_Size)
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
	copy(m.MPID[:], body[25:29])
	return nil
}

func (m *AddOrderMPIDMessage) Put(b []byte) {
	putHeaderRaw(b, m.Header)
	body := b[HeaderSize:]
	putUint64BE(body[0:8], uint64(m.OrderRef))
	body[8] = byte(m.Side)
	putUint32BE(body[9:13], uint32(m.Shares))
	copy(body[13:21], m.Stock[:])
	putUint32BE(body[21:25], uint32(m.Price))
	copy(body[25:29], m.MPID[:])
}

// AsAddOrder drops the MPID, useful for feeding a uniform add-order path.
func (m *AddOrderMPIDMessage) AsAddOrder() AddOrderMessage {
	return AddOrderMessage{
		Header:   m.Header,
		OrderRef: m.OrderRef,
		Side:     m.Side,
		Shares:   m.Shares,
		Stock:    m.Stock,
		Price:    m.Price,
	}
}

///////////////////////////////////////////////////////////////////////////////

// OrderExecutedMessage ('E') reports a (possibly partial) fill at the
// order's resting price.
type OrderExecutedMessage struct {
	Header
	OrderRef       OrderRef    `json:"order_ref"`
	ExecutedShares Volume      `json:"executed_shares"`
	MatchNumber    MatchNumber `json:"match_number"`
}

const OrderExecutedMessage_Size = HeaderSize + 20

func (*OrderExecutedMessage) RSize() int { return OrderExecutedMessage_Size }

func (m *OrderExecutedMessage) Fill_Raw(b []byte) error {
	if len(b) < OrderExecutedMessage_Size {
		return unexpectedBytesError(byte(Tag_OrderExecuted), len(b), OrderExecutedMessage_Size)
	}
	if err := fillHeaderRaw(b, &m.Header); err != nil {
		return err
	}
	body := b[HeaderSize:]
	m.OrderRef = OrderRef(readUint64BE(body[0:8]))
	m.ExecutedShares = Volume(readUint32BE(body[8:12]))
	m.MatchNumber = MatchNumber(readUint64BE(body[12:20]))
	return nil
}

func (m *OrderExecutedMessage) Put(b []byte) {
	putHeaderRaw(b, m.Header)
	body := b[HeaderSize:]
	putUint64BE(body[0:8], uint64(m.OrderRef))
	putUint32BE(body[8:12], uint32(m.ExecutedShares))
	putUint64BE(body[12:20], uint64(m.MatchNumber))
}

///////////////////////////////////////////////////////////////////////////////

// OrderExecutedWithPriceMessage ('C') is an execution printed at a price
// different from the resting order's price (e.g. a cross).
type OrderExecutedWithPriceMessage struct {
	Header
	OrderRef       OrderRef      `json:"order_ref"`
	ExecutedShares Volume        `json:"executed_shares"`
	MatchNumber    MatchNumber   `json:"match_number"`
	Printable      PrintableFlag `json:"printable"`
	ExecutionPrice Price         `json:"execution_price"`
}

const OrderExecutedWithPriceMessage_Size = HeaderSize + 25

func (*OrderExecutedWithPriceMessage) RSize() int { return OrderExecutedWithPriceMessage_Size }

func (m *OrderExecutedWithPriceMessage) Fill_Raw(b []byte) error {
	if len(b) < OrderExecutedWithPriceMessage_Size {
		return unexpectedBytesError(byte(Tag_OrderExecutedWithPrice), len(b), OrderExecutedWithPriceMessage_Size)
	}
	if err := fillHeaderRaw(b, &m.Header); err != nil {
		return err
	}
	body := b[HeaderSize:]
	m.OrderRef = OrderRef(readUint64BE(body[0:8]))
	m.ExecutedShares = Volume(readUint32BE(body[8:12]))
	m.MatchNumber = MatchNumber(readUint64BE(body[12:20]))
	m.Printable = PrintableFlag(body[20])
	m.ExecutionPrice = Price(readUint32BE(body[21:25]))
	return nil
}

func (m *OrderExecutedWithPriceMessage) Put(b []byte) {
	putHeaderRaw(b, m.Header)
	body := b[HeaderSize:]
	putUint64BE(body[0:8], uint64(m.OrderRef))
	putUint32BE(body[8:12], uint32(m.ExecutedShares))
	putUint64BE(body[12:20], uint64(m.MatchNumber))
	body[20] = byte(m.Printable)
	putUint32BE(body[21:25], uint32(m.ExecutionPrice))
}

///////////////////////////////////////////////////////////////////////////////

// OrderCancelMessage ('X') is a partial cancel: it reduces remaining
// volume without necessarily removing the order.
type OrderCancelMessage struct {
	Header
	OrderRef        OrderRef `json:"order_ref"`
	CancelledShares Volume   `json:"cancelled_shares"`
}

const OrderCancelMessage_Size = HeaderSize + 12

func (*OrderCancelMessage) RSize() int { return OrderCancelMessage_Size }

func (m *OrderCancelMessage) Fill_Raw(b []byte) error {
	if len(b) < OrderCancelMessage_Size {
		return unexpectedBytesError(byte(Tag_OrderCancel), len(b), OrderCancelMessage_Size)
	}
	if err := fillHeaderRaw(b, &m.Header); err != nil {
		return err
	}
	body := b[HeaderSize:]
	m.OrderRef = OrderRef(readUint64BE(body[0:8]))
	m.CancelledShares = Volume(readUint32BE(body[8:12]))
	return nil
}

func (m *OrderCancelMessage) Put(b []byte) {
	putHeaderRaw(b, m.Header)
	body := b[HeaderSize:]
	putUint64BE(body[0:8], uint64(m.OrderRef))
	putUint32BE(body[8:12], uint32(m.CancelledShares))
}

///////////////////////////////////////////////////////////////////////////////

// OrderDeleteMessage ('D') removes an order entirely, regardless of
// remaining shares.
type OrderDeleteMessage struct {
	Header
	OrderRef OrderRef `json:"order_ref"`
}

const OrderDeleteMessage_Size = HeaderSize + 8

func (*OrderDeleteMessage) RSize() int { return OrderDeleteMessage_Size }

func (m *OrderDeleteMessage) Fill_Raw(b []byte) error {
	if len(b) < OrderDeleteMessage_Size {
		return unexpectedBytesError(byte(Tag_OrderDelete), len(b), OrderDeleteMessage_Size)
	}
	if err := fillHeaderRaw(b, &m.Header); err != nil {
		return err
	}
	m.OrderRef = OrderRef(readUint64BE(b[HeaderSize : HeaderSize+8]))
	return nil
}

func (m *OrderDeleteMessage) Put(b []byte) {
	putHeaderRaw(b, m.Header)
	putUint64BE(b[HeaderSize:HeaderSize+8], uint64(m.OrderRef))
}

///////////////////////////////////////////////////////////////////////////////

// OrderReplaceMessage ('U') atomically deletes OriginalOrderRef and adds
// NewOrderRef at the same side with new size/price. Per venue semantics
// (and this spec), the replacement order takes the replace message's
// own timestamp, losing queue priority.
type OrderReplaceMessage struct {
	Header
	OriginalOrderRef OrderRef `json:"original_order_ref"`
	NewOrderRef      OrderRef `json:"new_order_ref"`
	Shares           Volume   `json:"shares"`
	Price            Price    `json:"price"`
}

const OrderReplaceMessage_Size = HeaderSize + 24

func (*OrderReplaceMessage) RSize() int { return OrderReplaceMessage_Size }

func (m *OrderReplaceMessage) Fill_Raw(b []byte) error {
	if len(b) < OrderReplaceMessage_Size {
		return unexpectedBytesError(byte(Tag_OrderReplace), len(b), OrderReplaceMessage_Size)
	}
	if err := fillHeaderRaw(b, &m.Header); err != nil {
		return err
	}
	body := b[HeaderSize:]
	m.OriginalOrderRef = OrderRef(readUint64BE(body[0:8]))
	m.NewOrderRef = OrderRef(readUint64BE(body[8:16]))
	m.Shares = Volume(readUint32BE(body[16:20]))
	m.Price = Price(readUint32BE(body[20:24]))
	return nil
}

func (m *OrderReplaceMessage) Put(b []byte) {
	putHeaderRaw(b, m.Header)
	body := b[HeaderSize:]
	putUint64BE(body[0:8], uint64(m.OriginalOrderRef))
	putUint64BE(body[8:16], uint64(m.NewOrderRef))
	putUint32BE(body[16:20], uint32(m.Shares))
	putUint32BE(body[20:24], uint32(m.Price))
}
