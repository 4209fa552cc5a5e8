// Copyright (c) 2024 Neomantra Corp
//
// Symbol-filter passthrough encoder: re-serializes decoded messages to
// a length-prefixed subset feed, keyed on a symbol allowlist. Unlike
// Decoder/Visitor, which are read paths, Encoder is the one write path
// that ships in this package — it never participates in book
// reconstruction (that is Processor's job).

package itch

import (
	"encoding/binary"
	"io"
)

// SymbolFilter decides whether a symbol-keyed message should pass.
type SymbolFilter interface {
	Contains(sym Symbol) bool
}

// SimpleSymbolFilter is a SymbolFilter backed by a fixed set of symbols.
type SimpleSymbolFilter map[Symbol]struct{}

// NewSimpleSymbolFilter builds a SimpleSymbolFilter from ticker strings.
func NewSimpleSymbolFilter(tickers ...string) SimpleSymbolFilter {
	f := make(SimpleSymbolFilter, len(tickers))
	for _, t := range tickers {
		f[NewSymbol(t)] = struct{}{}
	}
	return f
}

func (f SimpleSymbolFilter) Contains(sym Symbol) bool {
	_, ok := f[sym]
	return ok
}

///////////////////////////////////////////////////////////////////////////////

// Encoder re-emits a subset of a decoded stream, restricted to symbols
// accepted by its SymbolFilter. It maintains the emitted-reference
// bookkeeping spec'd for the passthrough use case: an order-keyed or
// match-number-keyed follow-up only passes if its referent was itself
// previously emitted, so the output is itself a valid replayable feed.
type Encoder struct {
	w              io.Writer
	filter         SymbolFilter
	emittedOrders  map[OrderRef]struct{}
	emittedMatches map[MatchNumber]struct{}
	scratch        []byte
}

// NewEncoder creates an Encoder writing length-prefixed messages to w,
// filtering symbol-keyed messages through filter.
func NewEncoder(w io.Writer, filter SymbolFilter) *Encoder {
	return &Encoder{
		w:              w,
		filter:         filter,
		emittedOrders:  make(map[OrderRef]struct{}),
		emittedMatches: make(map[MatchNumber]struct{}),
		scratch:        make([]byte, DefaultScratchBufferSize),
	}
}

func (e *Encoder) ensureCapacity(n int) []byte {
	if cap(e.scratch) < n {
		e.scratch = make([]byte, n)
	}
	return e.scratch[:n]
}

// writeRecord length-prefixes a Put-able record and writes it to w.
func (e *Encoder) writeRecord(size int, put func([]byte)) error {
	buf := e.ensureCapacity(size)
	put(buf)
	var lenPrefix [2]byte
	binary.BigEndian.PutUint16(lenPrefix[:], uint16(size))
	if _, err := e.w.Write(lenPrefix[:]); err != nil {
		return err
	}
	_, err := e.w.Write(buf)
	return err
}

// unconditional message kinds: system-wide, never symbol- or
// order-keyed, always emitted.
func (e *Encoder) OnSystemEvent(m *SystemEventMessage) error {
	return e.writeRecord(SystemEventMessage_Size, m.Put)
}
func (e *Encoder) OnMWCBDeclineLevel(m *MWCBDeclineLevelMessage) error {
	return e.writeRecord(MWCBDeclineLevelMessage_Size, m.Put)
}
func (e *Encoder) OnMWCBStatus(m *MWCBStatusMessage) error {
	return e.writeRecord(MWCBStatusMessage_Size, m.Put)
}

// symbol-keyed message kinds: pass iff the symbol is in the filter.
func (e *Encoder) OnStockDirectory(m *StockDirectoryMessage) error {
	if !e.filter.Contains(m.Stock) {
		return nil
	}
	return e.writeRecord(StockDirectoryMessage_Size, m.Put)
}
func (e *Encoder) OnStockTradingAction(m *StockTradingActionMessage) error {
	if !e.filter.Contains(m.Stock) {
		return nil
	}
	return e.writeRecord(StockTradingActionMessage_Size, m.Put)
}
func (e *Encoder) OnRegSHORestriction(m *RegSHORestrictionMessage) error {
	if !e.filter.Contains(m.Stock) {
		return nil
	}
	return e.writeRecord(RegSHORestrictionMessage_Size, m.Put)
}
func (e *Encoder) OnMarketParticipantPosition(m *MarketParticipantPositionMessage) error {
	if !e.filter.Contains(m.Stock) {
		return nil
	}
	return e.writeRecord(MarketParticipantPositionMessage_Size, m.Put)
}
func (e *Encoder) OnIPOQuotingPeriod(m *IPOQuotingPeriodMessage) error {
	if !e.filter.Contains(m.Stock) {
		return nil
	}
	return e.writeRecord(IPOQuotingPeriodMessage_Size, m.Put)
}
func (e *Encoder) OnLULDAuctionCollar(m *LULDAuctionCollarMessage) error {
	if !e.filter.Contains(m.Stock) {
		return nil
	}
	return e.writeRecord(LULDAuctionCollarMessage_Size, m.Put)
}
func (e *Encoder) OnOperationalHalt(m *OperationalHaltMessage) error {
	if !e.filter.Contains(m.Stock) {
		return nil
	}
	return e.writeRecord(OperationalHaltMessage_Size, m.Put)
}
func (e *Encoder) OnRPI(m *RPIMessage) error {
	if !e.filter.Contains(m.Stock) {
		return nil
	}
	return e.writeRecord(RPIMessage_Size, m.Put)
}
func (e *Encoder) OnDirectListingCapitalRaise(m *DirectListingCapitalRaiseMessage) error {
	if !e.filter.Contains(m.Stock) {
		return nil
	}
	return e.writeRecord(DirectListingCapitalRaiseMessage_Size, m.Put)
}
func (e *Encoder) OnNOII(m *NOIIMessage) error {
	if !e.filter.Contains(m.Stock) {
		return nil
	}
	return e.writeRecord(NOIIMessage_Size, m.Put)
}
func (e *Encoder) OnCrossTrade(m *CrossTradeMessage) error {
	if !e.filter.Contains(m.Stock) {
		return nil
	}
	e.emittedMatches[m.MatchNumber] = struct{}{}
	return e.writeRecord(CrossTradeMessage_Size, m.Put)
}
func (e *Encoder) OnTrade(m *TradeMessage) error {
	if !e.filter.Contains(m.Stock) {
		return nil
	}
	e.emittedMatches[m.MatchNumber] = struct{}{}
	return e.writeRecord(TradeMessage_Size, m.Put)
}

// order-keyed message kinds: AddOrder establishes the emitted ref;
// everything else only passes if the ref was already emitted.
func (e *Encoder) OnAddOrder(m *AddOrderMessage) error {
	if !e.filter.Contains(m.Stock) {
		return nil
	}
	e.emittedOrders[m.OrderRef] = struct{}{}
	return e.writeRecord(AddOrderMessage_Size, m.Put)
}
func (e *Encoder) OnAddOrderMPID(m *AddOrderMPIDMessage) error {
	if !e.filter.Contains(m.Stock) {
		return nil
	}
	e.emittedOrders[m.OrderRef] = struct{}{}
	return e.writeRecord(AddOrderMPIDMessage_Size, m.Put)
}
func (e *Encoder) OnOrderExecuted(m *OrderExecutedMessage) error {
	if _, ok := e.emittedOrders[m.OrderRef]; !ok {
		return nil
	}
	e.emittedMatches[m.MatchNumber] = struct{}{}
	return e.writeRecord(OrderExecutedMessage_Size, m.Put)
}
func (e *Encoder) OnOrderExecutedWithPrice(m *OrderExecutedWithPriceMessage) error {
	if _, ok := e.emittedOrders[m.OrderRef]; !ok {
		return nil
	}
	e.emittedMatches[m.MatchNumber] = struct{}{}
	return e.writeRecord(OrderExecutedWithPriceMessage_Size, m.Put)
}
func (e *Encoder) OnOrderCancel(m *OrderCancelMessage) error {
	if _, ok := e.emittedOrders[m.OrderRef]; !ok {
		return nil
	}
	return e.writeRecord(OrderCancelMessage_Size, m.Put)
}
func (e *Encoder) OnOrderDelete(m *OrderDeleteMessage) error {
	if _, ok := e.emittedOrders[m.OrderRef]; !ok {
		return nil
	}
	delete(e.emittedOrders, m.OrderRef)
	return e.writeRecord(OrderDeleteMessage_Size, m.Put)
}
func (e *Encoder) OnOrderReplace(m *OrderReplaceMessage) error {
	if _, ok := e.emittedOrders[m.OriginalOrderRef]; !ok {
		return nil
	}
	delete(e.emittedOrders, m.OriginalOrderRef)
	e.emittedOrders[m.NewOrderRef] = struct{}{}
	return e.writeRecord(OrderReplaceMessage_Size, m.Put)
}

// match-number-keyed follow-up: passes iff the match was emitted.
func (e *Encoder) OnBrokenTrade(m *BrokenTradeMessage) error {
	if _, ok := e.emittedMatches[m.MatchNumber]; !ok {
		return nil
	}
	return e.writeRecord(BrokenTradeMessage_Size, m.Put)
}

func (e *Encoder) OnStreamEnd() error { return nil }

var _ Visitor = (*Encoder)(nil)
