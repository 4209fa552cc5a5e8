// Copyright (c) 2024 Neomantra Corp
//
// Processor is the per-symbol state machine that drives a book.OrderBook
// from decoded messages and fans typed events out to handlers. It
// satisfies itch.Visitor directly, so a caller wires it up the same
// way any other visitor is wired: decoder.Visit(processor) for every
// scanned record.

package processor

import (
	"time"

	"github.com/go-itch/itch-go"
	"github.com/go-itch/itch-go/book"
	"github.com/relvacode/iso8601"
	"go.uber.org/zap"
)

// Processor holds (symbol, book_date, OrderBook, TradingStatus,
// handlers, last_timestamp), per spec.md section 3. Not thread-safe:
// one instance serves one symbol from one goroutine.
type Processor struct {
	Symbol        itch.Symbol
	BookDate      time.Time
	Book          *book.OrderBook
	Status        itch.TradingStatus
	LastTimestamp itch.Timestamp

	// StrictMode makes the message's Visitor method (OnAddOrder,
	// OnOrderCancel, ...) return any non-StaleReference book error
	// instead of downgrading it to an OnError event (spec.md section 7's
	// "strictly-validating mode... must be configurable").
	StrictMode bool

	handlers        []Handler
	scheduledCursor map[Handler]int
	logger          *zap.Logger
}

// NewProcessor creates a Processor for ticker, dated bookDateISO8601
// (parsed with iso8601.ParseString; a calendar date like "2026-07-31"
// is sufficient). A nil logger is replaced with zap.NewNop(): the
// logger is diagnostic only, never load-bearing for correctness.
func NewProcessor(ticker string, bookDateISO8601 string, logger *zap.Logger) (*Processor, error) {
	bookDate, err := iso8601.ParseString(bookDateISO8601)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	symbol := itch.NewSymbol(ticker)
	return &Processor{
		Symbol:          symbol,
		BookDate:        bookDate,
		Book:            book.NewOrderBook(symbol, bookDate),
		Status:          itch.TradingStatus_Unknown,
		scheduledCursor: make(map[Handler]int),
		logger:          logger,
	}, nil
}

// AddHandler registers h to receive dispatched events.
func (p *Processor) AddHandler(h Handler) {
	p.handlers = append(p.handlers, h)
	if _, ok := h.(ScheduledSnapshotSource); ok {
		p.scheduledCursor[h] = 0
	}
}

func (p *Processor) symbolMatches(sym itch.Symbol) bool {
	return sym == p.Symbol
}

func (p *Processor) dispatchAdd(e AddEvent) {
	for _, h := range p.handlers {
		h.OnAdd(e)
	}
}
func (p *Processor) dispatchExecute(e ExecuteEvent) {
	for _, h := range p.handlers {
		h.OnExecute(e)
	}
}
func (p *Processor) dispatchCancel(e CancelEvent) {
	for _, h := range p.handlers {
		h.OnCancel(e)
	}
}
func (p *Processor) dispatchDelete(e DeleteEvent) {
	for _, h := range p.handlers {
		h.OnDelete(e)
	}
}
func (p *Processor) dispatchReplace(e ReplaceEvent) {
	for _, h := range p.handlers {
		h.OnReplace(e)
	}
}
func (p *Processor) dispatchTrade(e TradeEvent) {
	for _, h := range p.handlers {
		h.OnTrade(e)
	}
}
func (p *Processor) dispatchCross(e CrossEvent) {
	for _, h := range p.handlers {
		h.OnCross(e)
	}
}
func (p *Processor) dispatchStatusChange(e StatusChangeEvent) {
	for _, h := range p.handlers {
		h.OnStatusChange(e)
	}
}
func (p *Processor) dispatchTick(e TickEvent) {
	for _, h := range p.handlers {
		h.OnTick(e)
	}
}
func (p *Processor) dispatchError(e ErrorEvent) {
	for _, h := range p.handlers {
		h.OnError(e)
	}
}
func (p *Processor) dispatchStaleReference(e StaleReferenceEvent) {
	for _, h := range p.handlers {
		h.OnStaleReference(e)
	}
}

// snapshotNow builds a SnapshotEvent from the book's current state.
func (p *Processor) snapshotNow(asOf itch.Timestamp, scheduled bool) SnapshotEvent {
	return SnapshotEvent{
		Symbol:    p.Symbol,
		AsOf:      asOf,
		Bid:       p.Book.Snapshot(itch.Side_Buy, 0, false),
		Ask:       p.Book.Snapshot(itch.Side_Sell, 0, false),
		Scheduled: scheduled,
	}
}

// checkScheduledSnapshots fires, per spec.md section 4.5, every
// scheduled timestamp a handler declared that falls in
// [LastTimestamp, newTimestamp) — i.e. the feed has advanced past it —
// against the book state as of right now (before newTimestamp's own
// message is applied).
func (p *Processor) checkScheduledSnapshots(newTimestamp itch.Timestamp) {
	for h, cursor := range p.scheduledCursor {
		src := h.(ScheduledSnapshotSource)
		ts := src.ScheduledTimestamps()
		for cursor < len(ts) && ts[cursor] < newTimestamp {
			h.OnSnapshot(p.snapshotNow(ts[cursor], true))
			cursor++
		}
		p.scheduledCursor[h] = cursor
	}
}

// advance runs the scheduled-snapshot check and last_timestamp update
// common to every message kind. Call before applying the mutation.
func (p *Processor) advance(ts itch.Timestamp) {
	p.checkScheduledSnapshots(ts)
	p.LastTimestamp = ts
	p.dispatchTick(TickEvent{Symbol: p.Symbol, Timestamp: ts})
}

// handleBookError implements spec.md section 7's propagation policy:
// StaleReference (an unknown ref at start-of-day) becomes a warning
// event, not an error; other book errors are surfaced via OnError and,
// unless StrictMode is set, do not abort processing.
func (p *Processor) handleBookError(tag itch.Tag, ref itch.OrderRef, err error) error {
	if err == book.ErrUnknownRef {
		p.logger.Warn("stale order reference",
			zap.Uint64("order_ref", uint64(ref)), zap.Uint8("tag", uint8(tag)))
		p.dispatchStaleReference(StaleReferenceEvent{
			Symbol: p.Symbol, Ref: ref, Kind: tag, BookDate: p.BookDate,
		})
		return nil
	}
	p.logger.Error("book error applying message",
		zap.Uint64("order_ref", uint64(ref)), zap.Uint8("tag", uint8(tag)), zap.Error(err))
	p.dispatchError(ErrorEvent{Symbol: p.Symbol, Err: err})
	if p.StrictMode {
		return err
	}
	return nil
}

// requireInvariant fails an internal consistency check fatally,
// regardless of StrictMode: unlike a book error (data the feed itself
// can legitimately produce, e.g. a stale reference), a violation here
// means this processor's own state no longer matches section 3's
// invariants and it must stop accepting input.
func (p *Processor) requireInvariant(cond bool, detail string) error {
	if cond {
		return nil
	}
	err := invariantViolation(detail)
	p.logger.Error("invariant violation", zap.String("detail", detail))
	return err
}

///////////////////////////////////////////////////////////////////////////////
// itch.Visitor implementation

func (p *Processor) OnSystemEvent(m *itch.SystemEventMessage) error {
	p.advance(m.Timestamp)
	switch m.EventCode {
	case itch.SystemEventCode_StartOfMarketHrs:
		p.setStatus(itch.TradingStatus_Trading)
	case itch.SystemEventCode_EndOfMarketHrs:
		p.setStatus(itch.TradingStatus_PostTrade)
	case itch.SystemEventCode_StartOfSystemHrs:
		p.setStatus(itch.TradingStatus_PreTrade)
	case itch.SystemEventCode_EndOfSystemHrs, itch.SystemEventCode_EndOfMessages:
		p.setStatus(itch.TradingStatus_Closed)
	}
	return nil
}

func (p *Processor) setStatus(s itch.TradingStatus) {
	if p.Status == s {
		return
	}
	p.Status = s
	p.dispatchStatusChange(StatusChangeEvent{Symbol: p.Symbol, Status: s})
}

func (p *Processor) OnStockDirectory(m *itch.StockDirectoryMessage) error {
	if !p.symbolMatches(m.Stock) {
		return nil
	}
	p.advance(m.Timestamp)
	return nil
}

func (p *Processor) OnStockTradingAction(m *itch.StockTradingActionMessage) error {
	if !p.symbolMatches(m.Stock) {
		return nil
	}
	p.advance(m.Timestamp)
	p.setStatus(m.TradingState.ToTradingStatus())
	return nil
}

func (p *Processor) OnRegSHORestriction(m *itch.RegSHORestrictionMessage) error {
	if !p.symbolMatches(m.Stock) {
		return nil
	}
	p.advance(m.Timestamp)
	return nil
}

func (p *Processor) OnMarketParticipantPosition(m *itch.MarketParticipantPositionMessage) error {
	if !p.symbolMatches(m.Stock) {
		return nil
	}
	p.advance(m.Timestamp)
	return nil
}

func (p *Processor) OnMWCBDeclineLevel(m *itch.MWCBDeclineLevelMessage) error {
	p.advance(m.Timestamp)
	return nil
}

func (p *Processor) OnMWCBStatus(m *itch.MWCBStatusMessage) error {
	p.advance(m.Timestamp)
	p.setStatus(itch.TradingStatus_Halted)
	return nil
}

func (p *Processor) OnIPOQuotingPeriod(m *itch.IPOQuotingPeriodMessage) error {
	if !p.symbolMatches(m.Stock) {
		return nil
	}
	p.advance(m.Timestamp)
	return nil
}

func (p *Processor) OnLULDAuctionCollar(m *itch.LULDAuctionCollarMessage) error {
	if !p.symbolMatches(m.Stock) {
		return nil
	}
	p.advance(m.Timestamp)
	return nil
}

func (p *Processor) OnOperationalHalt(m *itch.OperationalHaltMessage) error {
	if !p.symbolMatches(m.Stock) {
		return nil
	}
	p.advance(m.Timestamp)
	p.setStatus(itch.TradingStatus_Halted)
	return nil
}

func (p *Processor) OnDirectListingCapitalRaise(m *itch.DirectListingCapitalRaiseMessage) error {
	if !p.symbolMatches(m.Stock) {
		return nil
	}
	p.advance(m.Timestamp)
	return nil
}

func (p *Processor) OnAddOrder(m *itch.AddOrderMessage) error {
	if !p.symbolMatches(m.Stock) {
		return nil
	}
	p.advance(m.Timestamp)
	if err := p.requireInvariant(m.Shares > 0, "add order with zero remaining volume"); err != nil {
		return err
	}
	if err := p.Book.Add(m.OrderRef, m.Side, m.Price, m.Shares, m.Timestamp, [4]byte{}); err != nil {
		return p.handleBookError(m.MessageTag, m.OrderRef, err)
	}
	p.dispatchAdd(AddEvent{Symbol: p.Symbol, Order: book.OrderInfo{
		Ref: m.OrderRef, Side: m.Side, Price: m.Price, Shares: m.Shares, Timestamp: m.Timestamp,
	}})
	return nil
}

func (p *Processor) OnAddOrderMPID(m *itch.AddOrderMPIDMessage) error {
	if !p.symbolMatches(m.Stock) {
		return nil
	}
	p.advance(m.Timestamp)
	if err := p.requireInvariant(m.Shares > 0, "add order with zero remaining volume"); err != nil {
		return err
	}
	if err := p.Book.Add(m.OrderRef, m.Side, m.Price, m.Shares, m.Timestamp, m.MPID); err != nil {
		return p.handleBookError(m.MessageTag, m.OrderRef, err)
	}
	p.dispatchAdd(AddEvent{Symbol: p.Symbol, Order: book.OrderInfo{
		Ref: m.OrderRef, Side: m.Side, Price: m.Price, Shares: m.Shares,
		Timestamp: m.Timestamp, Attribution: m.MPID,
	}})
	return nil
}

func (p *Processor) OnOrderExecuted(m *itch.OrderExecutedMessage) error {
	p.advance(m.Timestamp)
	info, err := p.Book.Execute(m.OrderRef, m.ExecutedShares)
	if err != nil {
		return p.handleBookError(m.MessageTag, m.OrderRef, err)
	}
	p.dispatchExecute(ExecuteEvent{
		Symbol: p.Symbol, Order: info, MatchNumber: m.MatchNumber, Printable: true,
	})
	return nil
}

func (p *Processor) OnOrderExecutedWithPrice(m *itch.OrderExecutedWithPriceMessage) error {
	p.advance(m.Timestamp)
	info, err := p.Book.ExecuteWithPrice(m.OrderRef, m.ExecutedShares, m.ExecutionPrice)
	if err != nil {
		return p.handleBookError(m.MessageTag, m.OrderRef, err)
	}
	p.dispatchExecute(ExecuteEvent{
		Symbol: p.Symbol, Order: info, MatchNumber: m.MatchNumber,
		Printable: m.Printable.IsPrintable(),
	})
	return nil
}

func (p *Processor) OnOrderCancel(m *itch.OrderCancelMessage) error {
	p.advance(m.Timestamp)
	info, err := p.Book.Cancel(m.OrderRef, m.CancelledShares)
	if err != nil {
		return p.handleBookError(m.MessageTag, m.OrderRef, err)
	}
	p.dispatchCancel(CancelEvent{Symbol: p.Symbol, Order: info})
	return nil
}

func (p *Processor) OnOrderDelete(m *itch.OrderDeleteMessage) error {
	p.advance(m.Timestamp)
	info, err := p.Book.Delete(m.OrderRef)
	if err != nil {
		return p.handleBookError(m.MessageTag, m.OrderRef, err)
	}
	p.dispatchDelete(DeleteEvent{Symbol: p.Symbol, Order: info})
	return nil
}

func (p *Processor) OnOrderReplace(m *itch.OrderReplaceMessage) error {
	p.advance(m.Timestamp)
	if err := p.requireInvariant(m.Shares > 0, "replace order with zero remaining volume"); err != nil {
		return err
	}
	info, err := p.Book.Replace(m.OriginalOrderRef, m.NewOrderRef, m.Shares, m.Price, m.Timestamp)
	if err != nil {
		return p.handleBookError(m.MessageTag, m.OriginalOrderRef, err)
	}
	p.dispatchReplace(ReplaceEvent{Symbol: p.Symbol, Old: m.OriginalOrderRef, New: info})
	return nil
}

func (p *Processor) OnTrade(m *itch.TradeMessage) error {
	if !p.symbolMatches(m.Stock) {
		return nil
	}
	p.advance(m.Timestamp)
	// Hidden executions (OrderRef == 0) change no book state, per
	// invariant 6, but still produce a trade event.
	p.dispatchTrade(TradeEvent{
		Symbol: p.Symbol, OrderRef: m.OrderRef, Side: m.Side, Shares: m.Shares,
		Price: m.Price, MatchNumber: m.MatchNumber, Hidden: m.IsHidden(),
	})
	return nil
}

func (p *Processor) OnCrossTrade(m *itch.CrossTradeMessage) error {
	if !p.symbolMatches(m.Stock) {
		return nil
	}
	p.advance(m.Timestamp)
	p.dispatchCross(CrossEvent{
		Symbol: p.Symbol, Shares: m.Shares, Price: m.CrossPrice,
		MatchNumber: m.MatchNumber, CrossType: m.CrossType,
	})
	return nil
}

func (p *Processor) OnBrokenTrade(m *itch.BrokenTradeMessage) error {
	p.advance(m.Timestamp)
	return nil
}

func (p *Processor) OnNOII(m *itch.NOIIMessage) error {
	if !p.symbolMatches(m.Stock) {
		return nil
	}
	p.advance(m.Timestamp)
	return nil
}

func (p *Processor) OnRPI(m *itch.RPIMessage) error {
	if !p.symbolMatches(m.Stock) {
		return nil
	}
	p.advance(m.Timestamp)
	return nil
}

func (p *Processor) OnStreamEnd() error {
	p.Finalize()
	return nil
}

// Finalize flushes an end-of-day snapshot to every scheduled-snapshot
// handler for any timestamps not yet fired, and releases nothing else:
// the book itself is left intact for inspection after the stream ends.
func (p *Processor) Finalize() {
	for h, cursor := range p.scheduledCursor {
		src := h.(ScheduledSnapshotSource)
		ts := src.ScheduledTimestamps()
		for cursor < len(ts) {
			h.OnSnapshot(p.snapshotNow(ts[cursor], true))
			cursor++
		}
		p.scheduledCursor[h] = cursor
	}
}

var _ itch.Visitor = (*Processor)(nil)
