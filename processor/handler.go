// Copyright (c) 2024 Neomantra Corp
//
// Handler is the observer interface Processor fans events out to.
// NullHandler embeds into a concrete implementation so callers
// override only the events they care about, the same convention as
// itch.NullVisitor.

package processor

import (
	"time"

	"github.com/go-itch/itch-go"
	"github.com/go-itch/itch-go/book"
	"github.com/segmentio/encoding/json"
)

// AddEvent, ExecuteEvent, ... are the typed payloads delivered to
// Handler. Each carries enough of the originating message plus the
// book's-eye view (via book.OrderInfo) to build a downstream record
// without the handler reaching back into the book.
type AddEvent struct {
	Symbol itch.Symbol
	Order  book.OrderInfo
}

type ExecuteEvent struct {
	Symbol      itch.Symbol
	Order       book.OrderInfo // Shares is the executed quantity
	MatchNumber itch.MatchNumber
	Printable   bool
}

type CancelEvent struct {
	Symbol itch.Symbol
	Order  book.OrderInfo // Shares is the cancelled quantity
}

type DeleteEvent struct {
	Symbol itch.Symbol
	Order  book.OrderInfo
}

type ReplaceEvent struct {
	Symbol  itch.Symbol
	Old     itch.OrderRef
	New     book.OrderInfo
}

type TradeEvent struct {
	Symbol      itch.Symbol
	OrderRef    itch.OrderRef
	Side        itch.Side
	Shares      itch.Volume
	Price       itch.Price
	MatchNumber itch.MatchNumber
	Hidden      bool
}

type CrossEvent struct {
	Symbol      itch.Symbol
	Shares      uint64
	Price       itch.Price
	MatchNumber itch.MatchNumber
	CrossType   itch.CrossType
}

type StatusChangeEvent struct {
	Symbol itch.Symbol
	Status itch.TradingStatus
}

type TickEvent struct {
	Symbol    itch.Symbol
	Timestamp itch.Timestamp
}

type ErrorEvent struct {
	Symbol itch.Symbol
	Err    error
}

type SnapshotEvent struct {
	Symbol    itch.Symbol
	AsOf      itch.Timestamp
	Bid       []book.PriceLevelSummary
	Ask       []book.PriceLevelSummary
	Scheduled bool
}

// JSON renders a SnapshotEvent for logging or debug dumps. Errors are
// swallowed to an empty string since every field here is always
// marshalable; a handler that needs the error should marshal itself.
func (e SnapshotEvent) JSON() string {
	b, err := json.Marshal(e)
	if err != nil {
		return ""
	}
	return string(b)
}

type StaleReferenceEvent struct {
	Symbol   itch.Symbol
	Ref      itch.OrderRef
	Kind     itch.Tag
	BookDate time.Time
}

// Handler receives the typed events a Processor dispatches while
// applying messages. Implementations should embed NullHandler and
// override only the events they need.
type Handler interface {
	OnAdd(AddEvent)
	OnExecute(ExecuteEvent)
	OnCancel(CancelEvent)
	OnDelete(DeleteEvent)
	OnReplace(ReplaceEvent)
	OnTrade(TradeEvent)
	OnCross(CrossEvent)
	OnStatusChange(StatusChangeEvent)
	OnTick(TickEvent)
	OnError(ErrorEvent)
	OnSnapshot(SnapshotEvent)
	OnStaleReference(StaleReferenceEvent)
}

// NullHandler implements Handler as no-ops.
type NullHandler struct{}

func (NullHandler) OnAdd(AddEvent)                       {}
func (NullHandler) OnExecute(ExecuteEvent)                {}
func (NullHandler) OnCancel(CancelEvent)                  {}
func (NullHandler) OnDelete(DeleteEvent)                  {}
func (NullHandler) OnReplace(ReplaceEvent)                {}
func (NullHandler) OnTrade(TradeEvent)                    {}
func (NullHandler) OnCross(CrossEvent)                    {}
func (NullHandler) OnStatusChange(StatusChangeEvent)      {}
func (NullHandler) OnTick(TickEvent)                      {}
func (NullHandler) OnError(ErrorEvent)                    {}
func (NullHandler) OnSnapshot(SnapshotEvent)               {}
func (NullHandler) OnStaleReference(StaleReferenceEvent)  {}

var _ Handler = NullHandler{}

///////////////////////////////////////////////////////////////////////////////

// ScheduledSnapshotSource lets a handler declare the sorted wall-clock
// timestamps it wants a book snapshot delivered at. Processor tracks a
// per-handler cursor and fires every timestamp the feed has passed
// since the last check, each against the book as of that instant.
type ScheduledSnapshotSource interface {
	ScheduledTimestamps() []itch.Timestamp
}

// HandlerFilter wraps a Handler so it only receives events while the
// processor's TradingStatus is Trading, per spec.md's "handlers may
// declare they record only during Trading" filtering note. Status
// changes and errors always pass through regardless of status.
type HandlerFilter struct {
	Handler
	status func() itch.TradingStatus
}

// NewHandlerFilter wraps inner, consulting statusFn for the processor's
// current TradingStatus on every gated event.
func NewHandlerFilter(inner Handler, statusFn func() itch.TradingStatus) *HandlerFilter {
	return &HandlerFilter{Handler: inner, status: statusFn}
}

func (f *HandlerFilter) tradingNow() bool {
	return f.status() == itch.TradingStatus_Trading
}

func (f *HandlerFilter) OnAdd(e AddEvent) {
	if f.tradingNow() {
		f.Handler.OnAdd(e)
	}
}
func (f *HandlerFilter) OnExecute(e ExecuteEvent) {
	if f.tradingNow() {
		f.Handler.OnExecute(e)
	}
}
func (f *HandlerFilter) OnCancel(e CancelEvent) {
	if f.tradingNow() {
		f.Handler.OnCancel(e)
	}
}
func (f *HandlerFilter) OnDelete(e DeleteEvent) {
	if f.tradingNow() {
		f.Handler.OnDelete(e)
	}
}
func (f *HandlerFilter) OnReplace(e ReplaceEvent) {
	if f.tradingNow() {
		f.Handler.OnReplace(e)
	}
}
func (f *HandlerFilter) OnTrade(e TradeEvent) {
	if f.tradingNow() {
		f.Handler.OnTrade(e)
	}
}
func (f *HandlerFilter) OnCross(e CrossEvent) {
	if f.tradingNow() {
		f.Handler.OnCross(e)
	}
}
func (f *HandlerFilter) OnTick(e TickEvent) {
	if f.tradingNow() {
		f.Handler.OnTick(e)
	}
}

var _ Handler = (*HandlerFilter)(nil)
