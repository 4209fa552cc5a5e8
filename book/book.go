// Copyright (c) 2024 Neomantra Corp
//
// OrderBook reconstructs a single symbol's two-sided limit order book
// from individual order-lifecycle operations. It is not thread-safe:
// callers serialize access the way processor.Processor does, one
// symbol per goroutine with no shared state (mirroring the teacher's
// single-writer DbnScanner and the single-threaded matching engines in
// the rest of the pack).

package book

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-itch/itch-go"
)

// OrderInfo is an immutable snapshot of an order's state, returned by
// the mutating operations below so a caller can build an event without
// holding a reference into book-internal structures.
type OrderInfo struct {
	Ref         itch.OrderRef
	Side        itch.Side
	Price       itch.Price
	Shares      itch.Volume
	Timestamp   itch.Timestamp
	Attribution [4]byte
}

// PriceLevelSummary is one level of a Top/Snapshot result.
type PriceLevelSummary struct {
	Price           itch.Price
	AggregateVolume uint64
	OrderCount      int
	Orders          []OrderInfo // populated only when Snapshot's withDetail is set
}

// OrderBook holds a symbol's reconstructed two-sided book: per spec,
// (symbol, book_date, BidBook, AskBook, OrderIndex).
type OrderBook struct {
	Symbol   itch.Symbol
	BookDate time.Time

	bid *sideBook
	ask *sideBook
	idx map[itch.OrderRef]*orderLocator
}

// NewOrderBook creates an empty book for symbol, dated bookDate (the
// trading day Timestamp fields are resolved against).
func NewOrderBook(symbol itch.Symbol, bookDate time.Time) *OrderBook {
	return &OrderBook{
		Symbol:   symbol,
		BookDate: bookDate,
		bid:      newSideBook(true),
		ask:      newSideBook(false),
		idx:      make(map[itch.OrderRef]*orderLocator),
	}
}

func (b *OrderBook) sideBookFor(side itch.Side) *sideBook {
	if side == itch.Side_Buy {
		return b.bid
	}
	return b.ask
}

// Add creates a new resting order. Fails ErrDuplicateRef if ref is
// already live.
func (b *OrderBook) Add(ref itch.OrderRef, side itch.Side, price itch.Price, shares itch.Volume, ts itch.Timestamp, attribution [4]byte) error {
	if _, exists := b.idx[ref]; exists {
		return ErrDuplicateRef
	}
	sb := b.sideBookFor(side)
	level := sb.findOrInsert(price)

	o := &order{
		ref:         ref,
		side:        side,
		price:       price,
		shares:      shares,
		timestamp:   ts,
		attribution: attribution,
		level:       level,
	}
	elem := level.orders.PushBack(o)
	level.totalVolume += uint64(shares)
	b.idx[ref] = &orderLocator{side: sb, elem: elem}
	return nil
}

// removeOrder detaches an order from its level (destroying the level
// if it becomes empty) and from the index.
func (b *OrderBook) removeOrder(ref itch.OrderRef, loc *orderLocator) *order {
	o := loc.elem.Value.(*order)
	level := o.level
	level.orders.Remove(loc.elem)
	level.totalVolume -= uint64(o.shares)
	if level.orders.Len() == 0 {
		loc.side.remove(level)
	}
	delete(b.idx, ref)
	return o
}

// Execute records a (possibly partial) fill at the order's resting
// price. Fails ErrUnknownRef, ErrOverExecuted.
func (b *OrderBook) Execute(ref itch.OrderRef, shares itch.Volume) (OrderInfo, error) {
	loc, ok := b.idx[ref]
	if !ok {
		return OrderInfo{}, ErrUnknownRef
	}
	o := loc.elem.Value.(*order)
	if shares > o.shares {
		return OrderInfo{}, ErrOverExecuted
	}

	o.shares -= shares
	o.level.totalVolume -= uint64(shares)
	info := orderInfoOf(o)
	info.Shares = shares // the executed quantity, not the remainder

	if o.shares == 0 {
		b.removeOrder(ref, loc)
	}
	return info, nil
}

// ExecuteWithPrice is Execute, but the print price may differ from the
// order's resting price; the resting order's own price is untouched.
func (b *OrderBook) ExecuteWithPrice(ref itch.OrderRef, shares itch.Volume, printPrice itch.Price) (OrderInfo, error) {
	info, err := b.Execute(ref, shares)
	if err != nil {
		return OrderInfo{}, err
	}
	info.Price = printPrice
	return info, nil
}

// Cancel reduces an order's remaining volume by shares (ITCH partial
// cancel); it does not delete the order unless volume reaches zero.
// Fails ErrUnknownRef, ErrOverCancelled.
func (b *OrderBook) Cancel(ref itch.OrderRef, shares itch.Volume) (OrderInfo, error) {
	loc, ok := b.idx[ref]
	if !ok {
		return OrderInfo{}, ErrUnknownRef
	}
	o := loc.elem.Value.(*order)
	if shares > o.shares {
		return OrderInfo{}, ErrOverCancelled
	}

	o.shares -= shares
	o.level.totalVolume -= uint64(shares)
	info := orderInfoOf(o)
	info.Shares = shares

	if o.shares == 0 {
		b.removeOrder(ref, loc)
	}
	return info, nil
}

// Delete removes an order entirely, regardless of remaining shares.
// Fails ErrUnknownRef.
func (b *OrderBook) Delete(ref itch.OrderRef) (OrderInfo, error) {
	loc, ok := b.idx[ref]
	if !ok {
		return OrderInfo{}, ErrUnknownRef
	}
	o := b.removeOrder(ref, loc)
	return orderInfoOf(o), nil
}

// Replace atomically deletes oldRef and adds newRef on the same side
// and attribution, at newPrice/newShares. Per the replace-timestamp
// policy, the new order takes newTimestamp (the replace message's own
// timestamp), losing queue priority. Fails ErrUnknownRef (old),
// ErrDuplicateRef (new).
func (b *OrderBook) Replace(oldRef, newRef itch.OrderRef, newShares itch.Volume, newPrice itch.Price, newTimestamp itch.Timestamp) (OrderInfo, error) {
	loc, ok := b.idx[oldRef]
	if !ok {
		return OrderInfo{}, ErrUnknownRef
	}
	if _, exists := b.idx[newRef]; exists {
		return OrderInfo{}, ErrDuplicateRef
	}
	old := b.removeOrder(oldRef, loc)

	if err := b.Add(newRef, old.side, newPrice, newShares, newTimestamp, old.attribution); err != nil {
		return OrderInfo{}, err
	}
	return OrderInfo{
		Ref:         newRef,
		Side:        old.side,
		Price:       newPrice,
		Shares:      newShares,
		Timestamp:   newTimestamp,
		Attribution: old.attribution,
	}, nil
}

// Top returns the best price level on side, if any.
func (b *OrderBook) Top(side itch.Side) (PriceLevelSummary, bool) {
	sb := b.sideBookFor(side)
	node := sb.best()
	if node == nil {
		return PriceLevelSummary{}, false
	}
	return summaryOf(node, false), true
}

// Snapshot returns up to maxDepth levels of side, best-first. maxDepth
// <= 0 means unlimited. withDetail includes each order individually;
// otherwise only the level aggregate is populated.
func (b *OrderBook) Snapshot(side itch.Side, maxDepth int, withDetail bool) []PriceLevelSummary {
	sb := b.sideBookFor(side)
	out := make([]PriceLevelSummary, 0, sb.size)
	sb.forEach(func(node *priceLevelNode) bool {
		if maxDepth > 0 && len(out) >= maxDepth {
			return false
		}
		out = append(out, summaryOf(node, withDetail))
		return true
	})
	return out
}

func summaryOf(node *priceLevelNode, withDetail bool) PriceLevelSummary {
	sum := PriceLevelSummary{
		Price:           node.price,
		AggregateVolume: node.totalVolume,
		OrderCount:      node.orders.Len(),
	}
	if withDetail {
		sum.Orders = make([]OrderInfo, 0, node.orders.Len())
		for e := node.orders.Front(); e != nil; e = e.Next() {
			sum.Orders = append(sum.Orders, orderInfoOf(e.Value.(*order)))
		}
	}
	return sum
}

// String renders a level for logs/debug output, e.g. "100 x 1,250
// (3 orders)" (the price is printed without trailing zeros).
func (s PriceLevelSummary) String() string {
	return fmt.Sprintf("%s x %s (%s orders)",
		s.Price.Decimal().String(),
		humanize.Comma(int64(s.AggregateVolume)),
		humanize.Comma(int64(s.OrderCount)))
}

func orderInfoOf(o *order) OrderInfo {
	return OrderInfo{
		Ref:         o.ref,
		Side:        o.side,
		Price:       o.price,
		Shares:      o.shares,
		Timestamp:   o.timestamp,
		Attribution: o.attribution,
	}
}
