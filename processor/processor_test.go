package processor_test

import (
	"testing"

	"github.com/go-itch/itch-go"
	"github.com/go-itch/itch-go/book"
	"github.com/go-itch/itch-go/processor"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestProcessor(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "processor suite")
}

type recordingHandler struct {
	processor.NullHandler
	adds      []processor.AddEvent
	stales    []processor.StaleReferenceEvent
	errs      []processor.ErrorEvent
	snapshots []processor.SnapshotEvent
	scheduled []itch.Timestamp
}

func (h *recordingHandler) OnAdd(e processor.AddEvent)             { h.adds = append(h.adds, e) }
func (h *recordingHandler) OnStaleReference(e processor.StaleReferenceEvent) {
	h.stales = append(h.stales, e)
}
func (h *recordingHandler) OnError(e processor.ErrorEvent) { h.errs = append(h.errs, e) }
func (h *recordingHandler) OnSnapshot(e processor.SnapshotEvent) {
	h.snapshots = append(h.snapshots, e)
}
func (h *recordingHandler) ScheduledTimestamps() []itch.Timestamp { return h.scheduled }

var _ processor.Handler = (*recordingHandler)(nil)
var _ processor.ScheduledSnapshotSource = (*recordingHandler)(nil)

func addOrder(p *processor.Processor, ref itch.OrderRef, side itch.Side, price itch.Price, shares itch.Volume, ts itch.Timestamp) error {
	return p.OnAddOrder(&itch.AddOrderMessage{
		Header:   itch.Header{MessageTag: itch.Tag_AddOrder, Timestamp: ts},
		OrderRef: ref, Side: side, Shares: shares, Stock: itch.NewSymbol("AAPL"), Price: price,
	})
}

var _ = Describe("Processor", func() {
	var p *processor.Processor

	BeforeEach(func() {
		var err error
		p, err = processor.NewProcessor("AAPL", "2026-07-31", nil)
		Expect(err).To(BeNil())
	})

	It("discards messages for a different symbol", func() {
		err := p.OnAddOrder(&itch.AddOrderMessage{
			Header: itch.Header{Timestamp: 1000}, OrderRef: 1, Side: itch.Side_Buy,
			Shares: 100, Stock: itch.NewSymbol("MSFT"), Price: 1000000,
		})
		Expect(err).To(BeNil())
		_, ok := p.Book.Top(itch.Side_Buy)
		Expect(ok).To(BeFalse())
	})

	It("applies an add for its own symbol and dispatches OnAdd", func() {
		h := &recordingHandler{}
		p.AddHandler(h)
		Expect(addOrder(p, 7, itch.Side_Buy, 1000000, 100, 1000)).To(BeNil())
		Expect(h.adds).To(HaveLen(1))
		Expect(h.adds[0].Order.Ref).To(Equal(itch.OrderRef(7)))
		Expect(p.LastTimestamp).To(Equal(itch.Timestamp(1000)))
	})

	It("converts an unknown-ref book error into a StaleReference event, not an error", func() {
		h := &recordingHandler{}
		p.AddHandler(h)
		err := p.OnOrderDelete(&itch.OrderDeleteMessage{
			Header: itch.Header{Timestamp: 1000}, OrderRef: 999,
		})
		Expect(err).To(BeNil())
		Expect(h.stales).To(HaveLen(1))
		Expect(h.stales[0].Ref).To(Equal(itch.OrderRef(999)))
		Expect(h.errs).To(BeEmpty())
	})

	It("downgrades a non-stale book error to OnError by default", func() {
		h := &recordingHandler{}
		p.AddHandler(h)
		Expect(addOrder(p, 1, itch.Side_Buy, 1000000, 100, 1000)).To(BeNil())
		err := p.OnOrderCancel(&itch.OrderCancelMessage{
			Header: itch.Header{Timestamp: 1100}, OrderRef: 1, CancelledShares: 200,
		})
		Expect(err).To(BeNil())
		Expect(h.errs).To(HaveLen(1))
		Expect(h.errs[0].Err).To(Equal(book.ErrOverCancelled))
	})

	It("aborts in StrictMode on a non-stale book error", func() {
		p.StrictMode = true
		Expect(addOrder(p, 1, itch.Side_Buy, 1000000, 100, 1000)).To(BeNil())
		err := p.OnOrderCancel(&itch.OrderCancelMessage{
			Header: itch.Header{Timestamp: 1100}, OrderRef: 1, CancelledShares: 200,
		})
		Expect(err).To(Equal(book.ErrOverCancelled))
	})

	It("fatally rejects an add with zero remaining volume regardless of StrictMode", func() {
		h := &recordingHandler{}
		p.AddHandler(h)
		err := addOrder(p, 1, itch.Side_Buy, 1000000, 0, 1000)
		Expect(err).To(MatchError(processor.ErrInvariantViolation))
	})

	// Scenario 5 / scheduled-snapshot-timing property
	It("fires a scheduled snapshot exactly once, reflecting state strictly before the crossing message", func() {
		h := &recordingHandler{scheduled: []itch.Timestamp{1500}}
		p.AddHandler(h)

		Expect(addOrder(p, 7, itch.Side_Buy, itch.Price(1000000), 100, 1000)).To(BeNil())
		Expect(h.snapshots).To(BeEmpty())

		Expect(addOrder(p, 8, itch.Side_Buy, itch.Price(990000), 50, 2000)).To(BeNil())
		Expect(h.snapshots).To(HaveLen(1))
		Expect(h.snapshots[0].AsOf).To(Equal(itch.Timestamp(1500)))
		Expect(h.snapshots[0].Bid).To(HaveLen(1))
		Expect(h.snapshots[0].Bid[0].Price).To(Equal(itch.Price(1000000)))

		// a later message past the schedule should not re-trigger it
		Expect(addOrder(p, 9, itch.Side_Buy, itch.Price(980000), 10, 3000)).To(BeNil())
		Expect(h.snapshots).To(HaveLen(1))
	})
})
