package itch_test

import (
	"bytes"

	"github.com/go-itch/itch-go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Encoder", func() {
	var (
		buf    bytes.Buffer
		filter itch.SimpleSymbolFilter
		enc    *itch.Encoder
	)

	BeforeEach(func() {
		buf.Reset()
		filter = itch.NewSimpleSymbolFilter("AAPL")
		enc = itch.NewEncoder(&buf, filter)
	})

	It("passes system-wide messages unconditionally", func() {
		msg := &itch.SystemEventMessage{EventCode: itch.SystemEventCode_StartOfMessages}
		Expect(enc.OnSystemEvent(msg)).To(BeNil())
		Expect(buf.Len()).To(Equal(2 + itch.SystemEventMessage_Size))
	})

	It("drops a symbol-keyed message outside the filter", func() {
		msg := &itch.AddOrderMessage{Stock: itch.NewSymbol("MSFT"), OrderRef: 1}
		Expect(enc.OnAddOrder(msg)).To(BeNil())
		Expect(buf.Len()).To(Equal(0))
	})

	It("passes a symbol-keyed message inside the filter and remembers its ref", func() {
		add := &itch.AddOrderMessage{Stock: itch.NewSymbol("AAPL"), OrderRef: 42}
		Expect(enc.OnAddOrder(add)).To(BeNil())
		Expect(buf.Len()).To(Equal(2 + itch.AddOrderMessage_Size))

		buf.Reset()
		exec := &itch.OrderExecutedMessage{OrderRef: 42, ExecutedShares: 10}
		Expect(enc.OnOrderExecuted(exec)).To(BeNil())
		Expect(buf.Len()).To(Equal(2 + itch.OrderExecutedMessage_Size))
	})

	It("drops an order-keyed follow-up whose ref was never emitted", func() {
		exec := &itch.OrderExecutedMessage{OrderRef: 999}
		Expect(enc.OnOrderExecuted(exec)).To(BeNil())
		Expect(buf.Len()).To(Equal(0))
	})

	It("moves the emitted ref on replace", func() {
		add := &itch.AddOrderMessage{Stock: itch.NewSymbol("AAPL"), OrderRef: 1}
		Expect(enc.OnAddOrder(add)).To(BeNil())

		buf.Reset()
		replace := &itch.OrderReplaceMessage{OriginalOrderRef: 1, NewOrderRef: 2}
		Expect(enc.OnOrderReplace(replace)).To(BeNil())
		Expect(buf.Len()).To(Equal(2 + itch.OrderReplaceMessage_Size))

		buf.Reset()
		del := &itch.OrderDeleteMessage{OrderRef: 1}
		Expect(enc.OnOrderDelete(del)).To(BeNil())
		Expect(buf.Len()).To(Equal(0))

		del2 := &itch.OrderDeleteMessage{OrderRef: 2}
		Expect(enc.OnOrderDelete(del2)).To(BeNil())
		Expect(buf.Len()).To(Equal(2 + itch.OrderDeleteMessage_Size))
	})

	It("passes a broken-trade follow-up only if the match was emitted", func() {
		broken := &itch.BrokenTradeMessage{MatchNumber: 7}
		Expect(enc.OnBrokenTrade(broken)).To(BeNil())
		Expect(buf.Len()).To(Equal(0))

		trade := &itch.TradeMessage{Stock: itch.NewSymbol("AAPL"), MatchNumber: 7}
		Expect(enc.OnTrade(trade)).To(BeNil())

		buf.Reset()
		Expect(enc.OnBrokenTrade(broken)).To(BeNil())
		Expect(buf.Len()).To(Equal(2 + itch.BrokenTradeMessage_Size))
	})

	It("passes a broken-trade retracting a previously emitted cross trade", func() {
		broken := &itch.BrokenTradeMessage{MatchNumber: 11}
		Expect(enc.OnBrokenTrade(broken)).To(BeNil())
		Expect(buf.Len()).To(Equal(0))

		cross := &itch.CrossTradeMessage{Stock: itch.NewSymbol("AAPL"), MatchNumber: 11}
		Expect(enc.OnCrossTrade(cross)).To(BeNil())

		buf.Reset()
		Expect(enc.OnBrokenTrade(broken)).To(BeNil())
		Expect(buf.Len()).To(Equal(2 + itch.BrokenTradeMessage_Size))
	})
})
