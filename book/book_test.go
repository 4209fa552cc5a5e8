package book_test

import (
	"testing"
	"time"

	"github.com/go-itch/itch-go"
	"github.com/go-itch/itch-go/book"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestBook(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "book suite")
}

var bookDate = time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)

var _ = Describe("OrderBook", func() {
	var ob *book.OrderBook

	BeforeEach(func() {
		ob = book.NewOrderBook(itch.NewSymbol("AAPL"), bookDate)
	})

	// Scenario 1
	It("keeps FIFO order and aggregate volume across partial execution", func() {
		Expect(ob.Add(1, itch.Side_Buy, 1000000, 500, 1000, [4]byte{})).To(Succeed())
		Expect(ob.Add(2, itch.Side_Buy, 1000000, 300, 1100, [4]byte{})).To(Succeed())

		_, err := ob.Execute(1, 200)
		Expect(err).To(BeNil())

		top, ok := ob.Top(itch.Side_Buy)
		Expect(ok).To(BeTrue())
		Expect(top.Price).To(Equal(itch.Price(1000000)))
		Expect(top.AggregateVolume).To(Equal(uint64(600)))
		Expect(top.OrderCount).To(Equal(2))

		detail := ob.Snapshot(itch.Side_Buy, 0, true)
		Expect(detail).To(HaveLen(1))
		Expect(detail[0].Orders[0].Ref).To(Equal(itch.OrderRef(1)))
		Expect(detail[0].Orders[0].Shares).To(Equal(itch.Volume(300)))
		Expect(detail[0].Orders[1].Ref).To(Equal(itch.OrderRef(2)))
		Expect(detail[0].Orders[1].Shares).To(Equal(itch.Volume(300)))
	})

	// Scenario 2
	It("removes a fully-executed order from the level and index", func() {
		Expect(ob.Add(1, itch.Side_Buy, 1000000, 500, 1000, [4]byte{})).To(Succeed())
		Expect(ob.Add(2, itch.Side_Buy, 1000000, 300, 1100, [4]byte{})).To(Succeed())
		_, err := ob.Execute(1, 200)
		Expect(err).To(BeNil())
		_, err = ob.Execute(1, 300)
		Expect(err).To(BeNil())

		detail := ob.Snapshot(itch.Side_Buy, 0, true)
		Expect(detail).To(HaveLen(1))
		Expect(detail[0].Orders).To(HaveLen(1))
		Expect(detail[0].Orders[0].Ref).To(Equal(itch.OrderRef(2)))

		_, err = ob.Execute(1, 1)
		Expect(err).To(Equal(book.ErrUnknownRef))
	})

	// Scenario 3
	It("replace moves an order to a new price, losing queue priority", func() {
		Expect(ob.Add(10, itch.Side_Sell, 1010000, 100, 2000, [4]byte{})).To(Succeed())

		_, err := ob.Replace(10, 11, 150, 1005000, 2100)
		Expect(err).To(BeNil())

		_, ok := ob.Top(itch.Side_Sell)
		Expect(ok).To(BeTrue())

		detail := ob.Snapshot(itch.Side_Sell, 0, true)
		Expect(detail).To(HaveLen(1))
		Expect(detail[0].Price).To(Equal(itch.Price(1005000)))
		Expect(detail[0].Orders).To(HaveLen(1))
		Expect(detail[0].Orders[0].Ref).To(Equal(itch.OrderRef(11)))
		Expect(detail[0].Orders[0].Shares).To(Equal(itch.Volume(150)))
		Expect(detail[0].Orders[0].Timestamp).To(Equal(itch.Timestamp(2100)))

		_, err = ob.Delete(10)
		Expect(err).To(Equal(book.ErrUnknownRef))
	})

	// Scenario 4
	It("removes the price level entirely once its one order is cancelled out", func() {
		Expect(ob.Add(5, itch.Side_Buy, 990000, 100, 500, [4]byte{})).To(Succeed())
		_, err := ob.Cancel(5, 100)
		Expect(err).To(BeNil())

		_, ok := ob.Top(itch.Side_Buy)
		Expect(ok).To(BeFalse())
		_, err = ob.Delete(5)
		Expect(err).To(Equal(book.ErrUnknownRef))
	})

	It("rejects a duplicate order reference", func() {
		Expect(ob.Add(1, itch.Side_Buy, 1000000, 100, 0, [4]byte{})).To(Succeed())
		Expect(ob.Add(1, itch.Side_Buy, 1000000, 100, 0, [4]byte{})).To(Equal(book.ErrDuplicateRef))
	})

	It("rejects execution beyond remaining volume", func() {
		Expect(ob.Add(1, itch.Side_Buy, 1000000, 100, 0, [4]byte{})).To(Succeed())
		_, err := ob.Execute(1, 200)
		Expect(err).To(Equal(book.ErrOverExecuted))
	})

	It("rejects cancellation beyond remaining volume", func() {
		Expect(ob.Add(1, itch.Side_Buy, 1000000, 100, 0, [4]byte{})).To(Succeed())
		_, err := ob.Cancel(1, 200)
		Expect(err).To(Equal(book.ErrOverCancelled))
	})

	It("orders bid levels descending and ask levels ascending", func() {
		Expect(ob.Add(1, itch.Side_Buy, 990000, 100, 0, [4]byte{})).To(Succeed())
		Expect(ob.Add(2, itch.Side_Buy, 1000000, 100, 0, [4]byte{})).To(Succeed())
		Expect(ob.Add(3, itch.Side_Sell, 1020000, 100, 0, [4]byte{})).To(Succeed())
		Expect(ob.Add(4, itch.Side_Sell, 1010000, 100, 0, [4]byte{})).To(Succeed())

		bids := ob.Snapshot(itch.Side_Buy, 0, false)
		Expect(bids[0].Price).To(Equal(itch.Price(1000000)))
		Expect(bids[1].Price).To(Equal(itch.Price(990000)))

		asks := ob.Snapshot(itch.Side_Sell, 0, false)
		Expect(asks[0].Price).To(Equal(itch.Price(1010000)))
		Expect(asks[1].Price).To(Equal(itch.Price(1020000)))
	})

	It("empties completely after a full add/delete cycle", func() {
		Expect(ob.Add(1, itch.Side_Buy, 1000000, 100, 0, [4]byte{})).To(Succeed())
		Expect(ob.Add(2, itch.Side_Sell, 1010000, 50, 0, [4]byte{})).To(Succeed())
		_, err := ob.Delete(1)
		Expect(err).To(BeNil())
		_, err = ob.Delete(2)
		Expect(err).To(BeNil())

		Expect(ob.Snapshot(itch.Side_Buy, 0, false)).To(BeEmpty())
		Expect(ob.Snapshot(itch.Side_Sell, 0, false)).To(BeEmpty())
	})
})
