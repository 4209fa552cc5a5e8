package itch_test

import (
	"bytes"
	"testing"

	"github.com/go-itch/itch-go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// Test Launcher
func TestItch(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "itch-go suite")
}

func mustPutAddOrder(m itch.AddOrderMessage) []byte {
	buf := make([]byte, itch.AddOrderMessage_Size)
	m.MessageTag = itch.Tag_AddOrder
	m.Put(buf)
	return buf
}

var _ = Describe("Decoder", func() {
	sample := itch.AddOrderMessage{
		Header: itch.Header{
			StockLocate:    7,
			TrackingNumber: 1,
			Timestamp:      itch.Timestamp(123456789),
		},
		OrderRef: 555,
		Side:     itch.Side_Buy,
		Shares:   100,
		Stock:    itch.NewSymbol("AAPL"),
		Price:    itch.Price(1000000),
	}

	Context("FramingLengthPrefixed", func() {
		It("round-trips a single message", func() {
			body := mustPutAddOrder(sample)
			var stream bytes.Buffer
			lenPrefix := []byte{byte(len(body) >> 8), byte(len(body))}
			stream.Write(lenPrefix)
			stream.Write(body)

			d := itch.NewDecoder(&stream, itch.FramingLengthPrefixed, itch.ITCH50LengthTable)
			Expect(d.Next()).To(BeTrue())
			rec, err := itch.DecoderDecode[itch.AddOrderMessage, *itch.AddOrderMessage](d)
			Expect(err).To(BeNil())
			Expect(rec.OrderRef).To(Equal(sample.OrderRef))
			Expect(rec.Stock.TrimmedString()).To(Equal("AAPL"))

			Expect(d.Next()).To(BeFalse())
			Expect(d.Error()).ToNot(BeNil())
		})
	})

	Context("FramingFixedByType", func() {
		It("round-trips using the length table", func() {
			body := mustPutAddOrder(sample)
			var stream bytes.Buffer
			stream.Write(body)

			d := itch.NewDecoder(&stream, itch.FramingFixedByType, itch.ITCH50LengthTable)
			Expect(d.Next()).To(BeTrue())
			Expect(d.LastTag()).To(Equal(itch.Tag_AddOrder))
			rec, err := itch.DecoderDecode[itch.AddOrderMessage, *itch.AddOrderMessage](d)
			Expect(err).To(BeNil())
			Expect(rec.Price).To(Equal(sample.Price))
		})

		It("reports an error on an unknown tag", func() {
			var stream bytes.Buffer
			stream.WriteByte('!')
			d := itch.NewDecoder(&stream, itch.FramingFixedByType, itch.ITCH50LengthTable)
			Expect(d.Next()).To(BeFalse())
			Expect(d.Error()).To(MatchError(itch.ErrUnknownTag))
		})
	})

	Context("Visit", func() {
		It("dispatches AddOrder to the visitor", func() {
			body := mustPutAddOrder(sample)
			var stream bytes.Buffer
			stream.Write(body)

			d := itch.NewDecoder(&stream, itch.FramingFixedByType, itch.ITCH50LengthTable)
			Expect(d.Next()).To(BeTrue())

			var seen itch.OrderRef
			visitor := &addOrderCaptureVisitor{onAdd: func(m *itch.AddOrderMessage) { seen = m.OrderRef }}
			Expect(d.Visit(visitor)).To(BeNil())
			Expect(seen).To(Equal(sample.OrderRef))
		})

		It("reports LengthMismatch on a short frame instead of TruncatedStream", func() {
			body := mustPutAddOrder(sample)
			short := body[:len(body)-1] // one byte short of AddOrderMessage_Size
			var stream bytes.Buffer
			lenPrefix := []byte{byte(len(short) >> 8), byte(len(short))}
			stream.Write(lenPrefix)
			stream.Write(short)

			d := itch.NewDecoder(&stream, itch.FramingLengthPrefixed, itch.ITCH50LengthTable)
			Expect(d.Next()).To(BeTrue()) // the prefix itself is honored; only Visit knows the real size

			visitor := &addOrderCaptureVisitor{onAdd: func(m *itch.AddOrderMessage) {}}
			err := d.Visit(visitor)
			Expect(err).To(HaveOccurred())
			Expect(err).To(MatchError(itch.ErrLengthMismatch))
		})

		It("reports LengthMismatch on an oversized frame instead of decoding silently", func() {
			body := mustPutAddOrder(sample)
			oversized := append(append([]byte{}, body...), 0x00) // one trailing byte too many
			var stream bytes.Buffer
			lenPrefix := []byte{byte(len(oversized) >> 8), byte(len(oversized))}
			stream.Write(lenPrefix)
			stream.Write(oversized)

			d := itch.NewDecoder(&stream, itch.FramingLengthPrefixed, itch.ITCH50LengthTable)
			Expect(d.Next()).To(BeTrue())

			visitor := &addOrderCaptureVisitor{onAdd: func(m *itch.AddOrderMessage) {}}
			err := d.Visit(visitor)
			Expect(err).To(HaveOccurred())
			Expect(err).To(MatchError(itch.ErrLengthMismatch))
		})
	})
})

type addOrderCaptureVisitor struct {
	itch.NullVisitor
	onAdd func(*itch.AddOrderMessage)
}

func (v *addOrderCaptureVisitor) OnAddOrder(m *itch.AddOrderMessage) error {
	v.onAdd(m)
	return nil
}
