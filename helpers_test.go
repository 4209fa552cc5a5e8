// Copyright (c) 2024 Neomantra Corp

package itch_test

import (
	"github.com/go-itch/itch-go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Symbol", func() {
	Context("conversion", func() {
		It("right-pads short tickers with spaces", func() {
			sym := itch.NewSymbol("IBM")
			Expect(sym.TrimmedString()).To(Equal("IBM"))
			Expect(sym[3]).To(Equal(byte(' ')))
		})
		It("truncates tickers longer than 8 bytes", func() {
			sym := itch.NewSymbol("TOOLONGTICKER")
			Expect(len(sym)).To(Equal(8))
		})
		It("round-trips via String", func() {
			sym := itch.NewSymbol("AAPL")
			Expect(sym.String()).To(Equal("AAPL"))
		})
	})
})

var _ = Describe("Price", func() {
	It("converts to float64 using the 10000 scale", func() {
		p := itch.Price(1234550000)
		Expect(p.Float64()).To(Equal(123455.0))
	})
	It("converts to an exact decimal.Decimal", func() {
		p := itch.Price(1000000)
		Expect(p.Decimal().String()).To(Equal("100.0000"))
	})
})
