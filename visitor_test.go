// Copyright (c) 2025 Neomantra Corp

package itch_test

import (
	"github.com/go-itch/itch-go"
	. "github.com/onsi/ginkgo/v2"
)

var _ = Describe("Visitor", func() {
	Context("interfaces", func() {
		It("NullVisitor should implement itch.Visitor", func() {
			v := itch.NullVisitor{}
			var _ itch.Visitor = &v
		})
	})
})
