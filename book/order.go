// Copyright (c) 2024 Neomantra Corp

package book

import (
	"container/list"

	"github.com/go-itch/itch-go"
)

// order is a live resting order, exclusively owned by the OrderIndex;
// a priceLevelNode holds only a non-owning reference to it via the
// container/list element returned when it was queued.
type order struct {
	ref         itch.OrderRef
	side        itch.Side
	price       itch.Price
	shares      itch.Volume
	timestamp   itch.Timestamp
	attribution [4]byte // MPID, zero value if none

	level *priceLevelNode
}

// orderLocator is what OrderIndex stores: the side book and list
// element an order lives at (the level itself is reached through the
// order's own level field), giving O(1) lookup and removal without
// scanning the level's FIFO queue.
type orderLocator struct {
	side *sideBook
	elem *list.Element
}
