// Copyright (c) 2024 Neomantra Corp
//
// sideBook is a self-balancing binary search tree of price levels,
// adapted from tienpsm/go-trader's matching.AVLTree: same rotation and
// rebalance logic, generalized from that engine's single uint64 price
// key to itch.Price, and from its LevelNode (Level + OrderList + AVL
// pointers all in one struct) to priceLevelNode, which additionally
// owns the FIFO order queue for its price.

package book

import (
	"container/list"

	"github.com/go-itch/itch-go"
)

// priceLevelNode is one node of the tree: a price, its FIFO order
// queue, and the AVL bookkeeping (parent/children/balance factor).
type priceLevelNode struct {
	price       itch.Price
	orders      *list.List // of *order, oldest at Front
	totalVolume uint64

	parent, left, right *priceLevelNode
	balance             int
}

func newPriceLevelNode(price itch.Price) *priceLevelNode {
	return &priceLevelNode{price: price, orders: list.New()}
}

// sideBook is one side (bid or ask) of an OrderBook: an AVL tree keyed
// by price, ordered descending for bids (best = highest) and ascending
// for asks (best = lowest).
type sideBook struct {
	root       *priceLevelNode
	size       int
	descending bool
}

func newSideBook(descending bool) *sideBook {
	return &sideBook{descending: descending}
}

func (t *sideBook) empty() bool { return t.root == nil }

// best returns the top-of-book level: the first in iteration order.
func (t *sideBook) best() *priceLevelNode {
	node := t.root
	if node == nil {
		return nil
	}
	for node.left != nil {
		node = node.left
	}
	return node
}

func (t *sideBook) compare(a, b itch.Price) int {
	if t.descending {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		default:
			return 0
		}
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (t *sideBook) find(price itch.Price) *priceLevelNode {
	node := t.root
	for node != nil {
		if price == node.price {
			return node
		}
		if t.compare(price, node.price) < 0 {
			node = node.left
		} else {
			node = node.right
		}
	}
	return nil
}

// findOrInsert returns the node for price, creating and inserting one
// if absent.
func (t *sideBook) findOrInsert(price itch.Price) *priceLevelNode {
	if t.root == nil {
		node := newPriceLevelNode(price)
		t.root = node
		t.size++
		return node
	}

	parent := t.root
	for {
		if price == parent.price {
			return parent
		}
		cmp := t.compare(price, parent.price)
		if cmp < 0 {
			if parent.left == nil {
				node := newPriceLevelNode(price)
				parent.left = node
				node.parent = parent
				t.size++
				t.rebalanceInsert(parent, true)
				return node
			}
			parent = parent.left
		} else {
			if parent.right == nil {
				node := newPriceLevelNode(price)
				parent.right = node
				node.parent = parent
				t.size++
				t.rebalanceInsert(parent, false)
				return node
			}
			parent = parent.right
		}
	}
}

func (t *sideBook) remove(node *priceLevelNode) {
	if node == nil {
		return
	}

	var replacement, parent *priceLevelNode
	var isLeft bool

	switch {
	case node.left == nil && node.right == nil:
		replacement = nil
		parent = node.parent
	case node.left == nil:
		replacement = node.right
		parent = node.parent
	case node.right == nil:
		replacement = node.left
		parent = node.parent
	default:
		successor := node.right
		for successor.left != nil {
			successor = successor.left
		}
		node.price = successor.price
		node.orders = successor.orders
		node.totalVolume = successor.totalVolume
		for e := node.orders.Front(); e != nil; e = e.Next() {
			e.Value.(*order).level = node
		}

		if successor.parent == node {
			node.right = successor.right
			if successor.right != nil {
				successor.right.parent = node
			}
			parent = node
			isLeft = false // the removed node vacated node's right side
		} else {
			successor.parent.left = successor.right
			if successor.right != nil {
				successor.right.parent = successor.parent
			}
			parent = successor.parent
			isLeft = true // successor was its parent's leftmost descendant
		}
		t.size--
		t.rebalanceRemove(parent, isLeft)
		return
	}

	if parent != nil {
		isLeft = parent.left == node
	}
	if parent == nil {
		t.root = replacement
	} else if isLeft {
		parent.left = replacement
	} else {
		parent.right = replacement
	}
	if replacement != nil {
		replacement.parent = parent
	}
	t.size--
	if parent != nil {
		t.rebalanceRemove(parent, isLeft)
	}
}

func (t *sideBook) rebalanceInsert(parent *priceLevelNode, isLeft bool) {
	node := parent
	for node != nil {
		if isLeft {
			node.balance--
		} else {
			node.balance++
		}
		if node.balance == 0 {
			break
		}
		if node.balance == -2 || node.balance == 2 {
			t.rebalance(node)
			break
		}
		child := node
		node = node.parent
		if node != nil {
			isLeft = node.left == child
		}
	}
}

// rebalanceRemove walks from parent up to the root, adjusting each
// ancestor's balance factor incrementally (the side named by isLeft
// just lost a node) instead of recomputing subtree height, so a
// removal costs O(log L) rather than O(L) over the level count.
func (t *sideBook) rebalanceRemove(parent *priceLevelNode, isLeft bool) {
	node := parent
	for node != nil {
		if isLeft {
			node.balance++
		} else {
			node.balance--
		}

		if node.balance == 1 || node.balance == -1 {
			// this subtree's height is unchanged; ancestors are unaffected
			return
		}
		if node.balance == -2 || node.balance == 2 {
			node = t.rebalance(node)
			if node.balance == 1 || node.balance == -1 {
				return
			}
		}

		child := node
		node = node.parent
		if node != nil {
			isLeft = node.left == child
		}
	}
}

func (t *sideBook) rebalance(node *priceLevelNode) *priceLevelNode {
	if node.balance == -2 {
		if node.left.balance <= 0 {
			return t.rotateRight(node)
		}
		t.rotateLeft(node.left)
		return t.rotateRight(node)
	}
	if node.balance == 2 {
		if node.right.balance >= 0 {
			return t.rotateLeft(node)
		}
		t.rotateRight(node.right)
		return t.rotateLeft(node)
	}
	return node
}

func (t *sideBook) rotateLeft(node *priceLevelNode) *priceLevelNode {
	pivot := node.right
	parent := node.parent

	node.right = pivot.left
	if node.right != nil {
		node.right.parent = node
	}
	pivot.left = node
	node.parent = pivot

	pivot.parent = parent
	switch {
	case parent == nil:
		t.root = pivot
	case parent.left == node:
		parent.left = pivot
	default:
		parent.right = pivot
	}

	node.balance = node.balance - 1 - max(0, pivot.balance)
	pivot.balance = pivot.balance - 1 + min(0, node.balance)
	return pivot
}

func (t *sideBook) rotateRight(node *priceLevelNode) *priceLevelNode {
	pivot := node.left
	parent := node.parent

	node.left = pivot.right
	if node.left != nil {
		node.left.parent = node
	}
	pivot.right = node
	node.parent = pivot

	pivot.parent = parent
	switch {
	case parent == nil:
		t.root = pivot
	case parent.left == node:
		parent.left = pivot
	default:
		parent.right = pivot
	}

	node.balance = node.balance + 1 - min(0, pivot.balance)
	pivot.balance = pivot.balance + 1 + max(0, node.balance)
	return pivot
}

// forEach visits levels in iteration order (best price first), until
// fn returns false.
func (t *sideBook) forEach(fn func(*priceLevelNode) bool) {
	t.walk(t.root, fn)
}

func (t *sideBook) walk(node *priceLevelNode, fn func(*priceLevelNode) bool) bool {
	if node == nil {
		return true
	}
	if !t.walk(node.left, fn) {
		return false
	}
	if !fn(node) {
		return false
	}
	return t.walk(node.right, fn)
}
