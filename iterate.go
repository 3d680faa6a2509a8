package bintree

import "iter"

// Order selects the visiting order of Walk.
type Order int

const (
	// InOrder visits left subtree, node, right subtree (ascending items).
	InOrder Order = iota
	// ReverseOrder visits right subtree, node, left subtree (descending items).
	// This is the line order of a sideways display.
	ReverseOrder
	// PreOrder visits a node before its subtrees.
	PreOrder
	// PostOrder visits a node after its subtrees.
	PostOrder
)

func (o Order) String() string {
	switch o {
	case InOrder:
		return "in-order"
	case ReverseOrder:
		return "reverse-order"
	case PreOrder:
		return "pre-order"
	case PostOrder:
		return "post-order"
	}
	return "unknown-order"
}

// WalkFn is called for every item visited by Walk, together with the depth
// of its node (0 for the root). Returning false stops the walk.
type WalkFn[T any] func(item T, depth int) bool

// Walk visits all items in the given order without modifying the tree.
func (t *Tree[T]) Walk(order Order, fn WalkFn[T]) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	walk(t.root, order, 0, fn)
}

func walk[T any](n *node[T], order Order, depth int, fn WalkFn[T]) bool {
	if n == nil {
		return true
	}
	first, second := n.left, n.right
	if order == ReverseOrder {
		first, second = second, first
	}
	if order == PreOrder && !fn(n.item, depth) {
		return false
	}
	if !walk(first, order, depth+1, fn) {
		return false
	}
	if (order == InOrder || order == ReverseOrder) && !fn(n.item, depth) {
		return false
	}
	if !walk(second, order, depth+1, fn) {
		return false
	}
	if order == PostOrder && !fn(n.item, depth) {
		return false
	}
	return true
}

// ForEachItem walks items in ascending order.
//
// Iteration stops early if callback returns false.
func (t *Tree[T]) ForEachItem(fn func(item T) bool) {
	if fn == nil {
		return
	}
	t.Walk(InOrder, func(item T, _ int) bool {
		return fn(item)
	})
}

// All returns an iterator over the items in ascending order.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.ForEachItem(yield)
	}
}

// Side tells which link leads to a node.
type Side int

const (
	// Root marks the root node, which has no incoming link.
	Root Side = iota
	// Left marks a left child.
	Left
	// Right marks a right child.
	Right
)

// Descend visits all items in pre-order, reporting for every item the side of
// the link leading to its node and the node's depth. This is enough to
// reconstruct the exact shape of the tree. Returning false stops the walk.
func (t *Tree[T]) Descend(fn func(item T, side Side, depth int) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	descend(t.root, Root, 0, fn)
}

func descend[T any](n *node[T], side Side, depth int, fn func(T, Side, int) bool) bool {
	if n == nil {
		return true
	}
	return fn(n.item, side, depth) &&
		descend(n.left, Left, depth+1, fn) &&
		descend(n.right, Right, depth+1, fn)
}
