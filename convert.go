package bintree

import "fmt"

// Flatten moves all items out of the tree into a slice in ascending order
// and leaves the tree empty. The slice has exactly Len() elements.
//
// Moved items are owned by the caller and are not passed to Config.Release.
func (t *Tree[T]) Flatten() []T {
	if t == nil || t.root == nil {
		return []T{}
	}
	items := moveOut(t.root, make([]T, 0, t.size))
	assert(len(items) == t.size, "Flatten: item count differs from tree size")
	t.root = nil
	t.size = 0
	return items
}

func moveOut[T any](n *node[T], items []T) []T {
	if n == nil {
		return items
	}
	items = moveOut(n.left, items)
	items = append(items, n.item)
	var zero T
	n.item = zero
	items = moveOut(n.right, items)
	n.left, n.right = nil, nil
	return items
}

// BuildBalanced fills an empty tree with items, which must be strictly
// ascending. The middle item of every range becomes the range's root
// (lower middle for ranges of even length), giving a tree of minimum height
// ⌈log2(n+1)⌉.
//
// The tree takes ownership of items without cloning them. If the tree is not
// empty or items are not strictly ascending, BuildBalanced returns an error
// and leaves the tree unchanged.
func (t *Tree[T]) BuildBalanced(items []T) error {
	assert(t != nil, "BuildBalanced called on nil tree")
	assert(t.cfg.Compare != nil, "BuildBalanced called on tree not created by New")
	if !t.IsEmpty() {
		tracer().Errorf("bintree: cannot build into tree holding %d items", t.size)
		return fmt.Errorf("%w: holds %d items", ErrTreeNotEmpty, t.size)
	}
	for i := 1; i < len(items); i++ {
		if t.cfg.Compare(items[i-1], items[i]) >= 0 {
			tracer().Errorf("bintree: items out of order at index %d", i)
			return fmt.Errorf("%w: item %v at index %d does not follow %v",
				ErrNotAscending, items[i], i, items[i-1])
		}
	}
	t.root = buildRange(items, 0, len(items)-1)
	t.size = len(items)
	tracer().Debugf("bintree: built balanced tree of %d items, height %d", t.size, t.Depth())
	return nil
}

func buildRange[T any](items []T, low, high int) *node[T] {
	if high < low {
		return nil
	}
	mid := (low + high) / 2
	return &node[T]{
		item:  items[mid],
		left:  buildRange(items, low, mid-1),
		right: buildRange(items, mid+1, high),
	}
}
