package bintree

import "fmt"

// Cursor iterates over the items of a tree in ascending order, using an
// explicit stack instead of recursion. It is therefore safe to use on
// degenerate trees of any height.
//
// A cursor is invalidated by any modification of its tree.
type Cursor[T any] struct {
	tree  *Tree[T]
	stack []*node[T] // nodes whose item is pending, smallest on top
	cur   *node[T]
}

// NewCursor creates a cursor positioned before the smallest item of tree.
func NewCursor[T any](tree *Tree[T]) (*Cursor[T], error) {
	if tree == nil {
		return nil, fmt.Errorf("%w: tree is nil", ErrInvalidConfig)
	}
	c := &Cursor[T]{tree: tree}
	c.First()
	return c, nil
}

// First positions the cursor before the smallest item.
func (c *Cursor[T]) First() {
	c.stack = c.stack[:0]
	c.cur = nil
	c.pushLeft(c.tree.root)
}

// Seek positions the cursor before the smallest item not less than target.
func (c *Cursor[T]) Seek(target T) {
	c.stack = c.stack[:0]
	c.cur = nil
	n := c.tree.root
	for n != nil {
		if c.tree.cfg.Compare(target, n.item) <= 0 {
			c.stack = append(c.stack, n)
			n = n.left
		} else {
			n = n.right
		}
	}
}

// Next advances the cursor to the next item. It returns false if there are no
// more items.
func (c *Cursor[T]) Next() bool {
	if len(c.stack) == 0 {
		c.cur = nil
		return false
	}
	top := len(c.stack) - 1
	c.cur = c.stack[top]
	c.stack[top] = nil
	c.stack = c.stack[:top]
	c.pushLeft(c.cur.right)
	return true
}

// Item returns the item at the cursor position. It must only be called after
// a call to Next returned true.
func (c *Cursor[T]) Item() T {
	assert(c.cur != nil, "cursor is not positioned at an item")
	return c.cur.item
}

func (c *Cursor[T]) pushLeft(n *node[T]) {
	for ; n != nil; n = n.left {
		c.stack = append(c.stack, n)
	}
}
