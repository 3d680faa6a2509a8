package bintree

import (
	"golang.org/x/exp/constraints"
)

// Tree is an unbalanced binary search tree of unique items.
//
// Trees must be created by New, NewFunc or NewOrdered. A tree exclusively owns
// its nodes; no two trees share nodes, and Copy and Assign always copy deeply.
type Tree[T any] struct {
	cfg  Config[T]
	root *node[T]
	size int
}

// New creates an empty tree with validated configuration.
func New[T any](cfg Config[T]) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[T]{cfg: cfg.normalized()}, nil
}

// NewFunc creates an empty tree ordered by cmp, which must not be nil.
func NewFunc[T any](cmp CompareFunc[T]) *Tree[T] {
	t, err := New(Config[T]{Compare: cmp})
	assert(err == nil, "NewFunc requires a compare function")
	return t
}

// NewOrdered creates an empty tree for types supporting '<'.
func NewOrdered[T constraints.Ordered]() *Tree[T] {
	return NewFunc(Compare[T]())
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[T]) Config() Config[T] {
	return t.cfg
}

// IsEmpty reports whether the tree has no items.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of items in the tree.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Insert adds item to the tree, descending iteratively from the root.
// It returns false, leaving the tree unchanged, if an equal item is already
// present.
func (t *Tree[T]) Insert(item T) bool {
	assert(t != nil, "Insert called on nil tree")
	assert(t.cfg.Compare != nil, "Insert called on tree not created by New")
	if t.root == nil {
		t.root = &node[T]{item: item}
		t.size = 1
		return true
	}
	current := t.root
	for {
		c := t.cfg.Compare(item, current.item)
		switch {
		case c == 0:
			tracer().Debugf("bintree: rejecting duplicate item %v", item)
			return false
		case c < 0:
			if current.left == nil {
				current.left = &node[T]{item: item}
				t.size++
				return true
			}
			current = current.left
		default:
			if current.right == nil {
				current.right = &node[T]{item: item}
				t.size++
				return true
			}
			current = current.right
		}
	}
}

// Retrieve returns the stored item equal to target.
func (t *Tree[T]) Retrieve(target T) (T, bool) {
	if n := t.find(target); n != nil {
		return n.item, true
	}
	var zero T
	return zero, false
}

// Contains reports whether an item equal to target is stored.
func (t *Tree[T]) Contains(target T) bool {
	return t.find(target) != nil
}

// Height returns the height of the subtree rooted at the node holding target,
// where a leaf has height 1. It returns 0 if target is not in the tree.
func (t *Tree[T]) Height(target T) int {
	n := t.find(target)
	if n == nil {
		return 0
	}
	return height(n)
}

// Depth returns the height of the whole tree, 0 for an empty tree.
func (t *Tree[T]) Depth() int {
	if t == nil {
		return 0
	}
	return height(t.root)
}

func (t *Tree[T]) find(target T) *node[T] {
	if t == nil {
		return nil
	}
	n := t.root
	for n != nil {
		c := t.cfg.Compare(target, n.item)
		switch {
		case c == 0:
			return n
		case c < 0:
			n = n.left
		default:
			n = n.right
		}
	}
	return nil
}

// Clear removes all items from the tree. Nodes are released in post-order,
// handing every item to Config.Release exactly once.
func (t *Tree[T]) Clear() {
	if t == nil || t.root == nil {
		return
	}
	tracer().Debugf("bintree: clearing %d items", t.size)
	release(t.root, t.cfg.Release)
	t.root = nil
	t.size = 0
}

// Copy returns a deep copy of the tree. Items are duplicated with
// Config.Clone and the copy has the identical shape.
func (t *Tree[T]) Copy() *Tree[T] {
	if t == nil {
		return nil
	}
	return &Tree[T]{
		cfg:  t.cfg,
		root: copyNode(t.root, t.cfg.Clone),
		size: t.size,
	}
}

// Assign replaces the content of t with a deep copy of other, including
// other's configuration. The previous content of t is released first.
// Assigning a tree to itself does nothing; a nil other clears t.
// Assign may be used to initialize a zero Tree.
func (t *Tree[T]) Assign(other *Tree[T]) {
	assert(t != nil, "Assign called on nil tree")
	if t == other {
		return
	}
	t.Clear()
	if other == nil {
		return
	}
	tracer().Debugf("bintree: assigning copy of %d items", other.size)
	t.cfg = other.cfg
	t.root = copyNode(other.root, other.cfg.Clone)
	t.size = other.size
}

// Equal reports whether t and other have identical shape and pairwise equal
// items. Two empty trees are equal; a nil tree counts as empty.
func (t *Tree[T]) Equal(other *Tree[T]) bool {
	if t == other {
		return true
	}
	if t.IsEmpty() || other.IsEmpty() {
		return t.IsEmpty() && other.IsEmpty()
	}
	if t.size != other.size {
		return false
	}
	return equal(t.root, other.root, t.cfg.Compare)
}
