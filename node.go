package bintree

// node holds one item and exclusively owns its children.
type node[T any] struct {
	item        T
	left, right *node[T]
}

func (n *node[T]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// height is 1 + max(height(left), height(right)), 0 for nil.
func height[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

func equal[T any](a, b *node[T], cmp CompareFunc[T]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return cmp(a.item, b.item) == 0 &&
		equal(a.left, b.left, cmp) &&
		equal(a.right, b.right, cmp)
}

func copyNode[T any](n *node[T], clone func(T) T) *node[T] {
	if n == nil {
		return nil
	}
	return &node[T]{
		item:  clone(n.item),
		left:  copyNode(n.left, clone),
		right: copyNode(n.right, clone),
	}
}

// release drops a subtree children first, handing each item to fn.
func release[T any](n *node[T], fn func(T)) {
	if n == nil {
		return
	}
	release(n.left, fn)
	release(n.right, fn)
	if fn != nil {
		fn(n.item)
	}
	var zero T
	n.item = zero
	n.left, n.right = nil, nil
}
