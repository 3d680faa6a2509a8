package bintree

import "fmt"

// Check validates the ordering invariant and the cached item count.
//
// It is meant to be used in tests.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if err := t.cfg.validate(); err != nil {
		return err
	}
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree must have size 0, has %d", ErrInvariant, t.size)
		}
		return nil
	}
	count, err := t.checkNode(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size mismatch (%d != %d)", ErrInvariant, count, t.size)
	}
	return nil
}

// checkNode verifies that all items of the subtree lie strictly between
// lower and upper (nil meaning unbounded) and returns the item count.
func (t *Tree[T]) checkNode(n *node[T], lower, upper *T) (int, error) {
	if n == nil {
		return 0, nil
	}
	if lower != nil && t.cfg.Compare(*lower, n.item) >= 0 {
		return 0, fmt.Errorf("%w: item %v not greater than %v", ErrInvariant, n.item, *lower)
	}
	if upper != nil && t.cfg.Compare(n.item, *upper) >= 0 {
		return 0, fmt.Errorf("%w: item %v not less than %v", ErrInvariant, n.item, *upper)
	}
	left, err := t.checkNode(n.left, lower, &n.item)
	if err != nil {
		return 0, err
	}
	right, err := t.checkNode(n.right, &n.item, upper)
	if err != nil {
		return 0, err
	}
	return left + right + 1, nil
}
