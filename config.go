package bintree

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// CompareFunc imposes a strict total order on items.
//
// It returns a negative number if a sorts before b, a positive number if a
// sorts after b, and 0 if a and b are equal. A tree holds at most one of any
// set of mutually equal items.
type CompareFunc[T any] func(a, b T) int

// Compare returns a CompareFunc using the '<' and '>' operators.
func Compare[T constraints.Ordered]() CompareFunc[T] {
	return func(a, b T) int {
		if a < b {
			return -1
		}
		if a > b {
			return 1
		}
		return 0
	}
}

// Config configures a tree.
type Config[T any] struct {
	// Compare orders items. It is required.
	Compare CompareFunc[T]
	// Clone duplicates an item for Copy and Assign. If nil, items are copied
	// by plain assignment, which is a deep copy for value types only.
	Clone func(T) T
	// Release is called exactly once for every item dropped by Clear or by
	// Assign, children before their parent. Items moved out by Flatten are
	// not released. May be nil.
	Release func(T)
}

func (cfg Config[T]) normalized() Config[T] {
	if cfg.Clone == nil {
		cfg.Clone = func(item T) T { return item }
	}
	return cfg
}

func (cfg Config[T]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: compare function is required", ErrInvalidConfig)
	}
	return nil
}
