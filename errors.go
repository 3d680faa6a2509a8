package bintree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("bintree: invalid configuration")
	// ErrTreeNotEmpty signals that an operation requiring an empty tree was
	// called on a tree holding items.
	ErrTreeNotEmpty = errors.New("bintree: tree is not empty")
	// ErrNotAscending signals input items which are not strictly ascending,
	// including duplicates.
	ErrNotAscending = errors.New("bintree: items not strictly ascending")
	// ErrInvariant signals a violated structural invariant, found by Check.
	ErrInvariant = errors.New("bintree: invariant violated")
)
