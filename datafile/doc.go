/*
Package datafile builds binary search trees from data files.

A data file is a sequence of white space separated words. Every word is an
item for the tree currently being built; the word “$$” completes the current
tree and starts a new one:

	iii not tttt eee r not and jj r eee pp r sssss eee not tttt ooo ff m m y z $$
	b a c b a c $$

Words are inserted in file order, so the shape of each tree reflects the
order of words. Duplicate words are rejected by the tree.

Loaders broadcast an Event for every word read, which lets clients follow the
loading process, e.g., for logging of rejected duplicates.

_________________________________________________________________________

# BSD 3-Clause License

Copyright (c) 2019–26, Johnathan Hewit.
Please refer to the LICENSE file for details.
*/
package datafile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bintree'
func tracer() tracing.Trace {
	return tracing.Select("bintree")
}
