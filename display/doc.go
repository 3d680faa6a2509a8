/*
Package display renders binary search trees for humans.

The main function is Sideways, which draws a tree rotated by 90 degrees:
the right subtree above its root above the left subtree, with indentation
growing with depth. Items of different depth may be colored, which helps
reading larger trees on a terminal.

Console output of arbitrary items is tricky, as items may render to strings
of different display width (think of East Asian wide characters). Widths are
therefore measured in “en”s, i.e. fixed width positions, using the
Unicode East Asian Width rules (UAX #11).

_________________________________________________________________________

# BSD 3-Clause License

Copyright (c) 2019–26, Johnathan Hewit.
Please refer to the LICENSE file for details.
*/
package display

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bintree'
func tracer() tracing.Trace {
	return tracing.Select("bintree")
}
