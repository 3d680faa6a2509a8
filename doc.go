/*
Package bintree implements an unbalanced binary search tree of unique,
ordered items.

# Trees

A Tree keeps its items ordered by a caller supplied comparison: for every
node, all items of its left subtree compare less than the node's item and all
items of its right subtree compare greater. Items are unique; inserting an item
equal to one already stored is rejected.

No rebalancing happens on insertion. The shape of a tree is purely a function
of insertion order, which makes it a useful vehicle for teaching and for
inspecting how insertion order influences search paths:

	t := bintree.NewOrdered[int]()
	for _, x := range []int{5, 3, 8, 1, 4} {
	    t.Insert(x)
	}
	fmt.Print(t)           // 1 3 4 5 8
	t.Height(5)            // 3
	items := t.Flatten()   // [1 3 4 5 8], t is empty now
	t.BuildBalanced(items) // minimum-height tree rooted at 4

Trees are not safe for concurrent use. Copy and Assign always produce deep
copies, so no two trees ever share nodes.

_________________________________________________________________________

# BSD 3-Clause License

Copyright (c) 2019–26, Johnathan Hewit. All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package bintree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
