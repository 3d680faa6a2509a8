/*
Package html exchanges binary search trees with HTML lists.

Render writes a tree as nested unordered lists, where every list item holds a
tree item, and its left and right children are marked by CSS classes "left"
and "right". TreeFromHTML reads the list items of an HTML fragment in document
order and inserts them into a new tree. As document order of a rendered tree
is the pre-order of its nodes, reading a rendered tree reproduces the tree's
shape exactly.

_________________________________________________________________________

# BSD 3-Clause License

Copyright (c) 2019–26, Johnathan Hewit.
Please refer to the LICENSE file for details.
*/
package html

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jhewit/bintree"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer writes to trace with key 'bintree'
func tracer() tracing.Trace {
	return tracing.Select("bintree")
}

// ErrIllegalArguments is flagged whenever function parameters are invalid.
var ErrIllegalArguments = errors.New("html: illegal arguments")

// InnerText returns the textual content of an HTML element and all
// its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that InnerText cannot respect CSS styling suppressing
// the visibility of the node's descendents).
func InnerText(n *html.Node) (string, error) {
	if n == nil {
		return "", ErrIllegalArguments
	}
	var b strings.Builder
	collectText(n, &b, true)
	return b.String(), nil
}

// collectText appends text of n to b. If deep is false, nested lists are
// skipped, as they carry other tree items.
func collectText(n *html.Node, b *strings.Builder, deep bool) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !deep && c.Type == html.ElementNode && (c.DataAtom == atom.Ul || c.DataAtom == atom.Ol) {
			continue
		}
		collectText(c, b, deep)
	}
}

// TreeFromHTML creates a tree of strings from the list items of an HTML
// fragment. The text of every <li> element, excluding nested lists and
// surrounding white space, is inserted in document order. Empty items are
// skipped, duplicates are rejected by the tree and do not count as an error.
func TreeFromHTML(input io.Reader) (*bintree.Tree[string], error) {
	if input == nil {
		return nil, ErrIllegalArguments
	}
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	tree := bintree.NewOrdered[string]()
	for _, n := range nodes {
		insertItems(n, tree)
	}
	tracer().Debugf("html: read %d list items", tree.Len())
	return tree, nil
}

func insertItems(n *html.Node, tree *bintree.Tree[string]) {
	if n.Type == html.ElementNode && n.DataAtom == atom.Li {
		var b strings.Builder
		collectText(n, &b, false)
		if item := strings.TrimSpace(b.String()); item != "" {
			if !tree.Insert(item) {
				tracer().Infof("html: skipping duplicate list item %q", item)
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		insertItems(c, tree)
	}
}

// Node converts a tree into an HTML <ul> element node. An empty tree results
// in an empty list.
func Node[T any](t *bintree.Tree[T]) *html.Node {
	root := element(atom.Ul, "bintree")
	var path []*html.Node // path[d] is the <li> of the last item at depth d
	t.Descend(func(item T, side bintree.Side, depth int) bool {
		li := element(atom.Li, sideClass(side))
		li.AppendChild(&html.Node{Type: html.TextNode, Data: fmt.Sprint(item)})
		if depth == 0 {
			root.AppendChild(li)
		} else {
			parent := path[depth-1]
			list := parent.LastChild
			if list == nil || list.Type != html.ElementNode || list.DataAtom != atom.Ul {
				list = element(atom.Ul, "")
				parent.AppendChild(list)
			}
			list.AppendChild(li)
		}
		path = append(path[:depth], li)
		return true
	})
	return root
}

// Render writes a tree as nested HTML lists.
func Render[T any](t *bintree.Tree[T], w io.Writer) error {
	if w == nil {
		return ErrIllegalArguments
	}
	return html.Render(w, Node(t))
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

func sideClass(side bintree.Side) string {
	switch side {
	case bintree.Left:
		return "left"
	case bintree.Right:
		return "right"
	}
	return ""
}
