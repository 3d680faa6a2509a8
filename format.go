package bintree

import (
	"fmt"
	"io"
	"strings"
)

// String returns the items in ascending order, separated by single spaces.
func (t *Tree[T]) String() string {
	var sb strings.Builder
	t.ForEachItem(func(item T) bool {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, item)
		return true
	})
	return sb.String()
}

// WriteTo writes the items in ascending order, space separated and
// terminated by a single newline. An empty tree writes just the newline.
// The tree is not modified.
func (t *Tree[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.String()+"\n")
	return int64(n), err
}

// sidewaysIndent is the indentation per tree level of DisplaySideways.
const sidewaysIndent = "    "

// DisplaySideways writes the tree rotated by 90 degrees counter-clockwise:
// one item per line, right subtree above its root above the left subtree,
// indented proportional to the depth of the item.
func (t *Tree[T]) DisplaySideways(w io.Writer) error {
	var err error
	t.Walk(ReverseOrder, func(item T, depth int) bool {
		_, err = fmt.Fprintf(w, "%s%v\n", strings.Repeat(sidewaysIndent, depth+2), item)
		return err == nil
	})
	return err
}
