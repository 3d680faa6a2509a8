package bintree

import (
	"fmt"
	"io"
)

type nodeids[T any] struct {
	idTable map[*node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(n *node[T]) int {
	return ids.idTable[n]
}

func (ids *nodeids[T]) alloc(n *node[T]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the structure of a tree in Graphviz DOT format
// (for debugging purposes). Missing children of inner nodes are drawn as
// small empty circles, so left and right links stay distinguishable.
func Tree2Dot[T any](t *Tree[T], w io.Writer) error {
	if _, err := io.WriteString(w, "strict digraph {\n"); err != nil {
		return err
	}
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[T]()
	nodelist, edgelist := "", ""
	nilid := 10000
	var each func(n *node[T])
	each = func(n *node[T]) {
		ID := ids.alloc(n)
		nodelist += fmt.Sprintf("\"%d\" [label=%q %s];\n", ID, fmt.Sprint(n.item), nodeDotStyles(n.isLeaf()))
		if n.isLeaf() {
			return
		}
		for _, child := range []*node[T]{n.left, n.right} {
			if child == nil {
				nilid++
				nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode())
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
				continue
			}
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			each(child)
		}
	}
	if !t.IsEmpty() {
		each(t.root)
	}
	tracer().Debugf("bintree: DOT output for %d nodes", ids.max-1)
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	_, err := io.WriteString(w, "}\n")
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(isleaf bool) string {
	s := "style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
