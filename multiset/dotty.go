package multiset

import (
	"fmt"
	"io"
	"strings"
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
// (for debugging purposes). Nodes are labeled with their key and, for
// duplicates, the number of occurrences. Missing children of inner nodes are
// drawn as small empty circles.
func Tree2Dot[T any](tree *Tree[T], w io.Writer) error {
	var nodelist, edgelist strings.Builder
	ids := newtable[T]()
	nilid := 0
	if !tree.IsEmpty() {
		tree.walkPre(func(n *node[T]) bool {
			ID := ids.alloc(n)
			label := fmt.Sprintf("%v", n.key)
			if n.count > 1 {
				label = fmt.Sprintf("%s ×%d", label, n.count)
			}
			fmt.Fprintf(&nodelist, "\"%d\" [label=%q %s];\n", ID, label, nodeDotStyles(n))
			if n.left == nil && n.right == nil {
				return true
			}
			for _, child := range []*node[T]{n.left, n.right} {
				if child == nil {
					nilid--
					fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode())
					fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, nilid)
				} else {
					fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
				}
			}
			return true
		})
	}
	var err error
	write := func(s string) {
		if err == nil {
			_, err = io.WriteString(w, s)
		}
	}
	write("strict digraph {\n")
	write("\tnode [fontname=Arial,fontsize=12];\n")
	write(nodelist.String())
	write(edgelist.String())
	write("}\n")
	if err != nil {
		tracer().Errorf("multiset DOT: %s", err.Error())
	}
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles[T any](n *node[T]) string {
	s := ",style=filled,color=black,shape=circle"
	if n.count > 1 {
		s += ",fillcolor=\"#ffcc88\""
	} else {
		s += ",fillcolor=\"#a3d7e4\""
	}
	return s
}
