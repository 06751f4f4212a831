package tree

import (
	"fmt"
	"strings"
)

// Dump renders the tree bounded by n as indented text, one node per line,
// with payloads formatted by fmt.Sprint. Intended for tests and debug
// output.
//
//	r
//	├── a
//	│   ├── a1
//	│   └── a2
//	└── b
func (n *Node[V]) Dump() string {
	var b strings.Builder
	fmt.Fprintln(&b, fmt.Sprint(n.payload))
	n.dumpChildren(&b, "")
	return b.String()
}

func (n *Node[V]) dumpChildren(b *strings.Builder, prefix string) {
	for i, c := range n.children {
		branch, extend := "├── ", "│   "
		if i == len(n.children)-1 {
			branch, extend = "└── ", "    "
		}
		fmt.Fprintf(b, "%s%s%v\n", prefix, branch, c.payload)
		c.dumpChildren(b, prefix+extend)
	}
}
