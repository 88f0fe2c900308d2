// Package viz renders a built suffix tree for human consumption: a
// Graphviz DOT graph, and a colorized terminal dump. Neither is part
// of the tree's construction or query path; both are read-only views
// over (*suffixtree.Tree).Traverse.
package viz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quintinm-dev/suffix-tree"
)

// DOT renders views as a Graphviz directed graph, edges labeled with
// the substring they spell and leaves drawn as double circles.
func DOT(views []suffixtree.NodeView) string {
	var b strings.Builder
	b.WriteString("digraph suffixtree {\n")
	b.WriteString("\trankdir=LR;\n")
	b.WriteString("\tnode [shape=circle];\n")

	for _, v := range views {
		shape := "circle"
		if v.IsLeaf {
			shape = "doublecircle"
		}
		fmt.Fprintf(&b, "\tn%d [shape=%s,label=%q];\n", v.ID, shape, strconv.Itoa(v.ID))

		if !v.IsRoot {
			fmt.Fprintf(&b, "\tn%d -> n%d [label=%q];\n", v.ParentID, v.ID, v.Label)
		}
		if !v.IsRoot && !v.IsLeaf && v.SuffixLink != -1 {
			fmt.Fprintf(&b, "\tn%d -> n%d [style=dashed,color=gray,constraint=false];\n", v.ID, v.SuffixLink)
		}
	}

	b.WriteString("}\n")
	return b.String()
}
