package suffixtree

import "github.com/quintinm-dev/suffix-tree/internal/assert"

// findEdge returns the child of n reached by the outgoing edge whose
// first symbol is sym, or nil if no such edge exists.
func findEdge(n *node, sym byte) *node {
	return n.children[sym]
}

// edgeLength returns the length of the edge entering child, using e
// as the effective end of open (leaf) edges.
func edgeLength(child *node, e int) int {
	end := child.end
	if child.isLeaf() {
		end = e
	}
	return end - child.start
}

// skipCountWalk descends from 'from' spelling word[start:end), which
// the caller guarantees already labels a path from 'from'. It consumes
// whole edges at a time (comparing only the first symbol and the edge
// length), never per-symbol, which is what keeps construction linear.
func skipCountWalk(word []byte, e int, from *node, start, end int) activePoint {
	if start == end {
		return activePoint{node: from}
	}

	cur := from
	pos := start
	for {
		child := findEdge(cur, word[pos])
		assert.Invariant(child != nil, "skipCountWalk: no edge for known substring")

		remaining := end - pos
		length := edgeLength(child, e)

		switch {
		case length < remaining:
			cur = child
			pos += length
		case length == remaining:
			return activePoint{node: child}
		default:
			return activePoint{node: cur, edge: word[pos], length: remaining}
		}
	}
}
