package suffixtree

// activePoint describes a position reached by walking the tree: a
// node, and — when length > 0 — an offset into one of its outgoing
// edges. The zero value has a nil node; construction starts from
// activePoint{node: root}, the root with length 0.
//
// Invariant: when length > 0, edge is the first-symbol key of an
// outgoing edge of node, and length < edgeLength(that child, E) (an
// active point sitting exactly on a child is always normalized to
// that child, never left as length == edge length).
type activePoint struct {
	node   *node
	edge   byte
	length int
}

func (a activePoint) atNode() bool {
	return a.length == 0
}

// normalize restores the invariant length < edgeLength after Rule 3's
// active_length += 1 may have landed the active point exactly on a
// child (the increment is always by one, so at most a single edge is
// fully consumed).
func (a activePoint) normalize(e int) activePoint {
	if a.atNode() {
		return a
	}
	child := findEdge(a.node, a.edge)
	if a.length == edgeLength(child, e) {
		return activePoint{node: child}
	}
	return a
}
