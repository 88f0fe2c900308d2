package suffixtree

import "github.com/quintinm-dev/suffix-tree/internal/assert"

// build runs Ukkonen's online construction, phase by phase, extending
// the tree so that after phase i every suffix of word[0:i+1] is a path
// from the root (explicit or implicit). See spec §4.3.
func (t *Tree) build() {
	n := len(t.store.word)
	if n == 0 {
		return
	}

	active := activePoint{node: t.store.root}
	nextExtension := 0

	for i := 0; i < n; i++ {
		// Increment E at phase start: word[i] is the symbol this
		// phase adds, and every open leaf's edge now reads through
		// the new E (spec §9, "increment at the start" discipline).
		t.end = i + 1

		var prevInternal *node
		firstOfPhase := nextExtension
		j := nextExtension
		for ; j <= i; j++ {
			var done bool
			active, prevInternal, done = t.extend(active, prevInternal, j, i, j == firstOfPhase)
			if done {
				break
			}
		}
		nextExtension = j
	}
}

// extend ensures word[j:i+1] is present in the tree, given that the
// active point marks the end of word[j:i] in the tree (after
// repositioning via reenter, when this isn't the phase's first
// extension). It returns the active point for the next extension, the
// internal node awaiting a suffix link (if any), and whether the phase
// should stop (Rule 3, or Rule 1's equivalent "already implicit"
// termination).
func (t *Tree) extend(active activePoint, prevInternal *node, j, i int, first bool) (activePoint, *node, bool) {
	word := t.store.word
	e := t.end

	if !first {
		active = t.reenter(active, j, i)
	}
	// The first extension of a phase needs no suffix-link relocation:
	// the active point left by the previous phase's final extension
	// already marks the end of word[j:i] in the tree (spec §4.3).

	next := word[i]

	switch {
	case active.atNode() && active.node.isLeaf():
		// Rule 1: the active point already sits on an open leaf, whose
		// edge grows through E automatically. As with Rule 3, every
		// shorter suffix this phase is therefore also already present,
		// so this stops the phase too. A suffix link never targets a
		// leaf (a standard Ukkonen invariant), so a pending link from
		// the previous extension's Rule 2b split can never need to
		// resolve to a leaf here; the assertion below guards that.
		assert.Invariant(active.length == 0, "rule 1 requires active_length == 0")
		assert.Invariant(prevInternal == nil, "rule 1 fired with a pending suffix link")
		t.emitTrace(j, i, "rule1")
		return active, prevInternal, true

	case active.atNode():
		if child := findEdge(active.node, next); child == nil {
			t.store.newLeaf(active.node, i)
			t.linkPending(prevInternal, active.node)
			t.emitTrace(j, i, "rule2a")
			return activePoint{node: active.node}, nil, false
		}
		// Rule 3 at a node: next already labels an outgoing edge.
		t.linkPending(prevInternal, active.node)
		active.edge = next
		active.length++
		active = active.normalize(e)
		t.emitTrace(j, i, "rule3")
		return active, nil, true

	default:
		child := findEdge(active.node, active.edge)
		splitSym := word[child.start+active.length]
		if splitSym == next {
			// Rule 3 mid-edge: suffix already implicit.
			t.linkPending(prevInternal, active.node)
			active.length++
			active = active.normalize(e)
			t.emitTrace(j, i, "rule3")
			return active, nil, true
		}

		// Rule 2b: split the edge and hang a new leaf off the split.
		v := t.splitEdge(active.node, child, active.edge, active.length, i)
		t.linkPending(prevInternal, v)
		t.emitTrace(j, i, "rule2b")
		return activePoint{node: v}, v, false
	}
}

// emitTrace reports one extension's outcome to t.trace, if the caller
// installed one via NewWithTrace. The core engine never logs directly
// (spec §5); this is its only observability hook.
func (t *Tree) emitTrace(j, i int, rule string) {
	if t.trace == nil {
		return
	}
	t.trace(TraceEvent{Phase: i, Extension: j, Rule: rule})
}

// reenter relocates the active point to the end of word[j:i] using a
// suffix link, per spec §4.3, ahead of extension j.
func (t *Tree) reenter(active activePoint, j, i int) activePoint {
	word := t.store.word
	e := t.end

	if active.node.isRoot() {
		return skipCountWalk(word, e, t.store.root, j, i)
	}

	if active.atNode() {
		if active.node.suffixLink != nil {
			return activePoint{node: active.node.suffixLink}
		}
		// active.node is an internal node created earlier in the
		// *current* phase; its own suffix link hasn't been installed
		// yet (that happens later this same extension, via
		// linkPending). Find where it will point by walking its own
		// incoming edge from its parent's suffix link — spec §4.3's
		// carve-out for this case. When the parent is the root, the
		// edge's first symbol is dropped and the rest is walked from
		// the root.
		if active.node.parent.isRoot() {
			return skipCountWalk(word, e, t.store.root, active.node.start+1, active.node.end)
		}
		parentLink := active.node.parent.suffixLink
		assert.Invariant(parentLink != nil, "parent of linkless active node has no suffix link")
		return skipCountWalk(word, e, parentLink, active.node.start, active.node.end)
	}

	assert.Invariant(active.node.suffixLink != nil,
		"mid-edge active node with non-zero length must already have a suffix link")
	return skipCountWalkBySymbol(word, e, active.node.suffixLink, active.edge, active.length)
}

// skipCountWalkBySymbol walks gammaLen symbols starting with the edge
// keyed by gammaStart's symbol, from 'from'. Unlike skipCountWalk it
// takes the walked substring as (first-symbol, length) rather than as
// an interval into word, since the caller may be relocating a
// substring that does not occur contiguously at a single word offset
// once the active edge has already been partially consumed.
func skipCountWalkBySymbol(word []byte, e int, from *node, firstSym byte, length int) activePoint {
	if length == 0 {
		return activePoint{node: from}
	}
	child := findEdge(from, firstSym)
	assert.Invariant(child != nil, "skipCountWalkBySymbol: no edge for known substring")
	return skipCountWalk(word, e, from, child.start, child.start+length)
}

// splitEdge implements Rule 2b: insert a new internal node v on the
// edge (u -> w), reparent w under v, and hang a new leaf for word[i:]
// off v.
func (t *Tree) splitEdge(u, w *node, edgeSym byte, activeLength, i int) *node {
	splitAt := w.start + activeLength
	v := t.store.newInternal(u, w.start, splitAt)

	w.start = splitAt
	w.parent = v
	v.children[t.store.word[w.start]] = w
	delete(u.children, edgeSym)
	u.children[t.store.word[v.start]] = v

	t.store.newLeaf(v, i)
	return v
}

// linkPending assigns the suffix link of a Rule-2b-created internal
// node, deferred from the previous extension, now that the current
// extension's active node is known. Per spec §4.3, the internal node
// created at extension j always gets the internal node (or root)
// arrived at in extension j+1 as its suffix link.
func (t *Tree) linkPending(prevInternal *node, target *node) {
	if prevInternal == nil {
		return
	}
	assert.Invariant(!target.isLeaf() || target.isRoot(),
		"suffix link target must be internal or root")
	prevInternal.suffixLink = target
}
