// Copyright 2026 The Sexp Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package tree

import "github.com/sexprlang/sexp/scratch"

// previousSibling walks the child list of parent looking for the
// sibling immediately before target. Returns NullIndex if target is
// the first child or not found.
func (t *Tree) previousSibling(parent, target uint32) uint32 {
	previous := t.nodes[parent].firstChild
	for previous != NullIndex && t.nodes[previous].nextSibling != target {
		previous = t.nodes[previous].nextSibling
	}
	return previous
}

// unlinkFromParent splices index out of its parent's child list. Does
// not clear index's own parent/nextSibling fields; callers patch those
// themselves if needed. No-op if index has no parent.
func (t *Tree) unlinkFromParent(index uint32) {
	parent := t.nodes[index].parent
	if parent == NullIndex {
		return
	}
	if t.nodes[parent].firstChild == index {
		t.nodes[parent].firstChild = t.nodes[index].nextSibling
		return
	}
	previous := t.previousSibling(parent, index)
	if previous != NullIndex {
		t.nodes[previous].nextSibling = t.nodes[index].nextSibling
	}
}

// Insert attaches child under parent, immediately after the sibling
// after (or as the new first child, if after is NullIndex). child is
// first detached from wherever it currently sits, so moving a node
// within the same tree is just another Insert.
//
// Silently does nothing — leaving the tree unchanged — if any
// precondition fails: parent or child out of bounds, parent not a
// list node, child == parent (which would create a self-cycle), or
// after not a direct child of parent. Moving a node to be an
// ancestor's own descendant (e.g. inserting a list under one of its
// own children) is not guarded against and produces an unreachable
// cycle; callers are responsible for not doing that.
func (t *Tree) Insert(parent, after, child uint32) {
	if !t.valid(parent) || !t.valid(child) {
		return
	}
	if t.nodes[parent].kind != KindList {
		return
	}
	if child == parent {
		return
	}
	if after != NullIndex {
		if !t.valid(after) {
			return
		}
		if t.nodes[after].parent != parent {
			return
		}
	}

	t.unlinkFromParent(child)
	t.nodes[child].parent = parent

	if after == NullIndex {
		t.nodes[child].nextSibling = t.nodes[parent].firstChild
		t.nodes[parent].firstChild = child
	} else {
		t.nodes[child].nextSibling = t.nodes[after].nextSibling
		t.nodes[after].nextSibling = child
	}
}

// collectRemovedBFS traverses the subtree rooted at root breadth-first,
// recording every visited index in work and flagging it in removed.
// Returns the number of nodes collected. removed must be zeroed by the
// caller and sized to len(t.nodes).
func (t *Tree) collectRemovedBFS(root uint32, work []uint32, removed []bool) uint32 {
	head, tail := uint32(0), uint32(0)
	work[tail] = root
	tail++
	removed[root] = true

	for head < tail {
		current := work[head]
		head++
		child := t.nodes[current].firstChild
		for child != NullIndex {
			work[tail] = child
			tail++
			removed[child] = true
			child = t.nodes[child].nextSibling
		}
	}
	return tail
}

// buildIndexRemap assigns every surviving node (removed[i] == false) a
// compacted index in original relative order, and NullIndex to every
// removed node. Reuses work as the output buffer.
func buildIndexRemap(count uint32, work []uint32, removed []bool) {
	newPosition := uint32(0)
	for i := uint32(0); i < count; i++ {
		if removed[i] {
			work[i] = NullIndex
		} else {
			work[i] = newPosition
			newPosition++
		}
	}
}

// compactNodes moves every surviving node to its position in remap and
// patches its parent/firstChild/nextSibling links through remap.
func (t *Tree) compactNodes(remap []uint32) {
	for i := uint32(0); i < uint32(len(t.nodes)); i++ {
		newIndex := remap[i]
		if newIndex == NullIndex {
			continue
		}
		n := t.nodes[i]
		if n.parent != NullIndex {
			n.parent = remap[n.parent]
		}
		if n.firstChild != NullIndex {
			n.firstChild = remap[n.firstChild]
		}
		if n.nextSibling != NullIndex {
			n.nextSibling = remap[n.nextSibling]
		}
		t.nodes[newIndex] = n
	}
}

// Remove detaches the subtree rooted at index from the tree and
// compacts the node array, invalidating every index into the tree
// except those belonging to nodes that survive the removal (and even
// those are renumbered — callers must not hold on to indices across a
// Remove). Does nothing if index is out of bounds.
//
// This is the compaction variant, not swap-with-last: surviving nodes
// keep their relative order, which is what lets Roots and Serialize
// rely on array order for document order.
func (t *Tree) Remove(index uint32) {
	if !t.valid(index) {
		return
	}

	t.unlinkFromParent(index)

	count := uint32(len(t.nodes))
	arena := scratch.New(int(count) * 8)
	defer arena.Close()
	work := scratch.AllocSliceOf[uint32](arena, int(count))
	removed := scratch.AllocSliceOf[bool](arena, int(count))

	removedCount := t.collectRemovedBFS(index, work, removed)

	if removedCount == count {
		t.nodes = t.nodes[:0]
		t.count = 0
		return
	}

	buildIndexRemap(count, work, removed)
	t.compactNodes(work)

	t.count -= removedCount
	t.nodes = t.nodes[:t.count]
}
