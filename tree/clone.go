// Copyright 2026 The Sexp Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package tree

import "github.com/sexprlang/sexp/scratch"

// bfsSubtreeRemap traverses the subtree rooted at root breadth-first,
// storing original indices in BFS order in queue and mapping each
// original index to its BFS-order position in remap. Returns the
// subtree size. remap must be sized to len(source.nodes) and is fully
// overwritten (every unvisited slot becomes NullIndex).
func bfsSubtreeRemap(source *Tree, root uint32, queue, remap []uint32) uint32 {
	for i := range remap {
		remap[i] = NullIndex
	}

	head, tail := uint32(0), uint32(0)
	remap[root] = tail
	queue[tail] = root
	tail++

	for head < tail {
		current := queue[head]
		head++
		child := source.nodes[current].firstChild
		for child != NullIndex {
			remap[child] = tail
			queue[tail] = child
			tail++
			child = source.nodes[child].nextSibling
		}
	}
	return tail
}

// copyNodesRemapped copies count nodes from source (indexed via queue)
// into destination, rewriting every parent/firstChild/nextSibling link
// through remap. The clone root (destination index 0) has its parent
// and nextSibling cleared, since it becomes a top-level node in the
// new tree.
func copyNodesRemapped(source *Tree, destination []node, queue, remap []uint32, count uint32) {
	for i := uint32(0); i < count; i++ {
		n := source.nodes[queue[i]]
		if n.parent != NullIndex {
			n.parent = remap[n.parent]
		}
		if n.firstChild != NullIndex {
			n.firstChild = remap[n.firstChild]
		}
		if n.nextSibling != NullIndex {
			n.nextSibling = remap[n.nextSibling]
		}
		destination[i] = n
	}
	destination[0].parent = NullIndex
	destination[0].nextSibling = NullIndex
}

// Clone copies the subtree rooted at index into a brand new Tree that
// retains its own share of the same intern pool as source, leaving
// source untouched. Returns nil if index is out of bounds.
func (t *Tree) Clone(index uint32) *Tree {
	if !t.valid(index) {
		return nil
	}

	count := uint32(len(t.nodes))
	arena := scratch.New(int(count) * 8)
	defer arena.Close()
	queue := scratch.AllocSliceOf[uint32](arena, int(count))
	remap := scratch.AllocSliceOf[uint32](arena, int(count))

	size := bfsSubtreeRemap(t, index, queue, remap)
	nodes := make([]node, size)
	copyNodesRemapped(t, nodes, queue, remap, size)

	t.pool.Retain()
	return &Tree{
		nodes: nodes,
		count: size,
		pool:  t.pool,
	}
}

// Extract clones the subtree rooted at index into a new Tree, then
// removes it from source. Returns nil, leaving source unmodified, if
// index is out of bounds.
func (t *Tree) Extract(index uint32) *Tree {
	clone := t.Clone(index)
	if clone == nil {
		return nil
	}
	t.Remove(index)
	return clone
}
