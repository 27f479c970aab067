// Copyright 2026 The Sexp Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package tree implements the in-memory S-expression tree: a flat,
// index-linked node array using left-child/right-sibling encoding
// instead of pointers, and the structural mutation operations
// (Insert, Remove, Clone, Extract) that rewrite it in place.
//
// Every Tree owns a share of an intern.Pool for its atoms' text and
// must be released with Free once the tree is no longer needed.
package tree

import "github.com/sexprlang/sexp/intern"

// initialCapacity is the node array's capacity on first allocation.
const initialCapacity = 64

// Tree is an S-expression document: a set of root nodes (those with
// Parent == NullIndex) plus every node reachable from them. The zero
// value is not usable; construct one with New.
//
// There is no separate bookkeeping for which nodes are roots: Roots
// scans the node array for parent == NullIndex. Remove's compaction
// preserves the relative order of surviving nodes, so this scan always
// yields roots in document order without needing to be kept in sync by
// every mutation.
type Tree struct {
	nodes []node
	count uint32

	pool *intern.Pool
}

// New allocates an empty Tree that retains a share of pool. Callers
// that don't need a dedicated pool should pass intern.Global().
func New(pool *intern.Pool) *Tree {
	pool.Retain()
	return &Tree{
		nodes: make([]node, 0, initialCapacity),
		pool:  pool,
	}
}

// Free releases the tree's claim on its intern pool. The Tree must not
// be used afterward.
func (t *Tree) Free() {
	if t.pool != nil {
		t.pool.Release()
		t.pool = nil
	}
	t.nodes = nil
	t.count = 0
}

// Pool returns the intern pool backing this tree's atom text.
func (t *Tree) Pool() *intern.Pool {
	return t.pool
}

// Count returns the number of live nodes in the tree.
func (t *Tree) Count() uint32 {
	return t.count
}

// Roots returns the tree's top-level node indices, in the order they
// appear in the node array. A freshly-parsed document has exactly one
// root for most inputs, but the grammar does not forbid more than one
// top-level form, and Serialize emits all of them back out in order.
func (t *Tree) Roots() []uint32 {
	var roots []uint32
	for i := uint32(0); i < uint32(len(t.nodes)); i++ {
		if t.nodes[i].parent == NullIndex {
			roots = append(roots, i)
		}
	}
	return roots
}

// valid reports whether idx names a live node in this tree.
func (t *Tree) valid(idx uint32) bool {
	return idx != NullIndex && idx < uint32(len(t.nodes))
}

// AllocateNode appends a new node of the given kind and returns its
// index. A freshly allocated node has no parent, children or
// siblings; atom text is empty for KindAtom nodes until SetAtom is
// called.
func (t *Tree) AllocateNode(kind Kind) uint32 {
	n := freeNode()
	n.kind = kind
	idx := uint32(len(t.nodes))
	t.nodes = append(t.nodes, n)
	t.count++
	return idx
}

// Kind returns the kind of the node at idx, or KindInvalid if idx is
// out of bounds or NullIndex.
func (t *Tree) Kind(idx uint32) Kind {
	if !t.valid(idx) {
		return KindInvalid
	}
	return t.nodes[idx].kind
}

// Parent returns the parent of the node at idx, or NullIndex if idx
// is a root or out of bounds.
func (t *Tree) Parent(idx uint32) uint32 {
	if !t.valid(idx) {
		return NullIndex
	}
	return t.nodes[idx].parent
}

// FirstChild returns the first child of the list node at idx, or
// NullIndex if idx has no children, is not a list, or is out of
// bounds.
func (t *Tree) FirstChild(idx uint32) uint32 {
	if !t.valid(idx) {
		return NullIndex
	}
	return t.nodes[idx].firstChild
}

// NextSibling returns the node immediately after idx in its parent's
// child chain, or NullIndex if idx is the last child (or a root with
// no following root), or out of bounds.
func (t *Tree) NextSibling(idx uint32) uint32 {
	if !t.valid(idx) {
		return NullIndex
	}
	return t.nodes[idx].nextSibling
}

// Atom returns the interned atom text of the node at idx. Returns
// (nil, false) if idx is out of bounds or does not name a KindAtom
// node.
func (t *Tree) Atom(idx uint32) ([]byte, bool) {
	if !t.valid(idx) {
		return nil, false
	}
	n := &t.nodes[idx]
	if n.kind != KindAtom {
		return nil, false
	}
	return t.pool.Lookup(n.atom)
}

// AtomID returns the interned id of the atom at idx without resolving
// it to bytes. Returns (0, false) if idx is out of bounds or does not
// name a KindAtom node.
func (t *Tree) AtomID(idx uint32) (intern.ID, bool) {
	if !t.valid(idx) {
		return 0, false
	}
	n := &t.nodes[idx]
	if n.kind != KindAtom {
		return 0, false
	}
	return n.atom, true
}

// SetAtom interns text and assigns it to the node at idx, silently
// doing nothing if idx is out of bounds or does not name a KindAtom
// node.
func (t *Tree) SetAtom(idx uint32, text []byte) {
	if !t.valid(idx) {
		return
	}
	n := &t.nodes[idx]
	if n.kind != KindAtom {
		return
	}
	n.atom = t.pool.String(text)
}

// childCount walks the child chain of idx and counts its length;
// O(children).
func (t *Tree) childCount(idx uint32) int {
	n := 0
	for c := t.nodes[idx].firstChild; c != NullIndex; c = t.nodes[c].nextSibling {
		n++
	}
	return n
}
