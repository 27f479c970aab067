// Copyright 2026 The Sexp Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package sexp

import (
	"context"

	"github.com/sexprlang/sexp/internal/telemetry"
	"github.com/sexprlang/sexp/serialize"
	"github.com/sexprlang/sexp/tree"
)

// Handle is a navigable reference to one node of a Document. The zero
// Handle is invalid (Valid() returns false); every accessor on an
// invalid Handle, or on an out-of-range request, returns the zero
// Handle or its type's zero value rather than panicking — the same
// well-defined-failure discipline as the underlying index API.
type Handle struct {
	tree  *tree.Tree
	index uint32
}

// Valid reports whether h refers to a node that still exists.
func (h Handle) Valid() bool {
	return h.tree != nil && h.index != tree.NullIndex && h.index < uint32(h.tree.Count())
}

// Kind returns the node's kind, or KindInvalid if h is invalid.
func (h Handle) Kind() Kind {
	if !h.Valid() {
		return KindInvalid
	}
	return h.tree.Kind(h.index)
}

// Atom returns the node's interned text and true, or (nil, false) if h
// is invalid or not an atom.
func (h Handle) Atom() ([]byte, bool) {
	if !h.Valid() {
		return nil, false
	}
	return h.tree.Atom(h.index)
}

// SetAtom interns text and assigns it to h's node. No-op if h is
// invalid or not an atom.
func (h Handle) SetAtom(text []byte) {
	if !h.Valid() {
		return
	}
	h.tree.SetAtom(h.index, text)
}

// Parent returns a Handle to h's parent, or the zero Handle if h is
// invalid or a root.
func (h Handle) Parent() Handle {
	if !h.Valid() {
		return Handle{}
	}
	p := h.tree.Parent(h.index)
	if p == tree.NullIndex {
		return Handle{}
	}
	return Handle{tree: h.tree, index: p}
}

// FirstChild returns a Handle to h's first child, or the zero Handle
// if h is invalid, an atom, or has no children.
func (h Handle) FirstChild() Handle {
	if !h.Valid() {
		return Handle{}
	}
	c := h.tree.FirstChild(h.index)
	if c == tree.NullIndex {
		return Handle{}
	}
	return Handle{tree: h.tree, index: c}
}

// NextSibling returns a Handle to the node immediately after h in its
// parent's child chain, or the zero Handle if there is none.
func (h Handle) NextSibling() Handle {
	if !h.Valid() {
		return Handle{}
	}
	s := h.tree.NextSibling(h.index)
	if s == tree.NullIndex {
		return Handle{}
	}
	return Handle{tree: h.tree, index: s}
}

// Children returns handles to every direct child of h, in order. Nil
// if h is invalid, an atom, or childless.
func (h Handle) Children() []Handle {
	if !h.Valid() {
		return nil
	}
	var out []Handle
	for c := h.FirstChild(); c.Valid(); c = c.NextSibling() {
		out = append(out, c)
	}
	return out
}

// Child returns the k-th direct child of h (0-based). A negative k
// counts from the end (-1 is the last child). Returns the zero Handle
// if h is invalid or k is out of range.
func (h Handle) Child(k int) Handle {
	children := h.Children()
	if k < 0 {
		k += len(children)
	}
	if k < 0 || k >= len(children) {
		return Handle{}
	}
	return children[k]
}

// ChildNamed scans h's direct children for a list whose first child is
// an atom equal to key, and returns it. Returns the zero Handle if no
// match is found or h is invalid.
func (h Handle) ChildNamed(key []byte) Handle {
	for _, c := range h.Children() {
		if c.Kind() != KindList {
			continue
		}
		head := c.FirstChild()
		if !head.Valid() || head.Kind() != KindAtom {
			continue
		}
		text, ok := head.Atom()
		if ok && string(text) == string(key) {
			return c
		}
	}
	return Handle{}
}

// Append inserts child as h's new last direct child. No-op under the
// same preconditions as tree.Tree.Insert (h must be a list, child must
// not be h itself, and so on).
func (h Handle) Append(child Handle) {
	if !h.Valid() || !child.Valid() || h.tree != child.tree {
		return
	}
	_, span := telemetry.StartSpan(context.Background(), "sexp.Insert")
	defer span.End()

	last := tree.NullIndex
	for c := h.tree.FirstChild(h.index); c != tree.NullIndex; c = h.tree.NextSibling(c) {
		last = c
	}
	h.tree.Insert(h.index, last, child.index)
}

// Prepend inserts child as h's new first direct child.
func (h Handle) Prepend(child Handle) {
	if !h.Valid() || !child.Valid() || h.tree != child.tree {
		return
	}
	_, span := telemetry.StartSpan(context.Background(), "sexp.Insert")
	defer span.End()

	h.tree.Insert(h.index, tree.NullIndex, child.index)
}

// InsertAfter inserts sibling as h's new next sibling, under h's
// parent. No-op if h has no parent (is a root) or is invalid.
func (h Handle) InsertAfter(sibling Handle) {
	if !h.Valid() || !sibling.Valid() || h.tree != sibling.tree {
		return
	}
	parent := h.tree.Parent(h.index)
	if parent == tree.NullIndex {
		return
	}
	_, span := telemetry.StartSpan(context.Background(), "sexp.Insert")
	defer span.End()

	h.tree.Insert(parent, h.index, sibling.index)
}

// Remove detaches h's subtree from the document and compacts the
// backing node array. Every Handle into the same Document, including
// h, is invalid afterward; re-derive any Handle you still need from
// Document.Root()/Roots() after calling Remove.
func (h Handle) Remove() {
	if !h.Valid() {
		return
	}
	_, span := telemetry.StartSpan(context.Background(), "sexp.Remove")
	defer span.End()

	h.tree.Remove(h.index)
}

// Clone copies h's subtree into a brand new Document sharing h's
// intern pool. Returns nil if h is invalid.
func (h Handle) Clone() *Document {
	if !h.Valid() {
		return nil
	}
	cloned := h.tree.Clone(h.index)
	if cloned == nil {
		return nil
	}
	return &Document{tree: cloned}
}

// Extract clones h's subtree into a new Document, then removes it
// from h's document. Every Handle into h's original document,
// including h, is invalid afterward. Returns nil, leaving the source
// untouched, if h is invalid.
func (h Handle) Extract() *Document {
	if !h.Valid() {
		return nil
	}
	extracted := h.tree.Extract(h.index)
	if extracted == nil {
		return nil
	}
	return &Document{tree: extracted}
}

// String serializes just h's subtree back to S-expression text.
func (h Handle) String() string {
	if !h.Valid() {
		return ""
	}
	_, span := telemetry.StartSpan(context.Background(), "sexp.SerializeSubtree")
	defer span.End()

	out := serialize.Subtree(h.tree, h.index)
	telemetry.Default().SerializedBytes.Add(float64(len(out)))
	return string(out)
}
