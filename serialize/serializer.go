// Copyright 2026 The Sexp Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package serialize renders a tree.Tree back to S-expression text
// using a two-pass iterative algorithm: a measure pass computes the
// exact output length with an explicit DFS stack, then a write pass
// re-walks the same structure into a single preallocated buffer. Both
// passes share one scratch.Arena, reset between passes so the same
// backing memory serves both.
package serialize

import (
	"github.com/sexprlang/sexp/scratch"
	"github.com/sexprlang/sexp/tree"
)

// stackFactor sizes the write pass's frame stack relative to node
// count: every list node contributes one "needs close" sentinel frame
// in addition to its own frame, so two frames per node is always
// enough.
const stackFactor = 2

// frame represents one node queued for emission during the write
// pass, with formatting flags: needsClose emits ')' instead of
// visiting a node, and needsSpace emits a leading space first.
type frame struct {
	index      uint32
	needsClose bool
	needsSpace bool
}

// measureNode computes the exact number of bytes needed to serialize
// the subtree rooted at root, via an iterative post-order-free DFS:
// each atom contributes its own byte length, each list contributes 2
// (for the parens) plus one space per gap between its children.
// Returns 0 if root is out of bounds.
func measureNode(t *tree.Tree, root uint32, count uint32, arena *scratch.Arena) int {
	if root >= count {
		return 0
	}

	work := scratch.AllocSliceOf[uint32](arena, int(count))
	total := 0
	top := 0
	work[top] = root
	top++

	for top > 0 {
		top--
		index := work[top]

		if t.Kind(index) == tree.KindAtom {
			atom, _ := t.Atom(index)
			total += len(atom)
			continue
		}

		total += 2
		childCount := 0
		for c := t.FirstChild(index); c != tree.NullIndex; c = t.NextSibling(c) {
			work[top] = c
			top++
			childCount++
		}
		if childCount > 0 {
			total += childCount - 1
		}
	}

	return total
}

// pushListChildren pushes a closing-paren sentinel frame followed by
// every child of the list node at index, in reverse order, so they
// come off the stack left to right. children is scratch space reused
// across calls; it must have capacity for at least count entries.
func pushListChildren(t *tree.Tree, index uint32, stack []frame, top int, children []uint32) int {
	stack[top] = frame{needsClose: true}
	top++

	childCount := 0
	for c := t.FirstChild(index); c != tree.NullIndex; c = t.NextSibling(c) {
		children[childCount] = c
		childCount++
	}

	for i := childCount; i > 0; i-- {
		stack[top] = frame{index: children[i-1], needsSpace: i-1 > 0}
		top++
	}

	return top
}

// writeNode serializes the subtree rooted at root into dst starting
// at *position, advancing position as bytes are written. dst must
// already be sized to hold exactly measureNode's result.
func writeNode(t *tree.Tree, root uint32, count uint32, dst []byte, position *int, arena *scratch.Arena) {
	if root >= count {
		return
	}

	stack := scratch.AllocSliceOf[frame](arena, stackFactor*int(count))
	children := scratch.AllocSliceOf[uint32](arena, int(count))

	top := 0
	stack[top] = frame{index: root}
	top++

	for top > 0 {
		top--
		f := stack[top]

		if f.needsClose {
			dst[*position] = ')'
			*position++
			continue
		}

		if f.needsSpace {
			dst[*position] = ' '
			*position++
		}

		if t.Kind(f.index) == tree.KindAtom {
			atom, ok := t.Atom(f.index)
			if ok {
				*position += copy(dst[*position:], atom)
			}
		} else {
			dst[*position] = '('
			*position++
			top = pushListChildren(t, f.index, stack, top, children)
		}
	}
}

// measureTopLevel sums measureNode across every root in roots,
// including one separating space between consecutive roots.
func measureTopLevel(t *tree.Tree, roots []uint32, count uint32, arena *scratch.Arena) int {
	total := 0
	for i, root := range roots {
		if i > 0 {
			total++
		}
		total += measureNode(t, root, count, arena)
	}
	return total
}

// writeTopLevel writes every root in roots into dst, separated by
// spaces, returning the number of bytes written.
func writeTopLevel(t *tree.Tree, roots []uint32, count uint32, dst []byte, arena *scratch.Arena) int {
	position := 0
	for i, root := range roots {
		if i > 0 {
			dst[position] = ' '
			position++
		}
		writeNode(t, root, count, dst, &position, arena)
	}
	return position
}

// Tree renders every top-level form of t back to S-expression text, in
// document order, separated by single spaces. Returns nil for an
// empty tree.
func Tree(t *tree.Tree) []byte {
	count := t.Count()
	if count == 0 {
		return nil
	}

	roots := t.Roots()
	if len(roots) == 0 {
		return nil
	}

	arena := scratch.New(4 * int(count) * 4)

	needed := measureTopLevel(t, roots, count, arena)
	if needed == 0 {
		return nil
	}

	buf := make([]byte, needed)
	arena.Reset()
	n := writeTopLevel(t, roots, count, buf, arena)
	return buf[:n]
}

// Subtree renders just the subtree rooted at index back to
// S-expression text. Returns nil if index is out of bounds or the
// tree is empty.
func Subtree(t *tree.Tree, index uint32) []byte {
	count := t.Count()
	if count == 0 || index >= count {
		return nil
	}

	arena := scratch.New(4 * int(count) * 4)

	needed := measureNode(t, index, count, arena)
	if needed == 0 {
		return nil
	}

	buf := make([]byte, needed)
	arena.Reset()
	position := 0
	writeNode(t, index, count, buf, &position, arena)
	return buf[:position]
}
