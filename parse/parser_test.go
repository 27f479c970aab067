// Copyright 2026 The Sexp Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package parse

import (
	"errors"
	"testing"

	"github.com/sexprlang/sexp/intern"
	"github.com/sexprlang/sexp/tree"
)

func atomText(t *testing.T, tr *tree.Tree, idx uint32) string {
	t.Helper()
	b, ok := tr.Atom(idx)
	if !ok {
		t.Fatalf("expected atom node at %d", idx)
	}
	return string(b)
}

func TestParseSingleAtom(t *testing.T) {
	tr, err := Parse([]byte("hello"), intern.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer tr.Free()

	roots := tr.Roots()
	if len(roots) != 1 {
		t.Fatalf("got %d roots, want 1", len(roots))
	}
	if tr.Kind(roots[0]) != tree.KindAtom {
		t.Fatalf("expected an atom node")
	}
	if got := atomText(t, tr, roots[0]); got != "hello" {
		t.Fatalf("got %q, want %q", got, "hello")
	}
}

func TestParseNestedList(t *testing.T) {
	tr, err := Parse([]byte("(foo (bar baz) qux)"), intern.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer tr.Free()

	roots := tr.Roots()
	if len(roots) != 1 {
		t.Fatalf("got %d roots, want 1", len(roots))
	}
	root := roots[0]
	if tr.Kind(root) != tree.KindList {
		t.Fatalf("expected a list node")
	}

	children := []uint32{}
	for c := tr.FirstChild(root); c != tree.NullIndex; c = tr.NextSibling(c) {
		children = append(children, c)
	}
	if len(children) != 3 {
		t.Fatalf("got %d children, want 3", len(children))
	}
	if got := atomText(t, tr, children[0]); got != "foo" {
		t.Fatalf("got %q, want foo", got)
	}
	if tr.Kind(children[1]) != tree.KindList {
		t.Fatalf("expected second child to be a list")
	}
	if got := atomText(t, tr, children[2]); got != "qux" {
		t.Fatalf("got %q, want qux", got)
	}

	nested := children[1]
	nestedChildren := []uint32{}
	for c := tr.FirstChild(nested); c != tree.NullIndex; c = tr.NextSibling(c) {
		nestedChildren = append(nestedChildren, c)
	}
	if len(nestedChildren) != 2 {
		t.Fatalf("got %d nested children, want 2", len(nestedChildren))
	}
	if got := atomText(t, tr, nestedChildren[0]); got != "bar" {
		t.Fatalf("got %q, want bar", got)
	}
	if got := atomText(t, tr, nestedChildren[1]); got != "baz" {
		t.Fatalf("got %q, want baz", got)
	}
}

func TestParseMultipleTopLevelForms(t *testing.T) {
	tr, err := Parse([]byte("(a) (b) c"), intern.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer tr.Free()

	if len(tr.Roots()) != 3 {
		t.Fatalf("got %d roots, want 3", len(tr.Roots()))
	}
}

func TestParseEmptyList(t *testing.T) {
	tr, err := Parse([]byte("()"), intern.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer tr.Free()

	root := tr.Roots()[0]
	if tr.Kind(root) != tree.KindList {
		t.Fatalf("expected a list node")
	}
	if tr.FirstChild(root) != tree.NullIndex {
		t.Fatalf("expected no children")
	}
}

func TestParseEmptyInput(t *testing.T) {
	tr, err := Parse([]byte(""), intern.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer tr.Free()

	if len(tr.Roots()) != 0 {
		t.Fatalf("expected no roots for empty input")
	}
}

func TestParseUnclosedParenIsMalformed(t *testing.T) {
	_, err := Parse([]byte("(foo (bar)"), intern.New())
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("got %v, want ErrMalformedInput", err)
	}
}

func TestParseStrayClosingParenIsMalformed(t *testing.T) {
	_, err := Parse([]byte("(foo))"), intern.New())
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("got %v, want ErrMalformedInput", err)
	}
}

func TestParseDeepNestingSpillsStackToHeap(t *testing.T) {
	data := make([]byte, 0, 200)
	for i := 0; i < 64; i++ {
		data = append(data, '(')
	}
	data = append(data, 'x')
	for i := 0; i < 64; i++ {
		data = append(data, ')')
	}

	tr, err := Parse(data, intern.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer tr.Free()

	depth := 0
	idx := tr.Roots()[0]
	for tr.Kind(idx) == tree.KindList {
		depth++
		idx = tr.FirstChild(idx)
	}
	if depth != 64 {
		t.Fatalf("got depth %d, want 64", depth)
	}
}
