// Copyright 2026 The Sexp Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package sexp

import (
	"testing"

	"github.com/sexprlang/sexp/intern"
)

func TestZeroHandleIsInvalid(t *testing.T) {
	var h Handle
	if h.Valid() {
		t.Fatalf("zero Handle must not be valid")
	}
	if got := h.Kind(); got != KindInvalid {
		t.Fatalf("Kind() on zero Handle = %v, want KindInvalid", got)
	}
}

func TestParseAndStringRoundTrips(t *testing.T) {
	doc, err := ParseWithPool([]byte("(define (square x) (* x x))"), intern.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer doc.Free()

	if got := doc.String(); got != "(define (square x) (* x x))" {
		t.Fatalf("got %q", got)
	}
}

func TestHandleNavigation(t *testing.T) {
	doc, err := ParseWithPool([]byte("(define (square x) (* x x))"), intern.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer doc.Free()

	root := doc.Root()
	if !root.Valid() || root.Kind() != KindList {
		t.Fatalf("expected a valid list root")
	}

	head := root.Child(0)
	text, ok := head.Atom()
	if !ok || string(text) != "define" {
		t.Fatalf("got %q, ok=%v", text, ok)
	}

	last := root.Child(-1)
	if last.String() != "(* x x)" {
		t.Fatalf("got %q", last.String())
	}
}

func TestChildNamedFindsLabeledForm(t *testing.T) {
	doc, err := ParseWithPool([]byte("(config (port 8080) (host localhost))"), intern.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer doc.Free()

	port := doc.Root().ChildNamed([]byte("port"))
	if !port.Valid() {
		t.Fatalf("expected to find the port form")
	}
	if got := port.String(); got != "(port 8080)" {
		t.Fatalf("got %q", got)
	}

	missing := doc.Root().ChildNamed([]byte("timeout"))
	if missing.Valid() {
		t.Fatalf("expected no match for timeout")
	}
}

func TestAppendPrependInsertAfter(t *testing.T) {
	doc, err := ParseWithPool([]byte("(list a b)"), intern.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer doc.Free()

	root := doc.Root()
	z := doc.NewAtom([]byte("z"))
	root.Append(z)
	if got := doc.String(); got != "(list a b z)" {
		t.Fatalf("got %q", got)
	}

	w := doc.NewAtom([]byte("w"))
	root.Prepend(w)
	if got := doc.String(); got != "(w list a b z)" {
		t.Fatalf("got %q", got)
	}

	m := doc.NewAtom([]byte("m"))
	root.Child(2).InsertAfter(m)
	if got := doc.String(); got != "(w list a m b z)" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractProducesIndependentDocument(t *testing.T) {
	doc, err := ParseWithPool([]byte("(outer (inner x y))"), intern.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer doc.Free()

	inner := doc.Root().Child(1)
	extracted := inner.Extract()
	defer extracted.Free()

	if got := extracted.Root().String(); got != "(inner x y)" {
		t.Fatalf("got %q", got)
	}
	if got := doc.String(); got != "(outer)" {
		t.Fatalf("got %q", got)
	}
}
