// Copyright 2026 The Sexp Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package serialize

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sexprlang/sexp/intern"
	"github.com/sexprlang/sexp/parse"
	"github.com/sexprlang/sexp/tree"
)

func roundTrip(t *testing.T, src string) string {
	t.Helper()
	tr, err := parse.Parse([]byte(src), intern.New())
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	defer tr.Free()
	return string(Tree(tr))
}

func TestRoundTripSingleAtom(t *testing.T) {
	if got := roundTrip(t, "hello"); got != "hello" {
		t.Fatalf("got %q, want %q", got, "hello")
	}
}

func TestRoundTripNestedList(t *testing.T) {
	src := "(foo (bar baz) qux)"
	if got := roundTrip(t, src); got != src {
		t.Fatalf("got %q, want %q", got, src)
	}
}

func TestRoundTripEmptyList(t *testing.T) {
	if got := roundTrip(t, "()"); got != "()" {
		t.Fatalf("got %q, want %q", got, "()")
	}
}

func TestRoundTripMultipleTopLevelForms(t *testing.T) {
	src := "(a) (b) c"
	if got := roundTrip(t, src); got != src {
		t.Fatalf("got %q, want %q", got, src)
	}
}

func TestRoundTripNormalizesWhitespace(t *testing.T) {
	got := roundTrip(t, "(foo\n\t(bar   baz)\r\nqux)")
	want := "(foo (bar baz) qux)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSerializeEmptyTreeReturnsNil(t *testing.T) {
	tr, err := parse.Parse([]byte(""), intern.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer tr.Free()

	if out := Tree(tr); out != nil {
		t.Fatalf("got %q, want nil", out)
	}
}

func TestSubtreeSerializationsOfEachTopLevelForm(t *testing.T) {
	tr, err := parse.Parse([]byte("(a 1) (b 2) (c 3)"), intern.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer tr.Free()

	var got []string
	for _, root := range tr.Roots() {
		got = append(got, string(Subtree(tr, root)))
	}

	want := []string{"(a 1)", "(b 2)", "(c 3)"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("subtree serializations mismatch (-want +got):\n%s", diff)
	}
}

func TestSubtreeSerializesOnlyThatNode(t *testing.T) {
	tr, err := parse.Parse([]byte("(foo (bar baz) qux)"), intern.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer tr.Free()

	root := tr.Roots()[0]
	var nested uint32
	i := 0
	for c := tr.FirstChild(root); c != tree.NullIndex; c = tr.NextSibling(c) {
		if i == 1 {
			nested = c
			break
		}
		i++
	}

	got := string(Subtree(tr, nested))
	if got != "(bar baz)" {
		t.Fatalf("got %q, want %q", got, "(bar baz)")
	}
}
