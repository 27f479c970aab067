// Copyright 2026 The Sexp Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package snapshot

import (
	"testing"

	"github.com/sexprlang/sexp/intern"
	"github.com/sexprlang/sexp/parse"
)

func TestFingerprintIsStableAndDiscriminating(t *testing.T) {
	pool := intern.New()
	a, err := parse.Parse([]byte("(foo bar)"), pool)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	defer a.Free()
	b, err := parse.Parse([]byte("(foo bar)"), pool)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	defer b.Free()
	c, err := parse.Parse([]byte("(foo baz)"), pool)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	defer c.Free()

	fa := FingerprintTree(a)
	fb := FingerprintTree(b)
	fc := FingerprintTree(c)

	if fa != fb {
		t.Fatalf("identical trees should fingerprint equal")
	}
	if fa == fc {
		t.Fatalf("different trees should (almost certainly) fingerprint differently")
	}
}

func TestCacheGetPut(t *testing.T) {
	c, err := NewCache(2)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}

	if _, ok := c.Get(1); ok {
		t.Fatalf("expected miss on empty cache")
	}

	c.Put(1, []byte("(a)"))
	got, ok := c.Get(1)
	if !ok || string(got) != "(a)" {
		t.Fatalf("got %q, %v", got, ok)
	}
	if c.Len() != 1 {
		t.Fatalf("got len %d, want 1", c.Len())
	}
}
