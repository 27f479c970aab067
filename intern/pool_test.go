// Copyright 2026 The Sexp Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package intern

import "testing"

func TestStringDeduplicates(t *testing.T) {
	p := New()
	p.Retain()
	defer p.Release()

	a := p.String([]byte("hello"))
	b := p.String([]byte("hello"))
	if a != b {
		t.Fatalf("expected equal ids for equal content, got %d and %d", a, b)
	}
	if a == 0 {
		t.Fatalf("expected non-zero id")
	}
}

func TestStringDistinctContent(t *testing.T) {
	p := New()
	p.Retain()
	defer p.Release()

	a := p.String([]byte("foo"))
	b := p.String([]byte("bar"))
	if a == b {
		t.Fatalf("expected distinct ids for distinct content")
	}
}

func TestLookupRoundTrips(t *testing.T) {
	p := New()
	p.Retain()
	defer p.Release()

	id := p.String([]byte("round-trip"))
	data, ok := p.Lookup(id)
	if !ok {
		t.Fatalf("expected lookup to succeed")
	}
	if string(data) != "round-trip" {
		t.Fatalf("got %q, want %q", data, "round-trip")
	}
}

func TestLookupUnknownID(t *testing.T) {
	p := New()
	p.Retain()
	defer p.Release()

	if _, ok := p.Lookup(0); ok {
		t.Fatalf("expected lookup of id 0 to fail")
	}
	if _, ok := p.Lookup(9999); ok {
		t.Fatalf("expected lookup of unknown id to fail")
	}
}

func TestTableGrowsBeyondLoadFactor(t *testing.T) {
	p := New()
	p.Retain()
	defer p.Release()

	seen := make(map[ID]bool)
	for i := 0; i < 500; i++ {
		s := make([]byte, 4)
		s[0] = byte(i)
		s[1] = byte(i >> 8)
		s[2] = byte(i >> 16)
		s[3] = byte(i >> 24)
		id := p.String(s)
		if seen[id] {
			t.Fatalf("id %d reused for distinct content at i=%d", id, i)
		}
		seen[id] = true
	}
	if p.Len() != 500 {
		t.Fatalf("got %d distinct strings, want 500", p.Len())
	}
}

func TestRetainReleaseResetsPool(t *testing.T) {
	p := New()
	p.Retain()
	id := p.String([]byte("will be gone"))
	p.Release()

	// Pool re-arms itself once refs hit zero; the old id is no longer valid.
	if _, ok := p.Lookup(id); ok {
		t.Fatalf("expected lookup to fail after pool reset")
	}

	p.Retain()
	defer p.Release()
	newID := p.String([]byte("will be gone"))
	if newID != 1 {
		t.Fatalf("expected ids to restart from 1 after reset, got %d", newID)
	}
}

func TestGlobalIsSingleton(t *testing.T) {
	if Global() != Global() {
		t.Fatalf("expected Global() to return the same pool instance")
	}
}
