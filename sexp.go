// Copyright 2026 The Sexp Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package sexp is the package-root convenience API over the
// index-based core in tree, parse, intern and serialize: an
// idiomatic, error-returning Go wrapper, not a second binding layer.
package sexp

import (
	"context"

	"github.com/sexprlang/sexp/intern"
	"github.com/sexprlang/sexp/internal/telemetry"
	"github.com/sexprlang/sexp/parse"
	"github.com/sexprlang/sexp/serialize"
	"github.com/sexprlang/sexp/tree"
)

// NullIndex re-exports tree.NullIndex for callers that want to hold
// onto raw node indices returned by Handle.
const NullIndex = tree.NullIndex

// Kind re-exports tree.Kind.
type Kind = tree.Kind

const (
	KindInvalid = tree.KindInvalid
	KindAtom    = tree.KindAtom
	KindList    = tree.KindList
)

// Document wraps a *tree.Tree parsed from (or built up from) source,
// owning its own share of an intern pool.
type Document struct {
	tree *tree.Tree
}

// Parse parses data against the process-wide intern pool and returns
// the resulting Document. The returned error is parse.ErrMalformedInput
// for syntactically invalid input; there is no other failure mode.
func Parse(data []byte) (*Document, error) {
	return ParseWithPool(data, intern.Global())
}

// ParseWithPool parses data against an explicit pool, useful for tests
// or callers that want isolation from the process-wide singleton.
func ParseWithPool(data []byte, pool *intern.Pool) (*Document, error) {
	_, span := telemetry.StartSpan(context.Background(), "sexp.Parse")
	defer span.End()

	m := telemetry.Default()
	m.ParsesTotal.Inc()

	t, err := parse.Parse(data, pool)
	if err != nil {
		m.ParseErrorsTotal.Inc()
		return nil, err
	}
	m.NodesAllocated.Add(float64(t.Count()))
	m.InternedStrings.Set(float64(pool.Len()))
	return &Document{tree: t}, nil
}

// Free releases the document's claim on its intern pool. The Document
// must not be used afterward.
func (d *Document) Free() {
	d.tree.Free()
}

// Root returns a Handle to the document's first top-level form, or the
// zero Handle (Valid() == false) if the document is empty.
func (d *Document) Root() Handle {
	roots := d.tree.Roots()
	if len(roots) == 0 {
		return Handle{}
	}
	return Handle{tree: d.tree, index: roots[0]}
}

// Roots returns handles to every top-level form, in document order.
func (d *Document) Roots() []Handle {
	roots := d.tree.Roots()
	out := make([]Handle, len(roots))
	for i, idx := range roots {
		out[i] = Handle{tree: d.tree, index: idx}
	}
	return out
}

// String serializes the entire document back to S-expression text.
func (d *Document) String() string {
	_, span := telemetry.StartSpan(context.Background(), "sexp.SerializeTree")
	defer span.End()

	out := serialize.Tree(d.tree)
	telemetry.Default().SerializedBytes.Add(float64(len(out)))
	return string(out)
}

// NewAtom allocates a new, detached atom node holding text. Attach it
// into the document with Handle.Append, Handle.Prepend or
// Handle.InsertAfter.
func (d *Document) NewAtom(text []byte) Handle {
	idx := d.tree.AllocateNode(tree.KindAtom)
	d.tree.SetAtom(idx, text)
	telemetry.Default().NodesAllocated.Inc()
	return Handle{tree: d.tree, index: idx}
}

// NewList allocates a new, detached, childless list node. Attach it
// into the document with Handle.Append, Handle.Prepend or
// Handle.InsertAfter, then populate it the same way.
func (d *Document) NewList() Handle {
	idx := d.tree.AllocateNode(tree.KindList)
	telemetry.Default().NodesAllocated.Inc()
	return Handle{tree: d.tree, index: idx}
}

// Tree exposes the underlying core tree for callers that need the
// lower-level index API directly (package tree, parse, serialize).
func (d *Document) Tree() *tree.Tree {
	return d.tree
}
