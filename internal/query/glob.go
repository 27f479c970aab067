// Copyright 2026 The Sexp Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package query layers search and completion helpers on top of the
// core Handle navigation API: glob matching over child atoms,
// fuzzy-suggestion on a keyed lookup miss, and prefix completion for
// cmd/sexpctl's REPL.
package query

import (
	"github.com/gobwas/glob"
	"github.com/sexprlang/sexp"
)

// FindByGlob returns every direct child of parent whose first atom
// matches pattern (shell-style: *, ?, [...], as implemented by
// gobwas/glob). Non-list children, and list children whose first
// child isn't an atom, are never matched.
func FindByGlob(parent sexp.Handle, pattern string) ([]sexp.Handle, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, err
	}

	var matches []sexp.Handle
	for _, child := range parent.Children() {
		if child.Kind() != sexp.KindList {
			continue
		}
		head := child.FirstChild()
		if !head.Valid() || head.Kind() != sexp.KindAtom {
			continue
		}
		text, ok := head.Atom()
		if ok && g.Match(string(text)) {
			matches = append(matches, child)
		}
	}
	return matches, nil
}
