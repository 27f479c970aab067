// Copyright 2026 The Sexp Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package query

import (
	"github.com/agnivade/levenshtein"
	"github.com/sexprlang/sexp"
)

// SuggestKey is meant to be called after Handle.ChildNamed misses: it
// scans parent's direct keyed-form children and returns the key whose
// edit distance to miss is smallest, for an error message like "did
// you mean 'timeout'?". Returns ("", false) if parent has no keyed
// children at all.
func SuggestKey(parent sexp.Handle, miss string) (string, bool) {
	best := ""
	bestDistance := -1

	for _, child := range parent.Children() {
		if child.Kind() != sexp.KindList {
			continue
		}
		head := child.FirstChild()
		if !head.Valid() || head.Kind() != sexp.KindAtom {
			continue
		}
		text, ok := head.Atom()
		if !ok {
			continue
		}
		key := string(text)
		d := levenshtein.ComputeDistance(key, miss)
		if bestDistance == -1 || d < bestDistance {
			best, bestDistance = key, d
		}
	}

	return best, bestDistance != -1
}
