// Copyright 2026 The Sexp Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package snapshot provides content-addressed caching and persistence
// for parsed trees: an in-memory LRU keyed by a fast structural
// fingerprint, and a badger-backed store keyed by a cryptographic
// digest of the canonical serialized form, for callers that want
// snapshots to survive a process restart.
package snapshot

import (
	"github.com/cespare/xxhash/v2"
	"github.com/sexprlang/sexp/serialize"
	"github.com/sexprlang/sexp/tree"
)

// Fingerprint hashes the canonical serialized form of the subtree
// rooted at root, for use as a cheap, non-cryptographic cache key.
// Two structurally identical subtrees always fingerprint equal;
// collisions are possible and callers that need certainty should
// compare the serialized bytes directly.
func Fingerprint(t *tree.Tree, root uint32) uint64 {
	return xxhash.Sum64(serialize.Subtree(t, root))
}

// FingerprintTree fingerprints the entire document (all top-level
// forms).
func FingerprintTree(t *tree.Tree) uint64 {
	return xxhash.Sum64(serialize.Tree(t))
}
