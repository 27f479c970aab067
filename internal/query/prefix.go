// Copyright 2026 The Sexp Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package query

import (
	patricia "github.com/tchap/go-patricia/v2/patricia"
)

// PrefixIndex indexes a set of strings (typically every distinct
// first-atom key seen in a document) for fast prefix completion, used
// by cmd/sexpctl's REPL to complete partially-typed keys on Tab.
type PrefixIndex struct {
	trie *patricia.Trie
}

// NewPrefixIndex builds a PrefixIndex over keys.
func NewPrefixIndex(keys []string) *PrefixIndex {
	trie := patricia.NewTrie()
	for _, k := range keys {
		trie.Insert(patricia.Prefix(k), true)
	}
	return &PrefixIndex{trie: trie}
}

// Insert adds a single key to the index.
func (p *PrefixIndex) Insert(key string) {
	p.trie.Insert(patricia.Prefix(key), true)
}

// Complete returns every indexed key that starts with prefix.
func (p *PrefixIndex) Complete(prefix string) []string {
	var matches []string
	p.trie.VisitSubtree(patricia.Prefix(prefix), func(k patricia.Prefix, _ patricia.Item) error {
		matches = append(matches, string(k))
		return nil
	})
	return matches
}
