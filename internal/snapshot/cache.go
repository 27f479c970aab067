// Copyright 2026 The Sexp Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package snapshot

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache is an in-memory, fingerprint-keyed cache of serialized trees.
// Intended to sit in front of Store: a cache hit avoids both
// re-serializing a tree and a badger lookup.
type Cache struct {
	lru *lru.Cache[uint64, []byte]
}

// NewCache builds a Cache holding up to size entries, evicting least
// recently used on overflow.
func NewCache(size int) (*Cache, error) {
	c, err := lru.New[uint64, []byte](size)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: c}, nil
}

// Get returns the serialized bytes for fingerprint, if present.
func (c *Cache) Get(fingerprint uint64) ([]byte, bool) {
	return c.lru.Get(fingerprint)
}

// Put records serialized under fingerprint, evicting the least
// recently used entry if the cache is full.
func (c *Cache) Put(fingerprint uint64, serialized []byte) {
	c.lru.Add(fingerprint, serialized)
}

// Len reports the number of entries currently cached.
func (c *Cache) Len() int {
	return c.lru.Len()
}
