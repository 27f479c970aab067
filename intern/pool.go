// Copyright 2026 The Sexp Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package intern implements a process-wide, reference-counted string
// interning pool. Every tree in package tree retains a share of the
// pool on creation and releases it on Free, so the pool's lifetime
// outlives any single call — unlike a scope-based interner, retain and
// release are explicit so long-lived owners (trees) can hold a claim on
// it independently of one another.
//
// Equal byte content always yields equal IDs, and distinct content
// never collides: the pool deduplicates on every call to String.
package intern

import (
	"sync"

	"github.com/sexprlang/sexp/scratch"
)

// ID is a stable, non-zero identifier for an interned string. Zero is
// reserved as the invalid/null id.
type ID uint32

const (
	// initialTableCapacity is the hash table's capacity on first use.
	// Must be a power of two.
	initialTableCapacity = 64
	// initialStringsCapacity is the id→string side table's
	// capacity on first use.
	initialStringsCapacity = 64
	// loadFactorDenominator: the table grows once count >= capacity/loadFactorDenominator.
	loadFactorDenominator = 2
)

const (
	fnvOffsetBasis uint64 = 14695981039346656037
	fnvPrime       uint64 = 1099511628211
)

// fnv1a computes the 64-bit FNV-1a hash of data, remapping a computed
// zero to one so that zero reliably denotes an empty hash-table slot.
func fnv1a(data []byte) uint64 {
	h := fnvOffsetBasis
	for _, b := range data {
		h ^= uint64(b)
		h *= fnvPrime
	}
	if h == 0 {
		h = 1
	}
	return h
}

// entry is the id→string side table record.
type entry struct {
	data []byte
}

// Pool is a reference-counted string interning pool with an
// open-addressed hash table. The zero value is not initialized; use
// Global for the process-wide instance, or New for an isolated pool
// (useful in tests that must not share state with other tests).
type Pool struct {
	mu sync.Mutex

	arena *scratch.Arena

	hashes []uint64
	ids    []ID
	count  uint32 // occupied hash-table slots

	strings []entry // indexed by id-1

	refs uint32
}

// New constructs an unreferenced, initialized Pool. Callers that want
// the process-wide singleton should use Global instead.
func New() *Pool {
	p := &Pool{}
	p.initLocked()
	return p
}

func (p *Pool) initLocked() {
	p.arena = scratch.New(4096)
	p.hashes = make([]uint64, initialTableCapacity)
	p.ids = make([]ID, initialTableCapacity)
	p.count = 0
	p.strings = make([]entry, 0, initialStringsCapacity)
	p.refs = 0
}

// Init (re)initializes the pool if it is not already initialized. It is
// part of the handle surface for API parity with the reference
// implementation's explicit intern_init/intern_retain/intern_release
// lifecycle; Go's allocator does not fail the way a C malloc-backed
// arena can, so Init always succeeds and is safe to call redundantly —
// New and Release already leave the pool initialized.
func (p *Pool) Init() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.hashes == nil {
		p.initLocked()
	}
	return true
}

// Retain claims a share of the pool. Every tree created by parse, clone
// or extract calls Retain exactly once.
func (p *Pool) Retain() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.refs++
}

// Release drops a share of the pool. When the reference count reaches
// zero every allocation is freed and the pool re-arms itself, ready for
// reuse without a separate re-init step.
func (p *Pool) Release() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.refs == 0 {
		return
	}
	p.refs--
	if p.refs == 0 {
		p.arena.Close()
		p.initLocked()
	}
}

// String interns data, returning its stable ID. Equal content always
// returns the same ID. Returns 0 on allocation failure (in practice,
// Go's allocator panics rather than returning nil on exhaustion, so 0 is
// reserved for API parity with the handle surface rather than an
// observed failure mode).
func (p *Pool) String(data []byte) ID {
	p.mu.Lock()
	defer p.mu.Unlock()

	h := fnv1a(data)
	if id := p.lookupHashLocked(h, data); id != 0 {
		return id
	}

	if p.count >= uint32(len(p.hashes))/loadFactorDenominator {
		p.growTableLocked()
	}

	return p.assignIDLocked(data, h)
}

// lookupHashLocked searches the hash table for an entry whose hash and
// byte content match. Returns 0 if none is found.
func (p *Pool) lookupHashLocked(h uint64, data []byte) ID {
	mask := uint64(len(p.hashes) - 1)
	slot := h & mask
	for p.hashes[slot] != 0 {
		if p.hashes[slot] == h {
			id := p.ids[slot]
			stored := p.strings[id-1].data
			if len(stored) == len(data) && bytesEqual(stored, data) {
				return id
			}
		}
		slot = (slot + 1) & mask
	}
	return 0
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// growTableLocked doubles the hash table's capacity and rehashes every
// occupied slot into it.
func (p *Pool) growTableLocked() {
	newCap := len(p.hashes) * 2
	newHashes := make([]uint64, newCap)
	newIDs := make([]ID, newCap)
	mask := uint64(newCap - 1)

	for i, h := range p.hashes {
		if h == 0 {
			continue
		}
		slot := h & mask
		for newHashes[slot] != 0 {
			slot = (slot + 1) & mask
		}
		newHashes[slot] = h
		newIDs[slot] = p.ids[i]
	}

	p.hashes = newHashes
	p.ids = newIDs
}

// assignIDLocked copies data into the pool's arena, records it in the
// id→string side table, inserts it into the hash table, and returns the
// new ID. Assumes the caller has already verified data is not already
// interned and that the hash table has room.
func (p *Pool) assignIDLocked(data []byte, h uint64) ID {
	dst := p.arena.Alloc(len(data))
	copy(dst, data)

	id := ID(len(p.strings) + 1)
	p.strings = append(p.strings, entry{data: dst})

	mask := uint64(len(p.hashes) - 1)
	slot := h & mask
	for p.hashes[slot] != 0 {
		slot = (slot + 1) & mask
	}
	p.hashes[slot] = h
	p.ids[slot] = id
	p.count++

	return id
}

// Lookup returns the bytes originally interned for id, and true if id
// is a currently-valid id issued by this pool.
func (p *Pool) Lookup(id ID) ([]byte, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if id == 0 || uint32(id) > uint32(len(p.strings)) {
		return nil, false
	}
	return p.strings[id-1].data, true
}

// Len reports the number of distinct strings currently interned.
// Intended for diagnostics (package sexp's metrics, cmd/sexpctl stats).
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.strings)
}
