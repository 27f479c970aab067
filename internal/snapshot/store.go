// Copyright 2026 The Sexp Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package snapshot

import (
	"context"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	digest "github.com/opencontainers/go-digest"
)

// Store persists serialized trees to disk, keyed by the sha256 digest
// of their content. Unlike Cache, entries in a Store never expire on
// their own; gcInterval only reclaims badger's internal value-log
// space, it never deletes keys.
type Store struct {
	db       *badger.DB
	stopGC   chan struct{}
	gcDoneCh chan struct{}
}

// OpenStore opens (or creates) a badger database at dir and starts its
// background value-log garbage collector on gcInterval.
func OpenStore(dir string, gcInterval time.Duration) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	s := &Store{
		db:       db,
		stopGC:   make(chan struct{}),
		gcDoneCh: make(chan struct{}),
	}
	go s.runGC(gcInterval)
	return s, nil
}

// runGC periodically invokes badger's value-log GC. Badger documents
// ErrNoRewrite as the expected steady-state result once there is
// nothing left to reclaim; any other error is swallowed here too,
// since a failed GC pass just means this tick did no work.
func (s *Store) runGC(interval time.Duration) {
	defer close(s.gcDoneCh)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopGC:
			return
		case <-ticker.C:
			for s.db.RunValueLogGC(0.5) == nil {
				// Keep reclaiming while there's more to collect.
			}
		}
	}
}

// Save writes serialized under its sha256 digest and returns that
// digest as the key to retrieve it later.
func (s *Store) Save(serialized []byte) (digest.Digest, error) {
	d := digest.FromBytes(serialized)
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(d.String()), serialized)
	})
	if err != nil {
		return "", err
	}
	return d, nil
}

// Load reads back the bytes saved under d.
func (s *Store) Load(d digest.Digest) ([]byte, error) {
	var out []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(d.String()))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			out = append([]byte(nil), val...)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Close stops the background GC goroutine and closes the database.
// Safe to call once; blocks until the GC goroutine has exited so
// callers (and leak-detecting tests) never observe it still running.
func (s *Store) Close(ctx context.Context) error {
	close(s.stopGC)
	select {
	case <-s.gcDoneCh:
	case <-ctx.Done():
	}
	return s.db.Close()
}
