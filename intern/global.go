// Copyright 2026 The Sexp Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package intern

import "sync"

var (
	globalOnce sync.Once
	globalPool *Pool
)

// Global returns the process-wide intern pool, lazily constructing it
// on first use. sexp.Parse builds its trees on this pool; like any
// pool, it is retained by each tree created on it and released on Free.
func Global() *Pool {
	globalOnce.Do(func() {
		globalPool = New()
	})
	return globalPool
}
