// Copyright 2026 The Sexp Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package scratch

import "unsafe"

// sizeOf returns the size in bytes of the concrete type of v.
func sizeOf[T any](v T) uintptr {
	return unsafe.Sizeof(v)
}

// unsafeSlice reinterprets the first n*sizeof(T) bytes of raw as a []T.
// raw must already be sized and aligned for that reinterpretation; both
// are guaranteed by Arena.Alloc, since chunk backing arrays are plain
// []byte (minimum alignment for any Go value up to a pointer word is
// satisfied by the runtime allocator for slices of this size class in
// practice for the POD-only types scratch buffers hold: uint32 and the
// small frame structs in package serialize).
func unsafeSlice[T any](raw []byte, n int) []T {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&raw[0])), n)
}
