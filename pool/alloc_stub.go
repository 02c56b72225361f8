// File: pool/alloc_stub.go
//go:build !linux

// Package pool: heap allocator for platforms without hugepage support.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

func newAllocator(_ bool) (alloc func(int) []byte, release func([]byte)) {
	return heapAlloc, heapRelease
}
