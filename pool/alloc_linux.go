// File: pool/alloc_linux.go
//go:build linux

// Package pool: Linux allocator with optional hugepage backing.
//
// When hugepages are requested, blocks are mapped via mmap with MAP_HUGETLB
// on 2 MiB boundaries; allocation falls back to the Go heap when the mapping
// fails (no hugepages configured, limits exceeded). Heap blocks release to
// the garbage collector; mapped blocks are munmapped on release.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync"

	"golang.org/x/sys/unix"
)

const hugePageSize = 2 << 20

// hugeAllocator tracks raw mappings so release can munmap the full region
// even though Rent hands out a shortened slice.
type hugeAllocator struct {
	mu     sync.Mutex
	mapped map[*byte][]byte
}

func (h *hugeAllocator) alloc(size int) []byte {
	length := ((size + hugePageSize - 1) / hugePageSize) * hugePageSize
	data, err := unix.Mmap(-1, 0, length,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANONYMOUS|unix.MAP_PRIVATE|unix.MAP_HUGETLB)
	if err != nil {
		return make([]byte, size)
	}
	h.mu.Lock()
	h.mapped[&data[0]] = data
	h.mu.Unlock()
	return data[:size]
}

func (h *hugeAllocator) releaseBlock(block []byte) {
	if len(block) == 0 {
		return
	}
	h.mu.Lock()
	raw, ok := h.mapped[&block[0]]
	if ok {
		delete(h.mapped, &block[0])
	}
	h.mu.Unlock()
	if ok {
		_ = unix.Munmap(raw)
	}
}

func newAllocator(hugePages bool) (alloc func(int) []byte, release func([]byte)) {
	if !hugePages {
		return heapAlloc, heapRelease
	}
	h := &hugeAllocator{mapped: make(map[*byte][]byte)}
	return h.alloc, h.releaseBlock
}
