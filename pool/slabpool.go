// File: pool/slabpool.go
// Package pool implements size-classed block recycling with FIFO free lists.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"

	"github.com/momentics/segbuf/api"
	"github.com/momentics/segbuf/internal/normalize"
)

// Predefined (power-of-two) block size classes (bytes).
// This table can be tuned per deployment via SlabOptions.Classes.
var defaultClasses = []int{
	2 * 1024,        // 2K
	4 * 1024,        // 4K
	8 * 1024,        // 8K
	16 * 1024,       // 16K
	32 * 1024,       // 32K
	64 * 1024,       // 64K
	128 * 1024,      // 128K
	256 * 1024,      // 256K
	512 * 1024,      // 512K
	1 * 1024 * 1024, // 1M
}

const (
	defaultClassCapacity = 512
	defaultFloor         = 64
)

// SlabOptions configures a SlabPool.
type SlabOptions struct {
	// Classes overrides the default power-of-two class table.
	// Values are sorted and de-duplicated; non-positive entries dropped.
	Classes []int
	// ClassCapacity bounds how many free blocks each class retains.
	// Overflow returns are released instead of hoarded.
	ClassCapacity int
	// Floor is the smallest block ever handed out.
	Floor int
	// HugePages routes allocation through mmap with MAP_HUGETLB on Linux,
	// falling back to the heap when hugepages are unavailable. Ignored on
	// other platforms.
	HugePages bool
}

// SlabPool recycles fixed-capacity blocks per size class. Rent rounds the
// request up to a class and serves it from that class's FIFO free list,
// allocating fresh only on a miss. Requests beyond the largest class are
// rounded to a power of two and treated as ad-hoc classes that are never
// retained.
//
// Rent and Return are safe for concurrent use; everything above the pool
// (writers, readers, owned wrappers) is single-owner by contract.
type SlabPool struct {
	classes  []int
	capacity int
	floor    int

	alloc   func(size int) []byte
	release func(block []byte)

	mu     sync.Mutex
	free   map[int]*queue.Queue // class size -> FIFO of recycled blocks
	closed bool

	rented   atomic.Int64
	returned atomic.Int64
	allocs   atomic.Int64
}

// NewSlabPool builds a pool with default options.
func NewSlabPool() *SlabPool {
	return NewSlabPoolWithOptions(SlabOptions{})
}

// NewSlabPoolWithOptions builds a pool from opts.
func NewSlabPoolWithOptions(opts SlabOptions) *SlabPool {
	classes := normalize.Classes(opts.Classes)
	if classes == nil {
		classes = defaultClasses
	}
	capacity := opts.ClassCapacity
	if capacity <= 0 {
		capacity = defaultClassCapacity
	}
	floor := opts.Floor
	if floor <= 0 {
		floor = defaultFloor
	}
	alloc, release := newAllocator(opts.HugePages)
	return &SlabPool{
		classes:  classes,
		capacity: capacity,
		floor:    floor,
		alloc:    alloc,
		release:  release,
		free:     make(map[int]*queue.Queue, len(classes)),
	}
}

// classFor returns the smallest class >= size, or a power-of-two ad-hoc
// class when size exceeds the table.
func (p *SlabPool) classFor(size int) int {
	for _, c := range p.classes {
		if size <= c {
			return c
		}
	}
	return normalize.CeilPow2(size)
}

// retained reports whether blocks of class c are kept on a free list.
func (p *SlabPool) retained(c int) bool {
	return c <= p.classes[len(p.classes)-1]
}

// Rent returns a block of at least minLen bytes, recycled when possible.
// Renting from a closed pool is a caller bug and panics with
// api.ErrPoolClosed.
func (p *SlabPool) Rent(minLen int) []byte {
	c := p.classFor(normalize.Length(minLen, p.floor))

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		panic(api.ErrPoolClosed)
	}
	if p.retained(c) {
		if q := p.free[c]; q != nil && q.Length() > 0 {
			block := q.Remove().([]byte)
			p.mu.Unlock()
			p.rented.Add(1)
			return block
		}
	}
	p.mu.Unlock()

	p.rented.Add(1)
	p.allocs.Add(1)
	return p.alloc(c)
}

// Return recycles a block. Zero-length blocks are empty sentinels and are
// dropped silently. Blocks whose capacity does not match a retained class,
// or whose class free list is full, are released instead.
func (p *SlabPool) Return(block []byte, clear bool) {
	if len(block) == 0 {
		return
	}
	p.returned.Add(1)
	if clear {
		for i := range block {
			block[i] = 0
		}
	}

	c := len(block)
	if p.retained(c) && p.classFor(c) == c {
		p.mu.Lock()
		if !p.closed {
			q := p.free[c]
			if q == nil {
				q = queue.New()
				p.free[c] = q
			}
			if q.Length() < p.capacity {
				q.Add(block)
				p.mu.Unlock()
				return
			}
		}
		p.mu.Unlock()
	}
	p.release(block)
}

// Close releases every retained free block and rejects further rents.
// Blocks still in flight may be returned afterwards; they are released
// instead of retained. Closing twice is a no-op.
func (p *SlabPool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	freed := p.free
	p.free = nil
	p.mu.Unlock()

	for _, q := range freed {
		for q.Length() > 0 {
			p.release(q.Remove().([]byte))
		}
	}
	return nil
}

// Stats reports rent/return accounting.
func (p *SlabPool) Stats() api.PoolStats {
	rented := p.rented.Load()
	returned := p.returned.Load()
	return api.PoolStats{
		TotalRented:   rented,
		TotalReturned: returned,
		TotalAlloc:    p.allocs.Load(),
		InUse:         rented - returned,
	}
}

var (
	_ api.BlockPool     = (*SlabPool)(nil)
	_ api.StatsProvider = (*SlabPool)(nil)
)
