// File: buffer/owned.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Scope-bound ownership wrappers over rented blocks. Each wrapper pairs a
// block with the pool it came from and a clear-on-return policy, and
// guarantees the block is returned to that pool exactly once. Release
// nils the wrapper out, so a second Release is a structural no-op rather
// than a double return.

package buffer

import (
	"github.com/momentics/segbuf/api"
	"github.com/momentics/segbuf/sequence"
)

// OwnedBlock exclusively owns one rented block. The zero value is the
// empty sentinel: it wraps no memory and its Release is a no-op. Empty
// sentinels are never returned to a pool; only blocks that came from an
// actual Rent call are.
type OwnedBlock struct {
	arr       []byte
	n         int // meaningful data length within arr
	pool      api.BlockPool
	willClear bool
}

// RentBlock rents a block of at least minLen bytes from p and wraps it.
// The wrapped data length starts at zero.
func RentBlock(p api.BlockPool, minLen int, willClear bool) OwnedBlock {
	return OwnedBlock{arr: p.Rent(minLen), pool: p, willClear: willClear}
}

// NewOwnedBlock wraps an already-rented block whose full length is data.
func NewOwnedBlock(arr []byte, p api.BlockPool, willClear bool) OwnedBlock {
	return OwnedBlock{arr: arr, n: len(arr), pool: p, willClear: willClear}
}

// Bytes returns the data view arr[:len]. Borrowed: the view does not
// transfer ownership and must not outlive the block.
func (b *OwnedBlock) Bytes() []byte { return b.arr[:b.n] }

// Block returns the full backing array, including unused capacity.
func (b *OwnedBlock) Block() []byte { return b.arr }

// Len returns the meaningful data length.
func (b *OwnedBlock) Len() int { return b.n }

// SetLen adjusts the meaningful data length. Panics when n is negative or
// exceeds the block's capacity.
func (b *OwnedBlock) SetLen(n int) {
	if n < 0 || n > len(b.arr) {
		panic("buffer: owned block length out of range")
	}
	b.n = n
}

// IsEmpty reports whether the wrapper holds no memory.
func (b *OwnedBlock) IsEmpty() bool { return len(b.arr) == 0 }

// Release returns the block to its pool and empties the wrapper. Safe on
// the empty sentinel and after a prior Release (both are no-ops).
func (b *OwnedBlock) Release() {
	if len(b.arr) > 0 && b.pool != nil {
		b.pool.Return(b.arr, b.willClear)
	}
	b.arr = nil
	b.n = 0
	b.pool = nil
}

// OwnedRange is an OwnedBlock plus a borrowed window [off, end) within
// it. Releasing the range releases the whole backing block.
type OwnedRange struct {
	block    OwnedBlock
	off, end int
}

// NewOwnedRange wraps a sub-window of an owned block, taking over its
// ownership. Panics when the window is out of bounds.
func NewOwnedRange(b OwnedBlock, off, end int) OwnedRange {
	if off < 0 || end > len(b.arr) || off > end {
		panic("buffer: range out of bounds")
	}
	return OwnedRange{block: b, off: off, end: end}
}

// Bytes returns the window view.
func (r *OwnedRange) Bytes() []byte { return r.block.arr[r.off:r.end] }

// Len returns the window length.
func (r *OwnedRange) Len() int { return r.end - r.off }

// Release returns the backing block to its pool.
func (r *OwnedRange) Release() {
	r.block.Release()
	r.off, r.end = 0, 0
}

// chainLink is one (block, pool, willClear) tuple plus the view the block
// contributes to the chain's logical range.
type chainLink struct {
	arr       []byte
	view      []byte
	pool      api.BlockPool
	willClear bool
}

// OwnedChain owns every block backing a multi-segment logical range.
// The zero value is a valid empty chain with a no-op Release. Each link
// keeps its own clear policy: a chain absorbed from several owned blocks
// need not share one flag.
type OwnedChain struct {
	links  []chainLink
	length int
}

// ChainFromBlock converts an owned block into a single-link chain,
// preserving its clear-on-return policy. Ownership moves to the chain:
// the caller must not use or Release the block wrapper afterwards.
func ChainFromBlock(b OwnedBlock) OwnedChain {
	if b.IsEmpty() {
		return OwnedChain{}
	}
	return OwnedChain{
		links:  []chainLink{{arr: b.arr, view: b.Bytes(), pool: b.pool, willClear: b.willClear}},
		length: b.n,
	}
}

// ChainFromRange converts an owned range into a single-link chain.
// Ownership moves to the chain, as with ChainFromBlock.
func ChainFromRange(r OwnedRange) OwnedChain {
	if r.block.IsEmpty() {
		return OwnedChain{}
	}
	return OwnedChain{
		links: []chainLink{{
			arr:       r.block.arr,
			view:      r.block.arr[r.off:r.end],
			pool:      r.block.pool,
			willClear: r.block.willClear,
		}},
		length: r.end - r.off,
	}
}

// Len returns the chain's total logical length.
func (c *OwnedChain) Len() int { return c.length }

// NumBlocks returns how many blocks the chain owns.
func (c *OwnedChain) NumBlocks() int { return len(c.links) }

// Sequence returns a zero-copy logical view over the chain's data. The
// view borrows the chain's memory; it must not be used after Release.
func (c *OwnedChain) Sequence() sequence.Sequence {
	views := make([][]byte, len(c.links))
	for i, l := range c.links {
		views[i] = l.view
	}
	return sequence.New(views...)
}

// Release returns every block to its pool, each independently, in order,
// then empties the chain. Safe on the empty chain and after a prior
// Release.
func (c *OwnedChain) Release() {
	for i := range c.links {
		l := &c.links[i]
		if len(l.arr) > 0 && l.pool != nil {
			l.pool.Return(l.arr, l.willClear)
		}
		l.arr = nil
		l.view = nil
		l.pool = nil
	}
	c.links = nil
	c.length = 0
}

// EnsureBlock grows b in place to hold at least minLen bytes, renting
// from p. Already-large-enough blocks are untouched. When copyContents is
// set, the old data (old length only) is copied into the new block. The
// new block is swapped in before the old one is returned, so a single
// logical owner never observes transient double-ownership.
func EnsureBlock(p api.BlockPool, b *OwnedBlock, minLen int, copyContents bool) {
	if minLen <= 0 {
		panic("buffer: EnsureBlock requires a positive length")
	}
	if len(b.arr) >= minLen {
		return
	}
	next := p.Rent(minLen)
	if copyContents && b.n > 0 {
		copy(next, b.arr[:b.n])
	}
	old, oldPool, oldClear := b.arr, b.pool, b.willClear
	b.arr = next
	b.pool = p
	if len(old) > 0 && oldPool != nil {
		oldPool.Return(old, oldClear)
	}
}
