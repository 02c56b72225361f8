// File: api/pool.go
// Author: momentics <momentics@gmail.com>
//
// Abstract pooling API: rent-a-block / return-a-block over plain byte slices.

package api

// BlockPool abstracts block memory management for buffers.
//
// A block obtained from Rent must be returned to the same pool instance
// exactly once, or never touched again. Returning a block twice, or to a
// different pool, is a logic error; the ownership wrappers in buffer/ exist
// to make that hard to express.
type BlockPool interface {
	// Rent returns a block of at least minLen bytes. The block may be
	// larger; callers track their own used length.
	Rent(minLen int) []byte

	// Return hands a block back to the pool. When clear is true the pool
	// zeroes the block before recycling it. The block must not be used
	// afterwards.
	Return(block []byte, clear bool)
}

// PoolStats aggregates block allocation/reuse counters.
type PoolStats struct {
	TotalRented   int64
	TotalReturned int64
	TotalAlloc    int64 // fresh allocations (pool misses)
	InUse         int64
}

// StatsProvider is implemented by pools that expose accounting metrics.
type StatsProvider interface {
	Stats() PoolStats
}
