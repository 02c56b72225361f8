// Package pool
// Author: momentics <momentics@gmail.com>
//
// Block pool implementations for segbuf.
//
// SlabPool is the real recycler: size-classed free lists with optional
// hugepage-backed allocation on Linux, drained by Close. NullPool opts out
// of pooling while keeping the uniform api.BlockPool surface, so generic
// code never branches on "is pooling enabled". Default() exposes a
// process-wide SlabPool. SyncPool recycles the transient helpers (writers,
// readers) that drive the block machinery.
package pool
