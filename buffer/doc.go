// Package buffer
// Author: momentics <momentics@gmail.com>
//
// Pooled segment-based buffering for segbuf.
//
// Writer accumulates pushed data into a chain of rented blocks and hands
// the result back as a zero-copy sequence, an owned chain, or a single
// consolidated block. Reader consumes a sequence (or an opaque pull
// source), staging into a rented block only when one underlying segment
// cannot satisfy a request. OwnedBlock/OwnedRange/OwnedChain tie rented
// blocks to a scope and guarantee exactly-once return.
//
// Instances are single-owner: none of these types are safe for concurrent
// use without external synchronization. A shared pool may serve many
// instances concurrently if the pool itself is concurrency-safe.
package buffer
