// File: api/protocol.go
// Author: momentics <momentics@gmail.com>
//
// The two minimal incremental I/O contracts segbuf is built around:
// request-a-view-then-advance (pull) and request-writable-space-then-commit
// (push). Context-aware variants exist so an external source or sink may
// suspend; the segment-chain bookkeeping itself never blocks.

package api

import "context"

// PullReader is the pull-style consumption contract.
//
// Within one instance, calls must follow the protocol order: View, then
// Advance for whatever was consumed. Instances are not safe for concurrent
// use without external synchronization.
type PullReader interface {
	// View returns a borrowed view of at least min bytes of upcoming data.
	// It returns fewer only when the source is exhausted, and an empty view
	// once nothing remains. The view stays valid until the next call on the
	// reader.
	View(min int) []byte

	// Advance marks n bytes as consumed. Advancing past previously viewed
	// data skips additional unread source data. n must not be negative.
	Advance(n int)

	// CanRead reports whether any data remains.
	CanRead() bool
}

// PushWriter is the push-style production contract.
type PushWriter interface {
	// Writable returns a writable region of at least sizeHint bytes.
	// A zero hint asks for whatever free space is available, growing only
	// when there is none. The region stays valid until the next call on the
	// writer; written bytes are not visible until committed via Advance.
	Writable(sizeHint int) []byte

	// Advance commits n written bytes. Committing more than the writable
	// region held is a contract violation and panics.
	Advance(n int)
}

// PullReaderCtx is the suspension-capable variant of PullReader, for
// sources that may block (a stream or transport backend). Cancellation
// applies to the source's fetch, never to buffer bookkeeping.
type PullReaderCtx interface {
	ViewCtx(ctx context.Context, min int) ([]byte, error)
	Advance(n int)
}

// PushWriterCtx is the suspension-capable variant of PushWriter.
type PushWriterCtx interface {
	WritableCtx(ctx context.Context, sizeHint int) ([]byte, error)
	Advance(n int)
}
