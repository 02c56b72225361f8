// File: buffer/reader.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Segmented pull reader: serves "give me at least N bytes" requests over
// a logical sequence or an opaque pull source, staging into a rented
// block only when a request spans a segment boundary. Short reads signal
// end of data; they are never an error.

package buffer

import (
	"github.com/momentics/segbuf/api"
	"github.com/momentics/segbuf/pool"
	"github.com/momentics/segbuf/sequence"
)

// Reader implements api.PullReader. Construct with NewReader (restartable,
// over a sequence) or NewSourceReader (opaque pull source, not
// restartable). The zero value is an exhausted reader over no data.
type Reader struct {
	pool api.BlockPool

	seq sequence.Sequence
	pos int

	src api.PullReader // exclusive with seq

	staging      OwnedBlock
	stagingStart int // seq position of staging byte 0
	stagedLen    int // valid bytes in staging; 0 when staging inactive
}

// NewReader wraps a logical sequence. The pool backs the staging block
// for requests that straddle segment boundaries; nil opts out of pooling.
func NewReader(s sequence.Sequence, p api.BlockPool) *Reader {
	if p == nil {
		p = pool.Null
	}
	return &Reader{pool: p, seq: s}
}

// NewSourceReader wraps an opaque pull source. Requests pass through:
// the source already honors the at-least-N contract, so no staging is
// required. Restart is unsupported over opaque sources.
func NewSourceReader(src api.PullReader, p api.BlockPool) *Reader {
	if p == nil {
		p = pool.Null
	}
	return &Reader{pool: p, src: src}
}

// remaining returns how much sequence data is left.
func (r *Reader) remaining() int {
	return r.seq.Len() - r.pos
}

// stagedUnread returns how much staged data is not yet advanced past.
func (r *Reader) stagedUnread() int {
	if r.stagedLen == 0 || r.pos < r.stagingStart || r.pos >= r.stagingStart+r.stagedLen {
		return 0
	}
	return r.stagingStart + r.stagedLen - r.pos
}

// View returns a borrowed view of at least min bytes. The view comes
// straight from the underlying segment when one segment suffices; when
// the request spans segments it is staged into a rented block. Fewer than
// min bytes come back only when the source is exhausted, and an empty
// view once nothing remains.
func (r *Reader) View(min int) []byte {
	if min < 0 {
		panic("buffer: negative view size")
	}
	if r.src != nil {
		return r.src.View(min)
	}

	remaining := r.remaining()
	if remaining == 0 {
		return nil
	}

	// ViewAt returns the non-empty remainder of the segment containing
	// pos; it alone satisfies a zero-size peek and any fitting request.
	segRest := r.seq.ViewAt(r.pos)
	if min == 0 || len(segRest) >= min {
		return segRest
	}

	// Serve from the currently staged window when it still satisfies.
	if unread := r.stagedUnread(); unread >= min && unread > 0 {
		off := r.pos - r.stagingStart
		return r.staging.Block()[off:r.stagedLen]
	}

	amount := min
	if amount > remaining {
		amount = remaining
	}
	EnsureBlock(r.pool, &r.staging, amount, false)
	r.seq.Slice(r.pos, r.pos+amount).CopyTo(r.staging.Block())
	r.stagingStart = r.pos
	r.stagedLen = amount
	return r.staging.Block()[:amount]
}

// Advance consumes n bytes. Advancing by more than what was staged or
// viewed is permitted and skips additional unread source data; staged
// accounting clamps at zero. Panics on negative n.
func (r *Reader) Advance(n int) {
	if n < 0 {
		panic("buffer: negative advance")
	}
	if r.src != nil {
		r.src.Advance(n)
		return
	}
	r.pos += n
	if r.pos > r.seq.Len() {
		r.pos = r.seq.Len()
	}
	if r.stagedUnread() == 0 {
		r.stagedLen = 0
	}
}

// CanRead reports whether any data remains.
func (r *Reader) CanRead() bool {
	if r.src != nil {
		return r.src.CanRead()
	}
	return r.remaining() > 0
}

// Restart rewinds to the beginning. Only sequence-backed readers are
// restartable; over an opaque source this returns api.ErrNotRestartable.
func (r *Reader) Restart() error {
	return r.RestartAt(0)
}

// RestartAt rewinds to an absolute position within the sequence.
func (r *Reader) RestartAt(pos int) error {
	if r.src != nil {
		return api.ErrNotRestartable
	}
	if pos < 0 || pos > r.seq.Len() {
		return api.ErrInvalidArgument
	}
	r.pos = pos
	r.stagedLen = 0
	return nil
}

// ResetTo re-arms the reader over a new sequence, releasing any staging
// block from its previous life. The pool backs future staging; nil opts
// out of pooling. Lets recycled reader instances be pointed at fresh data.
func (r *Reader) ResetTo(s sequence.Sequence, p api.BlockPool) {
	r.Release()
	if p == nil {
		p = pool.Null
	}
	r.pool = p
	r.seq = s
	r.pos = 0
	r.src = nil
	r.stagingStart = 0
}

// Release returns the staging block, if one was ever rented, to its
// pool. Safe to call when none was (no-op), and more than once.
func (r *Reader) Release() {
	r.staging.Release()
	r.stagedLen = 0
}

var _ api.PullReader = (*Reader)(nil)
