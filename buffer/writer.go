// File: buffer/writer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Segmented push writer: accumulates committed data into a chain of
// rented blocks. Sealed segments live in a flat arena slice with running
// indices, so trimming corrects plain struct fields instead of mutating
// through shared links. At most one current (unsealed) block exists at a
// time.

package buffer

import (
	"fmt"

	"github.com/momentics/segbuf/api"
	"github.com/momentics/segbuf/pool"
	"github.com/momentics/segbuf/sequence"
)

// DefaultMinBlock is the writer's default minimum block size.
const DefaultMinBlock = 1024

// writerSeg is one sealed block: the rented array, the used window
// within it, and the cumulative length of all prior segments.
type writerSeg struct {
	arr     []byte
	view    []byte
	running int
}

// Writer implements api.PushWriter over a growable chain of pooled
// blocks. The zero value is not usable; construct with NewWriter.
type Writer struct {
	pool     api.BlockPool
	minBlock int

	current []byte // rented, nil when no current block exists
	used    int    // committed bytes in current
	curOff  int    // logical start within current (advanced by TrimPrefix)

	segs []writerSeg
}

// NewWriter creates a writer renting from p, with blocks of at least
// minBlock bytes. A nil p opts out of pooling (fresh allocation, no-op
// return); minBlock <= 0 selects DefaultMinBlock.
func NewWriter(p api.BlockPool, minBlock int) *Writer {
	if p == nil {
		p = pool.Null
	}
	if minBlock <= 0 {
		minBlock = DefaultMinBlock
	}
	return &Writer{pool: p, minBlock: minBlock}
}

// sealedLen returns the total length of all sealed segments.
func (w *Writer) sealedLen() int {
	if len(w.segs) == 0 {
		return 0
	}
	last := &w.segs[len(w.segs)-1]
	return last.running + len(last.view)
}

// pendingLen returns the committed, not-yet-sealed length in the current
// block.
func (w *Writer) pendingLen() int {
	return w.used - w.curOff
}

// Len returns the total number of bytes written and not trimmed away.
func (w *Writer) Len() int {
	return w.sealedLen() + w.pendingLen()
}

// seal moves the current block's used window into the segment arena. A
// current block with no committed data goes back to the pool instead of
// becoming an empty segment. No-op without a current block.
func (w *Writer) seal() {
	if w.current == nil {
		return
	}
	if w.pendingLen() == 0 {
		w.pool.Return(w.current, false)
	} else {
		w.segs = append(w.segs, writerSeg{
			arr:     w.current,
			view:    w.current[w.curOff:w.used],
			running: w.sealedLen(),
		})
	}
	w.current = nil
	w.used = 0
	w.curOff = 0
}

// rent makes a fresh current block of at least max(sizeHint, minBlock).
func (w *Writer) rent(sizeHint int) {
	size := sizeHint
	if size < w.minBlock {
		size = w.minBlock
	}
	w.current = w.pool.Rent(size)
	w.used = 0
	w.curOff = 0
}

// Writable returns a writable region of at least sizeHint bytes at the
// current block's used offset, sealing the used prefix and renting a
// fresh block when the current one cannot satisfy the hint. A zero hint
// returns the remaining free space, growing only once the block is truly
// full. The used offset is not advanced.
func (w *Writer) Writable(sizeHint int) []byte {
	if sizeHint < 0 {
		panic("buffer: negative size hint")
	}
	if w.current == nil {
		w.rent(sizeHint)
		return w.current[w.used:]
	}
	free := len(w.current) - w.used
	if sizeHint > free || (sizeHint == 0 && free == 0) {
		w.seal()
		w.rent(sizeHint)
	}
	return w.current[w.used:]
}

// Advance commits n bytes written into the region returned by Writable.
// Panics when n is negative or exceeds the current block's free space:
// that is a push-writer contract violation, not a recoverable condition.
func (w *Writer) Advance(n int) {
	if n < 0 {
		panic("buffer: negative advance")
	}
	free := 0
	if w.current != nil {
		free = len(w.current) - w.used
	}
	if n > free {
		panic(fmt.Sprintf("buffer: advance %d exceeds remaining capacity %d", n, free))
	}
	w.used += n
}

// Write appends p, implementing io.Writer on top of the push contract.
func (w *Writer) Write(p []byte) (int, error) {
	written := len(p)
	for len(p) > 0 {
		dst := w.Writable(0)
		if len(dst) > len(p) {
			dst = dst[:len(p)]
		}
		copy(dst, p)
		w.Advance(len(dst))
		p = p[len(dst):]
	}
	return written, nil
}

// Sequence returns a zero-copy logical view over everything written so
// far. The snapshot never mutates writer state, so it may be interleaved
// with further writes; data committed later is not visible through an
// earlier snapshot. When all data sits in one block, the sole segment
// aliases the writer's block memory directly.
func (w *Writer) Sequence() sequence.Sequence {
	views := make([][]byte, 0, len(w.segs)+1)
	for i := range w.segs {
		views = append(views, w.segs[i].view)
	}
	if w.pendingLen() > 0 {
		views = append(views, w.current[w.curOff:w.used])
	}
	return sequence.New(views...)
}

// Flush seals any pending data and hands every block in the chain to the
// caller as an OwnedChain carrying the given clear-on-return policy. The
// writer resets to empty, renting nothing eagerly; it no longer holds any
// of the previously written data.
func (w *Writer) Flush(clear bool) OwnedChain {
	w.seal()
	if len(w.segs) == 0 {
		return OwnedChain{}
	}
	chain := OwnedChain{links: make([]chainLink, len(w.segs)), length: w.sealedLen()}
	for i := range w.segs {
		chain.links[i] = chainLink{
			arr:       w.segs[i].arr,
			view:      w.segs[i].view,
			pool:      w.pool,
			willClear: clear,
		}
	}
	w.segs = nil
	return chain
}

// FlushSingle is Flush with a contiguity guarantee: when the data
// occupies exactly one underlying block starting at its beginning, that
// block is handed over without copying; otherwise one new block sized to
// the total length is rented, every segment plus pending data is copied
// into it in order, and the original blocks return to the pool.
func (w *Writer) FlushSingle(clear bool) OwnedBlock {
	total := w.Len()
	if total == 0 {
		w.seal() // returns an unused current block, if any
		w.segs = nil
		return OwnedBlock{}
	}

	// Single-block fast path: all data in the current block from offset 0.
	if len(w.segs) == 0 && w.curOff == 0 {
		b := OwnedBlock{arr: w.current, n: w.used, pool: w.pool, willClear: clear}
		w.current = nil
		w.used = 0
		return b
	}
	// Or in one sealed segment covering its block from the start.
	if len(w.segs) == 1 && w.pendingLen() == 0 && &w.segs[0].view[0] == &w.segs[0].arr[0] {
		b := OwnedBlock{arr: w.segs[0].arr, n: len(w.segs[0].view), pool: w.pool, willClear: clear}
		w.segs = nil
		w.seal() // return the unused current block, if any
		return b
	}

	out := w.pool.Rent(total)
	n := 0
	for i := range w.segs {
		n += copy(out[n:], w.segs[i].view)
		w.pool.Return(w.segs[i].arr, clear)
	}
	if w.pendingLen() > 0 {
		n += copy(out[n:], w.current[w.curOff:w.used])
	}
	if w.current != nil {
		w.pool.Return(w.current, clear)
		w.current = nil
		w.used = 0
		w.curOff = 0
	}
	w.segs = nil
	return OwnedBlock{arr: out, n: n, pool: w.pool, willClear: clear}
}

// TrimPrefix discards the first n bytes of written data. Fully consumed
// leading segments return to the pool (cleared when clear is set); a
// partially consumed head segment keeps its leftover window, and running
// indices are corrected downward by the total removed. Trimming the whole
// length is equivalent to Reset.
func (w *Writer) TrimPrefix(n int, clear bool) {
	total := w.Len()
	if n < 0 || n > total {
		panic(fmt.Sprintf("buffer: trim %d out of range 0..%d", n, total))
	}
	if n == 0 {
		return
	}
	if n == total {
		w.Reset(clear)
		return
	}

	rest := n
	drop := 0
	for drop < len(w.segs) && rest >= len(w.segs[drop].view) {
		rest -= len(w.segs[drop].view)
		w.pool.Return(w.segs[drop].arr, clear)
		drop++
	}
	w.segs = w.segs[drop:]

	if rest > 0 && len(w.segs) > 0 {
		w.segs[0].view = w.segs[0].view[rest:]
		rest = 0
	}
	running := 0
	for i := range w.segs {
		w.segs[i].running = running
		running += len(w.segs[i].view)
	}
	if rest > 0 {
		// The excess lives in the current (unsealed) block; drop it from
		// the front logically by advancing the start offset.
		w.curOff += rest
	}
}

// Reset returns every owned block to the pool and clears all state.
func (w *Writer) Reset(clear bool) {
	for i := range w.segs {
		w.pool.Return(w.segs[i].arr, clear)
	}
	w.segs = nil
	if w.current != nil {
		w.pool.Return(w.current, clear)
		w.current = nil
	}
	w.used = 0
	w.curOff = 0
}

// ResetSized resets the writer and immediately rents a fresh current
// block of at least minCap bytes. minCap must be positive.
func (w *Writer) ResetSized(minCap int, clear bool) {
	if minCap <= 0 {
		panic("buffer: ResetSized requires a positive capacity")
	}
	w.Reset(clear)
	w.rent(minCap)
}

// Release disposes the writer, returning any blocks it still owns.
// Blocks already handed off by Flush or FlushSingle are unaffected.
func (w *Writer) Release() {
	w.Reset(false)
}

var _ api.PushWriter = (*Writer)(nil)
