// File: pool/nullpool.go
// Author: momentics <momentics@gmail.com>
//
// The opt-out pool: every Rent allocates fresh memory, Return is a no-op
// and the GC reclaims blocks. Used when a flushed sequence must outlive
// the writer, or when pooling semantics are unwanted.

package pool

import (
	"github.com/momentics/segbuf/api"
	"github.com/momentics/segbuf/internal/normalize"
)

// nullFloor is the smallest block a NullPool hands out.
const nullFloor = 64

// NullPool satisfies api.BlockPool without recycling anything.
type NullPool struct{}

// Null is the shared NullPool instance. The type is stateless, so one
// value serves the whole process.
var Null = &NullPool{}

// NewNullPool returns a distinct NullPool, for callers that key behavior
// on pool identity.
func NewNullPool() *NullPool { return &NullPool{} }

// Rent allocates a fresh zeroed block of at least minLen bytes.
func (*NullPool) Rent(minLen int) []byte {
	return make([]byte, normalize.Length(minLen, nullFloor))
}

// Return is a no-op; the garbage collector owns the block from here.
func (*NullPool) Return(_ []byte, _ bool) {}

var _ api.BlockPool = (*NullPool)(nil)
