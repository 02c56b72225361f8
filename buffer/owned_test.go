package buffer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/segbuf/buffer"
	"github.com/momentics/segbuf/fake"
)

func TestOwnedBlockReleaseExactlyOnce(t *testing.T) {
	cp := fake.NewCountingPool(nil)
	b := buffer.RentBlock(cp, 32, false)
	require.Equal(t, 1, cp.Rents())

	b.Release()
	assert.Equal(t, 1, cp.Returns())

	// A released wrapper is empty; further releases are no-ops.
	assert.True(t, b.IsEmpty())
	b.Release()
	assert.Equal(t, 1, cp.Returns())
}

func TestOwnedBlockEmptySentinelNeverReturned(t *testing.T) {
	cp := fake.NewCountingPool(nil)
	var b buffer.OwnedBlock
	b.Release()
	assert.Zero(t, cp.Returns())
}

func TestOwnedBlockClearPolicy(t *testing.T) {
	cp := fake.NewCountingPool(nil)
	b := buffer.RentBlock(cp, 8, true)
	b.Release()
	assert.Equal(t, 1, cp.Cleared())
}

func TestOwnedBlockSetLen(t *testing.T) {
	cp := fake.NewCountingPool(nil)
	b := buffer.RentBlock(cp, 8, false)
	b.SetLen(5)
	assert.Equal(t, 5, b.Len())
	assert.Len(t, b.Bytes(), 5)
	assert.Panics(t, func() { b.SetLen(9) })
	assert.Panics(t, func() { b.SetLen(-1) })
	b.Release()
}

func TestOwnedRange(t *testing.T) {
	cp := fake.NewCountingPool(nil)
	b := buffer.RentBlock(cp, 8, false)
	copy(b.Block(), "abcdefgh")

	r := buffer.NewOwnedRange(b, 2, 6)
	assert.Equal(t, []byte("cdef"), r.Bytes())
	assert.Equal(t, 4, r.Len())

	r.Release()
	assert.Equal(t, 1, cp.Returns(), "releasing the range releases the whole block")
}

func TestOwnedRangeBoundsPanic(t *testing.T) {
	b := buffer.NewOwnedBlock(make([]byte, 4), nil, false)
	assert.Panics(t, func() { buffer.NewOwnedRange(b, -1, 2) })
	assert.Panics(t, func() { buffer.NewOwnedRange(b, 3, 2) })
	assert.Panics(t, func() { buffer.NewOwnedRange(b, 0, 5) })
}

func TestOwnedChainReleasesEveryBlockIndependently(t *testing.T) {
	cp := fake.NewCountingPool(&fake.FixedPool{Size: 4})
	w := buffer.NewWriter(cp, 4)
	_, err := w.Write([]byte("abcdefghij"))
	require.NoError(t, err)

	chain := w.Flush(true)
	require.Equal(t, 3, chain.NumBlocks())

	chain.Release()
	assert.Equal(t, 3, cp.Returns())
	assert.Equal(t, 3, cp.Cleared(), "per-link clear policy honored")
	assert.True(t, cp.Balanced())

	// Released chain is empty; release again is a no-op.
	assert.Equal(t, 0, chain.Len())
	chain.Release()
	assert.Equal(t, 3, cp.Returns())
}

func TestEmptyChain(t *testing.T) {
	var c buffer.OwnedChain
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.NumBlocks())
	assert.True(t, c.Sequence().IsEmpty())
	c.Release()
}

func TestChainFromBlockPreservesFlag(t *testing.T) {
	cp := fake.NewCountingPool(nil)
	b := buffer.RentBlock(cp, 8, true)
	b.SetLen(3)

	c := buffer.ChainFromBlock(b)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 1, c.NumBlocks())

	c.Release()
	assert.Equal(t, 1, cp.Cleared())
}

func TestChainFromRange(t *testing.T) {
	cp := fake.NewCountingPool(nil)
	b := buffer.RentBlock(cp, 8, false)
	copy(b.Block(), "abcdefgh")

	c := buffer.ChainFromRange(buffer.NewOwnedRange(b, 1, 4))
	assert.True(t, c.Sequence().EqualBytes([]byte("bcd")))
	c.Release()
	assert.True(t, cp.Balanced())
}

func TestEnsureBlock(t *testing.T) {
	cp := fake.NewCountingPool(nil)
	b := buffer.RentBlock(cp, 8, false)
	copy(b.Block(), "abcdefgh")
	b.SetLen(4)

	// Already large enough: untouched.
	before := &b.Block()[0]
	buffer.EnsureBlock(cp, &b, 8, true)
	assert.Equal(t, before, &b.Block()[0])
	assert.Equal(t, 1, cp.Rents())

	// Grow with copy: old data (old length only) survives, old block
	// returns to its pool.
	buffer.EnsureBlock(cp, &b, 32, true)
	assert.GreaterOrEqual(t, len(b.Block()), 32)
	assert.Equal(t, []byte("abcd"), b.Bytes())
	assert.Equal(t, 2, cp.Rents())
	assert.Equal(t, 1, cp.Returns())

	b.Release()
	assert.True(t, cp.Balanced())
}

func TestEnsureBlockFromEmpty(t *testing.T) {
	cp := fake.NewCountingPool(nil)
	var b buffer.OwnedBlock
	buffer.EnsureBlock(cp, &b, 16, false)
	assert.Equal(t, 1, cp.Rents())
	assert.Zero(t, cp.Returns(), "empty sentinel was not returned")

	assert.Panics(t, func() { buffer.EnsureBlock(cp, &b, 0, false) })
	b.Release()
}
