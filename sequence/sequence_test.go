package sequence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/segbuf/sequence"
)

func TestNewSkipsEmptyViews(t *testing.T) {
	s := sequence.New([]byte("ab"), nil, []byte(""), []byte("cd"))
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 2, s.NumSegments())
	assert.True(t, s.EqualBytes([]byte("abcd")))
}

func TestEmptySequence(t *testing.T) {
	var s sequence.Sequence
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())
	assert.Nil(t, s.ViewAt(0))
	assert.Equal(t, 0, s.CopyTo(make([]byte, 4)))
}

func TestRunningIndexInvariant(t *testing.T) {
	s := sequence.New([]byte("ab"), []byte("cde"), []byte("f"))
	segs := s.Segments()
	require.Len(t, segs, 3)
	for i := 1; i < len(segs); i++ {
		assert.Equal(t, segs[i-1].Running()+len(segs[i-1].Bytes()), segs[i].Running())
	}
}

func TestAtAcrossSegments(t *testing.T) {
	s := sequence.New([]byte("ab"), []byte("cde"), []byte("f"))
	want := "abcdef"
	for i := 0; i < s.Len(); i++ {
		assert.Equal(t, want[i], s.At(i), "position %d", i)
	}
	assert.Panics(t, func() { s.At(6) })
	assert.Panics(t, func() { s.At(-1) })
}

func TestViewAt(t *testing.T) {
	s := sequence.New([]byte("ab"), []byte("cde"))
	assert.Equal(t, []byte("ab"), s.ViewAt(0))
	assert.Equal(t, []byte("b"), s.ViewAt(1))
	assert.Equal(t, []byte("cde"), s.ViewAt(2))
	assert.Equal(t, []byte("e"), s.ViewAt(4))
	assert.Nil(t, s.ViewAt(5))
}

func TestSlice(t *testing.T) {
	s := sequence.New([]byte("abc"), []byte("def"), []byte("ghi"))
	sub := s.Slice(2, 7)
	assert.Equal(t, 5, sub.Len())
	assert.True(t, sub.EqualBytes([]byte("cdefg")))
	// Zero-copy: the subsequence's first view aliases the source block.
	require.NotEmpty(t, sub.Segments())
	assert.Equal(t, &s.Segments()[0].Bytes()[2], &sub.Segments()[0].Bytes()[0])

	assert.True(t, s.Slice(3, 3).IsEmpty())
	assert.Panics(t, func() { s.Slice(-1, 2) })
	assert.Panics(t, func() { s.Slice(5, 4) })
	assert.Panics(t, func() { s.Slice(0, 10) })
}

func TestBytesSingleSegmentAliases(t *testing.T) {
	block := []byte("hello")
	s := sequence.New(block)
	assert.Equal(t, &block[0], &s.Bytes()[0])

	multi := sequence.New([]byte("he"), []byte("llo"))
	b := multi.Bytes()
	assert.Equal(t, []byte("hello"), b)
	assert.NotSame(t, &multi.Segments()[0].Bytes()[0], &b[0])
}

func TestEqualIgnoresSegmentation(t *testing.T) {
	a := sequence.New([]byte("ab"), []byte("cde"), []byte("f"))
	b := sequence.New([]byte("abcd"), []byte("ef"))
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.True(t, a.Equal(a))
	assert.True(t, sequence.Empty.Equal(sequence.New()))

	assert.False(t, a.Equal(sequence.New([]byte("abcdeX"))))
	assert.False(t, a.Equal(sequence.New([]byte("abcde"))), "shorter content")
	assert.False(t, sequence.Empty.Equal(a))
}

func TestCombine(t *testing.T) {
	a := sequence.New([]byte("ab"), []byte("c"))
	b := sequence.New([]byte("de"))

	all := sequence.Combine(a, b)
	assert.Equal(t, 5, all.Len())
	assert.Equal(t, 3, all.NumSegments())
	assert.True(t, all.EqualBytes([]byte("abcde")))
	// No data was copied: segment views alias the inputs.
	assert.Equal(t, &a.Segments()[0].Bytes()[0], &all.Segments()[0].Bytes()[0])
	assert.Equal(t, &b.Segments()[0].Bytes()[0], &all.Segments()[2].Bytes()[0])

	// Single non-empty input comes back unchanged, not wrapped.
	only := sequence.Combine(sequence.Empty, a, sequence.Empty)
	assert.Equal(t, a, only)

	assert.True(t, sequence.Combine(sequence.Empty, sequence.Empty).IsEmpty())
	assert.True(t, sequence.Combine().IsEmpty())
}

func TestAppendTo(t *testing.T) {
	s := sequence.New([]byte("ab"), []byte("cd"))
	out := s.AppendTo([]byte("x:"))
	assert.Equal(t, []byte("x:abcd"), out)
}
