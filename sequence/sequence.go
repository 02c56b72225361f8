// File: sequence/sequence.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package sequence

import "sort"

// Segment describes one block's contribution to a multi-block logical
// sequence, plus its cumulative offset within the whole.
type Segment struct {
	view    []byte
	running int // total length of all prior segments
}

// Bytes returns the segment's borrowed view.
func (s Segment) Bytes() []byte { return s.view }

// Running returns the cumulative element count of all prior segments.
func (s Segment) Running() int { return s.running }

// Sequence is a read-only logical view spanning zero or more segments.
// The zero value is the canonical empty sequence.
//
// Invariant: every segment view is non-empty, and
// running(n+1) == running(n) + len(view(n)) for each adjacent pair.
type Sequence struct {
	segs   []Segment
	length int
}

// Empty is the canonical empty sequence.
var Empty = Sequence{}

// New builds a sequence over the given views without copying any data.
// Empty views are skipped.
func New(views ...[]byte) Sequence {
	var s Sequence
	for _, v := range views {
		if len(v) == 0 {
			continue
		}
		s.segs = append(s.segs, Segment{view: v, running: s.length})
		s.length += len(v)
	}
	return s
}

// Len returns the total number of bytes spanned.
func (s Sequence) Len() int { return s.length }

// IsEmpty reports whether the sequence spans no data.
func (s Sequence) IsEmpty() bool { return s.length == 0 }

// NumSegments returns how many segments back the sequence.
func (s Sequence) NumSegments() int { return len(s.segs) }

// Segments exposes the segment descriptors. The returned slice and the
// views inside it are borrowed; callers must not mutate them.
func (s Sequence) Segments() []Segment { return s.segs }

// locate returns the index of the segment containing pos and the offset of
// pos within it. pos must be in [0, length).
func (s Sequence) locate(pos int) (idx, off int) {
	idx = sort.Search(len(s.segs), func(i int) bool {
		return s.segs[i].running > pos
	}) - 1
	return idx, pos - s.segs[idx].running
}

// At returns the byte at position pos. Panics when pos is out of range.
func (s Sequence) At(pos int) byte {
	if pos < 0 || pos >= s.length {
		panic("sequence: position out of range")
	}
	i, off := s.locate(pos)
	return s.segs[i].view[off]
}

// ViewAt returns the remainder of the segment containing pos, without
// copying. It returns an empty view at or past the end of the sequence.
func (s Sequence) ViewAt(pos int) []byte {
	if pos < 0 {
		panic("sequence: negative position")
	}
	if pos >= s.length {
		return nil
	}
	i, off := s.locate(pos)
	return s.segs[i].view[off:]
}

// Slice returns the zero-copy subsequence [from, to). Both bounds must lie
// in [0, Len()] with from <= to.
func (s Sequence) Slice(from, to int) Sequence {
	if from < 0 || to > s.length || from > to {
		panic("sequence: slice bounds out of range")
	}
	if from == to {
		return Empty
	}
	fi, foff := s.locate(from)
	li, loff := s.locate(to - 1)

	out := Sequence{segs: make([]Segment, 0, li-fi+1)}
	for i := fi; i <= li; i++ {
		v := s.segs[i].view
		if i == li {
			v = v[:loff+1]
		}
		if i == fi {
			v = v[foff:]
		}
		out.segs = append(out.segs, Segment{view: v, running: out.length})
		out.length += len(v)
	}
	return out
}

// CopyTo copies the sequence into dst, returning how many bytes were
// copied (the smaller of Len() and len(dst)).
func (s Sequence) CopyTo(dst []byte) int {
	n := 0
	for _, seg := range s.segs {
		if n == len(dst) {
			break
		}
		n += copy(dst[n:], seg.view)
	}
	return n
}

// AppendTo appends the sequence's bytes to dst.
func (s Sequence) AppendTo(dst []byte) []byte {
	for _, seg := range s.segs {
		dst = append(dst, seg.view...)
	}
	return dst
}

// Bytes returns the sequence contents as one contiguous slice. A
// single-segment sequence returns its view directly (aliasing the backing
// block); otherwise a fresh copy is made.
func (s Sequence) Bytes() []byte {
	if len(s.segs) == 1 {
		return s.segs[0].view
	}
	return s.AppendTo(make([]byte, 0, s.length))
}

// EqualBytes reports whether the sequence content equals b.
func (s Sequence) EqualBytes(b []byte) bool {
	if s.length != len(b) {
		return false
	}
	for _, seg := range s.segs {
		if string(seg.view) != string(b[:len(seg.view)]) {
			return false
		}
		b = b[len(seg.view):]
	}
	return true
}

// Equal reports whether s and other hold the same bytes, regardless of
// how either is segmented.
func (s Sequence) Equal(other Sequence) bool {
	if s.length != other.length {
		return false
	}
	var a, b []byte
	i, j := 0, 0
	for {
		for len(a) == 0 {
			if i == len(s.segs) {
				return true // equal lengths: other is exhausted too
			}
			a = s.segs[i].view
			i++
		}
		for len(b) == 0 {
			b = other.segs[j].view
			j++
		}
		n := len(a)
		if len(b) < n {
			n = len(b)
		}
		if string(a[:n]) != string(b[:n]) {
			return false
		}
		a, b = a[n:], b[n:]
	}
}

// Combine builds one sequence spanning every input without copying data;
// only segment descriptors are allocated. A single non-empty input is
// returned unchanged, and Empty when all inputs are empty.
func Combine(seqs ...Sequence) Sequence {
	nonEmpty := -1
	nonEmptyCount := 0
	segCount := 0
	for i, q := range seqs {
		if q.length == 0 {
			continue
		}
		nonEmpty = i
		nonEmptyCount++
		segCount += len(q.segs)
	}
	if nonEmptyCount == 0 {
		return Empty
	}
	if nonEmptyCount == 1 {
		return seqs[nonEmpty]
	}
	out := Sequence{segs: make([]Segment, 0, segCount)}
	for _, q := range seqs {
		for _, seg := range q.segs {
			out.segs = append(out.segs, Segment{view: seg.view, running: out.length})
			out.length += len(seg.view)
		}
	}
	return out
}
