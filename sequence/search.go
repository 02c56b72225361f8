// File: sequence/search.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Substring search across segment boundaries. A match may begin in one
// segment and complete in the next; the match cursor walks forward through
// segments without ever backtracking into the source. Worst case is
// O(segments × needle length), which is fine for the non-adversarial
// inputs this library targets.

package sequence

import "bytes"

// IndexByte returns the position of the first occurrence of c, or -1.
func (s Sequence) IndexByte(c byte) int {
	for _, seg := range s.segs {
		if i := bytes.IndexByte(seg.view, c); i >= 0 {
			return seg.running + i
		}
	}
	return -1
}

// Index returns the position of the first occurrence of needle, or -1.
// An empty needle matches at position 0.
func (s Sequence) Index(needle []byte) int {
	if len(needle) == 0 {
		return 0
	}
	if s.length < len(needle) {
		return -1
	}
	first := needle[0]
	limit := s.length - len(needle) // last viable start position
	for si := range s.segs {
		seg := s.segs[si].view
		base := s.segs[si].running
		if base > limit {
			return -1
		}
		from := 0
		for {
			i := bytes.IndexByte(seg[from:], first)
			if i < 0 {
				break
			}
			start := from + i
			if base+start > limit {
				return -1
			}
			if s.matchAt(si, start, needle) {
				return base + start
			}
			from = start + 1
		}
	}
	return -1
}

// matchAt checks whether needle matches starting at offset off within
// segment si, continuing into subsequent segments as needed.
func (s Sequence) matchAt(si, off int, needle []byte) bool {
	seg := s.segs[si].view
	pos := off
	k := 0
	for k < len(needle) {
		if pos == len(seg) {
			si++
			if si == len(s.segs) {
				return false
			}
			seg = s.segs[si].view
			pos = 0
		}
		n := len(needle) - k
		if avail := len(seg) - pos; avail < n {
			n = avail
		}
		if !bytes.Equal(seg[pos:pos+n], needle[k:k+n]) {
			return false
		}
		k += n
		pos += n
	}
	return true
}

// StartsWith reports whether the sequence begins with prefix.
func (s Sequence) StartsWith(prefix []byte) bool {
	if len(prefix) == 0 {
		return true
	}
	if s.length < len(prefix) {
		return false
	}
	return s.matchAt(0, 0, prefix)
}

// CutTo returns the zero-copy subsequence up to (excluding) the first
// occurrence of delim, and whether the delimiter was found. When delim is
// absent, the whole sequence is returned with found == false.
func (s Sequence) CutTo(delim []byte) (before Sequence, found bool) {
	i := s.Index(delim)
	if i < 0 {
		return s, false
	}
	return s.Slice(0, i), true
}

// Split returns the zero-copy subsequences separated by sep. A nil or
// empty separator yields the sequence itself as the only element. Adjacent
// separators produce empty subsequences, matching bytes.Split.
func (s Sequence) Split(sep []byte) []Sequence {
	if len(sep) == 0 {
		return []Sequence{s}
	}
	var out []Sequence
	rest := s
	for {
		i := rest.Index(sep)
		if i < 0 {
			return append(out, rest)
		}
		out = append(out, rest.Slice(0, i))
		rest = rest.Slice(i+len(sep), rest.Len())
	}
}
