// File: sequence/codec.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Encode/decode between byte sequences and text, segment by segment.
// The transformer is fed each segment in turn; a multi-byte unit split
// across a segment boundary is carried over and resumed with the next
// segment's leading bytes, then the transformer is flushed once at the end.

package sequence

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// transformBuf is the scratch window handed to a transformer per step.
const transformBuf = 4096

// runTransform drives t over every segment of s, carrying unconsumed
// bytes across segment boundaries.
func runTransform(s Sequence, t transform.Transformer) ([]byte, error) {
	t.Reset()
	out := make([]byte, 0, s.length)
	scratch := make([]byte, transformBuf)
	var carry []byte

	for i := 0; i <= len(s.segs); i++ {
		atEOF := i == len(s.segs)
		var src []byte
		if !atEOF {
			src = s.segs[i].view
		}
		if len(carry) > 0 {
			src = append(carry, src...)
			carry = nil
		}
		for {
			nDst, nSrc, err := t.Transform(scratch, src, atEOF)
			out = append(out, scratch[:nDst]...)
			src = src[nSrc:]
			if err == nil {
				if len(src) == 0 {
					break
				}
				continue
			}
			if err == transform.ErrShortDst {
				continue
			}
			if err == transform.ErrShortSrc && !atEOF {
				// Partial unit at the segment boundary: resume with
				// the next segment's leading bytes.
				carry = append(carry, src...)
				break
			}
			return nil, err
		}
	}
	return out, nil
}

// DecodeText decodes the byte sequence into a string using enc's decoder.
func DecodeText(s Sequence, enc encoding.Encoding) (string, error) {
	out, err := runTransform(s, enc.NewDecoder())
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// EncodeText encodes the UTF-8 byte sequence into enc's byte form,
// returned as a fresh single-segment sequence.
func EncodeText(s Sequence, enc encoding.Encoding) (Sequence, error) {
	out, err := runTransform(s, enc.NewEncoder())
	if err != nil {
		return Empty, err
	}
	return New(out), nil
}
