// File: sequence/checksum.go
// Author: momentics <momentics@gmail.com>
//
// Scalar Adler-32 over a logical sequence, processed segment by segment.
// This is the reference implementation; any accelerated path must produce
// bit-identical results for all inputs.

package sequence

const (
	adlerMod = 65521
	// adlerNMax is the largest n such that
	// 255*n*(n+1)/2 + (n+1)*(adlerMod-1) fits in 32 bits.
	adlerNMax = 5552
)

// Adler32 is a resumable Adler-32 digest.
type Adler32 struct {
	a, b uint32
}

// NewAdler32 returns a digest in its initial state.
func NewAdler32() *Adler32 {
	return &Adler32{a: 1}
}

// Reset restores the initial state.
func (d *Adler32) Reset() {
	d.a, d.b = 1, 0
}

// Update feeds a view into the digest.
func (d *Adler32) Update(view []byte) {
	a, b := d.a, d.b
	for len(view) > 0 {
		chunk := view
		if len(chunk) > adlerNMax {
			chunk = chunk[:adlerNMax]
		}
		for _, c := range chunk {
			a += uint32(c)
			b += a
		}
		a %= adlerMod
		b %= adlerMod
		view = view[len(chunk):]
	}
	d.a, d.b = a, b
}

// Sum32 returns the current checksum.
func (d *Adler32) Sum32() uint32 {
	return d.b<<16 | d.a
}

// Checksum computes the Adler-32 checksum of the whole sequence.
func Checksum(s Sequence) uint32 {
	d := NewAdler32()
	for _, seg := range s.segs {
		d.Update(seg.view)
	}
	return d.Sum32()
}
