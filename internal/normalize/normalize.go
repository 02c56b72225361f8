// File: internal/normalize/normalize.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Length normalization routines shared by the pool implementations.
// Ensures every allocation request is validated and rounded before a
// size-class lookup, so class tables never see negative or pathological
// lengths.

package normalize

// Length clamps a requested length to [floor, ∞). Negative and zero
// requests normalize to the floor.
func Length(requested, floor int) int {
	if requested < floor {
		return floor
	}
	return requested
}

// CeilPow2 rounds n up to the next power of two. Values below 1 round to 1.
// Inputs beyond 2^62 saturate rather than overflow.
func CeilPow2(n int) int {
	if n <= 1 {
		return 1
	}
	const maxShift = 62
	v := 1
	for s := 0; s < maxShift && v < n; s++ {
		v <<= 1
	}
	return v
}

// Classes sorts, de-duplicates and drops non-positive entries from a size
// class table. A nil or emptied table yields nil so callers can fall back
// to their defaults.
func Classes(sizes []int) []int {
	if len(sizes) == 0 {
		return nil
	}
	out := make([]int, 0, len(sizes))
	for _, s := range sizes {
		if s <= 0 {
			continue
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil
	}
	// Class tables are tiny; insertion sort.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	dedup := out[:1]
	for _, s := range out[1:] {
		if s != dedup[len(dedup)-1] {
			dedup = append(dedup, s)
		}
	}
	return dedup
}
