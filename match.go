package snappy

import "math/bits"

// commonPrefixLength returns the number of leading bytes that match between
// a[aStart:] and a[bStart:], capped at maxMatchLen. Callers only invoke this
// once the first minMatchLen bytes are already known to be equal (the
// dictionary only returns candidates with an identical 4-byte prefix), so
// the scan starts at offset 4 rather than 0.
//
// Comparisons proceed 8 bytes at a time: XOR the two words and use a
// trailing-zero-bits scan to find the first differing byte in O(1) rather
// than a byte loop, falling back to a final partial-word compare for the
// tail.
func commonPrefixLength(a []byte, aStart, bStart int) int {
	limit := len(a) - aStart
	if r := len(a) - bStart; r < limit {
		limit = r
	}
	if limit > maxMatchLen {
		limit = maxMatchLen
	}

	n := minMatchLen
	for n+8 <= limit {
		x := loadLE64(a, aStart+n) ^ loadLE64(a, bStart+n)
		if x != 0 {
			return n + bits.TrailingZeros64(x)/8
		}
		n += 8
	}
	for n < limit {
		if a[aStart+n] != a[bStart+n] {
			return n
		}
		n++
	}
	return limit
}
