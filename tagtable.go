package snappy

// tagSize maps a tag's first byte to the total number of bytes the tag
// occupies in the compressed stream (the first byte plus any length/offset
// bytes that follow), but NOT counting a literal tag's payload bytes.
//
// Literal tags (kind 00) carry 0 extra bytes when the 6-bit length field is
// under 60, otherwise (n-59) extra little-endian length bytes; copy-1
// carries 1 extra byte; copy-2 carries 2; copy-4 carries 4.
var tagSize = func() [256]uint8 {
	var t [256]uint8
	for c := 0; c < 256; c++ {
		kind := c & 0x03
		switch kind {
		case tagLiteral:
			n := c >> 2
			if n < 60 {
				t[c] = 1
			} else {
				t[c] = uint8(1 + (n - 59))
			}
		case tagCopy1:
			t[c] = 2
		case tagCopy2:
			t[c] = 3
		case tagCopy4:
			t[c] = 5
		}
	}
	return t
}()
