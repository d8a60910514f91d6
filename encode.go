package snappy

import (
	"fmt"
	"io"
)

// Encode compresses src and appends the result to dst, returning the
// extended slice. If dst has enough spare capacity it is reused; otherwise
// a new slice is allocated. Encode uses DefaultOptions().
func Encode(dst, src []byte) []byte {
	maxLen := MaxEncodedLen(len(src))
	if maxLen < 0 {
		maxLen = len(src) + len(src)/6 + 32
	}
	var buf []byte
	if cap(dst)-len(dst) >= maxLen {
		buf = dst[len(dst) : len(dst) : len(dst)+maxLen]
	} else {
		buf = make([]byte, 0, maxLen)
	}
	w := &sliceWriter{buf: buf}
	if err := Compress(w, NewSliceSource(src), nil); err != nil {
		// Encode's contract is infallible for in-memory slices; the only
		// failure modes of Compress are I/O errors from Source/Writer,
		// and NewSliceSource/sliceWriter never produce one.
		panic(fmt.Errorf("%w: %v", ErrInternal, err))
	}
	return append(dst, w.buf...)
}

// sliceWriter is an io.Writer over a pre-sized byte slice, used so Encode
// can avoid a second allocation when appending the compressed block.
type sliceWriter struct {
	buf []byte
}

func (w *sliceWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	return len(p), nil
}

// Compress reads all of src's remaining bytes and writes a compressed
// Snappy raw block to w: a varint uncompressed-length header followed by
// one block's worth of tags per Options.BlockSize chunk of input. opts may
// be nil for DefaultOptions().
func Compress(w io.Writer, src Source, opts *Options) error {
	o, err := opts.normalize()
	if err != nil {
		return err
	}

	avail, err := src.Available()
	if err != nil {
		return err
	}
	if avail > 0xffffffff {
		return ErrTooLarge
	}

	var hdr [maxVarintLen]byte
	n := putUvarint(hdr[:], uint32(avail))
	if _, err := w.Write(hdr[:n]); err != nil {
		return err
	}

	// The dictionary is sized for the data it will actually index: a
	// short input never fills a whole block, so its table shrinks with it.
	dictSize := o.BlockSize
	if uint64(dictSize) > avail {
		dictSize = int(avail)
	}
	dict := acquireDictionary(dictSize, o.MaxChainLen)
	defer releaseDictionary(dict)
	chunk := make([]byte, o.BlockSize)
	remaining := avail

	for remaining > 0 {
		want := o.BlockSize
		if uint64(want) > remaining {
			want = int(remaining)
		}
		nRead, rerr := io.ReadFull(src, chunk[:want])
		if rerr != nil && rerr != io.ErrUnexpectedEOF {
			return rerr
		}
		block := chunk[:nRead]
		out, cerr := compressBlock(nil, block, dict)
		if cerr != nil {
			return cerr
		}
		if _, err := w.Write(out); err != nil {
			return err
		}
		remaining -= uint64(nRead)
		if remaining > 0 {
			dict.reset()
		}
	}
	return nil
}

// compressBlock appends the tag stream for one block to dst and returns it.
// It is the core LZ77-family parse loop: advance through block looking up
// each position's 4-byte prefix in dict, extend the best candidate into a
// match with commonPrefixLength, and emit either a literal run or a copy.
func compressBlock(dst []byte, block []byte, dict *dictionary) ([]byte, error) {
	if len(block) == 0 {
		return dst, nil
	}

	litStart := 0
	i := 0
	limit := len(block) - minMatchLen
	// blockMargin keeps 4-byte prefix reads in findBestMatchOrAdd and
	// 8-byte word reads in commonPrefixLength from running past the end
	// of block for short trailing runs; once within blockMargin of the
	// end we stop looking for new matches and flush the remainder as a
	// literal.
	if limit > len(block)-blockMargin {
		limit = len(block) - blockMargin
	}

	for i < limit && limit >= 0 {
		candidates, found := dict.findBestMatchOrAdd(block, i)
		if !found {
			i++
			continue
		}

		bestLen := 0
		bestPos := -1
		for k := 0; k < candidates.n; k++ {
			pos := int(candidates.pos[k])
			l := commonPrefixLength(block, pos, i)
			if l > bestLen {
				bestLen = l
				bestPos = pos
			}
		}
		if bestLen < minMatchLen {
			i++
			continue
		}

		if i > litStart {
			dst = emitLiteral(dst, block[litStart:i])
		}
		offset := i - bestPos
		dst = emitCopy(dst, offset, bestLen)
		i += bestLen
		litStart = i
	}

	if litStart < len(block) {
		dst = emitLiteral(dst, block[litStart:])
	}
	return dst, nil
}

// emitLiteral appends a literal tag plus lit's raw bytes to dst.
//
// Tags with length-1 < 60 use a single tag byte carrying the length
// directly; longer runs use a tag byte encoding (59+byteCount) followed by
// byteCount little-endian length bytes, using the fewest bytes that hold
// length-1.
func emitLiteral(dst []byte, lit []byte) []byte {
	n := len(lit)
	if n == 0 {
		return dst
	}
	x := uint32(n - 1)
	switch {
	case x < 60:
		dst = append(dst, byte(x<<2)|tagLiteral)
	case x < 1<<8:
		dst = append(dst, byte(60<<2)|tagLiteral, byte(x))
	case x < 1<<16:
		var b [2]byte
		putLE16(b[:], uint16(x))
		dst = append(dst, byte(61<<2)|tagLiteral)
		dst = append(dst, b[:]...)
	case x < 1<<24:
		dst = append(dst, byte(62<<2)|tagLiteral, byte(x), byte(x>>8), byte(x>>16))
	default:
		var b [4]byte
		putLE32(b[:], x)
		dst = append(dst, byte(63<<2)|tagLiteral)
		dst = append(dst, b[:]...)
	}
	return append(dst, lit...)
}

// emitCopy appends one or more copy tags encoding a back-reference of the
// given offset and total length, splitting runs longer than maxMatchLen
// into multiple tags. A single commonPrefixLength result never exceeds
// maxMatchLen, but a caller composing matches across block boundaries may
// pass longer lengths. A length in (64, 67] splits as 60 plus the
// remainder so the final tag still carries at least minMatchLen bytes.
func emitCopy(dst []byte, offset, length int) []byte {
	for length >= 68 {
		dst = emitCopyTag(dst, offset, 64)
		length -= 64
	}
	if length > 64 {
		dst = emitCopyTag(dst, offset, 60)
		length -= 60
	}
	return emitCopyTag(dst, offset, length)
}

// emitCopyTag appends a single copy tag (offset, length) with length<=64,
// choosing the narrowest tag class the offset fits in: copy-1 for short
// offsets and short lengths, copy-2 up to a 16-bit offset, copy-4 beyond
// that.
func emitCopyTag(dst []byte, offset, length int) []byte {
	if length <= maxLenCopy1 && offset < maxOffsetCopy1 {
		tag := byte((length-4)<<2) | tagCopy1 | byte((offset>>8)<<5)
		return append(dst, tag, byte(offset))
	}
	if offset <= maxOffsetCopy2 {
		return emitCopy2(dst, offset, length)
	}
	tag := byte((length-1)<<2) | tagCopy4
	var b [4]byte
	putLE32(b[:], uint32(offset))
	dst = append(dst, tag)
	return append(dst, b[:]...)
}

// emitCopy2 appends a single copy-2 tag: 1-byte tag carrying (length-1) in
// its upper 6 bits, followed by a little-endian 16-bit offset.
func emitCopy2(dst []byte, offset, length int) []byte {
	tag := byte((length-1)<<2) | tagCopy2
	var b [2]byte
	putLE16(b[:], uint16(offset))
	dst = append(dst, tag)
	return append(dst, b[:]...)
}
