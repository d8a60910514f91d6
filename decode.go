package snappy

import (
	"bufio"
	"bytes"
	"io"
)

// Decode decompresses src, appending the result to dst and returning the
// extended slice.
func Decode(dst, src []byte) ([]byte, error) {
	sink := &Sink{buf: dst, base: len(dst)}
	if err := Decompress(sink, bytes.NewReader(src)); err != nil {
		return nil, err
	}
	return sink.buf, nil
}

// Decompress reads a varint uncompressed-length header followed by a tag
// stream from r and writes the decompressed bytes to sink.
func Decompress(sink *Sink, r io.Reader) error {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReaderSize(r, 4096)
	}

	length, err := readUncompressedLength(br)
	if err != nil {
		return err
	}
	sink.SetUncompressedLength(length)
	start := sink.Len()

	d := &decodeState{r: br}
	for {
		tag, ok, err := d.nextTag()
		if err != nil {
			return err
		}
		if !ok {
			if sink.Len()-start != int(length) {
				return ErrCorrupt
			}
			return nil
		}

		kind := tag & 0x03
		trailing := int(tagSize[tag]) - 1
		if kind == tagLiteral {
			n := int(tag>>2) + 1
			if trailing > 0 {
				lenBytes, err := d.readTagBytes(trailing)
				if err != nil {
					return err
				}
				v, _, ok := getFixedLE(lenBytes)
				if !ok {
					return ErrCorrupt
				}
				n = int(v) + 1
			}
			if err := d.streamLiteral(sink, n); err != nil {
				return err
			}
			continue
		}

		body, err := d.readTagBytes(trailing)
		if err != nil {
			return err
		}
		var length int
		var offset uint32
		switch kind {
		case tagCopy1:
			length = 4 + int((tag&0x1c)>>2)
			offset = (uint32(tag&0xe0) << 3) | uint32(body[0])
		case tagCopy2:
			length = int(tag>>2) + 1
			offset = uint32(getLE16(body))
		case tagCopy4:
			length = int(tag>>2) + 1
			offset = getLE32(body)
		}
		if offset == 0 {
			return ErrZeroOffset
		}
		if err := sink.WriteFromSelf(offset, length); err != nil {
			return err
		}
	}
}

// readUncompressedLength decodes the varint header from the first bytes of
// r. Unlike the tag stream, the header is read byte-at-a-time rather than
// via the tag-size table, since its width is only known once a byte
// without the continuation bit arrives.
func readUncompressedLength(br *bufio.Reader) (uint32, error) {
	var tmp [maxVarintLen]byte
	n := 0
	for n < maxVarintLen {
		b, err := br.ReadByte()
		if err != nil {
			if err == io.EOF && n > 0 {
				break
			}
			return 0, ErrCorrupt
		}
		tmp[n] = b
		n++
		if b < 0x80 {
			break
		}
	}
	v, consumed, ok := getUvarint(tmp[:n])
	if !ok || consumed != n {
		return 0, ErrCorrupt
	}
	return v, nil
}

// getFixedLE decodes a little-endian fixed-width length field (the 1-4
// extra bytes following an extended literal tag), which is simpler than the
// general varint: every byte contributes, none carry a continuation bit,
// and the value is just the bytes read as LE.
func getFixedLE(b []byte) (uint32, int, bool) {
	if len(b) == 0 || len(b) > 4 {
		return 0, 0, false
	}
	var v uint32
	for i, c := range b {
		v |= uint32(c) << (8 * uint(i))
	}
	return v, len(b), true
}

// decodeState wraps the buffered reader with the scratch-buffer tag
// assembly needed when a tag's bytes straddle two underlying Read calls.
type decodeState struct {
	r *bufio.Reader
	// tmp holds a tag's trailing length/offset bytes (at most 4) so
	// per-tag reads never allocate.
	tmp [maxVarintLen]byte
}

// nextTag returns the next tag byte without consuming the bytes that follow
// it (those are read via readTagBytes once the caller knows how many
// it needs). ok is false at a clean end of stream (no more tags).
func (d *decodeState) nextTag() (byte, bool, error) {
	b, err := d.r.Peek(1)
	if err != nil {
		if err == io.EOF {
			return 0, false, nil
		}
		return 0, false, ErrCorrupt
	}
	tag := b[0]
	if _, err := d.r.Discard(1); err != nil {
		return 0, false, ErrCorrupt
	}
	return tag, true, nil
}

// readTagBytes reads the n (1..4) length or offset bytes that follow a tag
// byte into the scratch buffer, returning ErrCorrupt on a short read
// instead of io.EOF so every caller reports the same truncated-stream
// condition.
func (d *decodeState) readTagBytes(n int) ([]byte, error) {
	if _, err := io.ReadFull(d.r, d.tmp[:n]); err != nil {
		return nil, ErrCorrupt
	}
	return d.tmp[:n], nil
}

// streamLiteral copies n literal bytes from the reader to sink, spanning
// buffer refills without materializing the whole run: each iteration peeks
// whatever is buffered, writes it through, and discards it. A short stream
// surfaces as ErrCorrupt when the reader runs dry mid-literal.
func (d *decodeState) streamLiteral(sink *Sink, n int) error {
	for n > 0 {
		if _, err := d.r.Peek(1); err != nil {
			return ErrCorrupt
		}
		chunk := d.r.Buffered()
		if chunk > n {
			chunk = n
		}
		b, err := d.r.Peek(chunk)
		if err != nil {
			return ErrCorrupt
		}
		if _, err := sink.Write(b); err != nil {
			return err
		}
		if _, err := d.r.Discard(chunk); err != nil {
			return ErrCorrupt
		}
		n -= chunk
	}
	return nil
}
