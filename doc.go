// Package snappy implements the Snappy raw block compression format: a
// lossy-dictionary LZ77-family codec optimized for speed over ratio.
//
// The format is a varint-encoded uncompressed length followed by a sequence
// of literal and copy tags (see the package-level constants in format.go for
// the tag layout). This package implements only the raw block format — no
// framing, chunk checksums, or streaming multi-chunk layout.
//
// # Compress
//
//	out := snappy.Encode(nil, data)
//
// Encode returns a newly allocated (or dst-reusing) slice holding the
// compressed block. For streaming sources with a known length (Options may
// be nil, which defaults to BlockSize 65535, MaxChainLen 3):
//
//	err := snappy.Compress(w, snappy.NewSliceSource(data), nil)
//
// # Decompress
//
//	out, err := snappy.Decode(nil, compressed)
//
// To decode from an io.Reader into a Sink:
//
//	err := snappy.Decompress(sink, bytes.NewReader(compressed))
package snappy
