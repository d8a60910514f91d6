package snappy

import (
	"io"
	"os"
)

// Source is an io.Reader that also knows how many unread bytes remain,
// letting Compress write the uncompressed-length varint header before it
// has read a single byte.
type Source interface {
	io.Reader

	// Available returns the number of bytes not yet read from the
	// source. Implementations that cannot know this in advance (a pipe,
	// a network stream) are not valid Sources for Compress, which needs
	// the total length up front to emit the header.
	Available() (uint64, error)
}

// sliceSource adapts an in-memory byte slice to Source.
type sliceSource struct {
	b   []byte
	pos int
}

// NewSliceSource returns a Source that reads b from the beginning.
func NewSliceSource(b []byte) Source {
	return &sliceSource{b: b}
}

func (s *sliceSource) Read(p []byte) (int, error) {
	if s.pos >= len(s.b) {
		return 0, io.EOF
	}
	n := copy(p, s.b[s.pos:])
	s.pos += n
	return n, nil
}

func (s *sliceSource) Available() (uint64, error) {
	return uint64(len(s.b) - s.pos), nil
}

// fileSource adapts an *os.File to Source using its size as reported by
// Stat.
type fileSource struct {
	f    *os.File
	size int64
	read int64
}

// NewFileSource returns a Source backed by f, using the file's current size
// (via Stat) as the reported Available length. f's current read offset is
// used as the starting point.
func NewFileSource(f *os.File) (Source, error) {
	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	pos, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	return &fileSource{f: f, size: fi.Size(), read: pos}, nil
}

func (s *fileSource) Read(p []byte) (int, error) {
	n, err := s.f.Read(p)
	s.read += int64(n)
	return n, err
}

func (s *fileSource) Available() (uint64, error) {
	remaining := s.size - s.read
	if remaining < 0 {
		remaining = 0
	}
	return uint64(remaining), nil
}
