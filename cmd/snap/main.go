// Command snap compresses or decompresses a Snappy raw block, reading from
// the file argument if one is given (stdin otherwise) and writing to stdout.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/synpkg/snappy"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "snap:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("snap", flag.ContinueOnError)
	decompress := fs.Bool("d", false, "decompress instead of compress")
	fs.BoolVar(decompress, "decompress", false, "decompress instead of compress")
	blockSizeKB := fs.Int("block-size", 64, "compression block size, in KiB")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *blockSizeKB < 1 || *blockSizeKB > 64 {
		return fmt.Errorf("block size %dKiB out of range (1..64)", *blockSizeKB)
	}
	blockSize := *blockSizeKB * 1024
	if blockSize > snappy.MaxBlockSize {
		blockSize = snappy.MaxBlockSize
	}

	var in io.Reader = os.Stdin
	var out io.Writer = os.Stdout

	var file *os.File
	rest := fs.Args()
	if len(rest) > 0 {
		f, err := os.Open(rest[0])
		if err != nil {
			return err
		}
		defer f.Close()
		file = f
		in = f
	}

	if *decompress {
		sink := snappy.NewSink()
		if err := snappy.Decompress(sink, in); err != nil {
			return err
		}
		_, err := out.Write(sink.Bytes())
		return err
	}

	opts := &snappy.Options{BlockSize: blockSize}
	var src snappy.Source
	if file != nil {
		s, err := snappy.NewFileSource(file)
		if err != nil {
			return err
		}
		src = s
	} else {
		data, err := io.ReadAll(in)
		if err != nil {
			return err
		}
		src = snappy.NewSliceSource(data)
	}
	return snappy.Compress(out, src, opts)
}
