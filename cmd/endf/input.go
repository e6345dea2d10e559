package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/DataDog/zstd"

	"github.com/dhamidi/endf/endf"
)

const stdinName = "-"

type multiCloser []io.Closer

func (m multiCloser) Close() error {
	var first error
	for i := len(m) - 1; i >= 0; i-- {
		if err := m[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

type readCloser struct {
	io.Reader
	io.Closer
}

// openInput opens path for reading, "-" being standard input. Files ending
// in .zst are decompressed on the fly.
func openInput(path string) (io.ReadCloser, error) {
	if path == stdinName {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	if !strings.HasSuffix(path, ".zst") {
		return f, nil
	}
	zr := zstd.NewReader(f)
	return readCloser{Reader: zr, Closer: multiCloser{f, zr}}, nil
}

// readInput reads all of path into memory, decompressing .zst files.
func readInput(path string) ([]byte, error) {
	var data []byte
	var err error
	if path == stdinName {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if strings.HasSuffix(path, ".zst") {
		if data, err = zstd.Decompress(nil, data); err != nil {
			return nil, fmt.Errorf("decompress %s: %w", path, err)
		}
	}
	return data, nil
}

// decode reads a whole tape, in parallel when more than one worker is
// configured. The partial tape is returned along with a decode error.
func (a *app) decode(path string, extra ...endf.Option) (*endf.Tape, error) {
	opts := append(a.options(path), extra...)
	if a.workers > 1 {
		data, err := readInput(path)
		if err != nil {
			return nil, err
		}
		return endf.DecodeParallel(data, a.workers, opts...)
	}
	r, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return endf.Decode(r, opts...)
}
