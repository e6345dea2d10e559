package endf

import (
	"bufio"
	"fmt"
	"io"
)

// LineReader turns a byte stream into decoded lines.
type LineReader struct {
	sc     *bufio.Scanner
	number int
	strict bool
}

func NewLineReader(r io.Reader, opts ...Option) *LineReader {
	return newLineReader(r, newOptions(opts))
}

func newLineReader(r io.Reader, o *options) *LineReader {
	return &LineReader{
		sc:     bufio.NewScanner(r),
		number: o.startLine,
		strict: o.strictColumns,
	}
}

// Next returns the next line, or io.EOF once the input is exhausted.
func (r *LineReader) Next() (Line, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return Line{}, fmt.Errorf("read line %d: %w", r.number, err)
		}
		return Line{}, io.EOF
	}
	n := r.number
	r.number++
	return DecodeLine(r.sc.Bytes(), n, r.strict)
}

// cursor gives the walker and record reader one line of lookahead.
type cursor struct {
	lr     *LineReader
	line   Line
	err    error
	peeked bool
	last   int
}

func newCursor(lr *LineReader) *cursor {
	return &cursor{lr: lr, last: lr.number - 1}
}

// peek returns the next line without consuming it. The returned line is
// overwritten by the next peek after advance.
func (c *cursor) peek() (*Line, error) {
	if !c.peeked {
		c.line, c.err = c.lr.Next()
		c.peeked = true
	}
	if c.err != nil {
		return nil, c.err
	}
	return &c.line, nil
}

func (c *cursor) advance() {
	if c.peeked && c.err == nil {
		c.last = c.line.Number
		c.peeked = false
	}
}
