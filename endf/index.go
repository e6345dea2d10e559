package endf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Extent locates a scope of the tape: its identifiers, the 1-based numbers
// of its first and last lines (the last being its end record when present)
// and its byte range.
type Extent struct {
	Ident
	FirstLine int
	LastLine  int
	Offset    int64
	Length    int64
}

type FileExtent struct {
	Extent
	Sections []Extent
}

type MaterialExtent struct {
	Extent
	Files []FileExtent
}

// Index is the result of the sentinel pre-pass over a tape.
type Index struct {
	Materials  []MaterialExtent
	Lines      int
	Terminated bool
}

// BuildIndex scans the identifier columns of every line and records where
// each material, file and section starts and ends. Record contents are not
// decoded, so the pass is much cheaper than Decode; structural validation is
// left to the decoder.
func BuildIndex(r io.Reader, opts ...Option) (*Index, error) {
	o := newOptions(opts)
	br := bufio.NewReaderSize(r, 64*1024)
	idx := &Index{}

	var (
		mat                 MaterialExtent
		file                FileExtent
		sec                 Extent
		inMat, inFile, inSec bool
	)
	open := func(id Ident, number int, off int64) Extent {
		return Extent{Ident: id, FirstLine: number, Offset: off}
	}
	extend := func(e *Extent, number int, end int64) {
		e.LastLine = number
		e.Length = end - e.Offset
	}
	closeSection := func() {
		if inSec {
			file.Sections = append(file.Sections, sec)
			inSec = false
		}
	}
	closeFile := func() {
		closeSection()
		if inFile {
			mat.Files = append(mat.Files, file)
			inFile = false
		}
	}
	closeMaterial := func() {
		closeFile()
		if inMat {
			idx.Materials = append(idx.Materials, mat)
			inMat = false
		}
	}

	var raw [LineWidth]byte
	var off int64
	number := o.startLine
	for {
		b, err := br.ReadSlice('\n')
		if errors.Is(err, bufio.ErrBufferFull) {
			return idx, fmt.Errorf("index line %d: line too long", number)
		}
		if err != nil && err != io.EOF {
			return idx, fmt.Errorf("index line %d: %w", number, err)
		}
		if len(b) == 0 && err == io.EOF {
			break
		}
		end := off + int64(len(b))
		line := b
		if n := len(line); n > 0 && line[n-1] == '\n' {
			line = line[:n-1]
		}
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
		if len(line) < LineWidth && o.strictColumns {
			return idx, &Error{Kind: TruncatedLine, File: o.file, Line: number,
				Expected: fmt.Sprintf("%d columns", LineWidth), Found: fmt.Sprintf("%d columns", len(line))}
		}
		k := copy(raw[:], line)
		for i := k; i < LineWidth; i++ {
			raw[i] = ' '
		}
		id, _, ierr := decodeIdent(&raw)
		if ierr != nil {
			if e, ok := ierr.(*Error); ok {
				e.Line = number
				e.File = o.file
			}
			return idx, ierr
		}

		switch id.Sentinel() {
		case NotSentinel:
			if !inMat {
				mat = MaterialExtent{Extent: open(Ident{MAT: id.MAT}, number, off)}
				inMat = true
			}
			if !inFile {
				file = FileExtent{Extent: open(Ident{MAT: id.MAT, MF: id.MF}, number, off)}
				inFile = true
			}
			if !inSec {
				sec = open(id, number, off)
				inSec = true
			}
		case TapeEnd:
			closeMaterial()
			idx.Lines = number - o.startLine + 1
			idx.Terminated = true
			return idx, nil
		}

		if inSec {
			extend(&sec, number, end)
		}
		if inFile {
			extend(&file.Extent, number, end)
		}
		if inMat {
			extend(&mat.Extent, number, end)
		}

		switch id.Sentinel() {
		case SectionEnd:
			closeSection()
		case FileEnd:
			closeFile()
		case MaterialEnd:
			closeMaterial()
		}

		off = end
		number++
		if err == io.EOF {
			break
		}
	}
	closeMaterial()
	idx.Lines = number - o.startLine
	return idx, nil
}
