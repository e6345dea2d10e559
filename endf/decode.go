package endf

import (
	"fmt"
	"io"
)

// RecordReader decodes the records of one section. A line whose identifiers
// differ from the section's is the section boundary and is never consumed.
type RecordReader struct {
	c      *cursor
	ident  Ident
	prevNS int
	warn   func(*Error) error
}

// NewRecordReader reads records of the section id from r. It is meant for
// tools that decode a single section outside the walker.
func NewRecordReader(r io.Reader, id Ident, opts ...Option) *RecordReader {
	o := newOptions(opts)
	return &RecordReader{c: newCursor(newLineReader(r, o)), ident: id, prevNS: -1}
}

// Ident returns the section the reader is bound to.
func (r *RecordReader) Ident() Ident {
	return r.ident
}

// More reports whether another line of the section follows.
func (r *RecordReader) More() bool {
	l, err := r.c.peek()
	return err == nil && l.Ident == r.ident
}

func (r *RecordReader) line(what string) (*Line, error) {
	l, err := r.c.peek()
	if err == io.EOF {
		return nil, &Error{Kind: UnexpectedEndOfInput, Line: r.c.last, Expected: what, Found: "end of input"}
	}
	if err != nil {
		return nil, err
	}
	if l.Ident != r.ident {
		found := l.Ident.String()
		if s := l.Sentinel(); s != NotSentinel {
			found = s.String()
		}
		return nil, &Error{Kind: UnexpectedEndOfInput, Line: l.Number, Expected: what, Found: found}
	}
	if r.warn != nil {
		if l.NS <= r.prevNS {
			werr := r.warn(&Error{
				Kind:     OutOfOrderSection,
				Line:     l.Number,
				Expected: fmt.Sprintf("sequence number above %d", r.prevNS),
				Found:    fmt.Sprintf("%d", l.NS),
			})
			if werr != nil {
				return nil, werr
			}
		}
		r.prevNS = l.NS
	}
	r.c.advance()
	return l, nil
}

func (r *RecordReader) ReadCont() (*Cont, error) {
	l, err := r.line("CONT record")
	if err != nil {
		return nil, err
	}
	return l.Cont()
}

func (r *RecordReader) ReadText() (*Text, error) {
	l, err := r.line("TEXT record")
	if err != nil {
		return nil, err
	}
	return l.Text(), nil
}

func (r *RecordReader) ReadList() (*List, error) {
	head, err := r.ReadCont()
	if err != nil {
		return nil, err
	}
	if head.N1 < 0 {
		return nil, newError(CountMismatch, head.At, "NPL >= 0", fmt.Sprintf("%d", head.N1))
	}
	n := head.N1
	values := make([]float64, 0, capHint(n))
	s := fieldScanner{r: r, what: "LIST values"}
	for i := 0; i < n; i++ {
		v, err := s.float(i, n)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return &List{Head: *head, Values: values}, nil
}

func (r *RecordReader) ReadTab2() (*Tab2, error) {
	head, err := r.ReadCont()
	if err != nil {
		return nil, err
	}
	if head.N2 < 0 {
		return nil, newError(CountMismatch, head.At, "NZ >= 0", fmt.Sprintf("%d", head.N2))
	}
	regions, err := r.readRegions(head, head.N2)
	if err != nil {
		return nil, err
	}
	return &Tab2{Head: *head, Regions: regions}, nil
}

func (r *RecordReader) ReadTab1() (*Tab1, error) {
	head, err := r.ReadCont()
	if err != nil {
		return nil, err
	}
	np := head.N2
	if np < 0 {
		return nil, newError(CountMismatch, head.At, "NP >= 0", fmt.Sprintf("%d", np))
	}
	regions, err := r.readRegions(head, np)
	if err != nil {
		return nil, err
	}
	t := &Tab1{
		Head:    *head,
		Regions: regions,
		X:       make([]float64, 0, capHint(np)),
		Y:       make([]float64, 0, capHint(np)),
	}
	s := fieldScanner{r: r, what: "TAB1 pairs"}
	for i := 0; i < np; i++ {
		x, err := s.float(2*i, 2*np)
		if err != nil {
			return nil, err
		}
		y, err := s.float(2*i+1, 2*np)
		if err != nil {
			return nil, err
		}
		t.X = append(t.X, x)
		t.Y = append(t.Y, y)
	}
	return t, nil
}

// readRegions reads head.N1 (NBT, law) pairs and checks that the breakpoints
// partition points into contiguous regions ending at total.
func (r *RecordReader) readRegions(head *Cont, total int) ([]Region, error) {
	nr := head.N1
	if nr < 0 {
		return nil, newError(CountMismatch, head.At, "NR >= 0", fmt.Sprintf("%d", nr))
	}
	if nr == 0 && total > 0 {
		return nil, newError(CountMismatch, head.At, "interpolation regions", fmt.Sprintf("NR=0 with %d points", total))
	}
	regions := make([]Region, 0, capHint(nr))
	s := fieldScanner{r: r, what: "interpolation regions"}
	prev := 0
	for i := 0; i < nr; i++ {
		nbt, err := s.int(2*i, 2*nr)
		if err != nil {
			return nil, err
		}
		law, err := s.int(2*i+1, 2*nr)
		if err != nil {
			return nil, err
		}
		if nbt <= prev {
			return nil, newError(CountMismatch, s.l.Number,
				fmt.Sprintf("breakpoint above %d", prev), fmt.Sprintf("%d", nbt))
		}
		if !Law(law).Valid() {
			e := newError(MalformedField, s.l.Number, "interpolation law", fmt.Sprintf("%d", law))
			e.Text = string(s.l.Field(s.f - 1))
			return nil, e
		}
		regions = append(regions, Region{NBT: nbt, Law: Law(law)})
		prev = nbt
	}
	if nr > 0 && prev != total {
		return nil, newError(CountMismatch, head.At,
			fmt.Sprintf("final breakpoint %d", total), fmt.Sprintf("%d", prev))
	}
	return regions, nil
}

// maxPrealloc bounds the capacity reserved from a declared count before the
// data backing it has been read.
const maxPrealloc = FieldsPerLine * 64

func capHint(n int) int {
	return min(n, maxPrealloc)
}

type intgLayout struct {
	width int
	count int
	skip  int
}

// intgLayouts maps NDIGIT to the packing of one INTG row after the two
// five-column indices.
var intgLayouts = map[int]intgLayout{
	2: {width: 3, count: 18, skip: 1},
	3: {width: 4, count: 13, skip: 1},
	4: {width: 5, count: 11, skip: 1},
	5: {width: 6, count: 9, skip: 1},
	6: {width: 7, count: 8, skip: 0},
}

func (r *RecordReader) ReadIntg() (*Intg, error) {
	head, err := r.ReadCont()
	if err != nil {
		return nil, err
	}
	layout, ok := intgLayouts[head.L1]
	if !ok {
		return nil, newError(MalformedField, head.At, "NDIGIT between 2 and 6", fmt.Sprintf("%d", head.L1))
	}
	if head.N1 < 0 {
		return nil, newError(CountMismatch, head.At, "NM >= 0", fmt.Sprintf("%d", head.N1))
	}
	rows := make([]IntgRow, 0, capHint(head.N1))
	for i := 0; i < head.N1; i++ {
		l, err := r.line("INTG row")
		if err != nil {
			return nil, err
		}
		var row IntgRow
		if err := decodeIntgRow(l, layout, &row); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return &Intg{Head: *head, Rows: rows}, nil
}

func decodeIntgRow(l *Line, layout intgLayout, row *IntgRow) error {
	row.At = l.Number
	var err error
	if row.I, err = ParseInt(l.raw[0:5]); err != nil {
		return l.locate(columns(err, 1, 5))
	}
	if row.J, err = ParseInt(l.raw[5:10]); err != nil {
		return l.locate(columns(err, 6, 10))
	}
	row.K = make([]int, layout.count)
	off := 10 + layout.skip
	for k := range row.K {
		from := off + k*layout.width
		if row.K[k], err = ParseInt(l.raw[from : from+layout.width]); err != nil {
			return l.locate(columns(err, from+1, from+layout.width))
		}
	}
	return nil
}

// Read decodes one record of the given kind.
func (r *RecordReader) Read(kind RecordKind) (Record, error) {
	var rec Record
	var err error
	switch kind {
	case KindCont:
		rec, err = r.ReadCont()
	case KindText:
		rec, err = r.ReadText()
	case KindList:
		rec, err = r.ReadList()
	case KindTab1:
		rec, err = r.ReadTab1()
	case KindTab2:
		rec, err = r.ReadTab2()
	case KindIntg:
		rec, err = r.ReadIntg()
	default:
		line := r.c.last + 1
		if l, err := r.c.peek(); err == nil {
			line = l.Number
		}
		return nil, newError(MalformedField, line, "record kind", fmt.Sprintf("%d", int(kind)))
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// fieldScanner walks the data fields of consecutive lines, six per line,
// pulling a new line only once the current one is used up.
type fieldScanner struct {
	r    *RecordReader
	what string
	l    *Line
	f    int
}

func (s *fieldScanner) next() ([]byte, error) {
	if s.l == nil || s.f == FieldsPerLine {
		l, err := s.r.line(s.what)
		if err != nil {
			return nil, err
		}
		s.l = l
		s.f = 0
	}
	b := s.l.Field(s.f)
	s.f++
	return b, nil
}

// missing reports a blank field where the k-th of n declared values belongs.
func (s *fieldScanner) missing(k, n int) error {
	return newError(CountMismatch, s.l.Number,
		fmt.Sprintf("%d %s", n, s.what), fmt.Sprintf("%d", k))
}

func (s *fieldScanner) float(k, n int) (float64, error) {
	b, err := s.next()
	if err != nil {
		return 0, err
	}
	if isBlank(b) {
		return 0, s.missing(k, n)
	}
	v, err := ParseFloat(b)
	if err != nil {
		return 0, s.l.locate(columns(err, (s.f-1)*FieldWidth+1, s.f*FieldWidth))
	}
	return v, nil
}

func (s *fieldScanner) int(k, n int) (int, error) {
	b, err := s.next()
	if err != nil {
		return 0, err
	}
	if isBlank(b) {
		return 0, s.missing(k, n)
	}
	v, err := ParseInt(b)
	if err != nil {
		return 0, s.l.locate(columns(err, (s.f-1)*FieldWidth+1, s.f*FieldWidth))
	}
	return v, nil
}
