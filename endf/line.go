package endf

import (
	"fmt"
)

const (
	LineWidth     = 80
	DataWidth     = 66
	FieldsPerLine = 6
)

// Ident is the (MAT, MF, MT) triple carried in columns 67-75 of every line.
type Ident struct {
	MAT int
	MF  int
	MT  int
}

func (id Ident) String() string {
	return fmt.Sprintf("MAT=%d MF=%d MT=%d", id.MAT, id.MF, id.MT)
}

// Sentinel classifies a line as data or as one of the end-of-scope records.
type Sentinel int

const (
	NotSentinel Sentinel = iota
	SectionEnd
	FileEnd
	MaterialEnd
	TapeEnd
)

func (s Sentinel) String() string {
	switch s {
	case SectionEnd:
		return "SEND"
	case FileEnd:
		return "FEND"
	case MaterialEnd:
		return "MEND"
	case TapeEnd:
		return "TEND"
	}
	return "data"
}

func (id Ident) Sentinel() Sentinel {
	switch {
	case id.MAT == -1:
		return TapeEnd
	case id.MT != 0:
		return NotSentinel
	case id.MF != 0:
		return SectionEnd
	case id.MAT != 0:
		return FileEnd
	default:
		return MaterialEnd
	}
}

// Line is one decoded 80-column line. The columns are kept in a fixed array
// so fields can be sliced without allocating.
type Line struct {
	Number int
	Ident
	NS  int
	raw [LineWidth]byte
}

// DecodeLine splits raw into the data columns and the identifier fields.
// number is the 1-based line number used in errors. A trailing carriage
// return is dropped. Lines shorter than 80 columns are padded with blanks
// unless strict is set; longer lines are accepted only if the excess is blank.
func DecodeLine(raw []byte, number int, strict bool) (Line, error) {
	l := Line{Number: number}
	if n := len(raw); n > 0 && raw[n-1] == '\r' {
		raw = raw[:n-1]
	}
	if len(raw) > LineWidth {
		if !isBlank(raw[LineWidth:]) {
			return l, &Error{
				Kind:     MalformedField,
				Line:     number,
				Expected: fmt.Sprintf("%d columns", LineWidth),
				Found:    fmt.Sprintf("%d columns", len(raw)),
			}
		}
		raw = raw[:LineWidth]
	}
	if len(raw) < LineWidth && strict {
		return l, &Error{
			Kind:     TruncatedLine,
			Line:     number,
			Expected: fmt.Sprintf("%d columns", LineWidth),
			Found:    fmt.Sprintf("%d columns", len(raw)),
		}
	}
	n := copy(l.raw[:], raw)
	for i := n; i < LineWidth; i++ {
		l.raw[i] = ' '
	}
	for i, b := range l.raw {
		if b < ' ' || b == 0x7f {
			return l, l.locate(newError(MalformedField, 0,
				fmt.Sprintf("printable character in column %d", i+1), fmt.Sprintf("byte 0x%02x", b)))
		}
	}

	id, ns, err := decodeIdent(&l.raw)
	if err != nil {
		return l, l.locate(err)
	}
	l.Ident = id
	l.NS = ns
	return l, nil
}

func decodeIdent(raw *[LineWidth]byte) (Ident, int, error) {
	var id Ident
	var err error
	if id.MAT, err = ParseInt(raw[66:70]); err != nil {
		return id, 0, columns(err, 67, 70)
	}
	if id.MF, err = ParseInt(raw[70:72]); err != nil {
		return id, 0, columns(err, 71, 72)
	}
	if id.MT, err = ParseInt(raw[72:75]); err != nil {
		return id, 0, columns(err, 73, 75)
	}
	ns, err := ParseInt(raw[75:80])
	if err != nil {
		return id, 0, columns(err, 76, 80)
	}
	return id, ns, nil
}

func columns(err error, from, to int) error {
	if e, ok := err.(*Error); ok {
		e.Expected = fmt.Sprintf("%s in columns %d-%d", e.Expected, from, to)
	}
	return err
}

func (l *Line) locate(err error) error {
	if e, ok := err.(*Error); ok && e.Line == 0 {
		e.Line = l.Number
	}
	return err
}

// Raw returns all 80 columns.
func (l *Line) Raw() []byte {
	return l.raw[:]
}

// Data returns columns 1-66.
func (l *Line) Data() []byte {
	return l.raw[:DataWidth]
}

// Field returns the i-th (0-based) 11-column data field.
func (l *Line) Field(i int) []byte {
	return l.raw[i*FieldWidth : (i+1)*FieldWidth]
}

func (l *Line) Int(i int) (int, error) {
	v, err := ParseInt(l.Field(i))
	if err != nil {
		return 0, l.locate(columns(err, i*FieldWidth+1, (i+1)*FieldWidth))
	}
	return v, nil
}

func (l *Line) Float(i int) (float64, error) {
	v, err := ParseFloat(l.Field(i))
	if err != nil {
		return 0, l.locate(columns(err, i*FieldWidth+1, (i+1)*FieldWidth))
	}
	return v, nil
}

// Text returns columns 1-66 without trailing blanks.
func (l *Line) Text() *Text {
	return &Text{At: l.Number, Value: ParseText(l.Data())}
}

// Cont decodes the line as a control record.
func (l *Line) Cont() (*Cont, error) {
	c := &Cont{At: l.Number}
	var err error
	if c.C1, err = l.Float(0); err != nil {
		return nil, err
	}
	if c.C2, err = l.Float(1); err != nil {
		return nil, err
	}
	if c.L1, err = l.Int(2); err != nil {
		return nil, err
	}
	if c.L2, err = l.Int(3); err != nil {
		return nil, err
	}
	if c.N1, err = l.Int(4); err != nil {
		return nil, err
	}
	if c.N2, err = l.Int(5); err != nil {
		return nil, err
	}
	return c, nil
}
