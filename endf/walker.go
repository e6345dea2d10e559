package endf

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/tliron/commonlog"
)

// Decoder walks a tape one material at a time.
type Decoder struct {
	opts       *options
	log        commonlog.Logger
	c          *cursor
	id         *Text
	warnings   []*Error
	prevMAT    int
	haveMAT    bool
	started    bool
	done       bool
	terminated bool
}

func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return newDecoder(r, newOptions(opts))
}

func newDecoder(r io.Reader, o *options) *Decoder {
	return &Decoder{
		opts: o,
		log:  commonlog.GetLogger("endf.walker"),
		c:    newCursor(newLineReader(r, o)),
	}
}

// Decode reads a whole tape. On a fatal error the tape decoded so far,
// including the partially read material, is returned with the error.
func Decode(r io.Reader, opts ...Option) (*Tape, error) {
	d := NewDecoder(r, opts...)
	t := &Tape{}
	var err error
	for {
		var m *Material
		m, err = d.Next()
		if m != nil {
			t.Materials = append(t.Materials, m)
		}
		if err != nil {
			break
		}
	}
	t.ID = d.id
	t.Warnings = d.warnings
	t.Terminated = d.terminated
	if err == io.EOF {
		err = nil
	}
	return t, err
}

// ID returns the tape identification record, once the first line was read.
func (d *Decoder) ID() *Text {
	return d.id
}

// Warnings returns the ordering anomalies seen so far.
func (d *Decoder) Warnings() []*Error {
	return d.warnings
}

// Terminated reports whether the TEND record was read.
func (d *Decoder) Terminated() bool {
	return d.terminated
}

// Materials iterates over the remaining materials. Iteration stops after the
// first error, which is yielded together with the partial material.
func (d *Decoder) Materials() iter.Seq2[*Material, error] {
	return func(yield func(*Material, error) bool) {
		for {
			m, err := d.Next()
			if err == io.EOF {
				return
			}
			if !yield(m, err) || err != nil {
				return
			}
		}
	}
}

// Next decodes the next material. It returns io.EOF after the TEND record or
// at the end of input. After any other error the decoder is done and the
// returned material holds whatever was decoded before the failure.
func (d *Decoder) Next() (*Material, error) {
	if d.done {
		return nil, io.EOF
	}
	for {
		l, err := d.c.peek()
		if err != nil {
			d.done = true
			if err == io.EOF {
				return nil, err
			}
			return nil, d.located(err)
		}
		first := !d.started
		d.started = true

		switch l.Sentinel() {
		case NotSentinel:
			m, err := d.readMaterial()
			if err != nil {
				d.done = true
				return m, d.located(err)
			}
			return m, nil
		case TapeEnd:
			d.c.advance()
			d.done = true
			d.terminated = true
			return nil, io.EOF
		}

		if first && l.MF == 0 && l.MT == 0 && l.MAT != 0 {
			d.id = l.Text()
		} else {
			d.log.Debugf("line %d: ignoring %s outside a material", l.Number, l.Sentinel())
		}
		d.c.advance()
	}
}

func (d *Decoder) located(err error) error {
	return withFile(err, d.opts.file)
}

// withFile fills in the file name of the *Error in err's chain.
func withFile(err error, file string) error {
	var e *Error
	if errors.As(err, &e) && e.File == "" {
		e.File = file
	}
	return err
}

func (d *Decoder) warn(e *Error) error {
	e.File = d.opts.file
	d.warnings = append(d.warnings, e)
	d.log.Warningf("%s", e)
	if d.opts.onWarning != nil {
		return d.opts.onWarning(e)
	}
	return nil
}

func (d *Decoder) endOfInput(kind ErrorKind, expected string) *Error {
	return &Error{Kind: kind, Line: d.c.last, Expected: expected, Found: "end of input"}
}

func (d *Decoder) readMaterial() (*Material, error) {
	l, _ := d.c.peek()
	m := &Material{MAT: l.MAT, At: l.Number}
	if d.haveMAT && m.MAT < d.prevMAT {
		err := d.warn(&Error{
			Kind:     OutOfOrderSection,
			Line:     l.Number,
			Expected: fmt.Sprintf("MAT >= %d", d.prevMAT),
			Found:    fmt.Sprintf("MAT %d", m.MAT),
		})
		if err != nil {
			return m, err
		}
	}
	d.prevMAT, d.haveMAT = m.MAT, true
	d.log.Debugf("line %d: material %d", l.Number, m.MAT)

	prevMF := 0
	for {
		l, err := d.c.peek()
		if err == io.EOF {
			return m, d.endOfInput(UnterminatedMaterial, fmt.Sprintf("MEND for MAT %d", m.MAT))
		}
		if err != nil {
			return m, err
		}
		switch l.Sentinel() {
		case MaterialEnd:
			d.c.advance()
			return m, nil
		case TapeEnd:
			return m, newError(UnterminatedMaterial, l.Number, fmt.Sprintf("MEND for MAT %d", m.MAT), "TEND")
		case FileEnd, SectionEnd:
			d.log.Debugf("line %d: ignoring %s outside a file", l.Number, l.Sentinel())
			d.c.advance()
			continue
		}
		if l.MAT != m.MAT {
			return m, newError(UnterminatedMaterial, l.Number,
				fmt.Sprintf("MEND for MAT %d", m.MAT), fmt.Sprintf("MAT %d", l.MAT))
		}
		if l.MF < prevMF {
			err := d.warn(&Error{
				Kind:     OutOfOrderSection,
				Line:     l.Number,
				Expected: fmt.Sprintf("MF >= %d", prevMF),
				Found:    fmt.Sprintf("MF %d", l.MF),
			})
			if err != nil {
				return m, err
			}
		}
		prevMF = l.MF

		f := &File{MAT: m.MAT, MF: l.MF, At: l.Number}
		m.Files = append(m.Files, f)
		if err := d.readFile(f); err != nil {
			return m, err
		}
	}
}

func (d *Decoder) readFile(f *File) error {
	d.log.Debugf("line %d: file %d", f.At, f.MF)
	prevMT := 0
	for {
		l, err := d.c.peek()
		if err == io.EOF {
			return d.endOfInput(UnterminatedFile, fmt.Sprintf("FEND for MF %d", f.MF))
		}
		if err != nil {
			return err
		}
		switch l.Sentinel() {
		case FileEnd:
			d.c.advance()
			return nil
		case MaterialEnd, TapeEnd:
			return newError(UnterminatedFile, l.Number, fmt.Sprintf("FEND for MF %d", f.MF), l.Sentinel().String())
		case SectionEnd:
			d.log.Debugf("line %d: ignoring SEND outside a section", l.Number)
			d.c.advance()
			continue
		}
		if l.MAT != f.MAT || l.MF != f.MF {
			return newError(UnterminatedFile, l.Number,
				fmt.Sprintf("FEND for MF %d", f.MF), fmt.Sprintf("MAT %d MF %d", l.MAT, l.MF))
		}
		if l.MT < prevMT {
			err := d.warn(&Error{
				Kind:     OutOfOrderSection,
				Line:     l.Number,
				Expected: fmt.Sprintf("MT >= %d", prevMT),
				Found:    fmt.Sprintf("MT %d", l.MT),
			})
			if err != nil {
				return err
			}
		}
		prevMT = l.MT

		s := &Section{MAT: f.MAT, MF: f.MF, MT: l.MT, At: l.Number}
		f.Sections = append(f.Sections, s)
		if err := d.readSection(s); err != nil {
			return err
		}
	}
}

func (d *Decoder) readSection(s *Section) error {
	l, _ := d.c.peek()
	head := l.Text()
	s.Records = append(s.Records, head)
	rr := &RecordReader{c: d.c, ident: l.Ident, prevNS: l.NS}
	if d.opts.sequenceCheck {
		rr.warn = d.warn
	}
	d.c.advance()

	// A section made of its head line alone has no body to lay out.
	if layout := d.opts.layout(s.MF, s.MT); layout != nil && rr.More() {
		hc, err := head.Cont()
		if err != nil {
			return err
		}
		recs, err := layout(hc, rr)
		s.Records = append(s.Records, recs...)
		if err != nil {
			return err
		}
	} else {
		for rr.More() {
			t, err := rr.ReadText()
			if err != nil {
				return err
			}
			s.Records = append(s.Records, t)
		}
	}

	l, err := d.c.peek()
	switch {
	case err == io.EOF:
		return d.endOfInput(UnterminatedSection, fmt.Sprintf("SEND for MT %d", s.MT))
	case err != nil:
		return err
	case l.Sentinel() == SectionEnd:
		d.c.advance()
		return nil
	case l.Ident == rr.ident:
		return newError(CountMismatch, l.Number, "SEND after the declared records", "unconsumed line")
	}
	found := l.Ident.String()
	if l.Sentinel() != NotSentinel {
		found = l.Sentinel().String()
	}
	return newError(UnterminatedSection, l.Number, fmt.Sprintf("SEND for MT %d", s.MT), found)
}
