// Package sections interprets the records of individual ENDF sections.
package sections

import (
	"errors"
	"fmt"

	"github.com/dhamidi/endf/endf"
)

var (
	ErrNoSection        = errors.New("section not present")
	ErrUnexpectedRecord = errors.New("unexpected record")
)

// reader hands out the records of a section in order. After the first
// failure every read returns a zero value and err keeps the failure.
type reader struct {
	s    *endf.Section
	next int
	err  error
}

func newReader(s *endf.Section) *reader {
	return &reader{s: s}
}

func (r *reader) record(want endf.RecordKind) endf.Record {
	if r.err != nil {
		return nil
	}
	if r.next >= len(r.s.Records) {
		r.err = fmt.Errorf("%s: record %d: want %s, section has %d records: %w",
			r.s.Ident(), r.next, want, len(r.s.Records), ErrUnexpectedRecord)
		return nil
	}
	rec := r.s.Records[r.next]
	r.next++
	return rec
}

func (r *reader) mismatch(want endf.RecordKind, got endf.Record) {
	r.err = fmt.Errorf("%s: line %d: want %s, found %s: %w",
		r.s.Ident(), got.Line(), want, got.Kind(), ErrUnexpectedRecord)
}

// cont accepts a CONT record or a TEXT record holding one, so opaque
// sections can be interpreted as well.
func (r *reader) cont() *endf.Cont {
	switch rec := r.record(endf.KindCont).(type) {
	case nil:
		return &endf.Cont{}
	case *endf.Cont:
		return rec
	case *endf.Text:
		c, err := rec.Cont()
		if err != nil {
			r.err = fmt.Errorf("%s: %w", r.s.Ident(), err)
			return &endf.Cont{}
		}
		return c
	default:
		r.mismatch(endf.KindCont, rec)
		return &endf.Cont{}
	}
}

func (r *reader) text() *endf.Text {
	switch rec := r.record(endf.KindText).(type) {
	case nil:
		return &endf.Text{}
	case *endf.Text:
		return rec
	default:
		r.mismatch(endf.KindText, rec)
		return &endf.Text{}
	}
}

func (r *reader) list() *endf.List {
	switch rec := r.record(endf.KindList).(type) {
	case nil:
		return &endf.List{}
	case *endf.List:
		return rec
	default:
		r.mismatch(endf.KindList, rec)
		return &endf.List{}
	}
}

func (r *reader) tab1() *endf.Tab1 {
	switch rec := r.record(endf.KindTab1).(type) {
	case nil:
		return &endf.Tab1{}
	case *endf.Tab1:
		return rec
	default:
		r.mismatch(endf.KindTab1, rec)
		return &endf.Tab1{}
	}
}

func lookup(m *endf.Material, mf, mt int) (*endf.Section, error) {
	s := m.Section(mf, mt)
	if s == nil {
		return nil, fmt.Errorf("MAT %d MF %d MT %d: %w", m.MAT, mf, mt, ErrNoSection)
	}
	return s, nil
}
