package endf

import (
	"fmt"
)

// Tape is a decoded ENDF tape. ID is the tape identification record when the
// input starts with one.
type Tape struct {
	ID         *Text
	Materials  []*Material
	Warnings   []*Error
	Terminated bool
}

type Material struct {
	MAT   int
	At    int
	Files []*File
}

type File struct {
	MAT      int
	MF       int
	At       int
	Sections []*Section
}

// Section owns the records between its first line and its SEND record. The
// first record is always the head line as TEXT.
type Section struct {
	MAT     int
	MF      int
	MT      int
	At      int
	Records []Record
}

func (t *Tape) Material(mat int) *Material {
	for _, m := range t.Materials {
		if m.MAT == mat {
			return m
		}
	}
	return nil
}

func (m *Material) File(mf int) *File {
	for _, f := range m.Files {
		if f.MF == mf {
			return f
		}
	}
	return nil
}

// Section looks up (mf, mt) within the material.
func (m *Material) Section(mf, mt int) *Section {
	f := m.File(mf)
	if f == nil {
		return nil
	}
	return f.Section(mt)
}

func (f *File) Section(mt int) *Section {
	for _, s := range f.Sections {
		if s.MT == mt {
			return s
		}
	}
	return nil
}

func (s *Section) Ident() Ident {
	return Ident{MAT: s.MAT, MF: s.MF, MT: s.MT}
}

// Head decodes the section's head line as a control record.
func (s *Section) Head() (*Cont, error) {
	if len(s.Records) == 0 {
		return nil, fmt.Errorf("%s: section has no records", s.Ident())
	}
	switch r := s.Records[0].(type) {
	case *Text:
		return r.Cont()
	case *Cont:
		return r, nil
	}
	return nil, fmt.Errorf("%s: head is a %s record", s.Ident(), s.Records[0].Kind())
}
