package format

import (
	"io"

	"github.com/goccy/go-json"

	"github.com/dhamidi/endf/endf"
)

// JSONEncoder writes a tape as indented JSON. With Summary set, sections
// carry record counts per kind instead of their records.
type JSONEncoder struct {
	w       io.Writer
	tape    *endf.Tape
	Summary bool
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(tape *endf.Tape) error {
	e.tape = tape
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(e.buildTapeData(), "", "  ")
}

type jsonTape struct {
	ID         string         `json:"id,omitempty"`
	Terminated bool           `json:"terminated"`
	Materials  []jsonMaterial `json:"materials"`
	Warnings   []string       `json:"warnings,omitempty"`
}

type jsonMaterial struct {
	MAT   int        `json:"mat"`
	Line  int        `json:"line"`
	Files []jsonFile `json:"files"`
}

type jsonFile struct {
	MF       int           `json:"mf"`
	Line     int           `json:"line"`
	Sections []jsonSection `json:"sections"`
}

type jsonSection struct {
	MT      int            `json:"mt"`
	Line    int            `json:"line"`
	Counts  map[string]int `json:"counts,omitempty"`
	Records []jsonRecord   `json:"records,omitempty"`
}

type jsonRecord struct {
	Kind    string       `json:"kind"`
	Line    int          `json:"line"`
	Text    *string      `json:"text,omitempty"`
	Head    *jsonCont    `json:"head,omitempty"`
	Values  []float64    `json:"values,omitempty"`
	Regions []jsonRegion `json:"regions,omitempty"`
	X       []float64    `json:"x,omitempty"`
	Y       []float64    `json:"y,omitempty"`
	Rows    []jsonRow    `json:"rows,omitempty"`
}

type jsonCont struct {
	C1 float64 `json:"c1"`
	C2 float64 `json:"c2"`
	L1 int     `json:"l1"`
	L2 int     `json:"l2"`
	N1 int     `json:"n1"`
	N2 int     `json:"n2"`
}

type jsonRegion struct {
	NBT  int    `json:"nbt"`
	Law  int    `json:"law"`
	Name string `json:"name"`
}

type jsonRow struct {
	I int   `json:"i"`
	J int   `json:"j"`
	K []int `json:"k"`
}

func (e *JSONEncoder) buildTapeData() jsonTape {
	t := e.tape
	data := jsonTape{
		Terminated: t.Terminated,
		Materials:  make([]jsonMaterial, len(t.Materials)),
	}
	if t.ID != nil {
		data.ID = t.ID.Value
	}
	for _, w := range t.Warnings {
		data.Warnings = append(data.Warnings, w.Error())
	}
	for i, m := range t.Materials {
		data.Materials[i] = e.buildMaterial(m)
	}
	return data
}

func (e *JSONEncoder) buildMaterial(m *endf.Material) jsonMaterial {
	out := jsonMaterial{MAT: m.MAT, Line: m.At, Files: make([]jsonFile, len(m.Files))}
	for i, f := range m.Files {
		jf := jsonFile{MF: f.MF, Line: f.At, Sections: make([]jsonSection, len(f.Sections))}
		for j, s := range f.Sections {
			jf.Sections[j] = e.buildSection(s)
		}
		out.Files[i] = jf
	}
	return out
}

func (e *JSONEncoder) buildSection(s *endf.Section) jsonSection {
	out := jsonSection{MT: s.MT, Line: s.At}
	if e.Summary {
		out.Counts = make(map[string]int)
		for _, r := range s.Records {
			out.Counts[r.Kind().String()]++
		}
		return out
	}
	out.Records = make([]jsonRecord, len(s.Records))
	for i, r := range s.Records {
		out.Records[i] = buildRecord(r)
	}
	return out
}

func buildRecord(r endf.Record) jsonRecord {
	out := jsonRecord{Kind: r.Kind().String(), Line: r.Line()}
	switch r := r.(type) {
	case *endf.Cont:
		out.Head = buildCont(r)
	case *endf.Text:
		v := r.Value
		out.Text = &v
	case *endf.List:
		out.Head = buildCont(&r.Head)
		out.Values = r.Values
	case *endf.Tab1:
		out.Head = buildCont(&r.Head)
		out.Regions = buildRegions(r.Regions)
		out.X = r.X
		out.Y = r.Y
	case *endf.Tab2:
		out.Head = buildCont(&r.Head)
		out.Regions = buildRegions(r.Regions)
	case *endf.Intg:
		out.Head = buildCont(&r.Head)
		out.Rows = make([]jsonRow, len(r.Rows))
		for i, row := range r.Rows {
			out.Rows[i] = jsonRow{I: row.I, J: row.J, K: row.K}
		}
	}
	return out
}

func buildCont(c *endf.Cont) *jsonCont {
	return &jsonCont{C1: c.C1, C2: c.C2, L1: c.L1, L2: c.L2, N1: c.N1, N2: c.N2}
}

func buildRegions(regions []endf.Region) []jsonRegion {
	out := make([]jsonRegion, len(regions))
	for i, r := range regions {
		out[i] = jsonRegion{NBT: r.NBT, Law: int(r.Law), Name: r.Law.String()}
	}
	return out
}
