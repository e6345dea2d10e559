package endf

import (
	"fmt"
)

type RecordKind int

const (
	KindCont RecordKind = iota + 1
	KindText
	KindList
	KindTab1
	KindTab2
	KindIntg
)

var recordKindNames = map[RecordKind]string{
	KindCont: "CONT",
	KindText: "TEXT",
	KindList: "LIST",
	KindTab1: "TAB1",
	KindTab2: "TAB2",
	KindIntg: "INTG",
}

func (k RecordKind) String() string {
	if name, ok := recordKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Record is one of *Cont, *Text, *List, *Tab1, *Tab2 or *Intg. The set is
// closed; consumers switch on the concrete type.
type Record interface {
	Kind() RecordKind
	// Line is the 1-based line number of the record's first line.
	Line() int
	record()
}

// Cont is the control record. Richer records carry one as their head.
type Cont struct {
	At     int
	C1, C2 float64
	L1, L2 int
	N1, N2 int
}

func (c *Cont) Kind() RecordKind { return KindCont }
func (c *Cont) Line() int        { return c.At }
func (c *Cont) record()          {}

// Text is a 66-column text record with trailing blanks removed.
type Text struct {
	At    int
	Value string
}

func (t *Text) Kind() RecordKind { return KindText }
func (t *Text) Line() int        { return t.At }
func (t *Text) record()          {}

// Columns returns the 1-based, inclusive column range [from, to] of the
// payload, padded with blanks where the stored value is shorter.
func (t *Text) Columns(from, to int) string {
	if from < 1 {
		from = 1
	}
	if to > DataWidth {
		to = DataWidth
	}
	if from > to {
		return ""
	}
	buf := make([]byte, to-from+1)
	for i := range buf {
		col := from - 1 + i
		if col < len(t.Value) {
			buf[i] = t.Value[col]
		} else {
			buf[i] = ' '
		}
	}
	return string(buf)
}

// Cont reinterprets the text payload as a control record. Section head
// lines are kept as text and decoded on demand through this method.
func (t *Text) Cont() (*Cont, error) {
	var raw [LineWidth]byte
	n := copy(raw[:DataWidth], t.Value)
	for i := n; i < LineWidth; i++ {
		raw[i] = ' '
	}
	l := Line{Number: t.At, raw: raw}
	return l.Cont()
}

// Law is an interpolation law code.
type Law int

const (
	Histogram Law = iota + 1
	LinLin
	LinLog
	LogLin
	LogLog
	Special
)

var lawNames = map[Law]string{
	Histogram: "histogram",
	LinLin:    "lin-lin",
	LinLog:    "lin-log",
	LogLin:    "log-lin",
	LogLog:    "log-log",
	Special:   "special",
}

// Scheme returns the one-dimensional law. Codes 11-15 and 21-25 are the
// corresponding-point and unit-base variants of laws 1-5 used between the
// slices of a two-dimensional table.
func (l Law) Scheme() Law {
	if l > 10 {
		return l % 10
	}
	return l
}

func (l Law) Valid() bool {
	switch {
	case l >= Histogram && l <= Special:
		return true
	case l >= 11 && l <= 15, l >= 21 && l <= 25:
		return true
	}
	return false
}

func (l Law) String() string {
	name, ok := lawNames[l.Scheme()]
	if !ok {
		return fmt.Sprintf("law(%d)", int(l))
	}
	switch {
	case l > 20:
		return "unit-base " + name
	case l > 10:
		return "corresponding-point " + name
	}
	return name
}

// Region is one interpolation region: points up to and including the 1-based
// breakpoint NBT are governed by Law.
type Region struct {
	NBT int
	Law Law
}

// Range is a region expressed as 0-based point indices, Start inclusive and
// End exclusive. The ranges of a table partition its points.
type Range struct {
	Start int
	End   int
	Law   Law
}

func ranges(regions []Region) []Range {
	out := make([]Range, len(regions))
	prev := 0
	for i, r := range regions {
		out[i] = Range{Start: prev, End: r.NBT, Law: r.Law}
		prev = r.NBT
	}
	return out
}

// List is a head record followed by N1 values.
type List struct {
	Head   Cont
	Values []float64
}

func (l *List) Kind() RecordKind { return KindList }
func (l *List) Line() int        { return l.Head.At }
func (l *List) record()          {}

func (l *List) NPL() int { return l.Head.N1 }

// Tab1 is a one-dimensional table: NR interpolation regions over NP points.
type Tab1 struct {
	Head    Cont
	Regions []Region
	X       []float64
	Y       []float64
}

func (t *Tab1) Kind() RecordKind { return KindTab1 }
func (t *Tab1) Line() int        { return t.Head.At }
func (t *Tab1) record()          {}

func (t *Tab1) NR() int { return t.Head.N1 }
func (t *Tab1) NP() int { return t.Head.N2 }

// Ranges returns the interpolation regions as index ranges into X and Y.
func (t *Tab1) Ranges() []Range {
	return ranges(t.Regions)
}

// Tab2 declares the interpolation regions over the NZ slices of a
// two-dimensional table. The slices are the records that follow it.
type Tab2 struct {
	Head    Cont
	Regions []Region
}

func (t *Tab2) Kind() RecordKind { return KindTab2 }
func (t *Tab2) Line() int        { return t.Head.At }
func (t *Tab2) record()          {}

func (t *Tab2) NR() int { return t.Head.N1 }
func (t *Tab2) NZ() int { return t.Head.N2 }

func (t *Tab2) Ranges() []Range {
	return ranges(t.Regions)
}

// IntgRow is one packed integer row of a compact covariance matrix.
type IntgRow struct {
	At int
	I  int
	J  int
	K  []int
}

// Intg is a head record (L1 = NDIGIT, L2 = NNN, N1 = NM) followed by NM
// packed rows.
type Intg struct {
	Head Cont
	Rows []IntgRow
}

func (r *Intg) Kind() RecordKind { return KindIntg }
func (r *Intg) Line() int        { return r.Head.At }
func (r *Intg) record()          {}

func (r *Intg) NDigit() int { return r.Head.L1 }
