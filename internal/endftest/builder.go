// Package endftest builds synthetic ENDF-6 tapes for tests.
package endftest

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Real formats v as an 11-column ENDF real, e.g. " 1.234567+5".
func Real(v float64) string {
	if v == 0 {
		return " 0.000000+0"
	}
	for prec := 6; prec >= 0; prec-- {
		s := strconv.FormatFloat(v, 'e', prec, 64)
		mant, exp, _ := strings.Cut(s, "e")
		e, _ := strconv.Atoi(exp)
		out := fmt.Sprintf("%s%+d", mant, e)
		if len(out) <= 11 {
			return fmt.Sprintf("%11s", out)
		}
	}
	return fmt.Sprintf("%11s", strconv.FormatFloat(v, 'g', 4, 64))
}

// Int formats v right-justified in 11 columns.
func Int(v int) string {
	return fmt.Sprintf("%11d", v)
}

// Blank is an empty field.
const Blank = "           "

// Line assembles an 80-column line from up to 66 columns of data and the
// identifier fields.
func Line(data string, mat, mf, mt, ns int) string {
	return fmt.Sprintf("%-66s%4d%2d%3d%5d", data, mat, mf, mt, ns)
}

// Builder accumulates the lines of a tape. Sequence numbers restart at 1 in
// every section and are 99999 on SEND records.
type Builder struct {
	lines       []string
	mat, mf, mt int
	ns          int
}

func New() *Builder {
	return &Builder{}
}

// TPID writes the tape identification record.
func (b *Builder) TPID(text string, tape int) *Builder {
	b.lines = append(b.lines, Line(text, tape, 0, 0, 0))
	return b
}

// Section sets the identifiers used by the following data lines.
func (b *Builder) Section(mat, mf, mt int) *Builder {
	b.mat, b.mf, b.mt = mat, mf, mt
	b.ns = 0
	return b
}

// Raw appends a data line with the given 66 columns.
func (b *Builder) Raw(data string) *Builder {
	b.ns++
	b.lines = append(b.lines, Line(data, b.mat, b.mf, b.mt, b.ns))
	return b
}

func (b *Builder) Fields(fields ...string) *Builder {
	return b.Raw(strings.Join(fields, ""))
}

func (b *Builder) Cont(c1, c2 float64, l1, l2, n1, n2 int) *Builder {
	return b.Fields(Real(c1), Real(c2), Int(l1), Int(l2), Int(n1), Int(n2))
}

func (b *Builder) Text(s string) *Builder {
	return b.Raw(s)
}

// Reals packs values six per line.
func (b *Builder) Reals(vs ...float64) *Builder {
	for len(vs) > 0 {
		n := min(len(vs), 6)
		fields := make([]string, n)
		for i := range fields {
			fields[i] = Real(vs[i])
		}
		b.Fields(fields...)
		vs = vs[n:]
	}
	return b
}

// Ints packs integers six per line.
func (b *Builder) Ints(vs ...int) *Builder {
	for len(vs) > 0 {
		n := min(len(vs), 6)
		fields := make([]string, n)
		for i := range fields {
			fields[i] = Int(vs[i])
		}
		b.Fields(fields...)
		vs = vs[n:]
	}
	return b
}

func (b *Builder) List(c1, c2 float64, l1, l2 int, n2 int, values ...float64) *Builder {
	b.Cont(c1, c2, l1, l2, len(values), n2)
	return b.Reals(values...)
}

// Tab1 writes a single-region table with the given law.
func (b *Builder) Tab1(c1, c2 float64, l1, l2 int, law int, x, y []float64) *Builder {
	b.Cont(c1, c2, l1, l2, 1, len(x))
	b.Ints(len(x), law)
	xy := make([]float64, 0, 2*len(x))
	for i := range x {
		xy = append(xy, x[i], y[i])
	}
	return b.Reals(xy...)
}

func (b *Builder) SEND() *Builder {
	b.lines = append(b.lines, Line("", b.mat, b.mf, 0, 99999))
	return b
}

func (b *Builder) FEND() *Builder {
	b.lines = append(b.lines, Line("", b.mat, 0, 0, 0))
	return b
}

func (b *Builder) MEND() *Builder {
	b.lines = append(b.lines, Line("", 0, 0, 0, 0))
	return b
}

func (b *Builder) TEND() *Builder {
	b.lines = append(b.lines, Line("", -1, 0, 0, 0))
	return b
}

// Lines returns the number of lines written so far.
func (b *Builder) Lines() int {
	return len(b.lines)
}

func (b *Builder) String() string {
	return strings.Join(b.lines, "\n") + "\n"
}

func (b *Builder) Bytes() []byte {
	return []byte(b.String())
}

// Grid returns n points evenly spaced on [lo, hi] and f applied to each.
func Grid(n int, lo, hi float64, f func(float64) float64) ([]float64, []float64) {
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = lo + (hi-lo)*float64(i)/math.Max(1, float64(n-1))
		y[i] = f(x[i])
	}
	return x, y
}
