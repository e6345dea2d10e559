package sections

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dhamidi/endf/endf"
	"github.com/dhamidi/endf/internal/endftest"
)

func plutonium(lo int) *endftest.Builder {
	b := endftest.New()
	b.Section(9437, 1, 451).
		Cont(94239, 236.9986, 1, 1, 0, 0).
		Cont(0, 0, 0, 0, 0, 6).
		Cont(1, 3e7, 0, 0, 10, 8).
		Cont(0, 0, 0, 0, 3, 2).
		Text(fmt.Sprintf("%-11s%-11s%-11s%s", " 94-Pu-239", "LANL", "EVAL-DEC17", "P.Talou, M.B.Chadwick")).
		Text(fmt.Sprintf("%-22s%-11s%-11s%11s%11d", "Ref.", "DIST-FEB18", "REV1-", "", 20180214)).
		Text("comment line").
		Cont(0, 0, 1, 451, 42, 0).
		Cont(0, 0, 1, 460, 12, 0).
		SEND()
	b.Section(9437, 1, 460)
	switch lo {
	case DiscretePhotons:
		b.Cont(94239, 236.9986, 1, 0, 2, 0)
		b.Tab1(1.5e5, 0, 1, 0, 2, []float64{0, 1}, []float64{0.2, 0.1})
		b.Tab1(2.5e5, 0, 2, 0, 2, []float64{0, 1}, []float64{0.3, 0.2})
	case ContinuousPhotons:
		b.Cont(94239, 236.9986, 2, 0, 0, 0)
		b.List(0, 0, 0, 0, 0, 0.0133, 0.0309, 0.117, 0.307, 1.13, 2.51)
	}
	b.SEND().FEND().MEND().TEND()
	return b
}

func decode(t *testing.T, b *endftest.Builder, opts ...endf.Option) *endf.Material {
	t.Helper()
	tape, err := endf.Decode(strings.NewReader(b.String()), opts...)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return tape.Material(9437)
}

func TestDescription(t *testing.T) {
	for _, opaque := range []bool{false, true} {
		t.Run(fmt.Sprintf("opaque=%v", opaque), func(t *testing.T) {
			var opts []endf.Option
			if opaque {
				opts = append(opts, endf.WithOpaqueSections())
			}
			d, err := DescriptionOf(decode(t, plutonium(DiscretePhotons), opts...))
			if err != nil {
				t.Fatalf("DescriptionOf: %v", err)
			}

			if d.Z() != 94 || d.A() != 239 {
				t.Errorf("Z, A = %d, %d; want 94, 239", d.Z(), d.A())
			}
			if d.AWR != 236.9986 || d.LRP != 1 || d.LFI != 1 {
				t.Errorf("AWR, LRP, LFI = %v, %d, %d", d.AWR, d.LRP, d.LFI)
			}
			if d.NFOR != 6 || d.NSUB != 10 || d.NVER != 8 || d.EMAX != 3e7 {
				t.Errorf("NFOR, NSUB, NVER, EMAX = %d, %d, %d, %v", d.NFOR, d.NSUB, d.NVER, d.EMAX)
			}
			text := map[string]string{
				"ZSYMAM": d.ZSYMAM, "ALAB": d.ALAB, "EDATE": d.EDATE, "AUTH": d.AUTH,
				"REF": d.REF, "DDATE": d.DDATE, "RDATE": d.RDATE,
			}
			want := map[string]string{
				"ZSYMAM": "94-Pu-239", "ALAB": "LANL", "EDATE": "EVAL-DEC17", "AUTH": "P.Talou, M.B.Chadwick",
				"REF": "Ref.", "DDATE": "DIST-FEB18", "RDATE": "REV1-",
			}
			for k, v := range want {
				if text[k] != v {
					t.Errorf("%s = %q, want %q", k, text[k], v)
				}
			}
			if d.ENDATE != 20180214 {
				t.Errorf("ENDATE = %d", d.ENDATE)
			}
			if len(d.Comments) != 1 || d.Comments[0] != "comment line" {
				t.Errorf("Comments = %q", d.Comments)
			}
			wantDir := []DirectoryEntry{{1, 451, 42, 0}, {1, 460, 12, 0}}
			if len(d.Directory) != len(wantDir) {
				t.Fatalf("Directory = %+v", d.Directory)
			}
			for i, e := range wantDir {
				if d.Directory[i] != e {
					t.Errorf("Directory[%d] = %+v, want %+v", i, d.Directory[i], e)
				}
			}
		})
	}
}

func TestDelayedPhotons(t *testing.T) {
	t.Run("discrete", func(t *testing.T) {
		p, err := DelayedPhotonsOf(decode(t, plutonium(DiscretePhotons)))
		if err != nil {
			t.Fatalf("DelayedPhotonsOf: %v", err)
		}
		if p.LO != DiscretePhotons || len(p.Discrete) != 2 {
			t.Fatalf("LO, photons = %d, %d", p.LO, len(p.Discrete))
		}
		e := p.Energies()
		if e[0] != 1.5e5 || e[1] != 2.5e5 {
			t.Errorf("Energies() = %v", e)
		}
		if p.Discrete[1].Y[0] != 0.3 {
			t.Errorf("multiplicity = %v", p.Discrete[1].Y)
		}
	})

	t.Run("continuous", func(t *testing.T) {
		p, err := DelayedPhotonsOf(decode(t, plutonium(ContinuousPhotons)))
		if err != nil {
			t.Fatalf("DelayedPhotonsOf: %v", err)
		}
		if p.LO != ContinuousPhotons || len(p.DecayConstants) != 6 || p.DecayConstants[5] != 2.51 {
			t.Errorf("photons = %+v", p)
		}
	})

	t.Run("opaque section", func(t *testing.T) {
		_, err := DelayedPhotonsOf(decode(t, plutonium(ContinuousPhotons), endf.WithOpaqueSections()))
		if !errors.Is(err, ErrUnexpectedRecord) {
			t.Errorf("error = %v, want ErrUnexpectedRecord", err)
		}
	})
}

func TestMissingSection(t *testing.T) {
	b := endftest.New().Section(9437, 3, 1).Text("x").SEND().FEND().MEND().TEND()
	m := decode(t, b)
	if _, err := DescriptionOf(m); !errors.Is(err, ErrNoSection) {
		t.Errorf("DescriptionOf error = %v, want ErrNoSection", err)
	}
	if _, err := DelayedPhotonsOf(m); !errors.Is(err, ErrNoSection) {
		t.Errorf("DelayedPhotonsOf error = %v, want ErrNoSection", err)
	}
}
