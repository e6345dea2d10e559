package sections

import (
	"fmt"
	"strings"

	"github.com/dhamidi/endf/endf"
)

// Description is the descriptive data and directory of a material
// (MF=1, MT=451). Field names follow the ENDF-6 mnemonics.
type Description struct {
	ZA   float64 // 1000*Z + A
	AWR  float64 // mass in neutron units
	LRP  int     // resonance parameters in File 2
	LFI  int     // fissionable
	NLIB int     // library identifier
	NMOD int     // modification number

	ELIS float64 // target excitation energy
	STA  float64 // target stability flag
	LIS  int     // target state number
	LISO int     // target isomeric state number
	NFOR int     // library format

	AWI  float64 // projectile mass in neutron units
	EMAX float64 // upper energy limit of the evaluation
	LREL int     // release number
	NSUB int     // sub-library number
	NVER int     // library version

	TEMP float64 // target temperature
	LDRV int     // derived evaluation flag
	NWD  int     // number of text records
	NXC  int     // number of directory entries

	ZSYMAM string
	ALAB   string
	EDATE  string
	AUTH   string
	REF    string
	DDATE  string
	RDATE  string
	ENDATE int

	// Comments holds the text records after the two header records.
	Comments  []string
	Directory []DirectoryEntry
}

// DirectoryEntry lists one section of the material and its size in lines.
type DirectoryEntry struct {
	MF  int
	MT  int
	NC  int
	MOD int
}

// Z returns the atomic number encoded in ZA.
func (d *Description) Z() int {
	return int(d.ZA) / 1000
}

// A returns the mass number encoded in ZA.
func (d *Description) A() int {
	return int(d.ZA) % 1000
}

// DescriptionOf interprets section MF=1, MT=451 of m.
func DescriptionOf(m *endf.Material) (*Description, error) {
	s, err := lookup(m, 1, 451)
	if err != nil {
		return nil, err
	}
	return ReadDescription(s)
}

func ReadDescription(s *endf.Section) (*Description, error) {
	r := newReader(s)
	d := &Description{}

	c := r.cont()
	d.ZA, d.AWR, d.LRP, d.LFI, d.NLIB, d.NMOD = c.C1, c.C2, c.L1, c.L2, c.N1, c.N2
	c = r.cont()
	d.ELIS, d.STA, d.LIS, d.LISO, d.NFOR = c.C1, c.C2, c.L1, c.L2, c.N2
	c = r.cont()
	d.AWI, d.EMAX, d.LREL, d.NSUB, d.NVER = c.C1, c.C2, c.L1, c.N1, c.N2
	c = r.cont()
	d.TEMP, d.LDRV, d.NWD, d.NXC = c.C1, c.L1, c.N1, c.N2
	if r.err != nil {
		return nil, r.err
	}
	if d.NWD < 2 {
		return nil, fmt.Errorf("%s: NWD = %d, want at least 2: %w", s.Ident(), d.NWD, ErrUnexpectedRecord)
	}

	t := r.text()
	d.ZSYMAM = field(t, 1, 11)
	d.ALAB = field(t, 12, 22)
	d.EDATE = field(t, 23, 33)
	d.AUTH = field(t, 34, 66)
	t = r.text()
	d.REF = field(t, 1, 22)
	d.DDATE = field(t, 23, 33)
	d.RDATE = field(t, 34, 44)
	endate, err := endf.ParseInt([]byte(t.Columns(56, 66)))
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("%s: ENDATE: %w", s.Ident(), err)
	}
	d.ENDATE = endate

	for i := 2; i < d.NWD; i++ {
		d.Comments = append(d.Comments, r.text().Value)
	}
	for i := 0; i < d.NXC; i++ {
		c := r.cont()
		d.Directory = append(d.Directory, DirectoryEntry{MF: c.L1, MT: c.L2, NC: c.N1, MOD: c.N2})
	}
	if r.err != nil {
		return nil, r.err
	}
	return d, nil
}

func field(t *endf.Text, from, to int) string {
	return strings.TrimSpace(t.Columns(from, to))
}
