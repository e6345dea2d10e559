package endf

import (
	"fmt"
)

// Layout decodes the records that follow a section's head line. head is the
// head line decoded as a control record; it tells the layout which record
// kinds come next.
type Layout func(head *Cont, r *RecordReader) ([]Record, error)

// AnySection registers a layout for every MT of a file.
const AnySection = 0

type layoutKey struct {
	mf int
	mt int
}

var defaultLayouts = map[layoutKey]Layout{
	{1, 451}:        descriptionLayout,
	{1, 452}:        nubarLayout,
	{1, 455}:        delayedNubarLayout,
	{1, 456}:        nubarLayout,
	{1, 460}:        delayedPhotonLayout,
	{3, AnySection}: crossSectionLayout,
}

func badFlag(head *Cont, name string, want string, got int) error {
	return newError(MalformedField, head.At, fmt.Sprintf("%s %s", name, want), fmt.Sprintf("%d", got))
}

// descriptionLayout: three CONT records, NWD TEXT records, NXC directory
// CONT records.
func descriptionLayout(head *Cont, r *RecordReader) ([]Record, error) {
	var recs []Record
	var last *Cont
	for i := 0; i < 3; i++ {
		c, err := r.ReadCont()
		if err != nil {
			return recs, err
		}
		recs = append(recs, c)
		last = c
	}
	nwd, nxc := last.N1, last.N2
	if nwd < 0 || nxc < 0 {
		return recs, newError(CountMismatch, last.At, "NWD, NXC >= 0", fmt.Sprintf("%d, %d", nwd, nxc))
	}
	for i := 0; i < nwd; i++ {
		t, err := r.ReadText()
		if err != nil {
			return recs, err
		}
		recs = append(recs, t)
	}
	for i := 0; i < nxc; i++ {
		c, err := r.ReadCont()
		if err != nil {
			return recs, err
		}
		recs = append(recs, c)
	}
	return recs, nil
}

// readNu reads a polynomial LIST (LNU=1) or a TAB1 (LNU=2).
func readNu(head *Cont, lnu int, r *RecordReader) (Record, error) {
	switch lnu {
	case 1:
		return r.ReadList()
	case 2:
		return r.ReadTab1()
	}
	return nil, badFlag(head, "LNU", "1 or 2", lnu)
}

func nubarLayout(head *Cont, r *RecordReader) ([]Record, error) {
	rec, err := readNu(head, head.L2, r)
	if err != nil {
		return nil, err
	}
	return []Record{rec}, nil
}

// delayedNubarLayout: decay constants as one LIST (LDG=0) or as a TAB2 over
// NE energy-dependent LISTs (LDG=1), then the delayed yield.
func delayedNubarLayout(head *Cont, r *RecordReader) ([]Record, error) {
	var recs []Record
	switch head.L1 {
	case 0:
		l, err := r.ReadList()
		if err != nil {
			return recs, err
		}
		recs = append(recs, l)
	case 1:
		t, err := r.ReadTab2()
		if err != nil {
			return recs, err
		}
		recs = append(recs, t)
		for i := 0; i < t.NZ(); i++ {
			l, err := r.ReadList()
			if err != nil {
				return recs, err
			}
			recs = append(recs, l)
		}
	default:
		return recs, badFlag(head, "LDG", "0 or 1", head.L1)
	}
	rec, err := readNu(head, head.L2, r)
	if err != nil {
		return recs, err
	}
	return append(recs, rec), nil
}

// delayedPhotonLayout: NG TAB1 records (LO=1) or one LIST of decay
// constants (LO=2).
func delayedPhotonLayout(head *Cont, r *RecordReader) ([]Record, error) {
	var recs []Record
	switch head.L1 {
	case 1:
		if head.N1 < 0 {
			return recs, newError(CountMismatch, head.At, "NG >= 0", fmt.Sprintf("%d", head.N1))
		}
		for i := 0; i < head.N1; i++ {
			t, err := r.ReadTab1()
			if err != nil {
				return recs, err
			}
			recs = append(recs, t)
		}
	case 2:
		l, err := r.ReadList()
		if err != nil {
			return recs, err
		}
		recs = append(recs, l)
	default:
		return recs, badFlag(head, "LO", "1 or 2", head.L1)
	}
	return recs, nil
}

func crossSectionLayout(head *Cont, r *RecordReader) ([]Record, error) {
	t, err := r.ReadTab1()
	if err != nil {
		return nil, err
	}
	return []Record{t}, nil
}
