package sections

import (
	"fmt"

	"github.com/dhamidi/endf/endf"
)

const (
	DiscretePhotons   = 1
	ContinuousPhotons = 2
)

// DelayedPhotons is the delayed photon data of a fissionable material
// (MF=1, MT=460). With LO=1 each discrete photon has a TAB1 of its
// multiplicity over time, with C1 the photon energy. With LO=2 only the
// decay constants of the precursor families are given.
type DelayedPhotons struct {
	LO             int
	Discrete       []*endf.Tab1
	DecayConstants []float64
}

// DelayedPhotonsOf interprets section MF=1, MT=460 of m.
func DelayedPhotonsOf(m *endf.Material) (*DelayedPhotons, error) {
	s, err := lookup(m, 1, 460)
	if err != nil {
		return nil, err
	}
	return ReadDelayedPhotons(s)
}

func ReadDelayedPhotons(s *endf.Section) (*DelayedPhotons, error) {
	r := newReader(s)
	head := r.cont()
	if r.err != nil {
		return nil, r.err
	}
	p := &DelayedPhotons{LO: head.L1}
	switch p.LO {
	case DiscretePhotons:
		for i := 0; i < head.N1; i++ {
			p.Discrete = append(p.Discrete, r.tab1())
		}
	case ContinuousPhotons:
		p.DecayConstants = r.list().Values
	default:
		return nil, fmt.Errorf("%s: LO = %d, want 1 or 2: %w", s.Ident(), p.LO, ErrUnexpectedRecord)
	}
	if r.err != nil {
		return nil, r.err
	}
	return p, nil
}

// Energies returns the energies of the discrete photons.
func (p *DelayedPhotons) Energies() []float64 {
	out := make([]float64, len(p.Discrete))
	for i, t := range p.Discrete {
		out[i] = t.Head.C1
	}
	return out
}
