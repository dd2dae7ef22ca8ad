package nuclear

import (
	"log"
)

// Total derives transport quantities from the total cross-section tables of
// the medium's nuclides. It is immutable after construction and safe to
// share between goroutines.
type Total struct {
	sigmas []sigma
	atoms  []float64
	n      float64
}

// NewTotal creates a Total processor from one total cross-section table per
// nuclide. atoms gives the stoichiometric atom count of each nuclide in the
// molecule, in the same order as the tables, and n is the molecule number
// density of the medium in m^-3.
func NewTotal(tables []Table, atoms []float64, n float64) *Total {
	if len(tables) != len(atoms) {
		log.Fatalf(
			"NewTotal() given %d tables but %d atom counts.",
			len(tables), len(atoms),
		)
	}
	t := &Total{atoms: atoms, n: n}
	for _, tab := range tables {
		t.sigmas = append(t.sigmas, newSigma(tab))
	}
	return t
}

// CrossSection returns the total cross section of nuclide i in m^2 at the
// given energy in eV.
func (t *Total) CrossSection(energy float64, i int) float64 {
	return t.sigmas[i].at(energy)
}

// MeanFreePath returns the mean free path in meters at the given energy:
// the inverse of the macroscopic cross section summed over the molecule's
// nuclides.
func (t *Total) MeanFreePath(energy float64) float64 {
	sum := 0.0
	for i := range t.sigmas {
		sum += t.atoms[i] * t.n * t.sigmas[i].at(energy)
	}
	return 1 / sum
}

// SelectionRatio returns the probability that a collision at the given
// energy is with the first-listed nuclide: its weighted cross section as a
// fraction of the molecule's total.
func (t *Total) SelectionRatio(energy float64) float64 {
	first := 0.0
	sum := 0.0
	for i := range t.sigmas {
		w := t.atoms[i] * t.sigmas[i].at(energy)
		if i == 0 {
			first = w
		}
		sum += w
	}
	return first / sum
}
