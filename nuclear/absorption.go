package nuclear

import (
	"log"
)

// Absorption derives absorption probabilities from paired scattering and
// absorption cross-section tables. It is immutable after construction and
// safe to share between goroutines.
type Absorption struct {
	scat, abs []sigma
	atoms     []float64
}

// NewAbsorption creates an Absorption processor. scattering and absorption
// hold one table per nuclide, in the same order; atoms gives the
// stoichiometric atom counts.
func NewAbsorption(scattering, absorption []Table, atoms []float64) *Absorption {
	if len(scattering) != len(absorption) {
		log.Fatalf(
			"NewAbsorption() given %d scattering tables but %d absorption tables.",
			len(scattering), len(absorption),
		)
	}
	if len(scattering) != len(atoms) {
		log.Fatalf(
			"NewAbsorption() given %d tables but %d atom counts.",
			len(scattering), len(atoms),
		)
	}
	a := &Absorption{atoms: atoms}
	for i := range scattering {
		a.scat = append(a.scat, newSigma(scattering[i]))
		a.abs = append(a.abs, newSigma(absorption[i]))
	}
	return a
}

// Rate returns the probability that a collision with nuclide i at the given
// energy is an absorption rather than a scatter: the ratio of its
// absorption to scattering cross section.
func (a *Absorption) Rate(energy float64, i int) float64 {
	return a.abs[i].at(energy) / a.scat[i].at(energy)
}

// Rates returns the per-nuclide absorption rates at the given energy. If an
// output array is given, the output is written to that array (the array is
// still returned as a convenience).
func (a *Absorption) Rates(energy float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(a.scat))}
	}
	for i := range a.scat {
		out[0][i] = a.Rate(energy, i)
	}
	return out[0]
}

// TotalRate returns a single combined absorption rate for the molecule at
// the given energy, weighting each nuclide by its atom count.
func (a *Absorption) TotalRate(energy float64) float64 {
	sum := 0.0
	for i := range a.scat {
		sum += a.atoms[i] * (a.scat[i].at(energy) / a.abs[i].at(energy))
	}
	return 1 / sum
}
