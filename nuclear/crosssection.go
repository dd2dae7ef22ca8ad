package nuclear

import (
	"math"

	"github.com/moderato-sim/moderato/interpolate"
)

// sigma is the interpolated cross section of a single nuclide for a single
// process. It is queried in log-log space.
type sigma struct {
	f          *interpolate.Akima
	lnLo, lnHi float64
}

// newSigma cleans the table and fits the log-log interpolant.
func newSigma(t Table) sigma {
	c := t.Clean()
	lnE := make([]float64, len(c.E))
	lnV := make([]float64, len(c.V))
	for i := range c.E {
		lnE[i] = math.Log(c.E[i])
		lnV[i] = math.Log(c.V[i])
	}
	f := interpolate.NewAkima(lnE, lnV)
	return sigma{f: f, lnLo: f.Min(), lnHi: f.Max()}
}

// at returns the cross section in m^2 at the given energy in eV.
//
// Energies outside the tabulated domain are clamped to the nearest domain
// edge. Thermal draws can land below the lowest tabulated point, so those
// queries must not abort.
func (s sigma) at(energy float64) float64 {
	lnE := math.Log(energy)
	if lnE < s.lnLo {
		lnE = s.lnLo
	} else if lnE > s.lnHi {
		lnE = s.lnHi
	}
	return math.Exp(s.f.Eval(lnE)) * BarnsToM2
}
