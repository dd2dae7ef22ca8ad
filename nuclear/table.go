/*package nuclear converts tabulated nuclear data into the continuous
quantities the transport loop needs: cross sections, mean free paths,
nuclide selection ratios, absorption rates, source energies, and
center-of-mass scattering cosines.

Cross-section tables are interpolated with a shape-preserving cubic over
(ln E, ln sigma), since the data spans many decades on both axes and a
non-monotone fit would produce negative cross sections between resonance
points.
*/
package nuclear

// BarnsToM2 converts a cross section in barns to an area in m^2.
const BarnsToM2 = 1e-28

// WaterNumberDensity is the number of molecules per m^3 of water at room
// temperature.
const WaterNumberDensity = 3.3327677048150236e28

// Table is a two column table of (energy, value) pairs, energy in eV.
type Table struct {
	E, V []float64
}

// Clean returns a copy of the table with duplicate energy entries removed
// and any row containing a zero in either column dropped. Interpolation in
// log space requires both.
func (t Table) Clean() Table {
	out := Table{
		E: make([]float64, 0, len(t.E)),
		V: make([]float64, 0, len(t.V)),
	}
	seen := make(map[float64]bool, len(t.E))
	for i := range t.E {
		if t.E[i] == 0 || t.V[i] == 0 || seen[t.E[i]] {
			continue
		}
		seen[t.E[i]] = true
		out.E = append(out.E, t.E[i])
		out.V = append(out.V, t.V[i])
	}
	return out
}

// AngularTable holds an angular distribution table for one nuclide: a
// sorted sequence of energy breakpoints (eV), each with the Legendre
// coefficients of the scattering-cosine density at that energy, in
// ascending order and without the leading term.
type AngularTable struct {
	E      []float64
	Coeffs [][]float64
}
