package nuclear

import (
	"log"
	"math/rand"

	"github.com/moderato-sim/moderato/sample"
)

// capGridSize is the number of grid points used to bound each row's
// Legendre density at construction time.
const capGridSize = 201

// Angular samples center-of-mass scattering cosines from tabulated Legendre
// coefficient rows, one table per nuclide. Immutable after construction;
// the random stream is supplied per draw.
//
// The tables encode Legendre coefficients rather than raw densities, so an
// incident energy is not interpolated numerically. Instead the two rows
// bracketing it are chosen between probabilistically, weighted by the
// linear interpolation fraction.
type Angular struct {
	tables []AngularTable

	// series[i][j] holds the full Legendre coefficients of nuclide i,
	// row j: a leading 0.5 followed by the table coefficients scaled by
	// (2(k+1)+1)/2. The leading term normalizes the density over [-1, 1].
	series [][][]float64

	// caps[i][j] is the rejection density cap of nuclide i, row j. It is
	// at least 1, and larger when the series peaks above 1, so that
	// forward-peaked rows cannot starve the sampler.
	caps [][]float64
}

// NewAngular creates an Angular sampler from one angular table per nuclide.
func NewAngular(tables []AngularTable) *Angular {
	a := &Angular{tables: tables}
	a.series = make([][][]float64, len(tables))
	a.caps = make([][]float64, len(tables))
	for i, t := range tables {
		if len(t.E) == 0 || len(t.E) != len(t.Coeffs) {
			log.Fatalf(
				"Angular table %d has %d energies and %d coefficient rows.",
				i, len(t.E), len(t.Coeffs),
			)
		}
		a.series[i] = make([][]float64, len(t.Coeffs))
		a.caps[i] = make([]float64, len(t.Coeffs))
		for j, row := range t.Coeffs {
			s := legendreSeries(row)
			a.series[i][j] = s

			bound := 1.0
			for k := 0; k < capGridSize; k++ {
				x := -1 + 2*float64(k)/float64(capGridSize-1)
				if v := legval(x, s) * 1.05; v > bound {
					bound = v
				}
			}
			a.caps[i][j] = bound
		}
	}
	return a
}

// legendreSeries converts a table row into the coefficients of the density
// series: coefficient k of the row is scaled by (2(k+1)+1)/2 and a leading
// term of 0.5 is prepended, which normalizes the density over [-1, 1].
func legendreSeries(row []float64) []float64 {
	s := make([]float64, len(row)+1)
	s[0] = 0.5
	for k, c := range row {
		s[k+1] = c * float64(2*(k+1)+1) / 2
	}
	return s
}

// legval evaluates the Legendre series with the given coefficients at x
// using the three term recurrence.
func legval(x float64, coeffs []float64) float64 {
	sum := 0.0
	pPrev, p := 1.0, x
	for k, c := range coeffs {
		switch k {
		case 0:
			sum += c
		case 1:
			sum += c * x
		default:
			pPrev, p = p, (float64(2*k-1)*x*p-float64(k-1)*pPrev)/float64(k)
			sum += c * p
		}
	}
	return sum
}

// rowIndex picks the coefficient row used for nuclide i at the given
// energy. Energies outside the breakpoint range snap to the nearest end
// row; between breakpoints the lower or upper row is chosen with
// probability proportional to the linear interpolation fraction.
func (a *Angular) rowIndex(rng *rand.Rand, i int, energy float64) int {
	es := a.tables[i].E
	if energy <= es[0] {
		return 0
	}
	if energy >= es[len(es)-1] {
		return len(es) - 1
	}

	j := 1
	for ; j < len(es); j++ {
		if es[j] > energy {
			break
		}
	}
	f := (energy - es[j-1]) / (es[j] - es[j-1])
	if rng.Float64() > f {
		return j - 1
	}
	return j
}

// CMCosine draws the cosine of the center-of-mass scattering angle for a
// collision with nuclide i at the given energy in eV.
func (a *Angular) CMCosine(rng *rand.Rand, i int, energy float64) float64 {
	j := a.rowIndex(rng, i, energy)
	s := a.series[i][j]
	return sample.Rejection(rng, -1, 1, a.caps[i][j], func(x float64) float64 {
		return legval(x, s)
	})
}
