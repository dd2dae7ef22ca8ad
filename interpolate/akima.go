package interpolate

import (
	"log"
	"math"
)

type akimaCoeff struct {
	a, b, c, d float64
}

// Akima represents a 1D piecewise cubic built with Akima's slope weighting.
// Unlike a natural spline it does not overshoot between points, which keeps
// interpolated cross sections positive in log space.
type Akima struct {
	xs, ys []float64
	coeffs []akimaCoeff

	// Usually the input data is close to uniform. This is our estimate of
	// the point spacing.
	dx float64
}

// NewAkima creates an Akima interpolator from a table of x and y values.
// The x values must be strictly increasing.
//
// xs and ys must not be modified throughout the lifetime of the Akima.
func NewAkima(xs, ys []float64) *Akima {
	if len(xs) != len(ys) {
		log.Fatalf(
			"Table given to NewAkima() has len(xs) = %d but len(ys) = %d.",
			len(xs), len(ys),
		)
	} else if len(xs) <= 1 {
		log.Fatalf("Table given to NewAkima() has length of %d.", len(xs))
	}
	for i := 0; i < len(xs)-1; i++ {
		if xs[i+1] <= xs[i] {
			log.Fatal("Table given to NewAkima() not strictly increasing.")
		}
	}

	ak := new(Akima)
	ak.xs = make([]float64, len(xs))
	ak.ys = make([]float64, len(xs))
	copy(ak.xs, xs)
	copy(ak.ys, ys)
	ak.dx = (xs[len(xs)-1] - xs[0]) / float64(len(xs)-1)

	ak.calcCoeffs()
	return ak
}

// Eval computes the value of the interpolant at the given point.
//
// x must be within the range of x values given to NewAkima().
func (ak *Akima) Eval(x float64) float64 {
	if x < ak.xs[0] || x > ak.xs[len(ak.xs)-1] {
		log.Fatalf("Point %g given to Akima.Eval() out of bounds [%g, %g].",
			x, ak.xs[0], ak.xs[len(ak.xs)-1])
	}

	i := ak.bsearch(x)
	dx := x - ak.xs[i]
	a, b, c, d := ak.coeffs[i].a, ak.coeffs[i].b, ak.coeffs[i].c, ak.coeffs[i].d
	return a*dx*dx*dx + b*dx*dx + c*dx + d
}

// EvalAll evaluates the interpolator at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (ak *Akima) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = ak.Eval(x)
	}
	return out[0]
}

// Min and Max return the domain of the interpolant.
func (ak *Akima) Min() float64 { return ak.xs[0] }
func (ak *Akima) Max() float64 { return ak.xs[len(ak.xs)-1] }

// bsearch returns the index of the largest element in xs which is smaller
// than x.
func (ak *Akima) bsearch(x float64) int {
	// Guess under the assumption of uniform spacing.
	guess := int((x - ak.xs[0]) / ak.dx)
	if guess >= 0 && guess < len(ak.xs)-1 &&
		ak.xs[guess] <= x && ak.xs[guess+1] >= x {

		return guess
	}

	lo, hi := 0, len(ak.xs)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x >= ak.xs[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// calcCoeffs computes the cubic coefficients of every interval from the
// Akima-weighted derivative estimates at each point.
func (ak *Akima) calcCoeffs() {
	n := len(ak.xs)
	xs, ys := ak.xs, ak.ys

	// Segment slopes, padded with two quadratically extrapolated slopes on
	// each end so that the weighting below is defined at the boundaries.
	// ext[k] is the slope of segment k-2.
	ext := make([]float64, n+3)
	for i := 0; i < n-1; i++ {
		ext[i+2] = (ys[i+1] - ys[i]) / (xs[i+1] - xs[i])
	}
	ext[1] = 2*ext[2] - ext[3]
	ext[0] = 2*ext[1] - ext[2]
	ext[n+1] = 2*ext[n] - ext[n-1]
	ext[n+2] = 2*ext[n+1] - ext[n]

	// Akima derivative estimate at every table point.
	ts := make([]float64, n)
	for i := range ts {
		w1 := math.Abs(ext[i+3] - ext[i+2])
		w2 := math.Abs(ext[i+1] - ext[i])
		if w1+w2 == 0 {
			ts[i] = (ext[i+1] + ext[i+2]) / 2
		} else {
			ts[i] = (w1*ext[i+1] + w2*ext[i+2]) / (w1 + w2)
		}
	}

	ak.coeffs = make([]akimaCoeff, n-1)
	for i := range ak.coeffs {
		h := xs[i+1] - xs[i]
		m := ext[i+2]
		ak.coeffs[i].d = ys[i]
		ak.coeffs[i].c = ts[i]
		ak.coeffs[i].b = (3*m - 2*ts[i] - ts[i+1]) / h
		ak.coeffs[i].a = (ts[i] + ts[i+1] - 2*m) / (h * h)
	}
}
