package interpolate

import (
	"log"
)

// Linear is a linear interpolator over a strictly increasing sequence of
// x values.
type Linear struct {
	xs, vals []float64
	dx       float64
}

// NewLinear creates a linear interpolator for the points xs which take on
// the values given by vals.
//
// Lookups occur in O(log |xs|), possibly faster depending on the access
// pattern and data layout.
func NewLinear(xs, vals []float64) *Linear {
	if len(xs) != len(vals) {
		log.Fatalf(
			"Table given to NewLinear() has len(xs) = %d but len(vals) = %d.",
			len(xs), len(vals),
		)
	} else if len(xs) <= 1 {
		log.Fatalf("Table given to NewLinear() has length of %d.", len(xs))
	}
	for i := 0; i < len(xs)-1; i++ {
		if xs[i+1] <= xs[i] {
			log.Fatal("Table given to NewLinear() not strictly increasing.")
		}
	}

	lin := &Linear{}
	lin.xs = make([]float64, len(xs))
	lin.vals = make([]float64, len(vals))
	copy(lin.xs, xs)
	copy(lin.vals, vals)
	lin.dx = (xs[len(xs)-1] - xs[0]) / float64(len(xs)-1)
	return lin
}

// Eval returns the interpolated value at x.
//
// x must be within the range of x values given to NewLinear().
func (lin *Linear) Eval(x float64) float64 {
	if x < lin.xs[0] || x > lin.xs[len(lin.xs)-1] {
		log.Fatalf("Point %g given to Linear.Eval() out of bounds [%g, %g].",
			x, lin.xs[0], lin.xs[len(lin.xs)-1])
	}

	i := lin.bsearch(x)
	x1, x2 := lin.xs[i], lin.xs[i+1]
	v1, v2 := lin.vals[i], lin.vals[i+1]
	return (v2-v1)/(x2-x1)*(x-x1) + v1
}

// EvalAll evaluates the interpolator at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (lin *Linear) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = lin.Eval(x)
	}
	return out[0]
}

// Min and Max return the domain of the interpolant.
func (lin *Linear) Min() float64 { return lin.xs[0] }
func (lin *Linear) Max() float64 { return lin.xs[len(lin.xs)-1] }

func (lin *Linear) bsearch(x float64) int {
	guess := int((x - lin.xs[0]) / lin.dx)
	if guess >= 0 && guess < len(lin.xs)-1 &&
		lin.xs[guess] <= x && lin.xs[guess+1] >= x {

		return guess
	}

	lo, hi := 0, len(lin.xs)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x >= lin.xs[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}
