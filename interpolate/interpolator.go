/*package interpolate implements the one dimensional interpolators used on
tabulated nuclear data. Akima is a shape-preserving piecewise cubic and is
used on log-log cross-section tables, where a natural spline would
oscillate across resonances. Linear is used on the source spectrum, which
is sampled in linear space.
*/
package interpolate

// Interpolator is a function interpolated from a table of (x, y) points.
type Interpolator interface {
	Eval(x float64) float64
	EvalAll(xs []float64, out ...[]float64) []float64
}

var (
	_ Interpolator = &Akima{}
	_ Interpolator = &Linear{}
)
