package nuclear

import (
	"math"
	"math/rand"
	"testing"

	"github.com/gonum/floats"
	"github.com/stretchr/testify/assert"
)

// logTable builds a table with n log-spaced energies on [lo, hi] and
// values given by f.
func logTable(lo, hi float64, n int, f func(e float64) float64) Table {
	t := Table{E: make([]float64, n), V: make([]float64, n)}
	dx := (math.Log(hi) - math.Log(lo)) / float64(n-1)
	for i := range t.E {
		t.E[i] = math.Exp(math.Log(lo) + dx*float64(i))
		t.V[i] = f(t.E[i])
	}
	return t
}

func flat(v float64) func(float64) float64 {
	return func(e float64) float64 { return v }
}

func TestCleanDropsZeroRowsAndDuplicates(t *testing.T) {
	tab := Table{
		E: []float64{1, 2, 2, 3, 0, 4},
		V: []float64{5, 6, 7, 0, 8, 9},
	}
	c := tab.Clean()
	assert.Equal(t, []float64{1, 2, 4}, c.E)
	assert.Equal(t, []float64{5, 6, 9}, c.V)
}

func TestCrossSectionRoundTrip(t *testing.T) {
	// A power-law-like table: the fit must recover the table values at
	// the tabulated energies.
	tab := logTable(1e-5, 2e7, 40, func(e float64) float64 {
		return 20 * math.Pow(e, -0.1)
	})
	total := NewTotal([]Table{tab}, []float64{1}, WaterNumberDensity)

	for i, e := range tab.E {
		want := tab.V[i] * BarnsToM2
		got := total.CrossSection(e, 0)
		assert.True(t, floats.EqualWithinRel(want, got, 1e-6),
			"sigma(%g) = %g, want %g", e, got, want)
	}
}

func TestMeanFreePath(t *testing.T) {
	h := logTable(1e-8, 1e9, 25, flat(20))
	o := logTable(1e-8, 1e9, 25, flat(4))
	total := NewTotal([]Table{h, o}, []float64{2, 1}, WaterNumberDensity)

	// Flat cross sections make the expected value exact:
	// 1 / (n * (2*20 + 1*4) barns).
	want := 1 / (WaterNumberDensity * 44 * BarnsToM2)
	for _, e := range []float64{1e-6, 0.0253, 1, 2e6} {
		mfp := total.MeanFreePath(e)
		assert.True(t, mfp > 0 && !math.IsInf(mfp, 0), "mfp(%g) = %g", e, mfp)
		assert.True(t, floats.EqualWithinRel(want, mfp, 1e-6),
			"mfp(%g) = %g, want %g", e, mfp, want)
	}
}

func TestSelectionRatio(t *testing.T) {
	h := logTable(1e-8, 1e9, 25, flat(20))
	o := logTable(1e-8, 1e9, 25, flat(4))
	total := NewTotal([]Table{h, o}, []float64{2, 1}, WaterNumberDensity)

	for _, e := range []float64{1e-6, 0.0253, 1, 2e6} {
		ratio := total.SelectionRatio(e)
		assert.True(t, ratio >= 0 && ratio <= 1, "ratio(%g) = %g", e, ratio)
		assert.True(t, floats.EqualWithinRel(40.0/44.0, ratio, 1e-6))
	}
}

func TestCrossSectionClampsOutOfDomain(t *testing.T) {
	tab := logTable(1e-5, 1e7, 25, flat(20))
	total := NewTotal([]Table{tab}, []float64{1}, WaterNumberDensity)

	// Queries beyond the table snap to the nearest edge instead of
	// aborting: thermal draws can land below the lowest tabulated point.
	lo := total.CrossSection(1e-5, 0)
	assert.Equal(t, lo, total.CrossSection(1e-9, 0))
	hi := total.CrossSection(1e7, 0)
	assert.Equal(t, hi, total.CrossSection(1e9, 0))
}

func TestAbsorptionRates(t *testing.T) {
	scat := []Table{
		logTable(1e-8, 1e9, 25, flat(20)),
		logTable(1e-8, 1e9, 25, flat(4)),
	}
	abs := []Table{
		logTable(1e-8, 1e9, 25, flat(0.3)),
		logTable(1e-8, 1e9, 25, flat(2e-4)),
	}
	a := NewAbsorption(scat, abs, []float64{2, 1})

	for _, e := range []float64{1e-6, 0.0253, 1, 2e6} {
		rates := a.Rates(e)
		assert.Len(t, rates, 2)
		for i, rate := range rates {
			assert.True(t, rate >= 0 && rate <= 1, "rate[%d](%g) = %g", i, e, rate)
			assert.Equal(t, a.Rate(e, i), rate)
		}
		assert.True(t, floats.EqualWithinRel(0.3/20, rates[0], 1e-6))
		assert.True(t, floats.EqualWithinRel(2e-4/4, rates[1], 1e-6))
	}
}

func TestTotalAbsorptionRate(t *testing.T) {
	scat := []Table{
		logTable(1e-8, 1e9, 25, flat(20)),
		logTable(1e-8, 1e9, 25, flat(4)),
	}
	abs := []Table{
		logTable(1e-8, 1e9, 25, flat(0.3)),
		logTable(1e-8, 1e9, 25, flat(2e-4)),
	}
	a := NewAbsorption(scat, abs, []float64{2, 1})

	// Flat cross sections make the expected value exact:
	// 1 / (2*(20/0.3) + 1*(4/2e-4)).
	want := 1 / (2*(20/0.3) + 4/2e-4)
	for _, e := range []float64{1e-6, 0.0253, 1, 2e6} {
		rate := a.TotalRate(e)
		assert.True(t, rate > 0 && rate < 1, "total rate(%g) = %g", e, rate)
		assert.True(t, floats.EqualWithinRel(want, rate, 1e-6),
			"total rate(%g) = %g, want %g", e, rate, want)
	}
}

func TestSpectrumSample(t *testing.T) {
	tab := Table{
		E: []float64{1, 1.5, 2, 2.5, 3},
		V: []float64{0.2, 0.8, 1, 0.5, 0.1},
	}
	s, err := NewSpectrum(tab)
	assert.NoError(t, err)

	min, max := s.Bounds()
	assert.Equal(t, 1.0, min)
	assert.Equal(t, 3.0, max)

	rng := rand.New(rand.NewSource(7))
	es := s.Sample(rng, 2000)
	assert.Len(t, es, 2000)
	sum := 0.0
	for _, e := range es {
		assert.True(t, e >= 1 && e <= 3, "energy %g out of bounds", e)
		sum += e
	}
	// The density peaks near 1.75; the mean should sit well left of the
	// domain midpoint.
	assert.True(t, sum/2000 < 2)
}

func TestSpectrumRejectsUnnormalizedTable(t *testing.T) {
	tab := Table{E: []float64{1, 2, 3}, V: []float64{0.5, 1.8, 0.5}}
	_, err := NewSpectrum(tab)
	assert.Error(t, err)
}

func TestLegendreSeries(t *testing.T) {
	s := legendreSeries([]float64{0.4, 0.2})
	assert.Len(t, s, 3)
	assert.Equal(t, 0.5, s[0])
	assert.True(t, floats.EqualWithinAbs(0.6, s[1], 1e-12))
	assert.True(t, floats.EqualWithinAbs(0.5, s[2], 1e-12))
}

func TestLegval(t *testing.T) {
	// P0, P1, P2, P3 at a few points.
	p2 := func(x float64) float64 { return (3*x*x - 1) / 2 }
	p3 := func(x float64) float64 { return (5*x*x*x - 3*x) / 2 }

	for _, x := range []float64{-1, -0.3, 0, 0.7, 1} {
		assert.True(t, floats.EqualWithinAbs(1, legval(x, []float64{1}), 1e-12))
		assert.True(t, floats.EqualWithinAbs(x, legval(x, []float64{0, 1}), 1e-12))
		assert.True(t,
			floats.EqualWithinAbs(p2(x), legval(x, []float64{0, 0, 1}), 1e-12))
		assert.True(t,
			floats.EqualWithinAbs(p3(x), legval(x, []float64{0, 0, 0, 1}), 1e-12))
	}
}

func TestAngularIsotropic(t *testing.T) {
	// All-zero coefficient rows leave only the normalizing 0.5 term: the
	// cosine density is uniform on [-1, 1].
	tables := []AngularTable{{
		E:      []float64{1e-8, 1e9},
		Coeffs: [][]float64{{0, 0, 0}, {0, 0, 0}},
	}}
	a := NewAngular(tables)
	rng := rand.New(rand.NewSource(11))

	n := 4000
	sum := 0.0
	for i := 0; i < n; i++ {
		mu := a.CMCosine(rng, 0, 100)
		assert.True(t, mu >= -1 && mu <= 1, "cosine %g out of range", mu)
		sum += mu
	}
	assert.InDelta(t, 0, sum/float64(n), 0.05)
}

func TestAngularRowSelection(t *testing.T) {
	// Two rows with opposite linear anisotropy. Energies at or beyond the
	// breakpoints must snap to the end rows.
	tables := []AngularTable{{
		E:      []float64{1, 100},
		Coeffs: [][]float64{{0.3}, {-0.3}},
	}}
	a := NewAngular(tables)
	rng := rand.New(rand.NewSource(13))

	// Row 0 has density 0.5 + 0.45x: forward-peaked, mean cosine 0.3.
	n := 4000
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += a.CMCosine(rng, 0, 0.01)
	}
	assert.InDelta(t, 0.3, sum/float64(n), 0.05)

	// Row 1 is the mirror image.
	sum = 0.0
	for i := 0; i < n; i++ {
		sum += a.CMCosine(rng, 0, 1e6)
	}
	assert.InDelta(t, -0.3, sum/float64(n), 0.05)
}
