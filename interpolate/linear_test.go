package interpolate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinearEval(t *testing.T) {
	lin := NewLinear([]float64{0, 1, 3}, []float64{0, 2, 2})

	assert.Equal(t, 0.0, lin.Eval(0), "left edge")
	assert.Equal(t, 1.0, lin.Eval(0.5), "first segment")
	assert.Equal(t, 2.0, lin.Eval(1), "interior knot")
	assert.Equal(t, 2.0, lin.Eval(2), "flat segment")
	assert.Equal(t, 2.0, lin.Eval(3), "right edge")
}

func TestLinearEvalAll(t *testing.T) {
	lin := NewLinear([]float64{0, 1, 2}, []float64{5, 7, 9})

	points := []float64{0, 0.25, 1.5, 2}
	out := lin.EvalAll(points)
	assert.Equal(t, []float64{5, 5.5, 8, 9}, out)

	buf := make([]float64, len(points))
	lin.EvalAll(points, buf)
	assert.Equal(t, out, buf)
}

func TestLinearDomain(t *testing.T) {
	lin := NewLinear([]float64{2, 4, 8}, []float64{0, 0, 0})
	assert.Equal(t, 2.0, lin.Min())
	assert.Equal(t, 8.0, lin.Max())
}
