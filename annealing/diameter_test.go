package annealing_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/otanneal/annealing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestMaxDiameter_BoundingBox: the joint box of the two clouds is
// [0,3]×[-1,3], whose diagonal is 5.
func TestMaxDiameter_BoundingBox(t *testing.T) {
	x := mat.NewDense(2, 2, []float64{
		0, 0,
		1, 3,
	})
	y := mat.NewDense(3, 2, []float64{
		3, -1,
		2, 2,
		1, 1,
	})

	d, err := annealing.MaxDiameter(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, d, epsTiny)
}

// TestMaxDiameter_Symmetric ensures the estimate does not depend on the order
// of the clouds, and that a single point gives zero.
func TestMaxDiameter_Symmetric(t *testing.T) {
	x := mat.NewDense(1, 3, []float64{1, 2, 3})
	y := mat.NewDense(2, 3, []float64{0, 0, 0, 2, 2, 2})

	a, err := annealing.MaxDiameter(x, y)
	require.NoError(t, err)
	b, err := annealing.MaxDiameter(y, x)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.InDelta(t, math.Sqrt(4+4+9), a, epsTiny)

	zero, err := annealing.MaxDiameter(x, x)
	require.NoError(t, err)
	assert.Equal(t, 0.0, zero)
}

// TestMaxDiameter_Errors covers nil, empty and mismatched clouds.
func TestMaxDiameter_Errors(t *testing.T) {
	x := mat.NewDense(2, 2, nil)

	_, err := annealing.MaxDiameter(nil, x)
	assert.ErrorIs(t, err, annealing.ErrEmptyCloud)

	_, err = annealing.MaxDiameter(x, &mat.Dense{})
	assert.ErrorIs(t, err, annealing.ErrEmptyCloud)

	_, err = annealing.MaxDiameter(x, mat.NewDense(2, 3, nil))
	assert.ErrorIs(t, err, annealing.ErrDimensionMismatch)
}

// TestMaxDiameter_FeedsParameters uses the estimate as the starting scale.
func TestMaxDiameter_FeedsParameters(t *testing.T) {
	x := mat.NewDense(2, 1, []float64{0, 4})
	y := mat.NewDense(1, 1, []float64{8})

	d, err := annealing.MaxDiameter(x, y)
	require.NoError(t, err)

	plan := mustPlan(t, d, 1, 1, annealing.WithScaling(0.5))
	assert.Equal(t, 8.0, plan.BlurList[0])
	assert.Equal(t, 5, plan.Iterations(), "8→4→2→1→1")
}
