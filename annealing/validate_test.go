package annealing_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/otanneal/annealing"
	"github.com/stretchr/testify/assert"
)

// TestParameters_DegenerateSchedules covers every degenerate configuration:
// each must match both ErrDegenerateSchedule and its precise cause.
func TestParameters_DegenerateSchedules(t *testing.T) {
	tests := []struct {
		name  string
		opts  []annealing.Option
		cause error
	}{
		{"zero iterations", []annealing.Option{annealing.WithIterations(0)}, annealing.ErrNonPositiveIterations},
		{"negative iterations", []annealing.Option{annealing.WithIterations(-3), annealing.WithScaling(0.5)}, annealing.ErrNonPositiveIterations},
		{"zero scaling", []annealing.Option{annealing.WithScaling(0)}, annealing.ErrScalingOutOfRange},
		{"negative scaling", []annealing.Option{annealing.WithScaling(-0.5), annealing.WithIterations(3)}, annealing.ErrScalingOutOfRange},
		{"scaling above one", []annealing.Option{annealing.WithScaling(1.5)}, annealing.ErrScalingOutOfRange},
		{"NaN scaling", []annealing.Option{annealing.WithScaling(math.NaN())}, annealing.ErrScalingOutOfRange},
		{"constant scaling without iterations", []annealing.Option{annealing.WithScaling(1)}, annealing.ErrConstantScaling},
		{"endless ramp", []annealing.Option{annealing.WithScaling(1 - 1e-12)}, annealing.ErrIterationLimit},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			plan, err := annealing.Parameters(1, 2, 0.01, tc.opts...)
			assert.ErrorIs(t, err, annealing.ErrDegenerateSchedule)
			assert.ErrorIs(t, err, tc.cause)
			assert.Zero(t, plan.Iterations(), "no partial plan on error")
			assert.Nil(t, plan.Jumps)
		})
	}
}

// TestParameters_UnderSpecified ensures that omitting both n_iter and
// scaling is its own error, not a degenerate schedule.
func TestParameters_UnderSpecified(t *testing.T) {
	_, err := annealing.Parameters(1, 2, 0.01, annealing.WithReach(1))

	assert.ErrorIs(t, err, annealing.ErrUnderSpecified)
	assert.NotErrorIs(t, err, annealing.ErrDegenerateSchedule)
}

// TestParameters_ValidationOrder checks that n_iter is reported before
// scaling, and scaling before the under-specified case.
func TestParameters_ValidationOrder(t *testing.T) {
	_, err := annealing.Parameters(1, 2, 0.01, annealing.WithIterations(0), annealing.WithScaling(7))
	assert.ErrorIs(t, err, annealing.ErrNonPositiveIterations)

	_, err = annealing.Parameters(-1, 2, 0.01, annealing.WithScaling(7))
	assert.ErrorIs(t, err, annealing.ErrScalingOutOfRange, "schedule checks run before input checks")
}

// TestParameters_InvalidInput covers the numeric input checks.
func TestParameters_InvalidInput(t *testing.T) {
	inf := math.Inf(1)
	tests := []struct {
		name              string
		diameter, p, blur float64
		opts              []annealing.Option
	}{
		{"zero diameter", 0, 2, 0.1, nil},
		{"infinite diameter", inf, 2, 0.1, nil},
		{"NaN p", 1, math.NaN(), 0.1, nil},
		{"negative p", 1, -2, 0.1, nil},
		{"zero blur", 1, 2, 0, nil},
		{"negative reach", 1, 2, 0.1, []annealing.Option{annealing.WithReach(-1)}},
		{"infinite reach", 1, 2, 0.1, []annealing.Option{annealing.WithReach(inf)}},
		{"zero scale", 1, 2, 0.1, []annealing.Option{annealing.WithScales(0.5, 0)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := append([]annealing.Option{annealing.WithIterations(4)}, tc.opts...)
			_, err := annealing.Parameters(tc.diameter, tc.p, tc.blur, opts...)
			assert.ErrorIs(t, err, annealing.ErrInvalidInput)
		})
	}
}

// TestErrorKind maps errors to metric labels.
func TestErrorKind(t *testing.T) {
	_, err := annealing.Parameters(1, 2, 0.01, annealing.WithScaling(1))
	assert.Equal(t, "constant_scaling", annealing.ErrorKind_TestOnly(err))

	_, err = annealing.Parameters(1, 2, 0.01)
	assert.Equal(t, "under_specified", annealing.ErrorKind_TestOnly(err))

	assert.Equal(t, "other", annealing.ErrorKind_TestOnly(assert.AnError))
}
