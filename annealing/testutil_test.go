// Package annealing_test provides lightweight helpers shared across the
// *_test.go files of this package.
package annealing_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/otanneal/annealing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	// epsTiny is the tolerance for values computed through exp(log(x)).
	epsTiny = 1e-12

	// epsLoose absorbs the error of repeated log-space products.
	epsLoose = 1e-9
)

// mustPlan builds a plan or fails the test immediately.
func mustPlan(t testing.TB, diameter, p, blur float64, opts ...annealing.Option) annealing.DescentParameters {
	t.Helper()
	plan, err := annealing.Parameters(diameter, p, blur, opts...)
	require.NoError(t, err)

	return plan
}

// assertFloatsNear compares two float slices element-wise.
func assertFloatsNear(t *testing.T, want, got []float64, delta float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDeltaf(t, want[i], got[i], delta, "index %d", i)
	}
}

// assertPlanInvariants checks every structural property a valid plan must hold.
func assertPlanInvariants(t *testing.T, plan annealing.DescentParameters, blur, p float64) {
	t.Helper()
	n := plan.Iterations()
	require.GreaterOrEqual(t, n, 1, "n_iter >= 1")
	require.Len(t, plan.EpsList, n)
	require.Len(t, plan.RhoList, n)
	assert.GreaterOrEqual(t, plan.Diameter, blur, "diameter >= blur")

	for i, b := range plan.BlurList {
		assert.GreaterOrEqualf(t, b, blur, "blur_list[%d] >= blur", i)
		assert.InDeltaf(t, math.Pow(b, p), plan.EpsList[i], epsTiny*(1+plan.EpsList[i]), "eps_list[%d]", i)
		if i > 0 {
			assert.LessOrEqualf(t, b, plan.BlurList[i-1], "blur_list non-increasing at %d", i)
		}
		assert.Equalf(t, plan.RhoList[0], plan.RhoList[i], "rho_list constant at %d", i)
	}
	for i, j := range plan.Jumps {
		assert.Lessf(t, j, n, "jumps[%d] < n_iter", i)
		if i > 0 {
			assert.Greaterf(t, j, plan.Jumps[i-1], "jumps strictly increasing at %d", i)
		}
	}
}
