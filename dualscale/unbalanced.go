// SPDX-License-Identifier: MIT
package dualscale

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// UnbalancedWeight scales dual potentials on the unbalanced branch of a
// Sinkhorn update. The zero value is the weight for eps = rho = 0.
type UnbalancedWeight struct {
	eps float64
	rho float64
}

// NewUnbalancedWeight validates eps >= 0 and a finite rho >= 0.
func NewUnbalancedWeight(eps, rho float64) (UnbalancedWeight, error) {
	switch {
	case math.IsNaN(eps) || eps < 0 || math.IsInf(eps, 1):
		return UnbalancedWeight{}, fmt.Errorf("%w: eps=%g", ErrInvalidInput, eps)
	case math.IsInf(rho, 1):
		return UnbalancedWeight{}, ErrBalanced
	case math.IsNaN(rho) || rho < 0:
		return UnbalancedWeight{}, fmt.Errorf("%w: rho=%g", ErrInvalidInput, rho)
	}

	return UnbalancedWeight{eps: eps, rho: rho}, nil
}

// Eps returns the temperature.
func (w UnbalancedWeight) Eps() float64 { return w.eps }

// Rho returns the marginal constraint strength.
func (w UnbalancedWeight) Rho() float64 { return w.rho }

// ForwardFactor is rho + eps/2.
func (w UnbalancedWeight) ForwardFactor() float64 { return w.rho + w.eps/2 }

// BackwardFactor is rho + eps.
func (w UnbalancedWeight) BackwardFactor() float64 { return w.rho + w.eps }

// Forward returns (rho + eps/2)·x.
func (w UnbalancedWeight) Forward(x float64) float64 { return w.ForwardFactor() * x }

// Backward returns (rho + eps)·g. This is deliberately not the derivative of
// Forward.
func (w UnbalancedWeight) Backward(g float64) float64 { return w.BackwardFactor() * g }

// ForwardVec writes (rho + eps/2)·x into dst.
func (w UnbalancedWeight) ForwardVec(dst *mat.VecDense, x mat.Vector) error {
	return scaleVec(dst, w.ForwardFactor(), x)
}

// BackwardVec writes (rho + eps)·g into dst.
func (w UnbalancedWeight) BackwardVec(dst *mat.VecDense, g mat.Vector) error {
	return scaleVec(dst, w.BackwardFactor(), g)
}

// String implements fmt.Stringer.
func (w UnbalancedWeight) String() string {
	return fmt.Sprintf("UnbalancedWeight(eps=%g, rho=%g)", w.eps, w.rho)
}

// ForIteration builds the weight for iteration i of a plan given its
// temperature and constraint-strength lists.
func ForIteration(epsList, rhoList []float64, i int) (UnbalancedWeight, error) {
	if len(epsList) != len(rhoList) {
		return UnbalancedWeight{}, fmt.Errorf("%w: %d temperatures, %d strengths",
			ErrOutOfRange, len(epsList), len(rhoList))
	}
	if i < 0 || i >= len(epsList) {
		return UnbalancedWeight{}, fmt.Errorf("%w: i=%d, n_iter=%d", ErrOutOfRange, i, len(epsList))
	}

	return NewUnbalancedWeight(epsList[i], rhoList[i])
}
