// SPDX-License-Identifier: MIT
package dualscale

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Primitive is a differentiable scalar operator with a registered adjoint.
type Primitive interface {
	// Forward returns the value of the operator at x.
	Forward(x float64) float64

	// Backward maps the upstream gradient g to the gradient w.r.t. x.
	Backward(g float64) float64
}

// VectorPrimitive applies a Primitive elementwise to whole potentials.
type VectorPrimitive interface {
	Primitive

	// ForwardVec writes Forward(x[i]) into dst.
	ForwardVec(dst *mat.VecDense, x mat.Vector) error

	// BackwardVec writes Backward(g[i]) into dst.
	BackwardVec(dst *mat.VecDense, g mat.Vector) error
}

// Scale is the plain multiplication by C. Its adjoint is the analytic
// derivative, C·g; it serves as the consistent reference primitive.
type Scale struct{ C float64 }

// NewScale returns Scale{C: c}; NaN is ErrInvalidInput.
func NewScale(c float64) (Scale, error) {
	if math.IsNaN(c) {
		return Scale{}, fmt.Errorf("%w: scale constant is NaN", ErrInvalidInput)
	}

	return Scale{C: c}, nil
}

// Forward returns C·x.
func (s Scale) Forward(x float64) float64 { return s.C * x }

// Backward returns C·g.
func (s Scale) Backward(g float64) float64 { return s.C * g }

// ForwardVec writes C·x into dst.
func (s Scale) ForwardVec(dst *mat.VecDense, x mat.Vector) error { return scaleVec(dst, s.C, x) }

// BackwardVec writes C·g into dst.
func (s Scale) BackwardVec(dst *mat.VecDense, g mat.Vector) error { return scaleVec(dst, s.C, g) }

// scaleVec writes alpha·v into dst. An empty dst is resized; otherwise its
// length must match v.
func scaleVec(dst *mat.VecDense, alpha float64, v mat.Vector) error {
	if dst == nil || v == nil {
		return fmt.Errorf("%w: nil vector", ErrDimensionMismatch)
	}
	if !dst.IsEmpty() && dst.Len() != v.Len() {
		return fmt.Errorf("%w: dst has %d entries, input has %d", ErrDimensionMismatch, dst.Len(), v.Len())
	}
	dst.ScaleVec(alpha, v)

	return nil
}

// Compile-time assertions.
var (
	_ VectorPrimitive = Scale{}
	_ VectorPrimitive = UnbalancedWeight{}
)
