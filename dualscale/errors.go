// SPDX-License-Identifier: MIT
package dualscale

import "errors"

var (
	// ErrInvalidInput indicates a NaN, negative or infinite eps, a NaN or
	// negative rho, or a NaN scale constant.
	ErrInvalidInput = errors.New("dualscale: invalid input")

	// ErrBalanced indicates rho = +Inf. Balanced OT has no unbalanced weight:
	// the caller must take the balanced branch of its Sinkhorn formula.
	ErrBalanced = errors.New("dualscale: rho is +Inf (balanced OT), no unbalanced weight")

	// ErrOutOfRange indicates an iteration index outside the plan, or eps and
	// rho lists of different lengths.
	ErrOutOfRange = errors.New("dualscale: iteration out of range")

	// ErrDimensionMismatch indicates vectors of different lengths.
	ErrDimensionMismatch = errors.New("dualscale: dimension mismatch")
)
