// SPDX-License-Identifier: MIT

// Package annealing: domain types of the descent plan.
// This file contains ONLY the public value types (modes, marginals and the
// DescentParameters record). Errors and options live in errors.go and
// options.go.
package annealing

import (
	"math"
	"slices"
)

// Balanced is the rho value that stands for +Inf reach, i.e. balanced OT
// with hard marginal constraints. RhoList entries equal to Balanced play the
// role of a "null" strength.
var Balanced = math.Inf(1)

// IsBalanced reports whether rho encodes balanced OT (+Inf).
func IsBalanced(rho float64) bool { return math.IsInf(rho, 1) }

// Mode names the combination of optional schedule parameters the caller
// supplied. It is resolved once, on entry to Parameters.
type Mode int

const (
	// ModeUnspecified: neither n_iter nor scaling. Rejected with ErrUnderSpecified.
	ModeUnspecified Mode = iota

	// ModeIterations: n_iter only. Geometric span from diameter down to blur.
	ModeIterations

	// ModeScaling: scaling only. n_iter is derived from diameter, blur and scaling.
	ModeScaling

	// ModeIterationsScaling: both. Geometric ramp of ratio scaling with a floor at blur.
	ModeIterationsScaling
)

// String implements fmt.Stringer; values are used as metric labels.
func (m Mode) String() string {
	switch m {
	case ModeIterations:
		return "iterations"
	case ModeScaling:
		return "scaling"
	case ModeIterationsScaling:
		return "iterations_scaling"
	default:
		return "unspecified"
	}
}

// Marginals tells whether marginal constraints are hard (balanced) or soft.
type Marginals int

const (
	// BalancedMarginals: no reach given, rho = +Inf.
	BalancedMarginals Marginals = iota

	// SoftMarginals: reach given, rho = reach^p.
	SoftMarginals
)

// DescentParameters is the plan consumed by a Sinkhorn loop, produced once
// per solve and treated as read-only afterwards.
//
// Invariants:
//   - len(BlurList) == len(EpsList) == len(RhoList) == n_iter >= 1.
//   - BlurList is non-increasing, every entry >= blur.
//   - EpsList[i] == BlurList[i]^p.
//   - RhoList is constant; Balanced (+Inf) when no reach was given.
//   - Jumps is strictly increasing, every entry < n_iter; it has
//     len(scales)-1 entries in multiscale mode and is empty otherwise.
type DescentParameters struct {
	Diameter float64   // max(diameter, blur)
	BlurList []float64 // blur length scale per iteration
	EpsList  []float64 // temperature per iteration
	RhoList  []float64 // marginal constraint strength per iteration
	Jumps    []int     // iterations after which the solver moves to a finer representation
}

// Iterations returns n_iter, the number of Sinkhorn iterations of the plan.
func (d DescentParameters) Iterations() int { return len(d.BlurList) }

// Balanced reports whether the plan runs balanced OT.
func (d DescentParameters) Balanced() bool {
	return len(d.RhoList) > 0 && IsBalanced(d.RhoList[0])
}

// IsJump reports whether the solver must switch to a finer representation
// of the input measures right after iteration i.
func (d DescentParameters) IsJump(i int) bool {
	_, found := slices.BinarySearch(d.Jumps, i)

	return found
}

// Clone returns a deep copy so that callers can never alias a cached plan.
func (d DescentParameters) Clone() DescentParameters {
	return DescentParameters{
		Diameter: d.Diameter,
		BlurList: slices.Clone(d.BlurList),
		EpsList:  slices.Clone(d.EpsList),
		RhoList:  slices.Clone(d.RhoList),
		Jumps:    append([]int{}, d.Jumps...),
	}
}
