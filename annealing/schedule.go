// SPDX-License-Identifier: MIT
// Package annealing - the epsilon-scaling schedule.
//
// This file turns high-level user parameters into the numerical values that
// drive a Sinkhorn loop. We use an aggressive exponential cooling schedule:
// starting from diameter^p, the temperature eps is divided by scaling^p at
// every iteration until it reaches the floor blur^p.
//
// Design principles:
//   - Pure & deterministic: no randomness, no globals, no I/O.
//   - Atomic: on error the zero DescentParameters is returned, never a partial plan.
//   - Exact endpoints: the first value equals diameter and clamped values
//     equal blur bit-for-bit, so callers may compare against blur directly.
package annealing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Parameters builds the descent plan of one OT solve.
//
// Implementation:
//   - Stage 1: gather options, resolve Mode, validate (see validate.go).
//   - Stage 2: diameter = max(diameter, blur).
//   - Stage 3: derive n_iter when only scaling was given.
//   - Stage 4: build BlurList with exactly one of three policies:
//     scaling == 1           → constant blur (plain Sinkhorn),
//     ModeIterations         → geometric span over [diameter, blur],
//     otherwise              → geometric ramp of ratio scaling, floored at blur.
//   - Stage 5: EpsList[i] = BlurList[i]^p; RhoList = reach^p or Balanced.
//   - Stage 6: multiscale jumps (jumps.go).
//
// Inputs:
//   - diameter: upper bound on the distance between samples, > 0.
//   - p: exponent of the ground cost |x-y|^p / p, > 0.
//   - blur: target blur scale, > 0. The final temperature is blur^p.
//   - opts: WithIterations, WithScaling (at least one), WithReach, WithScales.
//
// Errors:
//   - ErrNonPositiveIterations, ErrScalingOutOfRange, ErrConstantScaling,
//     ErrIterationLimit (all also match ErrDegenerateSchedule).
//   - ErrUnderSpecified, ErrInvalidInput.
//   - ErrScheduleTooSteep, ErrScheduleUnreachable (multiscale only).
//
// Complexity:
//   - Time O(n_iter + len(scales)), Space O(n_iter).
//
// Example:
//
//	plan, err := annealing.Parameters(1, 2, 0.01, annealing.WithScaling(0.1))
//	// plan.BlurList ≈ [1, 0.1, 0.01, 0.01]
func Parameters(diameter, p, blur float64, opts ...Option) (DescentParameters, error) {
	o := gatherOptions(opts...)

	return build(diameter, p, blur, o)
}

// build is Parameters over already gathered options (shared with Planner).
func build(diameter, p, blur float64, o Options) (DescentParameters, error) {
	if err := validate(diameter, p, blur, o); err != nil {
		return DescentParameters{}, err
	}

	// The schedule must start at or above the target resolution.
	diameter = math.Max(diameter, blur)

	mode := o.mode()
	nIter := o.nIter
	if mode == ModeScaling {
		n, err := deriveIterations(diameter, blur, o.scaling)
		if err != nil {
			return DescentParameters{}, err
		}
		nIter = n
	}

	var blurList []float64
	switch {
	case o.hasScaling && o.scaling == 1:
		blurList = constantBlur(blur, nIter)
	case mode == ModeIterations:
		blurList = geometricSpan(diameter, blur, nIter)
	default:
		blurList = flooredRamp(diameter, blur, o.scaling, nIter)
	}

	jumps, err := multiscaleJumps(blurList, o.scales)
	if err != nil {
		return DescentParameters{}, err
	}

	return DescentParameters{
		Diameter: diameter,
		BlurList: blurList,
		EpsList:  temperatures(blurList, p),
		RhoList:  constraintStrengths(o, p, len(blurList)),
		Jumps:    jumps,
	}, nil
}

// deriveIterations returns enough iterations to go from diameter to blur with
// geometric steps of ratio scaling:
//
//	n_iter = floor((ln blur - ln diameter) / ln scaling) + 2
//
// The "+2" keeps one value at diameter and ends on a value clamped at blur:
// diameter = 1, blur = 0.01, scaling = 0.1 gives n_iter = 4 and the list
// [1, 0.1, 0.01, 0.01].
func deriveIterations(diameter, blur, scaling float64) (int, error) {
	if scaling == 1 {
		return 0, degenerate(ErrConstantScaling, "n_iter unset")
	}
	steps := math.Floor((math.Log(blur)-math.Log(diameter))/math.Log(scaling)) + 2
	if steps > MaxDerivedIterations {
		return 0, degenerate(ErrIterationLimit, fmt.Sprintf("n_iter=%.0f > %d", steps, MaxDerivedIterations))
	}

	return int(steps), nil
}

// constantBlur: scaling == 1, the regular Sinkhorn algorithm without annealing.
func constantBlur(blur float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = blur
	}

	return out
}

// geometricSpan returns n points evenly spaced in log-space over
// [diameter, blur], both endpoints included. A single point is blur.
func geometricSpan(diameter, blur float64, n int) []float64 {
	if n == 1 || diameter == blur {
		return constantBlur(blur, n)
	}
	out := floats.LogSpan(make([]float64, n), diameter, blur)
	// exp(log(x)) may be off by one ulp: pin the endpoints and the floor.
	for i := range out {
		out[i] = math.Max(out[i], blur)
	}
	out[0], out[n-1] = diameter, blur

	return out
}

// flooredRamp returns diameter·scaling^i for i in [0, n), computed in
// log-space and clamped from below at blur.
func flooredRamp(diameter, blur, scaling float64, n int) []float64 {
	var (
		out     = make([]float64, n)
		logD    = math.Log(diameter)
		logS    = math.Log(scaling)
		logBlur = math.Log(blur)
	)
	for i := range out {
		v := logD + float64(i)*logS
		if v <= logBlur {
			out[i] = blur
			continue
		}
		out[i] = math.Max(math.Exp(v), blur)
	}
	out[0] = diameter

	return out
}

// temperatures maps blur scales to temperatures: eps = blur^p.
func temperatures(blurList []float64, p float64) []float64 {
	out := make([]float64, len(blurList))
	for i, b := range blurList {
		out[i] = math.Pow(b, p)
	}

	return out
}

// constraintStrengths replicates rho = reach^p (or Balanced) n times.
func constraintStrengths(o Options, p float64, n int) []float64 {
	rho := Balanced
	if o.marginals() == SoftMarginals {
		rho = math.Pow(o.reach, p)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = rho
	}

	return out
}
