// SPDX-License-Identifier: MIT
// Package annealing - validation shared by Parameters and the Planner.
//
// Checks run in a fixed order so that a configuration with several problems
// always reports the same one:
//  1. explicit n_iter <= 0            → ErrNonPositiveIterations
//  2. scaling outside (0,1]           → ErrScalingOutOfRange
//  3. neither n_iter nor scaling      → ErrUnderSpecified
//  4. diameter, p, blur, reach, scales → ErrInvalidInput
//
// All functions are pure and allocate nothing on success.
package annealing

import (
	"fmt"
	"math"
)

// validate checks the required fields and the gathered options.
func validate(diameter, p, blur float64, o Options) error {
	if o.hasNIter && o.nIter <= 0 {
		return degenerate(ErrNonPositiveIterations, fmt.Sprintf("n_iter=%d", o.nIter))
	}
	// Written as a negation so that NaN is rejected too.
	if o.hasScaling && !(o.scaling > 0 && o.scaling <= 1) {
		return degenerate(ErrScalingOutOfRange, fmt.Sprintf("scaling=%v", o.scaling))
	}
	if o.mode() == ModeUnspecified {
		return ErrUnderSpecified
	}

	if !positiveFinite(diameter) {
		return invalid("diameter", diameter)
	}
	if !positiveFinite(p) {
		return invalid("p", p)
	}
	if !positiveFinite(blur) {
		return invalid("blur", blur)
	}
	if o.hasReach && !positiveFinite(o.reach) {
		return invalid("reach", o.reach)
	}
	for i, s := range o.scales {
		if !positiveFinite(s) {
			return invalid(fmt.Sprintf("scales[%d]", i), s)
		}
	}

	return nil
}

// positiveFinite reports whether v is a finite number > 0 (NaN fails v > 0).
func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
