// SPDX-License-Identifier: MIT
// Package annealing: sentinel error set.
// This file defines ONLY package-level sentinel errors. Every schedule
// failure is a configuration error: terminal for the call, never transient,
// and never "fixed" by silently clamping the user's parameters.
//
// Degenerate-schedule conditions are reported with TWO sentinels at once
// (the category ErrDegenerateSchedule and the precise cause), so callers may
// match either with errors.Is.

package annealing

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when a numeric input is NaN, infinite or
	// non-positive where a strictly positive finite value is required
	// (diameter, p, blur, reach, every multiscale scale).
	ErrInvalidInput = errors.New("annealing: invalid input")

	// ErrUnderSpecified is returned when neither the number of iterations nor
	// the scaling ratio is given: the schedule length cannot be determined.
	ErrUnderSpecified = errors.New("annealing: specify a number of iterations using either n_iter or scaling")

	// ErrDegenerateSchedule is the category of every schedule that cannot anneal
	// towards blur in a finite, positive number of steps.
	ErrDegenerateSchedule = errors.New("annealing: degenerate schedule")

	// ErrNonPositiveIterations: an explicit n_iter <= 0.
	ErrNonPositiveIterations = errors.New("annealing: the number of iterations should be >= 1")

	// ErrScalingOutOfRange: scaling outside (0,1].
	ErrScalingOutOfRange = errors.New("annealing: the scaling factor should be in (0,1]")

	// ErrConstantScaling: scaling == 1 without n_iter would keep the temperature
	// constant forever and never stop the loop.
	ErrConstantScaling = errors.New("annealing: scaling == 1 requires an explicit number of iterations")

	// ErrIterationLimit: the derived n_iter exceeds MaxDerivedIterations
	// (scaling so close to 1 that the ramp is effectively endless).
	ErrIterationLimit = errors.New("annealing: derived number of iterations exceeds the limit")

	// ErrScheduleTooSteep is returned when the blur schedule crosses two
	// multiscale thresholds between consecutive iterations. Increase n_iter,
	// move scaling towards 1 or declare fewer scales.
	ErrScheduleTooSteep = errors.New("annealing: the annealing schedule is steeper than the granularity of the coarse-to-fine decomposition")

	// ErrScheduleUnreachable is returned when the blur schedule ends before
	// reaching the finest declared scale.
	ErrScheduleUnreachable = errors.New("annealing: the annealing schedule never reaches the finest scale")

	// ErrEmptyCloud is returned by MaxDiameter for nil or empty point clouds.
	ErrEmptyCloud = errors.New("annealing: empty point cloud")

	// ErrDimensionMismatch is returned by MaxDiameter when the two clouds live
	// in spaces of different dimension.
	ErrDimensionMismatch = errors.New("annealing: point clouds have different dimensions")
)

// degenerate tags cause with the ErrDegenerateSchedule category.
func degenerate(cause error, detail string) error {
	return fmt.Errorf("%w: %w (%s)", ErrDegenerateSchedule, cause, detail)
}

// invalid wraps ErrInvalidInput with the offending parameter name and value.
func invalid(name string, v float64) error {
	return fmt.Errorf("%w: %s=%v must be finite and > 0", ErrInvalidInput, name, v)
}
