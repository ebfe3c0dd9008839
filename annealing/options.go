// SPDX-License-Identifier: MIT

// Package annealing: functional configuration of the descent plan.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors for every optional schedule parameter,
//   - gatherOptions and the one-shot resolution into Mode / Marginals.
//
// Design goals:
//   - Tagged configuration: each optional parameter carries an explicit
//     "supplied" flag, and the combination is resolved ONCE into a Mode.
//     Downstream code switches on Mode and never null-checks fields again.
//   - No panics: WithX constructors only record values. A nonsensical value
//     (n_iter <= 0, scaling outside (0,1], reach <= 0) is user input, and it
//     surfaces as a sentinel error from Parameters.
//   - Last writer wins: applying the same WithX twice keeps the last value.
package annealing

import "slices"

// ---------- Defaults (single source of truth) ----------

const (
	// MaxDerivedIterations bounds the n_iter derived from scaling. A scaling
	// ratio this close to 1 means the loop would effectively never anneal.
	MaxDerivedIterations = 1 << 20

	// DefaultScaling is the ratio used by the YAML loader and the CLI
	// when a file sets neither n_iter nor scaling.
	DefaultScaling = 0.5

	// DefaultP is the usual exponent of the ground cost |x-y|^p / p.
	DefaultP = 2.0
)

// ---------- Public option type (functional) ----------

// Option records one optional schedule parameter.
type Option func(*Options)

// Options stores the optional parameters after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	reach    float64
	hasReach bool

	nIter    int
	hasNIter bool

	scaling    float64
	hasScaling bool

	scales []float64 // nil or len < 2 => single-scale mode
}

// WithReach sets the strength of the soft marginal constraints.
// Without it the plan runs balanced OT (rho = +Inf).
//
// Inputs:
//   - reach: finite, > 0 (validated by Parameters).
func WithReach(reach float64) Option {
	return func(o *Options) {
		o.reach = reach
		o.hasReach = true
	}
}

// WithIterations sets n_iter, the number of Sinkhorn iterations.
//
// Inputs:
//   - n: >= 1 (validated by Parameters, ErrNonPositiveIterations otherwise).
func WithIterations(n int) Option {
	return func(o *Options) {
		o.nIter = n
		o.hasNIter = true
	}
}

// WithScaling sets the ratio between two successive blur values.
//
// Inputs:
//   - scaling: in (0,1] (validated by Parameters, ErrScalingOutOfRange otherwise).
//
// Notes:
//   - scaling == 1 is plain Sinkhorn without annealing and requires
//     WithIterations (ErrConstantScaling otherwise).
func WithScaling(scaling float64) Option {
	return func(o *Options) {
		o.scaling = scaling
		o.hasScaling = true
	}
}

// WithScales declares the successive sampling scales of a multiscale
// representation, coarse to fine. Fewer than two scales means single-scale
// mode (no jumps). The slice is copied.
func WithScales(scales ...float64) Option {
	cp := slices.Clone(scales)

	return func(o *Options) { o.scales = cp }
}

// gatherOptions applies opts in order over the zero Options.
func gatherOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// ModeOf resolves the Mode that Parameters would use for opts.
func ModeOf(opts ...Option) Mode { return gatherOptions(opts...).mode() }

// mode resolves which of n_iter / scaling were supplied.
func (o Options) mode() Mode {
	switch {
	case o.hasNIter && o.hasScaling:
		return ModeIterationsScaling
	case o.hasNIter:
		return ModeIterations
	case o.hasScaling:
		return ModeScaling
	default:
		return ModeUnspecified
	}
}

// marginals resolves whether a reach was supplied.
func (o Options) marginals() Marginals {
	if o.hasReach {
		return SoftMarginals
	}

	return BalancedMarginals
}
