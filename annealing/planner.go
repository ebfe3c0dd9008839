// SPDX-License-Identifier: MIT
// Package annealing - Planner: memoized, observable front-end to Parameters.
//
// A solver that runs many OT problems with the same (diameter, p, blur, ...)
// configuration asks a Planner instead of calling Parameters directly. The
// Planner:
//   - memoizes plans in an LRU cache keyed by the resolved configuration,
//   - logs every resolved plan and every rejection (zerolog),
//   - records prometheus metrics (metrics.go),
//   - hands out deep copies, so a cached plan can never be mutated by a caller.
//
// A Planner is safe for concurrent use.
package annealing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
)

// DefaultCacheSize is the number of plans a Planner keeps by default.
const DefaultCacheSize = 128

// PlannerOption configures a Planner.
type PlannerOption func(*plannerConfig)

type plannerConfig struct {
	cacheSize int
	logger    zerolog.Logger
}

// WithCacheSize sets the LRU capacity. 0 disables memoization.
func WithCacheSize(n int) PlannerOption {
	return func(c *plannerConfig) { c.cacheSize = n }
}

// WithLogger sets the logger. The default is zerolog.Nop().
func WithLogger(l zerolog.Logger) PlannerOption {
	return func(c *plannerConfig) { c.logger = l }
}

// Planner serves descent plans.
type Planner struct {
	cache  *lru.Cache[string, DescentParameters] // nil when memoization is off
	logger zerolog.Logger
}

// NewPlanner creates a Planner. A negative cache size is ErrInvalidInput.
func NewPlanner(opts ...PlannerOption) (*Planner, error) {
	cfg := plannerConfig{cacheSize: DefaultCacheSize, logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.cacheSize < 0 {
		return nil, fmt.Errorf("%w: cache size %d", ErrInvalidInput, cfg.cacheSize)
	}

	p := &Planner{logger: cfg.logger}
	if cfg.cacheSize > 0 {
		cache, err := lru.New[string, DescentParameters](cfg.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("annealing: create plan cache: %w", err)
		}
		p.cache = cache
	}

	return p, nil
}

// Plan returns the descent plan for the configuration, building it with
// Parameters on a cache miss. Errors are never cached.
func (p *Planner) Plan(diameter, exponent, blur float64, opts ...Option) (DescentParameters, error) {
	o := gatherOptions(opts...)
	mode := o.mode()
	key := cacheKey(diameter, exponent, blur, o)

	if p.cache != nil {
		if plan, ok := p.cache.Get(key); ok {
			PlansTotal.WithLabelValues(mode.String(), "true").Inc()
			p.logger.Debug().
				Str("mode", mode.String()).
				Int("n_iter", plan.Iterations()).
				Bool("cached", true).
				Msg("annealing: plan served")

			return plan.Clone(), nil
		}
	}

	plan, err := build(diameter, exponent, blur, o)
	if err != nil {
		PlanErrors.WithLabelValues(errorKind(err)).Inc()
		p.logger.Warn().
			Err(err).
			Str("mode", mode.String()).
			Float64("diameter", diameter).
			Float64("blur", blur).
			Msg("annealing: schedule rejected")

		return DescentParameters{}, err
	}

	PlansTotal.WithLabelValues(mode.String(), "false").Inc()
	PlanIterations.WithLabelValues(mode.String()).Observe(float64(plan.Iterations()))
	PlanJumps.Observe(float64(len(plan.Jumps)))
	p.logger.Debug().
		Str("mode", mode.String()).
		Int("n_iter", plan.Iterations()).
		Float64("diameter", plan.Diameter).
		Float64("blur", blur).
		Ints("jumps", plan.Jumps).
		Bool("balanced", plan.Balanced()).
		Bool("cached", false).
		Msg("annealing: plan resolved")

	if p.cache != nil {
		p.cache.Add(key, plan)
	}

	return plan.Clone(), nil
}

// Len returns the number of cached plans.
func (p *Planner) Len() int {
	if p.cache == nil {
		return 0
	}

	return p.cache.Len()
}

// Purge drops every cached plan.
func (p *Planner) Purge() {
	if p.cache != nil {
		p.cache.Purge()
	}
}

// cacheKey encodes the resolved configuration. Absent optionals are written
// as "-" so that, e.g., WithReach(0) and no reach never collide.
func cacheKey(diameter, exponent, blur float64, o Options) string {
	var b strings.Builder
	f := func(v float64) { b.WriteString(strconv.FormatFloat(v, 'g', -1, 64)); b.WriteByte('|') }
	f(diameter)
	f(exponent)
	f(blur)
	if o.hasReach {
		f(o.reach)
	} else {
		b.WriteString("-|")
	}
	if o.hasNIter {
		b.WriteString(strconv.Itoa(o.nIter))
	} else {
		b.WriteByte('-')
	}
	b.WriteByte('|')
	if o.hasScaling {
		f(o.scaling)
	} else {
		b.WriteString("-|")
	}
	for _, s := range o.scales {
		f(s)
	}

	return b.String()
}

// errorKind maps a schedule error to a low-cardinality metric label.
func errorKind(err error) string {
	switch {
	case errors.Is(err, ErrNonPositiveIterations):
		return "non_positive_iterations"
	case errors.Is(err, ErrScalingOutOfRange):
		return "scaling_out_of_range"
	case errors.Is(err, ErrConstantScaling):
		return "constant_scaling"
	case errors.Is(err, ErrIterationLimit):
		return "iteration_limit"
	case errors.Is(err, ErrUnderSpecified):
		return "under_specified"
	case errors.Is(err, ErrScheduleTooSteep):
		return "too_steep"
	case errors.Is(err, ErrScheduleUnreachable):
		return "unreachable"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	default:
		return "other"
	}
}
