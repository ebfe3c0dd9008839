// SPDX-License-Identifier: MIT
// Package annealing - coarse-to-fine jump schedule for multiscale solvers.
//
// A multiscale solver represents the input measures at successive sampling
// scales s[0] > s[1] > ... > s[S-1] and starts on the coarsest one. It must
// move to representation k+1 as soon as the blur of the NEXT iteration falls
// below s[k]: the kernel would otherwise be finer than the samples. The finest
// representation is never left, so a valid schedule has exactly S-1 jumps.
//
// The walk is an explicit two-state machine:
//
//	matching(k) --blur < s[k]--> matching(k+1)   (record jump)
//	matching(S-2) --blur < s[S-2]--> consumed    (record last jump)
//	matching(k) --blur < s[k] and still < s[k+1]--> ErrScheduleTooSteep
//	scan exhausted in matching(k)                --> ErrScheduleUnreachable
package annealing

import "fmt"

// jumpState is the state of the multiscale scan.
type jumpState int

const (
	// stateMatching: waiting for the blur to cross scales[k].
	stateMatching jumpState = iota
	// stateConsumed: the finest representation is in use, nothing left to do.
	stateConsumed
)

// jumpScanner walks the blur schedule against the declared scales.
type jumpScanner struct {
	scales []float64
	k      int // index of the threshold currently being matched
	state  jumpState
	jumps  []int
}

// newJumpScanner expects len(scales) >= 2.
func newJumpScanner(scales []float64) *jumpScanner {
	return &jumpScanner{
		scales: scales,
		jumps:  make([]int, 0, len(scales)-1),
	}
}

// last is the index of the finest scale; reaching it consumes the scanner.
func (s *jumpScanner) last() int { return len(s.scales) - 1 }

// step feeds the blur value of iteration i+1. A jump recorded at i means
// "switch representation after iteration i".
func (s *jumpScanner) step(i int, blur float64) error {
	if s.state == stateConsumed || blur >= s.scales[s.k] {
		return nil
	}

	// Transition 1: advance to the next representation.
	s.jumps = append(s.jumps, i)
	s.k++
	if s.k == s.last() {
		s.state = stateConsumed

		return nil
	}

	// Transition 2: the same value crosses the next threshold as well.
	if blur < s.scales[s.k] {
		return fmt.Errorf("%w: blur %g at iteration %d is below scales[%d]=%g and scales[%d]=%g; "+
			"increase n_iter, increase scaling or reduce the number of scales",
			ErrScheduleTooSteep, blur, i+1, s.k-1, s.scales[s.k-1], s.k, s.scales[s.k])
	}

	return nil
}

// finish is called once the schedule is exhausted.
func (s *jumpScanner) finish() error {
	if s.state != stateConsumed {
		return fmt.Errorf("%w: stuck on scales[%d]=%g after %d jump(s)",
			ErrScheduleUnreachable, s.k, s.scales[s.k], len(s.jumps))
	}

	return nil
}

// multiscaleJumps returns the jump indices for blurList, or an empty slice in
// single-scale mode (fewer than two scales).
func multiscaleJumps(blurList []float64, scales []float64) ([]int, error) {
	if len(scales) < 2 {
		return []int{}, nil
	}
	s := newJumpScanner(scales)
	for i, b := range blurList[1:] {
		if s.state == stateConsumed {
			break
		}
		if err := s.step(i, b); err != nil {
			return nil, err
		}
	}
	if err := s.finish(); err != nil {
		return nil, err
	}

	return s.jumps, nil
}
