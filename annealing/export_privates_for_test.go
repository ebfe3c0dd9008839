// SPDX-License-Identifier: MIT
// Test-only bridges to unexported helpers. Compiled only with `go test`, so
// the state machine and the cache key can be exercised from annealing_test.
package annealing

// JumpScanner_TestOnly exposes the multiscale state machine.
type JumpScanner_TestOnly struct{ s *jumpScanner }

// NewJumpScanner_TestOnly wraps newJumpScanner.
func NewJumpScanner_TestOnly(scales ...float64) JumpScanner_TestOnly {
	return JumpScanner_TestOnly{s: newJumpScanner(scales)}
}

// Step feeds the blur value of iteration i+1.
func (j JumpScanner_TestOnly) Step(i int, blur float64) error { return j.s.step(i, blur) }

// Finish closes the scan.
func (j JumpScanner_TestOnly) Finish() error { return j.s.finish() }

// Consumed reports whether the finest scale has been reached.
func (j JumpScanner_TestOnly) Consumed() bool { return j.s.state == stateConsumed }

// Jumps returns the jumps recorded so far.
func (j JumpScanner_TestOnly) Jumps() []int { return j.s.jumps }

// CacheKey_TestOnly exposes the Planner cache key.
func CacheKey_TestOnly(diameter, p, blur float64, opts ...Option) string {
	return cacheKey(diameter, p, blur, gatherOptions(opts...))
}

// ErrorKind_TestOnly exposes the metric label of an error.
func ErrorKind_TestOnly(err error) string { return errorKind(err) }
