// SPDX-License-Identifier: MIT
package dualscale

// Tape records the primitives applied during one forward evaluation and
// replays their Backward rules in reverse order. It never derives a gradient:
// every step uses the adjoint its primitive registered.
//
// A Tape is not safe for concurrent use.
type Tape struct {
	ops []Primitive
}

// NewTape returns an empty tape.
func NewTape() *Tape { return &Tape{} }

// Apply evaluates p.Forward(x) and records p.
func (t *Tape) Apply(p Primitive, x float64) float64 {
	t.ops = append(t.ops, p)

	return p.Forward(x)
}

// Forward applies every primitive in order, recording each one.
func (t *Tape) Forward(x float64, ps ...Primitive) float64 {
	for _, p := range ps {
		x = t.Apply(p, x)
	}

	return x
}

// Backward propagates the upstream gradient g through the recorded
// primitives, last to first.
func (t *Tape) Backward(g float64) float64 {
	for i := len(t.ops) - 1; i >= 0; i-- {
		g = t.ops[i].Backward(g)
	}

	return g
}

// Len reports how many primitives were recorded.
func (t *Tape) Len() int { return len(t.ops) }

// Reset clears the tape, keeping its capacity.
func (t *Tape) Reset() { t.ops = t.ops[:0] }
