// Package dualscale provides custom-gradient primitives for the dual
// potentials of unbalanced Sinkhorn solvers.
//
// 🚀 Why a custom gradient?
//
//	The unbalanced Sinkhorn update scales its exponentiated potentials by a
//	weight whose value and adjoint are NOT related by differentiation:
//
//	  forward:  x ↦ (rho + eps/2)·x
//	  backward: g ↦ (rho + eps)·g
//
//	The asymmetry is what makes the gradient of the debiased Sinkhorn
//	divergence correct. Deriving the backward rule from the forward one
//	would silently produce the wrong gradient.
//
// ✨ Key features:
//   - Primitive: value and adjoint registered independently
//   - UnbalancedWeight: the asymmetric rule above, scalar and gonum vectors
//   - Scale: a consistent reference primitive (adjoint = derivative)
//   - Tape: records primitives in forward order, replays Backward in reverse
//   - ForIteration: the weight for one iteration of an annealing plan
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/otanneal/dualscale"
//
//	w, err := dualscale.ForIteration(plan.EpsList, plan.RhoList, i)
//	if errors.Is(err, dualscale.ErrBalanced) {
//	  // balanced OT: no scaling of the potentials
//	}
//	y := w.Forward(x)
//	gx := w.Backward(gy)
//
// Rho = +Inf (balanced OT) has no unbalanced weight and is rejected with
// ErrBalanced. All values are immutable and safe for concurrent use; a Tape
// belongs to one evaluation and is not.
package dualscale
