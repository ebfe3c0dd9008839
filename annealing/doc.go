// Package annealing computes the epsilon-scaling schedule of Sinkhorn
// solvers for (unbalanced) optimal transport between point clouds.
//
// 🚀 What is epsilon-scaling?
//
//	A Sinkhorn loop converges fast at a high temperature eps and slowly at a
//	low one. Annealing starts at eps = diameter^p and divides the temperature
//	by scaling^p at every iteration until it reaches the target blur^p, so the
//	solver works coarse-to-fine instead of fighting a sharp kernel from the
//	first iteration.
//
// ✨ Key features:
//   - three schedule policies: constant (scaling = 1), geometric span
//     (n_iter only), geometric ramp floored at blur (scaling, optionally n_iter)
//   - soft marginal constraints: rho = reach^p, or Balanced (+Inf)
//   - multiscale jumps: iterations after which a multiscale solver moves to
//     a finer representation of its inputs
//   - MaxDiameter: bounding-box estimate of the starting scale
//   - Planner: LRU-memoized plans with zerolog logging and prometheus metrics
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/otanneal/annealing"
//
//	plan, err := annealing.Parameters(
//	  1.0,  // diameter
//	  2,    // p: cost = |x-y|^2 / 2
//	  0.01, // blur
//	  annealing.WithScaling(0.5),
//	  annealing.WithReach(0.3),
//	  annealing.WithScales(0.5, 0.05),
//	)
//	for i := range plan.Iterations() {
//	  // sinkhorn step with plan.EpsList[i], plan.RhoList[i]
//	  if plan.IsJump(i) {
//	    // switch to the next, finer representation
//	  }
//	}
//
// Errors are sentinels (errors.go) matched with errors.Is; every failure is a
// configuration error and no partial plan is ever returned.
package annealing
