// Package otanneal groups the scheduling pieces of a Sinkhorn solver for
// (unbalanced) optimal transport between point clouds.
//
// 🚀 What is otanneal?
//
//	Sinkhorn loops converge quickly at high temperature and slowly at low
//	temperature. otanneal computes the epsilon-scaling plan that walks the
//	temperature from the diameter of the data down to the target blur, and
//	provides the custom-gradient rule that scales the dual potentials on
//	the unbalanced branch of the update.
//
// ✨ Packages:
//
//	annealing/      Parameters (the plan), jump detection for multiscale
//	                solvers, MaxDiameter, and a memoizing Planner
//	dualscale/      Primitive, UnbalancedWeight (forward rho+eps/2,
//	                backward rho+eps), Scale and Tape
//	config/         YAML schedule files resolved to annealing options
//	cmd/annealplan/ CLI printing plans as text tables or YAML
//	examples/       runnable multiscale, unbalanced walkthrough
//
// The Sinkhorn dual updates themselves, cost computation and device memory
// belong to the calling solver.
package otanneal
