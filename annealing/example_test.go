package annealing_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/otanneal/annealing"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleParameters
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Point clouds of diameter 1 compared at blur 0.01 with a quadratic cost,
//	dividing the blur by 10 at every iteration.
//
// Options:
//   - scaling = 0.1 (n_iter derived: floor(2)+2 = 4)
//   - no reach      (balanced OT)
func ExampleParameters() {
	plan, err := annealing.Parameters(1, 2, 0.01, annealing.WithScaling(0.1))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("n_iter=%d\n", plan.Iterations())
	fmt.Printf("blur=%.4g\n", plan.BlurList)
	fmt.Printf("eps=%.4g\n", plan.EpsList)
	fmt.Printf("balanced=%v\n", plan.Balanced())
	// Output:
	// n_iter=4
	// blur=[1 0.1 0.01 0.01]
	// eps=[1 0.01 0.0001 0.0001]
	// balanced=true
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleParameters_multiscale
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Unbalanced OT with reach 0.5 on a two-level multiscale representation
//	(cluster spacing 0.2, then the raw samples at 0.02).
//
// Use case:
//
//	The solver starts on the clusters and moves to the raw samples right
//	after the iteration reported in Jumps.
func ExampleParameters_multiscale() {
	plan, err := annealing.Parameters(1, 2, 0.01,
		annealing.WithScaling(0.5),
		annealing.WithReach(0.5),
		annealing.WithScales(0.2, 0.02),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("n_iter=%d jumps=%v rho=%.2f\n", plan.Iterations(), plan.Jumps, plan.RhoList[0])
	// Output:
	// n_iter=8 jumps=[2] rho=0.25
}

// ExampleParameters_degenerate shows the fail-fast answer to a schedule that
// would never stop annealing.
func ExampleParameters_degenerate() {
	_, err := annealing.Parameters(1, 2, 0.01, annealing.WithScaling(1))
	fmt.Println(errors.Is(err, annealing.ErrDegenerateSchedule), errors.Is(err, annealing.ErrConstantScaling))
	// Output:
	// true true
}
