package munkres_test

import (
	"fmt"

	"github.com/katalvlaran/hungarian/munkres"
)

// ExampleSolve demonstrates a square 3×3 assignment.
//
// Scenario:
//
//	Three workers, three jobs, costs per pairing:
//	  [4 2 8]
//	  [4 3 7]
//	  [3 1 6]
//
// The optimal pairing costs 12: row 1 → col 2, row 2 → col 3, row 3 → col 1.
func ExampleSolve() {
	costs := []float64{
		4, 2, 8,
		4, 3, 7,
		3, 1, 6,
	}

	res, err := munkres.Solve(costs, 3, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("assign=%v\ncost=%g\n", res.Assign, res.Cost)
	// Output:
	// assign=[2 3 1]
	// cost=12
}

// ExampleSolve_rectangular demonstrates a wide 2×3 matrix: every row is
// assigned, one column stays unmatched.
func ExampleSolve_rectangular() {
	costs := []float64{
		1, 2, 3,
		4, 5, 6,
	}

	res, err := munkres.Solve(costs, 3, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("assign=%v\ncost=%g\n", res.Assign, res.Cost)
	// Output:
	// assign=[1 2]
	// cost=6
}

// ExampleSolve_yield demonstrates the cooperative checkpoint: the hook
// fires once per outer pass and may cancel by returning false.
func ExampleSolve_yield() {
	costs := []float64{
		4, 2, 8,
		4, 3, 7,
		3, 1, 6,
	}

	passes := 0
	opts := munkres.DefaultOptions()
	opts.Yield = func() bool {
		passes++ // an embedding host would interleave its own work here

		return true
	}

	res, err := munkres.Solve(costs, 3, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("passes=%d cost=%g\n", passes, res.Cost)
	// Output:
	// passes=3 cost=12
}
