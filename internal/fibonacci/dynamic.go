// Package fibonacci provides four instrumented strategies for computing
// Fibonacci numbers. This file implements the iterative dynamic-programming
// strategy.
package fibonacci

import "math/big"

// dynamicStrategy computes F(n) iteratively, keeping only the two most
// recent values. This eliminates recursion and reduces space to O(1) big
// integers. The values are held in math/big.Int because F(n) outgrows any
// native integer type almost immediately: F(20,000,000) spans millions of
// decimal digits.
type dynamicStrategy struct{}

// Name returns the display name of the strategy.
func (dynamicStrategy) Name() string { return "Iterative DP" }

// MaxN returns the inclusive upper bound on n for this strategy.
func (dynamicStrategy) MaxN() uint64 { return MaxDynamicN }

// compute iterates from the third term up to n, replacing (a, b) with
// (b, a+b) at each step. The additions are performed in place, reusing the
// two allocations for the whole run.
func (dynamicStrategy) compute(n uint64) (*big.Int, uint64) {
	ops := uint64(OpWeightIterInit)

	a := big.NewInt(1)
	b := big.NewInt(1)

	if n <= 2 {
		ops += OpWeightIterBase
		return b, ops
	}

	for m := uint64(3); m <= n; m++ {
		a.Add(a, b)
		a, b = b, a
		ops += OpWeightIterStep
	}

	return b, ops
}
