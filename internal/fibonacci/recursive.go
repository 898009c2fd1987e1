// Package fibonacci provides four instrumented strategies for computing
// Fibonacci numbers. This file implements the naive recursive strategy.
package fibonacci

import "math/big"

// recursiveStrategy computes F(n) with the classic doubly-recursive
// definition: F(1) = F(2) = 1, F(n) = F(n-1) + F(n-2). It performs O(φⁿ)
// calls and exists as the pedagogical baseline the other strategies are
// measured against.
type recursiveStrategy struct{}

// Name returns the display name of the strategy.
func (recursiveStrategy) Name() string { return "Naive Recursive" }

// MaxN returns the inclusive upper bound on n for this strategy.
func (recursiveStrategy) MaxN() uint64 { return MaxRecursiveN }

// compute runs the recursion with a call-local operation counter. The counter
// is threaded through the helper by pointer so that no state survives the
// call or is visible to any other invocation.
func (recursiveStrategy) compute(n uint64) (*big.Int, uint64) {
	ops := uint64(OpWeightInvoke)
	value := naiveRecurse(n, &ops)
	return new(big.Int).SetUint64(value), ops
}

// naiveRecurse is the recursion helper. F(40) = 102,334,155 fits a uint64
// with room to spare, so the exponential strategy never needs big integers.
func naiveRecurse(n uint64, ops *uint64) uint64 {
	if n <= 2 {
		*ops += OpWeightBase
		return 1
	}
	value := naiveRecurse(n-2, ops) + naiveRecurse(n-1, ops)
	*ops += OpWeightCombine
	return value
}
