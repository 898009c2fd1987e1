// Package fibonacci provides four instrumented strategies for computing
// Fibonacci numbers. This file implements the memoized recursive strategy.
package fibonacci

import "math/big"

// memoizationStrategy computes F(n) with the same recursive definition as
// the naive strategy, but consults a per-call memo cache before recursing, so
// each unique index is computed at most once per top-level call.
//
// Cache lifecycle: the cache is created empty at the start of every call,
// seeded with the two base values before the recursion begins, and discarded
// when the call returns. It is never shared across calls or strategies, which
// guards against stale results and makes concurrent invocations safe without
// locking.
type memoizationStrategy struct{}

// Name returns the display name of the strategy.
func (memoizationStrategy) Name() string { return "Memoized Recursive" }

// MaxN returns the inclusive upper bound on n for this strategy.
func (memoizationStrategy) MaxN() uint64 { return MaxMemoizationN }

// compute allocates the fresh memo cache, seeds F(1) and F(2), and runs the
// recursion with a call-local operation counter.
func (memoizationStrategy) compute(n uint64) (*big.Int, uint64) {
	ops := uint64(OpWeightInvoke)

	memo := make(map[uint64]*big.Int, n)
	memo[1] = big.NewInt(1)
	memo[2] = big.NewInt(1)
	ops += 2 * OpWeightMemoSeed

	value := memoRecurse(n, memo, &ops)
	return value, ops
}

// memoRecurse resolves n through the cache, recursing only for indices not
// yet present. A hit is charged less than a full expansion; a miss is charged
// the combining step plus the store-and-return bookkeeping.
func memoRecurse(n uint64, memo map[uint64]*big.Int, ops *uint64) *big.Int {
	if value, ok := memo[n]; ok {
		*ops += OpWeightMemoHit
		return value
	}

	value := new(big.Int).Add(memoRecurse(n-2, memo, ops), memoRecurse(n-1, memo, ops))
	*ops += OpWeightCombine
	memo[n] = value
	*ops += OpWeightMemoStore

	return value
}
