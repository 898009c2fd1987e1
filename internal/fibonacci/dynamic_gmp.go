//go:build gmp

// Package fibonacci provides four instrumented strategies for computing
// Fibonacci numbers. This file adds an optional GMP-backed variant of the
// iterative strategy, enabled with the `gmp` build tag.
package fibonacci

import (
	"math/big"

	gmp "github.com/ncw/gmp"
)

// gmpDynamicStrategy is the iterative dynamic-programming strategy backed by
// GNU GMP through cgo. It follows the same contract, bound, and operation
// weighting as the math/big implementation; only the big-integer arithmetic
// differs. GMP's assembly kernels make the large-n additions noticeably
// faster at the cost of a cgo dependency.
type gmpDynamicStrategy struct{}

// Name returns the display name of the strategy.
func (gmpDynamicStrategy) Name() string { return "Iterative DP (GMP)" }

// MaxN returns the inclusive upper bound on n for this strategy.
func (gmpDynamicStrategy) MaxN() uint64 { return MaxDynamicN }

// compute mirrors dynamicStrategy.compute on gmp.Int values, converting the
// final value back to math/big for the shared Result type.
func (gmpDynamicStrategy) compute(n uint64) (*big.Int, uint64) {
	ops := uint64(OpWeightIterInit)

	a := gmp.NewInt(1)
	b := gmp.NewInt(1)

	if n <= 2 {
		ops += OpWeightIterBase
		return big.NewInt(1), ops
	}

	for m := uint64(3); m <= n; m++ {
		a.Add(a, b)
		a, b = b, a
		ops += OpWeightIterStep
	}

	return new(big.Int).SetBytes(b.Bytes()), ops
}

func init() {
	_ = RegisterStrategy("dynamic-gmp", func() coreStrategy { return &gmpDynamicStrategy{} })
}
