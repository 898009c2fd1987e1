// Package fibonacci provides four instrumented strategies for computing
// Fibonacci numbers. This file implements the closed-form (Binet) strategy.
package fibonacci

import "math/big"

// closedFormStrategy evaluates Binet's formula directly:
//
//	F(n) = round((φⁿ − ψⁿ) / √5)   with φ = (1+√5)/2, ψ = (1−√5)/2
//
// The formula is evaluated in floating-point arithmetic and rounded to the
// nearest integer, so the strategy is an approximation with a bounded domain
// rather than an exact computation. Evaluation uses big.Float at
// ClosedFormPrec bits, which keeps the rounded result exact throughout the
// domain; near the upper bound, callers comparing against the exact
// strategies should still tolerate the documented precision edge rather than
// assume bit-exactness is guaranteed by the contract.
type closedFormStrategy struct{}

// Name returns the display name of the strategy.
func (closedFormStrategy) Name() string { return "Closed Form (Binet)" }

// MaxN returns the inclusive upper bound on n for this strategy.
func (closedFormStrategy) MaxN() uint64 { return MaxClosedFormN }

// compute evaluates the formula and rounds to the nearest integer. The flat
// operation charge covers the arithmetic visible at this level; the
// exponentiation machinery underneath is deliberately not counted.
func (closedFormStrategy) compute(n uint64) (*big.Int, uint64) {
	prec := uint(ClosedFormPrec)

	sqrt5 := new(big.Float).SetPrec(prec).SetInt64(5)
	sqrt5.Sqrt(sqrt5)

	one := new(big.Float).SetPrec(prec).SetInt64(1)
	two := new(big.Float).SetPrec(prec).SetInt64(2)

	phi := new(big.Float).SetPrec(prec).Add(one, sqrt5)
	phi.Quo(phi, two)
	psi := new(big.Float).SetPrec(prec).Sub(one, sqrt5)
	psi.Quo(psi, two)

	value := new(big.Float).SetPrec(prec).Sub(powFloat(phi, n, prec), powFloat(psi, n, prec))
	value.Quo(value, sqrt5)

	return roundToInt(value, prec), OpWeightClosedForm
}

// powFloat raises x to the n-th power by binary exponentiation at the given
// precision.
func powFloat(x *big.Float, n uint64, prec uint) *big.Float {
	result := new(big.Float).SetPrec(prec).SetInt64(1)
	base := new(big.Float).SetPrec(prec).Set(x)
	for n > 0 {
		if n&1 == 1 {
			result.Mul(result, base)
		}
		base.Mul(base, base)
		n >>= 1
	}
	return result
}

// roundToInt rounds a non-negative big.Float to the nearest integer.
// Truncation after adding one half is floor for non-negative values, which
// is exactly round-to-nearest here.
func roundToInt(x *big.Float, prec uint) *big.Int {
	half := new(big.Float).SetPrec(prec).SetFloat64(0.5)
	x.Add(x, half)
	z, _ := x.Int(nil)
	return z
}
