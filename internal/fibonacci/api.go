// Package fibonacci provides four instrumented strategies for computing
// Fibonacci numbers. This file exposes the four strategies as package-level
// functions backed by the global factory.
package fibonacci

import "context"

// Recursive computes F(n) with the naive doubly-recursive strategy (n ≤ 40).
//
// Parameters:
//   - ctx: The context for tracing and metrics.
//   - n: The index of the Fibonacci number to compute.
//
// Returns:
//   - Result: The computed value, operation count, and duration.
//   - error: An InvalidArgumentError or OutOfRangeError.
func Recursive(ctx context.Context, n int64) (Result, error) {
	return globalFactory.MustGet("recursive").Compute(ctx, n)
}

// Memoization computes F(n) with the memoized recursive strategy (n ≤ 1995).
// Each call owns a fresh memo cache; nothing leaks between calls.
//
// Parameters:
//   - ctx: The context for tracing and metrics.
//   - n: The index of the Fibonacci number to compute.
//
// Returns:
//   - Result: The computed value, operation count, and duration.
//   - error: An InvalidArgumentError or OutOfRangeError.
func Memoization(ctx context.Context, n int64) (Result, error) {
	return globalFactory.MustGet("memoization").Compute(ctx, n)
}

// DynamicProgramming computes F(n) with the two-variable iterative strategy
// (n ≤ 20,000,000), exact at any magnitude thanks to big-integer arithmetic.
//
// Parameters:
//   - ctx: The context for tracing and metrics.
//   - n: The index of the Fibonacci number to compute.
//
// Returns:
//   - Result: The computed value, operation count, and duration.
//   - error: An InvalidArgumentError or OutOfRangeError.
func DynamicProgramming(ctx context.Context, n int64) (Result, error) {
	return globalFactory.MustGet("dynamic").Compute(ctx, n)
}

// ClosedForm computes F(n) by evaluating and rounding Binet's formula
// (n ≤ 604). The value matches the exact strategies throughout the domain,
// but the contract only promises rounded floating-point accuracy.
//
// Parameters:
//   - ctx: The context for tracing and metrics.
//   - n: The index of the Fibonacci number to compute.
//
// Returns:
//   - Result: The computed value, operation count, and duration.
//   - error: An InvalidArgumentError or OutOfRangeError.
func ClosedForm(ctx context.Context, n int64) (Result, error) {
	return globalFactory.MustGet("closed-form").Compute(ctx, n)
}
