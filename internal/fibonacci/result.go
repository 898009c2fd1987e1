// Package fibonacci provides four instrumented strategies for computing
// Fibonacci numbers. This file defines the result type shared by all of them.
package fibonacci

import (
	"math/big"
	"time"
)

// Result is the immutable outcome of a single strategy invocation.
// The three fields make the time/space trade-offs of the strategies
// observable and comparable.
type Result struct {
	// Value is the computed Fibonacci number. It is exact for the
	// recursive, memoized, and iterative strategies; the closed-form
	// strategy produces a rounded value that matches the exact strategies
	// throughout its bounded domain.
	Value *big.Int
	// Operations is the synthetic operation count attributed by the
	// strategy's fixed per-step weighting. It is deterministic for a given
	// n and strategy.
	Operations uint64
	// Duration is the wall-clock time of the pure computation, sampled
	// immediately before and after it, excluding validation and reporting.
	Duration time.Duration
}

// Seconds returns the computation duration in floating-point seconds.
//
// Returns:
//   - float64: The duration expressed in seconds.
func (r Result) Seconds() float64 {
	return r.Duration.Seconds()
}
