// Package fibonacci provides four instrumented strategies for computing
// Fibonacci numbers: naive recursion, memoized recursion, iterative dynamic
// programming, and the closed-form Binet formula. It exposes a `Strategy`
// interface that abstracts the underlying algorithm, allowing the strategies
// to be compared under a common contract of input validation, operation
// counting, and wall-clock timing.
package fibonacci

import (
	"context"
	"math/big"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"

	apperrors "github.com/agbru/fibcompare/internal/errors"
)

var (
	computationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fibcompare_computations_total",
			Help: "The total number of Fibonacci computations processed",
		},
		[]string{"strategy", "status"},
	)
	computationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "fibcompare_computation_duration_seconds",
			Help: "The duration of Fibonacci computations in seconds",
		},
		[]string{"strategy"},
	)
)

// Strategy defines the public interface for a Fibonacci computation strategy.
// It is the primary abstraction used by the orchestration layer to run and
// compare the different algorithms.
type Strategy interface {
	// Compute calculates the n-th Fibonacci number and reports the
	// instrumented outcome. The context is used for tracing and metrics
	// attribution only: the core computation has no suspension points, and
	// bounded inputs are its sole runtime limit.
	//
	// Parameters:
	//   - ctx: The context for tracing and metrics.
	//   - n: The index of the Fibonacci number to compute (n >= 1).
	//
	// Returns:
	//   - Result: The computed value, operation count, and duration.
	//   - error: An InvalidArgumentError (n < 1) or an OutOfRangeError
	//     (n exceeds this strategy's bound).
	Compute(ctx context.Context, n int64) (Result, error)

	// Name returns the display name of the strategy (e.g., "Iterative DP").
	//
	// Returns:
	//   - string: The name of the strategy.
	Name() string

	// MaxN returns the strategy's inclusive upper bound on n.
	//
	// Returns:
	//   - uint64: The largest index the strategy accepts.
	MaxN() uint64
}

// coreStrategy defines the internal interface for a pure computation
// algorithm. compute is only invoked with a validated index, owns no state
// beyond the call, and reports its complete conventional operation count.
type coreStrategy interface {
	compute(n uint64) (*big.Int, uint64)
	Name() string
	MaxN() uint64
}

// InstrumentedStrategy is an implementation of the Strategy interface that
// uses the Decorator design pattern. It wraps a coreStrategy to add the
// cross-cutting contract shared by all strategies: input-domain validation,
// wall-clock timing, and observability (tracing, metrics, logging). The
// wrapped core remains a pure function of its input.
type InstrumentedStrategy struct {
	core coreStrategy
}

// NewStrategy is a factory function that constructs and returns a new
// InstrumentedStrategy. It takes a coreStrategy as input, which represents
// the specific Fibonacci algorithm to be used. This function panics if the
// core strategy is nil, ensuring system integrity.
//
// Parameters:
//   - core: The core strategy to be wrapped.
//
// Returns:
//   - Strategy: A new InstrumentedStrategy implementing the Strategy interface.
func NewStrategy(core coreStrategy) Strategy {
	if core == nil {
		panic("fibonacci: the `coreStrategy` implementation cannot be nil")
	}
	return &InstrumentedStrategy{core: core}
}

// Name returns the name of the encapsulated coreStrategy, fulfilling the
// Strategy interface by delegating the call.
//
// Returns:
//   - string: The name of the strategy.
func (s *InstrumentedStrategy) Name() string {
	return s.core.Name()
}

// MaxN returns the inclusive upper bound of the encapsulated coreStrategy.
//
// Returns:
//   - uint64: The largest index the strategy accepts.
func (s *InstrumentedStrategy) MaxN() uint64 {
	return s.core.MaxN()
}

// Compute validates the index, times the pure computation, and records the
// outcome.
//
// Validation happens before any state mutation: on failure, no counter is
// started and no cache is allocated, so a rejected call leaves no trace
// beyond its error. The timer brackets only the core computation, excluding
// validation and any surrounding reporting.
//
// Parameters:
//   - ctx: The context for tracing and metrics.
//   - n: The index of the Fibonacci number to compute.
//
// Returns:
//   - Result: The instrumented outcome on success.
//   - error: A typed input-domain error on validation failure.
func (s *InstrumentedStrategy) Compute(ctx context.Context, n int64) (result Result, err error) {
	tracer := otel.Tracer("fibcompare")
	_, span := tracer.Start(ctx, "Compute")
	defer span.End()

	defer func() {
		status := "success"
		if err != nil {
			status = "error"
		}
		name := s.core.Name()
		computationsTotal.WithLabelValues(name, status).Inc()
		computationDuration.WithLabelValues(name).Observe(result.Duration.Seconds())

		log.Debug().
			Str("strategy", name).
			Int64("n", n).
			Uint64("operations", result.Operations).
			Float64("duration", result.Duration.Seconds()).
			Str("status", status).
			Msg("computation completed")
	}()

	if err = s.validate(n); err != nil {
		return Result{}, err
	}

	start := time.Now()
	value, operations := s.core.compute(uint64(n))
	duration := time.Since(start)

	return Result{Value: value, Operations: operations, Duration: duration}, nil
}

// validate checks the index against the shared domain contract and the
// strategy-specific bound.
func (s *InstrumentedStrategy) validate(n int64) error {
	if n < 1 {
		return apperrors.InvalidArgumentError{N: n}
	}
	if uint64(n) > s.core.MaxN() {
		return apperrors.OutOfRangeError{Strategy: s.core.Name(), N: n, Max: s.core.MaxN()}
	}
	return nil
}
