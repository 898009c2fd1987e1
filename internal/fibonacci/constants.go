package fibonacci

// ─────────────────────────────────────────────────────────────────────────────
// Strategy Domain Bounds
// ─────────────────────────────────────────────────────────────────────────────
//
// Each strategy imposes an explicit, documented upper bound on the index it
// accepts. The bounds are part of each strategy's contract: exceeding one
// yields a typed OutOfRangeError instead of an unbounded run, a blown stack,
// or silent precision loss.

const (
	// MaxRecursiveN is the inclusive upper bound for the naive recursive
	// strategy. The doubly-recursive definition performs O(φⁿ) calls, so
	// beyond n=40 the runtime becomes impractical (F(40) already requires
	// over 200 million calls).
	MaxRecursiveN = 40

	// MaxMemoizationN is the inclusive upper bound for the memoized
	// recursive strategy. The recursion reaches a depth proportional to n
	// before the memo starts resolving sub-problems; 1995 keeps the call
	// stack comfortably within typical stack budgets.
	MaxMemoizationN = 1995

	// MaxDynamicN is the inclusive upper bound for the iterative
	// dynamic-programming strategy. The loop performs n big-integer
	// additions over operands that grow to millions of digits; 20,000,000
	// keeps the worst case within roughly one minute on reference hardware.
	MaxDynamicN = 20_000_000

	// MaxClosedFormN is the inclusive upper bound for the closed-form
	// (Binet) strategy. Beyond 604, exponent growth and accumulated
	// floating-point rounding make the rounded result unreliable at
	// conventional precisions.
	MaxClosedFormN = 604
)

// ─────────────────────────────────────────────────────────────────────────────
// Operation Weighting Convention
// ─────────────────────────────────────────────────────────────────────────────
//
// Operation counts are a synthetic cost metric: each abstract step is charged
// a fixed weight, producing a deterministic, comparable proxy for algorithmic
// work across strategies. The weights are a preserved accounting convention
// (kept for comparability with historical results), not a derived cost model.

const (
	// OpWeightBase is charged for each base-case return (n ∈ {1,2}) in the
	// recursive strategy.
	OpWeightBase = 1

	// OpWeightCombine is charged for each combining step in the recursive
	// strategies: one addition plus the bookkeeping of a call frame.
	OpWeightCombine = 7

	// OpWeightInvoke is charged once per top-level call of the recursive
	// strategies for the wrapper's own bookkeeping.
	OpWeightInvoke = 2

	// OpWeightMemoSeed is charged per base value seeded into a fresh memo
	// cache before the recursion starts.
	OpWeightMemoSeed = 2

	// OpWeightMemoHit is charged for a memo cache hit, replacing the full
	// recursive expansion of that sub-problem.
	OpWeightMemoHit = 2

	// OpWeightMemoStore is charged for storing and returning a newly
	// computed value through the memo cache.
	OpWeightMemoStore = 1

	// OpWeightIterInit is charged once for initializing the two running
	// values of the iterative strategy.
	OpWeightIterInit = 3

	// OpWeightIterBase is charged when the iterative strategy returns a
	// base case immediately.
	OpWeightIterBase = 2

	// OpWeightIterStep is charged per iteration of the dynamic-programming
	// loop: two value updates plus counter bookkeeping.
	OpWeightIterStep = 4

	// OpWeightClosedForm is the flat charge for one evaluation of Binet's
	// formula: the handful of arithmetic operations visible at this level
	// of abstraction. The exponentiation machinery underneath performs
	// additional hidden work that is deliberately not counted.
	OpWeightClosedForm = 13
)

// ClosedFormPrec is the big.Float mantissa precision, in bits, used to
// evaluate Binet's formula. F(604) spans about 420 bits, so 512 bits leaves
// enough headroom for the rounded result to stay exact across the whole
// closed-form domain.
const ClosedFormPrec = 512
