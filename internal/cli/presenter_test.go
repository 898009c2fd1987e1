package cli

import (
	"bytes"
	"math/big"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/fibcompare/internal/errors"
	"github.com/agbru/fibcompare/internal/fibonacci"
	"github.com/agbru/fibcompare/internal/orchestration"
	"github.com/agbru/fibcompare/internal/ui"
)

// Presenter tests disable colors so assertions match plain text.
func withPlainTheme(t *testing.T) {
	t.Helper()
	ui.SetTheme("none")
	t.Cleanup(func() { ui.SetTheme("dark") })
}

func sampleOutcomes() []orchestration.StrategyOutcome {
	return []orchestration.StrategyOutcome{
		{
			Name: "Iterative DP",
			Result: fibonacci.Result{
				Value:      big.NewInt(832040),
				Operations: 115,
				Duration:   3 * time.Microsecond,
			},
		},
		{
			Name: "Naive Recursive",
			Err:  apperrors.OutOfRangeError{Strategy: "Naive Recursive", N: 100, Max: 40},
		},
	}
}

func TestPresentComparisonTable(t *testing.T) {
	withPlainTheme(t)
	var buf bytes.Buffer

	CLIResultPresenter{}.PresentComparisonTable(100, sampleOutcomes(), &buf)
	out := buf.String()

	if !strings.Contains(out, "Comparison for n=100") {
		t.Errorf("missing table header: %s", out)
	}
	for _, want := range []string{"Strategy", "Value", "Operations", "Duration", "Status"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing column header %q: %s", want, out)
		}
	}
	if !strings.Contains(out, "832040") {
		t.Errorf("missing computed value: %s", out)
	}
	if !strings.Contains(out, "✓ OK") {
		t.Errorf("missing success status: %s", out)
	}
	if !strings.Contains(out, "✗") {
		t.Errorf("missing failure status: %s", out)
	}
	if !strings.Contains(out, "exceeds the safe bound") {
		t.Errorf("missing rejection reason: %s", out)
	}
}

func TestPresentBest(t *testing.T) {
	withPlainTheme(t)
	outcome := sampleOutcomes()[0]

	t.Run("abbreviated value", func(t *testing.T) {
		var buf bytes.Buffer
		CLIResultPresenter{}.PresentBest(outcome, 30, false, &buf)
		out := buf.String()

		if !strings.Contains(out, "Fastest strategy: Iterative DP") {
			t.Errorf("missing winner line: %s", out)
		}
		if !strings.Contains(out, "F(30) = 832040") {
			t.Errorf("missing value line: %s", out)
		}
	})

	t.Run("full value on request", func(t *testing.T) {
		var buf bytes.Buffer
		large := outcome
		large.Result.Value, _ = new(big.Int).SetString(strings.Repeat("9", 40), 10)

		CLIResultPresenter{}.PresentBest(large, 200, true, &buf)
		if !strings.Contains(buf.String(), strings.Repeat("9", 40)) {
			t.Errorf("full value not printed: %s", buf.String())
		}

		buf.Reset()
		CLIResultPresenter{}.PresentBest(large, 200, false, &buf)
		if !strings.Contains(buf.String(), "(40 digits)") {
			t.Errorf("value not abbreviated: %s", buf.String())
		}
	})
}

func TestPrintSweepTable(t *testing.T) {
	withPlainTheme(t)
	var buf bytes.Buffer

	rows := []orchestration.SweepRow{
		{N: 16, Outcomes: sampleOutcomes()},
		{N: 64, Outcomes: []orchestration.StrategyOutcome{
			{Name: "Iterative DP", Result: fibonacci.Result{Value: big.NewInt(1), Duration: time.Millisecond}},
			{Name: "Naive Recursive", Err: apperrors.OutOfRangeError{Strategy: "Naive Recursive", N: 64, Max: 40}},
		}},
	}

	PrintSweepTable(rows, &buf)
	out := buf.String()

	if !strings.Contains(out, "Iterative DP") || !strings.Contains(out, "Naive Recursive") {
		t.Errorf("missing strategy columns: %s", out)
	}
	if !strings.Contains(out, "16") || !strings.Contains(out, "64") {
		t.Errorf("missing index rows: %s", out)
	}
	if !strings.Contains(out, "-") {
		t.Errorf("missing out-of-range marker: %s", out)
	}
	if !strings.Contains(out, "1ms") {
		t.Errorf("missing duration cell: %s", out)
	}
}

func TestPrintSweepTable_Empty(t *testing.T) {
	withPlainTheme(t)
	var buf bytes.Buffer

	PrintSweepTable(nil, &buf)
	if buf.Len() != 0 {
		t.Errorf("empty sweep should print nothing, got: %s", buf.String())
	}
}

func TestSweepCell(t *testing.T) {
	withPlainTheme(t)
	tests := []struct {
		name     string
		outcome  orchestration.StrategyOutcome
		expected string
	}{
		{
			name:     "out of range renders a dash",
			outcome:  orchestration.StrategyOutcome{Err: apperrors.OutOfRangeError{Strategy: "x", N: 50, Max: 40}},
			expected: "-",
		},
		{
			name:     "invalid argument renders a dash",
			outcome:  orchestration.StrategyOutcome{Err: apperrors.InvalidArgumentError{N: 0}},
			expected: "-",
		},
		{
			name:     "zero duration renders sub-microsecond marker",
			outcome:  orchestration.StrategyOutcome{Result: fibonacci.Result{Value: big.NewInt(1)}},
			expected: "< 1µs",
		},
		{
			name: "success renders the duration",
			outcome: orchestration.StrategyOutcome{
				Result: fibonacci.Result{Value: big.NewInt(1), Duration: 42 * time.Microsecond},
			},
			expected: "42µs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sweepCell(tt.outcome); got != tt.expected {
				t.Errorf("sweepCell() = %q, want %q", got, tt.expected)
			}
		})
	}
}
