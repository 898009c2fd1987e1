package tui

import (
	"context"
	"math/big"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/agbru/fibcompare/internal/errors"
	"github.com/agbru/fibcompare/internal/fibonacci"
	"github.com/agbru/fibcompare/internal/orchestration"
)

func testOutcomes() []orchestration.StrategyOutcome {
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

func TestModel_InitialViewShowsSpinner(t *testing.T) {
	m := NewModel(context.Background(), nil, 30)

	view := m.View()
	if !strings.Contains(view, "comparing strategies") {
		t.Errorf("initial view should show the computing state: %s", view)
	}
}

func TestModel_OutcomesMessage(t *testing.T) {
	m := NewModel(context.Background(), nil, 100)

	updated, _ := m.Update(outcomesMsg(testOutcomes()))
	model := updated.(Model)

	if model.computing {
		t.Error("model should leave the computing state on results")
	}

	view := model.View()
	if !strings.Contains(view, "Iterative DP") {
		t.Errorf("view missing strategy name: %s", view)
	}
	if !strings.Contains(view, "832040") {
		t.Errorf("view missing computed value: %s", view)
	}
	if !strings.Contains(view, "exceeds the safe bound") {
		t.Errorf("view missing rejection reason: %s", view)
	}
}

func TestModel_ToggleValue(t *testing.T) {
	m := NewModel(context.Background(), nil, 100)
	updated, _ := m.Update(outcomesMsg(testOutcomes()))
	model := updated.(Model)

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	model = updated.(Model)

	if !model.showValue {
		t.Error("'f' should enable the full-value display")
	}

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	model = updated.(Model)
	if model.showValue {
		t.Error("'f' should toggle the full-value display off again")
	}
}

func TestModel_RerunRestartsComputation(t *testing.T) {
	m := NewModel(context.Background(), nil, 100)
	updated, _ := m.Update(outcomesMsg(testOutcomes()))
	model := updated.(Model)

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	model = updated.(Model)

	if !model.computing {
		t.Error("'r' should re-enter the computing state")
	}
	if model.outcomes != nil {
		t.Error("'r' should clear the previous outcomes")
	}
	if cmd == nil {
		t.Error("'r' should schedule a new computation command")
	}
}

func TestModel_RerunIgnoredWhileComputing(t *testing.T) {
	m := NewModel(context.Background(), nil, 100)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if cmd != nil {
		t.Error("'r' during a run should not schedule another computation")
	}
}

// TestModel_ExitCodes verifies the dashboard classifies a finished run the
// same way the CLI analysis does.
func TestModel_ExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		outcomes []orchestration.StrategyOutcome
		expected int
	}{
		{
			name:     "consistent successes exit cleanly",
			outcomes: testOutcomes(),
			expected: apperrors.ExitSuccess,
		},
		{
			name: "disagreeing values report a mismatch",
			outcomes: []orchestration.StrategyOutcome{
				{Name: "Iterative DP", Result: fibonacci.Result{Value: big.NewInt(55)}},
				{Name: "Closed Form (Binet)", Result: fibonacci.Result{Value: big.NewInt(56)}},
			},
			expected: apperrors.ExitErrorMismatch,
		},
		{
			name: "all rejected is a generic failure",
			outcomes: []orchestration.StrategyOutcome{
				{Name: "Naive Recursive", Err: apperrors.InvalidArgumentError{N: -1}},
				{Name: "Iterative DP", Err: apperrors.InvalidArgumentError{N: -1}},
			},
			expected: apperrors.ExitErrorGeneric,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel(context.Background(), nil, 10)
			updated, _ := m.Update(outcomesMsg(tt.outcomes))
			model := updated.(Model)

			if model.exitCode != tt.expected {
				t.Errorf("exit code %d, want %d", model.exitCode, tt.expected)
			}
		})
	}
}

func TestModel_QuitKeys(t *testing.T) {
	m := NewModel(context.Background(), nil, 30)

	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Errorf("key %v should quit", msg)
			continue
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("key %v produced %T, want tea.QuitMsg", msg, cmd())
		}
	}
}
