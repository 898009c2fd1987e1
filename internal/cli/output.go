package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/agbru/fibcompare/internal/orchestration"
)

// resultDocument is the JSON shape written by WriteResultToFile.
type resultDocument struct {
	N               int64   `json:"n"`
	Strategy        string  `json:"strategy"`
	Value           string  `json:"value"`
	Operations      uint64  `json:"operations"`
	DurationSeconds float64 `json:"duration_seconds"`
}

// WriteResultToFile persists the winning outcome of a comparison as a JSON
// document. The value is serialized as a decimal string since F(n) exceeds
// any native JSON number almost immediately.
//
// Parameters:
//   - outcome: The outcome to persist (must be a success).
//   - n: The index the outcome was computed for.
//   - path: The destination file path.
//
// Returns:
//   - error: An error if marshaling or writing fails.
func WriteResultToFile(outcome orchestration.StrategyOutcome, n int64, path string) error {
	doc := resultDocument{
		N:               n,
		Strategy:        outcome.Name,
		Value:           outcome.Result.Value.String(),
		Operations:      outcome.Result.Operations,
		DurationSeconds: outcome.Result.Seconds(),
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing result file: %w", err)
	}
	return nil
}
