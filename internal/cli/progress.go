package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/fibcompare/internal/orchestration"
)

// sweepSpinnerInterval is the frame interval of the sweep spinner.
const sweepSpinnerInterval = 100 * time.Millisecond

// SweepProgress drives a terminal spinner while a sweep runs. The spinner
// suffix is updated before each index so long dynamic-programming rows show
// which computation is in flight.
type SweepProgress struct {
	spin *spinner.Spinner
}

// NewSweepProgress creates a spinner writing to out. The spinner is not
// started until the first observer call.
//
// Parameters:
//   - out: The writer for spinner frames (normally stderr or stdout).
//
// Returns:
//   - *SweepProgress: The progress driver.
func NewSweepProgress(out io.Writer) *SweepProgress {
	s := spinner.New(spinner.CharSets[14], sweepSpinnerInterval, spinner.WithWriter(out))
	return &SweepProgress{spin: s}
}

// Observer returns the orchestration.SweepObserver that animates this
// spinner.
func (p *SweepProgress) Observer() orchestration.SweepObserver {
	return func(step, total int, n int64) {
		p.spin.Suffix = fmt.Sprintf(" computing F(%d)  [%d/%d]", n, step, total)
		if !p.spin.Active() {
			p.spin.Start()
		}
	}
}

// Stop halts the spinner and clears its line.
func (p *SweepProgress) Stop() {
	if p.spin.Active() {
		p.spin.Stop()
	}
}
