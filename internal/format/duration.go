package format

import (
	"fmt"
	"math/big"
	"strings"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
// This approach provides a more human-readable output for short durations.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// AbbreviateThreshold is the decimal digit count above which FormatBigValue
// abbreviates a value instead of printing it in full.
const AbbreviateThreshold = 24

// FormatBigValue renders a big integer for table display. Values up to
// AbbreviateThreshold digits are printed in full; larger values are
// abbreviated to their leading and trailing digits with the total digit
// count, keeping comparison tables readable when F(n) spans thousands of
// digits.
//
// Parameters:
//   - v: The value to format. A nil value renders as "-".
//
// Returns:
//   - string: The formatted value.
func FormatBigValue(v *big.Int) string {
	if v == nil {
		return "-"
	}
	s := v.String()
	if len(s) <= AbbreviateThreshold {
		return s
	}
	return fmt.Sprintf("%s...%s (%d digits)", s[:10], s[len(s)-10:], len(s))
}

// FormatOperationCount renders an operation count with thousands separators
// for readability (e.g., 2692537 -> "2,692,537").
//
// Parameters:
//   - ops: The operation count to format.
//
// Returns:
//   - string: The formatted count.
func FormatOperationCount(ops uint64) string {
	s := fmt.Sprintf("%d", ops)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
