// Package config defines the application configuration and its resolution
// chain: CLI flags take priority over FIBCOMPARE_-prefixed environment
// variables, which take priority over defaults.
package config

import (
	"flag"
	"io"
	"slices"
	"time"

	apperrors "github.com/agbru/fibcompare/internal/errors"
)

// EnvPrefix is prepended to every environment variable the application reads.
const EnvPrefix = "FIBCOMPARE_"

// Default values for the configuration flags.
const (
	// DefaultN is the Fibonacci index computed when -n is not given. 30 sits
	// inside every strategy's domain, so a bare invocation compares all four.
	DefaultN = 30
	// DefaultMaxPower is the largest exponent of the -report sweep: indices
	// run from 2⁰ through 2^DefaultMaxPower.
	DefaultMaxPower = 21
	// MaxPowerLimit caps -max-power; 2³⁰ already exceeds the widest strategy
	// bound, so nothing above it can ever produce a value cell.
	MaxPowerLimit = 30
	// DefaultTimeout bounds a whole run, counting all strategies.
	DefaultTimeout = 5 * time.Minute
)

// AppConfig carries the resolved configuration of a single program run.
type AppConfig struct {
	// N is the Fibonacci index to evaluate in single-comparison mode.
	N int64
	// Algo selects the strategies to run: "all" or a registered name.
	Algo string
	// Report enables the powers-of-two sweep report instead of a single
	// comparison.
	Report bool
	// MaxPower is the largest exponent of the sweep (indices 2⁰..2^MaxPower).
	MaxPower int
	// TUI enables the interactive dashboard.
	TUI bool
	// Timeout bounds the whole run.
	Timeout time.Duration
	// Quiet suppresses progress and banner output.
	Quiet bool
	// Verbose enables debug logging.
	Verbose bool
	// ShowValue prints the full, unabbreviated winning value.
	ShowValue bool
	// OutputFile, when non-empty, receives the winning result as JSON.
	OutputFile string
	// NoColor disables ANSI colors regardless of terminal support.
	NoColor bool
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment overrides for flags that were not set explicitly, and validates
// the result.
//
// Parameters:
//   - programName: The name reported in usage output.
//   - args: The command-line arguments, excluding the program name.
//   - errWriter: The writer for flag-parsing and usage output.
//   - availableAlgos: The registered strategy names accepted by -algo.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp, or a ConfigError describing the invalid input.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	cfg := AppConfig{}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	setCustomUsage(fs)

	fs.Int64Var(&cfg.N, "n", DefaultN, "Fibonacci index to evaluate")
	fs.StringVar(&cfg.Algo, "algo", "all", "strategy to run (\"all\" or a registered name)")
	fs.BoolVar(&cfg.Report, "report", false, "run the powers-of-two sweep report")
	fs.IntVar(&cfg.MaxPower, "max-power", DefaultMaxPower, "largest exponent of the sweep (indices 2^0..2^max-power)")
	fs.BoolVar(&cfg.TUI, "tui", false, "launch the interactive dashboard")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "overall run timeout")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "suppress progress and banner output")
	fs.BoolVar(&cfg.Quiet, "q", false, "shorthand for -quiet")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "enable debug logging")
	fs.BoolVar(&cfg.Verbose, "v", false, "shorthand for -verbose")
	fs.BoolVar(&cfg.ShowValue, "calculate", false, "print the full winning value")
	fs.BoolVar(&cfg.ShowValue, "c", false, "shorthand for -calculate")
	fs.StringVar(&cfg.OutputFile, "output", "", "write the winning result to this file as JSON")
	fs.StringVar(&cfg.OutputFile, "o", "", "shorthand for -output")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable colored output")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)

	if err := validate(cfg, availableAlgos); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// validate checks the cross-field constraints of a resolved configuration.
func validate(cfg AppConfig, availableAlgos []string) error {
	if cfg.Algo != "all" && !slices.Contains(availableAlgos, cfg.Algo) {
		return apperrors.NewConfigError("unknown strategy %q (available: all, %v)", cfg.Algo, availableAlgos)
	}
	if cfg.MaxPower < 0 || cfg.MaxPower > MaxPowerLimit {
		return apperrors.NewConfigError("max-power must be between 0 and %d, got %d", MaxPowerLimit, cfg.MaxPower)
	}
	if cfg.Report && cfg.TUI {
		return apperrors.NewConfigError("-report and -tui are mutually exclusive")
	}
	if cfg.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", cfg.Timeout)
	}
	return nil
}
