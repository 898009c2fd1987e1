package config

import (
	"bytes"
	"errors"
	"flag"
	"testing"
	"time"

	apperrors "github.com/agbru/fibcompare/internal/errors"
)

var testAlgos = []string{"closed-form", "dynamic", "memoization", "recursive"}

func parse(t *testing.T, args ...string) (AppConfig, error) {
	t.Helper()
	var buf bytes.Buffer
	return ParseConfig("fibcompare", args, &buf, testAlgos)
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := parse(t)
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}

	if cfg.N != DefaultN {
		t.Errorf("N = %d, want %d", cfg.N, DefaultN)
	}
	if cfg.Algo != "all" {
		t.Errorf("Algo = %q, want %q", cfg.Algo, "all")
	}
	if cfg.MaxPower != DefaultMaxPower {
		t.Errorf("MaxPower = %d, want %d", cfg.MaxPower, DefaultMaxPower)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %s, want %s", cfg.Timeout, DefaultTimeout)
	}
	if cfg.Report || cfg.TUI || cfg.Quiet || cfg.Verbose || cfg.ShowValue || cfg.NoColor {
		t.Errorf("boolean flags should default to false: %+v", cfg)
	}
}

func TestParseConfig_Flags(t *testing.T) {
	cfg, err := parse(t, "-n", "604", "-algo", "closed-form", "-timeout", "30s", "-c", "-o", "result.json")
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}

	if cfg.N != 604 {
		t.Errorf("N = %d, want 604", cfg.N)
	}
	if cfg.Algo != "closed-form" {
		t.Errorf("Algo = %q, want %q", cfg.Algo, "closed-form")
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %s, want 30s", cfg.Timeout)
	}
	if !cfg.ShowValue {
		t.Error("ShowValue not set by -c")
	}
	if cfg.OutputFile != "result.json" {
		t.Errorf("OutputFile = %q, want %q", cfg.OutputFile, "result.json")
	}
}

func TestParseConfig_ShorthandAliases(t *testing.T) {
	cfg, err := parse(t, "-q", "-v")
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if !cfg.Quiet {
		t.Error("Quiet not set by -q")
	}
	if !cfg.Verbose {
		t.Error("Verbose not set by -v")
	}
}

func TestParseConfig_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown algorithm", []string{"-algo", "fast-doubling"}},
		{"max-power too large", []string{"-max-power", "31"}},
		{"negative max-power", []string{"-max-power", "-1"}},
		{"report and tui together", []string{"-report", "-tui"}},
		{"non-positive timeout", []string{"-timeout", "0s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.args...)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			var configErr apperrors.ConfigError
			if !errors.As(err, &configErr) {
				t.Errorf("expected ConfigError, got %T: %v", err, err)
			}
		})
	}
}

func TestParseConfig_HelpFlag(t *testing.T) {
	_, err := parse(t, "-h")
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("expected flag.ErrHelp, got %v", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvPrefix+"N", "100")
	t.Setenv(EnvPrefix+"ALGO", "dynamic")
	t.Setenv(EnvPrefix+"TIMEOUT", "1m")
	t.Setenv(EnvPrefix+"QUIET", "yes")

	cfg, err := parse(t)
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}

	if cfg.N != 100 {
		t.Errorf("N = %d, want 100 from environment", cfg.N)
	}
	if cfg.Algo != "dynamic" {
		t.Errorf("Algo = %q, want %q from environment", cfg.Algo, "dynamic")
	}
	if cfg.Timeout != time.Minute {
		t.Errorf("Timeout = %s, want 1m from environment", cfg.Timeout)
	}
	if !cfg.Quiet {
		t.Error("Quiet not set from environment")
	}
}

// TestEnvOverrides_FlagsTakePriority verifies the resolution order: an
// explicit flag wins over its environment variable.
func TestEnvOverrides_FlagsTakePriority(t *testing.T) {
	t.Setenv(EnvPrefix+"N", "100")
	t.Setenv(EnvPrefix+"ALGO", "dynamic")

	cfg, err := parse(t, "-n", "40", "-algo", "recursive")
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}

	if cfg.N != 40 {
		t.Errorf("N = %d, want 40 from flag", cfg.N)
	}
	if cfg.Algo != "recursive" {
		t.Errorf("Algo = %q, want %q from flag", cfg.Algo, "recursive")
	}
}

// TestEnvOverrides_AliasBlocksOverride verifies that setting the short form
// of an aliased flag also suppresses the environment override.
func TestEnvOverrides_AliasBlocksOverride(t *testing.T) {
	t.Setenv(EnvPrefix+"OUTPUT", "env.json")

	cfg, err := parse(t, "-o", "flag.json")
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if cfg.OutputFile != "flag.json" {
		t.Errorf("OutputFile = %q, want %q", cfg.OutputFile, "flag.json")
	}
}

// TestEnvOverrides_InvalidValuesIgnored verifies that malformed environment
// values fall back to the defaults instead of failing the run.
func TestEnvOverrides_InvalidValuesIgnored(t *testing.T) {
	t.Setenv(EnvPrefix+"N", "not-a-number")
	t.Setenv(EnvPrefix+"TIMEOUT", "soon")
	t.Setenv(EnvPrefix+"QUIET", "maybe")

	cfg, err := parse(t)
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}

	if cfg.N != DefaultN {
		t.Errorf("N = %d, want default %d", cfg.N, DefaultN)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %s, want default %s", cfg.Timeout, DefaultTimeout)
	}
	if cfg.Quiet {
		t.Error("Quiet should keep its default on an unrecognized value")
	}
}

func TestParseBoolEnv(t *testing.T) {
	t.Parallel()
	tests := []struct {
		val        string
		defaultVal bool
		expected   bool
	}{
		{"true", false, true},
		{"1", false, true},
		{"YES", false, true},
		{"false", true, false},
		{"0", true, false},
		{"No", true, false},
		{"maybe", true, true},
		{"", false, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.val, func(t *testing.T) {
			t.Parallel()
			if got := parseBoolEnv(tt.val, tt.defaultVal); got != tt.expected {
				t.Errorf("parseBoolEnv(%q, %v) = %v, want %v", tt.val, tt.defaultVal, got, tt.expected)
			}
		})
	}
}
